package contact_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmelese/portfolio/pkg/contact"
	"github.com/bmelese/portfolio/pkg/core"
	"github.com/bmelese/portfolio/pkg/images"
	"github.com/bmelese/portfolio/pkg/mailer"
	"github.com/bmelese/portfolio/pkg/resolve"
)

// stubSource answers the contact query with a fixed document.
type stubSource struct {
	contact *core.ContactInfo
}

func (s *stubSource) Fetch(ctx context.Context, query string, params core.Params, result any) error {
	if query != core.QueryContact || s.contact == nil {
		return core.ErrNotFound
	}
	data, err := json.Marshal(s.contact)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, result)
}

// stubMailer records the last message and returns a canned response.
type stubMailer struct {
	last Message
	id   string
	err  error
}

type Message = mailer.Message

func (m *stubMailer) Send(ctx context.Context, msg mailer.Message) (string, error) {
	m.last = msg
	return m.id, m.err
}

func newResolver(source core.Source) *resolve.Service {
	return resolve.NewService(source, images.NewResolver("projid", "production"))
}

func valid() contact.Submission {
	return contact.Submission{Name: "A", Email: "a@b.com", Message: "hi"}
}

func TestSubmitMissingField(t *testing.T) {
	h := contact.NewHandler(newResolver(&stubSource{}), &stubMailer{})

	tests := []struct {
		name string
		sub  contact.Submission
	}{
		{"empty name", contact.Submission{Name: "", Email: "a@b.com", Message: "hi"}},
		{"empty email", contact.Submission{Name: "A", Email: "", Message: "hi"}},
		{"empty message", contact.Submission{Name: "A", Email: "a@b.com", Message: ""}},
		{"whitespace only", contact.Submission{Name: "  ", Email: "a@b.com", Message: "hi"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := h.Submit(context.Background(), tc.sub)
			assert.False(t, res.OK)
			assert.Equal(t, contact.KindMissingField, res.Kind)
		})
	}
}

func TestSubmitInvalidEmail(t *testing.T) {
	h := contact.NewHandler(newResolver(&stubSource{}), &stubMailer{})

	for _, email := range []string{"not-an-email", "a@b", "a b@c.com", "@b.com"} {
		res := h.Submit(context.Background(), contact.Submission{Name: "A", Email: email, Message: "hi"})
		assert.Equal(t, contact.KindInvalidEmail, res.Kind, "email %q", email)
	}
}

func TestSubmitUnconfigured(t *testing.T) {
	var outcome string
	h := contact.NewHandler(newResolver(&stubSource{}), nil,
		contact.WithObserver(func(s string) { outcome = s }))

	res := h.Submit(context.Background(), valid())

	assert.False(t, res.OK)
	assert.Equal(t, contact.KindUnavailable, res.Kind)
	assert.Equal(t, string(contact.KindUnavailable), outcome)
}

func TestSubmitSuccess(t *testing.T) {
	m := &stubMailer{id: "msg_42"}
	source := &stubSource{contact: &core.ContactInfo{ID: "contact", Email: "owner@example.com"}}
	h := contact.NewHandler(newResolver(source), m)

	res := h.Submit(context.Background(), valid())

	require.True(t, res.OK)
	assert.Equal(t, "msg_42", res.ID)
	assert.Equal(t, "owner@example.com", m.last.To)
	assert.Equal(t, "a@b.com", m.last.ReplyTo)
	assert.Contains(t, m.last.Subject, "A")
	assert.Contains(t, m.last.Text, "hi")
	assert.Contains(t, m.last.HTML, "hi")
}

func TestSubmitRecipientFallback(t *testing.T) {
	m := &stubMailer{id: "msg_1"}
	// No contact document: recipient falls back to the default address.
	h := contact.NewHandler(newResolver(&stubSource{}), m)

	res := h.Submit(context.Background(), valid())

	require.True(t, res.OK)
	assert.Equal(t, resolve.DefaultContactEmail, m.last.To)
}

func TestSubmitSendFailure(t *testing.T) {
	m := &stubMailer{err: errors.New("domain not verified")}
	h := contact.NewHandler(newResolver(&stubSource{}), m)

	res := h.Submit(context.Background(), valid())

	assert.False(t, res.OK)
	assert.Equal(t, contact.KindSendFailed, res.Kind)
	assert.Contains(t, res.Detail, "domain not verified")
}

func TestSubmitEscapesHTML(t *testing.T) {
	m := &stubMailer{id: "msg_2"}
	h := contact.NewHandler(newResolver(&stubSource{}), m)

	res := h.Submit(context.Background(), contact.Submission{
		Name:    "<script>alert(1)</script>",
		Email:   "a@b.com",
		Message: "hi",
	})

	require.True(t, res.OK)
	assert.NotContains(t, m.last.HTML, "<script>")
	assert.Contains(t, m.last.HTML, "&lt;script&gt;")
}
