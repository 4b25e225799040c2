// Package contact handles contact-form submissions: validate the payload,
// resolve the recipient from the content source, and hand off to the email
// provider. Unlike the read paths, failures here are surfaced loudly; a
// silently dropped submission is a lost lead.
package contact

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/bmelese/portfolio/pkg/mailer"
	"github.com/bmelese/portfolio/pkg/resolve"
)

// Kind classifies a failed submission.
type Kind string

// Submission failure kinds, in the order they are checked.
const (
	KindMissingField Kind = "missing_field"
	KindInvalidEmail Kind = "invalid_email"
	KindUnavailable  Kind = "service_unavailable"
	KindSendFailed   Kind = "send_failed"
)

// Submission is the inbound form payload.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Result reports the outcome of one submission attempt.
type Result struct {
	OK      bool
	ID      string // provider message id on success
	Message string // human-readable confirmation on success
	Kind    Kind   // failure classification
	Detail  string // diagnostic text, provider-supplied for send failures
}

// Basic local@domain.tld shape. Deliverability is the provider's problem.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// DefaultFrom is the verified sender identity used for form notifications.
const DefaultFrom = "Portfolio Contact Form <onboarding@resend.dev>"

// Handler processes submissions. A nil Mailer marks the email service as
// unconfigured; submissions then short-circuit before any send attempt.
type Handler struct {
	resolver *resolve.Service
	mailer   mailer.Mailer
	from     string
	logger   *slog.Logger
	observe  func(outcome string)
}

// Option configures a Handler.
type Option func(*Handler)

// WithFrom overrides the sender identity.
func WithFrom(from string) Option {
	return func(h *Handler) { h.from = from }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) { h.logger = logger }
}

// WithObserver registers a callback invoked with each submission outcome
// ("sent" or a failure kind).
func WithObserver(fn func(outcome string)) Option {
	return func(h *Handler) { h.observe = fn }
}

// NewHandler creates a Handler. m may be nil when no provider credential is
// configured.
func NewHandler(resolver *resolve.Service, m mailer.Mailer, opts ...Option) *Handler {
	h := &Handler{
		resolver: resolver,
		mailer:   m,
		from:     DefaultFrom,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Submit validates and delivers one submission. At-most-once: a failed send
// is reported, never retried.
func (h *Handler) Submit(ctx context.Context, sub Submission) Result {
	if strings.TrimSpace(sub.Name) == "" ||
		strings.TrimSpace(sub.Email) == "" ||
		strings.TrimSpace(sub.Message) == "" {
		return h.failure(KindMissingField, "all fields are required")
	}

	if !emailPattern.MatchString(sub.Email) {
		return h.failure(KindInvalidEmail, "invalid email format")
	}

	if h.mailer == nil {
		h.logger.Error("contact submission rejected: email service is not configured")
		return h.failure(KindUnavailable, "email service is not configured")
	}

	// Recipient comes from the contact document; resolution falls back to
	// the default address when the CMS has nothing.
	recipient := h.resolver.Contact(ctx).Email

	id, err := h.mailer.Send(ctx, mailer.Message{
		From:    h.from,
		To:      recipient,
		ReplyTo: sub.Email,
		Subject: fmt.Sprintf("New Contact Form Message from %s", sub.Name),
		HTML:    htmlBody(sub),
		Text:    textBody(sub),
	})
	if err != nil {
		h.logger.Error("contact send failed", "error", err)
		return h.failure(KindSendFailed, err.Error())
	}

	h.logger.Info("contact submission sent", "id", id)
	h.observed("sent")
	return Result{OK: true, ID: id, Message: "Email sent successfully"}
}

func (h *Handler) failure(kind Kind, detail string) Result {
	h.observed(string(kind))
	return Result{Kind: kind, Detail: detail}
}

func (h *Handler) observed(outcome string) {
	if h.observe != nil {
		h.observe(outcome)
	}
}

func htmlBody(sub Submission) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<h2 style="color: #333; border-bottom: 2px solid #8f0606; padding-bottom: 10px;">New Contact Form Submission</h2>`)
	fmt.Fprintf(&b, `<div style="margin-top: 20px;"><p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p></div>`,
		htmlEscape(sub.Name), htmlEscape(sub.Email))
	fmt.Fprintf(&b, `<div style="margin-top: 30px;"><h3 style="color: #333;">Message:</h3><div style="background-color: #f5f5f5; padding: 15px; border-radius: 5px; margin-top: 10px; white-space: pre-wrap;">%s</div></div>`,
		htmlEscape(sub.Message))
	fmt.Fprintf(&b, `<div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #ddd; color: #666; font-size: 12px;"><p>This message was sent from your portfolio contact form.</p><p>Reply directly to this email to respond to %s.</p></div>`,
		htmlEscape(sub.Name))
	b.WriteString(`</div>`)
	return b.String()
}

func textBody(sub Submission) string {
	return fmt.Sprintf(`New Contact Form Submission

Name: %s
Email: %s

Message:
%s

---
This message was sent from your portfolio contact form.
Reply directly to this email to respond to %s.
`, sub.Name, sub.Email, sub.Message, sub.Name)
}

var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func htmlEscape(s string) string {
	return htmlReplacer.Replace(s)
}
