package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytedance/sonic"

	"github.com/bmelese/portfolio/internal/platform"
	"github.com/bmelese/portfolio/pkg/core"
	"github.com/bmelese/portfolio/pkg/mailer"
)

type stubMailer struct {
	err  error
	last mailer.Message
}

func (m *stubMailer) Send(ctx context.Context, msg mailer.Message) (string, error) {
	m.last = msg
	if m.err != nil {
		return "", m.err
	}
	return "msg-1", nil
}

func newTestServer(t *testing.T, opts ...platform.Option) *Server {
	t.Helper()

	root := t.TempDir()
	write := func(name, content string) {
		t.Helper()
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	write("about.yaml", "_id: about\nname: Betelhem Melese\ntitle: Full-Stack Developer\n")
	write("contact.yaml", "_id: contact\nemail: site@example.com\n")
	write("projects/alpha.yaml", "_id: p1\ntitle: Alpha\nslug: {current: alpha}\norder: 1\nfeatured: true\n")
	write("projects/beta.yaml", "_id: p2\ntitle: Beta\nslug: {current: beta}\norder: 2\n")

	cfg := platform.Config{ContentDir: root}
	app, err := platform.New(cfg, opts...)
	if err != nil {
		t.Fatalf("platform.New: %v", err)
	}
	return New(app)
}

func get(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v (%s)", err, rec.Body.String())
	}
	return body
}

func TestPageEndpoints(t *testing.T) {
	handler := newTestServer(t).Handler()

	for _, path := range []string{
		"/api/pages/home", "/api/pages/about", "/api/pages/services", "/api/pages/contact",
	} {
		rec := get(t, handler, path)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d", path, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("%s: content type = %q", path, ct)
		}
	}

	about := decode(t, get(t, handler, "/api/pages/about"))
	if about["name"] != "Betelhem Melese" {
		t.Errorf("about name = %v", about["name"])
	}
}

func TestProjectEndpoints(t *testing.T) {
	handler := newTestServer(t).Handler()

	rec := get(t, handler, "/api/projects")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var list []map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decoding list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("projects = %d, want 2", len(list))
	}

	rec = get(t, handler, "/api/projects?featured=true")
	if err := sonic.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decoding featured: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("featured = %d, want 1", len(list))
	}

	detail := decode(t, get(t, handler, "/api/projects/alpha"))
	if detail["title"] != "Alpha" {
		t.Errorf("detail title = %v", detail["title"])
	}

	rec = get(t, handler, "/api/projects/missing")
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing slug status = %d, want 404", rec.Code)
	}
}

func postContact(t *testing.T, handler http.Handler, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestContactSubmitSuccess(t *testing.T) {
	m := &stubMailer{}
	handler := newTestServer(t, platform.WithMailer(m)).Handler()

	rec := postContact(t, handler, `{"name":"Ada","email":"ada@example.com","message":"Hello"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	body := decode(t, rec)
	if body["id"] != "msg-1" {
		t.Errorf("id = %v", body["id"])
	}
	if m.last.To != "site@example.com" {
		t.Errorf("recipient = %q, want address from content", m.last.To)
	}
}

func TestContactSubmitValidation(t *testing.T) {
	handler := newTestServer(t, platform.WithMailer(&stubMailer{})).Handler()

	rec := postContact(t, handler, `{"name":"","email":"a@b.co","message":"hi"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing field status = %d, want 400", rec.Code)
	}
	if kind := decode(t, rec)["kind"]; kind != "missing_field" {
		t.Errorf("kind = %v", kind)
	}

	rec = postContact(t, handler, `{"name":"Ada","email":"not-an-email","message":"hi"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid email status = %d, want 400", rec.Code)
	}

	rec = postContact(t, handler, `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad body status = %d, want 400", rec.Code)
	}
}

func TestContactSubmitUnavailable(t *testing.T) {
	cfg := platform.Config{SanityProjectID: "abc123", SanityDataset: "production", SanityAPIVersion: "2024-01-01"}
	app, err := platform.New(cfg, platform.WithSource(emptySource{}))
	if err != nil {
		t.Fatalf("platform.New: %v", err)
	}
	handler := New(app).Handler()

	rec := postContact(t, handler, `{"name":"Ada","email":"ada@example.com","message":"hi"}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

type emptySource struct{}

func (emptySource) Fetch(ctx context.Context, query string, params core.Params, result any) error {
	return core.ErrNotFound
}

func TestProbesAndMetrics(t *testing.T) {
	handler := newTestServer(t).Handler()

	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		rec := get(t, handler, path)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d", path, rec.Code)
		}
	}

	// The services document is absent from the fixture content, so this
	// request records fallback counters.
	get(t, handler, "/api/pages/services")

	rec := get(t, handler, "/metrics")
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "portfolio_") {
		t.Error("metrics output missing portfolio counters")
	}
}

func TestRequestIDHeader(t *testing.T) {
	handler := newTestServer(t).Handler()

	rec := get(t, handler, "/healthz")
	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("missing generated request id")
	}

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "upstream-1")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-Id"); got != "upstream-1" {
		t.Errorf("request id = %q, want upstream-1", got)
	}
}
