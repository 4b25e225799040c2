package mailer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	"github.com/bmelese/portfolio/pkg/core"
)

const defaultResendBaseURL = "https://api.resend.com"

// Resend sends mail through the Resend HTTP API.
type Resend struct {
	apiKey  string
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// ResendOption configures a Resend mailer.
type ResendOption func(*Resend)

// WithBaseURL overrides the API endpoint (used in tests).
func WithBaseURL(url string) ResendOption {
	return func(r *Resend) { r.baseURL = url }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) ResendOption {
	return func(r *Resend) { r.http = c }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ResendOption {
	return func(r *Resend) { r.logger = logger }
}

// NewResend creates a Resend mailer. An empty API key returns
// core.ErrNotConfigured; the caller decides whether that is fatal (the
// contact endpoint degrades to a service-unavailable response instead).
func NewResend(apiKey string, opts ...ResendOption) (*Resend, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend: missing api key: %w", core.ErrNotConfigured)
	}
	r := &Resend{
		apiKey:  apiKey,
		baseURL: defaultResendBaseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

type resendResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Name    string `json:"name"`
}

// Send implements Mailer.
func (r *Resend) Send(ctx context.Context, msg Message) (string, error) {
	body, err := sonic.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("resend: encoding message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("resend: building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("resend: sending request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("resend: reading response: %w", err)
	}

	var decoded resendResponse
	if err := sonic.Unmarshal(data, &decoded); err != nil {
		return "", fmt.Errorf("resend: decoding response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		r.logger.Warn("provider rejected email", "status", resp.StatusCode, "name", decoded.Name)
		if decoded.Message != "" {
			return "", fmt.Errorf("resend: %s", decoded.Message)
		}
		return "", fmt.Errorf("resend: unexpected status %d", resp.StatusCode)
	}

	return decoded.ID, nil
}
