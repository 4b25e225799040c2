// Package sanity implements core.Source against a hosted Sanity content
// store, speaking GROQ over its HTTP query API.
package sanity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/bytedance/sonic"

	"github.com/bmelese/portfolio/pkg/core"
)

// DefaultAPIVersion pins the query API contract when none is configured.
const DefaultAPIVersion = "2024-01-01"

// Client queries a Sanity project over HTTP. It is read-only, stateless and
// safe for concurrent use; construct one and share it.
type Client struct {
	projectID  string
	dataset    string
	apiVersion string
	baseURL    string // derived from projectID unless overridden
	http       *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithAPIVersion pins a specific query API version.
func WithAPIVersion(v string) Option {
	return func(c *Client) {
		if v != "" {
			c.apiVersion = v
		}
	}
}

// WithBaseURL overrides the derived API host (used in tests).
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = base }
}

// WithHTTPClient overrides the HTTP client, including its timeout.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a client for one project and dataset. Both identifiers
// are required; a missing one is a configuration error surfaced at this
// first point of use, not at process start.
func NewClient(projectID, dataset string, opts ...Option) (*Client, error) {
	if projectID == "" {
		return nil, fmt.Errorf("sanity: missing project id: %w", core.ErrNotConfigured)
	}
	if dataset == "" {
		return nil, fmt.Errorf("sanity: missing dataset: %w", core.ErrNotConfigured)
	}

	c := &Client{
		projectID:  projectID,
		dataset:    dataset,
		apiVersion: DefaultAPIVersion,
		// A request that hangs past this blocks a page render; bound it.
		http:   &http.Client{Timeout: 10 * time.Second},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.baseURL == "" {
		c.baseURL = fmt.Sprintf("https://%s.api.sanity.io", c.projectID)
	}
	return c, nil
}

type queryEnvelope struct {
	Result json.RawMessage `json:"result"`
}

// Fetch implements core.Source. The query runs verbatim as GROQ; params are
// passed as $-prefixed, JSON-encoded query parameters per the API contract.
func (c *Client) Fetch(ctx context.Context, query string, params core.Params, result any) error {
	endpoint := fmt.Sprintf("%s/v%s/data/query/%s", c.baseURL, c.apiVersion, c.dataset)

	q := url.Values{}
	q.Set("query", query)
	for name, value := range params {
		encoded, err := sonic.Marshal(value)
		if err != nil {
			return fmt.Errorf("sanity: encoding param %q: %w", name, err)
		}
		q.Set("$"+name, string(encoded))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("sanity: building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sanity: query request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("sanity: reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("query rejected", "status", resp.StatusCode)
		return fmt.Errorf("sanity: unexpected status %d", resp.StatusCode)
	}

	var envelope queryEnvelope
	if err := sonic.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("sanity: decoding envelope: %w", err)
	}

	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return core.ErrNotFound
	}

	if err := sonic.Unmarshal(envelope.Result, result); err != nil {
		return fmt.Errorf("sanity: decoding result: %w", err)
	}
	return nil
}

// ComponentType implements introspection.Component.
func (c *Client) ComponentType() string {
	return "sanity"
}

var _ core.Source = (*Client)(nil)
