package portfolio

import (
	"log/slog"
	"net/http"

	"github.com/bmelese/portfolio/internal/platform"
	"github.com/bmelese/portfolio/pkg/contact"
	"github.com/bmelese/portfolio/pkg/core"
	"github.com/bmelese/portfolio/pkg/mailer"
	"github.com/bmelese/portfolio/pkg/resolve"
)

// Version exposes the version of the library.
const Version = "0.3.0"

// --- Types ---

// App is the assembled application: content source, page resolver, contact
// handler, and their telemetry.
type App = platform.App

// Config is the application configuration.
type Config = platform.Config

// Source delivers content documents for a query.
type Source = core.Source

// Resolver turns source documents into ready-to-render page models.
type Resolver = resolve.Service

// ContactHandler validates and delivers contact form submissions.
type ContactHandler = contact.Handler

// Submission is the inbound contact form payload.
type Submission = contact.Submission

// Mailer sends transactional email.
type Mailer = mailer.Mailer

// --- Configuration ---

// Option defines a functional option for configuring the application.
type Option = platform.Option

// WithLogger sets the logger for all components.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithSource injects a custom content source (e.g. a mock).
func WithSource(source core.Source) Option {
	return platform.WithSource(source)
}

// WithMailer injects a custom mailer.
func WithMailer(m mailer.Mailer) Option {
	return platform.WithMailer(m)
}

// WithHTTPClient sets the HTTP client for outbound requests.
func WithHTTPClient(c *http.Client) Option {
	return platform.WithHTTPClient(c)
}

// --- Factory ---

// New assembles the application from a Config.
func New(cfg Config, opts ...Option) (*App, error) {
	return platform.New(cfg, opts...)
}

// FromEnv builds a Config from the process environment.
func FromEnv() (Config, error) {
	return platform.FromEnv()
}
