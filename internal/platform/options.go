package platform

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bmelese/portfolio/pkg/core"
	"github.com/bmelese/portfolio/pkg/mailer"
)

// options holds the internal configuration for the application factory.
type options struct {
	source     core.Source
	mailer     mailer.Mailer
	logger     *slog.Logger
	registry   *prometheus.Registry
	httpClient *http.Client
}

// Option defines a functional option for configuring the application.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		logger: slog.Default(),
	}
}

// WithLogger sets the logger for all components.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSource injects a custom content source (e.g. a mock), skipping the
// adapter selection in New.
func WithSource(source core.Source) Option {
	return func(o *options) {
		o.source = source
	}
}

// WithMailer injects a custom mailer, skipping the API-key based selection
// in New.
func WithMailer(m mailer.Mailer) Option {
	return func(o *options) {
		o.mailer = m
	}
}

// WithRegistry sets the Prometheus registry the counters register with.
// Defaults to a fresh registry per application.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(o *options) {
		o.registry = reg
	}
}

// WithHTTPClient sets the HTTP client used for outbound requests to the
// content store and the email provider.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}
