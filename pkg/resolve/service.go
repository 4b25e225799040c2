// Package resolve is the field-resolution layer: it pulls documents from
// the content source, applies the per-field fallback tables, and assembles
// the flat view-models handed to presentation.
//
// Read paths fail open. A source that is down or returns nothing yields a
// fully-defaulted view-model, never an error page; the failure is logged
// and counted, and the next request tries again.
package resolve

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bmelese/portfolio/pkg/core"
	"github.com/bmelese/portfolio/pkg/images"
)

// Observer receives resolution telemetry. Implementations must be safe for
// concurrent use.
type Observer interface {
	// FallbackApplied reports one field on a page falling back to its
	// default.
	FallbackApplied(page, field string)
	// FetchFailed reports a source query failing for a page.
	FetchFailed(page string)
}

type nopObserver struct{}

func (nopObserver) FallbackApplied(string, string) {}
func (nopObserver) FetchFailed(string)             {}

// Service resolves page view-models against a content source. Construct it
// once and share it; it is stateless beyond its collaborators and safe for
// concurrent use.
type Service struct {
	source   core.Source
	images   *images.Resolver
	logger   *slog.Logger
	observer Observer
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) { s.logger = logger }
}

// WithObserver registers a telemetry sink.
func WithObserver(o Observer) ServiceOption {
	return func(s *Service) { s.observer = o }
}

// NewService creates a Service over a content source and image resolver.
func NewService(source core.Source, imgs *images.Resolver, opts ...ServiceOption) *Service {
	s := &Service{
		source:   source,
		images:   imgs,
		logger:   slog.Default(),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// fetch runs one source query for a page and reports whether the result is
// usable. Failures are logged and counted here, at the resolution
// boundary; callers apply defaults and carry on.
func (s *Service) fetch(ctx context.Context, page, query string, params core.Params, result any) bool {
	err := s.source.Fetch(ctx, query, params, result)
	if err == nil {
		return true
	}
	if errors.Is(err, core.ErrNotFound) {
		s.logger.Debug("no document for page, using defaults", "page", page)
		return false
	}
	s.logger.Warn("content fetch failed, using defaults", "page", page, "error", err)
	s.observer.FetchFailed(page)
	return false
}

// str resolves one string field: the CMS value when present, otherwise the
// named default, counted as a fallback.
func (s *Service) str(page, field, value, def string) string {
	if value != "" {
		return value
	}
	s.observer.FallbackApplied(page, field)
	return def
}
