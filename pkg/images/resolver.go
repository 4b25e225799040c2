package images

import (
	"github.com/bmelese/portfolio/pkg/core"
)

// DefaultURL is the system-wide image fallback used when nothing better is
// available.
const DefaultURL = "/portrait.jpg"

// Fallback tiers reported to the observer, in degrade order.
const (
	TierBuilder = "builder"
	TierAsset   = "asset"
	TierDefault = "default"
)

// Options carries per-call sizing directives and an optional default
// override.
type Options struct {
	Width   int
	Height  int
	Fit     string
	Default string
}

// Option mutates Options.
type Option func(*Options)

// WithWidth requests a pixel width.
func WithWidth(n int) Option { return func(o *Options) { o.Width = n } }

// WithHeight requests a pixel height.
func WithHeight(n int) Option { return func(o *Options) { o.Height = n } }

// WithFit requests a crop/fit mode.
func WithFit(mode string) Option { return func(o *Options) { o.Fit = mode } }

// WithDefault overrides the fallback URL for one call.
func WithDefault(url string) Option { return func(o *Options) { o.Default = url } }

// BuildFunc produces a derived URL for a reference. It exists as a seam so
// the degrade chain can be exercised tier by tier.
type BuildFunc func(ref *core.ImageRef, opts Options) (string, error)

// Resolver resolves image references into display URLs with an ordered
// fallback chain: derived CDN URL, then the raw asset URL embedded in the
// reference, then the default.
type Resolver struct {
	projectID  string
	dataset    string
	defaultURL string
	build      BuildFunc
	observe    func(tier string)
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithBuildFunc replaces the URL builder (used in tests).
func WithBuildFunc(fn BuildFunc) ResolverOption {
	return func(r *Resolver) { r.build = fn }
}

// WithObserver registers a callback invoked with the tier that served each
// resolution.
func WithObserver(fn func(tier string)) ResolverOption {
	return func(r *Resolver) { r.observe = fn }
}

// WithDefaultURL replaces the system default fallback.
func WithDefaultURL(url string) ResolverOption {
	return func(r *Resolver) { r.defaultURL = url }
}

// NewResolver creates a Resolver bound to a project and dataset. Either may
// be empty; resolution then degrades past the builder tier.
func NewResolver(projectID, dataset string, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		projectID:  projectID,
		dataset:    dataset,
		defaultURL: DefaultURL,
	}
	r.build = func(ref *core.ImageRef, o Options) (string, error) {
		b := NewBuilder(r.projectID, r.dataset, ref)
		if o.Width > 0 {
			b = b.Width(o.Width)
		}
		if o.Height > 0 {
			b = b.Height(o.Height)
		}
		if o.Fit != "" {
			b = b.Fit(o.Fit)
		}
		return b.URL()
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns a display URL for ref. The result is always non-empty:
//
//  1. absent reference: the per-call or system default
//  2. derived URL from the builder
//  3. raw asset URL embedded in the reference
//  4. system default
func (r *Resolver) Resolve(ref *core.ImageRef, opts ...Option) string {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	fallback := o.Default
	if fallback == "" {
		fallback = r.defaultURL
	}

	if ref == nil || ref.Asset == nil {
		r.observed(TierDefault)
		return fallback
	}

	if url, err := r.build(ref, o); err == nil && url != "" {
		r.observed(TierBuilder)
		return url
	}

	if ref.Asset.URL != "" {
		r.observed(TierAsset)
		return ref.Asset.URL
	}

	r.observed(TierDefault)
	return fallback
}

func (r *Resolver) observed(tier string) {
	if r.observe != nil {
		r.observe(tier)
	}
}
