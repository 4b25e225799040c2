// Package metrics wires the observer hooks exposed by the resolution,
// image, and contact packages into Prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service counters. It implements resolve.Observer and
// provides callbacks for the image resolver and contact handler.
type Metrics struct {
	fallbacks          *prometheus.CounterVec
	fetchFailures      *prometheus.CounterVec
	imageFallbacks     *prometheus.CounterVec
	contactSubmissions *prometheus.CounterVec
}

// New registers the counters with reg and returns them. A nil reg falls
// back to the default registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_fallbacks_total",
			Help: "Fields served from a default value instead of source content.",
		}, []string{"page", "field"}),
		fetchFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_fetch_failures_total",
			Help: "Content fetches that failed for reasons other than absence.",
		}, []string{"page"}),
		imageFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_image_fallbacks_total",
			Help: "Image URL resolutions by the tier that served them.",
		}, []string{"tier"}),
		contactSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_contact_submissions_total",
			Help: "Contact form submissions by outcome.",
		}, []string{"result"}),
	}

	reg.MustRegister(m.fallbacks, m.fetchFailures, m.imageFallbacks, m.contactSubmissions)
	return m
}

// FallbackApplied implements resolve.Observer.
func (m *Metrics) FallbackApplied(page, field string) {
	m.fallbacks.WithLabelValues(page, field).Inc()
}

// FetchFailed implements resolve.Observer.
func (m *Metrics) FetchFailed(page string) {
	m.fetchFailures.WithLabelValues(page).Inc()
}

// ImageResolved records the tier that served an image URL. Pass it to
// images.WithObserver.
func (m *Metrics) ImageResolved(tier string) {
	m.imageFallbacks.WithLabelValues(tier).Inc()
}

// ContactSubmission records a contact form outcome. Pass it to
// contact.WithObserver.
func (m *Metrics) ContactSubmission(outcome string) {
	m.contactSubmissions.WithLabelValues(outcome).Inc()
}
