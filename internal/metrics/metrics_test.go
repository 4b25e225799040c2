package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCountersIncrement(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.FallbackApplied("about", "name")
	m.FallbackApplied("about", "name")
	m.FetchFailed("home")
	m.ImageResolved("default")
	m.ContactSubmission("sent")

	if got := testutil.ToFloat64(m.fallbacks.WithLabelValues("about", "name")); got != 2 {
		t.Errorf("fallbacks = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.fetchFailures.WithLabelValues("home")); got != 1 {
		t.Errorf("fetch failures = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.imageFallbacks.WithLabelValues("default")); got != 1 {
		t.Errorf("image resolutions = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.contactSubmissions.WithLabelValues("sent")); got != 1 {
		t.Errorf("contact submissions = %v, want 1", got)
	}
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate registration")
		}
	}()
	New(reg)
}
