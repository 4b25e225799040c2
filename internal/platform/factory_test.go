package platform

import (
	"context"
	"testing"

	"github.com/bmelese/portfolio/pkg/adapters/fscontent"
	"github.com/bmelese/portfolio/pkg/adapters/sanity"
	"github.com/bmelese/portfolio/pkg/core"
	"github.com/bmelese/portfolio/pkg/mailer"
)

type emptySource struct{}

func (emptySource) Fetch(ctx context.Context, query string, params core.Params, result any) error {
	return core.ErrNotFound
}

func TestNewWiresInjectedSource(t *testing.T) {
	cfg := Config{SanityProjectID: "abc123"}
	cfg.applyDefaults()

	app, err := New(cfg, WithSource(emptySource{}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if app.Resolver == nil || app.Contact == nil || app.Images == nil || app.Metrics == nil {
		t.Fatal("application not fully wired")
	}

	// Every page resolves even though the source has nothing.
	about := app.Resolver.About(context.Background())
	if about.Name == "" {
		t.Error("expected default name from empty source")
	}

	families, err := app.Registry.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	if len(families) == 0 {
		t.Error("expected registered metric families")
	}
}

func TestNewLocalContentMode(t *testing.T) {
	cfg := Config{ContentDir: t.TempDir()}
	cfg.applyDefaults()

	app, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := app.Source.(*fscontent.Repository); !ok {
		t.Errorf("source = %T, want *fscontent.Repository", app.Source)
	}
	if _, ok := app.Mailer.(*mailer.Dev); !ok {
		t.Errorf("mailer = %T, want *mailer.Dev without an API key", app.Mailer)
	}
}

func TestNewHostedModeWithoutKeyDisablesMail(t *testing.T) {
	cfg := Config{SanityProjectID: "abc123"}
	cfg.applyDefaults()

	app, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := app.Source.(*sanity.Client); !ok {
		t.Errorf("source = %T, want *sanity.Client", app.Source)
	}
	if app.Mailer != nil {
		t.Errorf("mailer = %T, want nil without an API key", app.Mailer)
	}
}

func TestNewRequiresASource(t *testing.T) {
	var cfg Config
	cfg.applyDefaults()

	if _, err := New(cfg); err == nil {
		t.Fatal("expected error with no content source configured")
	}
}
