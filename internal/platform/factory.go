package platform

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bmelese/portfolio/internal/metrics"
	"github.com/bmelese/portfolio/pkg/adapters/fscontent"
	"github.com/bmelese/portfolio/pkg/adapters/sanity"
	"github.com/bmelese/portfolio/pkg/contact"
	"github.com/bmelese/portfolio/pkg/core"
	"github.com/bmelese/portfolio/pkg/images"
	"github.com/bmelese/portfolio/pkg/mailer"
	"github.com/bmelese/portfolio/pkg/resolve"
)

// App is the assembled application.
type App struct {
	Config   Config
	Logger   *slog.Logger
	Source   core.Source
	Images   *images.Resolver
	Resolver *resolve.Service
	Contact  *contact.Handler
	Mailer   mailer.Mailer
	Metrics  *metrics.Metrics
	Registry *prometheus.Registry
}

// New wires the application from cfg. The content source is the local
// directory when cfg.ContentDir is set, otherwise the hosted store;
// the mailer is live when an API key is present, otherwise log-only.
func New(cfg Config, opts ...Option) (*App, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger

	registry := o.registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	m := metrics.New(registry)

	source := o.source
	if source == nil {
		var err error
		source, err = newSource(cfg, logger, o)
		if err != nil {
			return nil, err
		}
	}

	imageResolver := images.NewResolver(cfg.SanityProjectID, cfg.SanityDataset,
		images.WithObserver(m.ImageResolved),
	)

	resolver := resolve.NewService(source, imageResolver,
		resolve.WithLogger(logger),
		resolve.WithObserver(m),
	)

	send := o.mailer
	if send == nil {
		send = newMailer(cfg, logger)
	}

	handler := contact.NewHandler(resolver, send,
		contact.WithLogger(logger),
		contact.WithObserver(m.ContactSubmission),
	)

	return &App{
		Config:   cfg,
		Logger:   logger,
		Source:   source,
		Images:   imageResolver,
		Resolver: resolver,
		Contact:  handler,
		Mailer:   send,
		Metrics:  m,
		Registry: registry,
	}, nil
}

func newSource(cfg Config, logger *slog.Logger, o *options) (core.Source, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.ContentDir != "" {
		repo, err := fscontent.NewRepository(fscontent.Config{
			Root:   cfg.ContentDir,
			Logger: logger,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("serving content from local directory", "dir", cfg.ContentDir)
		return repo, nil
	}

	clientOpts := []sanity.Option{
		sanity.WithAPIVersion(cfg.SanityAPIVersion),
		sanity.WithLogger(logger),
	}
	if o.httpClient != nil {
		clientOpts = append(clientOpts, sanity.WithHTTPClient(o.httpClient))
	}
	client, err := sanity.NewClient(cfg.SanityProjectID, cfg.SanityDataset, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("platform: content client: %w", err)
	}
	return client, nil
}

// newMailer returns the live mailer when an API key is present. Without a
// key, local-content mode gets a log-only mailer; hosted mode gets none, so
// the contact form reports the send service as unavailable.
func newMailer(cfg Config, logger *slog.Logger) mailer.Mailer {
	send, err := mailer.NewResend(cfg.ResendAPIKey, mailer.WithLogger(logger))
	if err == nil {
		return send
	}
	if !errors.Is(err, core.ErrNotConfigured) {
		logger.Error("email provider setup failed", "error", err)
	}
	if cfg.ContentDir != "" {
		logger.Warn("email provider not configured, logging submissions instead")
		return mailer.NewDev(logger)
	}
	logger.Warn("email provider not configured, contact form disabled")
	return nil
}
