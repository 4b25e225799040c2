// Package server exposes the resolved site content and the contact form
// over HTTP, plus the usual probe and metrics endpoints.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bmelese/portfolio/internal/platform"
)

const shutdownTimeout = 10 * time.Second

// Server serves the JSON API.
type Server struct {
	app    *platform.App
	logger *slog.Logger
}

// New creates a Server around an assembled application.
func New(app *platform.App) *Server {
	return &Server{app: app, logger: app.Logger}
}

// Handler builds the full route table, wrapped with request-ID and access
// logging middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/pages/home", s.handleHome)
	mux.HandleFunc("GET /api/pages/about", s.handleAbout)
	mux.HandleFunc("GET /api/pages/services", s.handleServices)
	mux.HandleFunc("GET /api/pages/contact", s.handleContactPage)
	mux.HandleFunc("GET /api/projects", s.handleProjects)
	mux.HandleFunc("GET /api/projects/{slug}", s.handleProject)
	mux.HandleFunc("POST /api/contact", s.handleContactSubmit)

	mux.Handle("GET /metrics", promhttp.HandlerFor(s.app.Registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ready"))
	})

	return s.withRequestID(s.withAccessLog(mux))
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.app.Config.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
