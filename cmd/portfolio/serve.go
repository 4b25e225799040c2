package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bmelese/portfolio/internal/server"
	"github.com/bmelese/portfolio/pkg/adapters/fscontent"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site content API over HTTP",
	Long: `Serve starts the HTTP API: resolved page models under /api/pages, the
project catalog under /api/projects, the contact form at /api/contact, and
probe/metrics endpoints. Shuts down gracefully on SIGINT or SIGTERM.`,
	Run: func(cmd *cobra.Command, args []string) {
		app := newApp()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		// In local content mode, log edits as they land so a developer can
		// see their changes are being picked up.
		if repo, ok := app.Source.(*fscontent.Repository); ok {
			events := make(chan fscontent.Event, 16)
			stopWatch, err := repo.Watch(ctx, events)
			if err != nil {
				app.Logger.Warn("content watcher unavailable", "error", err)
			} else {
				defer func() { _ = stopWatch(context.Background()) }()
				go func() {
					for event := range events {
						app.Logger.Info("content changed", "path", event.Path, "op", event.Op)
					}
				}()
			}
		}

		if err := server.New(app).Run(ctx); err != nil {
			fatal("http server", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
