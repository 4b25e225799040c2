package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bmelese/portfolio/internal/platform"
)

var (
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Content service for a personal portfolio site",
	Long: `Portfolio resolves site content from a headless CMS (or a local content
directory) into ready-to-render page models, and serves them over HTTP
together with a contact form endpoint.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// newApp assembles the application from the environment.
func newApp() *platform.App {
	cfg, err := platform.FromEnv()
	if err != nil {
		fatal("loading configuration", err)
	}
	app, err := platform.New(cfg, platform.WithLogger(slog.Default()))
	if err != nil {
		fatal("assembling application", err)
	}
	return app
}
