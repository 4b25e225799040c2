package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bmelese/portfolio/pkg/core"
)

var projectsFeatured bool

var projectsCmd = &cobra.Command{
	Use:   "projects [slug]",
	Short: "List projects or show one project in detail",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		app := newApp()
		ctx := context.Background()

		if len(args) == 1 {
			detail, err := app.Resolver.Project(ctx, args[0])
			if err != nil {
				if errors.Is(err, core.ErrNotFound) {
					fmt.Fprintf(os.Stderr, "no project with slug %q\n", args[0])
					os.Exit(1)
				}
				fatal("resolving project", err)
			}
			printJSON(detail)
			return
		}

		if projectsFeatured {
			printJSON(app.Resolver.FeaturedProjects(ctx))
			return
		}
		printJSON(app.Resolver.Projects(ctx))
	},
}

func init() {
	rootCmd.AddCommand(projectsCmd)
	projectsCmd.Flags().BoolVar(&projectsFeatured, "featured", false, "Only featured projects")
}
