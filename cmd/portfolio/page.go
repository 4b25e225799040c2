package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
)

var pageCmd = &cobra.Command{
	Use:   "page [home|about|services|contact]",
	Short: "Resolve one page model and print it as JSON",
	Long: `Page resolves a single page against the configured content source and
prints the ready-to-render model. Missing content resolves to defaults, so
this always produces output; run with --verbose to see what fell back.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"home", "about", "services", "contact"},
	Run: func(cmd *cobra.Command, args []string) {
		app := newApp()
		ctx := context.Background()

		var model any
		switch args[0] {
		case "home":
			model = app.Resolver.Home(ctx)
		case "about":
			model = app.Resolver.About(ctx)
		case "services":
			model = app.Resolver.Services(ctx)
		case "contact":
			model = app.Resolver.Contact(ctx)
		default:
			fmt.Fprintf(os.Stderr, "unknown page: %s\n", args[0])
			os.Exit(1)
		}

		printJSON(model)
	},
}

func printJSON(model any) {
	data, err := sonic.ConfigDefault.MarshalIndent(model, "", "  ")
	if err != nil {
		fatal("encoding output", err)
	}
	fmt.Println(string(data))
}

func init() {
	rootCmd.AddCommand(pageCmd)
}
