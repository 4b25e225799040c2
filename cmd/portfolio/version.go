package main

import (
	"fmt"
	"strings"

	"github.com/bmelese/portfolio"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of portfolio",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("portfolio version %s\n", strings.TrimSpace(portfolio.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
