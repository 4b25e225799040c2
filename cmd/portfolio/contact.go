package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bmelese/portfolio/pkg/contact"
)

var (
	contactName    string
	contactEmail   string
	contactMessage string
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Submit a contact form message from the command line",
	Long: `Contact runs a submission through the same validation and delivery path
as the HTTP endpoint. Useful for checking the email provider configuration.`,
	Run: func(cmd *cobra.Command, args []string) {
		app := newApp()

		result := app.Contact.Submit(context.Background(), contact.Submission{
			Name:    contactName,
			Email:   contactEmail,
			Message: contactMessage,
		})
		if !result.OK {
			fmt.Fprintf(os.Stderr, "submission failed (%s): %s\n", result.Kind, result.Detail)
			os.Exit(1)
		}
		fmt.Printf("%s (id: %s)\n", result.Message, result.ID)
	},
}

func init() {
	rootCmd.AddCommand(contactCmd)
	contactCmd.Flags().StringVar(&contactName, "name", "", "Sender name")
	contactCmd.Flags().StringVar(&contactEmail, "email", "", "Sender email, used as reply-to")
	contactCmd.Flags().StringVar(&contactMessage, "message", "", "Message body")
	_ = contactCmd.MarkFlagRequired("name")
	_ = contactCmd.MarkFlagRequired("email")
	_ = contactCmd.MarkFlagRequired("message")
}
