// Package mailer defines the email-send boundary and its implementations.
// Sending is a single opaque call: one message in, one provider identifier
// out. No retries, no queueing.
package mailer

import "context"

// Message is one outbound email.
type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	ReplyTo string `json:"reply_to,omitempty"`
	Subject string `json:"subject"`
	HTML    string `json:"html,omitempty"`
	Text    string `json:"text,omitempty"`
}

// Mailer delivers messages through an external provider.
type Mailer interface {
	// Send attempts delivery exactly once and returns the provider's
	// message identifier.
	Send(ctx context.Context, msg Message) (id string, err error)
}
