package mailer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Dev is a log-only mailer for local development. It accepts every message
// and mints its own identifiers.
type Dev struct {
	Logger *slog.Logger
}

// NewDev creates a log-only mailer. A nil logger falls back to the default.
func NewDev(logger *slog.Logger) *Dev {
	return &Dev{Logger: logger}
}

// Send implements Mailer.
func (d *Dev) Send(ctx context.Context, msg Message) (string, error) {
	id := uuid.NewString()
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("dev mailer: message accepted",
		"id", id,
		"to", msg.To,
		"reply_to", msg.ReplyTo,
		"subject", msg.Subject,
	)
	return id, nil
}
