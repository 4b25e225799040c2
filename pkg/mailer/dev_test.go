package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDevSend(t *testing.T) {
	var m Mailer = NewDev(nil)

	id, err := m.Send(context.Background(), Message{
		To:      "site@example.com",
		Subject: "hello",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	// Each accepted message gets its own identifier.
	second, err := m.Send(context.Background(), Message{To: "site@example.com"})
	require.NoError(t, err)
	assert.NotEqual(t, id, second)
}
