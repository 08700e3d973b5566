package email_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/librakit/pkg/email"
)

func TestConsoleSenderWritesOneLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sender := email.NewConsoleSender(&buf)

	err := sender.SendEmail(context.Background(), validParams())
	require.NoError(t, err)

	assert.Equal(t,
		"[EMAIL] To: reader@example.com | Available: Software Engineering | You can request it now.\n",
		buf.String(),
	)
}

func TestConsoleSenderValidatesParams(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sender := email.NewConsoleSender(&buf)

	params := validParams()
	params.SendTo = ""

	err := sender.SendEmail(context.Background(), params)
	require.ErrorIs(t, err, email.ErrInvalidParams)
	assert.Zero(t, buf.Len())
}
