package email

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
)

// ConsoleSender implements EmailSender for local development and demos.
// Messages are written as single lines to the configured writer instead of
// going through an email provider.
type ConsoleSender struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsoleSender creates a console email sender writing to w. A nil writer
// defaults to os.Stdout.
func NewConsoleSender(w io.Writer) EmailSender {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleSender{out: w}
}

// SendEmail writes the message as one "[EMAIL]" line.
func (c *ConsoleSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := fmt.Fprintf(c.out, "[EMAIL] To: %s | %s | %s\n",
		params.SendTo, params.Subject, params.Body); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToSendEmail, err)
	}
	return nil
}
