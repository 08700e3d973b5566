package email

import (
	"context"
	"fmt"
	"regexp"
)

// EmailSender represents an interface for sending emails.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams represents the parameters for sending an email.
type SendEmailParams struct {
	SendTo  string `json:"send_to"`       // Email address of the recipient
	Subject string `json:"subject"`       // Subject of the email
	Body    string `json:"body"`          // Plain-text body of the email
	Tag     string `json:"tag,omitempty"` // Optional, for categorizing outbound mail
}

// emailRegex is intentionally permissive; deliverability is the provider's
// problem, this only rejects obviously broken addresses.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validate checks that the params describe a sendable message.
func (p SendEmailParams) Validate() error {
	if p.SendTo == "" {
		return fmt.Errorf("%w: SendTo is required", ErrInvalidParams)
	}
	if !emailRegex.MatchString(p.SendTo) {
		return fmt.Errorf("%w: SendTo must be a valid email address", ErrInvalidParams)
	}
	if p.Subject == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if p.Body == "" {
		return fmt.Errorf("%w: Body is required", ErrInvalidParams)
	}
	return nil
}
