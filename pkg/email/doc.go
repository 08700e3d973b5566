// Package email provides a provider-agnostic interface for sending the
// plain-text transactional messages the circulation desk produces, with
// built-in support for Postmark and a console sender for development.
//
// The package is built around the EmailSender interface so delivery can be
// swapped without touching the code that sends. Currently supported:
//   - Postmark client for production delivery
//   - ConsoleSender for development and demos (one line per message)
//
// All implementations validate the message parameters before sending.
//
// # Usage
//
//	cfg := email.Config{
//	    PostmarkServerToken:  "server-token",
//	    PostmarkAccountToken: "account-token",
//	    SenderEmail:          "desk@example.com",
//	    SupportEmail:         "support@example.com",
//	}
//
//	sender, err := email.NewPostmarkClient(cfg)
//	if err != nil {
//	    // handle configuration error
//	}
//
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//	    SendTo:  "reader@example.com",
//	    Subject: "Available: Software Engineering",
//	    Body:    "You can request it now.",
//	    Tag:     "availability",
//	})
//
// Development mode writes to a stream instead:
//
//	sender := email.NewConsoleSender(os.Stdout)
//
// # Error Handling
//
// Sentinel errors cover the failure scenarios and can be checked with
// errors.Is: ErrInvalidConfig, ErrInvalidParams, ErrFailedToSendEmail.
package email
