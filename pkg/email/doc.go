// Package email provides a provider-agnostic interface for sending
// transactional emails rendered from templ components.
//
// # Architecture
//
// The package is built around the EmailSender interface, allowing different
// providers to be swapped through configuration alone:
//   - SendGrid (default) via the v3 mail send API
//   - Postmark with open and HTML link tracking
//   - DevSender for local development (saves emails to disk)
//
// NewSender picks the implementation from Config.Provider (EMAIL_PROVIDER).
// Every implementation validates the message before sending and returns the
// provider's message id.
//
// # Usage
//
//	cfg := config.MustLoad[email.Config]()
//	sender, err := email.NewSender(cfg)
//	if err != nil {
//	    return err
//	}
//
//	mailer := email.NewMailer(sender, cfg, email.WithLogger(log))
//	id, err := mailer.Send(ctx, email.Envelope{
//	    To:      []string{"student@example.com"},
//	    Subject: "You're registered!",
//	    Tag:     "event-confirmation",
//	}, kit.EventConfirmation(props))
//
// Mailer renders the component with templates.Render and derives the plain
// text alternative with templates.PlainText.
//
// # Configuration
//
//   - EMAIL_PROVIDER: sendgrid, postmark or dev
//   - SENDGRID_API_KEY: required for sendgrid
//   - POSTMARK_SERVER_TOKEN, POSTMARK_ACCOUNT_TOKEN: required for postmark
//   - DEFAULT_FROM_EMAIL: sender identity, required
//   - SUPPORT_EMAIL: optional Reply-To
//   - EMAIL_DEV_DIR: output directory of the dev sender
//
// # Error Handling
//
// Sentinel errors can be checked with errors.Is:
//   - ErrInvalidConfig: configuration validation failed
//   - ErrInvalidParams: message validation failed
//   - ErrRenderFailed: template rendering failed
//   - ErrFailedToSendEmail: delivery failed
package email
