package email

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendgridAPI is the part of *sendgrid.Client used for delivery.
type sendgridAPI interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

type sendgridClient struct {
	client sendgridAPI
	config Config
}

// NewSendGridClient creates a SendGrid-backed email sender.
func NewSendGridClient(cfg Config) (EmailSender, error) {
	if cfg.SendGridAPIKey == "" {
		return nil, fmt.Errorf("%w: SendGridAPIKey is required", ErrInvalidConfig)
	}
	if err := validateSenderIdentity(cfg); err != nil {
		return nil, err
	}

	return &sendgridClient{
		client: sendgrid.NewSendClient(cfg.SendGridAPIKey),
		config: cfg,
	}, nil
}

// MustNewSendGridClient creates a SendGrid client that panics on invalid config.
func MustNewSendGridClient(cfg Config) EmailSender {
	client, err := NewSendGridClient(cfg)
	if err != nil {
		panic(err)
	}
	return client
}

// SendEmail implements EmailSender using the SendGrid v3 mail send API.
// The message id is taken from the X-Message-Id response header.
func (c *sendgridClient) SendEmail(ctx context.Context, msg Message) (string, error) {
	msg = withDefaults(msg, c.config)
	if err := msg.Validate(); err != nil {
		return "", err
	}

	resp, err := c.client.SendWithContext(ctx, buildSendGridMail(msg))
	if err != nil {
		return "", errors.Join(ErrFailedToSendEmail, err)
	}
	if resp == nil {
		return "", fmt.Errorf("%w: empty response", ErrFailedToSendEmail)
	}
	if resp.StatusCode >= 300 {
		return "", errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("sendgrid error: %d - %s", resp.StatusCode, resp.Body),
		)
	}
	return headerValue(resp.Headers, "X-Message-Id"), nil
}

func buildSendGridMail(msg Message) *mail.SGMailV3 {
	m := mail.NewV3Mail()

	fromName, fromAddr := splitAddress(msg.From)
	m.SetFrom(mail.NewEmail(fromName, fromAddr))
	m.Subject = msg.Subject

	p := mail.NewPersonalization()
	for _, to := range msg.To {
		p.AddTos(mail.NewEmail("", to))
	}
	m.AddPersonalizations(p)

	if msg.ReplyTo != "" {
		m.SetReplyTo(mail.NewEmail("", msg.ReplyTo))
	}
	// text/plain must precede text/html
	if msg.Text != "" {
		m.AddContent(mail.NewContent("text/plain", msg.Text))
	}
	m.AddContent(mail.NewContent("text/html", msg.HTML))
	if msg.Tag != "" {
		m.AddCategories(msg.Tag)
	}
	return m
}

func headerValue(h map[string][]string, key string) string {
	for k, v := range h {
		if len(v) > 0 && strings.EqualFold(k, key) {
			return v[0]
		}
	}
	return ""
}
