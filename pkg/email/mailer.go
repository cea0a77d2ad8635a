package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/a-h/templ"

	"github.com/harbourspace/emails/pkg/email/templates"
	"github.com/harbourspace/emails/pkg/logger"
)

// Envelope carries the addressing of one email. From and ReplyTo fall back
// to the mailer's defaults when empty.
type Envelope struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	Tag     string
}

// Mailer renders templ components and hands the result to an EmailSender.
type Mailer struct {
	sender  EmailSender
	from    string
	replyTo string
	log     *slog.Logger
}

// MailerOption configures Mailer.
type MailerOption func(*Mailer)

// WithLogger sets the mailer logger.
func WithLogger(l *slog.Logger) MailerOption {
	return func(m *Mailer) {
		if l != nil {
			m.log = l
		}
	}
}

// NewMailer creates a mailer sending through sender with the identity from cfg.
func NewMailer(sender EmailSender, cfg Config, opts ...MailerOption) *Mailer {
	m := &Mailer{
		sender:  sender,
		from:    cfg.DefaultFromEmail,
		replyTo: cfg.SupportEmail,
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.With(logger.Component("email.mailer"))
	return m
}

// Compose renders body into a Message addressed by env, including a plain
// text alternative.
func (m *Mailer) Compose(ctx context.Context, env Envelope, body templ.Component) (Message, error) {
	if body == nil {
		return Message{}, fmt.Errorf("%w: nil component", ErrRenderFailed)
	}

	html, err := templates.Render(ctx, body)
	if err != nil {
		return Message{}, errors.Join(ErrRenderFailed, err)
	}

	msg := Message{
		From:    env.From,
		To:      env.To,
		ReplyTo: env.ReplyTo,
		Subject: env.Subject,
		HTML:    html,
		Text:    templates.PlainText(html),
		Tag:     env.Tag,
	}
	if msg.From == "" {
		msg.From = m.from
	}
	if msg.ReplyTo == "" {
		msg.ReplyTo = m.replyTo
	}
	return msg, nil
}

// Send renders body and delivers it, returning the provider message id.
func (m *Mailer) Send(ctx context.Context, env Envelope, body templ.Component) (string, error) {
	log := m.log.With(logger.Recipients(env.To), slog.String("subject", env.Subject))

	msg, err := m.Compose(ctx, env, body)
	if err != nil {
		log.ErrorContext(ctx, "failed to render email", logger.Error(err))
		return "", err
	}

	start := time.Now()
	id, err := m.sender.SendEmail(ctx, msg)
	if err != nil {
		log.ErrorContext(ctx, "failed to send email", logger.Error(err))
		if !errors.Is(err, ErrFailedToSendEmail) && !errors.Is(err, ErrInvalidParams) {
			err = errors.Join(ErrFailedToSendEmail, err)
		}
		return "", err
	}

	log.InfoContext(ctx, "email sent", logger.MessageID(id), logger.Duration(time.Since(start)))
	return id, nil
}
