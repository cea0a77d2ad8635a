package email

import "errors"

var (
	ErrFailedToSendEmail = errors.New("mailer.errors.failed_to_send_email")
	ErrInvalidConfig     = errors.New("mailer.errors.invalid_config")
	ErrInvalidParams     = errors.New("mailer.errors.invalid_params")
	ErrRenderFailed      = errors.New("mailer.errors.render_failed")
	ErrUnknownProvider   = errors.New("mailer.errors.unknown_provider")
)
