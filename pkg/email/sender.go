package email

import (
	"context"
	"fmt"
)

// EmailSender delivers a rendered message and returns the provider's
// message identifier.
type EmailSender interface {
	SendEmail(ctx context.Context, msg Message) (string, error)
}

// NewSender returns the sender selected by cfg.Provider.
func NewSender(cfg Config) (EmailSender, error) {
	switch cfg.Provider {
	case ProviderSendGrid, "":
		return NewSendGridClient(cfg)
	case ProviderPostmark:
		return NewPostmarkClient(cfg)
	case ProviderDev:
		return NewDevSender(cfg.DevDir), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}

// MustNewSender is like NewSender but panics on error.
func MustNewSender(cfg Config) EmailSender {
	s, err := NewSender(cfg)
	if err != nil {
		panic(err)
	}
	return s
}

// validateSenderIdentity checks the addresses every provider needs.
func validateSenderIdentity(cfg Config) error {
	if cfg.DefaultFromEmail == "" {
		return fmt.Errorf("%w: DefaultFromEmail is required", ErrInvalidConfig)
	}
	if _, addr := splitAddress(cfg.DefaultFromEmail); !ValidAddress(addr) {
		return fmt.Errorf("%w: DefaultFromEmail must be a valid email address", ErrInvalidConfig)
	}
	if cfg.SupportEmail != "" && !ValidAddress(cfg.SupportEmail) {
		return fmt.Errorf("%w: SupportEmail must be a valid email address", ErrInvalidConfig)
	}
	return nil
}
