package email

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
)

// Message is a rendered email ready for delivery.
type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"-"`
	Text    string   `json:"-"`
	Tag     string   `json:"tag,omitempty"` // Optional, used for provider analytics
}

// emailRegex is a pragmatic address check; net/mail accepts display names and
// local-only addresses that delivery APIs reject.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidAddress reports whether s is a bare email address.
func ValidAddress(s string) bool {
	return emailRegex.MatchString(s)
}

// Validate checks that the message can be handed to a provider.
func (m Message) Validate() error {
	if len(m.To) == 0 {
		return fmt.Errorf("%w: at least one recipient is required", ErrInvalidParams)
	}
	for _, to := range m.To {
		if !ValidAddress(strings.TrimSpace(to)) {
			return fmt.Errorf("%w: invalid recipient %q", ErrInvalidParams, to)
		}
	}
	if m.From != "" {
		if _, err := mail.ParseAddress(m.From); err != nil {
			return fmt.Errorf("%w: invalid sender %q", ErrInvalidParams, m.From)
		}
	}
	if m.ReplyTo != "" && !ValidAddress(m.ReplyTo) {
		return fmt.Errorf("%w: invalid reply-to %q", ErrInvalidParams, m.ReplyTo)
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidParams)
	}
	if strings.TrimSpace(m.HTML) == "" {
		return fmt.Errorf("%w: html body is required", ErrInvalidParams)
	}
	return nil
}

// splitAddress separates an optional display name from an address, accepting
// both "Name <addr>" and bare "addr".
func splitAddress(s string) (name, address string) {
	if a, err := mail.ParseAddress(s); err == nil {
		return a.Name, a.Address
	}
	return "", strings.TrimSpace(s)
}
