package logger

import (
	"log/slog"
	"strings"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// AssetID records a logical asset identifier.
func AssetID(id string) slog.Attr {
	return slog.String("asset_id", id)
}

// PublicID records a CDN public identifier.
func PublicID(id string) slog.Attr {
	return slog.String("public_id", id)
}

// Path records a filesystem or object path.
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Provider records the email delivery provider name.
func Provider(name string) slog.Attr {
	return slog.String("provider", name)
}

// MessageID records a provider message identifier.
// If id is empty, it returns an empty Attr.
func MessageID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("message_id", id)
}

// Recipients records the recipient list as a single comma separated value.
func Recipients(to []string) slog.Attr {
	return slog.String("recipients", strings.Join(to, ","))
}

// Template records the email template name.
func Template(name string) slog.Attr {
	return slog.String("template", name)
}

// Count records a count under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
