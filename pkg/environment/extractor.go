package environment

import (
	"context"
	"log/slog"
)

// LogKey is the attribute key used by LoggerExtractor.
const LogKey = "env"

// LoggerExtractor adds the environment carried by ctx to log records.
// Records logged without an environment in ctx are left untouched.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		env := FromContext(ctx)
		if env == "" {
			return slog.Attr{}, false
		}
		return slog.String(LogKey, env.String()), true
	}
}
