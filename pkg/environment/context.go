package environment

import (
	"context"
	"strings"
)

// Environment represents the deployment environment a process runs in.
type Environment string

const (
	// Development serves local static assets and writes emails to disk.
	Development Environment = "development"
	// Staging behaves like production against non-production accounts.
	Staging Environment = "staging"
	// Production resolves assets through the CDN and delivers real email.
	Production Environment = "production"
)

// Parse maps a raw environment flag (APP_ENV, NODE_ENV style) onto a known
// Environment. Unknown and empty values fall back to Development so that a
// missing flag never turns on production delivery.
func Parse(raw string) Environment {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

// String implements fmt.Stringer.
func (e Environment) String() string { return string(e) }

// IsProduction reports whether e is Production.
func (e Environment) IsProduction() bool { return e == Production }

// IsProductionLike reports whether e should log like production: JSON at
// info level. Staging counts as production-like.
func (e Environment) IsProductionLike() bool { return e == Production || e == Staging }

type contextKey struct{}

// WithContext adds environment to context.
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext retrieves environment from context.
func FromContext(ctx context.Context) Environment {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(contextKey{}).(Environment)
	return env
}

// IsProduction checks if the environment from context is production.
func IsProduction(ctx context.Context) bool {
	return FromContext(ctx) == Production
}

// IsDevelopment checks if the environment from context is development.
func IsDevelopment(ctx context.Context) bool {
	return FromContext(ctx) == Development
}
