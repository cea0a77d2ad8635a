// Package logger builds the structured slog loggers used across the email
// toolkit.
//
// New assembles a *slog.Logger from functional options: output format (text or
// JSON), level, static attributes and ContextExtractor callbacks that copy
// values from a context.Context onto every record. WithEnvironment applies the
// per-environment defaults (text+debug in development, JSON+info otherwise).
//
//	log := logger.New(
//	    logger.WithEnvironment(env, "hsmail"),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "email sent", logger.MessageID(id), logger.Template("welcome"))
//
// Attribute helpers (Error, AssetID, MessageID, Provider, ...) keep key names
// consistent; Error and MessageID return an empty attribute for zero values so
// they can be passed unconditionally.
//
// Packages that accept a logger fall back to Discard when given nil.
package logger
