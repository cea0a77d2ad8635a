// Package config loads typed configuration from environment variables.
//
// It is a thin layer over github.com/caarlos0/env/v11 (struct tags) and
// github.com/joho/godotenv (.env files):
//
//   - Load parses the environment into any struct and caches the result per
//     type, so every package can call Load for its own Config without paying
//     the parsing cost twice.
//   - MustLoad panics on failure, for configuration the binary cannot start
//     without.
//   - LoadEnv reads explicit .env files; the default ./.env is read lazily by
//     the first Load.
//   - ResetCache clears the cache between tests.
//
// # Usage
//
//	var cfg assets.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// # Errors
//
// ErrParsingConfig wraps the underlying env error (missing required values,
// malformed durations, ...). A failed parse is not cached, so fixing the
// environment and calling Load again succeeds.
package config
