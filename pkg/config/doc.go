// Package config loads application configuration from environment variables
// into typed structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files (the default `.env` in the
//     working directory is read automatically on first Load).
//   - Load parses the environment into any struct using `env` field tags and
//     caches the result per type for the lifetime of the process.
//   - MustLoad panics instead of returning an error.
//   - ResetCache clears the cache, which is handy in tests.
//
// # Self-validating configs
//
// A config whose pointer implements Validatable is checked right after
// parsing. The natural implementation is a fieldcheck session:
//
//	func (c *CLIConfig) Validate() error {
//	    return fieldcheck.Of(c).
//	        EqualsAny("format", func(c *CLIConfig) any { return c.Format }, "text", "json", "yaml").
//	        Err()
//	}
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrInvalidConfig`  – the parsed struct failed Validate; the
//     underlying error is joined, so `fieldcheck.AsError` still finds it.
//   - `ErrLoadingEnvFile` – an explicitly requested .env file failed to load.
//   - `ErrConfigNotLoaded` – requested config type has not been loaded yet.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`MustLoad`.
//
// A failed Load is not cached, so it can be retried after the environment
// changes.
package config
