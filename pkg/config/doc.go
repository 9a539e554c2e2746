// Package config loads typed configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct parsing and
// github.com/joho/godotenv for .env files:
//
//   - Load parses a struct once per type and caches it for the process.
//     The default .env file is loaded into the environment first.
//   - MustLoad panics on failure, for configuration required at startup.
//   - LoadFiles parses from explicit .env files without touching the
//     process environment or the cache, which suits CLIs and tests.
//   - Reset clears the cache.
//
// Precedence is always process environment, then .env files, then envDefault tags.
package config
