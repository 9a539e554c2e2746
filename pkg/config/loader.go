package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache stores one parsed copy per configuration type.
type configCache struct {
	mu     sync.RWMutex
	values map[reflect.Type]any
}

var (
	globalCache = &configCache{values: make(map[reflect.Type]any)}

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v. Each configuration type is parsed
// once per process; later calls for the same type receive the cached copy.
//
// The .env file in the working directory, when present, is loaded into the
// process environment before the first parse. Variables already set in the
// environment take precedence over the file.
//
// Example:
//
//	type RateLimitConfig struct {
//		Capacity int           `env:"RATE_LIMIT_CAPACITY" envDefault:"60"`
//		Interval time.Duration `env:"RATE_LIMIT_REFILL_INTERVAL" envDefault:"1s"`
//	}
//
//	var cfg RateLimitConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvLoaded.Do(func() {
		// A missing .env is not an error.
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()

	globalCache.mu.RLock()
	cached, ok := globalCache.values[key]
	globalCache.mu.RUnlock()
	if ok {
		*v = cached.(T)
		return nil
	}

	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	if cached, ok := globalCache.values[key]; ok {
		*v = cached.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	globalCache.values[key] = parsed
	*v = parsed
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadFiles parses v from the given .env files overlaid by the process
// environment. Nothing is cached and the process environment is not modified.
// Later files override earlier ones.
func LoadFiles[T any](v *T, files ...string) error {
	if v == nil {
		return ErrNilPointer
	}

	vars := make(map[string]string)
	for _, f := range files {
		fileVars, err := godotenv.Read(f)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrEnvFile, f, err)
		}
		for k, val := range fileVars {
			vars[k] = val
		}
	}
	for k, val := range env.ToMap(os.Environ()) {
		vars[k] = val
	}

	var parsed T
	if err := env.ParseWithOptions(&parsed, env.Options{Environment: vars}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	*v = parsed
	return nil
}

// Reset drops every cached configuration so the next Load parses again.
func Reset() {
	globalCache.mu.Lock()
	globalCache.values = make(map[reflect.Type]any)
	globalCache.mu.Unlock()
}
