package main

import (
	"github.com/dmitrymomot/cardcheck/pkg/httpserver"
	"github.com/dmitrymomot/cardcheck/pkg/ratelimiter"
	"github.com/dmitrymomot/cardcheck/pkg/redis"
)

const (
	storeMemory = "memory"
	storeRedis  = "redis"
)

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Name     string `env:"APP_NAME" envDefault:"cardcheckd"`
	LogLevel string `env:"LOG_LEVEL"` // overrides the environment preset

	// TrustedIPHeaders are consulted for the client address before RemoteAddr.
	// "none" trusts no header.
	TrustedIPHeaders []string `env:"TRUSTED_IP_HEADERS" envSeparator:","`

	RateLimitStore    string `env:"RATE_LIMIT_STORE" envDefault:"memory"` // memory or redis
	RateLimitFailOpen bool   `env:"RATE_LIMIT_FAIL_OPEN" envDefault:"false"`

	HTTP      httpserver.Config
	RateLimit ratelimiter.Config
	Redis     redis.Config
}

func (c appConfig) ipHeaders() []string {
	switch {
	case len(c.TrustedIPHeaders) == 0:
		return clientIPDefaults()
	case len(c.TrustedIPHeaders) == 1 && c.TrustedIPHeaders[0] == "none":
		return nil
	}
	return c.TrustedIPHeaders
}
