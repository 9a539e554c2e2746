package ratelimiter

import (
	"context"
	"time"
)

// Store defines the interface for rate limit storage backends.
type Store interface {
	// ConsumeTokens refills the bucket for key and takes tokens from it when
	// enough are available. A denied request consumes nothing and reports a
	// negative remaining count. tokens == 0 only reads the current state.
	ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error)

	// Reset clears the rate limit state for the given key.
	Reset(ctx context.Context, key string) error
}

// refill applies the token bucket arithmetic shared by the stores and
// returns the new token count and refill instant.
func refill(tokens int, lastRefill, now time.Time, config Config) (int, time.Time) {
	elapsed := now.Sub(lastRefill)
	if elapsed < config.RefillInterval {
		return tokens, lastRefill
	}
	// Capped so that huge gaps cannot overflow the multiplication.
	maxIntervals := int64(config.Capacity/config.RefillRate + 1)
	intervals := int(min(int64(elapsed/config.RefillInterval), maxIntervals))
	return min(tokens+intervals*config.RefillRate, config.Capacity), now
}

// take consumes n tokens if available.
func take(tokens, n int) (left, remaining int) {
	if tokens >= n {
		return tokens - n, tokens - n
	}
	return tokens, tokens - n
}
