package ratelimiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cardcheck/pkg/ratelimiter"
)

func TestMemoryStore_RemoveStale(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	store := ratelimiter.NewMemoryStore(
		ratelimiter.WithCleanupInterval(0),
		ratelimiter.WithStaleAfter(time.Minute),
		ratelimiter.WithClock(clock.Now),
	)
	defer store.Close()

	ctx := context.Background()
	_, _, err := store.ConsumeTokens(ctx, "old", 1, testConfig)
	require.NoError(t, err)
	clock.Advance(50 * time.Second)
	_, _, err = store.ConsumeTokens(ctx, "fresh", 1, testConfig)
	require.NoError(t, err)
	assert.Equal(t, 2, store.Len())

	clock.Advance(20 * time.Second)
	store.RemoveStale()
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_Sweeper(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(
		ratelimiter.WithCleanupInterval(10*time.Millisecond),
		ratelimiter.WithStaleAfter(time.Nanosecond),
	)
	_, _, err := store.ConsumeTokens(context.Background(), "k", 1, testConfig)
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 10*time.Millisecond)

	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close(), "close is idempotent")
}

func TestMemoryStore_LargeGap(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0), ratelimiter.WithClock(clock.Now))
	defer store.Close()

	cfg := ratelimiter.Config{Capacity: 1 << 30, RefillRate: 1, RefillInterval: time.Nanosecond}
	ctx := context.Background()
	_, _, err := store.ConsumeTokens(ctx, "k", 1<<30, cfg)
	require.NoError(t, err)

	clock.Advance(100 * 365 * 24 * time.Hour)
	remaining, _, err := store.ConsumeTokens(ctx, "k", 0, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1<<30, remaining)
}
