package ratelimiter_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cardcheck/pkg/ratelimiter"
)

func redisClient(t *testing.T) *goredis.Client {
	t.Helper()
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	opts, err := goredis.ParseURL(url)
	require.NoError(t, err)
	client := goredis.NewClient(opts)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())
	return client
}

func TestRedisStore(t *testing.T) {
	client := redisClient(t)
	store := ratelimiter.NewRedisStore(client, "cardcheck-test:"+uuid.NewString()+":")

	b, err := ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: 200 * time.Millisecond})
	require.NoError(t, err)
	ctx := context.Background()

	res, err := b.Allow(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Remaining)

	res, err = b.Allow(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Remaining)

	res, err = b.Allow(ctx, "k")
	require.NoError(t, err)
	assert.False(t, res.Allowed())
	assert.True(t, res.ResetAt.After(time.Now().Add(-time.Second)))

	time.Sleep(250 * time.Millisecond)
	res, err = b.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, res.Allowed())

	require.NoError(t, b.Reset(ctx, "k"))
	st, err := b.Status(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 2, st.Remaining)
}

func TestRedisStore_Unavailable(t *testing.T) {
	t.Parallel()

	client := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 100 * time.Millisecond})
	defer client.Close()

	store := ratelimiter.NewRedisStore(client, "")
	_, _, err := store.ConsumeTokens(context.Background(), "k", 1, testConfig)
	assert.ErrorIs(t, err, ratelimiter.ErrStoreUnavailable)
	assert.ErrorIs(t, store.Reset(context.Background(), "k"), ratelimiter.ErrStoreUnavailable)
}
