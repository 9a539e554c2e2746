// Package ratelimiter implements token bucket rate limiting with in-memory
// and Redis storage and an HTTP middleware.
//
// A bucket holds up to Capacity tokens and gains RefillRate tokens every
// RefillInterval. Each request takes one token; a request that finds too few
// tokens is denied without consuming any.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       60,
//		RefillRate:     1,
//		RefillInterval: time.Second,
//	})
//	if err != nil {
//		return err
//	}
//	r.Use(ratelimiter.Middleware(limiter, ratelimiter.ByIP))
//
// RedisStore runs the same arithmetic in a Lua script so that every instance
// of a service shares one set of buckets:
//
//	store := ratelimiter.NewRedisStore(client, "cardcheck:ratelimit:")
package ratelimiter
