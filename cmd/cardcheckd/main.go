// Command cardcheckd serves the card network API over HTTP.
//
// Configuration comes from the environment (and an optional .env file):
//
//	APP_ENV=production HTTP_ADDR=:8080 RATE_LIMIT_STORE=redis REDIS_URL=redis://redis:6379/0 cardcheckd
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/cardcheck/pkg/clientip"
	"github.com/dmitrymomot/cardcheck/pkg/config"
	"github.com/dmitrymomot/cardcheck/pkg/httpserver"
	"github.com/dmitrymomot/cardcheck/pkg/logger"
	"github.com/dmitrymomot/cardcheck/pkg/ratelimiter"
	"github.com/dmitrymomot/cardcheck/pkg/redis"
	"github.com/dmitrymomot/cardcheck/pkg/requestid"
)

var errUnknownStore = errors.New("unknown rate limit store")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("cardcheckd stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	limiter, ready, closeStore, err := newLimiter(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	handler := newRouter(routerDeps{cfg: cfg, log: log, limiter: limiter, ready: ready})

	log.Info("starting cardcheckd",
		slog.String("addr", cfg.HTTP.Addr),
		slog.String("rate_limit_store", cfg.RateLimitStore),
	)
	return srv.Run(ctx, handler)
}

// newLimiter builds the token bucket on the configured store. The returned
// checks feed the readiness probe.
func newLimiter(ctx context.Context, cfg appConfig, log *slog.Logger) (ratelimiter.Limiter, []httpserver.Check, func(), error) {
	switch cfg.RateLimitStore {
	case storeMemory, "":
		store := ratelimiter.NewMemoryStore()
		bucket, err := ratelimiter.NewBucket(store, cfg.RateLimit)
		if err != nil {
			_ = store.Close()
			return nil, nil, nil, err
		}
		return bucket, nil, func() { _ = store.Close() }, nil

	case storeRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, nil, err
		}
		closeClient := func() {
			if err := client.Close(); err != nil {
				log.Warn("closing redis client", logger.Error(err))
			}
		}
		bucket, err := ratelimiter.NewBucket(ratelimiter.NewRedisStore(client, cfg.Redis.KeyPrefix+"ratelimit:"), cfg.RateLimit)
		if err != nil {
			closeClient()
			return nil, nil, nil, err
		}
		return bucket, []httpserver.Check{redis.Healthcheck(client)}, closeClient, nil
	}

	return nil, nil, nil, fmt.Errorf("%w: %q", errUnknownStore, cfg.RateLimitStore)
}
