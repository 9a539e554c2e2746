package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/cardcheck/handler"
	"github.com/dmitrymomot/cardcheck/internal/cardapi"
	"github.com/dmitrymomot/cardcheck/pkg/clientip"
	"github.com/dmitrymomot/cardcheck/pkg/environment"
	"github.com/dmitrymomot/cardcheck/pkg/httpserver"
	"github.com/dmitrymomot/cardcheck/pkg/logger"
	"github.com/dmitrymomot/cardcheck/pkg/ratelimiter"
	"github.com/dmitrymomot/cardcheck/pkg/requestid"
)

func clientIPDefaults() []string {
	return append([]string(nil), clientip.DefaultHeaders...)
}

type routerDeps struct {
	cfg     appConfig
	log     *slog.Logger
	limiter ratelimiter.Limiter
	ready   []httpserver.Check
}

// newRouter assembles the middleware chain and mounts the card API. Health
// probes sit outside the rate limiter.
func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(environment.Middleware(environment.Parse(d.cfg.Env)))
	r.Use(clientip.NewResolver(d.cfg.ipHeaders()...).Middleware)

	r.Get("/health/live", httpserver.HealthCheckHandler(d.log))
	r.Get("/health/ready", httpserver.HealthCheckHandler(d.log, d.ready...))

	api := cardapi.New(cardapi.WithLogger(d.log))
	r.Group(func(r chi.Router) {
		r.Use(ratelimiter.Middleware(d.limiter, ratelimiter.ByIP,
			ratelimiter.WithErrorResponder(rateLimitResponder(d.log)),
			ratelimiter.WithFailOpen(d.cfg.RateLimitFailOpen),
		))
		api.Register(r)
	})

	return r
}

func rateLimitResponder(log *slog.Logger) ratelimiter.ErrorResponder {
	return func(w http.ResponseWriter, r *http.Request, _ *ratelimiter.Result, err error) {
		resp := handler.JSONError(handler.ErrTooManyRequests)
		if err != nil {
			log.ErrorContext(r.Context(), "rate limiter failed",
				logger.Error(err),
				logger.Component("ratelimiter"),
			)
			resp = handler.JSONError(handler.ErrServiceUnavailable)
		}
		_ = resp.Render(w, r)
	}
}
