package httpserver

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/cardcheck/pkg/logger"
)

// Check reports whether a dependency is usable.
type Check func(ctx context.Context) error

// checkTimeout bounds the time all readiness checks may take together.
const checkTimeout = 2 * time.Second

// HealthCheckHandler returns a handler for liveness and readiness probes.
//
//   - With no checks it always answers 200 "ALIVE".
//   - With checks it runs them in order under the request context; when all
//     succeed it answers 200 "READY", otherwise 503 "NOT_READY" and logs the
//     first failure.
func HealthCheckHandler(log *slog.Logger, checks ...Check) http.HandlerFunc {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		if len(checks) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
		defer cancel()

		for _, check := range checks {
			if err := check(ctx); err != nil {
				log.WarnContext(ctx, "readiness check failed", logger.Component("healthcheck"), logger.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
