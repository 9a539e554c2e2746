package ratelimiter

import (
	"hash/fnv"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrymomot/cardcheck/pkg/clientip"
)

// maxKeyLength bounds storage keys; longer composite keys are hashed.
const maxKeyLength = 64

// KeyFunc extracts a rate limit key from the request.
type KeyFunc func(r *http.Request) string

// ByIP keys requests by client IP, preferring the value stored by
// clientip.Middleware.
func ByIP(r *http.Request) string {
	if ip := clientip.GetIPFromContext(r.Context()); ip != "" {
		return "ip:" + ip
	}
	if ip := clientip.GetIP(r); ip != "" {
		return "ip:" + ip
	}
	return ""
}

// Composite combines multiple key functions into one.
// Long keys (>64 chars) are hashed using FNV-1a.
func Composite(keyFuncs ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(keyFuncs))
		for _, fn := range keyFuncs {
			if key := fn(r); key != "" {
				parts = append(parts, key)
			}
		}
		if len(parts) == 0 {
			return ""
		}

		combined := strings.Join(parts, ":")
		if len(combined) <= maxKeyLength {
			return combined
		}
		h := fnv.New64a()
		_, _ = h.Write([]byte(combined))
		return strconv.FormatUint(h.Sum64(), 36)
	}
}

// ErrorResponder writes the response for a denied request (result set, err
// nil) or for a limiter failure (err set).
type ErrorResponder func(w http.ResponseWriter, r *http.Request, result *Result, err error)

type middlewareConfig struct {
	responder ErrorResponder
	failOpen  bool
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

// WithErrorResponder replaces the plain-text 429 and 500 responses.
func WithErrorResponder(fn ErrorResponder) MiddlewareOption {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.responder = fn
		}
	}
}

// WithFailOpen lets requests through when the limiter itself fails, e.g.
// Redis is unreachable. The responder is not called in that case.
func WithFailOpen(open bool) MiddlewareOption {
	return func(c *middlewareConfig) { c.failOpen = open }
}

func defaultResponder(w http.ResponseWriter, _ *http.Request, _ *Result, err error) {
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}

// Middleware rate limits requests by keyFunc. Every limited response carries
// X-RateLimit-Limit, X-RateLimit-Remaining and X-RateLimit-Reset; denials add
// Retry-After.
func Middleware(limiter Limiter, keyFunc KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{responder: defaultResponder}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			result, err := limiter.Allow(r.Context(), keyFunc(r))
			if err != nil {
				if cfg.failOpen {
					next.ServeHTTP(w, r)
					return
				}
				cfg.responder(w, r, nil, err)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, result.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed() {
				// Rounded up so clients never retry early.
				secs := int(math.Ceil(result.RetryAfter().Seconds()))
				h.Set("Retry-After", strconv.Itoa(max(secs, 1)))
				cfg.responder(w, r, result, nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
