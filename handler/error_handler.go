package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/cardcheck/pkg/logger"
	"github.com/dmitrymomot/cardcheck/pkg/requestid"
)

// NewErrorHandler returns an ErrorHandler that renders err with JSONError
// and logs it. Client errors log at Warn, server errors at Error.
func NewErrorHandler[C Context](log *slog.Logger) ErrorHandler[C] {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return func(ctx C, err error) {
		r := ctx.Request()
		resp := JSONError(err)
		status := StatusCode(err)

		level := slog.LevelError
		if status >= http.StatusBadRequest && status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}

		log.LogAttrs(r.Context(), level, "request error",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			logger.Status(status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.LogAttrs(r.Context(), slog.LevelError, "failed to render error response",
				logger.Error(renderErr),
				logger.Event("render_error"),
			)
		}
	}
}
