package cardapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/cardcheck/binder"
	"github.com/dmitrymomot/cardcheck/handler"
	"github.com/dmitrymomot/cardcheck/pkg/cardnetwork"
	"github.com/dmitrymomot/cardcheck/pkg/logger"
	"github.com/dmitrymomot/cardcheck/pkg/sanitizer"
)

// API serves the card endpoints.
type API struct {
	log    *slog.Logger
	errors handler.ErrorHandler[handler.Context]
}

// Option configures an API.
type Option func(*API)

// WithLogger sets the logger used for request logs and error reporting.
func WithLogger(log *slog.Logger) Option {
	return func(a *API) {
		if log != nil {
			a.log = log
		}
	}
}

// New creates an API. Without WithLogger nothing is logged.
func New(opts ...Option) *API {
	a := &API{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(a)
	}
	a.log = a.log.With(logger.Component("cardapi"))
	a.errors = handler.NewErrorHandler[handler.Context](a.log)
	return a
}

// Register mounts the routes on r, including JSON 404 and 405 responses.
func (a *API) Register(r chi.Router) {
	r.Post("/v1/cards/check", route(a, a.check, binder.BindJSON()))
	r.Post("/v1/cards/validate", route(a, a.validate, binder.BindJSON()))
	r.Get("/v1/cards/format", route(a, a.format, binder.BindQuery()))
	r.Get("/v1/networks", route(a, a.networks))
	r.Get("/v1/networks/{network}", route(a, a.network, binder.Path(chi.URLParam)))

	r.NotFound(a.fail(handler.ErrNotFound))
	r.MethodNotAllowed(a.fail(handler.ErrMethodNotAllowed))
}

// Router returns a chi router with only the card routes mounted.
func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	a.Register(r)
	return r
}

func route[R any](a *API, h handler.HandlerFunc[handler.Context, R], binders ...handler.Bind) http.HandlerFunc {
	return handler.Wrap(h,
		handler.WithBinders[handler.Context, R](binders...),
		handler.WithErrorHandler[handler.Context, R](a.errors),
	)
}

func (a *API) fail(err handler.HTTPError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = handler.JSONError(err).Render(w, r)
	}
}

func (a *API) check(ctx handler.Context, req checkRequest) handler.Response {
	if err := req.normalize(); err != nil {
		return handler.JSONError(err)
	}

	sep := req.Separator
	if sep == "" {
		sep = cardnetwork.DefaultSeparator
	}

	res := cardnetwork.Check(req.Number)
	a.log.LogAttrs(ctx, slog.LevelDebug, "card checked",
		logger.CardNetwork(res.Network),
		logger.MaskedPAN(req.Number),
		slog.String("status", res.Status.String()),
		slog.Bool("valid", res.Valid),
	)

	return handler.JSON(checkResponse{
		Network:   res.Network,
		Name:      res.Network.DisplayName(),
		Status:    res.Status,
		Valid:     res.Valid,
		Masked:    sanitizer.MaskFormattedCreditCard(res.Digits, sep),
		Formatted: cardnetwork.Format(res.Digits, res.Network, sep),
		MaxLength: cardnetwork.MaxLength(res.Network),
	})
}

func (a *API) validate(ctx handler.Context, req validateRequest) handler.Response {
	n, err := req.normalize()
	if err != nil {
		return handler.JSONError(err)
	}

	valid := cardnetwork.IsValid(req.Number, n)
	a.log.LogAttrs(ctx, slog.LevelDebug, "card validated",
		logger.CardNetwork(n),
		logger.MaskedPAN(req.Number),
		slog.Bool("valid", valid),
	)

	return handler.JSON(validateResponse{Network: n, Valid: valid})
}

func (a *API) format(ctx handler.Context, req formatRequest) handler.Response {
	n, err := req.normalize()
	if err != nil {
		return handler.JSONError(err)
	}

	return handler.JSON(formatResponse{
		Network:   n,
		Formatted: cardnetwork.Format(req.Number, n, req.separator()),
	})
}

func (a *API) networks(ctx handler.Context, _ struct{}) handler.Response {
	table := cardnetwork.Table()
	return handler.JSON(table, handler.WithJSONMeta(map[string]any{"count": len(table)}))
}

func (a *API) network(ctx handler.Context, req networkRequest) handler.Response {
	n, err := cardnetwork.ParseNetwork(req.Network)
	if err != nil {
		return handler.JSONError(handler.ErrNotFound)
	}
	spec, ok := cardnetwork.Spec(n)
	if !ok {
		return handler.JSONError(handler.ErrNotFound)
	}
	return handler.JSON(spec)
}
