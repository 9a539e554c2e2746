// Package handler provides type-safe JSON HTTP handlers.
//
// A HandlerFunc receives a Context and a request value already decoded by
// binders from the binder package, and returns a Response. Wrap turns it into
// an http.HandlerFunc:
//
//	type validateRequest struct {
//		Number  string `json:"number"`
//		Network string `json:"network"`
//	}
//
//	func validateCard(ctx handler.Context, req validateRequest) handler.Response {
//		if err := validator.Apply(validator.KnownCardNetwork("network", req.Network)); err != nil {
//			return handler.JSONError(err)
//		}
//		n, _ := cardnetwork.ParseNetwork(req.Network)
//		return handler.JSON(map[string]bool{"valid": cardnetwork.IsValid(req.Number, n)})
//	}
//
//	r.Post("/v1/cards/validate", handler.Wrap(validateCard,
//		handler.WithBinders[handler.Context, validateRequest](binder.BindJSON()),
//	))
//
// # Responses
//
// JSON wraps data in {"data": ...}; JSONError renders {"error": {...}}. The
// status of an error response is derived from the error:
//
//   - validator.ValidationErrors: 422 with messages grouped by field
//   - malformed JSON, query or path parameters: 400
//   - a missing or non-JSON content type: 415
//   - an oversized body: 413
//   - HTTPError: its own code and key
//   - anything else: 500 with a generic message
//
// NewErrorHandler renders errors the same way and logs them with the request
// ID from pkg/requestid.
package handler
