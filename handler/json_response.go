package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/cardcheck/binder"
	"github.com/dmitrymomot/cardcheck/pkg/validator"
)

// JSONResponse is the standard JSON response structure
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMeta adds metadata to response
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// JSON wraps v in the data envelope. Errors passed to JSON are rendered as
// JSONError would render them.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK}

	switch val := v.(type) {
	case JSONResponse:
		r.body = val
	case *ErrorDetail:
		r.body.Error = val
		r.status = http.StatusInternalServerError
	case error:
		r.body.Error, r.status = errorToDetail(val)
	default:
		r.body.Data = v
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// JSONError creates a JSON error response from an error with options
func JSONError(err any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusInternalServerError}

	switch e := err.(type) {
	case *ErrorDetail:
		r.body.Error = e
	case error:
		r.body.Error, r.status = errorToDetail(e)
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// errorToDetail maps err to the payload and status sent to the client.
// Unclassified errors become a generic 500 so internal messages stay in logs.
func errorToDetail(err error) (*ErrorDetail, int) {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		detail := &ErrorDetail{
			Code:    "validation_error",
			Message: "validation failed",
		}
		if len(verrs) > 0 {
			detail.Details = make(map[string][]string, len(verrs))
			for _, field := range verrs.Fields() {
				detail.Details[field] = verrs.Get(field)
			}
		}
		return detail, http.StatusUnprocessableEntity
	}

	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return &ErrorDetail{Code: ErrUnsupportedMediaType.Key, Message: err.Error()}, ErrUnsupportedMediaType.Code
	case errors.Is(err, binder.ErrRequestTooLarge):
		return &ErrorDetail{Code: ErrRequestTooLarge.Key, Message: err.Error()}, ErrRequestTooLarge.Code
	case errors.Is(err, binder.ErrInvalidJSON),
		errors.Is(err, binder.ErrInvalidQuery),
		errors.Is(err, binder.ErrInvalidPath):
		return &ErrorDetail{Code: ErrBadRequest.Key, Message: err.Error()}, ErrBadRequest.Code
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return &ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}, httpErr.Code
	}

	return &ErrorDetail{
		Code:    ErrInternalServerError.Key,
		Message: http.StatusText(http.StatusInternalServerError),
	}, http.StatusInternalServerError
}

// StatusCode reports the HTTP status err maps to.
func StatusCode(err error) int {
	_, status := errorToDetail(err)
	return status
}
