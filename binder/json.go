package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// DefaultMaxJSONBytes caps request bodies read by BindJSON.
const DefaultMaxJSONBytes int64 = 64 << 10

// BindJSON decodes an application/json body into v. Unknown fields and
// trailing data are rejected. Bodyless GET, HEAD and DELETE requests report
// ErrBinderNotApplicable.
//
//	r.Post("/v1/cards/check", handler.Wrap(checkCard,
//		handler.WithBinders[handler.Context, checkRequest](binder.BindJSON()),
//	))
func BindJSON() func(r *http.Request, v any) error {
	return BindJSONLimit(DefaultMaxJSONBytes)
}

// BindJSONLimit is BindJSON with a custom body size cap.
func BindJSONLimit(maxBytes int64) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if bodyless(r) {
			return ErrBinderNotApplicable
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
		}
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != "application/json" {
			return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, contentType)
		}

		dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBytes))
		dec.DisallowUnknownFields()

		if err := dec.Decode(v); err != nil {
			switch {
			case tooLarge(err):
				return fmt.Errorf("%w: limit is %d bytes", ErrRequestTooLarge, maxBytes)
			case errors.Is(err, io.EOF):
				return fmt.Errorf("%w: empty body", ErrInvalidJSON)
			}
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}

		var extra json.RawMessage
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			if tooLarge(err) {
				return fmt.Errorf("%w: limit is %d bytes", ErrRequestTooLarge, maxBytes)
			}
			return fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
		}

		return nil
	}
}

func tooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

func bodyless(r *http.Request) bool {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodDelete:
		return r.ContentLength <= 0 && r.Header.Get("Content-Type") == ""
	}
	return false
}
