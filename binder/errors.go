package binder

import "errors"

// Common binding errors.
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrRequestTooLarge      = errors.New("request body too large")
	ErrInvalidQuery         = errors.New("invalid query parameter")
	ErrInvalidPath          = errors.New("invalid path parameter")

	// ErrBinderNotApplicable is returned by a binder that has nothing to bind
	// for the request. handler.Wrap skips such binders.
	ErrBinderNotApplicable = errors.New("binder not applicable")
)
