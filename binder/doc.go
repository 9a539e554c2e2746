// Package binder decodes HTTP requests into typed structs for handler.Wrap.
//
// Each binder is a func(*http.Request, any) error handling one source:
// BindJSON for the body, BindQuery for the URL query and Path for router
// parameters. Several binders can fill the same struct. Failures wrap one of
// the package sentinels (ErrInvalidJSON, ErrInvalidQuery, ...) so the error
// handler can answer 400 or 415.
package binder
