package binder

import "net/http"

// BindQuery binds URL query parameters into struct fields.
//
// Tags: `query:"name"` binds parameter "name", `query:"-"` skips the field.
// Untagged fields bind by lowercased field name. Supported types are strings,
// bools, integers, floats, pointers to them for optional values, slices
// (repeated or comma-separated values) and any type implementing
// encoding.TextUnmarshaler, such as cardnetwork.Network.
//
//	type formatRequest struct {
//		Number    string              `query:"number"`
//		Network   cardnetwork.Network `query:"network"`
//		Separator *string             `query:"separator"`
//	}
func BindQuery() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrInvalidQuery)
	}
}
