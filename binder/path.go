package binder

import (
	"net/http"
	"reflect"
)

// Path binds router path parameters into fields tagged `path:"name"`. The
// extractor returns the raw value of a parameter, which makes it router
// agnostic; with chi it is chi.URLParam:
//
//	r.Get("/v1/networks/{network}", handler.Wrap(getNetwork,
//		handler.WithBinders[handler.Context, networkRequest](binder.Path(chi.URLParam)),
//	))
//
// Only tagged fields are bound.
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return ErrInvalidPath
		}

		values := make(map[string][]string)
		if rt := reflect.TypeOf(v); rt != nil && rt.Kind() == reflect.Pointer && rt.Elem().Kind() == reflect.Struct {
			st := rt.Elem()
			for i := range st.NumField() {
				sf := st.Field(i)
				if _, tagged := sf.Tag.Lookup("path"); !tagged {
					continue
				}
				name, skip := parseFieldTag(sf, "path")
				if skip {
					continue
				}
				if val := extractor(r, name); val != "" {
					values[name] = []string{val}
				}
			}
		}

		return bindToStruct(v, "path", values, ErrInvalidPath)
	}
}
