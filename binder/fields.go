package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// parseFieldTag returns the parameter name for field under tag. Fields
// without the tag bind by lowercased field name; "-" skips the field.
func parseFieldTag(field reflect.StructField, tag string) (name string, skip bool) {
	value, ok := field.Tag.Lookup(tag)
	if !ok {
		return strings.ToLower(field.Name), false
	}
	name, _, _ = strings.Cut(value, ",")
	if name == "-" {
		return "", true
	}
	if name == "" {
		name = strings.ToLower(field.Name)
	}
	return name, false
}

// bindToStruct copies values into the tagged fields of the struct v points to.
// Errors are wrapped with kind.
func bindToStruct(v any, tag string, values map[string][]string, kind error) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer", kind)
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a pointer to struct", kind)
	}

	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		sf := rt.Field(i)
		if !field.CanSet() {
			continue
		}

		name, skip := parseFieldTag(sf, tag)
		if skip {
			continue
		}
		vals, ok := values[name]
		if !ok || len(vals) == 0 {
			continue
		}

		if err := setFieldValue(field, sf.Type, vals); err != nil {
			return fmt.Errorf("%w: %s: %v", kind, name, err)
		}
	}
	return nil
}

// setFieldValue converts vals to typ and stores the result in field. Slices
// take every value, splitting comma-separated entries; scalars take the first.
func setFieldValue(field reflect.Value, typ reflect.Type, vals []string) error {
	switch typ.Kind() {
	case reflect.Pointer:
		elem := reflect.New(typ.Elem())
		if err := setFieldValue(elem.Elem(), typ.Elem(), vals); err != nil {
			return err
		}
		field.Set(elem)
		return nil

	case reflect.Slice:
		var items []string
		for _, v := range vals {
			for part := range strings.SplitSeq(v, ",") {
				if part = strings.TrimSpace(part); part != "" {
					items = append(items, part)
				}
			}
		}
		slice := reflect.MakeSlice(typ, len(items), len(items))
		for i, item := range items {
			if err := setScalar(slice.Index(i), typ.Elem(), item); err != nil {
				return err
			}
		}
		field.Set(slice)
		return nil
	}

	return setScalar(field, typ, vals[0])
}

func setScalar(field reflect.Value, typ reflect.Type, s string) error {
	if field.CanAddr() {
		if u, ok := field.Addr().Interface().(interface{ UnmarshalText([]byte) error }); ok {
			return u.UnmarshalText([]byte(s))
		}
	}

	switch typ.Kind() {
	case reflect.String:
		field.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, typ.Bits())
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, typ.Bits())
		if err != nil {
			return err
		}
		field.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, typ.Bits())
		if err != nil {
			return err
		}
		field.SetFloat(f)
	default:
		return fmt.Errorf("unsupported field type %s", typ)
	}
	return nil
}
