package binder

import (
	"reflect"
	"strings"
)

// structTarget returns the settable struct behind v.
func structTarget(v any) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return reflect.Value{}, ErrInvalidTarget
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, ErrInvalidTarget
	}
	return rv, nil
}

// parseFieldTag returns the key a struct field binds to and whether to skip it.
func parseFieldTag(field reflect.StructField, tagName string) (name string, skip bool) {
	tag := field.Tag.Get(tagName)
	if tag == "" {
		return strings.ToLower(field.Name), false
	}
	if tag == "-" {
		return "", true
	}

	name, _, _ = strings.Cut(tag, ",")
	return name, false
}

// bindStrings copies string values from src into string fields of rv.
// Keys whose value is not a string leave the field at its zero value.
func bindStrings(rv reflect.Value, tagName string, src map[string]any) {
	rt := rv.Type()

	for i := range rv.NumField() {
		field := rv.Field(i)
		if !field.CanSet() || field.Kind() != reflect.String {
			continue
		}

		key, skip := parseFieldTag(rt.Field(i), tagName)
		if skip {
			continue
		}

		if s, ok := src[key].(string); ok {
			field.SetString(s)
		}
	}
}
