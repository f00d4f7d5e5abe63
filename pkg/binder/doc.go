// Package binder maps HTTP request bodies onto Go structs.
//
// LooseJSON accepts any well-formed JSON document and copies string values
// into the string fields of the target, keyed by their `json` tag. Values of
// any other JSON type are ignored, so a payload such as
//
//	{"name": 42, "email": "ann@example.com"}
//
// binds Email and leaves Name empty. Malformed JSON and oversized bodies
// return ErrFailedToParseJSON.
package binder
