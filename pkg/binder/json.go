package binder

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20

// LooseJSON creates a binder for form-like JSON payloads.
//
// The body must be well-formed JSON, otherwise ErrFailedToParseJSON is
// returned. Only string fields of the target struct are bound. A field
// whose JSON value is missing, null, a number, an object or any other
// non-string stays empty, as does every field when the payload is not an
// object. The Content-Type header is not checked.
//
//	type ContactRequest struct {
//		Name  string `json:"name"`
//		Email string `json:"email"`
//	}
//
//	http.HandleFunc("/contact", handler.Wrap(h, handler.WithBinder[handler.Context, ContactRequest](binder.LooseJSON())))
func LooseJSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		rv, err := structTarget(v)
		if err != nil {
			return err
		}

		if err := r.Context().Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
		if err != nil {
			return fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
		}
		if len(body) > DefaultMaxJSONSize {
			return fmt.Errorf("%w: %w (max %d bytes)", ErrFailedToParseJSON, ErrBodyTooLarge, DefaultMaxJSONSize)
		}

		var payload any
		if err := json.Unmarshal(body, &payload); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		if obj, ok := payload.(map[string]any); ok {
			bindStrings(rv, "json", obj)
		}
		return nil
	}
}
