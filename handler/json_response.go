package handler

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the JSON body of every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("Cache-Control", "no-store")
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

// JSON writes v as the whole response body. Responses are never cacheable.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: v}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError writes {"error": <message>}. An HTTPError contributes its status
// and client message; any other error becomes a 500 with its own text.
func JSONError(err error, opts ...JSONOption) Response {
	status := http.StatusInternalServerError
	message := "Internal server error."
	if err != nil {
		message = err.Error()
	}
	if httpErr, ok := asHTTPError(err); ok {
		status = httpErr.Code
		message = httpErr.Message
	}

	r := &jsonResponse{status: status, body: ErrorBody{Error: message}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Fail hands err to the configured ErrorHandler, which logs it and renders
// the client message.
func Fail(err error) Response {
	return ResponseFunc(func(http.ResponseWriter, *http.Request) error {
		return err
	})
}
