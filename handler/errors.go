package handler

import (
	"errors"
	"net/http"
)

// ErrNilResponse indicates a handler returned nil instead of a Response.
var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError is an error with the status code and the message shown to the client.
type HTTPError struct {
	Code    int
	Message string
	// Err is the underlying cause. It is logged, never shown.
	Err error
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e HTTPError) Unwrap() error {
	return e.Err
}

// NewHTTPError builds an HTTPError that displays message and wraps cause.
func NewHTTPError(code int, message string, cause error) HTTPError {
	if message == "" {
		message = http.StatusText(code)
	}
	return HTTPError{Code: code, Message: message, Err: cause}
}

var (
	ErrBadRequest          = HTTPError{Code: http.StatusBadRequest, Message: "Bad request."}
	ErrNotFound            = HTTPError{Code: http.StatusNotFound, Message: "Not found."}
	ErrMethodNotAllowed    = HTTPError{Code: http.StatusMethodNotAllowed, Message: "Method not allowed."}
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Message: "Internal server error."}
)
