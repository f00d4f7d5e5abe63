package geo

import "errors"

var (
	ErrRequestFailed    = errors.New("geo lookup request failed")
	ErrUnexpectedStatus = errors.New("geo lookup returned unexpected status")
	ErrMalformedBody    = errors.New("geo lookup returned malformed body")
	ErrInvalidBaseURL   = errors.New("invalid geo lookup base URL")
)
