package submission

import (
	"errors"
	"fmt"
)

var (
	ErrInFlight     = errors.New("a submission is already in flight")
	ErrUnknownField = errors.New("unknown form field")
	ErrTransport    = errors.New("contact request failed")
	ErrNilTransport = errors.New("submission form requires a transport")
)

// ServerError is a non-success answer from the contact endpoint.
// Message is the server's own reason and may be empty.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("contact endpoint answered %d", e.StatusCode)
	}
	return e.Message
}
