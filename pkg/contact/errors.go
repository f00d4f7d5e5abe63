package contact

import "errors"

// Error texts are part of the HTTP contract and are shown to visitors.
var (
	ErrMissingFields = errors.New("Missing required fields.")
	ErrInvalidEmail  = errors.New("Invalid email format.")
	ErrRender        = errors.New("failed to render contact message")
	ErrNilSender     = errors.New("contact relay requires a sender")
)
