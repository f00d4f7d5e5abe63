package contact

import (
	"github.com/patkim97/folio/pkg/sanitizer"
	"github.com/patkim97/folio/pkg/validator"
)

// Message is one visitor submission.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Normalize returns a copy with surrounding whitespace trimmed from every field.
// Other content, NUL bytes included, is left for Validate and Render to judge.
func (m Message) Normalize() Message {
	return Message{
		Name:    sanitizer.Trim(m.Name),
		Email:   sanitizer.Trim(m.Email),
		Subject: sanitizer.Trim(m.Subject),
		Message: sanitizer.Trim(m.Message),
	}
}

// Validate reports ErrMissingFields when any field is blank, then
// ErrInvalidEmail when the address is not local@domain.tld.
// The returned error also wraps validator.ValidationErrors with per-field detail.
func Validate(m Message) error {
	if err := validator.Apply(
		validator.RequiredString("name", m.Name),
		validator.RequiredString("email", m.Email),
		validator.RequiredString("subject", m.Subject),
		validator.RequiredString("message", m.Message),
	); err != nil {
		return &fieldError{sentinel: ErrMissingFields, detail: err}
	}

	if err := validator.Apply(validator.ValidEmail("email", m.Email)); err != nil {
		return &fieldError{sentinel: ErrInvalidEmail, detail: err}
	}

	return nil
}

// fieldError prints as its sentinel so visitors see the fixed copy,
// while errors.As still reaches the validator detail.
type fieldError struct {
	sentinel error
	detail   error
}

func (e *fieldError) Error() string   { return e.sentinel.Error() }
func (e *fieldError) Unwrap() []error { return []error{e.sentinel, e.detail} }
