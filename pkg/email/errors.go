package email

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned before any outbound call when the relay credential is absent.
	ErrMissingAPIKey = errors.New("Server is missing RESEND_API_KEY.")

	ErrFailedToSendEmail = errors.New("failed to send email")
	ErrInvalidConfig     = errors.New("invalid email config")
	ErrInvalidEmail      = errors.New("invalid email")
	ErrUnknownProvider   = errors.New("unknown email provider")
)

// UpstreamError reports that the relay answered but refused the message.
// Body holds the relay's own diagnostic text, unmodified.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s request failed: %s", e.Provider, e.Body)
}

// Is makes errors.Is(err, ErrFailedToSendEmail) match upstream rejections.
func (e *UpstreamError) Is(target error) bool {
	return target == ErrFailedToSendEmail
}
