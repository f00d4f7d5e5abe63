package email

import (
	"context"
	"fmt"
	"strings"
)

// Sender delivers one message through a relay.
type Sender interface {
	Send(ctx context.Context, msg Email) error
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, msg Email) error

// Send implements Sender.
func (f SenderFunc) Send(ctx context.Context, msg Email) error {
	return f(ctx, msg)
}

// Email is a fully rendered outbound message.
type Email struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	ReplyTo string   `json:"reply_to,omitempty"`
	HTML    string   `json:"html"`
	Text    string   `json:"text"`
	Tag     string   `json:"tag,omitempty"`
}

// Validate checks the fields every relay needs.
func (e Email) Validate() error {
	switch {
	case strings.TrimSpace(e.From) == "":
		return fmt.Errorf("%w: sender is required", ErrInvalidEmail)
	case len(e.To) == 0:
		return fmt.Errorf("%w: at least one recipient is required", ErrInvalidEmail)
	case strings.TrimSpace(e.Subject) == "":
		return fmt.Errorf("%w: subject is required", ErrInvalidEmail)
	case e.HTML == "" && e.Text == "":
		return fmt.Errorf("%w: body is required", ErrInvalidEmail)
	}
	for _, to := range e.To {
		if strings.TrimSpace(to) == "" {
			return fmt.Errorf("%w: empty recipient", ErrInvalidEmail)
		}
	}
	return nil
}
