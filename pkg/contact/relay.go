package contact

import (
	"context"
	"log/slog"

	"github.com/patkim97/folio/pkg/email"
	"github.com/patkim97/folio/pkg/logger"
	"github.com/patkim97/folio/pkg/sanitizer"
)

// SubjectPrefix marks relayed messages in the owner's inbox.
const SubjectPrefix = "[Portfolio Contact] "

// Relay turns visitor messages into notification emails.
type Relay struct {
	sender email.Sender
	from   string
	to     string
	logger *slog.Logger
}

// RelayOption configures a Relay.
type RelayOption func(*Relay)

// WithFrom sets the sender identity. Empty keeps email.DefaultFrom.
func WithFrom(from string) RelayOption {
	return func(r *Relay) {
		if from != "" {
			r.from = from
		}
	}
}

// WithTo sets the owner's inbox. Empty keeps email.DefaultTo.
func WithTo(to string) RelayOption {
	return func(r *Relay) {
		if to != "" {
			r.to = to
		}
	}
}

// WithLogger sets the relay logger.
func WithLogger(l *slog.Logger) RelayOption {
	return func(r *Relay) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRelay creates a relay delivering through sender.
func NewRelay(sender email.Sender, opts ...RelayOption) (*Relay, error) {
	if sender == nil {
		return nil, ErrNilSender
	}

	r := &Relay{
		sender: sender,
		from:   email.DefaultFrom,
		to:     email.DefaultTo,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Deliver normalizes and validates m, renders it and sends one email.
// Validation errors come back before the sender is touched.
func (r *Relay) Deliver(ctx context.Context, m Message, md Metadata) error {
	m = m.Normalize()
	if err := Validate(m); err != nil {
		return err
	}

	body, err := Render(ctx, m, md)
	if err != nil {
		return err
	}

	msg := email.Email{
		From:    r.from,
		To:      []string{r.to},
		Subject: SubjectPrefix + sanitizer.PreventHeaderInjection(m.Subject),
		ReplyTo: m.Email,
		HTML:    body.HTML,
		Text:    body.Text,
		Tag:     "contact",
	}

	if err := r.sender.Send(ctx, msg); err != nil {
		r.logger.ErrorContext(ctx, "contact relay failed", logger.Component("contact"), logger.Error(err))
		return err
	}

	r.logger.InfoContext(ctx, "contact message relayed", logger.Component("contact"))
	return nil
}
