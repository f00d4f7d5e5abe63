package contact

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/patkim97/folio/handler"
	"github.com/patkim97/folio/pkg/binder"
	pkgcontact "github.com/patkim97/folio/pkg/contact"
	"github.com/patkim97/folio/pkg/email"
	"github.com/patkim97/folio/pkg/logger"
)

// InvalidPayloadMessage is returned for bodies that are not valid JSON.
const InvalidPayloadMessage = "Invalid JSON payload."

// Request is the submitted form. Non-string JSON values bind as empty.
type Request struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Response acknowledges a relayed message.
type Response struct {
	OK bool `json:"ok"`
}

// Deliverer relays one visitor message.
type Deliverer interface {
	Deliver(ctx context.Context, msg pkgcontact.Message, md pkgcontact.Metadata) error
}

// Service serves the contact submission endpoint.
type Service struct {
	relay  Deliverer
	logger *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates the endpoint around relay.
func NewService(relay Deliverer, opts ...Option) *Service {
	s := &Service{relay: relay, logger: logger.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle returns the router to mount at /api/contact.
func (s *Service) Handle() http.Handler {
	errorHandler := handler.NewErrorHandler(s.logger.With(logger.Component("contact")))

	r := chi.NewRouter()
	r.Post("/", handler.Wrap(s.submit,
		handler.WithBinder[handler.Context, Request](bindRequest),
		handler.WithErrorHandler[handler.Context, Request](errorHandler),
	))
	r.Options("/", handler.Wrap(s.preflight,
		handler.WithErrorHandler[handler.Context, struct{}](errorHandler),
	))
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", "POST, OPTIONS")
		_ = handler.JSONError(handler.ErrMethodNotAllowed).Render(w, r)
	})
	return r
}

func bindRequest(r *http.Request, v any) error {
	if err := binder.LooseJSON()(r, v); err != nil {
		return handler.NewHTTPError(http.StatusBadRequest, InvalidPayloadMessage, err)
	}
	return nil
}

func (s *Service) submit(ctx handler.Context, req Request) handler.Response {
	msg := pkgcontact.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := s.relay.Deliver(ctx, msg, pkgcontact.MetadataFromRequest(ctx.Request())); err != nil {
		return handler.Fail(toHTTPError(err))
	}

	s.logger.InfoContext(ctx, "contact message accepted", logger.Component("contact"))
	return handler.JSON(Response{OK: true})
}

func (s *Service) preflight(handler.Context, struct{}) handler.Response {
	return handler.Options(http.MethodPost, http.MethodOptions)
}

// toHTTPError maps relay failures onto the endpoint's status codes.
func toHTTPError(err error) error {
	var upstream *email.UpstreamError

	switch {
	case errors.Is(err, pkgcontact.ErrMissingFields), errors.Is(err, pkgcontact.ErrInvalidEmail):
		return handler.NewHTTPError(http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, email.ErrMissingAPIKey):
		return handler.NewHTTPError(http.StatusInternalServerError, err.Error(), err)
	case errors.As(err, &upstream):
		return handler.NewHTTPError(http.StatusBadGateway, upstream.Error(), err)
	case errors.Is(err, email.ErrFailedToSendEmail):
		return handler.NewHTTPError(http.StatusBadGateway, transportMessage(err), err)
	default:
		return handler.NewHTTPError(http.StatusInternalServerError, handler.ErrInternalServerError.Message, err)
	}
}

// transportMessage returns the cause text of a joined send error.
func transportMessage(err error) string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var parts []string
		for _, e := range joined.Unwrap() {
			if e != email.ErrFailedToSendEmail {
				parts = append(parts, e.Error())
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, ": ")
		}
	}
	return err.Error()
}
