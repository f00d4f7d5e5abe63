package locale

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/patkim97/folio/handler"
	"github.com/patkim97/folio/pkg/geo"
	"github.com/patkim97/folio/pkg/logger"
)

// Service serves the geo lookup endpoint.
type Service struct {
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

// NewService creates the endpoint.
func NewService(opts ...Option) *Service {
	s := &Service{logger: logger.Discard()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle returns the router to mount at /api/locale.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Get("/", handler.Wrap(s.lookup,
		handler.WithErrorHandler[handler.Context, struct{}](handler.NewErrorHandler(s.logger)),
	))
	return r
}

func (s *Service) lookup(ctx handler.Context, _ struct{}) handler.Response {
	lookup := geo.FromRequest(ctx.Request())
	s.logger.DebugContext(ctx, "geo lookup",
		logger.Component("locale"),
		logger.Country(lookup.Country),
	)
	return handler.JSON(lookup)
}
