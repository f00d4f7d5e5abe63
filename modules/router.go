package modules

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/patkim97/folio/handler"
	"github.com/patkim97/folio/pkg/clientip"
	"github.com/patkim97/folio/pkg/detector"
	"github.com/patkim97/folio/pkg/httpserver"
	"github.com/patkim97/folio/pkg/i18n"
	"github.com/patkim97/folio/pkg/logger"
	"github.com/patkim97/folio/pkg/requestid"
)

// Mountable is a module serving its own sub-router.
type Mountable interface {
	Handle() http.Handler
}

// RouterOptions selects the modules to mount. Nil modules are skipped.
type RouterOptions struct {
	Contact Mountable
	Locale  Mountable

	Logger         *slog.Logger
	RequestTimeout time.Duration
	// ReadinessChecks back /health; none means a liveness-only probe.
	ReadinessChecks []func(context.Context) error
}

// Router builds the site API:
//
//	POST|OPTIONS /api/contact
//	GET          /api/locale
//	GET          /health
func Router(opts RouterOptions) chi.Router {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(DetectLocale)
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.JSONError(handler.ErrNotFound).Render(w, r)
	})

	r.Get("/health", httpserver.HealthCheckHandler(log, opts.ReadinessChecks...))

	r.Route("/api", func(api chi.Router) {
		if opts.Contact != nil {
			api.Mount("/contact", opts.Contact.Handle())
		}
		if opts.Locale != nil {
			api.Mount("/locale", opts.Locale.Handle())
		}
	})

	return r
}

// DetectLocale stores the request's heuristic locale in its context so
// logs and localized copy can use i18n.GetLocale.
func DetectLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		locale := detector.Detect(detector.FromRequest(r))
		next.ServeHTTP(w, r.WithContext(i18n.SetLocale(r.Context(), locale)))
	})
}
