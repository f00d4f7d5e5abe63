package cascade

import (
	"log/slog"

	"github.com/patkim97/folio/pkg/geo"
)

// Option configures a Resolver.
type Option func(*Resolver)

// WithFetcher enables the background geo lookup.
// Without a fetcher Start completes immediately.
func WithFetcher(f geo.Fetcher) Option {
	return func(r *Resolver) {
		r.fetcher = f
	}
}

// WithLogger sets the logger. Lookup failures are logged at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithSubscriberBuffer sets how many unread changes a subscriber may lag
// behind before it is dropped. The default is 8.
func WithSubscriberBuffer(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.bufferSize = n
		}
	}
}
