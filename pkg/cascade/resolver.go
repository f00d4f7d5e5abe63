package cascade

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/patkim97/folio/pkg/async"
	"github.com/patkim97/folio/pkg/broadcast"
	"github.com/patkim97/folio/pkg/detector"
	"github.com/patkim97/folio/pkg/geo"
	"github.com/patkim97/folio/pkg/i18n"
	"github.com/patkim97/folio/pkg/logger"
	"github.com/patkim97/folio/pkg/preference"
)

// Source tells which step of the cascade produced the current locale.
type Source string

const (
	SourcePreference Source = "preference"
	SourceDetector   Source = "detector"
	SourceGeo        Source = "geo"
	SourceToggle     Source = "toggle"
)

// Outcome is the result of the background geo phase.
type Outcome struct {
	// Locale in effect once the phase finished.
	Locale i18n.Locale
	// Applied is true when the geo result changed the locale.
	Applied bool
	// Lookup is the geo result, zero when the lookup did not run or failed.
	Lookup geo.Lookup
}

// Resolver holds the locale of one view.
type Resolver struct {
	store      preference.Store
	fetcher    geo.Fetcher
	logger     *slog.Logger
	bufferSize int
	changes    *broadcast.MemoryBroadcaster[i18n.Locale]

	mu         sync.Mutex
	locale     i18n.Locale
	source     Source
	explicit   bool
	geoSettled bool
	closed     bool
	cancel     context.CancelFunc

	startOnce sync.Once
	started   *async.Future[Outcome]
}

// New resolves the initial locale. A store read error is logged and treated as
// "no preference".
func New(ctx context.Context, store preference.Store, signals detector.Signals, opts ...Option) (*Resolver, error) {
	if store == nil {
		return nil, ErrNilStore
	}

	r := &Resolver{
		store:      store,
		logger:     logger.Discard(),
		bufferSize: 8,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.changes = broadcast.NewMemoryBroadcaster[i18n.Locale](r.bufferSize)

	stored, err := store.Get(ctx)
	switch {
	case err == nil:
		r.locale, r.source, r.explicit = stored, SourcePreference, true
	case errors.Is(err, preference.ErrNotFound):
		r.locale, r.source = detector.Detect(signals), SourceDetector
	default:
		r.logger.WarnContext(ctx, "reading locale preference failed",
			logger.Component("cascade"), logger.Error(err))
		r.locale, r.source = detector.Detect(signals), SourceDetector
	}

	r.logger.DebugContext(ctx, "locale resolved",
		logger.Component("cascade"),
		logger.Locale(string(r.locale)),
		slog.String("source", string(r.source)),
	)
	return r, nil
}

// Current returns the locale in effect. It is always EN or KR.
func (r *Resolver) Current() i18n.Locale {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.locale
}

// Source returns the cascade step that produced Current.
func (r *Resolver) Source() Source {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.source
}

// Explicit reports whether the locale came from the visitor's own choice.
func (r *Resolver) Explicit() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.explicit
}

// Start runs the geo phase at most once per Resolver and returns its Future.
// Later calls return the same Future. The Future carries the lookup error, if
// any; the locale is unaffected by failures.
func (r *Resolver) Start(ctx context.Context) *async.Future[Outcome] {
	r.startOnce.Do(func() {
		r.mu.Lock()
		skip := r.explicit || r.closed || r.fetcher == nil
		current := r.locale
		if skip {
			r.geoSettled = true
			r.mu.Unlock()
			r.started = async.Resolved(Outcome{Locale: current}, nil)
			return
		}

		fetchCtx, cancel := context.WithCancel(ctx)
		r.cancel = cancel
		r.mu.Unlock()

		// The wrapper context ignores cancellation so the Future always
		// reports the locale in effect; fetchCtx bounds the lookup itself.
		r.started = async.Async(context.WithoutCancel(ctx), r.fetcher, func(ctx context.Context, f geo.Fetcher) (Outcome, error) {
			defer cancel()

			lookup, err := f.Fetch(fetchCtx)
			if err != nil {
				r.logger.DebugContext(ctx, "geo lookup failed",
					logger.Component("cascade"), logger.Error(err))
				r.settleGeo()
				return Outcome{Locale: r.Current()}, err
			}
			return r.applyGeo(ctx, lookup), nil
		})
	})
	return r.started
}

func (r *Resolver) settleGeo() {
	r.mu.Lock()
	r.geoSettled = true
	r.mu.Unlock()
}

// applyGeo switches to KR for Korean visitors unless the view was toggled or
// closed, and at most once.
func (r *Resolver) applyGeo(ctx context.Context, lookup geo.Lookup) Outcome {
	r.mu.Lock()
	if r.explicit || r.closed || r.geoSettled {
		current := r.locale
		r.geoSettled = true
		r.mu.Unlock()
		r.logger.DebugContext(ctx, "geo result discarded",
			logger.Component("cascade"), logger.Country(lookup.Country))
		return Outcome{Locale: current, Lookup: lookup}
	}

	r.geoSettled = true
	applied := lookup.IsKoreanCountry && r.locale != i18n.KR
	if applied {
		r.locale, r.source = i18n.KR, SourceGeo
		r.notifyLocked(ctx, i18n.KR)
	}
	current := r.locale
	r.mu.Unlock()

	if applied {
		r.logger.DebugContext(ctx, "locale switched by geo lookup",
			logger.Component("cascade"), logger.Country(lookup.Country))
	}
	return Outcome{Locale: current, Applied: applied, Lookup: lookup}
}

// Toggle switches to the other locale and persists it. The switch takes
// effect even when persisting fails; the error wraps ErrPersistPreference.
// After a toggle the geo phase can no longer change the locale.
func (r *Resolver) Toggle(ctx context.Context) (i18n.Locale, error) {
	r.mu.Lock()
	if r.closed {
		current := r.locale
		r.mu.Unlock()
		return current, ErrClosed
	}
	next := r.locale.Opposite()
	r.locale, r.source, r.explicit = next, SourceToggle, true
	r.notifyLocked(ctx, next)
	r.mu.Unlock()

	if err := r.store.Set(ctx, next); err != nil {
		r.logger.WarnContext(ctx, "persisting locale preference failed",
			logger.Component("cascade"), logger.Locale(string(next)), logger.Error(err))
		return next, errors.Join(ErrPersistPreference, err)
	}
	return next, nil
}

// Subscribe returns a subscription to locale changes. It ends when ctx is
// cancelled or the Resolver is closed.
func (r *Resolver) Subscribe(ctx context.Context) broadcast.Subscriber[i18n.Locale] {
	return r.changes.Subscribe(ctx)
}

// Close tears the view down: a pending geo lookup is cancelled and its result
// discarded, and all subscriptions end. Close is idempotent.
func (r *Resolver) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	cancel := r.cancel
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	return r.changes.Close()
}

// notifyLocked publishes l. Callers hold r.mu so subscribers see changes in
// the order they were made; Broadcast never blocks.
func (r *Resolver) notifyLocked(ctx context.Context, l i18n.Locale) {
	_ = r.changes.Broadcast(ctx, broadcast.Message[i18n.Locale]{Data: l})
}
