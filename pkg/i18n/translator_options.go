package i18n

import "log/slog"

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLocale sets the locale consulted when the requested one has no
// entry for a key. Invalid locales are ignored.
func WithDefaultLocale(locale Locale) Option {
	return func(t *Translator) {
		if locale.Valid() {
			t.defaultLocale = locale
		}
	}
}

// WithFallbackToKey makes T return the key itself for missing copy. On by default.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) { t.fallbackToKey = fallback }
}

// WithLogger sets the logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithMissingKeyLogging logs every lookup that falls through to the default
// locale or the key.
func WithMissingKeyLogging(enabled bool) Option {
	return func(t *Translator) { t.logMissing = enabled }
}
