package i18n

import (
	"context"
	"log/slog"
)

type localeContextKey struct{}

// SetLocale sets the locale in the context.
func SetLocale(ctx context.Context, locale Locale) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale returns the locale from the context, or DefaultLocale when none
// or an invalid one is set.
func GetLocale(ctx context.Context) Locale {
	locale, _ := ctx.Value(localeContextKey{}).(Locale)
	if !locale.Valid() {
		return DefaultLocale
	}
	return locale
}

// LoggerExtractor returns a logger context extractor adding the locale set
// with SetLocale.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		locale, ok := ctx.Value(localeContextKey{}).(Locale)
		if !ok || !locale.Valid() {
			return slog.Attr{}, false
		}
		return slog.String("locale", locale.String()), true
	}
}
