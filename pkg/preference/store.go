package preference

import (
	"context"

	"github.com/patkim97/folio/pkg/i18n"
)

// Key is the fixed storage key of the locale preference.
const Key = "portfolio-locale-preference"

// DefaultProfile names the profile used when the caller does not choose one.
const DefaultProfile = "default"

// Store reads and writes the explicit locale preference of one profile.
type Store interface {
	// Get returns the stored locale or ErrNotFound when nothing valid is stored.
	Get(ctx context.Context) (i18n.Locale, error)
	// Set persists locale, replacing any previous value.
	Set(ctx context.Context, locale i18n.Locale) error
}

// decode validates a raw stored value.
func decode(raw string) (i18n.Locale, error) {
	locale, ok := i18n.ParseLocale(raw)
	if !ok {
		return "", ErrNotFound
	}
	return locale, nil
}

func validate(locale i18n.Locale) error {
	if !locale.Valid() {
		return ErrInvalidLocale
	}
	return nil
}
