package i18n

import "strings"

// Locale is one of the two display languages the site supports.
type Locale string

const (
	// EN is the primary locale and the default whenever no signal applies.
	EN Locale = "en"
	// KR is the secondary locale.
	KR Locale = "kr"
)

// DefaultLocale is used when nothing else decides the locale.
const DefaultLocale = EN

// Locales returns the supported locales, primary first.
func Locales() []Locale {
	return []Locale{EN, KR}
}

// ParseLocale maps a stored or transmitted value to a Locale.
// Only "en" and "kr" are accepted (case-insensitive, surrounding whitespace ignored);
// any other value is reported as absent.
func ParseLocale(s string) (Locale, bool) {
	switch Locale(strings.ToLower(strings.TrimSpace(s))) {
	case EN:
		return EN, true
	case KR:
		return KR, true
	default:
		return "", false
	}
}

// Valid reports whether l is one of the supported locales.
func (l Locale) Valid() bool {
	return l == EN || l == KR
}

// Opposite returns the other supported locale. Invalid values flip to KR,
// matching a toggle from the default.
func (l Locale) Opposite() Locale {
	if l == KR {
		return EN
	}
	return KR
}

// HTMLLang returns the BCP 47 tag for the document language attribute.
// The secondary locale tag "kr" is a region code, the language is "ko".
func (l Locale) HTMLLang() string {
	if l == KR {
		return "ko"
	}
	return "en"
}

func (l Locale) String() string {
	return string(l)
}
