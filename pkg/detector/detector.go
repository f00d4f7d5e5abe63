package detector

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/patkim97/folio/pkg/i18n"
)

// SeoulTimezone is the IANA zone that selects the secondary locale.
const SeoulTimezone = "Asia/Seoul"

var korean = language.Korean

// Signals are the client-side hints considered by Detect.
// They are read fresh for every resolution and never stored.
type Signals struct {
	// Languages holds language tags in preference order, e.g. "ko-KR" or "en_US.UTF-8".
	Languages []string
	// Timezone is the resolved IANA zone name, e.g. "Asia/Seoul". May be empty.
	Timezone string
}

// Detect maps signals to a locale.
func Detect(s Signals) i18n.Locale {
	for _, tag := range s.Languages {
		if IsKoreanTag(tag) {
			return i18n.KR
		}
	}
	if strings.TrimSpace(s.Timezone) == SeoulTimezone {
		return i18n.KR
	}
	return i18n.DefaultLocale
}

// IsKoreanTag reports whether the primary language subtag of tag is Korean.
// POSIX forms such as "ko_KR.UTF-8" are accepted.
func IsKoreanTag(tag string) bool {
	tag = normalizeTag(tag)
	if tag == "" {
		return false
	}

	if t, err := language.Parse(tag); err == nil {
		base, _ := t.Base()
		kb, _ := korean.Base()
		return base == kb
	}

	// Unparseable tags fall back to a plain primary subtag comparison.
	primary, _, _ := strings.Cut(tag, "-")
	return strings.EqualFold(primary, "ko")
}

// normalizeTag strips POSIX codeset and modifier suffixes and converts
// underscores to BCP 47 separators.
func normalizeTag(tag string) string {
	tag = strings.TrimSpace(tag)
	if i := strings.IndexAny(tag, ".@"); i >= 0 {
		tag = tag[:i]
	}
	return strings.ReplaceAll(tag, "_", "-")
}
