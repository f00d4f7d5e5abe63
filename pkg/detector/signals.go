package detector

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jeandeaual/go-locale"

	"github.com/patkim97/folio/pkg/i18n"
)

const zoneinfoMarker = "zoneinfo" + string(filepath.Separator)

// FromEnvironment collects signals from the operating system: the user's
// configured locales (LANGUAGE, LC_ALL, LANG and platform equivalents) and the
// local timezone.
func FromEnvironment() Signals {
	s := Signals{Timezone: LocalTimezone()}

	if tags, err := locale.GetLocales(); err == nil {
		for _, tag := range tags {
			if tag = strings.TrimSpace(tag); tag != "" {
				s.Languages = append(s.Languages, tag)
			}
		}
	}

	return s
}

// FromRequest collects signals from an HTTP request. Languages come from
// Accept-Language ordered by quality; the timezone is taken from the optional
// Time-Zone header sent by clients that know it.
func FromRequest(r *http.Request) Signals {
	return Signals{
		Languages: i18n.AcceptLanguageTags(r.Header.Get("Accept-Language")),
		Timezone:  strings.TrimSpace(r.Header.Get("Time-Zone")),
	}
}

// LocalTimezone returns the IANA name of the process timezone, or "" when it
// cannot be determined.
func LocalTimezone() string {
	if tz, ok := os.LookupEnv("TZ"); ok {
		if tz = strings.TrimPrefix(strings.TrimSpace(tz), ":"); tz != "" {
			return tz
		}
	}

	if name := time.Local.String(); name != "Local" && name != "" {
		return name
	}

	target, err := filepath.EvalSymlinks("/etc/localtime")
	if err != nil {
		return ""
	}
	if _, zone, ok := strings.Cut(target, zoneinfoMarker); ok {
		return zone
	}
	return ""
}
