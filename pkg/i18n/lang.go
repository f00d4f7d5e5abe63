package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
// RFC 7231 doesn't specify a limit, but 4KB is generous for legitimate headers.
const maxAcceptLanguageLength = 4096

// langWithQ represents a language tag with its quality value
type langWithQ struct {
	lang string
	q    float64
}

// parseAcceptLanguageHeader parses Accept-Language headers according to RFC 7231.
// Malformed quality values default to 1, entries with q=0 are dropped.
func parseAcceptLanguageHeader(header string) []langWithQ {
	if header == "" {
		return nil
	}

	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var languages []langWithQ

	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		langAndQ := strings.Split(part, ";")
		lang := strings.ToLower(strings.TrimSpace(langAndQ[0]))
		q := 1.0

		if len(langAndQ) > 1 {
			qPart := strings.TrimSpace(langAndQ[1])
			if strings.HasPrefix(qPart, "q=") {
				if qVal, err := strconv.ParseFloat(qPart[2:], 64); err == nil && qVal >= 0 && qVal <= 1 {
					q = qVal
				}
			}
		}

		if lang != "" && lang != "*" && q > 0 {
			languages = append(languages, langWithQ{lang: lang, q: q})
		}
	}

	// Stable so that equal weights keep the order the client sent.
	slices.SortStableFunc(languages, func(a, b langWithQ) int {
		return cmp.Compare(b.q, a.q)
	})

	return languages
}

// AcceptLanguageTags returns the language tags of an Accept-Language header
// ordered by preference, lower-cased.
func AcceptLanguageTags(header string) []string {
	languages := parseAcceptLanguageHeader(header)
	if len(languages) == 0 {
		return nil
	}

	tags := make([]string, len(languages))
	for i, lq := range languages {
		tags[i] = lq.lang
	}
	return tags
}
