package geo

import (
	"net/http"
	"strings"
)

// CountryHeader is the edge header carrying the visitor's two-letter country code.
const CountryHeader = "CF-IPCountry"

// KoreaCountryCode is the country that maps to the secondary locale.
const KoreaCountryCode = "KR"

// Lookup is the result of a geo lookup.
type Lookup struct {
	Country         string `json:"country"`
	IsKoreanCountry bool   `json:"isKoreanCountry"`
}

// NewLookup builds a Lookup for a raw country code. The code is upper-cased.
func NewLookup(country string) Lookup {
	country = strings.ToUpper(strings.TrimSpace(country))
	return Lookup{
		Country:         country,
		IsKoreanCountry: country == KoreaCountryCode,
	}
}

// CountryFromRequest returns the upper-cased country code set by the edge,
// or "" when the header is absent.
func CountryFromRequest(r *http.Request) string {
	return strings.ToUpper(strings.TrimSpace(r.Header.Get(CountryHeader)))
}

// FromRequest is shorthand for NewLookup(CountryFromRequest(r)).
func FromRequest(r *http.Request) Lookup {
	return NewLookup(CountryFromRequest(r))
}
