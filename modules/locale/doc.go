// Package locale serves GET /api/locale, which reports the visitor's country
// as seen by the edge (CF-IPCountry) and whether it maps to the Korean
// locale:
//
//	{"country":"KR","isKoreanCountry":true}
//
// The answer is never cached.
package locale
