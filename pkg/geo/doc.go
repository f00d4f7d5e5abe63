// Package geo carries the country signal supplied by the edge network.
//
// On the server, CountryFromRequest reads the CF-IPCountry header set by the
// CDN and NewLookup turns it into the JSON document served at /api/locale:
//
//	{"country":"KR","isKoreanCountry":true}
//
// On the client, HTTPFetcher performs exactly one uncached GET of that
// document. Every failure is returned as an error; callers treat errors as
// "no geo signal".
package geo
