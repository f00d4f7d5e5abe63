package contact

import "net/http"

// Unknown is recorded when a metadata header is absent.
const Unknown = "unknown"

// Metadata describes where a submission came from.
type Metadata struct {
	IP        string
	UserAgent string
}

// MetadataFromRequest reads the edge-provided client address and user agent.
// Values are kept as sent, including any X-Forwarded-For proxy chain;
// only an empty header falls through.
func MetadataFromRequest(r *http.Request) Metadata {
	ip := r.Header.Get("CF-Connecting-IP")
	if ip == "" {
		ip = r.Header.Get("X-Forwarded-For")
	}
	if ip == "" {
		ip = Unknown
	}

	ua := r.Header.Get("User-Agent")
	if ua == "" {
		ua = Unknown
	}

	return Metadata{IP: ip, UserAgent: ua}
}

func (md Metadata) orUnknown() Metadata {
	if md.IP == "" {
		md.IP = Unknown
	}
	if md.UserAgent == "" {
		md.UserAgent = Unknown
	}
	return md
}
