// Package clientip resolves the originating client address of a request
// served behind Cloudflare or another reverse proxy.
//
// GetIP checks CF-Connecting-IP, X-Forwarded-For (first valid entry),
// X-Real-IP and RemoteAddr, in that order, and only ever returns a parsed,
// normalized IP. Middleware stores the result in the request context so
// LoggerExtractor can attach it to every log record of the request.
//
// Contact notifications record the raw edge headers instead; this package
// is for logs.
package clientip
