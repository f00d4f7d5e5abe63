// Package requestid attaches a correlation ID to every HTTP request.
//
// Middleware reuses a client-supplied X-Request-ID when it is short and made
// of [a-zA-Z0-9_-], and generates a UUIDv4 otherwise. The ID is stored in
// the request context, echoed in the response header and exposed to the
// logger through LoggerExtractor:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware)
//
// Clients call Propagate to forward the ID of the current context on
// outbound requests.
package requestid
