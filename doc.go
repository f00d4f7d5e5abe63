// Package folio is the identity and contact layer of a personal site.
//
// It answers two questions for every visitor: which language to show, and
// how to get a message to the site owner.
//
// Locale resolution runs as a cascade. A stored explicit preference wins;
// otherwise the visitor's language tags and timezone pick a locale
// synchronously (pkg/detector), and a single background geo lookup
// (pkg/geo) may switch the view to Korean once. Toggling persists the choice
// (pkg/preference) and ends the cascade (pkg/cascade).
//
// Contact messages are validated and escaped (pkg/contact, pkg/sanitizer),
// then relayed through a transactional email provider (pkg/email). The
// visitor side drives the same contract through a small state machine
// (pkg/submission).
//
// Binaries:
//
//	cmd/server   HTTP API: POST /api/contact, GET /api/locale, GET /health
//	cmd/folio    visitor CLI: locale, toggle, send
package folio
