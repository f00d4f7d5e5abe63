// Package logger builds the *slog.Logger used across folio.
//
// New applies functional options and returns a logger whose handler runs
// registered ContextExtractor callbacks on every record, so request-scoped
// values such as the request ID show up without being passed around:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
//		logger.WithLevel(logger.ParseLevel(cfg.LogLevel, slog.LevelInfo)),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "contact relayed", logger.Provider("resend"))
//
// Development output is text at debug level; staging and production output
// is JSON at info level. Attribute helpers (Error, Locale, Country, ...) keep
// key names consistent. Libraries default to Discard when no logger is given.
package logger
