// Package httpserver runs an http.Handler with graceful shutdown.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run blocks until the context is cancelled, SIGINT or SIGTERM arrives, or
// Shutdown is called, then drains in-flight requests for at most the
// shutdown timeout. Listen failures wrap ErrStart and shutdown failures wrap
// ErrShutdown.
//
// HealthCheckHandler serves liveness ("ALIVE") and readiness ("READY" /
// "NOT_READY") probes.
package httpserver
