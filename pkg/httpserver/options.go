package httpserver

import (
	"log/slog"
	"net/http"
	"time"
)

// Option configures the HTTP server. Zero values keep the current setting.
type Option func(*config)

// WithAddr sets the listen address.
func WithAddr(addr string) Option {
	return func(c *config) {
		if addr != "" {
			c.addr = addr
		}
	}
}

// WithTimeouts sets the read, write and idle timeouts of the underlying
// http.Server.
func WithTimeouts(read, write, idle time.Duration) Option {
	return func(c *config) {
		c.readTimeout = positive(read, c.readTimeout)
		c.writeTimeout = positive(write, c.writeTimeout)
		c.idleTimeout = positive(idle, c.idleTimeout)
	}
}

// WithShutdownTimeout bounds graceful shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	return func(c *config) { c.shutdownTimeout = positive(d, c.shutdownTimeout) }
}

// WithServer runs on srv. Its Handler is replaced; timeouts already set on
// srv win over the configured ones.
func WithServer(srv *http.Server) Option {
	return func(c *config) {
		if srv != nil {
			c.server = srv
		}
	}
}

// WithLogger sets the lifecycle logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// OnListen registers fn to run with the listen address once the server is
// about to accept connections.
func OnListen(fn func(addr string)) Option {
	return func(c *config) {
		if fn != nil {
			c.onListen = append(c.onListen, fn)
		}
	}
}

// OnStop registers fn to run after a graceful shutdown.
func OnStop(fn func()) Option {
	return func(c *config) {
		if fn != nil {
			c.onStop = append(c.onStop, fn)
		}
	}
}

func positive(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}
