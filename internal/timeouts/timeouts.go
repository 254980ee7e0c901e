// Package timeouts provides centralized timeout constants for the application.
//
// Query processing is purely local (SQLite reads plus in-memory rendering),
// so the per-request budgets are short. The HTTP server timeouts leave room
// for slow clients without letting them pin connections.
package timeouts

import "time"

// HTTP server timeouts
const (
	// HTTPRead is the server read timeout. Query payloads are small JSON
	// bodies, so reads should complete quickly.
	HTTPRead = 10 * time.Second

	// HTTPWrite is the server write timeout. Covers query processing plus
	// response serialization.
	HTTPWrite = 30 * time.Second

	// HTTPReadHeader bounds header parsing for slowloris protection.
	HTTPReadHeader = 5 * time.Second

	// HTTPIdle is the keep-alive idle timeout.
	HTTPIdle = 120 * time.Second
)

// Query processing
const (
	// QueryDefault is the default per-query processing budget. Local
	// lookups finish in milliseconds; the budget only matters when the
	// database is under write contention.
	QueryDefault = 5 * time.Second
)

// Database timeouts
const (
	// DatabaseBusyTimeout is the SQLite busy_timeout pragma value. Covers
	// write contention while a seeding run replaces knowledge records.
	DatabaseBusyTimeout = 30 * time.Second

	// DatabaseConnMaxLifetime is the maximum lifetime of pooled database
	// connections.
	DatabaseConnMaxLifetime = time.Hour
)

// Background intervals
const (
	// RateLimiterCleanup is how often idle per-client token buckets are
	// removed.
	RateLimiterCleanup = 5 * time.Minute
)

// Startup and shutdown
const (
	// CacheWarmup bounds the startup pre-rendering of common responses.
	CacheWarmup = 30 * time.Second

	// WarmupReadiness is how long the readiness probe reports not-ready
	// before giving up on warmup and serving anyway.
	WarmupReadiness = time.Minute

	// GracefulShutdown is the timeout for draining in-flight requests on
	// shutdown.
	GracefulShutdown = 30 * time.Second

	// SentryFlush bounds the final Sentry event flush during shutdown.
	SentryFlush = 2 * time.Second
)
