// Package config defines environment variable keys for configuration.
package config

//nolint:gosec // Environment variable keys are not credentials.
const (
	// Server
	EnvPort            = "CAMPUS_PORT"
	EnvLogLevel        = "CAMPUS_LOG_LEVEL"
	EnvShutdownTimeout = "CAMPUS_SHUTDOWN_TIMEOUT"

	// Data
	EnvDataDir          = "CAMPUS_DATA_DIR"
	EnvSeedDir          = "CAMPUS_SEED_DIR"
	EnvResponseCacheTTL = "CAMPUS_RESPONSE_CACHE_TTL"

	// Query processing
	EnvQueryTimeout = "CAMPUS_QUERY_TIMEOUT"

	// Rate Limits
	EnvClientRateBurst  = "CAMPUS_CLIENT_RATE_BURST"
	EnvClientRateRefill = "CAMPUS_CLIENT_RATE_REFILL"

	// Metrics
	EnvMetricsUsername = "CAMPUS_METRICS_USERNAME"
	EnvMetricsPassword = "CAMPUS_METRICS_PASSWORD"

	// Sentry Feature
	EnvSentryDSN         = "CAMPUS_SENTRY_DSN"
	EnvSentryEnvironment = "CAMPUS_SENTRY_ENVIRONMENT"
	EnvSentrySampleRate  = "CAMPUS_SENTRY_SAMPLE_RATE"

	// Better Stack log shipping
	EnvBetterStackToken    = "CAMPUS_BETTERSTACK_TOKEN"
	EnvBetterStackEndpoint = "CAMPUS_BETTERSTACK_ENDPOINT"
)
