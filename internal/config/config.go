// Package config provides application configuration management.
// It loads settings from environment variables and provides defaults for
// server mode, timeouts, and data locations.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/campusvoice/campus-assistant-go/internal/timeouts"
)

// Config holds all application configuration
type Config struct {
	// Server Configuration
	Port            string
	LogLevel        string
	ShutdownTimeout time.Duration

	// Data Configuration
	DataDir          string        // Directory for the SQLite knowledge database
	SeedDir          string        // Directory holding JSON seed files (cmd/seed)
	ResponseCacheTTL time.Duration // TTL for cached rendered responses

	// Query Processing
	QueryTimeout time.Duration // Per-query processing timeout

	// Rate Limits (Token Bucket Algorithm)
	ClientRateLimitBurst        float64 // Maximum burst tokens per client
	ClientRateLimitRefillPerSec float64 // Tokens refilled per second

	// Metrics Authentication
	MetricsUsername string // Username for /metrics Basic Auth (default: "prometheus")
	MetricsPassword string // Password for /metrics Basic Auth (empty = no auth)

	// Sentry (optional error tracking)
	SentryDSN         string
	SentryEnvironment string
	SentrySampleRate  float64

	// Better Stack (optional log shipping)
	BetterStackToken    string
	BetterStackEndpoint string
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first, then reads from env vars.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv(EnvPort, "8080"),
		LogLevel:        getEnv(EnvLogLevel, "info"),
		ShutdownTimeout: getDurationEnv(EnvShutdownTimeout, timeouts.GracefulShutdown),

		DataDir:          getEnv(EnvDataDir, getDefaultDataDir()),
		SeedDir:          getEnv(EnvSeedDir, "./data"),
		ResponseCacheTTL: getDurationEnv(EnvResponseCacheTTL, 5*time.Minute),

		QueryTimeout: getDurationEnv(EnvQueryTimeout, timeouts.QueryDefault),

		ClientRateLimitBurst:        getFloatEnv(EnvClientRateBurst, 15.0),
		ClientRateLimitRefillPerSec: getFloatEnv(EnvClientRateRefill, 1.0),

		MetricsUsername: getEnv(EnvMetricsUsername, "prometheus"),
		MetricsPassword: getEnv(EnvMetricsPassword, ""),

		SentryDSN:         getEnv(EnvSentryDSN, ""),
		SentryEnvironment: getEnv(EnvSentryEnvironment, "production"),
		SentrySampleRate:  getFloatEnv(EnvSentrySampleRate, 1.0),

		BetterStackToken:    getEnv(EnvBetterStackToken, ""),
		BetterStackEndpoint: getEnv(EnvBetterStackEndpoint, "https://in.logs.betterstack.com"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	var errs []error

	if c.Port == "" {
		errs = append(errs, errors.New(EnvPort+" is required"))
	}
	if c.DataDir == "" {
		errs = append(errs, errors.New(EnvDataDir+" is required"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvShutdownTimeout, c.ShutdownTimeout))
	}
	if c.QueryTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvQueryTimeout, c.QueryTimeout))
	}
	if c.ResponseCacheTTL <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvResponseCacheTTL, c.ResponseCacheTTL))
	}
	if c.ClientRateLimitBurst <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvClientRateBurst, c.ClientRateLimitBurst))
	}
	if c.ClientRateLimitRefillPerSec <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", EnvClientRateRefill, c.ClientRateLimitRefillPerSec))
	}
	if c.SentrySampleRate < 0 || c.SentrySampleRate > 1 {
		errs = append(errs, fmt.Errorf("%s must be in [0,1], got %v", EnvSentrySampleRate, c.SentrySampleRate))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// SQLitePath returns the full path to the SQLite database file
func (c *Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "campus.db")
}

// SentryEnabled returns true if Sentry error tracking is configured.
func (c *Config) SentryEnabled() bool {
	return c.SentryDSN != ""
}

// getEnv retrieves environment variable with fallback to default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv retrieves duration environment variable with fallback to default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getFloatEnv retrieves float64 environment variable with fallback to default value
func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getDefaultDataDir returns platform-specific default data directory
func getDefaultDataDir() string {
	if runtime.GOOS == "windows" {
		return "./data"
	}
	return "/data"
}
