// Package app provides application initialization and lifecycle management.
package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/campusvoice/campus-assistant-go/internal/assistant"
	"github.com/campusvoice/campus-assistant-go/internal/buildinfo"
	"github.com/campusvoice/campus-assistant-go/internal/config"
	"github.com/campusvoice/campus-assistant-go/internal/knowledge"
	"github.com/campusvoice/campus-assistant-go/internal/logger"
	"github.com/campusvoice/campus-assistant-go/internal/metrics"
	"github.com/campusvoice/campus-assistant-go/internal/ratelimit"
	"github.com/campusvoice/campus-assistant-go/internal/sentry"
	"github.com/campusvoice/campus-assistant-go/internal/storage"
	"github.com/campusvoice/campus-assistant-go/internal/timeouts"
	"github.com/campusvoice/campus-assistant-go/internal/warmup"
)

// Application manages the application lifecycle and dependencies.
type Application struct {
	cfg           *config.Config
	logger        *logger.Logger
	db            *storage.DB
	metrics       *metrics.Metrics
	registry      *prometheus.Registry
	store         knowledge.Store
	assistant     *assistant.Assistant
	clientLimiter *ratelimit.ClientLimiter
	readiness     *warmup.ReadinessState
	server        *http.Server
}

// Initialize creates and initializes a new application with all dependencies.
func Initialize(cfg *config.Config) (*Application, error) {
	log := logger.NewWithOptions(cfg.LogLevel, os.Stdout, logger.Options{
		BetterStackToken:    cfg.BetterStackToken,
		BetterStackEndpoint: cfg.BetterStackEndpoint,
	}).WithField("service", "campus-assistant")
	if host, err := os.Hostname(); err == nil && host != "" {
		log = log.WithField("instance_id", host)
	}
	if buildinfo.Version != "" {
		log = log.WithField("version", buildinfo.Version)
	}

	log.Infof("initializing application")
	if cfg.BetterStackToken != "" {
		log.WithField("endpoint", cfg.BetterStackEndpoint).Infof("Better Stack logging enabled")
	}

	if err := sentry.Initialize(sentry.Config{
		DSN:         cfg.SentryDSN,
		Environment: cfg.SentryEnvironment,
		SampleRate:  cfg.SentrySampleRate,
	}); err != nil {
		return nil, fmt.Errorf("sentry: %w", err)
	}
	if sentry.IsEnabled() {
		log.WithField("environment", cfg.SentryEnvironment).Infof("sentry error tracking enabled")
	}

	db, err := storage.New(cfg.SQLitePath())
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	log.WithField("path", cfg.SQLitePath()).Infof("database connected")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewBuildInfoCollector(),
	)
	m := metrics.New(registry)

	store := knowledge.NewSQLStore(db, cfg.ResponseCacheTTL, m, log)
	asst := assistant.New(store, m, log)

	clientLimiter := ratelimit.NewClientLimiter(ratelimit.ClientConfig{
		Name:          "client",
		Burst:         cfg.ClientRateLimitBurst,
		RefillRate:    cfg.ClientRateLimitRefillPerSec,
		CleanupPeriod: timeouts.RateLimiterCleanup,
		Metrics:       m,
	})

	app := &Application{
		cfg:           cfg,
		logger:        log,
		db:            db,
		metrics:       m,
		registry:      registry,
		store:         store,
		assistant:     asst,
		clientLimiter: clientLimiter,
		readiness:     warmup.NewReadinessState(timeouts.WarmupReadiness),
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	if sentry.IsEnabled() {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(securityHeadersMiddleware())
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log, m))

	router.GET("/", app.serviceInfo)
	router.GET("/healthz", app.livenessCheck)
	router.HEAD("/healthz", app.livenessCheck)
	router.GET("/ready", app.readinessCheck)
	router.HEAD("/ready", app.readinessCheck)
	router.POST("/api/query", app.rateLimitMiddleware(), app.handleQuery)
	router.GET("/metrics",
		metricsAuthMiddleware(cfg.MetricsPassword != "", cfg.MetricsUsername, cfg.MetricsPassword),
		gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	app.server = &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: timeouts.HTTPReadHeader,
		ReadTimeout:       timeouts.HTTPRead,
		WriteTimeout:      timeouts.HTTPWrite,
		IdleTimeout:       timeouts.HTTPIdle,
	}

	log.Infof("initialization complete")
	return app, nil
}

// Router returns the configured HTTP handler.
func (a *Application) Router() http.Handler {
	return a.server.Handler
}

func (a *Application) serviceInfo(c *gin.Context) {
	info := gin.H{
		"service":     "campus-assistant",
		"description": "campus information question answering API",
		"endpoints":   []string{"/api/query", "/healthz", "/ready", "/metrics"},
	}
	if buildinfo.Version != "" {
		info["version"] = buildinfo.Version
	}
	if buildinfo.Commit != "" {
		info["commit"] = buildinfo.Commit
	}
	if buildinfo.BuildDate != "" {
		info["build_date"] = buildinfo.BuildDate
	}
	c.JSON(http.StatusOK, info)
}

func (a *Application) livenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func (a *Application) readinessCheck(c *gin.Context) {
	if !a.readiness.IsReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"warmup": a.readiness.Status(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := a.db.Ready(ctx); err != nil {
		a.logger.WithError(err).Warnf("readiness check failed: database unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"reason": "database unavailable",
		})
		return
	}

	records := gin.H{}
	if count, err := a.db.CountClassSlots(ctx); err == nil {
		records["timetable_slots"] = count
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"database": "connected",
		"records":  records,
	})
}

// queryContext bounds one query's processing time.
func (a *Application) queryContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), a.cfg.QueryTimeout)
}

// Run starts the HTTP server and blocks until a shutdown signal arrives.
// Cache warming runs in the background; the readiness probe reports ready
// once it finishes or its timeout elapses.
func (a *Application) Run() error {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeouts.CacheWarmup)
		defer cancel()
		warmup.Run(ctx, a.store, a.logger)
		a.readiness.MarkReady()
	}()

	go func() {
		a.logger.WithField("port", a.cfg.Port).Infof("starting HTTP server")
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.WithError(err).Errorf("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	a.logger.WithField("signal", sig.String()).Infof("received shutdown signal")
	return a.shutdown()
}

// shutdown stops the HTTP server, then closes resources.
func (a *Application) shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	a.logger.Infof("stopping HTTP server")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.WithError(err).Errorf("HTTP server shutdown error")
	}

	a.clientLimiter.Stop()

	if err := a.db.Close(); err != nil {
		a.logger.WithError(err).Errorf("database close error")
	}

	if sentry.IsEnabled() {
		sentry.Flush(timeouts.SentryFlush)
	}

	a.logger.Infof("shutdown complete")
	return nil
}
