package ratelimit

import (
	"sync"
	"time"

	"github.com/campusvoice/campus-assistant-go/internal/metrics"
)

// ClientConfig configures a ClientLimiter.
type ClientConfig struct {
	// Name identifies this limiter in metrics labels.
	Name string

	Burst      float64 // maximum tokens per client
	RefillRate float64 // tokens refilled per second

	// CleanupPeriod is how often idle client buckets are removed.
	CleanupPeriod time.Duration

	// Metrics may be nil.
	Metrics *metrics.Metrics
}

// ClientLimiter tracks one token bucket per client key (typically the
// client IP) and removes buckets that have refilled to capacity.
type ClientLimiter struct {
	mu      sync.RWMutex
	buckets map[string]*Limiter
	config  ClientConfig
	stopCh  chan struct{}
	stopped sync.Once
}

// NewClientLimiter creates a per-client limiter and starts its cleanup
// goroutine. Call Stop when done.
func NewClientLimiter(cfg ClientConfig) *ClientLimiter {
	if cfg.CleanupPeriod <= 0 {
		cfg.CleanupPeriod = 5 * time.Minute
	}

	cl := &ClientLimiter{
		buckets: make(map[string]*Limiter),
		config:  cfg,
		stopCh:  make(chan struct{}),
	}
	go cl.cleanupLoop()
	return cl
}

// Allow reports whether a request for key is allowed, consuming a token when
// it is. An empty key is always allowed.
func (cl *ClientLimiter) Allow(key string) bool {
	if key == "" {
		return true
	}

	if cl.bucketFor(key).Allow() {
		return true
	}
	cl.config.Metrics.RecordRateLimiterDrop(cl.config.Name)
	return false
}

func (cl *ClientLimiter) bucketFor(key string) *Limiter {
	cl.mu.RLock()
	bucket, ok := cl.buckets[key]
	cl.mu.RUnlock()
	if ok {
		return bucket
	}

	cl.mu.Lock()
	defer cl.mu.Unlock()

	if bucket, ok = cl.buckets[key]; ok {
		return bucket
	}
	bucket = New(cl.config.Burst, cl.config.RefillRate)
	cl.buckets[key] = bucket
	return bucket
}

// ActiveCount returns the number of tracked client buckets.
func (cl *ClientLimiter) ActiveCount() int {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	return len(cl.buckets)
}

func (cl *ClientLimiter) cleanupLoop() {
	ticker := time.NewTicker(cl.config.CleanupPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-cl.stopCh:
			return
		case <-ticker.C:
			cl.mu.Lock()
			for key, bucket := range cl.buckets {
				if bucket.IsFull() {
					delete(cl.buckets, key)
				}
			}
			cl.mu.Unlock()
		}
	}
}

// Stop terminates the cleanup goroutine. Safe to call multiple times.
func (cl *ClientLimiter) Stop() {
	cl.stopped.Do(func() { close(cl.stopCh) })
}
