package warmup

import (
	"sync/atomic"
	"time"
)

// ReadinessState tracks whether startup cache warming has completed.
// The ready field uses atomic operations; startTime and timeout are
// immutable after construction.
type ReadinessState struct {
	ready     atomic.Bool
	startTime time.Time
	timeout   time.Duration
}

// ReadinessStatus contains the current readiness state for API responses.
type ReadinessStatus struct {
	Ready          bool   `json:"ready"`
	Reason         string `json:"reason,omitempty"`
	ElapsedSeconds int    `json:"elapsed_seconds,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"`
}

// NewReadinessState creates a ReadinessState with the specified timeout.
// The state starts as not ready and becomes ready when MarkReady is called
// or when the timeout elapses, whichever comes first.
func NewReadinessState(timeout time.Duration) *ReadinessState {
	return &ReadinessState{
		startTime: time.Now(),
		timeout:   timeout,
	}
}

// IsReady returns true once warmup completed or the timeout elapsed. The
// timeout fallback means a slow warmup degrades to cold-cache serving
// instead of keeping the service out of rotation.
func (s *ReadinessState) IsReady() bool {
	if s.ready.Load() {
		return true
	}
	return time.Since(s.startTime) >= s.timeout
}

// MarkReady marks the service as ready. Called when cache warming finishes.
func (s *ReadinessState) MarkReady() {
	s.ready.Store(true)
}

// Status returns the current readiness state for API responses.
func (s *ReadinessState) Status() ReadinessStatus {
	elapsed := time.Since(s.startTime)
	isReady := s.IsReady()

	status := ReadinessStatus{
		Ready:          isReady,
		ElapsedSeconds: int(elapsed.Seconds()),
		TimeoutSeconds: int(s.timeout.Seconds()),
	}

	if !isReady {
		status.Reason = "cache warmup in progress"
	} else if !s.ready.Load() {
		status.Reason = "timeout reached (warmup may still be running)"
	}

	return status
}
