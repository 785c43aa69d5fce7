package comobj

import (
	"sync/atomic"
	"time"
)

// Runnable Read-only interface for objects that maintain running state
type Runnable interface {
	IsRunning() bool
	StartTime() *time.Time
}

type DefaultRunnable struct {
	isRunning atomic.Bool
	startTime atomic.Pointer[time.Time]
}

func (r *DefaultRunnable) IsRunning() bool {
	return r.isRunning.Load()
}

// SetIsRunning records the transition; the start time is kept until the next start.
func (r *DefaultRunnable) SetIsRunning(isRunning bool) {
	if isRunning && !r.isRunning.Load() {
		now := time.Now().UTC()
		r.startTime.Store(&now)
	}
	r.isRunning.Store(isRunning)
}

func (r *DefaultRunnable) StartTime() *time.Time {
	startTime := r.startTime.Load()
	if startTime == nil {
		return nil
	}
	startTimeCopy := *startTime
	return &startTimeCopy
}

// Uptime is zero when the object never ran.
func (r *DefaultRunnable) Uptime() time.Duration {
	startTime := r.startTime.Load()
	if startTime == nil {
		return 0
	}
	return time.Since(*startTime)
}
