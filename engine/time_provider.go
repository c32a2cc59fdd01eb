package engine

import "time"

// TimeProvider supplies wall time to the frame loop
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// FrameTimer measures wall time between frames
type FrameTimer struct {
	provider TimeProvider
	last     time.Time
}

// NewFrameTimer creates a frame timer anchored at the provider's current time
func NewFrameTimer(provider TimeProvider) *FrameTimer {
	return &FrameTimer{provider: provider, last: provider.Now()}
}

// Tick returns the wall time elapsed since the previous Tick
func (ft *FrameTimer) Tick() time.Duration {
	now := ft.provider.Now()
	dt := now.Sub(ft.last)
	ft.last = now
	if dt < 0 {
		return 0
	}
	return dt
}
