package engine

import (
	"time"

	"github.com/lixenwraith/corsair/constant"
)

// PausableClock is the simulation time source
// It only moves when the frame loop advances it, so timers freeze while paused
type PausableClock struct {
	now    time.Duration
	paused bool
}

// NewPausableClock creates a clock at time zero
func NewPausableClock() *PausableClock {
	return &PausableClock{}
}

// Now returns current simulation time
func (pc *PausableClock) Now() time.Duration {
	return pc.now
}

// Seconds returns current simulation time as float seconds
func (pc *PausableClock) Seconds() float64 {
	return pc.now.Seconds()
}

// Advance moves the clock forward by dt and returns the applied step
// Negative steps are ignored; steps above MaxFrameDelta are clamped
func (pc *PausableClock) Advance(dt time.Duration) time.Duration {
	if pc.paused || dt <= 0 {
		return 0
	}
	if dt > constant.MaxFrameDelta {
		dt = constant.MaxFrameDelta
	}
	pc.now += dt
	return dt
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() { pc.paused = true }

// Resume continues game time advancement
func (pc *PausableClock) Resume() { pc.paused = false }

// IsPaused returns whether the clock is paused
func (pc *PausableClock) IsPaused() bool { return pc.paused }
