package core

import "time"

// TimeSource supplies the current simulation time
type TimeSource interface {
	Now() time.Duration
}

// TimerState is the result of querying a Timer
type TimerState uint8

const (
	TimerNotArmed TimerState = iota
	TimerRunning
	TimerElapsed
)

func (s TimerState) String() string {
	switch s {
	case TimerRunning:
		return "running"
	case TimerElapsed:
		return "elapsed"
	default:
		return "not-armed"
	}
}

// Timer is a one-shot countdown against a TimeSource
// Polled once per frame, it never blocks
type Timer struct {
	clock    TimeSource
	start    time.Duration
	duration time.Duration
	armed    bool
}

// NewTimer creates a disarmed timer bound to clock
func NewTimer(clock TimeSource) *Timer {
	return &Timer{clock: clock}
}

// Start arms the timer for d from the current clock reading, replacing any previous countdown
func (t *Timer) Start(d time.Duration) {
	t.start = t.clock.Now()
	t.duration = d
	t.armed = true
}

// Query reports the timer state
// With consume set, an elapsed timer disarms so the next query reads NotArmed
func (t *Timer) Query(consume bool) TimerState {
	if !t.armed {
		return TimerNotArmed
	}
	if t.clock.Now()-t.start > t.duration {
		if consume {
			t.armed = false
		}
		return TimerElapsed
	}
	return TimerRunning
}

// Peek is Query without consuming
func (t *Timer) Peek() TimerState { return t.Query(false) }

// Ready consumes an elapsed timer and reports whether the gated action may run
// An unarmed timer is ready; a running one is not
func (t *Timer) Ready() bool {
	return t.Query(true) != TimerRunning
}

// Active reports whether the countdown is still running, without consuming
func (t *Timer) Active() bool { return t.Peek() == TimerRunning }

// RemainingTime returns duration minus elapsed; zero when not armed
// Negative once elapsed but not yet consumed
func (t *Timer) RemainingTime() time.Duration {
	if !t.armed {
		return 0
	}
	return t.duration - (t.clock.Now() - t.start)
}
