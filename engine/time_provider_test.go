package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	assert.True(t, t2.After(t1))
	assert.GreaterOrEqual(t, t2.Sub(t1), 10*time.Millisecond)
}

func TestFrameTimerTick(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	ft := NewFrameTimer(mock)

	mock.Advance(16 * time.Millisecond)
	assert.Equal(t, 16*time.Millisecond, ft.Tick())

	mock.Advance(40 * time.Millisecond)
	assert.Equal(t, 40*time.Millisecond, ft.Tick())

	assert.Zero(t, ft.Tick(), "no wall time passed")
}

func TestFrameTimerTick_ClockStepsBack(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(100, 0))
	ft := NewFrameTimer(mock)

	mock.Advance(-time.Second)
	assert.Zero(t, ft.Tick())
	assert.Equal(t, -time.Second, mock.Elapsed())

	mock.Advance(1500 * time.Millisecond)
	assert.Equal(t, 1500*time.Millisecond, ft.Tick())
}
