package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a hand-driven wall clock for tests
// Readers on other goroutines see Advance without locking
type MockTimeProvider struct {
	base    time.Time
	elapsed atomic.Int64
}

// NewMockTimeProvider creates a mock clock reading start until advanced
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{base: start}
}

func (m *MockTimeProvider) Now() time.Time {
	return m.base.Add(m.Elapsed())
}

// Advance moves the clock forward by d; negative d moves it back
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.elapsed.Add(int64(d))
}

// Elapsed is the total advance since construction
func (m *MockTimeProvider) Elapsed() time.Duration {
	return time.Duration(m.elapsed.Load())
}
