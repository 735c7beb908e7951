package engine

import (
	"context"
	"sync"
	"time"
)

// MockTimeProvider provides a controllable time source for testing
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime sets the current time for the mock
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance advances the current time by the given duration
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// MockSleeper advances a MockTimeProvider instead of blocking and records each slice
type MockSleeper struct {
	Clock  *MockTimeProvider
	Slices []time.Duration

	// Interrupt makes Sleep fail with this error without advancing time
	Interrupt error
}

// Sleep advances the mock clock by d
func (s *MockSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if s.Interrupt != nil {
		return s.Interrupt
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.Slices = append(s.Slices, d)
	s.Clock.Advance(d)
	return nil
}

// Total returns the sum of all recorded slices
func (s *MockSleeper) Total() time.Duration {
	var total time.Duration
	for _, d := range s.Slices {
		total += d
	}
	return total
}
