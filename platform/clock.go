package platform

import (
	"sync"
	"time"
)

// TimeProvider answers "now" queries for the clock subscription and startup
type TimeProvider interface {
	Now() time.Time
}

// SystemTimeProvider reads the wall clock; used by the tick subscription
type SystemTimeProvider struct{}

// NewSystemTimeProvider returns the runtime's default clock
func NewSystemTimeProvider() *SystemTimeProvider {
	return &SystemTimeProvider{}
}

// Now returns time.Now, monotonic reading included
func (p *SystemTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider is a hand-driven clock so startup and tick times are
// reproducible in runtime tests
type MockTimeProvider struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMockTimeProvider returns a clock frozen at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

// Now returns the frozen time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// SetTime jumps the clock to t
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
