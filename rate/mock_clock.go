package rate

import (
	"sort"
	"sync"
	"time"
)

// MockClock provides a controllable time source for testing.
// Scheduled callbacks fire from Advance, in deadline order, with the
// clock positioned at each deadline while its callback runs.
type MockClock struct {
	mu          sync.RWMutex
	currentTime time.Time
	timers      []*mockTimer
}

// NewMockClock creates a new mock clock with the given start time.
func NewMockClock(startTime time.Time) *MockClock {
	return &MockClock{
		currentTime: startTime,
	}
}

// Now returns the current mocked time.
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime sets the current time for the mock without firing timers.
func (m *MockClock) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// AfterFunc schedules fn to fire once the clock advances past the
// deadline. A non-positive d fires on the next Advance.
func (m *MockClock) AfterFunc(d time.Duration, fn func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := &mockTimer{
		clock:    m,
		deadline: m.currentTime.Add(d),
		fn:       fn,
	}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves the clock forward by d, firing due callbacks in
// deadline order. Callbacks run on the caller's goroutine, outside the
// clock's lock, so they may schedule or stop timers themselves.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.currentTime.Add(d)
	m.mu.Unlock()

	for {
		t := m.popDue(target)
		if t == nil {
			break
		}
		t.fn()
	}

	m.mu.Lock()
	m.currentTime = target
	m.mu.Unlock()
}

// popDue removes and returns the earliest pending timer with a deadline
// at or before target, setting the clock to that deadline. Returns nil
// when nothing is due.
func (m *MockClock) popDue(target time.Time) *mockTimer {
	m.mu.Lock()
	defer m.mu.Unlock()

	sort.SliceStable(m.timers, func(i, j int) bool {
		return m.timers[i].deadline.Before(m.timers[j].deadline)
	})

	for i, t := range m.timers {
		if t.deadline.After(target) {
			break
		}
		m.timers = append(m.timers[:i], m.timers[i+1:]...)
		m.currentTime = t.deadline
		return t
	}
	return nil
}

// remove drops a stopped timer from the pending set.
// Reports whether the timer was still pending.
func (m *MockClock) remove(t *mockTimer) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, pending := range m.timers {
		if pending == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return true
		}
	}
	return false
}

// mockTimer is a pending MockClock callback.
type mockTimer struct {
	clock    *MockClock
	deadline time.Time
	fn       func()
}

// Stop cancels the timer, reporting whether it was still pending.
func (t *mockTimer) Stop() bool {
	return t.clock.remove(t)
}
