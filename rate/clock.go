// Package rate limits the invocation frequency of callbacks driven by
// high-frequency event streams (pointer move, scroll, resize).
//
// Two policies are provided: Debounce (trailing edge, suppress and
// coalesce a burst into one call) and Throttle (leading edge, gate with
// a cooldown window that drops calls). Both are built on an injectable
// Clock so tests simulate elapsed time instead of sleeping.
package rate

import "time"

// Timer is a cancellable handle for a scheduled callback.
// Stop reports whether it prevented the callback from running.
type Timer interface {
	Stop() bool
}

// Clock abstracts time measurement and delayed scheduling.
// Implementations must be safe for concurrent use.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc schedules fn to run after d elapses and returns a
	// cancellable handle. fn runs asynchronously with respect to the
	// caller.
	AfterFunc(d time.Duration, fn func()) Timer
}

// SystemClock provides the real system time with monotonic clock
// readings and schedules through runtime timers.
type SystemClock struct{}

// NewSystemClock creates a new monotonic system clock.
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time with monotonic clock reading.
func (c *SystemClock) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules fn on a runtime timer.
func (c *SystemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
