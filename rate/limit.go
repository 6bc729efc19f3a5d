package rate

import (
	"sync"
	"time"
)

// Debounce wraps fn with suppress-and-coalesce semantics: each call
// cancels any pending invocation and schedules fn to run after wait
// with the latest call's argument. A burst with no gap of at least wait
// between calls produces exactly one execution, wait after the last
// call (trailing edge).
//
// The wrapper returns immediately on every call; fn runs later on the
// clock's timer. A non-positive wait is legal and fires fn on (near)
// every call. Wrapper state is mutex-protected since runtime timers
// fire on their own goroutine; state is never shared across wrappers.
func Debounce[T any](clock Clock, wait time.Duration, fn func(T)) func(T) {
	var mu sync.Mutex
	var pending Timer

	return func(arg T) {
		mu.Lock()
		defer mu.Unlock()

		if pending != nil {
			pending.Stop()
		}
		var t Timer
		t = clock.AfterFunc(wait, func() {
			mu.Lock()
			if pending != t {
				// Superseded by a later call between fire and lock
				mu.Unlock()
				return
			}
			pending = nil
			mu.Unlock()

			fn(arg)
		})
		pending = t
	}
}

// Throttle wraps fn with gate semantics: a call executes fn immediately
// when more than wait has elapsed since the last execution (the first
// call always fires), and is dropped entirely otherwise. Calls inside
// the window are lost, not queued; no trailing execution is scheduled
// (leading edge).
//
// A non-positive wait is legal and passes every call through.
func Throttle[T any](clock Clock, wait time.Duration, fn func(T)) func(T) {
	var mu sync.Mutex
	var last time.Time

	return func(arg T) {
		mu.Lock()
		now := clock.Now()
		if !last.IsZero() && now.Sub(last) <= wait {
			mu.Unlock()
			return
		}
		last = now
		mu.Unlock()

		fn(arg)
	}
}
