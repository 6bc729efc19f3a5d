package rate

import (
	"testing"
	"time"
)

func TestSystemClock(t *testing.T) {
	clock := NewSystemClock()

	t1 := clock.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := clock.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
}

func TestSystemClockAfterFunc(t *testing.T) {
	clock := NewSystemClock()

	fired := make(chan struct{})
	clock.AfterFunc(time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("Expected scheduled callback to fire")
	}
}

func TestMockClockNowAndAdvance(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockClock(startTime)

	now := mock.Now()
	if !now.Equal(startTime) {
		t.Errorf("Expected initial time to be %v, got %v", startTime, now)
	}

	newTime := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(newTime)
	if now = mock.Now(); !now.Equal(newTime) {
		t.Errorf("Expected time to be %v after SetTime, got %v", newTime, now)
	}

	mock.Advance(1 * time.Hour)
	expected := newTime.Add(1 * time.Hour)
	if now = mock.Now(); !now.Equal(expected) {
		t.Errorf("Expected time to be %v after Advance, got %v", expected, now)
	}

	mock.Advance(30 * time.Minute)
	mock.Advance(15 * time.Minute)
	expected = newTime.Add(1*time.Hour + 30*time.Minute + 15*time.Minute)
	if now = mock.Now(); !now.Equal(expected) {
		t.Errorf("Expected time to be %v after multiple advances, got %v", expected, now)
	}
}

func TestMockClockFiresDueTimersInOrder(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockClock(start)

	var order []int
	mock.AfterFunc(30*time.Millisecond, func() { order = append(order, 30) })
	mock.AfterFunc(10*time.Millisecond, func() { order = append(order, 10) })
	mock.AfterFunc(20*time.Millisecond, func() { order = append(order, 20) })

	// Nothing due yet
	mock.Advance(5 * time.Millisecond)
	if len(order) != 0 {
		t.Fatalf("Expected no callbacks before their deadlines, got %v", order)
	}

	mock.Advance(20 * time.Millisecond)
	if len(order) != 2 || order[0] != 10 || order[1] != 20 {
		t.Fatalf("Expected callbacks 10 and 20 in deadline order, got %v", order)
	}

	mock.Advance(10 * time.Millisecond)
	if len(order) != 3 || order[2] != 30 {
		t.Fatalf("Expected final callback after its deadline, got %v", order)
	}
}

func TestMockClockTimerSeesOwnDeadline(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockClock(start)

	var at time.Time
	mock.AfterFunc(10*time.Millisecond, func() { at = mock.Now() })

	// The clock is positioned at the deadline while the callback runs,
	// even when Advance overshoots it
	mock.Advance(time.Hour)
	if want := start.Add(10 * time.Millisecond); !at.Equal(want) {
		t.Errorf("Expected callback to observe its deadline %v, got %v", want, at)
	}
	if want := start.Add(time.Hour); !mock.Now().Equal(want) {
		t.Errorf("Expected clock to land on the Advance target %v, got %v", want, mock.Now())
	}
}

func TestMockClockStop(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockClock(start)

	fired := false
	timer := mock.AfterFunc(10*time.Millisecond, func() { fired = true })

	if !timer.Stop() {
		t.Error("Expected Stop to report the timer as pending")
	}
	if timer.Stop() {
		t.Error("Expected second Stop to report the timer as gone")
	}

	mock.Advance(time.Hour)
	if fired {
		t.Error("Expected stopped timer not to fire")
	}
}

func TestMockClockConcurrency(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockClock(start)

	done := make(chan bool)

	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				_ = mock.Now()
			}
			done <- true
		}()
	}

	for i := 0; i < 5; i++ {
		go func() {
			for j := 0; j < 20; j++ {
				timer := mock.AfterFunc(time.Millisecond, func() {})
				timer.Stop()
			}
			done <- true
		}()
	}

	for i := 0; i < 15; i++ {
		<-done
	}
}
