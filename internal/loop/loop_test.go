package loop

import (
	"context"
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLoop() (*Loop, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	return New(WithClock(clock.now)), clock
}

func TestIdleRunsInOrder(t *testing.T) {
	l, _ := newTestLoop()
	var got []int
	for i := range 3 {
		l.Idle(func() { got = append(got, i) })
	}

	if n := l.RunPending(); n != 3 {
		t.Fatalf("RunPending() = %d, want 3", n)
	}
	for i, v := range got {
		if v != i {
			t.Errorf("got[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestSourcesQueuedDuringRunWaitForNextRound(t *testing.T) {
	l, _ := newTestLoop()
	runs := 0
	l.Idle(func() {
		runs++
		l.Idle(func() { runs++ })
	})

	if n := l.RunPending(); n != 1 {
		t.Errorf("first RunPending() = %d, want 1", n)
	}
	if n := l.RunPending(); n != 1 {
		t.Errorf("second RunPending() = %d, want 1", n)
	}
	if runs != 2 {
		t.Errorf("runs = %d, want 2", runs)
	}
}

func TestTimeoutWaitsForDeadline(t *testing.T) {
	l, clock := newTestLoop()
	fired := false
	l.Timeout(330*time.Millisecond, func() { fired = true })

	clock.advance(329 * time.Millisecond)
	l.RunPending()
	if fired {
		t.Fatal("timeout fired before its deadline")
	}

	clock.advance(time.Millisecond)
	l.RunPending()
	if !fired {
		t.Fatal("timeout did not fire at its deadline")
	}
}

func TestCancel(t *testing.T) {
	l, clock := newTestLoop()
	ran := false
	idle := l.Idle(func() { ran = true })
	timer := l.Timeout(time.Second, func() { ran = true })

	if !idle.Cancel() {
		t.Error("Cancel() on a pending idle source = false, want true")
	}
	if !timer.Cancel() {
		t.Error("Cancel() on a pending timeout = false, want true")
	}
	if idle.Cancel() {
		t.Error("second Cancel() = true, want false")
	}

	clock.advance(2 * time.Second)
	l.RunPending()
	if ran {
		t.Error("cancelled source ran")
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
}

func TestDeferredCoalesces(t *testing.T) {
	l, _ := newTestLoop()
	var d Deferred
	runs := 0

	for range 5 {
		d.Schedule(l, func() { runs++ })
	}
	if !d.Pending() {
		t.Fatal("Pending() = false after Schedule")
	}

	l.Drain(10)
	if runs != 1 {
		t.Errorf("runs = %d, want 1", runs)
	}
	if d.Pending() {
		t.Error("Pending() = true after the callback ran")
	}
}

func TestDeferredClearedBeforeBody(t *testing.T) {
	l, _ := newTestLoop()
	var d Deferred
	runs := 0
	var body func()
	body = func() {
		if d.Pending() {
			t.Error("slot still pending inside its own callback")
		}
		runs++
		if runs < 3 {
			if !d.Schedule(l, body) {
				t.Error("Schedule from inside the callback was refused")
			}
		}
	}
	d.Schedule(l, body)

	l.Drain(10)
	if runs != 3 {
		t.Errorf("runs = %d, want 3", runs)
	}
}

func TestDeferredRescheduleMovesToEnd(t *testing.T) {
	l, _ := newTestLoop()
	var d Deferred
	var order []string

	d.Schedule(l, func() { order = append(order, "first") })
	l.Idle(func() { order = append(order, "other") })
	d.Reschedule(l, func() { order = append(order, "rescheduled") })

	l.Drain(10)
	want := []string{"other", "rescheduled"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %s, want %s", i, order[i], want[i])
		}
	}
}

func TestDeferredCancel(t *testing.T) {
	l, clock := newTestLoop()
	var d Deferred
	ran := false
	d.ScheduleAfter(l, time.Second, func() { ran = true })
	d.Cancel()

	clock.advance(time.Minute)
	l.Drain(10)
	if ran || d.Pending() {
		t.Errorf("ran = %v, pending = %v after Cancel, want false, false", ran, d.Pending())
	}
}

func TestRunStopsWithContext(t *testing.T) {
	l := New()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	ran := make(chan struct{})
	l.Post(func() { close(ran) })

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("posted function did not run")
	}

	cancel()
	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Run() = %v, want %v", err, context.Canceled)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
