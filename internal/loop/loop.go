// Package loop is the single-threaded cooperative event loop that runs every
// panel computation. Work is queued as one-shot idle or timeout sources;
// only the goroutine running the loop executes them.
package loop

import (
	"container/heap"
	"context"
	"sync"
	"time"
)

// Source is one scheduled callback. It runs at most once.
type Source struct {
	loop     *Loop
	fn       func()
	deadline time.Time
	seq      uint64
	index    int // position in the timer heap, -1 when not queued there
	idle     bool
	done     bool
}

// Cancel removes the source from the loop. It reports whether the source was
// still pending.
func (s *Source) Cancel() bool {
	if s == nil {
		return false
	}
	l := s.loop
	l.mu.Lock()
	defer l.mu.Unlock()
	if s.done {
		return false
	}
	s.done = true
	if !s.idle && s.index >= 0 {
		heap.Remove(&l.timers, s.index)
	}
	return true
}

// Pending reports whether the source has neither run nor been cancelled.
func (s *Source) Pending() bool {
	if s == nil {
		return false
	}
	s.loop.mu.Lock()
	defer s.loop.mu.Unlock()
	return !s.done
}

// Option configures a Loop.
type Option func(*Loop)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Loop) { l.now = now }
}

// Loop is the event loop. The zero value is not usable, call New.
type Loop struct {
	mu     sync.Mutex
	idle   []*Source
	timers timerHeap
	seq    uint64
	now    func() time.Time
	wake   chan struct{}
}

// New creates an empty loop.
func New(opts ...Option) *Loop {
	l := &Loop{
		now:  time.Now,
		wake: make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Idle queues fn to run the next time the loop is idle, after every idle
// source queued before it.
func (l *Loop) Idle(fn func()) *Source {
	l.mu.Lock()
	l.seq++
	s := &Source{loop: l, fn: fn, seq: l.seq, index: -1, idle: true}
	l.idle = append(l.idle, s)
	l.mu.Unlock()
	l.signal()
	return s
}

// Timeout queues fn to run once d has elapsed.
func (l *Loop) Timeout(d time.Duration, fn func()) *Source {
	l.mu.Lock()
	l.seq++
	s := &Source{loop: l, fn: fn, seq: l.seq, deadline: l.now().Add(d), index: -1}
	heap.Push(&l.timers, s)
	l.mu.Unlock()
	l.signal()
	return s
}

// Post hands fn over to the loop from any goroutine.
func (l *Loop) Post(fn func()) {
	l.Idle(fn)
}

func (l *Loop) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// RunPending runs the timers that are due and the idle sources queued before
// the call, and returns how many callbacks ran. Sources queued by those
// callbacks wait for the next call.
func (l *Loop) RunPending() int {
	ran := 0

	l.mu.Lock()
	now := l.now()
	var due []*Source
	for l.timers.Len() > 0 && !l.timers[0].deadline.After(now) {
		due = append(due, heap.Pop(&l.timers).(*Source))
	}
	batch := l.idle
	l.idle = nil
	l.mu.Unlock()

	for _, s := range append(due, batch...) {
		if l.take(s) {
			s.fn()
			ran++
		}
	}
	return ran
}

// Drain calls RunPending until nothing is left to run right now. It gives up
// after limit rounds, which guards tests against sources that keep
// re-scheduling themselves.
func (l *Loop) Drain(limit int) int {
	total := 0
	for range limit {
		n := l.RunPending()
		if n == 0 {
			break
		}
		total += n
	}
	return total
}

// take marks s as running, unless it was cancelled meanwhile.
func (l *Loop) take(s *Source) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if s.done {
		return false
	}
	s.done = true
	return true
}

// Len returns the number of pending sources.
func (l *Loop) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := l.timers.Len()
	for _, s := range l.idle {
		if !s.done {
			n++
		}
	}
	return n
}

// Run executes sources until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.RunPending()

		l.mu.Lock()
		hasIdle := len(l.idle) > 0
		var wait time.Duration = -1
		if l.timers.Len() > 0 {
			wait = max(l.timers[0].deadline.Sub(l.now()), 0)
		}
		l.mu.Unlock()

		if hasIdle {
			if err := ctx.Err(); err != nil {
				return err
			}
			continue
		}

		var timer <-chan time.Time
		if wait >= 0 {
			t := time.NewTimer(wait)
			timer = t.C
			select {
			case <-ctx.Done():
				t.Stop()
				return ctx.Err()
			case <-l.wake:
				t.Stop()
			case <-timer:
			}
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}

type timerHeap []*Source

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline.Equal(h[j].deadline) {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline.Before(h[j].deadline)
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	s := x.(*Source)
	s.index = len(*h)
	*h = append(*h, s)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	s := old[n-1]
	old[n-1] = nil
	s.index = -1
	*h = old[:n-1]
	return s
}
