package loop

import "time"

// Deferred is a coalescing slot for one kind of deferred work: at most one
// source is pending per slot. The slot is cleared before the callback runs,
// so the callback may schedule the slot again.
type Deferred struct {
	src *Source
}

// Pending reports whether work is queued in the slot.
func (d *Deferred) Pending() bool {
	return d.src != nil
}

// Schedule queues fn as an idle source unless the slot is already pending.
// It reports whether a new source was queued.
func (d *Deferred) Schedule(l *Loop, fn func()) bool {
	if d.src != nil {
		return false
	}
	d.arm(l.Idle, fn)
	return true
}

// ScheduleAfter queues fn to run after delay unless the slot is already pending.
func (d *Deferred) ScheduleAfter(l *Loop, delay time.Duration, fn func()) bool {
	if d.src != nil {
		return false
	}
	d.arm(func(f func()) *Source { return l.Timeout(delay, f) }, fn)
	return true
}

// Reschedule drops any pending source and queues fn at the end of the idle queue.
func (d *Deferred) Reschedule(l *Loop, fn func()) {
	d.Cancel()
	d.arm(l.Idle, fn)
}

// Cancel drops the pending source, if any.
func (d *Deferred) Cancel() {
	if d.src != nil {
		d.src.Cancel()
		d.src = nil
	}
}

// arm queues fn through queue. The callback clears the slot only if it still
// holds this source, a newer one may have replaced it.
func (d *Deferred) arm(queue func(func()) *Source, fn func()) {
	var self *Source
	self = queue(func() {
		if d.src == self {
			d.src = nil
		}
		fn()
	})
	d.src = self
}
