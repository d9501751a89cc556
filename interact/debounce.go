package interact

import (
	"sync"
	"time"
)

// A Debouncer coalesces bursts of triggers into a single callback after a
// quiescence interval. Triggering while a callback is pending restarts the
// interval, so the callback always observes the state left by the most
// recent trigger.
//
// The callback fires on a timer goroutine; hosts that need it on their own
// event loop call Flush there instead, which runs any pending callback
// synchronously.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	fn      func()
	timer   *time.Timer
	pending bool
}

// NewDebouncer returns a Debouncer invoking fn delay after the last
// Trigger.
func NewDebouncer(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Trigger schedules (or reschedules) the callback.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	run := d.pending
	d.pending = false
	d.mu.Unlock()
	if run {
		d.fn()
	}
}

// Flush runs the pending callback now, if any, superseding the timer.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	run := d.pending
	d.pending = false
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()
	if run {
		d.fn()
	}
}

// Stop discards any pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = false
	if d.timer != nil {
		d.timer.Stop()
	}
}
