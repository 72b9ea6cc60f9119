package listview

import (
	"sync"
	"time"
)

// Debouncer delivers the latest input value after a quiet period with no
// further input. Every Input resets the timer, so a rapid burst collapses to
// one delivery carrying the final value. Stop cancels any pending delivery
// permanently.
//
// deliver runs with the debouncer's lock held so that cancellation and
// delivery cannot interleave; it must not call back into the debouncer.
type Debouncer struct {
	mu      sync.Mutex
	window  time.Duration
	deliver func(string)
	timer   *time.Timer
	seq     uint64
	stopped bool
}

func NewDebouncer(window time.Duration, deliver func(string)) *Debouncer {
	return &Debouncer{window: window, deliver: deliver}
}

func (d *Debouncer) Input(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	// Timer.Stop cannot unschedule a callback that has already started, so
	// each callback re-checks it is still the latest. The check and the
	// delivery stay under one critical section: once Stop (or a newer
	// Input) returns, this delivery can no longer happen.
	d.seq++
	seq := d.seq
	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.stopped || seq != d.seq {
			return
		}
		d.deliver(value)
	})
}

func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
