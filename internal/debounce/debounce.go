// Package debounce coalesces bursts of triggers into a single call made once
// the triggers pause for a fixed delay.
package debounce

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Dispatcher runs fn on the goroutine that owns the state fn touches.
// Timer callbacks fire on a clock goroutine and are handed to it.
type Dispatcher func(fn func())

// Inline runs fn directly on the timer goroutine
func Inline(fn func()) { fn() }

// Debouncer calls fn once, delay after the last Trigger. It is safe to use
// from several goroutines.
type Debouncer struct {
	mu       sync.Mutex
	clock    clock.Clock
	delay    time.Duration
	fn       func()
	dispatch Dispatcher
	timer    *clock.Timer
	gen      uint64
}

// New creates a Debouncer. A nil dispatch runs fn inline.
func New(c clock.Clock, delay time.Duration, fn func(), dispatch Dispatcher) *Debouncer {
	if dispatch == nil {
		dispatch = Inline
	}
	return &Debouncer{
		clock:    c,
		delay:    delay,
		fn:       fn,
		dispatch: dispatch,
	}
}

// Trigger (re)starts the delay window
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.gen++
	gen := d.gen
	d.timer = d.clock.AfterFunc(d.delay, func() {
		d.dispatch(func() { d.fire(gen) })
	})
}

// Cancel drops a pending call. It reports whether one was pending.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	pending := d.timer != nil
	d.stopLocked()
	// a callback already handed to the dispatcher is discarded by fire
	d.gen++
	return pending
}

// Flush cancels any pending call and calls fn now
func (d *Debouncer) Flush() {
	d.Cancel()
	d.fn()
}

// Pending reports whether a call is scheduled
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Delay returns the configured window
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	d.fn()
}

func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
