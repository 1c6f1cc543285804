// Package gesture turns a raw stream of per-task tap events into edit or
// toggle intents. A single tap means "edit", two quick taps on the same
// task mean "toggle completed"; the ambiguity is resolved by a short
// cancellable timer.
package gesture

import (
	"sync"
	"time"
)

// DefaultWindow is the disambiguation window: a second tap on the same
// task within this span of the first is a double tap.
const DefaultWindow = 250 * time.Millisecond

// Disambiguator owns the timer for one gesture sequence. Each calendar
// view creates its own instance so concurrent views and tests never share
// timer state. The timer is cancelled by a second tap on the armed task,
// by a tap on any other task, and by Close; only a natural expiry emits
// the edit intent.
type Disambiguator struct {
	mu       sync.Mutex
	window   time.Duration
	onEdit   func(taskID string)
	onToggle func(taskID string)

	timer   *time.Timer
	armedID string
	armed   bool
	seq     uint64
	closed  bool
}

// New creates a disambiguator. A zero or negative window falls back to
// DefaultWindow. Callbacks may be nil, in which case the intent is
// dropped.
func New(window time.Duration, onEdit, onToggle func(taskID string)) *Disambiguator {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Disambiguator{
		window:   window,
		onEdit:   onEdit,
		onToggle: onToggle,
	}
}

// Tap records a tap on the given task and advances the state machine.
func (d *Disambiguator) Tap(taskID string) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}

	if d.armed && d.armedID == taskID {
		// Second tap inside the window: cancel the pending edit and toggle.
		d.disarmLocked()
		toggle := d.onToggle
		d.mu.Unlock()
		if toggle != nil {
			toggle(taskID)
		}
		return
	}

	// A tap on a different task supersedes the armed one without emitting;
	// the superseded task's edit only fires on natural timer expiry.
	d.disarmLocked()
	d.armLocked(taskID)
	d.mu.Unlock()
}

// Close tears down the sequence, cancelling any pending timer without
// emitting either intent. Taps after Close are ignored.
func (d *Disambiguator) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.disarmLocked()
	d.closed = true
}

// Armed reports whether a tap is waiting on the disambiguation timer.
func (d *Disambiguator) Armed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.armed
}

// armLocked starts a fresh timer for taskID. Caller holds the mutex.
func (d *Disambiguator) armLocked(taskID string) {
	d.seq++
	seq := d.seq
	d.armed = true
	d.armedID = taskID
	d.timer = time.AfterFunc(d.window, func() {
		d.expire(seq, taskID)
	})
}

// disarmLocked stops any pending timer and bumps the sequence number so a
// timer that already fired but has not yet taken the lock becomes a no-op.
// Caller holds the mutex.
func (d *Disambiguator) disarmLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.armed = false
	d.armedID = ""
	d.seq++
}

// expire runs when the window elapses without a second tap.
func (d *Disambiguator) expire(seq uint64, taskID string) {
	d.mu.Lock()
	if d.closed || !d.armed || d.seq != seq {
		d.mu.Unlock()
		return
	}
	d.armed = false
	d.armedID = ""
	d.timer = nil
	edit := d.onEdit
	d.mu.Unlock()

	if edit != nil {
		edit(taskID)
	}
}
