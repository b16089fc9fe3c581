package themewatch

import (
	"time"

	"unfocol/internal/timer"
)

// DefaultDebounce is the minimum spacing between applied reloads.
const DefaultDebounce = 200 * time.Millisecond

// Debouncer accepts a trigger only when more than window has passed since
// the last accepted one. The first trigger is always accepted.
type Debouncer struct {
	clock  timer.Clock
	window time.Duration
	last   time.Time
}

// NewDebouncer returns a debouncer reading time from clock.
func NewDebouncer(clock timer.Clock, window time.Duration) *Debouncer {
	if clock == nil {
		clock = timer.SystemClock
	}
	if window < 0 {
		window = 0
	}
	return &Debouncer{clock: clock, window: window}
}

// Accept reports whether a trigger arriving now should be acted on, and
// records it as the last applied trigger if so.
func (d *Debouncer) Accept() bool {
	now := d.clock.Now()
	if !d.last.IsZero() && now.Sub(d.last) <= d.window {
		return false
	}
	d.last = now
	return true
}

// LastApplied returns the instant of the last accepted trigger, or the zero
// time if none has been accepted.
func (d *Debouncer) LastApplied() time.Time {
	return d.last
}
