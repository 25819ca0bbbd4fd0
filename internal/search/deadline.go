package search

import (
	"sync/atomic"
	"time"
)

// Deadline is the single cooperative cancellation point every planner
// checks at node-expansion boundaries: a wall-clock cutoff plus an
// externally settable stop flag (e.g. a supervisor process watching
// several planners at once). Setting Stop is idempotent and safe to call
// from any goroutine; planners themselves run single-threaded.
type Deadline struct {
	until time.Time
	stop  atomic.Bool
}

// NewDeadline creates a deadline that expires after d, or never if d<=0.
func NewDeadline(d time.Duration) *Deadline {
	dl := &Deadline{}
	if d > 0 {
		dl.until = time.Now().Add(d)
	}
	return dl
}

// Expired reports whether the deadline has been reached, either by wall
// clock or by an explicit Stop().
func (d *Deadline) Expired() bool {
	if d.stop.Load() {
		return true
	}
	if d.until.IsZero() {
		return false
	}
	return time.Now().After(d.until)
}

// Stop requests cooperative cancellation. Safe to call more than once.
func (d *Deadline) Stop() {
	d.stop.Store(true)
}

// Remaining returns the time left until expiry, or the largest
// representable duration if there is no wall-clock limit.
func (d *Deadline) Remaining() time.Duration {
	if d.until.IsZero() {
		return time.Duration(1<<63 - 1)
	}
	return time.Until(d.until)
}
