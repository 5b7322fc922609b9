package holddrag

import (
	"sort"
	"time"
)

// Clock is the timer facility the engine schedules the long press on.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending callback. Stop reports whether it prevented the call.
type Timer interface {
	Stop() bool
}

// FrameClock is a single-threaded clock driven by the host's update loop.
// Timers fire inside Advance on the caller's goroutine, so timer callbacks
// never race with pointer handling.
type FrameClock struct {
	now    time.Duration
	timers []*frameTimer
	seq    uint64
}

type frameTimer struct {
	clock *FrameClock
	at    time.Duration
	seq   uint64
	fn    func()
	done  bool
}

// NewFrameClock returns a clock starting at zero.
func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

// Now returns the time elapsed since the clock was created.
func (c *FrameClock) Now() time.Duration {
	return c.now
}

// AfterFunc schedules f to run once d has elapsed.
func (c *FrameClock) AfterFunc(d time.Duration, f func()) Timer {
	c.seq++
	t := &frameTimer{clock: c, at: c.now + d, seq: c.seq, fn: f}
	c.timers = append(c.timers, t)
	return t
}

// Pending returns the number of timers that have neither fired nor been stopped.
func (c *FrameClock) Pending() int {
	return len(c.timers)
}

// Advance moves the clock forward by dt and runs every timer that came due,
// earliest deadline first. Timers scheduled by a callback with a deadline
// inside the window fire in the same call.
func (c *FrameClock) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := c.now + dt
	for {
		t := c.nextDue(target)
		if t == nil {
			break
		}
		c.now = t.at
		c.remove(t)
		t.done = true
		t.fn()
	}
	c.now = target
}

func (c *FrameClock) nextDue(limit time.Duration) *frameTimer {
	if len(c.timers) == 0 {
		return nil
	}
	sort.SliceStable(c.timers, func(i, j int) bool {
		a, b := c.timers[i], c.timers[j]
		if a.at != b.at {
			return a.at < b.at
		}
		return a.seq < b.seq
	})
	if c.timers[0].at > limit {
		return nil
	}
	return c.timers[0]
}

func (c *FrameClock) remove(t *frameTimer) {
	for i, x := range c.timers {
		if x == t {
			copy(c.timers[i:], c.timers[i+1:])
			c.timers[len(c.timers)-1] = nil
			c.timers = c.timers[:len(c.timers)-1]
			return
		}
	}
}

// Stop cancels the timer.
func (t *frameTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.clock.remove(t)
	return true
}
