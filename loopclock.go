package holddrag

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// LoopClock is a Clock backed by a clockwork.Clock for hosts without a fixed
// frame tick, such as event-driven terminal programs. Timers expire on the
// clockwork goroutine but their callbacks only run inside RunDue, which the
// host calls from its own loop once Ready fires.
type LoopClock struct {
	clock clockwork.Clock

	mu    sync.Mutex
	due   []*loopTimer
	ready chan struct{}
}

type loopTimer struct {
	timer   clockwork.Timer
	fn      func()
	stopped bool // host goroutine only
	fired   bool // host goroutine only
}

// NewLoopClock wraps c. Use clockwork.NewRealClock() in programs and
// clockwork.NewFakeClock() in tests.
func NewLoopClock(c clockwork.Clock) *LoopClock {
	return &LoopClock{clock: c, ready: make(chan struct{}, 1)}
}

// AfterFunc schedules f to run in a RunDue call once d has elapsed.
func (c *LoopClock) AfterFunc(d time.Duration, f func()) Timer {
	t := &loopTimer{fn: f}
	t.timer = c.clock.AfterFunc(d, func() {
		c.mu.Lock()
		c.due = append(c.due, t)
		c.mu.Unlock()
		select {
		case c.ready <- struct{}{}:
		default:
		}
	})
	return t
}

// Ready receives after at least one timer has come due.
func (c *LoopClock) Ready() <-chan struct{} {
	return c.ready
}

// RunDue runs the callbacks of every expired, unstopped timer in expiry
// order and returns how many ran.
func (c *LoopClock) RunDue() int {
	c.mu.Lock()
	due := c.due
	c.due = nil
	c.mu.Unlock()

	n := 0
	for _, t := range due {
		if t.stopped || t.fired {
			continue
		}
		t.fired = true
		t.fn()
		n++
	}
	return n
}

// Wait blocks until a timer comes due or ctx is done, then runs due
// callbacks on the calling goroutine.
func (c *LoopClock) Wait(ctx context.Context) (int, error) {
	select {
	case <-c.ready:
		return c.RunDue(), nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// Stop cancels the timer. A timer that expired but has not yet run in
// RunDue is still cancelled.
func (t *loopTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	t.timer.Stop()
	return true
}
