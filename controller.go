package holddrag

import (
	"time"

	"github.com/charmbracelet/log"
)

// Env bundles the collaborators a Controller drives. Controllers created by
// the same Board share one Env, so replacing a collaborator affects them all.
type Env struct {
	Registry  *Registry // required
	Clock     Clock     // required
	Observers Observers
	HitTester HitTester
	Ghosts    GhostPresenter
	Haptics   Haptics
	Logger    *log.Logger
}

// SurfaceConfig configures one draggable surface.
type SurfaceConfig struct {
	Name   string
	Bounds Rect
	// Exclude lists nested controls (e.g. a delete button) where a press
	// must not arm a gesture.
	Exclude []HitShape
	Payload Payload

	// OnTap is called when the surface is tapped.
	OnTap func(Payload)
	// OnDropResolved is called when the payload is dropped onto a meal
	// other than its current one.
	OnDropResolved func(Payload, MealID)

	LongPressDelay time.Duration // zero means DefaultLongPressDelay
	TapThreshold   float64       // zero means DefaultTapThreshold
}

// Controller interprets one pointer stream on one draggable surface as a
// tap, a cancelled gesture or a long-press drag. It invokes at most one
// outcome callback per session.
type Controller struct {
	env    *Env
	cfg    SurfaceConfig
	gen    uint64 // last session this controller armed
	disp   *Dispatcher
	closed bool
}

// NewController creates a controller. It panics if env lacks a Registry or
// a Clock.
func NewController(env *Env, cfg SurfaceConfig) *Controller {
	if env == nil || env.Registry == nil {
		panic("holddrag: NewController requires Env.Registry")
	}
	if env.Clock == nil {
		panic("holddrag: NewController requires Env.Clock")
	}
	if cfg.LongPressDelay <= 0 {
		cfg.LongPressDelay = DefaultLongPressDelay
	}
	if cfg.TapThreshold <= 0 {
		cfg.TapThreshold = DefaultTapThreshold
	}
	return &Controller{env: env, cfg: cfg}
}

// Name returns the surface name.
func (c *Controller) Name() string {
	return c.cfg.Name
}

// Bounds returns the surface's screen bounds.
func (c *Controller) Bounds() Rect {
	return c.cfg.Bounds
}

// SetBounds updates the surface's screen bounds after a layout change.
func (c *Controller) SetBounds(r Rect) {
	c.cfg.Bounds = r
}

// SetPayload replaces the payload used by future sessions. An active
// session keeps the payload it was armed with.
func (c *Controller) SetPayload(p Payload) {
	c.cfg.Payload = p
}

// State returns the state of this controller's session, or StateIdle when
// it owns none.
func (c *Controller) State() SessionState {
	if s := c.session(); s != nil {
		return s.state
	}
	return StateIdle
}

func (c *Controller) session() *session {
	return c.env.Registry.session(c.gen)
}

// Begin arms a session for a press at ev.Point. It reports false, without
// side effects, when the press is not eligible: not the primary pointer or
// button, over an excluded control, on a torn-down surface, or while any
// session is already active.
func (c *Controller) Begin(ev PointerEvent) bool {
	switch {
	case c.closed:
		return false
	case !ev.Primary || ev.Button != MouseButtonLeft:
		c.debug("rejected", "reason", "not primary", "pointer", ev.PointerID, "button", ev.Button)
		return false
	case c.cfg.Payload == nil:
		return false
	case anyContains(c.cfg.Exclude, ev.Point):
		c.debug("rejected", "reason", "excluded control", "pointer", ev.PointerID)
		return false
	}

	reg := c.env.Registry
	gen, ok := reg.acquire(c, ev, c.cfg.Payload)
	if !ok {
		c.debug("rejected", "reason", "session active", "pointer", ev.PointerID)
		return false
	}
	c.gen = gen
	t := c.env.Clock.AfterFunc(c.cfg.LongPressDelay, func() { c.promote(gen) })
	reg.slot.guard.holdTimer(t)
	c.debug("armed", "gen", gen, "pointer", ev.PointerID, "x", ev.Point.X, "y", ev.Point.Y)

	// Listeners may cancel the session or tear the surface down.
	reg.notify()
	if !reg.current(gen) || c.closed {
		reg.release(gen)
		return false
	}
	return true
}

// promote runs when the long-press timer fires.
func (c *Controller) promote(gen uint64) {
	reg := c.env.Registry
	s := reg.session(gen)
	if s == nil || s.state != StateArmed {
		c.debug("stale timer", "gen", gen)
		return
	}
	s.guard.dropTimer()
	s.state = StateDragging

	if c.env.Haptics != nil {
		c.env.Haptics.Pulse()
	}
	if c.env.Ghosts != nil {
		gh := c.env.Ghosts.CreateGhost(GhostSpec{
			Name:    c.cfg.Name,
			Payload: s.payload,
			Bounds:  c.cfg.Bounds,
			Origin:  s.origin,
		})
		if gh != nil {
			s.guard.holdGhost(gh)
			// Centered on the capture point plus the travel since the press.
			gh.MoveTo(s.last)
		}
	}
	if obs := c.env.Observers; obs != nil {
		pointer := s.pointer
		s.guard.holdObservers(
			obs.OnPointerMove(func(ev PointerEvent) {
				if ev.PointerID == pointer {
					c.Move(ev)
				}
			}),
			obs.OnPointerUp(func(ev PointerEvent) {
				if ev.PointerID == pointer {
					c.End(ev)
				}
			}),
			obs.OnPointerCancel(func(ev PointerEvent) {
				if ev.PointerID == pointer {
					c.Cancel()
				}
			}),
		)
	}
	c.debug("promoted", "gen", gen)
	if !c.retarget(s, s.last) {
		reg.notify()
	}
}

// retarget hit-tests p and reports whether the target change was notified.
func (c *Controller) retarget(s *session, p Vec2) bool {
	if c.env.HitTester == nil {
		return c.env.Registry.setTarget(s.gen, "", false)
	}
	meal, ok := c.env.HitTester.HitTest(p)
	return c.env.Registry.setTarget(s.gen, meal, ok)
}

// Move handles a pointer move for this controller's session.
func (c *Controller) Move(ev PointerEvent) {
	s := c.session()
	if s == nil || ev.PointerID != s.pointer {
		return
	}
	s.last = ev.Point
	switch s.state {
	case StateArmed:
		if ev.Point.Sub(s.origin).Len() > c.cfg.TapThreshold {
			c.debug("cancelled", "gen", s.gen, "reason", "moved before long press")
			c.env.Registry.release(s.gen)
		}
	case StateDragging:
		if s.guard.ghost != nil {
			s.guard.ghost.MoveTo(ev.Point)
		}
		c.retarget(s, ev.Point)
	}
}

// End handles the pointer release. The session is always cleaned up before
// End returns, after the outcome callback (if any) has run.
func (c *Controller) End(ev PointerEvent) {
	s := c.session()
	if s == nil || ev.PointerID != s.pointer {
		return
	}
	gen := s.gen
	payload := s.payload
	defer c.env.Registry.release(gen)

	switch s.state {
	case StateArmed:
		if ev.Point.Sub(s.origin).Len() > c.cfg.TapThreshold {
			c.debug("cancelled", "gen", gen, "reason", "released outside tap threshold")
			return
		}
		c.debug("tap", "gen", gen)
		if c.cfg.OnTap != nil {
			c.cfg.OnTap(payload)
		}
	case StateDragging:
		var (
			meal MealID
			ok   bool
		)
		if c.env.HitTester != nil {
			meal, ok = c.env.HitTester.HitTest(ev.Point)
		}
		if !ok || !Resolves(payload, meal) {
			c.debug("dropped", "gen", gen, "target", meal, "resolved", false)
			return
		}
		c.debug("dropped", "gen", gen, "target", meal, "resolved", true)
		if c.cfg.OnDropResolved != nil {
			c.cfg.OnDropResolved(payload, meal)
		}
	}
}

// Cancel tears down this controller's session without an outcome callback.
func (c *Controller) Cancel() {
	s := c.session()
	if s == nil {
		return
	}
	c.debug("cancelled", "gen", s.gen, "reason", "pointer cancel")
	c.env.Registry.release(s.gen)
}

// Teardown is called when the owning surface goes away. Any session is
// cleaned up without a callback and the controller stops accepting presses.
func (c *Controller) Teardown() {
	if s := c.session(); s != nil {
		c.debug("teardown", "gen", s.gen)
		c.env.Registry.release(s.gen)
	}
	c.closed = true
	if c.disp != nil {
		c.disp.detach(c)
	}
}

func (c *Controller) debug(msg string, keyvals ...any) {
	if c.env.Logger == nil {
		return
	}
	c.env.Logger.Debug(msg, append([]any{"surface", c.cfg.Name}, keyvals...)...)
}
