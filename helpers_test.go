package holddrag

import (
	"testing"
	"time"
)

// --- Fakes ---

type fakeGhost struct {
	p         *fakePresenter
	spec      GhostSpec
	center    Vec2
	moves     int
	destroyed int
}

func (g *fakeGhost) MoveTo(c Vec2) {
	g.center = c
	g.moves++
}

func (g *fakeGhost) Destroy() {
	g.destroyed++
	if g.destroyed == 1 {
		g.p.live--
	}
}

type fakePresenter struct {
	created []*fakeGhost
	live    int
}

func (p *fakePresenter) CreateGhost(spec GhostSpec) Ghost {
	g := &fakeGhost{p: p, spec: spec, center: spec.Origin}
	p.created = append(p.created, g)
	p.live++
	return g
}

type dropCall struct {
	payload Payload
	target  MealID
}

// rig wires a Registry, FrameClock, Dispatcher and DropZones together the
// way a Board does, with recording fakes for ghosts and haptics.
type rig struct {
	env    *Env
	reg    *Registry
	clock  *FrameClock
	disp   *Dispatcher
	zones  *DropZones
	ghosts *fakePresenter
	pulses int

	taps  []Payload
	drops []dropCall
}

// Meal slots stacked vertically: breakfast 0-200, lunch 300-500, dinner 600-800.
func newRig() *rig {
	r := &rig{
		reg:    NewRegistry(),
		clock:  NewFrameClock(),
		disp:   NewDispatcher(),
		zones:  NewDropZones(),
		ghosts: &fakePresenter{},
	}
	r.zones.Register("breakfast", HitRect{X: 0, Y: 0, Width: 400, Height: 200}, 0)
	r.zones.Register("lunch", HitRect{X: 0, Y: 300, Width: 400, Height: 200}, 0)
	r.zones.Register("dinner", HitRect{X: 0, Y: 600, Width: 400, Height: 200}, 0)
	r.env = &Env{
		Registry:  r.reg,
		Clock:     r.clock,
		Observers: r.disp,
		HitTester: r.zones,
		Ghosts:    r.ghosts,
		Haptics:   HapticsFunc(func() { r.pulses++ }),
	}
	return r
}

// surface attaches a controller that records its outcomes on the rig.
func (r *rig) surface(name string, bounds Rect, p Payload) *Controller {
	c := NewController(r.env, SurfaceConfig{
		Name:    name,
		Bounds:  bounds,
		Payload: p,
		OnTap:   func(p Payload) { r.taps = append(r.taps, p) },
		OnDropResolved: func(p Payload, to MealID) {
			r.drops = append(r.drops, dropCall{p, to})
		},
	})
	r.disp.Attach(c)
	return c
}

// item is the standard breakfast entry surface around (100, 100).
func (r *rig) item() *Controller {
	return r.surface("item", Rect{X: 50, Y: 50, Width: 100, Height: 100}, EntryRef{EntryID: "e1", Meal: "breakfast"})
}

func (r *rig) advance(ms int) {
	r.clock.Advance(time.Duration(ms) * time.Millisecond)
}

func (r *rig) assertNoLeaks(t *testing.T) {
	t.Helper()
	if n := r.clock.Pending(); n != 0 {
		t.Errorf("pending timers = %d, want 0", n)
	}
	if n := r.disp.ObserverCount(); n != 0 {
		t.Errorf("global observers = %d, want 0", n)
	}
	if r.ghosts.live != 0 {
		t.Errorf("live ghosts = %d, want 0", r.ghosts.live)
	}
	if out := r.reg.Outstanding(); !out.Zero() {
		t.Errorf("outstanding = %+v, want zero", out)
	}
	if r.reg.Active() {
		t.Errorf("registry state = %v, want idle", r.reg.State())
	}
}

func ptr(id PointerID, x, y float64) PointerEvent {
	return PointerEvent{PointerID: id, Button: MouseButtonLeft, Point: Vec2{x, y}, Primary: id == MousePointer}
}

func at(x, y float64) PointerEvent {
	return ptr(MousePointer, x, y)
}
