package holddrag

import "testing"

// --- Handler registry ---

func TestCallbackHandle_Remove(t *testing.T) {
	d := NewDispatcher()
	var n int
	h := d.OnPointerMove(func(PointerEvent) { n++ })
	d.PointerMove(at(1, 1))
	h.Remove()
	h.Remove()
	d.PointerMove(at(2, 2))
	if n != 1 {
		t.Errorf("calls = %d, want 1", n)
	}
	var zero CallbackHandle
	zero.Remove()
}

func TestObserverRemovedDuringEmit(t *testing.T) {
	d := NewDispatcher()
	var calls []string
	var second CallbackHandle
	d.OnPointerUp(func(PointerEvent) {
		calls = append(calls, "first")
		second.Remove()
	})
	second = d.OnPointerUp(func(PointerEvent) { calls = append(calls, "second") })
	d.OnPointerUp(func(PointerEvent) { calls = append(calls, "third") })

	d.PointerUp(at(0, 0))
	if len(calls) != 2 || calls[0] != "first" || calls[1] != "third" {
		t.Errorf("calls = %v, want [first third]", calls)
	}
}

func TestObserverAddedDuringEmit(t *testing.T) {
	d := NewDispatcher()
	var n int
	d.OnPointerMove(func(PointerEvent) {
		d.OnPointerMove(func(PointerEvent) { n++ })
	})
	d.PointerMove(at(0, 0))
	if n != 0 {
		t.Errorf("observer added during emit ran in the same emit")
	}
	if d.ObserverCount() != 2 {
		t.Errorf("ObserverCount = %d, want 2", d.ObserverCount())
	}
}

// --- Routing ---

func TestPointerDown_TopmostSurface(t *testing.T) {
	r := newRig()
	bottom := r.surface("bottom", Rect{Width: 200, Height: 200}, EntryRef{EntryID: "b", Meal: "lunch"})
	top := r.surface("top", Rect{X: 50, Y: 50, Width: 50, Height: 50}, EntryRef{EntryID: "t", Meal: "lunch"})

	if !r.disp.PointerDown(at(60, 60)) {
		t.Fatal("press should arm")
	}
	if top.State() != StateArmed || bottom.State() != StateIdle {
		t.Errorf("top = %v, bottom = %v, want top armed", top.State(), bottom.State())
	}
}

func TestPointerDown_Miss(t *testing.T) {
	r := newRig()
	r.item()
	if r.disp.PointerDown(at(500, 500)) {
		t.Error("press outside every surface should not arm")
	}
	if r.disp.PointerDown(ptr(maxPointers, 100, 100)) {
		t.Error("invalid pointer id should be ignored")
	}
}

func TestCaptureWhileArmed(t *testing.T) {
	r := newRig()
	c := r.item()

	r.disp.PointerDown(at(100, 100))
	// A move that leaves the surface bounds still reaches the capturing
	// surface and cancels it.
	r.disp.PointerMove(at(400, 400))
	if c.State() != StateIdle {
		t.Errorf("state = %v, want idle", c.State())
	}
}

func TestGlobalObserversOnlyWhileDragging(t *testing.T) {
	r := newRig()
	r.item()

	r.disp.PointerDown(at(100, 100))
	if n := r.disp.ObserverCount(); n != 0 {
		t.Errorf("observers while armed = %d, want 0", n)
	}
	r.advance(300)
	if n := r.disp.ObserverCount(); n != 3 {
		t.Errorf("observers while dragging = %d, want 3", n)
	}
	if out := r.reg.Outstanding(); out.Observers != 3 || out.Ghosts != 1 || out.Timers != 0 {
		t.Errorf("outstanding while dragging = %+v", out)
	}
	r.disp.PointerUp(at(100, 100))
	if n := r.disp.ObserverCount(); n != 0 {
		t.Errorf("observers after release = %d, want 0", n)
	}
}

func TestAttachDetach(t *testing.T) {
	r := newRig()
	c := r.item()
	r.disp.Attach(c) // no-op
	if len(r.disp.Surfaces()) != 1 {
		t.Fatalf("surfaces = %d, want 1", len(r.disp.Surfaces()))
	}

	other := NewDispatcher()
	other.Attach(c)
	if len(r.disp.Surfaces()) != 0 || len(other.Surfaces()) != 1 {
		t.Error("attaching to another dispatcher should move the surface")
	}
	r.disp.Detach(c) // not attached here
	if len(other.Surfaces()) != 1 {
		t.Error("Detach from the wrong dispatcher should do nothing")
	}
	other.Detach(c)
	if len(other.Surfaces()) != 0 {
		t.Error("Detach should remove the surface")
	}
}

func TestPointerCancelWhileArmed(t *testing.T) {
	r := newRig()
	r.item()
	r.disp.PointerDown(at(100, 100))
	r.disp.PointerCancel(at(100, 100))
	r.advance(500)
	if len(r.taps) != 0 || len(r.ghosts.created) != 0 {
		t.Error("cancel while armed should end without effects")
	}
	r.assertNoLeaks(t)
}

func TestPointerCancelWhileDragging(t *testing.T) {
	r := newRig()
	r.item()
	r.disp.PointerDown(at(100, 100))
	r.advance(300)
	r.disp.PointerMove(at(100, 400))
	r.disp.PointerCancel(at(100, 400))
	if len(r.drops) != 0 {
		t.Errorf("drops = %d, want 0", len(r.drops))
	}
	r.assertNoLeaks(t)
}
