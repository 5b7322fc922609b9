package holddrag

import "testing"

// drain consumes the whole inject queue, one event per frame, advancing
// the clock by frame between events.
func drain(p *Poller, r *rig, frameMS int) {
	for p.Pending() > 0 {
		p.processInjected(r.disp)
		r.advance(frameMS)
	}
}

func TestInjectClick(t *testing.T) {
	r := newRig()
	r.item()
	p := NewPoller()
	p.InjectClick(100, 100)
	if p.Pending() != 2 {
		t.Fatalf("Pending = %d, want 2", p.Pending())
	}
	drain(p, r, 16)
	if len(r.taps) != 1 {
		t.Errorf("taps = %d, want 1", len(r.taps))
	}
}

func TestInjectLongPressDrag(t *testing.T) {
	r := newRig()
	r.item()
	p := NewPoller()
	p.InjectLongPressDrag(100, 100, 100, 400, 20, 10)
	if p.Pending() != 1+20+10+1 {
		t.Fatalf("Pending = %d", p.Pending())
	}
	drain(p, r, 16)
	if len(r.drops) != 1 || r.drops[0].target != "lunch" {
		t.Errorf("drops = %+v, want one to lunch", r.drops)
	}
	r.assertNoLeaks(t)
}

func TestInjectDragWithoutHoldCancels(t *testing.T) {
	r := newRig()
	r.item()
	p := NewPoller()
	p.InjectLongPressDrag(100, 100, 100, 400, 0, 10)
	drain(p, r, 16)
	if len(r.drops) != 0 || len(r.taps) != 0 {
		t.Errorf("drops = %d, taps = %d, want none", len(r.drops), len(r.taps))
	}
}

func TestInjectCancel(t *testing.T) {
	r := newRig()
	r.item()
	p := NewPoller()
	p.InjectPress(100, 100)
	p.InjectHold(30)
	p.InjectCancel()
	p.InjectRelease(100, 400)
	drain(p, r, 16)
	if len(r.drops) != 0 {
		t.Errorf("drops = %d, want 0", len(r.drops))
	}
	r.assertNoLeaks(t)
}

func TestProcessInjected_Empty(t *testing.T) {
	p := NewPoller()
	if p.processInjected(NewDispatcher()) {
		t.Error("empty queue should report false")
	}
}
