package holddrag

import "github.com/hajimehoshi/ebiten/v2"

// pointerState tracks one pointer between frames.
type pointerState struct {
	down   bool
	button MouseButton
	last   Vec2
}

// Poller turns Ebitengine's polled mouse and touch state into pointer events
// for a Dispatcher. Call Poll once per frame from the game's Update.
type Poller struct {
	pointers     [maxPointers]pointerState
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	primary      PointerID // -1 when no pointer is down
	unfocused    bool

	injectQueue []syntheticPointerEvent
}

// NewPoller creates a poller with no pointers down.
func NewPoller() *Poller {
	return &Poller{primary: -1}
}

// Down reports whether the pointer is currently held.
func (p *Poller) Down(id PointerID) bool {
	return id.valid() && p.pointers[id].down
}

// Poll reads one frame of input and delivers it to d. A pending injected
// event replaces real mouse input for the frame.
func (p *Poller) Poll(d *Dispatcher) {
	if !ebiten.IsFocused() {
		if !p.unfocused {
			p.unfocused = true
			p.cancelAll(d)
		}
		return
	}
	p.unfocused = false

	if !p.processInjected(d) {
		p.pollMouse(d)
	}
	p.pollTouches(d)
}

// pollMouse handles the mouse (pointer 0).
func (p *Poller) pollMouse(d *Dispatcher) {
	mx, my := ebiten.CursorPosition()

	// Keep the button the press started with for the whole interaction.
	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		switch {
		case left:
			button = MouseButtonLeft
		case right:
			button = MouseButtonRight
		default:
			button = MouseButtonMiddle
		}
	}
	p.feed(d, MousePointer, Vec2{float64(mx), float64(my)}, pressed, button)
}

// pollTouches handles touch contacts (pointers 1-9).
func (p *Poller) pollTouches(d *Dispatcher) {
	touchIDs := ebiten.AppendTouchIDs(p.prevTouchIDs[:0])
	p.prevTouchIDs = touchIDs

	var active [maxPointers]bool
	for _, tid := range touchIDs {
		slot := p.touchSlot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		p.feed(d, slot, Vec2{float64(tx), float64(ty)}, true, MouseButtonLeft)
	}

	// Lifted contacts release at their last known position.
	for i := PointerID(1); i < maxPointers; i++ {
		if p.touchUsed[i] && !active[i] {
			if ps := &p.pointers[i]; ps.down {
				p.feed(d, i, ps.last, false, MouseButtonLeft)
			}
			p.touchUsed[i] = false
			p.touchMap[i] = 0
		}
	}
}

// touchSlot maps a touch to a pointer slot, allocating one if needed.
// Returns -1 when all slots are taken.
func (p *Poller) touchSlot(tid ebiten.TouchID) PointerID {
	for i := PointerID(1); i < maxPointers; i++ {
		if p.touchUsed[i] && p.touchMap[i] == tid {
			return i
		}
	}
	for i := PointerID(1); i < maxPointers; i++ {
		if !p.touchUsed[i] {
			p.touchUsed[i] = true
			p.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// feed runs the per-pointer press state machine for one sample.
func (p *Poller) feed(d *Dispatcher, id PointerID, pt Vec2, pressed bool, button MouseButton) {
	ps := &p.pointers[id]
	switch {
	case pressed && !ps.down:
		ps.down, ps.button, ps.last = true, button, pt
		primary := p.primary < 0
		if primary {
			p.primary = id
		}
		d.PointerDown(PointerEvent{PointerID: id, Button: button, Point: pt, Primary: primary})
	case pressed && ps.down:
		if pt == ps.last {
			return
		}
		ps.last = pt
		d.PointerMove(p.event(id, ps))
	case !pressed && ps.down:
		ps.down, ps.last = false, pt
		d.PointerUp(p.event(id, ps))
		if p.primary == id {
			p.primary = -1
		}
	}
}

// cancel ends a held pointer with a platform cancel.
func (p *Poller) cancel(d *Dispatcher, id PointerID) {
	ps := &p.pointers[id]
	if !ps.down {
		return
	}
	ps.down = false
	d.PointerCancel(p.event(id, ps))
	if p.primary == id {
		p.primary = -1
	}
}

// cancelAll cancels every held pointer, e.g. when the window loses focus.
func (p *Poller) cancelAll(d *Dispatcher) {
	for i := PointerID(0); i < maxPointers; i++ {
		p.cancel(d, i)
	}
}

func (p *Poller) event(id PointerID, ps *pointerState) PointerEvent {
	return PointerEvent{PointerID: id, Button: ps.button, Point: ps.last, Primary: p.primary == id}
}
