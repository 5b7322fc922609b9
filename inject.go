package holddrag

type injectKind uint8

const (
	injectPress injectKind = iota
	injectMove
	injectRelease
	injectCancel
	injectHold
)

// syntheticPointerEvent is one queued mouse event. Hold events keep the
// pointer where it is for a frame.
type syntheticPointerEvent struct {
	kind  injectKind
	point Vec2
}

// InjectPress queues a left-button press at the given screen coordinates.
// Queued events are consumed one per Poll, in place of real mouse input.
func (p *Poller) InjectPress(x, y float64) {
	p.inject(injectPress, x, y)
}

// InjectMove queues a move with the button held.
func (p *Poller) InjectMove(x, y float64) {
	p.inject(injectMove, x, y)
}

// InjectRelease queues a release at the given screen coordinates.
func (p *Poller) InjectRelease(x, y float64) {
	p.inject(injectRelease, x, y)
}

// InjectCancel queues a platform cancel of the mouse pointer.
func (p *Poller) InjectCancel() {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{kind: injectCancel})
}

// InjectHold queues frames frames of holding still.
func (p *Poller) InjectHold(frames int) {
	for range frames {
		p.injectQueue = append(p.injectQueue, syntheticPointerEvent{kind: injectHold})
	}
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (p *Poller) InjectClick(x, y float64) {
	p.InjectPress(x, y)
	p.InjectRelease(x, y)
}

// InjectLongPressDrag queues a press at (fromX, fromY), holdFrames frames of
// holding still, moves linearly interpolated over moveFrames frames, and a
// release at (toX, toY).
func (p *Poller) InjectLongPressDrag(fromX, fromY, toX, toY float64, holdFrames, moveFrames int) {
	p.InjectPress(fromX, fromY)
	p.InjectHold(holdFrames)
	for i := 1; i <= moveFrames; i++ {
		t := float64(i) / float64(moveFrames+1)
		p.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	p.InjectRelease(toX, toY)
}

// Pending returns the number of queued synthetic events.
func (p *Poller) Pending() int {
	return len(p.injectQueue)
}

func (p *Poller) inject(kind injectKind, x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{kind: kind, point: Vec2{x, y}})
}

// processInjected pops one queued event and feeds it as mouse input.
// Returns true if an event was consumed.
func (p *Poller) processInjected(d *Dispatcher) bool {
	if len(p.injectQueue) == 0 {
		return false
	}
	evt := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]

	switch evt.kind {
	case injectPress, injectMove:
		p.feed(d, MousePointer, evt.point, true, MouseButtonLeft)
	case injectRelease:
		p.feed(d, MousePointer, evt.point, false, MouseButtonLeft)
	case injectCancel:
		p.cancel(d, MousePointer)
	}
	return true
}
