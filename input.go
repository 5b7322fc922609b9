package holddrag

// --- Handler registry ---

type observer[T any] struct {
	id uint32
	fn func(T)
}

// observerList is an ordered list of callbacks. Emission runs over a copy so
// callbacks may add or remove observers, or emit again, while being called.
type observerList[T any] struct {
	entries []observer[T]
	nextID  uint32
}

func (l *observerList[T]) add(fn func(T)) CallbackHandle {
	l.nextID++
	l.entries = append(l.entries, observer[T]{id: l.nextID, fn: fn})
	return CallbackHandle{id: l.nextID, list: l}
}

func (l *observerList[T]) remove(id uint32) {
	s := l.entries
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = observer[T]{}
			l.entries = s[:len(s)-1]
			return
		}
	}
}

func (l *observerList[T]) has(id uint32) bool {
	for i := range l.entries {
		if l.entries[i].id == id {
			return true
		}
	}
	return false
}

func (l *observerList[T]) emit(v T) {
	if len(l.entries) == 0 {
		return
	}
	snapshot := append([]observer[T](nil), l.entries...)
	for _, o := range snapshot {
		// Skip observers removed by an earlier callback in this emission.
		if !l.has(o.id) {
			continue
		}
		o.fn(v)
	}
}

type handleList interface {
	remove(id uint32)
}

// CallbackHandle allows removing a registered callback. The zero value is
// a valid handle whose Remove does nothing.
type CallbackHandle struct {
	id   uint32
	list handleList
}

// Remove unregisters the callback so it no longer fires. Removing twice is a
// no-op.
func (h CallbackHandle) Remove() {
	if h.list == nil {
		return
	}
	h.list.remove(h.id)
}

// Observers is the global (board-wide) pointer subscription facility. A
// controller subscribes on promotion to Dragging and unsubscribes through its
// cleanup guard.
type Observers interface {
	OnPointerMove(fn func(PointerEvent)) CallbackHandle
	OnPointerUp(fn func(PointerEvent)) CallbackHandle
	OnPointerCancel(fn func(PointerEvent)) CallbackHandle
}

// --- Dispatcher ---

// Dispatcher routes raw pointer events from a platform adapter to draggable
// surfaces. A pointer-down goes to the topmost attached surface under the
// point; the pointer is then captured by that surface while its session is
// Armed. Once a session is Dragging the global observers own the stream.
type Dispatcher struct {
	surfaces []*Controller // painter order: last is topmost
	captured [maxPointers]*Controller

	move   observerList[PointerEvent]
	up     observerList[PointerEvent]
	cancel observerList[PointerEvent]
}

// NewDispatcher creates a dispatcher with no surfaces.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// OnPointerMove registers a global pointer move observer.
func (d *Dispatcher) OnPointerMove(fn func(PointerEvent)) CallbackHandle {
	return d.move.add(fn)
}

// OnPointerUp registers a global pointer up observer.
func (d *Dispatcher) OnPointerUp(fn func(PointerEvent)) CallbackHandle {
	return d.up.add(fn)
}

// OnPointerCancel registers a global pointer cancel observer.
func (d *Dispatcher) OnPointerCancel(fn func(PointerEvent)) CallbackHandle {
	return d.cancel.add(fn)
}

// ObserverCount returns the number of attached global observers.
func (d *Dispatcher) ObserverCount() int {
	return len(d.move.entries) + len(d.up.entries) + len(d.cancel.entries)
}

// Attach adds a surface on top of the existing ones.
func (d *Dispatcher) Attach(c *Controller) {
	if c.disp == d {
		return
	}
	if c.disp != nil {
		c.disp.detach(c)
	}
	d.surfaces = append(d.surfaces, c)
	c.disp = d
}

// Detach removes a surface. This is owner teardown: any session the surface
// owns is cleaned up without an outcome callback.
func (d *Dispatcher) Detach(c *Controller) {
	if c.disp != d {
		return
	}
	c.Teardown()
}

func (d *Dispatcher) detach(c *Controller) {
	for i, s := range d.surfaces {
		if s == c {
			copy(d.surfaces[i:], d.surfaces[i+1:])
			d.surfaces[len(d.surfaces)-1] = nil
			d.surfaces = d.surfaces[:len(d.surfaces)-1]
			break
		}
	}
	for i := range d.captured {
		if d.captured[i] == c {
			d.captured[i] = nil
		}
	}
	c.disp = nil
}

// Surfaces returns the attached surfaces in painter order. The returned slice
// MUST NOT be mutated.
func (d *Dispatcher) Surfaces() []*Controller {
	return d.surfaces
}

// surfaceAt finds the topmost attached surface whose bounds contain p.
func (d *Dispatcher) surfaceAt(p Vec2) *Controller {
	for i := len(d.surfaces) - 1; i >= 0; i-- {
		c := d.surfaces[i]
		if c.Bounds().Contains(p.X, p.Y) {
			return c
		}
	}
	return nil
}

// PointerDown delivers a press. It reports whether a surface armed a session.
func (d *Dispatcher) PointerDown(ev PointerEvent) bool {
	if !ev.PointerID.valid() {
		return false
	}
	c := d.surfaceAt(ev.Point)
	if c == nil || !c.Begin(ev) {
		return false
	}
	d.captured[ev.PointerID] = c
	return true
}

// PointerMove delivers a move.
func (d *Dispatcher) PointerMove(ev PointerEvent) {
	if !ev.PointerID.valid() {
		return
	}
	d.move.emit(ev)
	if c := d.captured[ev.PointerID]; c != nil && c.State() == StateArmed {
		c.Move(ev)
	}
}

// PointerUp delivers a release and ends the pointer's capture.
func (d *Dispatcher) PointerUp(ev PointerEvent) {
	if !ev.PointerID.valid() {
		return
	}
	d.up.emit(ev)
	if c := d.captured[ev.PointerID]; c != nil {
		d.captured[ev.PointerID] = nil
		if c.State() == StateArmed {
			c.End(ev)
		}
	}
}

// PointerCancel delivers a platform cancel and ends the pointer's capture.
func (d *Dispatcher) PointerCancel(ev PointerEvent) {
	if !ev.PointerID.valid() {
		return
	}
	d.cancel.emit(ev)
	if c := d.captured[ev.PointerID]; c != nil {
		d.captured[ev.PointerID] = nil
		if c.State() == StateArmed {
			c.Cancel()
		}
	}
}
