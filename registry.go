package holddrag

// DragState is a read-only snapshot of the registry slot.
type DragState struct {
	State   SessionState
	Pointer PointerID
	Origin  Vec2
	Point   Vec2 // last pointer position seen by the session
	// Payload is set while a session exists, Armed or Dragging.
	Payload Payload
	// Target is the drop target under the pointer while Dragging.
	Target    MealID
	HasTarget bool
}

// session is the single registry slot. gen identifies the session occupying
// it; a gen of a finished session never matches again.
type session struct {
	gen       uint64
	owner     *Controller
	pointer   PointerID
	origin    Vec2
	last      Vec2
	state     SessionState
	payload   Payload
	target    MealID
	hasTarget bool
	guard     guard
}

// Registry holds at most one gesture session for every controller sharing
// a drop-target space. Controllers of both features (entry reassignment and
// quick-add placement) share one Registry so only one drag can be live.
type Registry struct {
	slot    session
	gen     uint64
	changes observerList[DragState]
}

// NewRegistry creates an idle registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// State returns the state of the active session, or StateIdle.
func (r *Registry) State() SessionState {
	return r.slot.state
}

// Active reports whether a session is Armed or Dragging.
func (r *Registry) Active() bool {
	return r.slot.state != StateIdle
}

// Payload returns the payload being dragged. It reports false unless a
// session is Dragging.
func (r *Registry) Payload() (Payload, bool) {
	if r.slot.state != StateDragging {
		return nil, false
	}
	return r.slot.payload, true
}

// Target returns the drop target currently under the dragged payload.
func (r *Registry) Target() (MealID, bool) {
	if r.slot.state != StateDragging || !r.slot.hasTarget {
		return "", false
	}
	return r.slot.target, true
}

// IsTargeted reports whether meal should render its "being targeted"
// highlight.
func (r *Registry) IsTargeted(meal MealID) bool {
	t, ok := r.Target()
	return ok && t == meal
}

// Snapshot returns the current slot contents.
func (r *Registry) Snapshot() DragState {
	s := &r.slot
	if s.state == StateIdle {
		return DragState{}
	}
	ds := DragState{
		State:   s.state,
		Pointer: s.pointer,
		Origin:  s.origin,
		Point:   s.last,
		Payload: s.payload,
	}
	if s.state == StateDragging {
		ds.Target, ds.HasTarget = s.target, s.hasTarget
	}
	return ds
}

// OnChange registers fn to be called with a fresh snapshot whenever the
// session state or highlighted target changes.
func (r *Registry) OnChange(fn func(DragState)) CallbackHandle {
	return r.changes.add(fn)
}

// Outstanding reports the resources held by the active session.
func (r *Registry) Outstanding() Resources {
	return r.slot.guard.outstanding()
}

// Sessions returns the number of sessions begun since creation.
func (r *Registry) Sessions() uint64 {
	return r.gen
}

// acquire claims the slot for a new Armed session. It fails while any
// session is active. The caller notifies once the session is fully armed.
func (r *Registry) acquire(owner *Controller, ev PointerEvent, p Payload) (uint64, bool) {
	if r.slot.state != StateIdle {
		return 0, false
	}
	r.gen++
	s := &r.slot
	s.guard.reset()
	s.gen = r.gen
	s.owner = owner
	s.pointer = ev.PointerID
	s.origin = ev.Point
	s.last = ev.Point
	s.state = StateArmed
	s.payload = p
	s.target, s.hasTarget = "", false
	return s.gen, true
}

// session returns the slot if gen is the active session.
func (r *Registry) session(gen uint64) *session {
	if gen == 0 || r.slot.state == StateIdle || r.slot.gen != gen {
		return nil
	}
	return &r.slot
}

// current reports whether gen is the active session.
func (r *Registry) current(gen uint64) bool {
	return r.session(gen) != nil
}

// setTarget updates the highlighted target and notifies if it changed. It
// reports whether a notification was sent.
func (r *Registry) setTarget(gen uint64, meal MealID, ok bool) bool {
	s := r.session(gen)
	if s == nil {
		return false
	}
	if !ok {
		meal = ""
	}
	if s.target == meal && s.hasTarget == ok {
		return false
	}
	s.target, s.hasTarget = meal, ok
	r.notify()
	return true
}

// release runs the session's guard and frees the slot. It reports false if
// gen is not the active session, which makes every terminal path safe to
// call more than once.
func (r *Registry) release(gen uint64) bool {
	s := r.session(gen)
	if s == nil {
		return false
	}
	s.guard.release()
	s.owner = nil
	s.payload = nil
	s.target, s.hasTarget = "", false
	s.state = StateIdle
	r.notify()
	return true
}

func (r *Registry) notify() {
	r.changes.emit(r.Snapshot())
}
