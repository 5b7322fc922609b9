package holddrag

// Resources counts the ephemeral resources held by a session.
type Resources struct {
	Timers    int
	Observers int
	Ghosts    int
}

// Zero reports whether nothing is held.
func (r Resources) Zero() bool {
	return r.Timers == 0 && r.Observers == 0 && r.Ghosts == 0
}

// guard owns the ephemeral resources of one session and releases them
// exactly once. It lives inside the registry slot and is reset, not
// reallocated, for the next session.
type guard struct {
	timer     Timer
	ghost     Ghost
	observers []CallbackHandle
	released  bool
}

func (g *guard) holdTimer(t Timer) {
	g.timer = t
}

// dropTimer forgets a timer that has already fired.
func (g *guard) dropTimer() {
	g.timer = nil
}

func (g *guard) holdGhost(gh Ghost) {
	g.ghost = gh
}

func (g *guard) holdObservers(hs ...CallbackHandle) {
	g.observers = append(g.observers, hs...)
}

// release stops the timer, detaches observers and destroys the ghost. It
// reports false when the guard had already been released.
func (g *guard) release() bool {
	if g.released {
		return false
	}
	g.released = true
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	for i := range g.observers {
		g.observers[i].Remove()
		g.observers[i] = CallbackHandle{}
	}
	g.observers = g.observers[:0]
	if g.ghost != nil {
		g.ghost.Destroy()
		g.ghost = nil
	}
	return true
}

// reset rearms the guard for a new session, keeping the observer backing array.
func (g *guard) reset() {
	*g = guard{observers: g.observers[:0]}
}

func (g *guard) outstanding() Resources {
	var r Resources
	if g.timer != nil {
		r.Timers = 1
	}
	if g.ghost != nil {
		r.Ghosts = 1
	}
	r.Observers = len(g.observers)
	return r
}
