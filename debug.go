package holddrag

// BoardStats is a snapshot of a board's bookkeeping.
type BoardStats struct {
	State     SessionState
	Sessions  uint64 // sessions begun since the board was created
	Surfaces  int
	Zones     int
	Observers int
	Timers    int // long-press timers held by the session, on any Clock
	Ghosts    int // live sprite ghosts
}

// Stats returns the current bookkeeping counters.
func (b *Board) Stats() BoardStats {
	s := BoardStats{
		State:     b.env.Registry.State(),
		Sessions:  b.env.Registry.Sessions(),
		Surfaces:  len(b.dispatcher.Surfaces()),
		Zones:     b.zones.Len(),
		Observers: b.dispatcher.ObserverCount(),
		Timers:    b.env.Registry.Outstanding().Timers,
	}
	if b.sprites != nil {
		s.Ghosts = b.sprites.Live()
	}
	return s
}

// debugCheckIdle warns when no session is active but resources a session
// acquires are still held. Only called in debug mode.
func (b *Board) debugCheckIdle() {
	if b.logger == nil || b.env.Registry.Active() {
		return
	}
	s := b.Stats()
	out := b.env.Registry.Outstanding()
	if s.Observers == 0 && s.Ghosts == 0 && out.Zero() {
		return
	}
	if b.leakWarned {
		return
	}
	b.leakWarned = true
	b.logger.Warn("resources held while idle",
		"observers", s.Observers,
		"ghosts", s.Ghosts,
		"outstanding", out)
}
