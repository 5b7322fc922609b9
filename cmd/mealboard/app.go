package main

import (
	"github.com/charmbracelet/log"
	"github.com/phanxgames/holddrag"
)

// app binds a Diary to a Board: every meal becomes a drop zone and every
// entry and template a draggable surface.
type app struct {
	diary  *Diary
	board  *holddrag.Board
	clock  holddrag.Clock // schedules relayout after a drop
	logger *log.Logger

	ox, oy   int
	lay      layout
	zones    []holddrag.ZoneHandle
	surfaces []string
	pending  bool
	status   string
}

func newApp(board *holddrag.Board, diary *Diary, ox, oy int, logger *log.Logger) *app {
	a := &app{
		diary:  diary,
		board:  board,
		clock:  board.Clock(),
		logger: logger,
		ox:     ox,
		oy:     oy,
		status: "hold an item to drag it",
	}
	a.rebuild()
	return a
}

// rebuild recreates zones and surfaces from the diary.
func (a *app) rebuild() {
	a.pending = false
	for _, z := range a.zones {
		z.Remove()
	}
	a.zones = a.zones[:0]
	for _, name := range a.surfaces {
		a.board.RemoveSurface(name)
	}
	a.surfaces = a.surfaces[:0]

	a.lay = computeLayout(a.diary, a.ox, a.oy)
	for _, s := range a.lay.sections {
		a.zones = append(a.zones, a.board.AddDropZone(s.Meal, zoneRect(s), 0))
	}
	for _, r := range a.lay.rows {
		if r.Surface == "" {
			continue
		}
		a.board.NewSurface(holddrag.SurfaceConfig{
			Name:           r.Surface,
			Bounds:         cellRect(r.X, r.Y, r.W, 1),
			Payload:        r.Payload,
			OnTap:          a.tapped,
			OnDropResolved: a.dropped,
		})
		a.surfaces = append(a.surfaces, r.Surface)
	}
}

func (a *app) tapped(p holddrag.Payload) {
	a.status = "tapped " + a.diary.Describe(p)
}

func (a *app) dropped(p holddrag.Payload, to holddrag.MealID) {
	msg, err := a.diary.Apply(p, to)
	if err != nil {
		a.status = err.Error()
		if a.logger != nil {
			a.logger.Error("apply drop", "err", err)
		}
		return
	}
	a.status = msg
	if a.logger != nil {
		a.logger.Info(msg)
	}
	// Surfaces are rebuilt outside the gesture callback.
	if !a.pending {
		a.pending = true
		a.clock.AfterFunc(0, a.rebuild)
	}
}

// dragLabel describes the active drag for status lines.
func (a *app) dragLabel() string {
	p, ok := a.board.Registry().Payload()
	if !ok {
		return ""
	}
	label := "dragging " + a.diary.Describe(p)
	if target, ok := a.board.Registry().Target(); ok {
		label += " over " + string(target)
	}
	return label
}
