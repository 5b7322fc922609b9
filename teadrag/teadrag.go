// Package teadrag feeds Bubble Tea mouse messages into a holddrag
// Dispatcher so long-press drags work in terminal programs.
//
// Terminal mouse reports are cell coordinates. Adapter scales them to
// pseudo-pixels (the center of each cell) so the engine's pixel thresholds
// keep their meaning: with the default 8x16 cell, a tap may wander one
// column.
//
// Mouse reporting must be enabled on the view, and focus reporting should
// be, so a blur can cancel a held pointer:
//
//	v := tea.NewView(content)
//	v.MouseMode = tea.MouseModeAllMotion
//	v.ReportFocus = true
package teadrag

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/phanxgames/holddrag"
)

// Kind is the pointer phase a message translated to.
type Kind uint8

const (
	KindDown Kind = iota
	KindMove
	KindUp
	KindCancel
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindDown:
		return "down"
	case KindMove:
		return "move"
	case KindUp:
		return "up"
	case KindCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Default cell size in pseudo-pixels.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// Adapter translates terminal mouse messages into pointer events. The
// terminal has a single pointer, reported as the primary mouse pointer.
type Adapter struct {
	CellWidth  float64 // zero means DefaultCellWidth
	CellHeight float64 // zero means DefaultCellHeight

	down   bool
	button holddrag.MouseButton
	last   holddrag.Vec2
}

// NewAdapter returns an adapter with the default cell size.
func NewAdapter() *Adapter {
	return &Adapter{CellWidth: DefaultCellWidth, CellHeight: DefaultCellHeight}
}

func (a *Adapter) cellSize() (float64, float64) {
	w, h := a.CellWidth, a.CellHeight
	if w <= 0 {
		w = DefaultCellWidth
	}
	if h <= 0 {
		h = DefaultCellHeight
	}
	return w, h
}

// Point returns the pseudo-pixel center of the cell at column x, row y.
func (a *Adapter) Point(x, y int) holddrag.Vec2 {
	w, h := a.cellSize()
	return holddrag.Vec2{X: (float64(x) + 0.5) * w, Y: (float64(y) + 0.5) * h}
}

// Cell returns the cell containing p.
func (a *Adapter) Cell(p holddrag.Vec2) (x, y int) {
	w, h := a.cellSize()
	return int(p.X / w), int(p.Y / h)
}

// CellRect returns the pseudo-pixel rectangle covering w by h cells whose
// top-left cell is (x, y).
func (a *Adapter) CellRect(x, y, w, h int) holddrag.Rect {
	cw, ch := a.cellSize()
	return holddrag.Rect{
		X:      float64(x) * cw,
		Y:      float64(y) * ch,
		Width:  float64(w)*cw - 1,
		Height: float64(h)*ch - 1,
	}
}

// Down reports whether a button is held.
func (a *Adapter) Down() bool {
	return a.down
}

// Translate converts msg into a pointer event. It reports false for
// messages that are not pointer input: wheel events, hover motion, buttons
// other than left, middle and right, and releases without a press.
func (a *Adapter) Translate(msg tea.Msg) (Kind, holddrag.PointerEvent, bool) {
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		if a.down {
			return 0, holddrag.PointerEvent{}, false
		}
		b, ok := mapButton(msg.Button)
		if !ok {
			return 0, holddrag.PointerEvent{}, false
		}
		a.down, a.button, a.last = true, b, a.Point(msg.X, msg.Y)
		return KindDown, a.event(), true
	case tea.MouseMotionMsg:
		if !a.down {
			return 0, holddrag.PointerEvent{}, false
		}
		p := a.Point(msg.X, msg.Y)
		if p == a.last {
			return 0, holddrag.PointerEvent{}, false
		}
		a.last = p
		return KindMove, a.event(), true
	case tea.MouseReleaseMsg:
		if !a.down {
			return 0, holddrag.PointerEvent{}, false
		}
		a.down, a.last = false, a.Point(msg.X, msg.Y)
		return KindUp, a.event(), true
	case tea.BlurMsg:
		if !a.down {
			return 0, holddrag.PointerEvent{}, false
		}
		a.down = false
		return KindCancel, a.event(), true
	}
	return 0, holddrag.PointerEvent{}, false
}

func (a *Adapter) event() holddrag.PointerEvent {
	return holddrag.PointerEvent{
		PointerID: holddrag.MousePointer,
		Button:    a.button,
		Point:     a.last,
		Primary:   true,
	}
}

func mapButton(b tea.MouseButton) (holddrag.MouseButton, bool) {
	switch b {
	case tea.MouseLeft:
		return holddrag.MouseButtonLeft, true
	case tea.MouseRight:
		return holddrag.MouseButtonRight, true
	case tea.MouseMiddle:
		return holddrag.MouseButtonMiddle, true
	}
	return 0, false
}

// Feed translates msg and delivers it to d. It reports whether msg was
// pointer input.
func (a *Adapter) Feed(d *holddrag.Dispatcher, msg tea.Msg) bool {
	kind, ev, ok := a.Translate(msg)
	if !ok {
		return false
	}
	switch kind {
	case KindDown:
		d.PointerDown(ev)
	case KindMove:
		d.PointerMove(ev)
	case KindUp:
		d.PointerUp(ev)
	case KindCancel:
		d.PointerCancel(ev)
	}
	return true
}

// TickMsg is sent by Tick.
type TickMsg struct {
	Time time.Time
}

// Tick returns a command that sends a TickMsg after interval. Programs
// driving a Board's frame clock re-issue it from Update on every TickMsg.
func Tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// TimerMsg is sent by WaitTimers when a LoopClock timer has come due.
type TimerMsg struct{}

// WaitTimers returns a command that blocks until c has a due timer. Call
// c.RunDue from Update on TimerMsg, then re-issue the command.
func WaitTimers(c *holddrag.LoopClock) tea.Cmd {
	return func() tea.Msg {
		<-c.Ready()
		return TimerMsg{}
	}
}
