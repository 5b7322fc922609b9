package teadrag

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/holddrag"
)

func click(x, y int) tea.Msg {
	return tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func motion(x, y int) tea.Msg {
	return tea.MouseMotionMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func release(x, y int) tea.Msg {
	return tea.MouseReleaseMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func TestPointAndCell(t *testing.T) {
	a := NewAdapter()
	p := a.Point(2, 3)
	assert.Equal(t, holddrag.Vec2{X: 20, Y: 56}, p)

	x, y := a.Cell(p)
	assert.Equal(t, 2, x)
	assert.Equal(t, 3, y)

	r := a.CellRect(1, 1, 4, 2)
	assert.True(t, r.Contains(a.Point(1, 1).X, a.Point(1, 1).Y))
	assert.True(t, r.Contains(a.Point(4, 2).X, a.Point(4, 2).Y))
	assert.False(t, r.Contains(a.Point(5, 2).X, a.Point(5, 2).Y))
}

func TestZeroCellSizeUsesDefaults(t *testing.T) {
	var a Adapter
	assert.Equal(t, NewAdapter().Point(3, 1), a.Point(3, 1))
}

func TestTranslate_Sequence(t *testing.T) {
	a := NewAdapter()

	kind, ev, ok := a.Translate(click(1, 1))
	require.True(t, ok)
	assert.Equal(t, KindDown, kind)
	assert.Equal(t, holddrag.MousePointer, ev.PointerID)
	assert.True(t, ev.Primary)
	assert.Equal(t, holddrag.MouseButtonLeft, ev.Button)
	assert.True(t, a.Down())

	_, _, ok = a.Translate(motion(1, 1))
	assert.False(t, ok, "motion within the same cell is not a move")

	kind, ev, ok = a.Translate(motion(2, 1))
	require.True(t, ok)
	assert.Equal(t, KindMove, kind)
	assert.Equal(t, a.Point(2, 1), ev.Point)

	kind, _, ok = a.Translate(release(2, 1))
	require.True(t, ok)
	assert.Equal(t, KindUp, kind)
	assert.False(t, a.Down())
}

func TestTranslate_Ignored(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
	}{
		{"hover", tea.MouseMotionMsg{X: 1, Y: 1}},
		{"release without press", release(1, 1)},
		{"wheel", tea.MouseWheelMsg{X: 1, Y: 1, Button: tea.MouseWheelUp}},
		{"blur while up", tea.BlurMsg{}},
		{"key", tea.KeyPressMsg{Code: 'a', Text: "a"}},
		{"back button", tea.MouseClickMsg{X: 1, Y: 1, Button: tea.MouseBackward}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAdapter()
			_, _, ok := a.Translate(tt.msg)
			assert.False(t, ok)
			assert.False(t, a.Down())
		})
	}
}

func TestTranslate_Buttons(t *testing.T) {
	tests := []struct {
		in   tea.MouseButton
		want holddrag.MouseButton
	}{
		{tea.MouseLeft, holddrag.MouseButtonLeft},
		{tea.MouseRight, holddrag.MouseButtonRight},
		{tea.MouseMiddle, holddrag.MouseButtonMiddle},
	}
	for _, tt := range tests {
		a := NewAdapter()
		_, ev, ok := a.Translate(tea.MouseClickMsg{Button: tt.in})
		require.True(t, ok)
		assert.Equal(t, tt.want, ev.Button)
	}
}

func TestTranslate_SecondClickWhileDown(t *testing.T) {
	a := NewAdapter()
	_, _, ok := a.Translate(click(0, 0))
	require.True(t, ok)
	_, _, ok = a.Translate(tea.MouseClickMsg{X: 3, Y: 3, Button: tea.MouseRight})
	assert.False(t, ok)
}

func TestTranslate_BlurCancels(t *testing.T) {
	a := NewAdapter()
	a.Translate(click(0, 0))
	kind, _, ok := a.Translate(tea.BlurMsg{})
	require.True(t, ok)
	assert.Equal(t, KindCancel, kind)
	assert.False(t, a.Down())
}

// board has a 20x2 cell entry at the top and meal rows below it.
func board(t *testing.T, a *Adapter) (*holddrag.Board, *[]holddrag.MealID, *int) {
	t.Helper()
	b := holddrag.NewBoard(nil)
	b.SetLogger(nil)
	b.SetHaptics(nil)
	b.SetGhostPresenter(NewCellGhosts(a))
	b.AddDropZone("breakfast", rect(a.CellRect(0, 0, 40, 4)), 0)
	b.AddDropZone("lunch", rect(a.CellRect(0, 5, 40, 4)), 0)

	var drops []holddrag.MealID
	taps := 0
	b.NewSurface(holddrag.SurfaceConfig{
		Name:    "entry",
		Bounds:  a.CellRect(0, 0, 20, 2),
		Payload: holddrag.EntryRef{EntryID: "e1", Meal: "breakfast"},
		OnTap:   func(holddrag.Payload) { taps++ },
		OnDropResolved: func(_ holddrag.Payload, to holddrag.MealID) {
			drops = append(drops, to)
		},
	})
	return b, &drops, &taps
}

func rect(r holddrag.Rect) holddrag.HitRect {
	return holddrag.HitRect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func TestFeed_TapAndDrag(t *testing.T) {
	a := NewAdapter()
	b, drops, taps := board(t, a)
	d := b.Dispatcher()

	assert.True(t, a.Feed(d, click(2, 0)))
	assert.True(t, a.Feed(d, release(2, 0)))
	assert.Equal(t, 1, *taps)

	a.Feed(d, click(2, 0))
	b.Update(300 * time.Millisecond)
	require.Equal(t, holddrag.StateDragging, b.Registry().State())
	a.Feed(d, motion(2, 6))
	target, ok := b.Registry().Target()
	require.True(t, ok)
	assert.Equal(t, holddrag.MealID("lunch"), target)
	a.Feed(d, release(2, 6))

	assert.Equal(t, []holddrag.MealID{"lunch"}, *drops)
	assert.False(t, b.Registry().Active())
}

func TestFeed_BlurCancelsDrag(t *testing.T) {
	a := NewAdapter()
	b, drops, _ := board(t, a)
	d := b.Dispatcher()

	a.Feed(d, click(2, 0))
	b.Update(300 * time.Millisecond)
	a.Feed(d, motion(2, 6))
	assert.True(t, a.Feed(d, tea.BlurMsg{}))
	assert.Empty(t, *drops)
	assert.False(t, b.Registry().Active())
	assert.False(t, a.Feed(d, tea.FocusMsg{}))
}

func TestCellGhosts(t *testing.T) {
	a := NewAdapter()
	b, _, _ := board(t, a)
	ghosts := NewCellGhosts(a)
	ghosts.Label = func(spec holddrag.GhostSpec) string { return "> " + spec.Name }
	b.SetGhostPresenter(ghosts)
	d := b.Dispatcher()

	a.Feed(d, click(2, 1))
	b.Update(300 * time.Millisecond)
	require.Len(t, ghosts.Live(), 1)
	g := ghosts.Live()[0]
	assert.Equal(t, "> entry", g.Label)
	assert.Equal(t, 2, g.X)
	assert.Equal(t, 1, g.Y)

	a.Feed(d, motion(5, 7))
	assert.Equal(t, 5, g.X)
	assert.Equal(t, 7, g.Y)

	a.Feed(d, release(5, 7))
	assert.Empty(t, ghosts.Live())
	g.Destroy()
	g.MoveTo(holddrag.Vec2{})
	assert.Equal(t, 5, g.X)
}

func TestWaitTimers(t *testing.T) {
	fake := clockwork.NewFakeClock()
	lc := holddrag.NewLoopClock(fake)
	a := NewAdapter()
	b, _, _ := board(t, a)
	b.SetClock(lc)
	d := b.Dispatcher()

	a.Feed(d, click(2, 0))
	fake.Advance(300 * time.Millisecond)

	done := make(chan tea.Msg, 1)
	go func() { done <- WaitTimers(lc)() }()
	select {
	case msg := <-done:
		assert.IsType(t, TimerMsg{}, msg)
	case <-time.After(time.Second):
		t.Fatal("WaitTimers did not return")
	}
	assert.Equal(t, 1, lc.RunDue())
	assert.Equal(t, holddrag.StateDragging, b.Registry().State())
}

func TestTick(t *testing.T) {
	msg := Tick(time.Millisecond)()
	tick, ok := msg.(TickMsg)
	require.True(t, ok)
	assert.False(t, tick.Time.IsZero())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "down", KindDown.String())
	assert.Equal(t, "cancel", KindCancel.String())
	assert.Equal(t, "unknown", Kind(9).String())
}
