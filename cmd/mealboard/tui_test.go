package main

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/jonboulle/clockwork"
	"github.com/phanxgames/holddrag"
	"github.com/phanxgames/holddrag/teadrag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fire advances the fake clock and delivers the resulting timer message.
func fire(t *testing.T, m *model, fake *clockwork.FakeClock, d time.Duration) {
	t.Helper()
	fake.Advance(d)
	done := make(chan tea.Msg, 1)
	go func() { done <- teadrag.WaitTimers(m.clock)() }()
	select {
	case msg := <-done:
		_, cmd := m.Update(msg)
		assert.NotNil(t, cmd)
	case <-time.After(time.Second):
		t.Fatal("no timer came due")
	}
}

func TestModel_DragMovesEntry(t *testing.T) {
	fake := clockwork.NewFakeClock()
	m := newModel(holddrag.DefaultConfig(), fake, nil)
	require.NotNil(t, m.Init())

	m.Update(tea.MouseClickMsg{X: 5, Y: 2, Button: tea.MouseLeft})
	fire(t, m, fake, 300*time.Millisecond)
	require.Equal(t, holddrag.StateDragging, m.app.board.Registry().State())

	m.Update(tea.MouseMotionMsg{X: 5, Y: 7, Button: tea.MouseLeft})
	assert.True(t, m.app.board.Registry().IsTargeted("lunch"))
	require.Len(t, m.ghosts.Live(), 1)
	assert.Contains(t, m.render(), "Oatmeal")
	assert.Contains(t, m.render(), "dragging Oatmeal over lunch")

	m.Update(tea.MouseReleaseMsg{X: 5, Y: 7, Button: tea.MouseLeft})
	assert.Empty(t, m.ghosts.Live())
	assert.Equal(t, "moved Oatmeal from breakfast to lunch", m.app.status)

	fire(t, m, fake, time.Millisecond)
	assert.False(t, m.app.pending)
	r, ok := m.app.lay.rowAt(5, 6)
	require.True(t, ok)
	assert.Equal(t, "Oatmeal", r.Text)
}

func TestModel_Tap(t *testing.T) {
	m := newModel(holddrag.DefaultConfig(), clockwork.NewFakeClock(), nil)
	m.Update(tea.MouseClickMsg{X: 36, Y: 3, Button: tea.MouseLeft})
	m.Update(tea.MouseReleaseMsg{X: 36, Y: 3, Button: tea.MouseLeft})
	assert.Equal(t, "tapped Pasta bake", m.app.status)
}

func TestModel_BlurCancels(t *testing.T) {
	fake := clockwork.NewFakeClock()
	m := newModel(holddrag.DefaultConfig(), fake, nil)
	m.Update(tea.MouseClickMsg{X: 5, Y: 2, Button: tea.MouseLeft})
	fire(t, m, fake, 300*time.Millisecond)
	m.Update(tea.BlurMsg{})
	assert.False(t, m.app.board.Registry().Active())
	assert.Empty(t, m.ghosts.Live())
}

func TestModel_Quit(t *testing.T) {
	m := newModel(holddrag.DefaultConfig(), clockwork.NewFakeClock(), nil)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.Nil(t, cmd)
}

func TestModel_View(t *testing.T) {
	m := newModel(holddrag.DefaultConfig(), clockwork.NewFakeClock(), nil)
	v := m.View()
	assert.True(t, v.AltScreen)
	assert.True(t, v.ReportFocus)
	assert.Equal(t, tea.MouseModeAllMotion, v.MouseMode)
}
