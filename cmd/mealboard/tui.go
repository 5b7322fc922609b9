package main

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
	"github.com/phanxgames/holddrag"
	"github.com/phanxgames/holddrag/teadrag"
)

var tuiStyles = [numStyles]lipgloss.Style{
	stylePlain:    lipgloss.NewStyle(),
	styleHeader:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#c9b8ff")).Background(lipgloss.Color("#332c42")),
	styleSection:  lipgloss.NewStyle().Background(lipgloss.Color("#332c42")),
	styleTargeted: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#3f6e5a")),
	styleItem:     lipgloss.NewStyle().Foreground(lipgloss.Color("#e8e4f0")).Background(lipgloss.Color("#4a425e")),
	styleTemplate: lipgloss.NewStyle().Foreground(lipgloss.Color("#f5deb3")).Background(lipgloss.Color("#5e4a2e")),
	styleGhost:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1b1724")).Background(lipgloss.Color("#8a7cb0")),
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a0a0b0")).PaddingLeft(1)
	helpStyle   = lipgloss.NewStyle().Faint(true).PaddingLeft(1)
)

// model is the Bubble Tea front end. Timers run on a LoopClock so the
// long-press fires without a frame tick.
type model struct {
	app     *app
	adapter *teadrag.Adapter
	ghosts  *teadrag.CellGhosts
	clock   *holddrag.LoopClock
}

func newModel(cfg *holddrag.Config, clock clockwork.Clock, logger *log.Logger) *model {
	board := holddrag.NewBoard(cfg)
	board.SetLogger(logger)
	board.SetHaptics(nil)

	adapter := &teadrag.Adapter{CellWidth: cellW, CellHeight: cellH}
	lc := holddrag.NewLoopClock(clock)
	board.SetClock(lc)
	a := newApp(board, NewDiary(), 1, 1, logger)
	a.clock = lc

	ghosts := teadrag.NewCellGhosts(adapter)
	ghosts.Label = func(spec holddrag.GhostSpec) string {
		return " " + a.diary.Describe(spec.Payload) + " "
	}
	board.SetGhostPresenter(ghosts)
	return &model{app: a, adapter: adapter, ghosts: ghosts, clock: lc}
}

func (m *model) Init() tea.Cmd {
	return teadrag.WaitTimers(m.clock)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	case teadrag.TimerMsg:
		m.clock.RunDue()
		return m, teadrag.WaitTimers(m.clock)
	}
	m.adapter.Feed(m.app.board.Dispatcher(), msg)
	return m, nil
}

func (m *model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	v.ReportFocus = true
	v.WindowTitle = "Meal board"
	return v
}

func (m *model) render() string {
	a := m.app
	c := newCanvas(a.ox+a.lay.width+1, a.oy+a.lay.height)
	reg := a.board.Registry()
	for _, s := range a.lay.sections {
		st := styleSection
		if reg.IsTargeted(s.Meal) {
			st = styleTargeted
		}
		c.fill(s.X, s.Y, s.W, s.H, st)
	}
	for _, r := range a.lay.rows {
		switch {
		case r.Header && r.Meal != "" && reg.IsTargeted(r.Meal):
			c.put(r.X+1, r.Y, r.Text, styleTargeted)
		case r.Header:
			c.fill(r.X, r.Y, r.W, 1, styleHeader)
			c.put(r.X+1, r.Y, r.Text, stylePlain)
		case r.Meal == "":
			c.fill(r.X, r.Y, r.W, 1, styleTemplate)
			c.put(r.X+1, r.Y, r.Text, stylePlain)
		default:
			c.fill(r.X, r.Y, r.W, 1, styleItem)
			c.put(r.X+1, r.Y, r.Text, stylePlain)
		}
	}
	for _, g := range m.ghosts.Live() {
		c.put(g.X, g.Y, g.Label, styleGhost)
	}

	status := a.status
	if l := a.dragLabel(); l != "" {
		status = l
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		c.render(tuiStyles),
		statusStyle.Render(status),
		helpStyle.Render("hold to drag · click to tap · q to quit"),
	)
}

func runTUI(cfg *holddrag.Config, logger *log.Logger) error {
	p := tea.NewProgram(newModel(cfg, clockwork.NewRealClock(), logger))
	_, err := p.Run()
	return err
}
