package main

import (
	"image"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/phanxgames/holddrag"
)

var (
	colorBackground = color.RGBA{0x23, 0x1e, 0x2d, 0xff}
	colorSection    = color.RGBA{0x33, 0x2c, 0x42, 0xff}
	colorTargeted   = color.RGBA{0x3f, 0x6e, 0x5a, 0xff}
	colorItem       = color.RGBA{0x4a, 0x42, 0x5e, 0xff}
	colorTemplate   = color.RGBA{0x5e, 0x4a, 0x2e, 0xff}
	colorGhost      = color.RGBA{0x8a, 0x7c, 0xb0, 0xff}
)

// game implements ebiten.Game.
type game struct {
	app    *app
	width  int
	height int
}

func runWindow(cfg *holddrag.Config, logger *log.Logger) error {
	board := holddrag.NewBoard(cfg)
	board.SetLogger(logger)
	board.SetPoller(holddrag.NewPoller())
	a := newApp(board, NewDiary(), 1, 1, logger)
	board.Ghosts().Snapshot = a.snapshot

	g := &game{
		app:    a,
		width:  (a.lay.width + 2) * cellW,
		height: (a.lay.height + 3) * cellH,
	}
	ebiten.SetWindowTitle("Meal board")
	ebiten.SetWindowSize(g.width*2, g.height*2)
	return ebiten.RunGame(g)
}

func (g *game) Update() error {
	g.app.board.Update(holddrag.FrameDelta())
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	a := g.app
	screen.Fill(colorBackground)
	reg := a.board.Registry()
	for _, s := range a.lay.sections {
		c := colorSection
		if reg.IsTargeted(s.Meal) {
			c = colorTargeted
		}
		fillRect(screen, cellRect(s.X, s.Y, s.W, s.H), c)
	}
	for _, r := range a.lay.rows {
		if r.Surface != "" {
			c := colorItem
			if r.Meal == "" {
				c = colorTemplate
			}
			fillRect(screen, cellRect(r.X, r.Y, r.W, 1), c)
		}
		p := cellRect(r.X, r.Y, 1, 1)
		ebitenutil.DebugPrintAt(screen, r.Text, int(p.X)+2, int(p.Y))
	}

	status := a.status
	if l := a.dragLabel(); l != "" {
		status = l
	}
	ebitenutil.DebugPrintAt(screen, status, cellW, (a.oy+a.lay.height)*cellH)
	a.board.Draw(screen)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

func fillRect(dst *ebiten.Image, r holddrag.Rect, c color.Color) {
	rect := image.Rect(int(r.X), int(r.Y), int(r.X+r.Width)+1, int(r.Y+r.Height)+1)
	dst.SubImage(rect).(*ebiten.Image).Fill(c)
}

// snapshot draws the ghost image for a dragged row.
func (a *app) snapshot(spec holddrag.GhostSpec) *ebiten.Image {
	w, h := int(spec.Bounds.Width)+1, int(spec.Bounds.Height)+1
	if w <= 0 || h <= 0 {
		return nil
	}
	img := ebiten.NewImage(w, h)
	img.Fill(colorGhost)
	ebitenutil.DebugPrintAt(img, a.diary.Describe(spec.Payload), 2, 0)
	return img
}
