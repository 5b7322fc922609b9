package holddrag

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// GhostSpec describes the surface a ghost is built from.
type GhostSpec struct {
	Name    string
	Payload Payload
	Bounds  Rect // screen bounds of the origin surface
	Origin  Vec2 // capture point at pointer-down
}

// GhostPresenter builds detached visual proxies of dragged surfaces.
type GhostPresenter interface {
	CreateGhost(spec GhostSpec) Ghost
}

// Ghost is a live visual proxy. Destroy must be idempotent.
type Ghost interface {
	MoveTo(center Vec2)
	Destroy()
}

// SpritePresenter renders ghosts as Ebitengine images drawn above the board.
// Each ghost lifts off the surface with a short scale/alpha tween.
type SpritePresenter struct {
	// Snapshot renders the origin surface into a new image owned by the
	// ghost. A nil Snapshot, or a nil image, yields an invisible ghost that
	// still tracks position.
	Snapshot func(spec GhostSpec) *ebiten.Image

	Alpha        float64
	LiftScale    float64
	LiftDuration time.Duration

	ghosts []*spriteGhost
}

// NewSpritePresenter returns a presenter with the lift settings from cfg.
func NewSpritePresenter(cfg GhostConfig) *SpritePresenter {
	return &SpritePresenter{
		Alpha:        cfg.Alpha,
		LiftScale:    cfg.LiftScale,
		LiftDuration: time.Duration(cfg.LiftMS) * time.Millisecond,
	}
}

type spriteGhost struct {
	p         *SpritePresenter
	img       *ebiten.Image
	center    Vec2
	scale     float64
	alpha     float64
	tweens    [2]*gween.Tween // scale, alpha
	destroyed bool
}

// CreateGhost creates a ghost centered on the capture point.
func (p *SpritePresenter) CreateGhost(spec GhostSpec) Ghost {
	g := &spriteGhost{p: p, center: spec.Origin, scale: 1, alpha: 1}
	if p.Snapshot != nil {
		g.img = p.Snapshot(spec)
	}
	toScale, toAlpha := p.LiftScale, p.Alpha
	if toScale <= 0 {
		toScale = 1
	}
	if toAlpha <= 0 {
		toAlpha = 1
	}
	if p.LiftDuration > 0 {
		d := float32(p.LiftDuration.Seconds())
		g.tweens[0] = gween.New(1, float32(toScale), d, ease.OutQuad)
		g.tweens[1] = gween.New(1, float32(toAlpha), d, ease.OutQuad)
	} else {
		g.scale, g.alpha = toScale, toAlpha
	}
	p.ghosts = append(p.ghosts, g)
	return g
}

// Live returns the number of ghosts not yet destroyed.
func (p *SpritePresenter) Live() int {
	return len(p.ghosts)
}

// Update advances lift tweens by dt.
func (p *SpritePresenter) Update(dt time.Duration) {
	step := float32(dt.Seconds())
	for _, g := range p.ghosts {
		if g.tweens[0] != nil {
			v, done := g.tweens[0].Update(step)
			g.scale = float64(v)
			if done {
				g.tweens[0] = nil
			}
		}
		if g.tweens[1] != nil {
			v, done := g.tweens[1].Update(step)
			g.alpha = float64(v)
			if done {
				g.tweens[1] = nil
			}
		}
	}
}

// Draw draws every live ghost onto screen, centered on its position.
func (p *SpritePresenter) Draw(screen *ebiten.Image) {
	for _, g := range p.ghosts {
		if g.img == nil {
			continue
		}
		b := g.img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
		op.GeoM.Scale(g.scale, g.scale)
		op.GeoM.Translate(g.center.X, g.center.Y)
		op.ColorScale.ScaleAlpha(float32(g.alpha))
		screen.DrawImage(g.img, op)
	}
}

// MoveTo recenters the ghost. Moving a destroyed ghost does nothing.
func (g *spriteGhost) MoveTo(center Vec2) {
	if g.destroyed {
		return
	}
	g.center = center
}

// Destroy removes the ghost from its presenter and frees its image.
func (g *spriteGhost) Destroy() {
	if g.destroyed {
		return
	}
	g.destroyed = true
	s := g.p.ghosts
	for i := range s {
		if s[i] == g {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = nil
			g.p.ghosts = s[:len(s)-1]
			break
		}
	}
	if g.img != nil {
		g.img.Deallocate()
		g.img = nil
	}
}
