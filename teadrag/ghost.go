package teadrag

import "github.com/phanxgames/holddrag"

// CellGhost is a drag proxy drawn as a text label at a terminal cell.
type CellGhost struct {
	Label string
	X, Y  int

	set       *CellGhosts
	destroyed bool
}

// MoveTo recenters the ghost on the cell containing center.
func (g *CellGhost) MoveTo(center holddrag.Vec2) {
	if g.destroyed {
		return
	}
	g.X, g.Y = g.set.adapter.Cell(center)
}

// Destroy removes the ghost from its set.
func (g *CellGhost) Destroy() {
	if g.destroyed {
		return
	}
	g.destroyed = true
	s := g.set.live
	for i := range s {
		if s[i] == g {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = nil
			g.set.live = s[:len(s)-1]
			return
		}
	}
}

// CellGhosts is a GhostPresenter for terminal views. The view renders
// Live() on top of the board.
type CellGhosts struct {
	adapter *Adapter
	// Label returns the text for a ghost. Nil uses the surface name.
	Label func(spec holddrag.GhostSpec) string

	live []*CellGhost
}

// NewCellGhosts creates a presenter that maps positions through a.
func NewCellGhosts(a *Adapter) *CellGhosts {
	return &CellGhosts{adapter: a}
}

// CreateGhost creates a ghost at the capture point.
func (c *CellGhosts) CreateGhost(spec holddrag.GhostSpec) holddrag.Ghost {
	label := spec.Name
	if c.Label != nil {
		label = c.Label(spec)
	}
	g := &CellGhost{Label: label, set: c}
	g.X, g.Y = c.adapter.Cell(spec.Origin)
	c.live = append(c.live, g)
	return g
}

// Live returns the ghosts not yet destroyed. The returned slice MUST NOT be
// mutated.
func (c *CellGhosts) Live() []*CellGhost {
	return c.live
}
