package main

import (
	"github.com/phanxgames/holddrag"
)

// Layout is measured in character cells and mapped to pixels with cellRect.
// The terminal adapter is built with the same cell size, so one set of
// bounds serves the Ebitengine window and the terminal.
const (
	cellW = 8
	cellH = 16


	mealCols     = 30 // width of a meal section
	templateCol  = 33 // first column of the quick-add list
	templateCols = 20
	minRows      = 2 // entry rows kept free per meal
)

// row is one line of the rendered board.
type row struct {
	X, Y, W int
	Text    string
	Header  bool
	Meal    holddrag.MealID // section the row belongs to
	Surface string          // draggable surface on this row, if any
	Payload holddrag.Payload
}

// section is the cell rectangle of a meal's drop zone.
type section struct {
	Meal       holddrag.MealID
	X, Y, W, H int
}

type layout struct {
	rows     []row
	sections []section
	width    int
	height   int
}

// computeLayout places the meal sections down the left and the templates to
// their right, starting at cell (ox, oy).
func computeLayout(d *Diary, ox, oy int) layout {
	var l layout
	y := oy
	for _, meal := range meals {
		entries := d.Entries(meal)
		h := 1 + max(len(entries), minRows)
		l.sections = append(l.sections, section{Meal: meal, X: ox, Y: y, W: mealCols, H: h})
		l.rows = append(l.rows, row{X: ox, Y: y, W: mealCols, Text: titleCase(string(meal)), Header: true, Meal: meal})
		for i, e := range entries {
			l.rows = append(l.rows, row{
				X: ox + 2, Y: y + 1 + i, W: mealCols - 4,
				Text:    e.Name,
				Meal:    meal,
				Surface: "entry:" + e.ID,
				Payload: holddrag.EntryRef{EntryID: e.ID, Meal: meal},
			})
		}
		y += h + 1
	}
	l.height = y - oy

	tx := ox + templateCol
	l.rows = append(l.rows, row{X: tx, Y: oy, W: templateCols, Text: "Quick add", Header: true})
	for i, t := range d.Templates() {
		l.rows = append(l.rows, row{
			X: tx, Y: oy + 1 + i, W: templateCols,
			Text:    t.Name,
			Surface: "template:" + t.ID,
			Payload: holddrag.QuickAddRef{TemplateID: t.ID, Name: t.Name, Kind: t.Kind},
		})
	}
	l.width = templateCol + templateCols
	return l
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}

// rowAt returns the row covering cell (x, y).
func (l *layout) rowAt(x, y int) (row, bool) {
	for _, r := range l.rows {
		if y == r.Y && x >= r.X && x < r.X+r.W {
			return r, true
		}
	}
	return row{}, false
}

// cellRect returns the pixel rectangle covering w x h cells from (x, y),
// one pixel short on the far edges so neighbouring cells never share a point.
func cellRect(x, y, w, h int) holddrag.Rect {
	return holddrag.Rect{
		X:      float64(x * cellW),
		Y:      float64(y * cellH),
		Width:  float64(w*cellW - 1),
		Height: float64(h*cellH - 1),
	}
}

// zoneRect converts a section to a drop zone shape.
func zoneRect(s section) holddrag.HitRect {
	r := cellRect(s.X, s.Y, s.W, s.H)
	return holddrag.HitRect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}
