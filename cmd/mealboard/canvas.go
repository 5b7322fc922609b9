package main

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Canvas styles.
const (
	stylePlain uint8 = iota
	styleHeader
	styleSection
	styleTargeted
	styleItem
	styleTemplate
	styleGhost
	numStyles
)

// canvas is a fixed grid of single-width cells, each tagged with a style.
// Runs of equally styled cells are rendered together.
type canvas struct {
	w, h   int
	runes  [][]rune
	styles [][]uint8
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, runes: make([][]rune, h), styles: make([][]uint8, h)}
	for y := range h {
		c.runes[y] = []rune(strings.Repeat(" ", w))
		c.styles[y] = make([]uint8, w)
	}
	return c
}

// fill sets the style of a rectangle without touching its text.
func (c *canvas) fill(x, y, w, h int, st uint8) {
	for yy := max(y, 0); yy < min(y+h, c.h); yy++ {
		for xx := max(x, 0); xx < min(x+w, c.w); xx++ {
			c.styles[yy][xx] = st
		}
	}
}

// put writes s at (x, y), clipped to the canvas. A zero style keeps the
// cell's existing style.
func (c *canvas) put(x, y int, s string, st uint8) {
	if y < 0 || y >= c.h {
		return
	}
	for _, r := range s {
		if x >= c.w {
			return
		}
		if x >= 0 {
			c.runes[y][x] = r
			if st != stylePlain {
				c.styles[y][x] = st
			}
		}
		x++
	}
}

func (c *canvas) render(styles [numStyles]lipgloss.Style) string {
	var b strings.Builder
	for y := range c.h {
		if y > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for x := 1; x <= c.w; x++ {
			if x < c.w && c.styles[y][x] == c.styles[y][start] {
				continue
			}
			b.WriteString(styles[c.styles[y][start]].Render(string(c.runes[y][start:x])))
			start = x
		}
	}
	return b.String()
}
