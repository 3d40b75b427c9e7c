package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type cell struct {
	s    string // empty for the trailing half of a wide rune
	kind cellKind
}

// canvas is a fixed-size cell grid drawn back to front and rendered one
// styled run at a time.
type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([][]cell, h)}
	for y := range c.cells {
		row := make([]cell, w)
		for x := range row {
			row[x] = cell{s: " "}
		}
		c.cells[y] = row
	}
	return c
}

// put writes text starting at (x, y), clipped to the canvas.
func (c *canvas) put(x, y int, text string, kind cellKind) {
	if y < 0 || y >= c.h {
		return
	}
	for _, r := range text {
		s := string(r)
		w := ansi.StringWidth(s)
		if w == 0 {
			continue
		}
		if x >= 0 && x+w <= c.w {
			c.cells[y][x] = cell{s: s, kind: kind}
			for i := 1; i < w; i++ {
				c.cells[y][x+i] = cell{kind: kind}
			}
		}
		x += w
		if x >= c.w {
			return
		}
	}
}

// box draws a single-line border with title set into the top edge.
func (c *canvas) box(x, y, w, h int, title string, border, titleKind cellKind) {
	if w < 2 || h < 2 {
		return
	}
	c.put(x, y, "┌"+strings.Repeat("─", w-2)+"┐", border)
	for row := y + 1; row < y+h-1; row++ {
		c.put(x, row, "│", border)
		c.put(x+w-1, row, "│", border)
	}
	c.put(x, y+h-1, "└"+strings.Repeat("─", w-2)+"┘", border)
	if title != "" && w > 4 {
		c.put(x+2, y, ansi.Truncate(" "+title+" ", w-4, "…"), titleKind)
	}
}

func (c *canvas) String() string {
	var sb strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		var run strings.Builder
		kind := cellBlank
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if kind == cellBlank {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(cellStyles[kind].Render(run.String()))
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.kind != kind {
				flush()
				kind = cl.kind
			}
			run.WriteString(cl.s)
		}
		flush()
	}
	return sb.String()
}
