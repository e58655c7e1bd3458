package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type cell struct {
	glyph string
	style lipgloss.Style
	set   bool
}

// Canvas is a fixed-size grid of single-width glyphs used as the animated
// background. Foreground content is composed over it line by line.
type Canvas struct {
	Width  int
	Height int
	cells  []cell
}

// NewCanvas creates an empty canvas
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Canvas{
		Width:  width,
		Height: height,
		cells:  make([]cell, width*height),
	}
}

// Set places a glyph; out-of-range coordinates are ignored
func (c *Canvas) Set(x, y int, glyph string, style lipgloss.Style) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	c.cells[y*c.Width+x] = cell{glyph: glyph, style: style, set: true}
}

// At returns the glyph at x, y or a space
func (c *Canvas) At(x, y int) string {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return ""
	}
	if cl := c.cells[y*c.Width+x]; cl.set {
		return cl.glyph
	}
	return " "
}

func (c *Canvas) span(y, from, to int) string {
	var b strings.Builder
	for x := from; x < to; x++ {
		cl := c.cells[y*c.Width+x]
		if cl.set {
			b.WriteString(cl.style.Render(cl.glyph))
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// Compose renders the canvas with content centered horizontally, its first
// line on row top. Content wider than the canvas replaces the whole row.
func (c *Canvas) Compose(content []string, top int) string {
	rows := make([]string, c.Height)
	for y := 0; y < c.Height; y++ {
		i := y - top
		if i < 0 || i >= len(content) {
			rows[y] = c.span(y, 0, c.Width)
			continue
		}

		line := content[i]
		w := lipgloss.Width(line)
		if w >= c.Width {
			rows[y] = line
			continue
		}
		left := (c.Width - w) / 2
		rows[y] = c.span(y, 0, left) + line + c.span(y, left+w, c.Width)
	}
	return strings.Join(rows, "\n")
}
