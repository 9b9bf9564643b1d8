package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one composed terminal cell
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Frame is a fully composed screen, row-major
type Frame struct {
	Width, Height int
	Cells         []Cell
}

func newFrame(w, h int) Frame {
	return Frame{Width: w, Height: h, Cells: make([]Cell, w*h)}
}

// Empty reports whether there is nothing to draw
func (f Frame) Empty() bool {
	return f.Width <= 0 || f.Height <= 0
}

// At returns the cell at x,y; out of bounds yields the zero cell
func (f Frame) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return Cell{}
	}
	return f.Cells[y*f.Width+x]
}

// Row returns the runes of row y as a string
func (f Frame) Row(y int) string {
	if y < 0 || y >= f.Height {
		return ""
	}
	runes := make([]rune, f.Width)
	for x := 0; x < f.Width; x++ {
		r := f.Cells[y*f.Width+x].Rune
		if r == 0 {
			r = ' '
		}
		runes[x] = r
	}
	return string(runes)
}

// Paint draws f to screen and flushes
// Cells outside the screen are clipped
func Paint(screen tcell.Screen, f Frame) {
	screen.Clear()
	if !f.Empty() {
		sw, sh := screen.Size()
		for y := 0; y < f.Height && y < sh; y++ {
			for x := 0; x < f.Width && x < sw; x++ {
				c := f.Cells[y*f.Width+x]
				r := c.Rune
				if r == 0 {
					r = ' '
				}
				screen.SetContent(x, y, r, nil, c.Style)
			}
		}
	}
	screen.Show()
}
