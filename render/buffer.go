package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/stress-bomb/core"
)

// cell is one composited terminal cell; Rune 0 marks the tail of a wide rune
type cell struct {
	Rune rune
	Fg   core.RGB
	Bg   core.RGB
	Bold bool
}

// cellBuffer is the frame compositor flushed to the screen once per Draw
type cellBuffer struct {
	cells  []cell
	width  int
	height int
}

// resize adjusts dimensions, reallocating only if capacity is insufficient
func (b *cellBuffer) resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
}

// fill resets every cell using exponential copy
func (b *cellBuffer) fill(c cell) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = c
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *cellBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// at returns a cell pointer or nil out of bounds
func (b *cellBuffer) at(x, y int) *cell {
	if !b.inBounds(x, y) {
		return nil
	}
	return &b.cells[y*b.width+x]
}

// flush writes every cell to the screen and presents it
func (b *cellBuffer) flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			if c.Rune == 0 {
				continue
			}
			style := tcell.StyleDefault.Foreground(tcellColor(c.Fg)).Background(tcellColor(c.Bg))
			if c.Bold {
				style = style.Bold(true)
			}
			screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
	screen.Show()
}

func tcellColor(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
