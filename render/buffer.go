package render

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/lixenwraith/termframe/terminal"
)

// Buffer is a rectangular cell grid backed by a flat row-major array.
// Invariant: len(content) == area.Width * area.Height.
// Writes outside the area are silently clipped, never an error, so widget
// code composes without manual bounds checks
type Buffer struct {
	area    Rect
	content []terminal.Cell
}

// NewBuffer creates a buffer covering the given area, filled with the
// blank sentinel
func NewBuffer(area Rect) *Buffer {
	b := &Buffer{area: area}
	b.content = make([]terminal.Cell, area.Width*area.Height)
	b.Reset()
	return b
}

// Area returns the buffer's cell rectangle
func (b *Buffer) Area() Rect {
	return b.area
}

// index maps absolute coordinates to the flat array
func (b *Buffer) index(x, y int) int {
	return (y-b.area.Y)*b.area.Width + (x - b.area.X)
}

// Set writes a cell. Out-of-bounds writes are dropped
func (b *Buffer) Set(x, y int, c terminal.Cell) {
	if !b.area.Contains(x, y) {
		return
	}
	b.content[b.index(x, y)] = c
}

// Get reads a cell. The second return is false outside the area
func (b *Buffer) Get(x, y int) (terminal.Cell, bool) {
	if !b.area.Contains(x, y) {
		return terminal.Cell{}, false
	}
	return b.content[b.index(x, y)], true
}

// WriteString writes text left to right starting at (x, y), stopping at
// clipRight (exclusive) or the buffer edge. Wide characters occupy their
// display width; the trailing cells are zero-rune continuations. Returns
// the next free column
func (b *Buffer) WriteString(x, y int, s string, style terminal.Style, clipRight int) int {
	if clipRight > b.area.X+b.area.Width {
		clipRight = b.area.X + b.area.Width
	}
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cluster := gr.Str()
		w := runewidth.StringWidth(cluster)
		if w <= 0 {
			continue
		}
		if x+w > clipRight {
			break
		}
		r := gr.Runes()[0]
		b.Set(x, y, terminal.Cell{Rune: r, Style: style})
		for i := 1; i < w; i++ {
			b.Set(x+i, y, terminal.Cell{Rune: 0, Style: style})
		}
		x += w
	}
	return x
}

// Fill sets every cell to c
func (b *Buffer) Fill(c terminal.Cell) {
	if len(b.content) == 0 {
		return
	}
	b.content[0] = c
	// Exponential copy
	for filled := 1; filled < len(b.content); filled *= 2 {
		copy(b.content[filled:], b.content[:filled])
	}
}

// Reset fills the buffer with the blank sentinel
func (b *Buffer) Reset() {
	b.Fill(terminal.Blank)
}

// Resize reallocates storage for the new area and resets. Capacity is
// reused when sufficient. Old content is discarded; a resize always forces
// a full redraw upstream
func (b *Buffer) Resize(area Rect) {
	size := area.Width * area.Height
	if cap(b.content) < size {
		b.content = make([]terminal.Cell, size)
	} else {
		b.content = b.content[:size]
	}
	b.area = area
	b.Reset()
}
