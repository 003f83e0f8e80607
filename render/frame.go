package render

import (
	"github.com/lixenwraith/termframe/terminal"
)

// Frame is the transient handle passed to a drawing callback: the back
// buffer being composed, its drawing area, and the raster regions registered
// so far. A Frame is only valid for the duration of the callback
type Frame struct {
	buf     *Buffer
	area    Rect
	regions []Region
}

// Area returns the drawable cell rectangle
func (f *Frame) Area() Rect {
	return f.area
}

// Buffer returns the back buffer being composed
func (f *Frame) Buffer() *Buffer {
	return f.buf
}

// Set writes one cell, silently clipped to the frame area
func (f *Frame) Set(x, y int, c terminal.Cell) {
	f.buf.Set(x, y, c)
}

// WriteString writes styled text clipped at the frame's right edge and
// returns the next free column
func (f *Frame) WriteString(x, y int, s string, style terminal.Style) int {
	return f.buf.WriteString(x, y, s, style, f.area.X+f.area.Width)
}

// RegisterGraphics declares a raster region for this frame. The footprint
// is blanked to the sentinel, reserving it: any later cell write into the
// footprint occludes the region and drops it for this frame
func (f *Frame) RegisterGraphics(r Region) {
	for y := r.Row; y < r.Row+r.Height; y++ {
		for x := r.Col; x < r.Col+r.Width; x++ {
			f.buf.Set(x, y, terminal.Blank)
		}
	}
	f.regions = append(f.regions, r)
}
