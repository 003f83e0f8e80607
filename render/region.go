package render

import (
	"github.com/lixenwraith/termframe/terminal"
)

// Region is a raster block declared for one frame: a cell-aligned footprint
// plus the opaque protocol payload that draws it. Regions are created inside
// a drawing callback, consumed during the same draw cycle, and never
// persisted; only their bounds survive into the next frame's bookkeeping
type Region struct {
	Row      int // top cell row
	Col      int // left cell column
	Width    int // footprint width in cells
	Height   int // footprint height in cells
	Payload  []byte
	Protocol terminal.GraphicsProtocol
}

// Bounds returns the cell footprint as a Rect
func (r Region) Bounds() Rect {
	return Rect{X: r.Col, Y: r.Row, Width: r.Width, Height: r.Height}
}
