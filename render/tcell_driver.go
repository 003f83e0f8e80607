package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termframe/terminal"
)

// TcellDriver presents termframe buffers on an existing tcell.Screen.
// Useful when embedding termframe widgets inside a tcell application, or
// for headless tests against a SimulationScreen. Raster regions are not
// representable through tcell and are skipped
type TcellDriver struct {
	screen tcell.Screen
}

// NewTcellDriver wraps an initialized tcell.Screen
func NewTcellDriver(s tcell.Screen) *TcellDriver {
	return &TcellDriver{screen: s}
}

// Present writes the buffer's cells to the screen and shows the result.
// tcell performs its own internal diffing, so this is safe to call every
// frame
func (d *TcellDriver) Present(b *Buffer) {
	area := b.Area()
	for y := 0; y < area.Height; y++ {
		for x := 0; x < area.Width; x++ {
			c, _ := b.Get(area.X+x, area.Y+y)
			if c.Rune == 0 {
				// Continuation cell; tcell tracks wide runes itself
				continue
			}
			d.screen.SetContent(x, y, c.Rune, nil, terminal.ToTcellStyle(c.Style))
		}
	}
	d.screen.Show()
}
