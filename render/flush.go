package render

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/termframe/terminal"
)

// dirtyCell is an impossible cell value planted in the front buffer to
// force re-emission at a position. Rune -1 never equals any composed cell
var dirtyCell = terminal.Cell{Rune: -1}

// flushDiff walks both buffers in row-major order and emits every position
// where the back cell differs from the front cell. Unchanged cells cost
// zero output bytes: frame cost is proportional to changed cells, not
// screen area.
//
// Cursor moves are elided for contiguous runs, and a cursor-forward is
// used for short same-row gaps. Style commands are coalesced by the
// emitter across maximal runs
func flushDiff(em *terminal.Emitter, back, front *Buffer) {
	area := back.Area()
	w := area.Width

	// nextX/nextY track where the terminal cursor lands after the last
	// emitted cell; -1 means unknown
	nextX, nextY := -1, -1
	emitted := false

	for row := 0; row < area.Height; row++ {
		absY := area.Y + row
		rowStart := row * w
		for col := 0; col < w; col++ {
			idx := rowStart + col
			bc := back.content[idx]
			if bc.Rune == 0 {
				// Continuation cell of a wide character; its leader emits
				// the glyph
				continue
			}

			cw := runewidth.RuneWidth(bc.Rune)
			if cw < 1 {
				cw = 1
			}

			changed := bc != front.content[idx]
			if !changed && cw > 1 {
				// A wide glyph must be re-emitted when any cell under it
				// changed, even if the leader cell itself is unchanged:
				// a half-overwritten glyph mangles on screen and only the
				// leader write repairs it
				for i := 1; i < cw && col+i < w; i++ {
					cc := back.content[idx+i]
					if cc.Rune == 0 && cc != front.content[idx+i] {
						changed = true
						break
					}
				}
			}
			if !changed {
				continue
			}

			absX := area.X + col
			if nextY == absY && absX >= nextX && absX-nextX <= 4 {
				// Same row, small gap: cursor-forward beats a full
				// position sequence
				em.MoveForward(absX - nextX)
			} else if nextY != absY || absX != nextX {
				em.MoveTo(absX, absY)
			}

			em.SetStyle(bc.Style)
			em.WriteRune(bc.Rune)

			nextX = absX + cw
			nextY = absY
			emitted = true
		}
	}

	if emitted {
		em.ResetStyle()
	}
}
