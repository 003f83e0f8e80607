package terminal

// Cell represents a single grid position: one rune plus its style.
// Cells are value types compared with ==
//
// Rune 0 marks the continuation cell of a wide character; it occupies grid
// space but emits nothing on its own
type Cell struct {
	Rune  rune
	Style Style
}

// Blank is the sentinel empty cell: a space in the reset style. It is both
// the erase value and the marker for unclaimed graphics footprints
var Blank = Cell{Rune: ' '}

// IsBlank reports whether the cell equals the blank sentinel
func (c Cell) IsBlank() bool {
	return c == Blank
}
