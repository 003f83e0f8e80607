package render

// Rect is a cell-coordinate rectangle
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the point lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty reports whether the rectangle has no area
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// In reports whether r lies entirely inside outer
func (r Rect) In(outer Rect) bool {
	if r.Empty() {
		return true
	}
	return r.X >= outer.X && r.Y >= outer.Y &&
		r.X+r.Width <= outer.X+outer.Width &&
		r.Y+r.Height <= outer.Y+outer.Height
}
