package world

// Rect is an axis-aligned rectangle used to carve rooms.
// X2 and Y2 are exclusive of the carved interior.
type Rect struct {
	X1, Y1 int // Top-left corner
	X2, Y2 int // Bottom-right corner
}

// NewRect creates a rectangle from a corner and a size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Interior returns the first carved cell of the rectangle.
func (r Rect) Interior() (int, int) {
	return r.X1 + 1, r.Y1 + 1
}

// Contains returns true if the point lies in the carved interior.
func (r Rect) Contains(x, y int) bool {
	return x > r.X1 && x < r.X2 && y > r.Y1 && y < r.Y2
}
