package grid

import "fmt"

// Rect is a rectangle of cells. Width and Height are never negative for
// rectangles produced by this package.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect returns a rectangle, clamping negative sizes to zero.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: max(width, 0), Height: max(height, 0)}
}

// IsEmpty reports whether the rectangle covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns the number of cells covered.
func (r Rect) Area() int {
	if r.IsEmpty() {
		return 0
	}
	return r.Width * r.Height
}

// Right returns the first column to the right of the rectangle.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the first row below the rectangle.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Contains reports whether cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks the rectangle by the given number of cells on each side.
// The result is empty (but keeps a valid origin) when the insets consume it.
func (r Rect) Inset(left, top, right, bottom int) Rect {
	return NewRect(r.X+left, r.Y+top, r.Width-left-right, r.Height-top-bottom)
}

// Intersect returns the overlap of r and o, or an empty rectangle.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.Right(), o.Right()), min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// String implements fmt.Stringer.
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}
