package grid

import "strings"

// Buffer is an in-memory [Surface] covering a fixed rectangle.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	area  Rect
	cells []Cell
}

// NewBuffer returns a buffer covering area, filled with blank cells.
func NewBuffer(area Rect) *Buffer {
	b := &Buffer{area: NewRect(area.X, area.Y, area.Width, area.Height)}
	b.cells = make([]Cell, b.area.Area())
	b.Reset()
	return b
}

// Area returns the rectangle the buffer covers.
func (b *Buffer) Area() Rect { return b.area }

// Reset blanks every cell.
func (b *Buffer) Reset() {
	for i := range b.cells {
		b.cells[i] = Cell{Glyph: Blank}
	}
}

// Set implements [Surface].
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.area.Contains(x, y) {
		return
	}
	b.cells[b.index(x, y)] = c
}

// Cell returns the cell at (x, y), or a blank cell outside the buffer.
func (b *Buffer) Cell(x, y int) Cell {
	if !b.area.Contains(x, y) {
		return Cell{Glyph: Blank}
	}
	return b.cells[b.index(x, y)]
}

// Row returns the glyphs of row y as a string. Continuation cells of wide
// runes contribute nothing.
func (b *Buffer) Row(y int) string {
	var sb strings.Builder
	for x := b.area.X; x < b.area.Right(); x++ {
		sb.WriteString(b.Cell(x, y).Glyph)
	}
	return sb.String()
}

// Lines returns every row as a string, top to bottom.
func (b *Buffer) Lines() []string {
	lines := make([]string, 0, b.area.Height)
	for y := b.area.Y; y < b.area.Bottom(); y++ {
		lines = append(lines, b.Row(y))
	}
	return lines
}

// String implements fmt.Stringer.
func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

// Count returns the number of cells for which keep returns true.
func (b *Buffer) Count(keep func(Cell) bool) int {
	n := 0
	for _, c := range b.cells {
		if keep(c) {
			n++
		}
	}
	return n
}

func (b *Buffer) index(x, y int) int {
	return (y-b.area.Y)*b.area.Width + (x - b.area.X)
}
