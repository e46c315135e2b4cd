package grid

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Blank is the glyph of an unfilled cell.
const Blank = " "

// cellWidth measures glyphs the way most terminals lay them out: East Asian
// ambiguous runes (box drawing, geometric shapes) take a single cell regardless
// of the process locale.
var cellWidth = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Color is an opaque color handle. nil means the terminal default.
type Color = lipgloss.TerminalColor

// Cell is the content of one grid position.
type Cell struct {
	Glyph string
	Fg    Color
	Bg    Color
}

// IsBlank reports whether the cell shows nothing but (possibly) a background.
func (c Cell) IsBlank() bool {
	return c.Glyph == "" || c.Glyph == Blank
}

// Surface is a caller-owned grid that drawing code writes into.
//
// Set must ignore writes outside the surface bounds.
type Surface interface {
	Set(x, y int, c Cell)
}

// SetString writes s starting at (x, y), one grapheme cluster per cell, styled
// with fg and bg. Wide clusters occupy two cells; the second cell is cleared.
// Writing stops at limit (exclusive column); a limit <= x writes nothing. It
// returns the column after the last written cell.
//
// Cluster widths come from the same measure as StringWidth, so a string
// drawn with enough room ends exactly StringWidth(text) cells later.
func SetString(s Surface, x, y, limit int, text string, fg, bg Color) int {
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		w := cellWidth.StringWidth(cluster)
		if w == 0 {
			continue
		}
		if x+w > limit {
			break
		}
		s.Set(x, y, Cell{Glyph: cluster, Fg: fg, Bg: bg})
		for i := 1; i < w; i++ {
			s.Set(x+i, y, Cell{Glyph: "", Fg: fg, Bg: bg})
		}
		x += w
	}
	return x
}

// Fill sets every cell of area to c.
func Fill(s Surface, area Rect, c Cell) {
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			s.Set(x, y, c)
		}
	}
}

// RuneWidth returns the number of cells r occupies (0, 1 or 2).
func RuneWidth(r rune) int {
	return cellWidth.RuneWidth(r)
}

// StringWidth returns the number of cells text occupies.
func StringWidth(text string) int {
	return cellWidth.StringWidth(text)
}
