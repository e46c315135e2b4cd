// Package border draws box frames around a chart.
//
// A frame takes one cell on each side of the area it is drawn into; [Draw]
// returns what is left inside. The twelve styles differ only in the glyphs
// they use, listed in [Sets].
package border

import (
	"strings"

	"github.com/matzehuels/termpie/pkg/grid"
)

// Style selects a frame glyph set.
type Style int

const (
	None Style = iota
	Standard
	Rounded
	Dashed
	RoundedDashed
	CornerGapped
	RoundedCornerGapped
	DoubleLineStandard
	DoubleLineRounded
	Thick
	ThickRounded
	ThickDashed
	ThickCornerGapped
)

// Styles lists every drawable style, None excluded.
var Styles = []Style{
	Standard, Rounded, Dashed, RoundedDashed, CornerGapped, RoundedCornerGapped,
	DoubleLineStandard, DoubleLineRounded, Thick, ThickRounded, ThickDashed, ThickCornerGapped,
}

var styleNames = map[Style]string{
	None:                "none",
	Standard:            "standard",
	Rounded:             "rounded",
	Dashed:              "dashed",
	RoundedDashed:       "rounded-dashed",
	CornerGapped:        "corner-gapped",
	RoundedCornerGapped: "rounded-corner-gapped",
	DoubleLineStandard:  "double",
	DoubleLineRounded:   "double-rounded",
	Thick:               "thick",
	ThickRounded:        "thick-rounded",
	ThickDashed:         "thick-dashed",
	ThickCornerGapped:   "thick-corner-gapped",
}

func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return "none"
}

// ParseStyle parses a style name as returned by [Style.String]. Matching
// ignores case and treats '_' and ' ' like '-'.
func ParseStyle(name string) (Style, bool) {
	name = strings.NewReplacer("_", "-", " ", "-").Replace(strings.ToLower(strings.TrimSpace(name)))
	if name == "" {
		return None, true
	}
	for s, n := range styleNames {
		if n == name {
			return s, true
		}
	}
	return None, false
}

// Set holds the glyphs of one frame.
type Set struct {
	TopLeft, TopRight, BottomLeft, BottomRight string
	Left, Right, Top, Bottom                   string
}

func uniform(tl, tr, bl, br, vertical, horizontal string) Set {
	return Set{
		TopLeft: tl, TopRight: tr, BottomLeft: bl, BottomRight: br,
		Left: vertical, Right: vertical, Top: horizontal, Bottom: horizontal,
	}
}

// Sets maps each drawable style to its glyphs. Unicode has no rounded corners
// for double or heavy lines, so the rounded variants pair light rounded
// corners with double or heavy edges.
var Sets = map[Style]Set{
	Standard:            uniform("┌", "┐", "└", "┘", "│", "─"),
	Rounded:             uniform("╭", "╮", "╰", "╯", "│", "─"),
	Dashed:              uniform("┌", "┐", "└", "┘", "┊", "┄"),
	RoundedDashed:       uniform("╭", "╮", "╰", "╯", "┊", "┄"),
	CornerGapped:        uniform(" ", " ", " ", " ", "│", "─"),
	RoundedCornerGapped: uniform(" ", " ", " ", " ", "│", "─"),
	DoubleLineStandard:  uniform("╔", "╗", "╚", "╝", "║", "═"),
	DoubleLineRounded:   uniform("╭", "╮", "╰", "╯", "║", "═"),
	Thick:               uniform("┏", "┓", "┗", "┛", "┃", "━"),
	ThickRounded:        uniform("╭", "╮", "╰", "╯", "┃", "━"),
	ThickDashed:         uniform("┏", "┓", "┗", "┛", "┇", "┅"),
	ThickCornerGapped:   uniform(" ", " ", " ", " ", "┃", "━"),
}

// Inner returns area shrunk by one cell per side when style draws a frame,
// or area itself for None.
func Inner(area grid.Rect, style Style) grid.Rect {
	if _, ok := Sets[style]; !ok {
		return area
	}
	return area.Inset(1, 1, 1, 1)
}

// Draw frames area with style in color and returns the inner rectangle.
// Areas smaller than 2x2 are left untouched and an empty rectangle is
// returned. None draws nothing and returns area.
func Draw(s grid.Surface, area grid.Rect, style Style, color grid.Color) grid.Rect {
	set, ok := Sets[style]
	if !ok {
		return area
	}
	if area.Width < 2 || area.Height < 2 {
		return grid.Rect{X: area.X, Y: area.Y}
	}

	put := func(x, y int, glyph string) {
		s.Set(x, y, grid.Cell{Glyph: glyph, Fg: color})
	}
	left, right := area.X, area.Right()-1
	top, bottom := area.Y, area.Bottom()-1

	for x := left + 1; x < right; x++ {
		put(x, top, set.Top)
		put(x, bottom, set.Bottom)
	}
	for y := top + 1; y < bottom; y++ {
		put(left, y, set.Left)
		put(right, y, set.Right)
	}
	put(left, top, set.TopLeft)
	put(right, top, set.TopRight)
	put(left, bottom, set.BottomLeft)
	put(right, bottom, set.BottomRight)

	return area.Inset(1, 1, 1, 1)
}
