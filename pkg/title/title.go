// Package title places a chart title on the top or bottom edge of its frame
// and restyles it with Unicode Mathematical Alphanumeric Symbols.
package title

import (
	"strings"

	"github.com/matzehuels/termpie/pkg/grid"
)

// Alignment is the horizontal placement of a title.
type Alignment int

const (
	Center Alignment = iota
	Start
	End
)

func (a Alignment) String() string {
	switch a {
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return "center"
	}
}

// ParseAlignment parses "start", "center" or "end" ("left" and "right" are
// aliases).
func ParseAlignment(s string) (Alignment, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "center", "centre":
		return Center, true
	case "start", "left":
		return Start, true
	case "end", "right":
		return End, true
	}
	return Center, false
}

// Position is the frame edge a title sits on.
type Position int

const (
	Top Position = iota
	Bottom
)

func (p Position) String() string {
	if p == Bottom {
		return "bottom"
	}
	return "top"
}

// ParsePosition parses "top" or "bottom".
func ParsePosition(s string) (Position, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "top":
		return Top, true
	case "bottom":
		return Bottom, true
	}
	return Top, false
}

// Title is a chart caption. The zero value is an empty, top-centered title.
type Title struct {
	Text      string
	Style     Style
	Alignment Alignment
	Position  Position
}

// New returns a top-centered title in the normal style.
func New(text string) Title {
	return Title{Text: text}
}

// IsEmpty reports whether the title has no text.
func (t Title) IsEmpty() bool { return t.Text == "" }

// Rendered returns the text after applying the style.
func (t Title) Rendered() string { return t.Style.Apply(t.Text) }

// Row returns the row of area the title occupies.
func (t Title) Row(area grid.Rect) grid.Rect {
	if area.IsEmpty() {
		return grid.Rect{X: area.X, Y: area.Y}
	}
	y := area.Y
	if t.Position == Bottom {
		y = area.Bottom() - 1
	}
	return grid.Rect{X: area.X, Y: y, Width: area.Width, Height: 1}
}

// Reserve splits area into the title row and the rest. An empty title
// reserves nothing.
func (t Title) Reserve(area grid.Rect) (row, rest grid.Rect) {
	if t.IsEmpty() || area.IsEmpty() {
		return grid.Rect{X: area.X, Y: area.Y}, area
	}
	row = t.Row(area)
	if t.Position == Bottom {
		return row, area.Inset(0, 0, 0, 1)
	}
	return row, area.Inset(0, 1, 0, 0)
}

// Draw writes the styled title into row, aligned and clipped to its width.
// Only the first line of row is used.
func (t Title) Draw(s grid.Surface, row grid.Rect, fg, bg grid.Color) {
	if t.IsEmpty() || row.IsEmpty() {
		return
	}
	text := t.Rendered()
	w := grid.StringWidth(text)

	x := row.X
	switch t.Alignment {
	case Center:
		x += max(row.Width-w, 0) / 2
	case End:
		x += max(row.Width-w, 0)
	}
	grid.SetString(s, x, row.Y, row.Right(), text, fg, bg)
}

// DrawOnFrame draws the title on the border row of a framed area, between the
// corners.
func (t Title) DrawOnFrame(s grid.Surface, frame grid.Rect, fg, bg grid.Color) {
	row := t.Row(frame)
	t.Draw(s, row.Inset(1, 0, 1, 0), fg, bg)
}
