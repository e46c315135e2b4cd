package legend

import "strings"

// Position is the side of the chart the legend occupies.
type Position int

const (
	Right Position = iota
	Left
	Top
	Bottom
)

// Positions lists every position in declaration order.
var Positions = []Position{Right, Left, Top, Bottom}

func (p Position) String() string {
	switch p {
	case Left:
		return "left"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return "right"
	}
}

// horizontal reports whether the legend takes width from the chart.
func (p Position) horizontal() bool { return p == Right || p == Left }

// ParsePosition parses "right", "left", "top" or "bottom".
func ParsePosition(s string) (Position, bool) {
	for _, p := range Positions {
		if strings.EqualFold(strings.TrimSpace(s), p.String()) {
			return p, true
		}
	}
	return Right, false
}

// Stacking is how entries are arranged.
type Stacking int

const (
	Vertical Stacking = iota
	Horizontal
)

// Stackings lists every stacking in declaration order.
var Stackings = []Stacking{Vertical, Horizontal}

func (s Stacking) String() string {
	if s == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// ParseStacking parses "vertical" or "horizontal".
func ParseStacking(s string) (Stacking, bool) {
	for _, st := range Stackings {
		if strings.EqualFold(strings.TrimSpace(s), st.String()) {
			return st, true
		}
	}
	return Vertical, false
}

// Alignment positions legend content along the cross axis.
type Alignment int

const (
	Start Alignment = iota
	Center
	End
)

// Alignments lists every alignment in declaration order.
var Alignments = []Alignment{Start, Center, End}

func (a Alignment) String() string {
	switch a {
	case Center:
		return "center"
	case End:
		return "end"
	default:
		return "start"
	}
}

// ParseAlignment parses "start", "center" or "end". "left" and "right" are
// accepted as aliases of start and end.
func ParseAlignment(s string) (Alignment, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start", "left":
		return Start, true
	case "center", "centre":
		return Center, true
	case "end", "right":
		return End, true
	}
	return Start, false
}

// offset returns where content of width w starts inside avail cells.
func (a Alignment) offset(avail, w int) int {
	switch a {
	case Center:
		return max(avail-w, 0) / 2
	case End:
		return max(avail-w, 0)
	default:
		return 0
	}
}

// DefaultMarker is drawn before each label unless Config.Marker is set.
const DefaultMarker = "■"

// Config controls legend placement and content. It is read-only during a
// render pass.
type Config struct {
	Position        Position
	Stacking        Stacking
	Alignment       Alignment
	ShowPercentages bool
	Marker          string
	Visible         bool
}

// DefaultConfig returns a visible, right-hand, vertical, start-aligned legend
// with percentages.
func DefaultConfig() Config {
	return Config{
		Position:        Right,
		Stacking:        Vertical,
		Alignment:       Start,
		ShowPercentages: true,
		Marker:          DefaultMarker,
		Visible:         true,
	}
}

func (c Config) marker() string {
	if c.Marker == "" {
		return DefaultMarker
	}
	return c.Marker
}
