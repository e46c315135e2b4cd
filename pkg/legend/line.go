package legend

import (
	"fmt"

	"github.com/matzehuels/termpie/pkg/grid"
	"github.com/matzehuels/termpie/pkg/pie"
)

// Line is the rendered text of one legend entry.
type Line struct {
	Marker  string
	Label   string
	Percent string // e.g. "45.0%"; empty when percentages are off
	Color   grid.Color
}

// Caption returns the line without its marker, e.g. "Rust (45.0%)".
func (l Line) Caption() string {
	if l.Percent == "" {
		return l.Label
	}
	return l.Label + " (" + l.Percent + ")"
}

// Text returns the full line as drawn: marker, one space, caption.
func (l Line) Text() string {
	return l.Marker + " " + l.Caption()
}

// Width returns the number of cells Text occupies.
func (l Line) Width() int {
	return grid.StringWidth(l.Text())
}

// Lines builds one line per slice, in slice order. Percentages are omitted
// when disabled or when the total is zero.
func Lines(slices []pie.Slice, cfg Config) []Line {
	total := pie.Total(slices)
	withPct := cfg.ShowPercentages && total > 0
	marker := cfg.marker()

	lines := make([]Line, len(slices))
	for i, s := range slices {
		lines[i] = Line{Marker: marker, Label: s.Label, Color: s.Color}
		if withPct {
			lines[i].Percent = FormatPercent(s.Weight() / total * 100)
		}
	}
	return lines
}

// FormatPercent formats a percentage with one decimal place.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}
