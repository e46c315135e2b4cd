package pie

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Slice is one weighted category of a pie chart.
type Slice struct {
	Label string
	Value float64
	Color lipgloss.TerminalColor
}

// NewSlice creates a slice with the given label, value and color.
func NewSlice(label string, value float64, color lipgloss.TerminalColor) Slice {
	return Slice{Label: label, Value: value, Color: color}
}

// Weight returns the value used for layout: negative, NaN and infinite values
// count as zero.
func (s Slice) Weight() float64 {
	if math.IsNaN(s.Value) || math.IsInf(s.Value, 0) || s.Value < 0 {
		return 0
	}
	return s.Value
}

// Total returns the sum of all slice weights.
func Total(slices []Slice) float64 {
	var total float64
	for _, s := range slices {
		total += s.Weight()
	}
	return total
}

// Percent returns the share of slice i in percent. ok is false when the total
// is zero or i is out of range.
func Percent(slices []Slice, i int) (pct float64, ok bool) {
	if i < 0 || i >= len(slices) {
		return 0, false
	}
	total := Total(slices)
	if total <= 0 {
		return 0, false
	}
	return slices[i].Weight() / total * 100, true
}
