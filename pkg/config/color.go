package config

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/termpie/pkg/errors"
	"github.com/matzehuels/termpie/pkg/grid"
)

// ansiNames maps color names to ANSI palette indices.
var ansiNames = map[string]int{
	"black":          0,
	"red":            1,
	"green":          2,
	"yellow":         3,
	"blue":           4,
	"magenta":        5,
	"cyan":           6,
	"white":          7,
	"gray":           8,
	"grey":           8,
	"bright-black":   8,
	"bright-red":     9,
	"bright-green":   10,
	"bright-yellow":  11,
	"bright-blue":    12,
	"bright-magenta": 13,
	"bright-cyan":    14,
	"bright-white":   15,
}

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ParseColor parses a color name ("red", "bright-blue"), an ANSI 256 palette
// index ("208") or a hex value ("#ff8800", "#f80"). An empty string, "default"
// and "none" give nil, the terminal default.
func ParseColor(s string) (grid.Color, error) {
	s = strings.TrimSpace(s)
	name := strings.NewReplacer("_", "-", " ", "-").Replace(strings.ToLower(s))
	switch name {
	case "", "default", "none":
		return nil, nil
	}
	if idx, ok := ansiNames[name]; ok {
		return lipgloss.Color(strconv.Itoa(idx)), nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 255 {
			return nil, errors.New(errors.ErrCodeInvalidColor, "color index %d out of range 0-255", n)
		}
		return lipgloss.Color(s), nil
	}
	if hexColor.MatchString(s) {
		return lipgloss.Color(strings.ToLower(s)), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidColor, "unknown color %q (use a name, 0-255, or #rrggbb)", s)
}

// Palette colors slices that do not name their own, in order.
var Palette = []grid.Color{
	lipgloss.Color("1"),
	lipgloss.Color("4"),
	lipgloss.Color("2"),
	lipgloss.Color("3"),
	lipgloss.Color("5"),
	lipgloss.Color("6"),
	lipgloss.Color("9"),
	lipgloss.Color("12"),
	lipgloss.Color("10"),
	lipgloss.Color("11"),
}

// PaletteColor returns the palette color for the i-th slice.
func PaletteColor(i int) grid.Color {
	return Palette[i%len(Palette)]
}
