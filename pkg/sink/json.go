package sink

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/termpie/pkg/errors"
	"github.com/matzehuels/termpie/pkg/grid"
)

type jsonOutput struct {
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Cells  []jsonCell `json:"cells"`
}

type jsonCell struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Glyph string `json:"glyph"`
	Fg    string `json:"fg,omitempty"`
	Bg    string `json:"bg,omitempty"`
}

// RenderJSON lists the non-blank cells of buf, row by row. Coordinates are
// relative to the buffer origin. Cells that only carry a background color are
// included with a blank glyph.
func RenderJSON(buf *grid.Buffer) ([]byte, error) {
	area := buf.Area()
	out := jsonOutput{Width: area.Width, Height: area.Height, Cells: []jsonCell{}}
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			c := buf.Cell(x, y)
			if c.Glyph == "" || (c.IsBlank() && c.Bg == nil) {
				continue
			}
			out.Cells = append(out.Cells, jsonCell{
				X:     x - area.X,
				Y:     y - area.Y,
				Glyph: c.Glyph,
				Fg:    ColorString(c.Fg),
				Bg:    ColorString(c.Bg),
			})
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode JSON")
	}
	return data, nil
}

// ColorString returns the portable spelling of c: a palette index or hex
// value as written, or "#rrggbb" for other color types. nil gives "".
func ColorString(c grid.Color) string {
	switch v := c.(type) {
	case nil, lipgloss.NoColor:
		return ""
	case lipgloss.Color:
		return string(v)
	case lipgloss.ANSIColor:
		return strconv.Itoa(int(v))
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
