package sink

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/termpie/pkg/grid"
)

// ANSIOption configures ANSI rendering via [RenderANSI].
type ANSIOption func(*ansiRenderer)

type ansiRenderer struct {
	renderer *lipgloss.Renderer
}

// WithRenderer renders with r, and so with its color profile, instead of the
// lipgloss default renderer.
func WithRenderer(r *lipgloss.Renderer) ANSIOption {
	return func(a *ansiRenderer) { a.renderer = r }
}

// RenderANSI returns buf as styled terminal text, rows separated by newlines.
// Consecutive cells of a row with the same colors are styled together.
func RenderANSI(buf *grid.Buffer, opts ...ANSIOption) string {
	a := ansiRenderer{renderer: lipgloss.DefaultRenderer()}
	for _, opt := range opts {
		opt(&a)
	}

	area := buf.Area()
	rows := make([]string, 0, area.Height)
	var sb, run strings.Builder
	for y := area.Y; y < area.Bottom(); y++ {
		sb.Reset()
		run.Reset()
		var fg, bg grid.Color
		for x := area.X; x < area.Right(); x++ {
			c := buf.Cell(x, y)
			if c.Glyph == "" {
				continue // second half of a wide rune
			}
			if run.Len() > 0 && (c.Fg != fg || c.Bg != bg) {
				sb.WriteString(a.style(fg, bg, run.String()))
				run.Reset()
			}
			fg, bg = c.Fg, c.Bg
			run.WriteString(c.Glyph)
		}
		if run.Len() > 0 {
			sb.WriteString(a.style(fg, bg, run.String()))
		}
		rows = append(rows, sb.String())
	}
	return strings.Join(rows, "\n")
}

func (a ansiRenderer) style(fg, bg grid.Color, text string) string {
	if fg == nil && bg == nil {
		return text
	}
	s := a.renderer.NewStyle()
	if fg != nil {
		s = s.Foreground(fg)
	}
	if bg != nil {
		s = s.Background(bg)
	}
	return s.Render(text)
}
