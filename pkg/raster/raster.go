package raster

import (
	"strings"

	"github.com/matzehuels/termpie/pkg/grid"
	"github.com/matzehuels/termpie/pkg/pie"
)

// =============================================================================
// Resolution
// =============================================================================

// Resolution selects how many occupancy samples each cell gets.
type Resolution int

const (
	// Standard takes one sample per cell.
	Standard Resolution = iota
	// HighDensity takes 2x4 samples per cell and draws braille patterns.
	HighDensity
)

// String implements fmt.Stringer.
func (r Resolution) String() string {
	switch r {
	case HighDensity:
		return "high"
	default:
		return "standard"
	}
}

// ParseResolution parses a resolution name. Accepted names are "standard"
// (or "std") and "high" (or "high-density", "braille").
func ParseResolution(s string) (Resolution, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "standard", "std", "":
		return Standard, true
	case "high", "high-density", "highdensity", "braille":
		return HighDensity, true
	}
	return Standard, false
}

// =============================================================================
// Rasterizer
// =============================================================================

const (
	// DefaultAspect is the assumed ratio of cell height to cell width.
	DefaultAspect = 2.0

	// DefaultGlyph is the glyph painted by Standard resolution.
	DefaultGlyph = "●"

	subCols = 2
	subRows = 4
)

// Rasterizer paints a pie chart into a grid rectangle.
//
// The zero value is usable: Standard resolution, [DefaultGlyph] and
// [DefaultAspect]. A Rasterizer holds no per-render state and may be reused.
type Rasterizer struct {
	Resolution Resolution

	// Glyph is painted into inside cells at Standard resolution.
	Glyph string

	// Aspect is the cell height divided by the cell width. Values <= 0 mean
	// DefaultAspect.
	Aspect float64

	// Background is written to every cell outside the circle.
	Background grid.Cell
}

// New creates a rasterizer for the given resolution and Standard glyph.
func New(res Resolution, glyph string) *Rasterizer {
	return &Rasterizer{Resolution: res, Glyph: glyph}
}

// Coverage reports what a render pass painted.
type Coverage struct {
	// Cells is the number of cells that received a chart glyph.
	Cells int
	// Samples is the number of sample points inside the circle: one per
	// painted cell at Standard resolution, one per dot at HighDensity.
	Samples int
}

// Render paints area of s. Each slice's color comes from slices[iv.Index].
// Every cell of area is written exactly once; an empty area writes nothing.
func (r *Rasterizer) Render(s grid.Surface, area grid.Rect, slices []pie.Slice, ivs pie.Intervals) Coverage {
	if area.IsEmpty() {
		return Coverage{}
	}
	bg := r.background()
	if ivs.Empty() {
		grid.Fill(s, area, bg)
		return Coverage{}
	}

	c := newCircle(area, r.aspect())
	if r.Resolution == HighDensity {
		return r.renderHighDensity(s, area, c, slices, ivs, bg)
	}
	return r.renderStandard(s, area, c, slices, ivs, bg)
}

func (r *Rasterizer) renderStandard(s grid.Surface, area grid.Rect, c circle, slices []pie.Slice, ivs pie.Intervals, bg grid.Cell) Coverage {
	glyph := r.Glyph
	if glyph == "" {
		glyph = DefaultGlyph
	}

	var cov Coverage
	for row := 0; row < area.Height; row++ {
		for col := 0; col < area.Width; col++ {
			idx, ok := c.owner(float64(col)+0.5, float64(row)+0.5, ivs)
			if !ok {
				s.Set(area.X+col, area.Y+row, bg)
				continue
			}
			s.Set(area.X+col, area.Y+row, grid.Cell{Glyph: glyph, Fg: colorOf(slices, idx), Bg: bg.Bg})
			cov.Cells++
			cov.Samples++
		}
	}
	return cov
}

func (r *Rasterizer) renderHighDensity(s grid.Surface, area grid.Rect, c circle, slices []pie.Slice, ivs pie.Intervals, bg grid.Cell) Coverage {
	var cov Coverage
	var owners [subCols * subRows]int
	for row := 0; row < area.Height; row++ {
		for col := 0; col < area.Width; col++ {
			var mask uint8
			n := 0
			for j := 0; j < subRows; j++ {
				py := float64(row) + (float64(j)+0.5)/subRows
				for i := 0; i < subCols; i++ {
					px := float64(col) + (float64(i)+0.5)/subCols
					idx, ok := c.owner(px, py, ivs)
					if !ok {
						continue
					}
					mask |= dotBits[j][i]
					owners[n] = idx
					n++
				}
			}
			if n == 0 {
				s.Set(area.X+col, area.Y+row, bg)
				continue
			}
			s.Set(area.X+col, area.Y+row, grid.Cell{
				Glyph: brailleText[mask],
				Fg:    colorOf(slices, majority(owners[:n])),
				Bg:    bg.Bg,
			})
			cov.Cells++
			cov.Samples += n
		}
	}
	return cov
}

func (r *Rasterizer) aspect() float64 {
	if r.Aspect <= 0 {
		return DefaultAspect
	}
	return r.Aspect
}

func (r *Rasterizer) background() grid.Cell {
	bg := r.Background
	if bg.Glyph == "" {
		bg.Glyph = grid.Blank
	}
	return bg
}

// =============================================================================
// Geometry
// =============================================================================

// circle is the chart disc in area-relative cell coordinates. Vertical offsets
// are multiplied by aspect so that radius is measured in cell widths.
type circle struct {
	cx, cy  float64
	radius2 float64
	aspect  float64
}

func newCircle(area grid.Rect, aspect float64) circle {
	w, h := float64(area.Width), float64(area.Height)
	radius := min(w, h*aspect) / 2
	return circle{cx: w / 2, cy: h / 2, radius2: radius * radius, aspect: aspect}
}

// Radius returns the radius, in cell widths, of the chart drawn into area.
func Radius(area grid.Rect, aspect float64) float64 {
	if aspect <= 0 {
		aspect = DefaultAspect
	}
	return min(float64(area.Width), float64(area.Height)*aspect) / 2
}

// owner classifies point (px, py) and returns the slice owning it.
func (c circle) owner(px, py float64, ivs pie.Intervals) (int, bool) {
	dx := px - c.cx
	dy := (py - c.cy) * c.aspect
	if dx*dx+dy*dy > c.radius2 {
		return 0, false
	}
	return ivs.Locate(pie.Bearing(dx, dy))
}

// majority returns the most frequent slice index, preferring the lowest index
// on ties.
func majority(owners []int) int {
	best, bestN := owners[0], 0
	for _, o := range owners {
		n := 0
		for _, p := range owners {
			if p == o {
				n++
			}
		}
		if n > bestN || (n == bestN && o < best) {
			best, bestN = o, n
		}
	}
	return best
}

func colorOf(slices []pie.Slice, idx int) grid.Color {
	if idx < 0 || idx >= len(slices) {
		return nil
	}
	return slices[idx].Color
}
