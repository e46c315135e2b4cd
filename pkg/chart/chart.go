package chart

import (
	"context"
	"slices"
	"time"

	"github.com/matzehuels/termpie/pkg/border"
	"github.com/matzehuels/termpie/pkg/grid"
	"github.com/matzehuels/termpie/pkg/legend"
	"github.com/matzehuels/termpie/pkg/observability"
	"github.com/matzehuels/termpie/pkg/pie"
	"github.com/matzehuels/termpie/pkg/raster"
)

// Chart is an immutable slice list with its rendering options.
type Chart struct {
	slices []pie.Slice
	opts   Options
}

// New creates a chart from slices, applying opts on top of [DefaultOptions].
// The slice list is copied.
func New(slices []pie.Slice, opts ...Option) *Chart {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Chart{slices: cloneSlices(slices), opts: o}
}

// With returns a copy of c with opts applied.
func (c *Chart) With(opts ...Option) *Chart {
	o := c.opts
	for _, opt := range opts {
		opt(&o)
	}
	return &Chart{slices: c.slices, opts: o}
}

// WithSlices returns a copy of c drawing slices instead.
func (c *Chart) WithSlices(slices []pie.Slice) *Chart {
	return &Chart{slices: cloneSlices(slices), opts: c.opts}
}

// Slices returns a copy of the chart's slices.
func (c *Chart) Slices() []pie.Slice { return cloneSlices(c.slices) }

// Options returns the chart's options.
func (c *Chart) Options() Options { return c.opts }

func cloneSlices(s []pie.Slice) []pie.Slice {
	return slices.Clone(s)
}

// Result describes what a render pass drew.
type Result struct {
	// Inner is the area left inside the border and title.
	Inner grid.Rect
	// Layout holds the legend and chart rectangles and the placed legend
	// entries.
	Layout legend.Layout
	// Intervals are the slice intervals the pie was drawn with.
	Intervals pie.Intervals
	// Coverage counts the painted pie cells and samples.
	Coverage raster.Coverage
	// LegendOmitted is set when a legend was requested for a non-empty chart
	// but did not fit.
	LegendOmitted bool
}

// Render draws the chart into area of s. It writes every cell of area and
// nothing outside it.
func (c *Chart) Render(s grid.Surface, area grid.Rect) Result {
	return c.RenderContext(context.Background(), s, area)
}

// RenderContext is Render with a context for the observability hooks. The
// context is not used for cancellation.
func (c *Chart) RenderContext(ctx context.Context, s grid.Surface, area grid.Rect) Result {
	if area.IsEmpty() {
		return Result{Inner: area, Layout: legend.Layout{Chart: area}}
	}

	hooks := observability.Render()
	hooks.OnRenderStart(ctx, area.Width, area.Height, len(c.slices))
	start := time.Now()

	o := c.opts
	clip := clipSurface{s: s, area: area}

	grid.Fill(clip, area, grid.Cell{Glyph: grid.Blank, Bg: o.Background})
	inner := c.drawFrame(clip, area)

	layout := legend.Compute(inner, c.slices, o.Legend)
	ivs := pie.Build(c.slices)

	r := raster.Rasterizer{
		Resolution: o.Resolution,
		Glyph:      o.PieGlyph,
		Aspect:     o.Aspect,
		Background: grid.Cell{Glyph: grid.Blank, Bg: o.Background},
	}
	cov := r.Render(clip, layout.Chart, c.slices, ivs)
	layout.Draw(clip, o.TextColor, o.Background)

	res := Result{
		Inner:         inner,
		Layout:        layout,
		Intervals:     ivs,
		Coverage:      cov,
		LegendOmitted: o.Legend.Visible && !ivs.Empty() && !layout.Visible(),
	}
	hooks.OnRenderComplete(ctx, observability.RenderStats{
		Width:         area.Width,
		Height:        area.Height,
		Resolution:    o.Resolution.String(),
		Slices:        len(c.slices),
		ChartCells:    cov.Cells,
		LegendEntries: len(layout.Entries),
		LegendOmitted: res.LegendOmitted,
		Duration:      time.Since(start),
	})
	return res
}

// drawFrame draws the border and title and returns the area inside them.
// Without a border the title takes a row of its own.
func (c *Chart) drawFrame(s grid.Surface, area grid.Rect) grid.Rect {
	o := c.opts
	if o.Border != border.None {
		inner := border.Draw(s, area, o.Border, o.BorderColor)
		if area.Width >= 2 && area.Height >= 2 {
			o.Title.DrawOnFrame(s, area, o.TitleColor, o.Background)
		}
		return inner
	}
	row, inner := o.Title.Reserve(area)
	o.Title.Draw(s, row, o.TitleColor, o.Background)
	return inner
}

// clipSurface drops writes outside area.
type clipSurface struct {
	s    grid.Surface
	area grid.Rect
}

func (c clipSurface) Set(x, y int, cell grid.Cell) {
	if c.area.Contains(x, y) {
		c.s.Set(x, y, cell)
	}
}
