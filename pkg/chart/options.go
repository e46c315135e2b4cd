package chart

import (
	"github.com/matzehuels/termpie/pkg/border"
	"github.com/matzehuels/termpie/pkg/grid"
	"github.com/matzehuels/termpie/pkg/legend"
	"github.com/matzehuels/termpie/pkg/raster"
	"github.com/matzehuels/termpie/pkg/title"
)

// Options configures a chart. The zero value is not ready to use; start from
// [DefaultOptions].
type Options struct {
	Resolution raster.Resolution
	Legend     legend.Config

	// PieGlyph fills inside cells at Standard resolution.
	PieGlyph string

	// Aspect is the cell height divided by the cell width. Values <= 0 mean
	// raster.DefaultAspect.
	Aspect float64

	Border      border.Style
	BorderColor grid.Color

	Title      title.Title
	TitleColor grid.Color

	// Background fills the whole widget area before anything is drawn.
	// nil keeps the terminal default.
	Background grid.Color

	// TextColor colors legend captions. nil draws each caption in its
	// slice color.
	TextColor grid.Color
}

// DefaultOptions returns a Standard-resolution chart with a visible
// right-hand legend, percentages, no border and no title.
func DefaultOptions() Options {
	return Options{
		Resolution: raster.Standard,
		Legend:     legend.DefaultConfig(),
		PieGlyph:   raster.DefaultGlyph,
		Aspect:     raster.DefaultAspect,
	}
}

// Option mutates Options during [New] or [Chart.With].
type Option func(*Options)

// WithResolution sets the rasterization mode.
func WithResolution(r raster.Resolution) Option {
	return func(o *Options) { o.Resolution = r }
}

// WithHighResolution selects HighDensity when on and Standard otherwise.
func WithHighResolution(on bool) Option {
	return func(o *Options) {
		o.Resolution = raster.Standard
		if on {
			o.Resolution = raster.HighDensity
		}
	}
}

// WithLegend replaces the whole legend configuration.
func WithLegend(cfg legend.Config) Option {
	return func(o *Options) { o.Legend = cfg }
}

// WithLegendPosition sets the side of the chart the legend is placed on.
func WithLegendPosition(p legend.Position) Option {
	return func(o *Options) { o.Legend.Position = p }
}

// WithLegendStacking sets whether legend lines stack vertically or flow in rows.
func WithLegendStacking(s legend.Stacking) Option {
	return func(o *Options) { o.Legend.Stacking = s }
}

// WithLegendAlignment sets how legend lines are aligned within the legend area.
func WithLegendAlignment(a legend.Alignment) Option {
	return func(o *Options) { o.Legend.Alignment = a }
}

// WithLegendMarker sets the glyph drawn before each legend caption.
func WithLegendMarker(marker string) Option {
	return func(o *Options) { o.Legend.Marker = marker }
}

// WithShowLegend shows or hides the legend.
func WithShowLegend(show bool) Option {
	return func(o *Options) { o.Legend.Visible = show }
}

// WithPercentages appends each slice's share to its legend caption.
func WithPercentages(show bool) Option {
	return func(o *Options) { o.Legend.ShowPercentages = show }
}

// WithPieGlyph sets the glyph that fills pie cells at Standard resolution.
func WithPieGlyph(glyph string) Option {
	return func(o *Options) { o.PieGlyph = glyph }
}

// WithAspect sets the cell height to width ratio used to keep the pie round.
func WithAspect(aspect float64) Option {
	return func(o *Options) { o.Aspect = aspect }
}

// WithBorder draws a frame of style s around the widget.
func WithBorder(s border.Style) Option {
	return func(o *Options) { o.Border = s }
}

// WithBorderColor sets the frame color.
func WithBorderColor(c grid.Color) Option {
	return func(o *Options) { o.BorderColor = c }
}

// WithTitle sets the title drawn at the top of the widget.
func WithTitle(t title.Title) Option {
	return func(o *Options) { o.Title = t }
}

// WithTitleColor sets the title color.
func WithTitleColor(c grid.Color) Option {
	return func(o *Options) { o.TitleColor = c }
}

// WithBackground fills the widget area with c before drawing.
func WithBackground(c grid.Color) Option {
	return func(o *Options) { o.Background = c }
}

// WithTextColor sets the legend caption color. nil uses each slice's color.
func WithTextColor(c grid.Color) Option {
	return func(o *Options) { o.TextColor = c }
}
