// Package raster fills a grid rectangle with a pie chart.
//
// The chart is a circle centered in the drawing area. Terminal cells are
// taller than they are wide, so vertical offsets are scaled by an aspect factor
// (cell height / cell width, [DefaultAspect] unless overridden) before distances
// and angles are computed; the circle then looks round rather than elliptical.
//
// # Resolutions
//
// [Standard] samples each cell once, at its center, and paints inside cells
// with a single configurable glyph in the owning slice's color.
//
// [HighDensity] samples each cell at eight sub-positions laid out as two
// columns by four rows. Every inside sub-position sets one dot of a braille
// pattern, so curves and slice edges are drawn at 2x4 the cell resolution.
// The cell takes the color of the slice owning most of its inside
// sub-positions, ties going to the lowest slice index.
//
// Cells with no inside sample are painted with the rasterizer's background
// cell. A zero-total chart therefore renders as background only.
//
// Rendering performs no allocation per cell.
package raster
