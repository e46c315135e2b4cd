// Package chart composes a complete pie chart widget onto a grid surface.
//
// A [Chart] is a slice list plus [Options]. Rendering it into an area runs, in
// order:
//
//  1. fill the area with the background
//  2. draw the border and title (package border, package title)
//  3. split what is left between legend and pie (package legend)
//  4. compute the slice intervals (package pie)
//  5. rasterize the pie into its share of the area (package raster)
//  6. draw the legend lines
//
// Every step is recomputed on each call. Render keeps no state between calls,
// so a Chart can be rendered once per animation frame with new values:
//
//	c := chart.New(slices,
//	    chart.WithResolution(raster.HighDensity),
//	    chart.WithLegendPosition(legend.Bottom),
//	    chart.WithBorder(border.Rounded),
//	)
//	buf := grid.NewBuffer(grid.Rect{Width: 60, Height: 20})
//	c.Render(buf, buf.Area())
//
// Degenerate input never fails: an empty area writes nothing, a zero total
// draws a background-only chart without legend, and a legend that does not fit
// is left out.
package chart
