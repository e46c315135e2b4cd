// Package legend places a chart legend next to a pie chart.
//
// [Compute] measures every legend line before any space is reserved, so no
// label is ever truncated: it either reserves the exact footprint the lines
// need and hands the remainder to the chart, or it drops the legend entirely
// and leaves the chart the full area.
//
// # Position and stacking
//
// The legend sits on one of four sides ([Right], [Left], [Top], [Bottom]).
// [Vertical] stacking puts one entry per row; [Horizontal] stacking lays
// entries out in a row and wraps onto further rows when the row would exceed
// the available width.
//
// # Alignment
//
// [Start], [Center] and [End] position content along the cross axis: each line
// within the legend width for vertical stacking, each row within the legend
// width for horizontal stacking.
//
// # Line format
//
// A line reads "<marker> <label>" with an optional " (NN.N%)" suffix. Widths
// are measured in terminal cells.
package legend
