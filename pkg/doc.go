// Package pkg provides the core libraries for termpie terminal pie charts.
//
// # Overview
//
// Termpie draws a pie chart and its legend onto a grid of terminal cells. The
// pkg directory is organized into three areas:
//
//  1. Geometry and drawing: [pie], [raster], [legend], [border], [title],
//     [symbols] and the [grid] surface they draw on
//  2. Composition: [chart] lays out frame, title, legend and pie in one pass
//  3. Edges: [config] reads chart files, [sink] encodes finished grids as ANSI,
//     plain text, PNG or JSON, [errors] and [observability] serve both
//
// # Architecture
//
// The data flow of one render:
//
//	chart file / slices
//	         ↓
//	    [config] package (decode + validate)
//	         ↓
//	    [chart] package (frame, legend layout, pie rasterization)
//	         ↓
//	    [grid] Buffer
//	         ↓
//	    [sink] package (ANSI / plain / PNG / JSON)
//
// # Quick Start
//
//	import (
//	    "fmt"
//
//	    "github.com/charmbracelet/lipgloss"
//	    "github.com/matzehuels/termpie/pkg/chart"
//	    "github.com/matzehuels/termpie/pkg/grid"
//	    "github.com/matzehuels/termpie/pkg/pie"
//	    "github.com/matzehuels/termpie/pkg/sink"
//	)
//
//	c := chart.New([]pie.Slice{
//	    pie.NewSlice("Rust", 45, lipgloss.Color("1")),
//	    pie.NewSlice("Go", 30, lipgloss.Color("4")),
//	    pie.NewSlice("Python", 25, lipgloss.Color("2")),
//	}, chart.WithHighResolution(true))
//
//	buf := grid.NewBuffer(grid.NewRect(0, 0, 60, 20))
//	c.Render(buf, buf.Area())
//	fmt.Println(sink.RenderANSI(buf))
package pkg
