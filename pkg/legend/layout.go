package legend

import (
	"github.com/matzehuels/termpie/pkg/grid"
	"github.com/matzehuels/termpie/pkg/pie"
)

const (
	// Gap is the number of blank cells between legend and chart.
	Gap = 1

	// EntrySpacing is the number of blank cells between entries of a
	// horizontal row.
	EntrySpacing = 2

	// MinChartWidth and MinChartHeight are the smallest chart area the legend
	// may leave behind. A legend that would shrink the chart below this is
	// not drawn.
	MinChartWidth  = 3
	MinChartHeight = 3
)

// Entry is a legend line placed on the grid. (X, Y) is its first cell.
type Entry struct {
	Line
	X, Y int
}

// Layout is the result of splitting an area between legend and chart.
type Layout struct {
	// Legend is the reserved legend rectangle; empty when the legend is not
	// drawn.
	Legend grid.Rect
	// Chart is what remains for the pie.
	Chart grid.Rect
	// Entries lists the placed lines in slice order.
	Entries []Entry
}

// Visible reports whether any legend line is drawn.
func (l Layout) Visible() bool { return len(l.Entries) > 0 }

// Footprint is the measured size of a set of legend lines.
type Footprint struct {
	Width, Height int
	// Rows holds the line indices of each row, top to bottom.
	Rows [][]int
	// RowWidths holds the width of each row.
	RowWidths []int
}

// Measure computes the footprint of lines. For Horizontal stacking, rows wrap
// before exceeding capacity cells; ok is false when a single line is wider
// than capacity. Vertical stacking ignores capacity.
func Measure(lines []Line, stacking Stacking, capacity int) (fp Footprint, ok bool) {
	if stacking == Vertical {
		for i, l := range lines {
			w := l.Width()
			fp.Rows = append(fp.Rows, []int{i})
			fp.RowWidths = append(fp.RowWidths, w)
			fp.Width = max(fp.Width, w)
		}
		fp.Height = len(fp.Rows)
		return fp, true
	}

	var row []int
	rowWidth := 0
	flush := func() {
		if len(row) == 0 {
			return
		}
		fp.Rows = append(fp.Rows, row)
		fp.RowWidths = append(fp.RowWidths, rowWidth)
		fp.Width = max(fp.Width, rowWidth)
		row, rowWidth = nil, 0
	}
	for i, l := range lines {
		w := l.Width()
		if w > capacity {
			return Footprint{}, false
		}
		next := w
		if len(row) > 0 {
			next = rowWidth + EntrySpacing + w
		}
		if next > capacity {
			flush()
			next = w
		}
		row = append(row, i)
		rowWidth = next
	}
	flush()
	fp.Height = len(fp.Rows)
	return fp, true
}

// Compute splits full between legend and chart and places every legend line.
//
// The legend is skipped, and the chart gets all of full, when cfg.Visible is
// false, there are no slices, the total is zero, or the footprint would leave
// the chart smaller than MinChartWidth x MinChartHeight.
func Compute(full grid.Rect, slices []pie.Slice, cfg Config) Layout {
	none := Layout{Chart: full, Legend: grid.Rect{X: full.X, Y: full.Y}}
	if !cfg.Visible || len(slices) == 0 || full.IsEmpty() || pie.Total(slices) <= 0 {
		return none
	}

	lines := Lines(slices, cfg)
	capacity := full.Width
	if cfg.Position.horizontal() {
		capacity = full.Width - Gap - MinChartWidth
	}
	fp, ok := Measure(lines, cfg.Stacking, capacity)
	if !ok || fp.Height == 0 {
		return none
	}

	var legendArea, chartArea grid.Rect
	if cfg.Position.horizontal() {
		reserve := fp.Width + Gap
		if full.Width-reserve < MinChartWidth || full.Height < MinChartHeight || fp.Height > full.Height {
			return none
		}
		y := full.Y + (full.Height-fp.Height)/2
		if cfg.Position == Right {
			legendArea = grid.Rect{X: full.Right() - fp.Width, Y: y, Width: fp.Width, Height: fp.Height}
			chartArea = grid.Rect{X: full.X, Y: full.Y, Width: full.Width - reserve, Height: full.Height}
		} else {
			legendArea = grid.Rect{X: full.X, Y: y, Width: fp.Width, Height: fp.Height}
			chartArea = grid.Rect{X: full.X + reserve, Y: full.Y, Width: full.Width - reserve, Height: full.Height}
		}
	} else {
		reserve := fp.Height + Gap
		if full.Height-reserve < MinChartHeight || full.Width < MinChartWidth || fp.Width > full.Width {
			return none
		}
		if cfg.Position == Top {
			legendArea = grid.Rect{X: full.X, Y: full.Y, Width: full.Width, Height: fp.Height}
			chartArea = grid.Rect{X: full.X, Y: full.Y + reserve, Width: full.Width, Height: full.Height - reserve}
		} else {
			legendArea = grid.Rect{X: full.X, Y: full.Bottom() - fp.Height, Width: full.Width, Height: fp.Height}
			chartArea = grid.Rect{X: full.X, Y: full.Y, Width: full.Width, Height: full.Height - reserve}
		}
	}

	return Layout{
		Legend:  legendArea,
		Chart:   chartArea,
		Entries: place(lines, fp, legendArea, cfg),
	}
}

// place positions each line inside area according to the stacking and
// alignment.
func place(lines []Line, fp Footprint, area grid.Rect, cfg Config) []Entry {
	entries := make([]Entry, len(lines))
	for r, row := range fp.Rows {
		y := area.Y + r
		if cfg.Stacking == Vertical {
			i := row[0]
			entries[i] = Entry{Line: lines[i], X: area.X + cfg.Alignment.offset(area.Width, fp.RowWidths[r]), Y: y}
			continue
		}
		x := area.X + cfg.Alignment.offset(area.Width, fp.RowWidths[r])
		for _, i := range row {
			entries[i] = Entry{Line: lines[i], X: x, Y: y}
			x += lines[i].Width() + EntrySpacing
		}
	}
	return entries
}

// Draw writes the placed entries to s: the marker in the slice color, the
// caption in fg. Drawing never crosses the legend rectangle.
func (l Layout) Draw(s grid.Surface, fg, bg grid.Color) {
	for _, e := range l.Entries {
		limit := l.Legend.Right()
		x := grid.SetString(s, e.X, e.Y, limit, e.Marker, e.Color, bg)
		x = grid.SetString(s, x, e.Y, limit, " ", fg, bg)
		captionFg := fg
		if captionFg == nil {
			captionFg = e.Color
		}
		grid.SetString(s, x, e.Y, limit, e.Caption(), captionFg, bg)
	}
}
