package chart

import (
	"context"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/termpie/pkg/border"
	"github.com/matzehuels/termpie/pkg/grid"
	"github.com/matzehuels/termpie/pkg/legend"
	"github.com/matzehuels/termpie/pkg/observability"
	"github.com/matzehuels/termpie/pkg/pie"
	"github.com/matzehuels/termpie/pkg/raster"
	"github.com/matzehuels/termpie/pkg/title"
)

var (
	red   = lipgloss.Color("1")
	blue  = lipgloss.Color("4")
	green = lipgloss.Color("2")
)

func languages() []pie.Slice {
	return []pie.Slice{
		pie.NewSlice("Rust", 45, red),
		pie.NewSlice("Go", 30, blue),
		pie.NewSlice("Python", 25, green),
	}
}

func TestRenderEndToEnd(t *testing.T) {
	full := grid.Rect{Width: 40, Height: 20}
	buf := grid.NewBuffer(full)
	c := New(languages())
	res := c.Render(buf, full)

	wantBounds := []float64{0, 162, 270, 360}
	got := res.Intervals.Boundaries()
	if len(got) != len(wantBounds) {
		t.Fatalf("Boundaries() = %v, want %v", got, wantBounds)
	}
	for i := range got {
		if math.Abs(got[i]-wantBounds[i]) > 1e-9 {
			t.Errorf("Boundaries()[%d] = %v, want %v", i, got[i], wantBounds[i])
		}
	}

	l := res.Layout
	if l.Legend.Width < 15 {
		t.Errorf("legend width = %d, want >= 15", l.Legend.Width)
	}
	if full.Width-l.Chart.Width != l.Legend.Width+legend.Gap {
		t.Errorf("chart width = %d, want %d - %d - %d", l.Chart.Width, full.Width, l.Legend.Width, legend.Gap)
	}
	if res.LegendOmitted {
		t.Error("LegendOmitted = true")
	}

	captions := []string{"Rust (45.0%)", "Go (30.0%)", "Python (25.0%)"}
	for i, e := range l.Entries {
		row := buf.Row(e.Y)
		text := strings.TrimRight(row[strings.Index(row, "■"):], " ")
		if want := "■ " + captions[i]; text != want {
			t.Errorf("legend line %d = %q, want %q", i, text, want)
		}
		if e.X != l.Legend.X {
			t.Errorf("legend line %d at x=%d, want left-aligned at %d", i, e.X, l.Legend.X)
		}
	}

	cases := []struct {
		x, y int
		want grid.Color
	}{
		{17, 9, red},
		{5, 12, blue},
		{5, 6, green},
	}
	for _, tc := range cases {
		cell := buf.Cell(tc.x, tc.y)
		if cell.Glyph != raster.DefaultGlyph || cell.Fg != tc.want {
			t.Errorf("cell(%d,%d) = %q %v, want %q %v", tc.x, tc.y, cell.Glyph, cell.Fg, raster.DefaultGlyph, tc.want)
		}
	}
	if n := buf.Count(func(c grid.Cell) bool { return c.Glyph == raster.DefaultGlyph }); n != res.Coverage.Cells {
		t.Errorf("%d pie cells on the grid, Coverage.Cells = %d", n, res.Coverage.Cells)
	}
}

func TestRenderIdempotent(t *testing.T) {
	area := grid.Rect{Width: 50, Height: 16}
	c := New(languages(),
		WithResolution(raster.HighDensity),
		WithLegendPosition(legend.Bottom),
		WithLegendStacking(legend.Horizontal),
		WithLegendAlignment(legend.Center),
		WithBorder(border.Rounded),
		WithTitle(title.Title{Text: "Languages", Style: title.Bold}),
	)

	a, b := grid.NewBuffer(area), grid.NewBuffer(area)
	ra := c.Render(a, area)
	rb := c.Render(b, area)
	if !reflect.DeepEqual(ra, rb) {
		t.Errorf("Render() results differ:\n%+v\n%+v", ra, rb)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("Render() drew different grids for identical input")
	}
}

func TestRenderStaysInsideArea(t *testing.T) {
	const sentinel = "x"
	whole := grid.Rect{Width: 30, Height: 14}
	area := grid.Rect{X: 4, Y: 3, Width: 20, Height: 8}

	buf := grid.NewBuffer(whole)
	grid.Fill(buf, whole, grid.Cell{Glyph: sentinel})
	New(languages(), WithBorder(border.Thick), WithTitle(title.New("A title longer than the frame"))).Render(buf, area)

	for y := whole.Y; y < whole.Bottom(); y++ {
		for x := whole.X; x < whole.Right(); x++ {
			inside := area.Contains(x, y)
			isSentinel := buf.Cell(x, y).Glyph == sentinel
			if inside == isSentinel {
				t.Fatalf("cell(%d,%d) inside=%v sentinel=%v", x, y, inside, isSentinel)
			}
		}
	}
}

func TestRenderZeroTotal(t *testing.T) {
	area := grid.Rect{Width: 30, Height: 10}
	buf := grid.NewBuffer(area)
	res := New([]pie.Slice{pie.NewSlice("A", 0, red), pie.NewSlice("B", 0, blue)}).Render(buf, area)

	if !res.Intervals.Empty() || res.Layout.Visible() || res.LegendOmitted {
		t.Errorf("Render() = %+v, want empty intervals and no legend", res)
	}
	if res.Layout.Chart != area {
		t.Errorf("chart area = %v, want %v", res.Layout.Chart, area)
	}
	if n := buf.Count(func(c grid.Cell) bool { return !c.IsBlank() }); n != 0 {
		t.Errorf("%d non-blank cells, want 0", n)
	}
}

func TestRenderEmptyArea(t *testing.T) {
	buf := grid.NewBuffer(grid.Rect{Width: 5, Height: 5})
	res := New(languages()).Render(buf, grid.Rect{Width: 0, Height: 5})
	if res.Coverage.Cells != 0 || res.Layout.Visible() {
		t.Errorf("Render(empty) = %+v", res)
	}
}

func TestRenderLegendOmitted(t *testing.T) {
	area := grid.Rect{Width: 8, Height: 4}
	res := New(languages()).Render(grid.NewBuffer(area), area)
	if !res.LegendOmitted {
		t.Error("LegendOmitted = false, want true")
	}
	if res.Layout.Chart != area {
		t.Errorf("chart area = %v, want %v", res.Layout.Chart, area)
	}

	res = New(languages(), WithShowLegend(false)).Render(grid.NewBuffer(area), area)
	if res.LegendOmitted {
		t.Error("hidden legend reported as omitted")
	}
}

func TestRenderFrameAndTitle(t *testing.T) {
	area := grid.Rect{Width: 40, Height: 12}

	tests := []struct {
		name      string
		opts      []Option
		titleRow  int
		wantInner grid.Rect
	}{
		{
			name:      "border with top title",
			opts:      []Option{WithBorder(border.Standard), WithTitle(title.New("Pie"))},
			titleRow:  0,
			wantInner: grid.Rect{X: 1, Y: 1, Width: 38, Height: 10},
		},
		{
			name:      "border with bottom title",
			opts:      []Option{WithBorder(border.Standard), WithTitle(title.Title{Text: "Pie", Position: title.Bottom})},
			titleRow:  11,
			wantInner: grid.Rect{X: 1, Y: 1, Width: 38, Height: 10},
		},
		{
			name:      "title without border",
			opts:      []Option{WithTitle(title.New("Pie"))},
			titleRow:  0,
			wantInner: grid.Rect{X: 0, Y: 1, Width: 40, Height: 11},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := grid.NewBuffer(area)
			res := New(languages(), tt.opts...).Render(buf, area)
			if res.Inner != tt.wantInner {
				t.Errorf("Inner = %v, want %v", res.Inner, tt.wantInner)
			}
			if !strings.Contains(buf.Row(tt.titleRow), "Pie") {
				t.Errorf("row %d = %q, want title", tt.titleRow, buf.Row(tt.titleRow))
			}
			if res.Layout.Legend.Intersect(res.Inner) != res.Layout.Legend {
				t.Errorf("legend %v outside inner %v", res.Layout.Legend, res.Inner)
			}
		})
	}
}

func TestRenderBackground(t *testing.T) {
	area := grid.Rect{Width: 30, Height: 10}
	bg := lipgloss.Color("#101010")
	buf := grid.NewBuffer(area)
	New(languages(), WithBackground(bg)).Render(buf, area)

	if n := buf.Count(func(c grid.Cell) bool { return c.Bg != bg }); n != 0 {
		t.Errorf("%d cells without background", n)
	}
}

func TestRenderHighDensity(t *testing.T) {
	area := grid.Rect{Width: 40, Height: 20}
	buf := grid.NewBuffer(area)
	res := New(languages(), WithHighResolution(true)).Render(buf, area)

	braille := buf.Count(func(c grid.Cell) bool {
		r := []rune(c.Glyph)
		return len(r) == 1 && r[0] >= 0x2800 && r[0] <= 0x28FF
	})
	if braille == 0 || braille != res.Coverage.Cells {
		t.Errorf("%d braille cells, Coverage.Cells = %d", braille, res.Coverage.Cells)
	}
	if res.Coverage.Samples < res.Coverage.Cells {
		t.Errorf("Coverage = %+v, want at least one sample per cell", res.Coverage)
	}
}

func TestChartIsImmutable(t *testing.T) {
	in := languages()
	c := New(in)
	in[0].Value = 0

	if c.Slices()[0].Value != 45 {
		t.Error("New() did not copy slices")
	}
	d := c.With(WithPercentages(false))
	if !c.Options().Legend.ShowPercentages || d.Options().Legend.ShowPercentages {
		t.Error("With() modified the original options")
	}
	e := c.WithSlices([]pie.Slice{pie.NewSlice("X", 1, nil)})
	if len(c.Slices()) != 3 || len(e.Slices()) != 1 {
		t.Error("WithSlices() modified the original slices")
	}
}

type recordingHooks struct {
	observability.NoopRenderHooks
	starts int
	stats  []observability.RenderStats
}

func (h *recordingHooks) OnRenderStart(context.Context, int, int, int) { h.starts++ }
func (h *recordingHooks) OnRenderComplete(_ context.Context, s observability.RenderStats) {
	h.stats = append(h.stats, s)
}

func TestRenderHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetRenderHooks(hooks)
	defer observability.Reset()

	area := grid.Rect{Width: 40, Height: 20}
	res := New(languages()).Render(grid.NewBuffer(area), area)

	if hooks.starts != 1 || len(hooks.stats) != 1 {
		t.Fatalf("hooks called %d/%d times, want 1/1", hooks.starts, len(hooks.stats))
	}
	s := hooks.stats[0]
	if s.Width != 40 || s.Height != 20 || s.Slices != 3 || s.LegendEntries != 3 || s.ChartCells != res.Coverage.Cells {
		t.Errorf("RenderStats = %+v", s)
	}
	if s.Resolution != "standard" {
		t.Errorf("Resolution = %q, want standard", s.Resolution)
	}
}
