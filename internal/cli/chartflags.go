package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/termpie/pkg/chart"
	"github.com/matzehuels/termpie/pkg/config"
	"github.com/matzehuels/termpie/pkg/errors"
)

// chartFlags holds the flags that override a chart file. They are shared by
// the render and view commands.
type chartFlags struct {
	slices       []string
	title        string
	titleStyle   string
	border       string
	glyph        string
	marker       string
	legendPos    string
	legendLayout string
	legendAlign  string
	background   string
	highRes      bool
	noLegend     bool
	noPercent    bool
}

func (f *chartFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringArrayVarP(&f.slices, "slice", "s", nil, "slice as label=value[:color] (repeatable, replaces the file's slices)")
	fl.StringVar(&f.title, "title", "", "chart title")
	fl.StringVar(&f.titleStyle, "title-style", "", "title style: bold, italic, script, monospace, ...")
	fl.StringVar(&f.border, "border", "", "border style: none, standard, rounded, dashed, double, thick, ...")
	fl.StringVar(&f.glyph, "glyph", "", "pie glyph name or literal glyph (see 'termpie symbols')")
	fl.StringVar(&f.marker, "marker", "", "legend marker name or literal glyph")
	fl.StringVar(&f.legendPos, "legend-position", "", "legend position: right, left, top, bottom")
	fl.StringVar(&f.legendLayout, "legend-layout", "", "legend stacking: vertical, horizontal")
	fl.StringVar(&f.legendAlign, "legend-align", "", "legend alignment: start, center, end")
	fl.StringVar(&f.background, "background", "", "background color: name, 0-255 or #rrggbb")
	fl.BoolVar(&f.highRes, "high-res", false, "draw the pie with braille sub-cell resolution")
	fl.BoolVar(&f.noLegend, "no-legend", false, "hide the legend")
	fl.BoolVar(&f.noPercent, "no-percent", false, "hide percentages in the legend")
}

// loadChart reads the chart file at path (if any), applies the flags that
// were set on cmd and builds the chart.
func (f *chartFlags) loadChart(cmd *cobra.Command, path string) (*chart.Chart, error) {
	file, err := f.loadFile(cmd, path)
	if err != nil {
		return nil, err
	}
	return file.Chart()
}

func (f *chartFlags) loadFile(cmd *cobra.Command, path string) (*config.File, error) {
	file := &config.File{}
	if path != "" {
		var err error
		if file, err = config.Read(path); err != nil {
			return nil, err
		}
	}

	if len(f.slices) > 0 {
		slices := make([]config.Slice, len(f.slices))
		for i, s := range f.slices {
			sl, err := parseSliceFlag(s)
			if err != nil {
				return nil, err
			}
			slices[i] = sl
		}
		file.Slices = slices
	}
	if len(file.Slices) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no slices: pass a chart file or --slice label=value")
	}

	f.apply(cmd, file)
	if err := file.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return file, nil
}

// apply copies the flags that were set on cmd into file. Values are checked
// later by ValidateAndSetDefaults, together with the file's own.
func (f *chartFlags) apply(cmd *cobra.Command, file *config.File) {
	changed := cmd.Flags().Changed
	set := func(name string, dst *string, v string) {
		if changed(name) {
			*dst = v
		}
	}
	set("title", &file.Title, f.title)
	set("title-style", &file.TitleStyle, f.titleStyle)
	set("border", &file.Border, f.border)
	set("glyph", &file.Glyph, f.glyph)
	set("marker", &file.Legend.Marker, f.marker)
	set("legend-position", &file.Legend.Position, f.legendPos)
	set("legend-layout", &file.Legend.Stacking, f.legendLayout)
	set("legend-align", &file.Legend.Alignment, f.legendAlign)
	set("background", &file.Background, f.background)

	if changed("high-res") {
		file.Resolution = "standard"
		if f.highRes {
			file.Resolution = "high"
		}
	}
	if changed("no-legend") {
		visible := !f.noLegend
		file.Legend.Visible = &visible
	}
	if changed("no-percent") {
		show := !f.noPercent
		file.Legend.ShowPercentages = &show
	}
}

// parseSliceFlag parses "label=value[:color]". The label may itself contain
// '=', so the value starts after the last one.
func parseSliceFlag(s string) (config.Slice, error) {
	i := strings.LastIndex(s, "=")
	if i < 0 {
		return config.Slice{}, errors.New(errors.ErrCodeInvalidSlice, "invalid slice %q (want label=value[:color])", s)
	}
	label, rest := s[:i], s[i+1:]

	value, color, _ := strings.Cut(rest, ":")
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return config.Slice{}, errors.New(errors.ErrCodeInvalidSlice, "invalid value %q for slice %q", value, label)
	}
	return config.Slice{Label: label, Value: v, Color: color}, nil
}
