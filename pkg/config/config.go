// Package config reads chart descriptions from TOML or JSON files.
//
// A chart file names the slices and any option that differs from the
// defaults:
//
//	title = "Languages"
//	border = "rounded"
//	resolution = "high"
//
//	[legend]
//	position = "bottom"
//	stacking = "horizontal"
//
//	[[slice]]
//	label = "Rust"
//	value = 45
//	color = "red"
//
// The JSON form uses the same keys with "slices" for the slice list.
package config

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/termpie/pkg/border"
	"github.com/matzehuels/termpie/pkg/chart"
	"github.com/matzehuels/termpie/pkg/errors"
	"github.com/matzehuels/termpie/pkg/legend"
	"github.com/matzehuels/termpie/pkg/pie"
	"github.com/matzehuels/termpie/pkg/raster"
	"github.com/matzehuels/termpie/pkg/symbols"
	"github.com/matzehuels/termpie/pkg/title"
)

// Format is a chart file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported chart file %q (use .toml or .json)", filepath.Base(path))
}

// =============================================================================
// File Types
// =============================================================================

// File is a decoded chart description. String fields hold names as written
// in the file; [File.ValidateAndSetDefaults] checks and normalizes them.
type File struct {
	Title         string `toml:"title" json:"title,omitempty"`
	TitleStyle    string `toml:"title_style" json:"title_style,omitempty"`
	TitleAlign    string `toml:"title_align" json:"title_align,omitempty"`
	TitlePosition string `toml:"title_position" json:"title_position,omitempty"`
	TitleColor    string `toml:"title_color" json:"title_color,omitempty"`

	Border      string `toml:"border" json:"border,omitempty"`
	BorderColor string `toml:"border_color" json:"border_color,omitempty"`

	Resolution string  `toml:"resolution" json:"resolution,omitempty"`
	Glyph      string  `toml:"glyph" json:"glyph,omitempty"`
	Aspect     float64 `toml:"aspect" json:"aspect,omitempty"`
	Background string  `toml:"background" json:"background,omitempty"`
	TextColor  string  `toml:"text_color" json:"text_color,omitempty"`

	Legend Legend  `toml:"legend" json:"legend"`
	Slices []Slice `toml:"slice" json:"slices"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Legend is the [legend] table of a chart file. Pointer fields distinguish
// "not set" from false.
type Legend struct {
	Visible         *bool  `toml:"visible" json:"visible,omitempty"`
	Position        string `toml:"position" json:"position,omitempty"`
	Stacking        string `toml:"stacking" json:"stacking,omitempty"`
	Alignment       string `toml:"alignment" json:"alignment,omitempty"`
	Marker          string `toml:"marker" json:"marker,omitempty"`
	ShowPercentages *bool  `toml:"show_percentages" json:"show_percentages,omitempty"`
}

// Slice is one [[slice]] entry.
type Slice struct {
	Label string  `toml:"label" json:"label"`
	Value float64 `toml:"value" json:"value"`
	Color string  `toml:"color" json:"color,omitempty"`
}

// =============================================================================
// Loading
// =============================================================================

// Load reads and validates the chart file at path.
func Load(path string) (*File, error) {
	f, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := f.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return f, nil
}

// Read decodes the chart file at path without validating it, so that callers
// can override fields first.
func Read(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "chart file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return Decode(bytes.NewReader(data), format)
}

// Decode reads a chart description in the given format. Unknown keys are
// rejected so that typos do not pass silently. The result is not validated.
func Decode(r io.Reader, format Format) (*File, error) {
	var f File
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&f)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode TOML chart")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown keys in chart: %s", strings.Join(keys, ", "))
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode JSON chart")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported chart format %q", format)
	}
	return &f, nil
}

// =============================================================================
// Validation
// =============================================================================

// Defaults applied by ValidateAndSetDefaults.
const (
	DefaultResolution = "standard"
	DefaultBorder     = "none"
)

// ValidateAndSetDefaults checks every field and fills in defaults. Names are
// normalized to their canonical spelling and symbol names are replaced by
// their glyphs.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (f *File) ValidateAndSetDefaults() error {
	if f.validated {
		return nil
	}

	if f.Resolution == "" {
		f.Resolution = DefaultResolution
	}
	res, ok := raster.ParseResolution(f.Resolution)
	if !ok {
		return errors.New(errors.ErrCodeInvalidOption, "invalid resolution %q (must be one of: standard, high)", f.Resolution)
	}
	f.Resolution = res.String()

	if f.Border == "" {
		f.Border = DefaultBorder
	}
	bs, ok := border.ParseStyle(f.Border)
	if !ok {
		return errors.New(errors.ErrCodeInvalidOption, "invalid border %q", f.Border)
	}
	f.Border = bs.String()

	if err := f.validateTitle(); err != nil {
		return err
	}
	if err := f.validateLegend(); err != nil {
		return err
	}

	if f.Glyph == "" {
		f.Glyph = raster.DefaultGlyph
	}
	f.Glyph = symbols.Resolve(symbols.PieGlyphs, f.Glyph)
	if err := errors.ValidateGlyph("glyph", f.Glyph); err != nil {
		return err
	}

	if f.Aspect == 0 {
		f.Aspect = raster.DefaultAspect
	}
	if f.Aspect < 0 || math.IsNaN(f.Aspect) || math.IsInf(f.Aspect, 0) {
		return errors.New(errors.ErrCodeInvalidOption, "aspect must be a positive number, got %v", f.Aspect)
	}

	for _, c := range []struct{ name, value string }{
		{"background", f.Background},
		{"text_color", f.TextColor},
		{"border_color", f.BorderColor},
		{"title_color", f.TitleColor},
	} {
		if _, err := ParseColor(c.value); err != nil {
			return errors.New(errors.ErrCodeInvalidColor, "%s: %s", c.name, errors.UserMessage(err))
		}
	}

	for i, s := range f.Slices {
		if err := validateSlice(s); err != nil {
			return errors.New(errors.GetCode(err), "slice %d: %s", i+1, errors.UserMessage(err))
		}
	}

	f.validated = true
	return nil
}

func (f *File) validateTitle() error {
	st, ok := title.ParseStyle(f.TitleStyle)
	if !ok {
		return errors.New(errors.ErrCodeInvalidOption, "invalid title_style %q", f.TitleStyle)
	}
	f.TitleStyle = st.String()

	al, ok := title.ParseAlignment(f.TitleAlign)
	if !ok {
		return errors.New(errors.ErrCodeInvalidOption, "invalid title_align %q (must be one of: start, center, end)", f.TitleAlign)
	}
	f.TitleAlign = al.String()

	pos, ok := title.ParsePosition(f.TitlePosition)
	if !ok {
		return errors.New(errors.ErrCodeInvalidOption, "invalid title_position %q (must be one of: top, bottom)", f.TitlePosition)
	}
	f.TitlePosition = pos.String()
	return nil
}

func (f *File) validateLegend() error {
	l := &f.Legend
	def := legend.DefaultConfig()

	if l.Visible == nil {
		l.Visible = &def.Visible
	}
	if l.ShowPercentages == nil {
		l.ShowPercentages = &def.ShowPercentages
	}

	if l.Position == "" {
		l.Position = def.Position.String()
	}
	pos, ok := legend.ParsePosition(l.Position)
	if !ok {
		return errors.New(errors.ErrCodeInvalidOption, "invalid legend position %q (must be one of: right, left, top, bottom)", l.Position)
	}
	l.Position = pos.String()

	if l.Stacking == "" {
		l.Stacking = def.Stacking.String()
	}
	st, ok := legend.ParseStacking(l.Stacking)
	if !ok {
		return errors.New(errors.ErrCodeInvalidOption, "invalid legend stacking %q (must be one of: vertical, horizontal)", l.Stacking)
	}
	l.Stacking = st.String()

	if l.Alignment == "" {
		l.Alignment = def.Alignment.String()
	}
	al, ok := legend.ParseAlignment(l.Alignment)
	if !ok {
		return errors.New(errors.ErrCodeInvalidOption, "invalid legend alignment %q (must be one of: start, center, end)", l.Alignment)
	}
	l.Alignment = al.String()

	if l.Marker == "" {
		l.Marker = def.Marker
	}
	l.Marker = symbols.Resolve(symbols.Markers, l.Marker)
	return errors.ValidateGlyph("legend marker", l.Marker)
}

func validateSlice(s Slice) error {
	if err := errors.ValidateLabel(s.Label); err != nil {
		return err
	}
	if err := errors.ValidateValue(s.Label, s.Value); err != nil {
		return err
	}
	if _, err := ParseColor(s.Color); err != nil {
		return err
	}
	return nil
}

// =============================================================================
// Building
// =============================================================================

// PieSlices converts the slice entries. Slices without a color take the next
// palette color.
func (f *File) PieSlices() ([]pie.Slice, error) {
	out := make([]pie.Slice, len(f.Slices))
	for i, s := range f.Slices {
		c, err := ParseColor(s.Color)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidColor, "slice %q: %s", s.Label, errors.UserMessage(err))
		}
		if c == nil {
			c = PaletteColor(i)
		}
		out[i] = pie.NewSlice(s.Label, s.Value, c)
	}
	return out, nil
}

// Options converts the file into chart options, validating it first.
func (f *File) Options() ([]chart.Option, error) {
	if err := f.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	res, _ := raster.ParseResolution(f.Resolution)
	bs, _ := border.ParseStyle(f.Border)
	tStyle, _ := title.ParseStyle(f.TitleStyle)
	tAlign, _ := title.ParseAlignment(f.TitleAlign)
	tPos, _ := title.ParsePosition(f.TitlePosition)
	pos, _ := legend.ParsePosition(f.Legend.Position)
	st, _ := legend.ParseStacking(f.Legend.Stacking)
	al, _ := legend.ParseAlignment(f.Legend.Alignment)

	// Colors were checked by ValidateAndSetDefaults.
	bg, _ := ParseColor(f.Background)
	text, _ := ParseColor(f.TextColor)
	borderColor, _ := ParseColor(f.BorderColor)
	titleColor, _ := ParseColor(f.TitleColor)

	return []chart.Option{
		chart.WithResolution(res),
		chart.WithPieGlyph(f.Glyph),
		chart.WithAspect(f.Aspect),
		chart.WithBorder(bs),
		chart.WithBorderColor(borderColor),
		chart.WithTitle(title.Title{Text: f.Title, Style: tStyle, Alignment: tAlign, Position: tPos}),
		chart.WithTitleColor(titleColor),
		chart.WithBackground(bg),
		chart.WithTextColor(text),
		chart.WithLegend(legend.Config{
			Position:        pos,
			Stacking:        st,
			Alignment:       al,
			ShowPercentages: *f.Legend.ShowPercentages,
			Marker:          f.Legend.Marker,
			Visible:         *f.Legend.Visible,
		}),
	}, nil
}

// Chart builds the chart the file describes. Extra options are applied after
// the file's own.
func (f *File) Chart(extra ...chart.Option) (*chart.Chart, error) {
	opts, err := f.Options()
	if err != nil {
		return nil, err
	}
	slices, err := f.PieSlices()
	if err != nil {
		return nil, err
	}
	return chart.New(slices, append(opts, extra...)...), nil
}
