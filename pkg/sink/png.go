package sink

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/matzehuels/termpie/pkg/errors"
	"github.com/matzehuels/termpie/pkg/grid"
)

// Default cell box, matching basicfont.Face7x13.
const (
	DefaultCellWidth  = 7
	DefaultCellHeight = 13
)

// PNGOption configures PNG rendering via [RenderPNG].
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	cellW, cellH int
	scale        int
	fg, bg       color.Color
}

// WithCellSize sets the pixel box of one cell. Text glyphs are always drawn
// with the 7x13 face, so larger boxes leave margins around them.
func WithCellSize(w, h int) PNGOption {
	return func(r *pngRenderer) { r.cellW, r.cellH = w, h }
}

// WithScale enlarges the image by an integer factor (default 1).
func WithScale(n int) PNGOption {
	return func(r *pngRenderer) { r.scale = n }
}

// WithDefaultColors sets the colors used for cells without their own.
func WithDefaultColors(fg, bg color.Color) PNGOption {
	return func(r *pngRenderer) { r.fg, r.bg = fg, bg }
}

// RenderPNG draws buf as a PNG image.
//
// ASCII and Latin-1 glyphs are drawn with the 7x13 bitmap face. Braille
// glyphs are drawn as their dot pattern and box-drawing glyphs as lines. Any
// other glyph becomes a filled block inset in its cell.
func RenderPNG(buf *grid.Buffer, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{
		cellW: DefaultCellWidth,
		cellH: DefaultCellHeight,
		scale: 1,
		fg:    color.RGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff},
		bg:    color.Black,
	}
	for _, opt := range opts {
		opt(&r)
	}
	if r.cellW < 2 || r.cellH < 4 || r.scale < 1 {
		return nil, errors.New(errors.ErrCodeInvalidOption, "invalid PNG cell size %dx%d at scale %d", r.cellW, r.cellH, r.scale)
	}

	area := buf.Area()
	img := image.NewRGBA(image.Rect(0, 0, area.Width*r.cellW, area.Height*r.cellH))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.bg), image.Point{}, draw.Src)

	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			c := buf.Cell(x, y)
			box := image.Rect(0, 0, r.cellW, r.cellH).Add(image.Pt((x-area.X)*r.cellW, (y-area.Y)*r.cellH))
			if c.Bg != nil {
				draw.Draw(img, box, image.NewUniform(toRGBA(c.Bg, r.bg)), image.Point{}, draw.Src)
			}
			if c.IsBlank() {
				continue
			}
			r.drawGlyph(img, box, []rune(c.Glyph)[0], toRGBA(c.Fg, r.fg))
		}
	}

	var out image.Image = img
	if r.scale > 1 {
		b := img.Bounds()
		scaled := image.NewRGBA(image.Rect(0, 0, b.Dx()*r.scale, b.Dy()*r.scale))
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, b, draw.Src, nil)
		out = scaled
	}

	var w bytes.Buffer
	if err := png.Encode(&w, out); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode PNG")
	}
	return w.Bytes(), nil
}

func (r pngRenderer) drawGlyph(img draw.Image, box image.Rectangle, g rune, fg color.Color) {
	src := image.NewUniform(fg)
	switch {
	case g >= 0x2800 && g <= 0x28FF:
		drawBraille(img, box, uint8(g-0x2800), src)
	case boxArms[g] != arms{}:
		drawBox(img, box, boxArms[g], src)
	case inFace(g):
		d := &font.Drawer{
			Dst:  img,
			Src:  src,
			Face: basicfont.Face7x13,
			Dot:  fixed.P(box.Min.X+(box.Dx()-DefaultCellWidth)/2, box.Min.Y+(box.Dy()-DefaultCellHeight)/2+basicfont.Face7x13.Ascent),
		}
		d.DrawString(string(g))
	default:
		draw.Draw(img, box.Inset(1), src, image.Point{}, draw.Src)
	}
}

// inFace reports whether the 7x13 face has a glyph for g.
func inFace(g rune) bool {
	if g == 0xfffd {
		return false
	}
	for _, rng := range basicfont.Face7x13.Ranges {
		if g >= rng.Low && g < rng.High {
			return true
		}
	}
	return false
}

// braille dot bits, indexed by [row][column] within the cell.
var brailleDots = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

func drawBraille(img draw.Image, box image.Rectangle, mask uint8, src image.Image) {
	w, h := box.Dx()/2, box.Dy()/4
	for j := range brailleDots {
		for i, bit := range brailleDots[j] {
			if mask&bit == 0 {
				continue
			}
			dot := image.Rect(0, 0, w, h).Add(box.Min.Add(image.Pt(i*w, j*h)))
			draw.Draw(img, dot.Inset(min(w, h)/4), src, image.Point{}, draw.Src)
		}
	}
}

// arms lists which edges of the cell a box-drawing glyph connects to.
type arms struct{ up, down, left, right bool }

var boxArms = func() map[rune]arms {
	m := map[rune]arms{}
	for _, g := range "─━┄┅═" {
		m[g] = arms{left: true, right: true}
	}
	for _, g := range "│┃┊┇║" {
		m[g] = arms{up: true, down: true}
	}
	for _, g := range "┌╭╔┏" {
		m[g] = arms{down: true, right: true}
	}
	for _, g := range "┐╮╗┓" {
		m[g] = arms{down: true, left: true}
	}
	for _, g := range "└╰╚┗" {
		m[g] = arms{up: true, right: true}
	}
	for _, g := range "┘╯╝┛" {
		m[g] = arms{up: true, left: true}
	}
	return m
}()

func drawBox(img draw.Image, box image.Rectangle, a arms, src image.Image) {
	cx, cy := box.Min.X+box.Dx()/2, box.Min.Y+box.Dy()/2
	line := func(r image.Rectangle) { draw.Draw(img, r, src, image.Point{}, draw.Src) }
	if a.left {
		line(image.Rect(box.Min.X, cy, cx+1, cy+1))
	}
	if a.right {
		line(image.Rect(cx, cy, box.Max.X, cy+1))
	}
	if a.up {
		line(image.Rect(cx, box.Min.Y, cx+1, cy+1))
	}
	if a.down {
		line(image.Rect(cx, cy, cx+1, box.Max.Y))
	}
}

// toRGBA resolves a terminal color, falling back to def for nil.
//
// lipgloss resolves colors through the color profile of stdout, which is
// monochrome when writing to a file. Palette indices and hex values are
// therefore converted through the true-color profile instead.
func toRGBA(c grid.Color, def color.Color) color.Color {
	switch v := c.(type) {
	case nil, lipgloss.NoColor:
		return def
	case lipgloss.Color:
		return profileRGB(string(v), def)
	case lipgloss.ANSIColor:
		return profileRGB(strconv.Itoa(int(v)), def)
	}
	r, g, b, _ := c.RGBA()
	return color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: 0xffff}
}

func profileRGB(s string, def color.Color) color.Color {
	tc := termenv.TrueColor.Color(s)
	if tc == nil {
		return def
	}
	rgb := termenv.ConvertToRGB(tc)
	r, g, b, _ := rgb.RGBA()
	return color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: 0xffff}
}
