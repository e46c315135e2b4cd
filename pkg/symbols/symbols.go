// Package symbols lists the glyphs a chart can be drawn with: pie fill
// glyphs for the standard resolution and markers for legend entries.
//
// Both tables are read-only. Names are lower-case and hyphenated so they can
// be used directly in chart files and on the command line:
//
//	glyph, ok := symbols.Lookup(symbols.PieGlyphs, "star")
package symbols

import (
	"sort"
	"strings"
)

// =============================================================================
// Pie glyphs
// =============================================================================

// Pie fill glyphs.
const (
	Pie              = "●"
	PieBlock         = "█"
	PieShade         = "▒"
	PieLight         = "░"
	PieDark          = "▓"
	PieCircle        = "◉"
	PieSquare        = "■"
	PieDiamond       = "◆"
	PieSmallCircle   = "•"
	PieWhiteCircle   = "○"
	PieDoubleCircle  = "◎"
	PieSmallSquare   = "▪"
	PieWhiteSquare   = "□"
	PieWhiteDiamond  = "◇"
	PieStar          = "★"
	PieWhiteStar     = "☆"
	PieTriangleUp    = "▲"
	PieTriangleDown  = "▼"
	PieTriangleRight = "▶"
	PieTriangleLeft  = "◀"
	PiePlus          = "✚"
	PieCross         = "✖"
	PieHeart         = "♥"
	PieWhiteHeart    = "♡"
	PieSpade         = "♠"
	PieClub          = "♣"
	PieDot           = "·"
	PieHexagon       = "⬢"
	PieSquareBox     = "▣"
	PieAsterism      = "※"
	PieBar           = "▰"
)

// =============================================================================
// Legend markers
// =============================================================================

// Legend markers.
const (
	Marker            = "■"
	MarkerCircle      = "●"
	MarkerSquare      = "▪"
	MarkerArrow       = "▶"
	MarkerDiamond     = "◆"
	MarkerStar        = "★"
	MarkerWhiteStar   = "☆"
	MarkerSmallCircle = "•"
	MarkerWhiteCircle = "○"
	MarkerTriangle    = "▲"
	MarkerHeart       = "♥"
	MarkerWhiteHeart  = "♡"
	MarkerPlus        = "✚"
	MarkerCross       = "✖"
	MarkerCheck       = "✓"
	MarkerRightArrow  = "→"
	MarkerDoubleRight = "»"
	MarkerDash        = "–"
	MarkerDot         = "·"
	MarkerHexagon     = "⬡"
	MarkerBullseye    = "◉"
	MarkerSquareBox   = "▢"
	MarkerAsterism    = "⁂"
	MarkerBar         = "▱"
)

// Table maps symbol names to glyphs.
type Table map[string]string

// PieGlyphs names every pie fill glyph. "default" is [Pie].
var PieGlyphs = Table{
	"default":        Pie,
	"block":          PieBlock,
	"shade":          PieShade,
	"light":          PieLight,
	"dark":           PieDark,
	"circle":         PieCircle,
	"square":         PieSquare,
	"diamond":        PieDiamond,
	"small-circle":   PieSmallCircle,
	"white-circle":   PieWhiteCircle,
	"double-circle":  PieDoubleCircle,
	"small-square":   PieSmallSquare,
	"white-square":   PieWhiteSquare,
	"white-diamond":  PieWhiteDiamond,
	"star":           PieStar,
	"white-star":     PieWhiteStar,
	"triangle-up":    PieTriangleUp,
	"triangle-down":  PieTriangleDown,
	"triangle-right": PieTriangleRight,
	"triangle-left":  PieTriangleLeft,
	"plus":           PiePlus,
	"cross":          PieCross,
	"heart":          PieHeart,
	"white-heart":    PieWhiteHeart,
	"spade":          PieSpade,
	"club":           PieClub,
	"dot":            PieDot,
	"hexagon":        PieHexagon,
	"square-box":     PieSquareBox,
	"asterism":       PieAsterism,
	"bar":            PieBar,
}

// Markers names every legend marker. "default" is [Marker].
var Markers = Table{
	"default":      Marker,
	"circle":       MarkerCircle,
	"square":       MarkerSquare,
	"arrow":        MarkerArrow,
	"diamond":      MarkerDiamond,
	"star":         MarkerStar,
	"white-star":   MarkerWhiteStar,
	"small-circle": MarkerSmallCircle,
	"white-circle": MarkerWhiteCircle,
	"triangle":     MarkerTriangle,
	"heart":        MarkerHeart,
	"white-heart":  MarkerWhiteHeart,
	"plus":         MarkerPlus,
	"cross":        MarkerCross,
	"check":        MarkerCheck,
	"right-arrow":  MarkerRightArrow,
	"double-right": MarkerDoubleRight,
	"dash":         MarkerDash,
	"dot":          MarkerDot,
	"hexagon":      MarkerHexagon,
	"bullseye":     MarkerBullseye,
	"square-box":   MarkerSquareBox,
	"asterism":     MarkerAsterism,
	"bar":          MarkerBar,
}

// Lookup returns the glyph registered under name. Matching ignores case,
// surrounding space, and treats '_' like '-'.
func Lookup(t Table, name string) (string, bool) {
	g, ok := t[normalize(name)]
	return g, ok
}

// Resolve returns the named glyph, or s itself when it is not a known name.
// This lets chart files say either glyph = "star" or glyph = "★".
func Resolve(t Table, s string) string {
	if g, ok := Lookup(t, s); ok {
		return g
	}
	return s
}

// Names returns the table's names in sorted order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
}
