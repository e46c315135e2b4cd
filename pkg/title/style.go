package title

import "strings"

// Style is a Unicode letterform applied to ASCII letters and digits. Runes
// outside A-Z, a-z and 0-9 are left as they are.
type Style int

const (
	Normal Style = iota
	Bold
	Italic
	BoldItalic
	Script
	BoldScript
	SansSerif
	BoldSansSerif
	ItalicSansSerif
	Monospace
)

// Styles lists every style in declaration order.
var Styles = []Style{
	Normal, Bold, Italic, BoldItalic, Script, BoldScript,
	SansSerif, BoldSansSerif, ItalicSansSerif, Monospace,
}

// alphabet holds the first code point of each styled range. A zero digit base
// means the style has no digits.
type alphabet struct {
	name                string
	upper, lower, digit rune
}

var alphabets = [...]alphabet{
	Normal:          {name: "normal"},
	Bold:            {"bold", 0x1D400, 0x1D41A, 0x1D7CE},
	Italic:          {"italic", 0x1D434, 0x1D44E, 0},
	BoldItalic:      {"bold-italic", 0x1D468, 0x1D482, 0},
	Script:          {"script", 0x1D49C, 0x1D4B6, 0},
	BoldScript:      {"bold-script", 0x1D4D0, 0x1D4EA, 0},
	SansSerif:       {"sans-serif", 0x1D5A0, 0x1D5BA, 0x1D7E2},
	BoldSansSerif:   {"bold-sans-serif", 0x1D5D4, 0x1D5EE, 0x1D7EC},
	ItalicSansSerif: {"italic-sans-serif", 0x1D608, 0x1D622, 0},
	Monospace:       {"monospace", 0x1D670, 0x1D68A, 0x1D7F6},
}

// holes are letters whose code point in the mathematical block is reserved
// because the glyph was already encoded in Letterlike Symbols.
var holes = map[Style]map[rune]rune{
	Italic: {'h': 'ℎ'},
	Script: {
		'B': 'ℬ', 'E': 'ℰ', 'F': 'ℱ', 'H': 'ℋ', 'I': 'ℐ', 'L': 'ℒ', 'M': 'ℳ', 'R': 'ℛ',
		'e': 'ℯ', 'g': 'ℊ', 'o': 'ℴ',
	},
}

func (s Style) valid() bool { return s >= Normal && s <= Monospace }

func (s Style) String() string {
	if !s.valid() {
		return "normal"
	}
	return alphabets[s].name
}

// ParseStyle parses a style name as returned by [Style.String]. Matching
// ignores case and treats '_' and ' ' like '-'.
func ParseStyle(name string) (Style, bool) {
	name = strings.NewReplacer("_", "-", " ", "-").Replace(strings.ToLower(strings.TrimSpace(name)))
	if name == "" {
		return Normal, true
	}
	for _, s := range Styles {
		if alphabets[s].name == name {
			return s, true
		}
	}
	return Normal, false
}

// Apply returns text with letters and digits mapped to the style.
func (s Style) Apply(text string) string {
	if s == Normal || !s.valid() {
		return text
	}
	a := alphabets[s]
	var sb strings.Builder
	sb.Grow(len(text) * 4)
	for _, r := range text {
		sb.WriteRune(s.mapRune(a, r))
	}
	return sb.String()
}

func (s Style) mapRune(a alphabet, r rune) rune {
	if h, ok := holes[s][r]; ok {
		return h
	}
	switch {
	case r >= 'A' && r <= 'Z':
		return a.upper + r - 'A'
	case r >= 'a' && r <= 'z':
		return a.lower + r - 'a'
	case r >= '0' && r <= '9' && a.digit != 0:
		return a.digit + r - '0'
	}
	return r
}
