package errors

import (
	"math"
	"unicode"
	"unicode/utf8"
)

// MaxLabelLength is the longest slice label accepted, in bytes.
const MaxLabelLength = 256

// ValidateLabel validates a slice label. Labels are drawn verbatim into the
// legend, so control characters (including newlines) are rejected.
//
// An empty label is allowed; it draws as a bare marker.
func ValidateLabel(label string) error {
	if len(label) > MaxLabelLength {
		return New(ErrCodeInvalidSlice, "label too long (max %d bytes)", MaxLabelLength)
	}
	if !utf8.ValidString(label) {
		return New(ErrCodeInvalidSlice, "label is not valid UTF-8")
	}
	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidSlice, "label %q contains control characters", label)
		}
	}
	return nil
}

// ValidateValue validates a slice value. NaN and infinities are rejected;
// negative values are accepted and drawn as zero.
func ValidateValue(label string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidSlice, "slice %q: value must be a finite number, got %v", label, v)
	}
	return nil
}

// ValidateGlyph validates a single-glyph option such as the pie glyph or the
// legend marker. It must be exactly one printable rune.
func ValidateGlyph(name, glyph string) error {
	if utf8.RuneCountInString(glyph) != 1 {
		return New(ErrCodeInvalidOption, "%s must be a single character, got %q", name, glyph)
	}
	r, _ := utf8.DecodeRuneInString(glyph)
	if r == utf8.RuneError || !unicode.IsPrint(r) || unicode.IsSpace(r) {
		return New(ErrCodeInvalidOption, "%s must be a printable character, got %q", name, glyph)
	}
	return nil
}

// ValidateDimensions validates an output size in cells.
func ValidateDimensions(width, height int) error {
	const maxCells = 1000
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidOption, "size must be positive, got %dx%d", width, height)
	}
	if width > maxCells || height > maxCells {
		return New(ErrCodeInvalidOption, "size too large (max %dx%d), got %dx%d", maxCells, maxCells, width, height)
	}
	return nil
}
