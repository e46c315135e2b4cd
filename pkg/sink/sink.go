// Package sink encodes a rendered [grid.Buffer] for output.
//
// Four encodings are supported:
//
//   - ANSI: styled terminal text, one lipgloss style per run of equal colors
//   - plain: glyphs only
//   - PNG: a bitmap with one fixed-size box per cell
//   - JSON: the non-blank cells with their colors
//
// [Encoder.Encode] picks the encoding by [Format] and reports each encoded
// frame to the observability sink hooks.
package sink

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/termpie/pkg/errors"
	"github.com/matzehuels/termpie/pkg/grid"
	"github.com/matzehuels/termpie/pkg/observability"
)

// Format is an output encoding.
type Format string

const (
	FormatANSI  Format = "ansi"
	FormatPlain Format = "plain"
	FormatPNG   Format = "png"
	FormatJSON  Format = "json"
)

// Formats lists every supported format.
var Formats = []Format{FormatANSI, FormatPlain, FormatPNG, FormatJSON}

// ParseFormat parses a format name. "text" and "txt" are accepted for plain.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatANSI:
		return FormatANSI, nil
	case FormatPlain, "text", "txt":
		return FormatPlain, nil
	case FormatPNG, FormatJSON:
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: ansi, plain, png, json)", s)
}

func (f Format) String() string { return string(f) }

// Binary reports whether the format produces non-text output.
func (f Format) Binary() bool { return f == FormatPNG }

// Encoder writes buffers in any [Format].
type Encoder struct {
	// Renderer selects the ANSI color profile. nil uses the lipgloss default
	// renderer, which detects the profile of stdout.
	Renderer *lipgloss.Renderer

	// PNG holds options for the PNG encoding.
	PNG []PNGOption
}

// Encode writes buf to w in format.
func (e Encoder) Encode(ctx context.Context, w io.Writer, buf *grid.Buffer, format Format) error {
	start := time.Now()
	data, err := e.encode(buf, format)
	if err == nil {
		_, err = w.Write(data)
		if err != nil {
			err = errors.Wrap(errors.ErrCodeInternal, err, "write %s output", format)
		}
	}
	observability.Sink().OnEncode(ctx, string(format), len(data), time.Since(start), err)
	return err
}

func (e Encoder) encode(buf *grid.Buffer, format Format) ([]byte, error) {
	switch format {
	case FormatANSI:
		var opts []ANSIOption
		if e.Renderer != nil {
			opts = append(opts, WithRenderer(e.Renderer))
		}
		return []byte(RenderANSI(buf, opts...) + "\n"), nil
	case FormatPlain:
		return []byte(RenderPlain(buf) + "\n"), nil
	case FormatPNG:
		return RenderPNG(buf, e.PNG...)
	case FormatJSON:
		return RenderJSON(buf)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format)
}

// RenderPlain returns the glyphs of buf, rows separated by newlines. Rows keep
// their trailing blanks so that every row has the buffer's width.
func RenderPlain(buf *grid.Buffer) string {
	return buf.String()
}
