package title

import (
	"strings"
	"testing"

	"github.com/matzehuels/termpie/pkg/grid"
)

func TestStyleApply(t *testing.T) {
	tests := []struct {
		style Style
		in    string
		want  string
	}{
		{Normal, "Chart 2024", "Chart 2024"},
		{Bold, "AB", "𝐀𝐁"},
		{Bold, "ab 12", "𝐚𝐛 𝟏𝟐"},
		{Italic, "Hi", "𝐻𝑖"},
		{Italic, "h", "ℎ"},
		{Italic, "42", "42"},
		{Script, "Be", "ℬℯ"},
		{Script, "A", "𝒜"},
		{BoldScript, "A", "𝓐"},
		{SansSerif, "Go 1", "𝖦𝗈 𝟣"},
		{BoldSansSerif, "Z9", "𝗭𝟵"},
		{ItalicSansSerif, "a", "𝘢"},
		{Monospace, "x=0", "𝚡=𝟶"},
		{Bold, "", ""},
		{Bold, "日本!", "日本!"},
	}

	for _, tt := range tests {
		t.Run(tt.style.String()+"/"+tt.in, func(t *testing.T) {
			if got := tt.style.Apply(tt.in); got != tt.want {
				t.Errorf("%v.Apply(%q) = %q, want %q", tt.style, tt.in, got, tt.want)
			}
		})
	}
}

func TestStyleApplyKeepsWidth(t *testing.T) {
	const text = "Market Share 2024"
	for _, s := range Styles {
		if got := grid.StringWidth(s.Apply(text)); got != len(text) {
			t.Errorf("%v: width %d, want %d", s, got, len(text))
		}
	}
}

func TestParseStyle(t *testing.T) {
	for _, s := range Styles {
		got, ok := ParseStyle(strings.ToUpper(s.String()))
		if !ok || got != s {
			t.Errorf("ParseStyle(%q) = %v, %v, want %v", s.String(), got, ok, s)
		}
	}
	if _, ok := ParseStyle("gothic"); ok {
		t.Error("ParseStyle(gothic) ok = true")
	}
}

func TestDrawAlignment(t *testing.T) {
	row := grid.Rect{Width: 10, Height: 1}
	tests := []struct {
		align Alignment
		text  string
		want  string
	}{
		{Start, "Pie", "Pie       "},
		{Center, "Pie", "   Pie    "},
		{End, "Pie", "       Pie"},
		{Center, "A very long title", "A very lon"},
	}

	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			buf := grid.NewBuffer(row)
			Title{Text: tt.text, Alignment: tt.align}.Draw(buf, row, nil, nil)
			if got := buf.Row(0); got != tt.want {
				t.Errorf("Draw() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDrawOnFrame(t *testing.T) {
	frame := grid.Rect{Width: 8, Height: 3}
	buf := grid.NewBuffer(frame)
	Title{Text: "Languages", Alignment: Start, Position: Bottom}.DrawOnFrame(buf, frame, nil, nil)

	if got := buf.Row(2); got != " Langua " {
		t.Errorf("bottom row = %q, want clipped between corners", got)
	}
	if got := buf.Row(0); strings.TrimSpace(got) != "" {
		t.Errorf("top row = %q, want blank", got)
	}
}

func TestReserve(t *testing.T) {
	area := grid.Rect{X: 1, Y: 1, Width: 20, Height: 10}

	row, rest := New("x").Reserve(area)
	if row != (grid.Rect{X: 1, Y: 1, Width: 20, Height: 1}) || rest != (grid.Rect{X: 1, Y: 2, Width: 20, Height: 9}) {
		t.Errorf("Reserve(top) = %v, %v", row, rest)
	}

	row, rest = Title{Text: "x", Position: Bottom}.Reserve(area)
	if row != (grid.Rect{X: 1, Y: 10, Width: 20, Height: 1}) || rest != (grid.Rect{X: 1, Y: 1, Width: 20, Height: 9}) {
		t.Errorf("Reserve(bottom) = %v, %v", row, rest)
	}

	row, rest = Title{}.Reserve(area)
	if !row.IsEmpty() || rest != area {
		t.Errorf("Reserve(empty) = %v, %v", row, rest)
	}
}

func TestParseAlignmentAndPosition(t *testing.T) {
	if a, ok := ParseAlignment("right"); !ok || a != End {
		t.Errorf("ParseAlignment(right) = %v, %v", a, ok)
	}
	if p, ok := ParsePosition("Bottom"); !ok || p != Bottom {
		t.Errorf("ParsePosition(Bottom) = %v, %v", p, ok)
	}
	if _, ok := ParsePosition("side"); ok {
		t.Error("ParsePosition(side) ok = true")
	}
}
