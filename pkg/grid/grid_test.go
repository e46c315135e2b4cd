package grid

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRectInset(t *testing.T) {
	tests := []struct {
		name string
		rect Rect
		want Rect
	}{
		{
			name: "normal",
			rect: Rect{X: 2, Y: 3, Width: 10, Height: 6},
			want: Rect{X: 3, Y: 4, Width: 8, Height: 4},
		},
		{
			name: "collapses",
			rect: Rect{X: 0, Y: 0, Width: 1, Height: 1},
			want: Rect{X: 1, Y: 1, Width: 0, Height: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Inset(1, 1, 1, 1); got != tt.want {
				t.Errorf("Inset() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 8, Width: 10, Height: 10}
	want := Rect{X: 5, Y: 8, Width: 5, Height: 2}
	if got := a.Intersect(b); got != want {
		t.Errorf("Intersect() = %v, want %v", got, want)
	}
	if got := a.Intersect(Rect{X: 20, Y: 20, Width: 2, Height: 2}); !got.IsEmpty() {
		t.Errorf("disjoint Intersect() = %v, want empty", got)
	}
}

func TestNewRectClampsNegative(t *testing.T) {
	r := NewRect(1, 2, -3, 4)
	if r.Width != 0 || !r.IsEmpty() || r.Area() != 0 {
		t.Errorf("NewRect(1,2,-3,4) = %v, want empty", r)
	}
}

func TestBufferSetOutOfBounds(t *testing.T) {
	b := NewBuffer(Rect{X: 2, Y: 2, Width: 3, Height: 2})
	b.Set(0, 0, Cell{Glyph: "x"})
	b.Set(5, 2, Cell{Glyph: "x"})
	b.Set(2, 2, Cell{Glyph: "o"})

	if got := b.String(); got != "o  \n   " {
		t.Errorf("String() = %q", got)
	}
	if got := b.Cell(0, 0).Glyph; got != Blank {
		t.Errorf("Cell outside = %q, want blank", got)
	}
}

func TestSetString(t *testing.T) {
	b := NewBuffer(Rect{Width: 6, Height: 1})
	red := lipgloss.Color("1")

	end := SetString(b, 1, 0, 6, "ab世c", red, nil)
	if end != 6 {
		t.Errorf("SetString() end = %d, want 6", end)
	}
	if got := b.Row(0); got != " ab世c" {
		t.Errorf("Row() = %q, want %q", got, " ab世c")
	}
	if got := b.Cell(1, 0).Fg; got != red {
		t.Errorf("Fg = %v, want %v", got, red)
	}
}

func TestSetStringStopsAtLimit(t *testing.T) {
	b := NewBuffer(Rect{Width: 5, Height: 1})
	end := SetString(b, 0, 0, 3, "abcdef", nil, nil)
	if end != 3 {
		t.Errorf("end = %d, want 3", end)
	}
	if got := b.Row(0); got != "abc  " {
		t.Errorf("Row() = %q", got)
	}
}

func TestSetStringGraphemes(t *testing.T) {
	family := "👨\u200d👩\u200d👧"
	tests := []struct {
		name  string
		text  string
		glyph string // glyph of the first cell
		end   int
	}{
		{"zwj sequence", family, family, 2},
		{"decomposed accent", "e\u0301", "e\u0301", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(Rect{Width: 4, Height: 1})
			end := SetString(b, 0, 0, 4, tt.text, nil, nil)
			if end != tt.end {
				t.Errorf("SetString() end = %d, want %d", end, tt.end)
			}
			if end != StringWidth(tt.text) {
				t.Errorf("SetString() end = %d, StringWidth() = %d", end, StringWidth(tt.text))
			}
			if got := b.Cell(0, 0).Glyph; got != tt.glyph {
				t.Errorf("Cell(0, 0).Glyph = %q, want %q", got, tt.glyph)
			}
			if tt.end == 2 && b.Cell(1, 0).Glyph != "" {
				t.Errorf("Cell(1, 0).Glyph = %q, want continuation", b.Cell(1, 0).Glyph)
			}
		})
	}
}

func TestSetStringReadsBack(t *testing.T) {
	for _, text := range []string{"Fam👨\u200d👩\u200d👧", "Cafe\u0301", "日本語", "■ Go"} {
		w := StringWidth(text)
		b := NewBuffer(Rect{Width: w, Height: 1})
		if end := SetString(b, 0, 0, w, text, nil, nil); end != w {
			t.Errorf("SetString(%q) end = %d, want %d", text, end, w)
		}
		if got := b.Row(0); got != text {
			t.Errorf("Row() = %q, want %q", got, text)
		}
	}
}

func TestSetStringKeepsClusterWhole(t *testing.T) {
	b := NewBuffer(Rect{Width: 4, Height: 1})
	end := SetString(b, 0, 0, 2, "a👨\u200d👩\u200d👧", nil, nil)
	if end != 1 {
		t.Errorf("end = %d, want 1", end)
	}
	if got := b.Row(0); got != "a   " {
		t.Errorf("Row() = %q, want %q", got, "a   ")
	}
}

func TestStringWidth(t *testing.T) {
	if got := StringWidth("■ Go"); got != 4 {
		t.Errorf("StringWidth() = %d, want 4", got)
	}
}
