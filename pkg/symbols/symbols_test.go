package symbols

import (
	"testing"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		table Table
		name  string
		want  string
		ok    bool
	}{
		{PieGlyphs, "default", Pie, true},
		{PieGlyphs, "Star", PieStar, true},
		{PieGlyphs, " triangle_up ", PieTriangleUp, true},
		{Markers, "check", MarkerCheck, true},
		{Markers, "default", Marker, true},
		{Markers, "nope", "", false},
	}

	for _, tt := range tests {
		got, ok := Lookup(tt.table, tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Lookup(%q) = %q, %v, want %q, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestResolve(t *testing.T) {
	if got := Resolve(PieGlyphs, "heart"); got != PieHeart {
		t.Errorf("Resolve(heart) = %q, want %q", got, PieHeart)
	}
	if got := Resolve(PieGlyphs, "x"); got != "x" {
		t.Errorf("Resolve(x) = %q, want literal", got)
	}
}

func TestTablesHoldSingleCellGlyphs(t *testing.T) {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false

	for tableName, table := range map[string]Table{"pie": PieGlyphs, "markers": Markers} {
		for _, name := range table.Names() {
			g := table[name]
			if utf8.RuneCountInString(g) != 1 {
				t.Errorf("%s[%q] = %q, want one rune", tableName, name, g)
			}
			if w := cond.StringWidth(g); w != 1 {
				t.Errorf("%s[%q] width = %d, want 1", tableName, name, w)
			}
			if normalize(name) != name {
				t.Errorf("%s name %q is not normalized", tableName, name)
			}
		}
	}
}

func TestNamesSorted(t *testing.T) {
	names := Markers.Names()
	if len(names) != len(Markers) {
		t.Fatalf("len(Names()) = %d, want %d", len(names), len(Markers))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Names() not sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
}
