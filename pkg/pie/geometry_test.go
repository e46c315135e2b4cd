package pie

import (
	"math"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

const eps = 1e-9

func slicesOf(values ...float64) []Slice {
	out := make([]Slice, len(values))
	for i, v := range values {
		out[i] = NewSlice(string(rune('A'+i)), v, lipgloss.Color("1"))
	}
	return out
}

func TestBuildProportionality(t *testing.T) {
	ivs := Build(slicesOf(10, 20, 30, 40))
	want := []float64{36, 72, 108, 144}

	if len(ivs) != len(want) {
		t.Fatalf("len(Build()) = %d, want %d", len(ivs), len(want))
	}
	for i, w := range want {
		if got := ivs[i].Width(); math.Abs(got-w) > eps {
			t.Errorf("interval %d width = %v, want %v", i, got, w)
		}
		if ivs[i].Index != i {
			t.Errorf("interval %d index = %d", i, ivs[i].Index)
		}
	}
}

func TestBuildBoundaries(t *testing.T) {
	ivs := Build([]Slice{
		NewSlice("Rust", 45, lipgloss.Color("1")),
		NewSlice("Go", 30, lipgloss.Color("4")),
		NewSlice("Python", 25, lipgloss.Color("2")),
	})
	got := ivs.Boundaries()
	want := []float64{0, 162, 270, 360}

	if len(got) != len(want) {
		t.Fatalf("Boundaries() = %v, want %v", got, want)
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > eps {
			t.Errorf("Boundaries()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if got[len(got)-1] != FullCircle {
		t.Errorf("last boundary = %v, want exactly 360", got[len(got)-1])
	}
}

func TestBuildZeroTotal(t *testing.T) {
	tests := []struct {
		name   string
		slices []Slice
	}{
		{name: "empty", slices: nil},
		{name: "all zero", slices: slicesOf(0, 0)},
		{name: "negative only", slices: slicesOf(-5, -1)},
		{name: "non-finite", slices: slicesOf(math.NaN(), math.Inf(1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ivs := Build(tt.slices)
			if !ivs.Empty() {
				t.Fatalf("Build() = %v, want empty", ivs)
			}
			for deg := 0.0; deg < 360; deg += 0.5 {
				if _, ok := ivs.Locate(deg); ok {
					t.Fatalf("Locate(%v) ok = true, want false", deg)
				}
			}
		})
	}
}

func TestLocateCoverage(t *testing.T) {
	inputs := [][]float64{
		{1},
		{10, 20, 30, 40},
		{0, 5, 0, 5, 0},
		{1e-9, 1, 1e9},
		{3, -2, 7},
		{1, 1, 1, 1, 1, 1, 1},
	}

	for _, values := range inputs {
		slices := slicesOf(values...)
		ivs := Build(slices)

		// Dense sweep: every angle has exactly one owner.
		for step := 0; step < 36000; step++ {
			deg := float64(step) / 100
			idx, ok := ivs.Locate(deg)
			if !ok {
				t.Fatalf("%v: Locate(%v) found no owner", values, deg)
			}
			owners := 0
			for _, iv := range ivs {
				if iv.Contains(deg) {
					owners++
				}
			}
			if owners != 1 {
				t.Fatalf("%v: angle %v owned by %d intervals", values, deg, owners)
			}
			if slices[idx].Weight() == 0 {
				t.Fatalf("%v: angle %v located in zero-weight slice %d", values, deg, idx)
			}
		}

		// Boundaries belong to the interval that starts there.
		for _, iv := range ivs {
			if iv.Width() == 0 || iv.Start == FullCircle {
				continue
			}
			if idx, _ := ivs.Locate(iv.Start); idx != iv.Index {
				t.Errorf("%v: Locate(%v) = %d, want %d", values, iv.Start, idx, iv.Index)
			}
		}
	}
}

func TestLocateNormalizes(t *testing.T) {
	ivs := Build(slicesOf(1, 1, 1, 1))
	tests := []struct {
		deg  float64
		want int
	}{
		{deg: 0, want: 0},
		{deg: 90, want: 1},
		{deg: 360, want: 0},
		{deg: 450, want: 1},
		{deg: -1, want: 3},
		{deg: -360, want: 0},
		{deg: 719.5, want: 3},
	}

	for _, tt := range tests {
		if got, _ := ivs.Locate(tt.deg); got != tt.want {
			t.Errorf("Locate(%v) = %d, want %d", tt.deg, got, tt.want)
		}
	}
}

func TestBearing(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   float64
	}{
		{name: "up", dx: 0, dy: -1, want: 0},
		{name: "right", dx: 1, dy: 0, want: 90},
		{name: "down", dx: 0, dy: 1, want: 180},
		{name: "left", dx: -1, dy: 0, want: 270},
		{name: "up-right", dx: 1, dy: -1, want: 45},
		{name: "up-left", dx: -1, dy: -1, want: 315},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Bearing(tt.dx, tt.dy); math.Abs(got-tt.want) > eps {
				t.Errorf("Bearing(%v, %v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{360, 0},
		{-90, 270},
		{725, 5},
		{-1e-18, 0},
	}
	for _, tt := range tests {
		got := Normalize(tt.in)
		if math.Abs(got-tt.want) > eps || got < 0 || got >= 360 {
			t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPercent(t *testing.T) {
	slices := slicesOf(45, 30, 25)
	if got, ok := Percent(slices, 0); !ok || math.Abs(got-45) > eps {
		t.Errorf("Percent(0) = %v, %v; want 45, true", got, ok)
	}
	if _, ok := Percent(slices, 3); ok {
		t.Error("Percent(out of range) ok = true")
	}
	if _, ok := Percent(slicesOf(0, 0), 0); ok {
		t.Error("Percent(zero total) ok = true")
	}
}

func TestWeightClampsNegative(t *testing.T) {
	if got := NewSlice("x", -3, nil).Weight(); got != 0 {
		t.Errorf("Weight() = %v, want 0", got)
	}
	if got := Total(slicesOf(2, -3, 4)); got != 6 {
		t.Errorf("Total() = %v, want 6", got)
	}
}
