package pie

import "math"

// FullCircle is the angular extent of the chart in degrees.
const FullCircle = 360.0

// Interval is the angular range [Start, End) owned by one slice.
type Interval struct {
	Index      int // position of the slice in the input sequence
	Start, End float64
}

// Width returns the angular extent of the interval in degrees.
func (iv Interval) Width() float64 { return iv.End - iv.Start }

// Contains reports whether deg (already normalized) falls inside the interval.
func (iv Interval) Contains(deg float64) bool {
	return deg >= iv.Start && deg < iv.End
}

// Intervals is the per-render angular table of a chart, one entry per input
// slice, sorted by Start.
type Intervals []Interval

// Build lays slices out clockwise starting at 0 degrees. It returns nil when
// the total weight is not positive.
//
// Zero-weight slices keep their entry (so indices line up with the input) but
// get an empty interval. The last slice with positive weight is closed at
// exactly 360 degrees to absorb rounding.
func Build(slices []Slice) Intervals {
	total := Total(slices)
	if total <= 0 {
		return nil
	}

	ivs := make(Intervals, len(slices))
	last := -1
	var cum float64
	for i, s := range slices {
		w := s.Weight()
		start := cum
		cum += w / total * FullCircle
		ivs[i] = Interval{Index: i, Start: start, End: cum}
		if w > 0 {
			last = i
		}
	}

	ivs[last].End = FullCircle
	for i := last + 1; i < len(ivs); i++ {
		ivs[i].Start, ivs[i].End = FullCircle, FullCircle
	}
	return ivs
}

// Empty reports whether the table has no renderable slices.
func (ivs Intervals) Empty() bool { return len(ivs) == 0 }

// Locate returns the index of the slice owning deg. The angle is normalized
// into [0, 360) first. ok is false only when ivs is empty.
//
// An angle exactly on a boundary belongs to the interval starting there.
func (ivs Intervals) Locate(deg float64) (index int, ok bool) {
	if len(ivs) == 0 {
		return 0, false
	}
	deg = Normalize(deg)
	owner := -1
	for _, iv := range ivs {
		if iv.Contains(deg) {
			return iv.Index, true
		}
		if iv.End > iv.Start {
			owner = iv.Index
		}
	}
	// Unreachable for tables built by Build; keeps hand-made tables total.
	if owner < 0 {
		return 0, false
	}
	return owner, true
}

// Boundaries returns the distinct interval boundaries in ascending order,
// starting at 0 and ending at 360.
func (ivs Intervals) Boundaries() []float64 {
	if len(ivs) == 0 {
		return nil
	}
	out := []float64{ivs[0].Start}
	for _, iv := range ivs {
		if iv.End != out[len(out)-1] {
			out = append(out, iv.End)
		}
	}
	return out
}

// Normalize maps any finite angle into [0, 360).
func Normalize(deg float64) float64 {
	deg = math.Mod(deg, FullCircle)
	if deg < 0 {
		deg += FullCircle
	}
	// math.Mod of a tiny negative number can round back up to 360.
	if deg >= FullCircle {
		deg = 0
	}
	return deg
}

// Bearing converts an offset from the chart center into degrees clockwise
// from 12 o'clock. dx grows to the right and dy grows downwards, as on a
// character grid.
func Bearing(dx, dy float64) float64 {
	// atan2 is counter-clockwise from 3 o'clock with y up.
	ccw := math.Atan2(-dy, dx) * 180 / math.Pi
	return Normalize(90 - ccw)
}
