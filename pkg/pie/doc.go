// Package pie turns weighted categories into angular intervals on a circle.
//
// A chart is an ordered sequence of [Slice] values. [Build] lays the slices out
// clockwise from 12 o'clock, each taking value/total*360 degrees, and the
// resulting [Intervals] answer "which slice owns this angle" via
// [Intervals.Locate].
//
// # Angles
//
// Angles are double-precision degrees in [0, 360), measured clockwise from
// 12 o'clock. [Bearing] converts a grid offset (x to the right, y downwards)
// into that convention.
//
// # Coverage
//
// Intervals are half-open [Start, End) and contiguous, and the last non-empty
// interval ends at exactly 360. Every normalized angle therefore maps to
// exactly one slice whenever the total is positive.
//
// # Degenerate input
//
// Negative and non-finite values count as zero. When the total is zero [Build]
// returns no intervals and [Intervals.Locate] reports no owner for every angle;
// this is a normal outcome, not an error.
package pie
