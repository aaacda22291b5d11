package report

import "math"

// Round normalizes a summed aggregate to whole-number precision before it
// is placed in a response. Rounding happens once, at the engine boundary;
// callers never re-round.
//
// math.Round rounds half away from zero: 0.5 → 1, 2.5 → 3, -0.5 → -1.
func Round(v float64) float64 {
	return math.Round(v)
}
