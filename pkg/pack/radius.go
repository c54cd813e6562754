package pack

import "math"

// Radius maps a value to a circle radius. Scaling by sqrt(value) makes the
// rendered area linear in value, which is the perceptually correct encoding:
// a value twice as large looks twice as large in area, not in radius.
//
// A maxValue of zero (all values zero) yields the floor radius rather than
// dividing by zero. Negative values are not validated; callers guarantee
// non-negative input.
func Radius(value, maxValue, maxRadius float64) float64 {
	if maxValue == 0 {
		return MinRadius
	}
	return math.Max(MinRadius, math.Sqrt(value/maxValue)*maxRadius)
}
