package vmath

import "math"

// TwoPi is a full turn in radians
const TwoPi = 2 * math.Pi

// WrapAngle folds any angle into [0, 2π)
func WrapAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// Mod of a tiny negative can round up to exactly 2π
	if a >= TwoPi {
		a = 0
	}
	return a
}

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 { return deg * math.Pi / 180 }

// TickIndex returns the fixed-rate tick number reached after t seconds
func TickIndex(t float64, rate int) int64 {
	return int64(math.Floor(t * float64(rate)))
}

// TicksCrossed returns how many fixed-rate tick boundaries lie in (from, to]
// Motion sampled on these boundaries is independent of how time was sliced into frames
func TicksCrossed(from, to float64, rate int) int64 {
	n := TickIndex(to, rate) - TickIndex(from, rate)
	if n < 0 {
		return 0
	}
	return n
}
