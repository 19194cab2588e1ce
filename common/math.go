package common

import "math"

// Epsilon is the tolerance used for world-space float comparisons.
const Epsilon = 1e-6

// DefaultTileSize is the edge length of a tile when a level does not set one.
const DefaultTileSize = 96

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// NearlyEqual reports whether a and b differ by at most Epsilon.
func NearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}
