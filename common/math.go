package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// EaseOutCubic maps linear progress t in [0, 1] onto a decelerating curve.
func EaseOutCubic(t float64) float64 {
	t = Clamp(t, 0, 1)
	inv := 1 - t
	return 1 - inv*inv*inv
}

func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
