package geom

import "math"

// Epsilon is the tolerance used by NumberEqual.
const Epsilon = 1e-5

// NumberEqual reports whether a and b differ by less than Epsilon.
func NumberEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// NormalizeAngle reduces an angle in radians to [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if NumberEqual(a, 2*math.Pi) {
		return 0
	}
	return a
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
