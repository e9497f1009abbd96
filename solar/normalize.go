package solar

import "math"

// Normalize maps x into the half-open range [min, max).
// The modulo used is the mathematical one, so negative inputs wrap upwards.
func Normalize(x, min, max float64) float64 {
	delta := max - min
	shifted := x - min
	return floorMod(floorMod(shifted, delta)+delta, delta) + min
}

// Rev360 reduces an angle in degrees into [0, 360).
func Rev360(x float64) float64 {
	return Normalize(x, 0, 360)
}

// Rev24 reduces a decimal hour into [0, 24).
func Rev24(x float64) float64 {
	return Normalize(x, 0, 24)
}

// floorMod returns x mod m with the sign of m.
func floorMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r != 0 && (r < 0) != (m < 0) {
		r += m
	}
	return r
}

// floorDiv is integer division rounding towards negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
