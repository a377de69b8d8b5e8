package calendar

import "math"

// DivFloor divides x by y, rounding towards minus infinity.
func DivFloor(x, y int) int {
	q := x / y
	if r := x % y; r != 0 && (r < 0) != (y < 0) {
		q--
	}
	return q
}

// Mod returns x modulo y with the sign of y.
func Mod(x, y int) int {
	return x - y*DivFloor(x, y)
}

// Mod1 returns x modulo y shifted into the range [1, y].
func Mod1(x, y int) int {
	return y + Mod(x, -y)
}

// ModF is the floating-point Mod.
func ModF(x, y float64) float64 {
	return x - y*math.Floor(x/y)
}

// Mod3F shifts x into the interval [a, b). It returns x unchanged if a
// equals b.
func Mod3F(x, a, b float64) float64 {
	if math.Abs(a-b) < 1e-6 {
		return x
	}
	return a + ModF(x-a, b-a)
}
