package astro

import (
	"math"

	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
)

// MeanSynodicMonth is the mean time, in days, from new moon to new moon.
const MeanSynodicMonth = 29.530588861

// newMoonTerms are the periodic corrections of nthNewMoon:
// v * E^w * sin(x*M + y*M' + z*F).
var newMoonTerms = []struct {
	v       float64
	w       int
	x, y, z float64
}{
	{-0.40720, 0, 0, 1, 0},
	{0.17241, 1, 1, 0, 0},
	{0.01608, 0, 0, 2, 0},
	{0.01039, 0, 0, 0, 2},
	{0.00739, 1, -1, 1, 0},
	{-0.00514, 1, 1, 1, 0},
	{0.00208, 2, 2, 0, 0},
	{-0.00111, 0, 0, 1, -2},
	{-0.00057, 0, 0, 1, 2},
	{0.00056, 1, 1, 2, 0},
	{-0.00042, 0, 0, 3, 0},
	{0.00042, 1, 1, 0, 2},
	{0.00038, 1, 1, 0, -2},
	{-0.00024, 1, -1, 2, 0},
	{-0.00007, 0, 2, 1, 0},
	{0.00004, 0, 0, 2, -2},
	{0.00004, 0, 3, 0, 0},
	{0.00003, 0, 1, 1, -2},
	{0.00003, 0, 0, 2, 2},
	{-0.00003, 0, 1, 1, 2},
	{0.00003, 0, -1, 1, 2},
	{-0.00002, 0, -1, 1, -2},
	{-0.00002, 0, 1, 3, 0},
	{0.00002, 0, 0, 4, 0},
}

// newMoonAdditional are the planetary terms of nthNewMoon: l * sin(i + j*k).
var newMoonAdditional = []struct {
	i, j, l float64
}{
	{251.88, 0.016321, 0.000165},
	{251.83, 26.651886, 0.000164},
	{349.42, 36.412478, 0.000126},
	{84.66, 18.206239, 0.000110},
	{141.74, 53.303771, 0.000062},
	{207.14, 2.453732, 0.000060},
	{154.84, 7.306860, 0.000056},
	{34.52, 27.261239, 0.000047},
	{207.19, 0.121824, 0.000042},
	{291.34, 1.844379, 0.000040},
	{161.72, 24.198154, 0.000037},
	{239.56, 25.513099, 0.000035},
	{331.55, 3.592518, 0.000023},
}

// lunarLongitudeTerms: v * E^|x| * sin(w*D + x*M + y*M' + z*F).
var lunarLongitudeTerms = []struct {
	v          float64
	w, x, y, z float64
}{
	{6288774, 0, 0, 1, 0},
	{1274027, 2, 0, -1, 0},
	{658314, 2, 0, 0, 0},
	{213618, 0, 0, 2, 0},
	{-185116, 0, 1, 0, 0},
	{-114332, 0, 0, 0, 2},
	{58793, 2, 0, -2, 0},
	{57066, 2, -1, -1, 0},
	{53322, 2, 0, 1, 0},
	{45758, 2, -1, 0, 0},
	{-40923, 0, 1, -1, 0},
	{-34720, 1, 0, 0, 0},
	{-30383, 0, 1, 1, 0},
	{15327, 2, 0, 0, -2},
	{-12528, 0, 0, 1, 2},
	{10980, 0, 0, 1, -2},
	{10675, 4, 0, -1, 0},
	{10034, 0, 0, 3, 0},
	{8548, 4, 0, -2, 0},
	{-7888, 2, 1, -1, 0},
	{-6766, 2, 1, 0, 0},
	{-5163, 1, 0, -1, 0},
	{4987, 1, 1, 0, 0},
	{4036, 2, -1, 1, 0},
	{3994, 2, 0, 2, 0},
	{3861, 4, 0, 0, 0},
	{3665, 2, 0, -3, 0},
	{-2689, 0, 1, -2, 0},
	{-2602, 2, 0, -1, 2},
	{2390, 2, -1, -2, 0},
	{-2348, 1, 0, 1, 0},
	{2236, 2, -2, 0, 0},
	{-2120, 0, 1, 2, 0},
	{-2069, 0, 2, 0, 0},
	{2048, 2, -2, -1, 0},
	{-1773, 2, 0, 1, -2},
	{-1595, 2, 0, 0, 2},
	{1215, 4, -1, -1, 0},
	{-1110, 0, 0, 2, 2},
	{-892, 3, 0, -1, 0},
	{-810, 2, 1, 1, 0},
	{759, 4, -1, -2, 0},
	{-713, 0, 2, -1, 0},
	{-700, 2, 2, -1, 0},
	{691, 2, 1, -2, 0},
	{596, 2, -1, 0, -2},
	{549, 4, 0, 1, 0},
	{537, 0, 0, 4, 0},
	{520, 4, -1, 0, 0},
	{-487, 1, 0, -2, 0},
	{-399, 2, 1, 0, -2},
	{-381, 0, 0, 2, -2},
	{351, 1, 1, 1, 0},
	{-340, 3, 0, -2, 0},
	{330, 4, 0, -3, 0},
	{327, 2, -1, 2, 0},
	{-323, 0, 2, 1, 0},
	{299, 1, 1, -1, 0},
	{294, 2, 0, 3, 0},
}

// NthNewMoon returns the moment of the n-th new moon after the new moon of
// January 11, AD 1, the first new moon after R.D. 0.
func NthNewMoon(n int) float64 {
	const (
		n0 = 24724   // months from R.D. 0 until j2000
		nm = 1236.85 // months per century
	)
	k := n - n0
	c := float64(k) / nm

	approx := j2000 + poly(c, []float64{5.09766, MeanSynodicMonth * nm, 0.00015437, -0.000000150, 0.00000000073})
	e := poly(c, []float64{1, -0.002516, -0.0000074})
	solarAnomaly := poly(c, []float64{2.5534, 29.10535670 * nm, -0.0000014, -0.00000011})
	lunarAnomaly := poly(c, []float64{201.5643, 385.81693528 * nm, 0.0107582, 0.00001238, -0.000000058})
	moonArgument := poly(c, []float64{160.7108, 390.67050284 * nm, -0.0016118, -0.00000227, 0.000000011})
	omega := poly(c, []float64{124.7746, -1.56375588 * nm, 0.0020672, 0.00000215})

	correction := -0.00017 * sinDeg(omega)
	for _, term := range newMoonTerms {
		correction += term.v * math.Pow(e, float64(term.w)) *
			sinDeg(term.x*solarAnomaly+term.y*lunarAnomaly+term.z*moonArgument)
	}

	extra := 0.000325 * sinDeg(299.77+132.8475848*c-0.009173*c*c)

	additional := 0.0
	for _, term := range newMoonAdditional {
		additional += term.l * sinDeg(term.i+term.j*float64(k))
	}

	return UniversalFromDynamical(approx + correction + extra + additional)
}

// LunarLongitude returns the geocentric longitude of the Moon, in degrees,
// at moment t.
func LunarLongitude(t float64) float64 {
	c := JulianCenturies(t)

	meanLongitude := calendar.ModF(poly(c, []float64{218.3164477, 481267.88123421, -0.0015786, 1.0 / 538841, -1.0 / 65194000}), 360)
	elongation := calendar.ModF(poly(c, []float64{297.8501921, 445267.1114034, -0.0018819, 1.0 / 545868, -1.0 / 113065000}), 360)
	solarAnomaly := calendar.ModF(poly(c, []float64{357.5291092, 35999.0502909, -0.0001536, 1.0 / 24490000}), 360)
	lunarAnomaly := calendar.ModF(poly(c, []float64{134.9633964, 477198.8675055, 0.0087414, 1.0 / 69699, -1.0 / 14712000}), 360)
	node := calendar.ModF(poly(c, []float64{93.2720950, 483202.0175233, -0.0036539, -1.0 / 3526000, 1.0 / 863310000}), 360)
	e := poly(c, []float64{1, -0.002516, -0.0000074})

	sum := 0.0
	for _, term := range lunarLongitudeTerms {
		sum += term.v * math.Pow(e, math.Abs(term.x)) *
			sinDeg(term.w*elongation+term.x*solarAnomaly+term.y*lunarAnomaly+term.z*node)
	}

	venus := 3958.0 / 1e6 * sinDeg(119.75+131.849*c)
	jupiter := 318.0 / 1e6 * sinDeg(53.09+479264.29*c)
	flatEarth := 1962.0 / 1e6 * sinDeg(meanLongitude-node)

	return calendar.ModF(meanLongitude+sum/1e6+venus+jupiter+flatEarth+Nutation(t), 360)
}

// LunarPhase returns the difference between the lunar and solar
// longitudes, in degrees within [0, 360), at moment t. Zero is new moon.
func LunarPhase(t float64) float64 {
	phi := calendar.ModF(LunarLongitude(t)-SolarLongitude(t), 360)

	t0 := NthNewMoon(0)
	n := int(math.Round((t - t0) / MeanSynodicMonth))
	phi2 := 360 * calendar.ModF((t-NthNewMoon(n))/MeanSynodicMonth, 1)

	// The nthNewMoon estimate is more precise near a conjunction.
	if math.Abs(phi-phi2) > 180 {
		return phi2
	}
	return phi
}

// Lunar phases at the quarters, as returned by LunarPhase.
const (
	NewMoonPhase      = 0.0
	FirstQuarterPhase = 90.0
	FullMoonPhase     = 180.0
	LastQuarterPhase  = 270.0
)

// LunarPhaseAtAfter returns the first moment at or after t when the lunar
// phase reaches phi degrees.
func LunarPhaseAtAfter(phi, t float64) float64 {
	rate := MeanSynodicMonth / 360
	tau := t + rate*calendar.ModF(phi-LunarPhase(t), 360)

	a := math.Max(t, tau-2)
	b := tau + 2
	return invertAngular(LunarPhase, phi, a, b)
}

// FullMoonAtAfter returns the moment of the first full moon at or after t.
func FullMoonAtAfter(t float64) float64 {
	return LunarPhaseAtAfter(FullMoonPhase, t)
}

// nearestNewMoonIndex estimates the index of the new moon preceding t.
func nearestNewMoonIndex(t float64) int {
	t0 := NthNewMoon(0)
	return int(math.Round((t-t0)/MeanSynodicMonth - LunarPhase(t)/360))
}

// NewMoonBefore returns the moment of the last new moon strictly before t.
func NewMoonBefore(t float64) float64 {
	k := nearestNewMoonIndex(t) - 1
	for NthNewMoon(k) < t {
		k++
	}
	return NthNewMoon(k - 1)
}

// NewMoonAtAfter returns the moment of the first new moon at or after t.
func NewMoonAtAfter(t float64) float64 {
	n := nearestNewMoonIndex(t)
	moon := NthNewMoon(n)
	for moon < t {
		n++
		moon = NthNewMoon(n)
	}
	return moon
}
