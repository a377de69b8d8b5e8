package astro

import (
	"math"

	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
)

// MeanTropicalYear is the time, in days, for the mean sun to travel from
// one mean vernal equinox to the next.
const MeanTropicalYear = 365.242189

// solarLongitudeTerms are the periodic terms of the solar longitude:
// x * sin(y + z*c) for c in Julian centuries.
var solarLongitudeTerms = []struct {
	x    float64
	y, z float64
}{
	{403406, 270.54861, 0.9287892},
	{195207, 340.19128, 35999.1376958},
	{119433, 63.91854, 35999.4089666},
	{112392, 331.26220, 35998.7287385},
	{3891, 317.843, 71998.20261},
	{2819, 86.631, 71998.4403},
	{1721, 240.052, 36000.35726},
	{660, 310.26, 71997.4812},
	{350, 247.23, 32964.4678},
	{334, 260.87, -19.4410},
	{314, 297.82, 445267.1117},
	{268, 343.14, 45036.8840},
	{242, 166.79, 3.1008},
	{234, 81.53, 22518.4434},
	{158, 3.50, -19.9739},
	{132, 132.75, 65928.9345},
	{129, 182.95, 9038.0293},
	{114, 162.03, 3034.7684},
	{99, 29.8, 33718.148},
	{93, 266.4, 3034.448},
	{86, 249.2, -2280.773},
	{78, 157.6, 29929.992},
	{72, 257.8, 31556.493},
	{68, 185.1, 149.588},
	{64, 69.9, 9037.750},
	{46, 8.0, 107997.405},
	{38, 197.1, -4444.176},
	{37, 250.4, 151.771},
	{32, 65.3, 67555.316},
	{29, 162.7, 31556.080},
	{28, 341.5, -4561.540},
	{27, 291.6, 107996.706},
	{27, 98.5, 1221.655},
	{25, 146.7, 62894.167},
	{24, 110.0, 31437.369},
	{21, 5.2, 14578.298},
	{21, 342.6, -31931.757},
	{20, 230.9, 34777.243},
	{18, 256.1, 1221.999},
	{17, 45.3, 62894.511},
	{14, 242.9, -4442.039},
	{13, 115.2, 107997.909},
	{13, 151.8, 119.066},
	{13, 285.3, 16859.071},
	{12, 53.3, -4.578},
	{10, 126.6, 26895.292},
	{10, 205.7, -39.127},
	{10, 85.9, 12297.536},
	{10, 146.1, 90073.778},
}

// Nutation returns the longitudinal nutation, in degrees, at moment t.
func Nutation(t float64) float64 {
	c := JulianCenturies(t)
	a := poly(c, []float64{124.90, -1934.134, 0.002063})
	b := poly(c, []float64{201.11, 72001.5377, 0.00057})
	return -0.004778*sinDeg(a) - 0.0003667*sinDeg(b)
}

// Aberration returns the aberration, in degrees, at moment t.
func Aberration(t float64) float64 {
	c := JulianCenturies(t)
	return 0.0000974*cosDeg(177.63+35999.01848*c) - 0.005575
}

// SolarLongitude returns the apparent ecliptic longitude of the Sun, in
// degrees within [0, 360), at moment t.
func SolarLongitude(t float64) float64 {
	c := JulianCenturies(t)

	sum := 0.0
	for _, term := range solarLongitudeTerms {
		sum += term.x * sinDeg(term.y+term.z*c)
	}
	lambda := 282.7771834 + 36000.76953744*c + 0.000005729577951308232*sum

	return calendar.ModF(lambda+Aberration(t)+Nutation(t), 360)
}

// SolarLongitudeAtAfter returns the first moment at or after t when the
// solar longitude reaches lambda degrees.
func SolarLongitudeAtAfter(lambda, t float64) float64 {
	rate := MeanTropicalYear / 360
	tau := t + rate*calendar.ModF(lambda-SolarLongitude(t), 360)

	a := math.Max(t, tau-5)
	b := tau + 5
	return invertAngular(SolarLongitude, lambda, a, b)
}

// EstimatePriorSolarLongitude approximates, to within about a day, the
// last moment at or before t when the solar longitude was lambda degrees.
func EstimatePriorSolarLongitude(lambda, t float64) float64 {
	rate := MeanTropicalYear / 360
	tau := t - rate*calendar.ModF(SolarLongitude(t)-lambda, 360)

	delta := calendar.Mod3F(SolarLongitude(tau)-lambda, -180, 180)
	return math.Min(t, tau-rate*delta)
}
