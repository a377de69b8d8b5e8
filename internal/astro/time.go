// Package astro computes the positions of the Sun and Moon needed by the
// calendar, following the algorithms of Reingold and Dershowitz,
// "Calendrical Calculations" (4th ed., chapter 14).
//
// Times are moments: fractional fixed days in Universal Time unless noted.
package astro

import (
	"math"
	"time"

	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
)

// j2000 is noon on January 1, 2000 (Gregorian).
var j2000 = 0.5 + float64(calendar.GregorianNewYear(2000))

var (
	coef2006 = []float64{62.92, 0.32217, 0.005589}
	coef1987 = []float64{63.86, 0.3345, -0.060374, 0.0017275, 0.000651814, 0.00002373599}
	coef1900 = []float64{-0.00002, 0.000297, 0.025184, -0.181133, 0.553040, -0.861938, 0.677066, -0.212591}
	coef1800 = []float64{-0.000009, 0.003844, 0.083563, 0.865736, 4.867575, 15.845535,
		31.332267, 38.291999, 28.316289, 11.636204, 2.043794}
	coef1700 = []float64{8.118780842, -0.005092142, 0.003336121, -0.0000266484}
	coef1600 = []float64{120.0, -0.9808, -0.01532, 0.000140272128}
	coef500  = []float64{1574.2, -556.01, 71.23472, 0.319781, -0.8503463, -0.005050998, 0.0083572073}
	coef0    = []float64{10583.6, -1014.41, 33.78311, -5.952053, -0.1798452, 0.022174192, 0.0090316521}
)

// EphemerisCorrection returns the difference, in days, between Dynamical
// Time and Universal Time at moment t.
func EphemerisCorrection(t float64) float64 {
	year := calendar.GregorianYearFromFixed(calendar.FixedDay(math.Floor(t)))
	y2000 := float64(year - 2000)
	y1820 := float64(year-1820) / 100
	other := (-20 + 32*y1820*y1820) / 86400

	switch {
	case year > 2150:
		return other
	case year >= 2051:
		return other + 0.5628*float64(2150-year)/86400
	case year >= 2006:
		return poly(y2000, coef2006) / 86400
	case year >= 1987:
		return poly(y2000, coef1987) / 86400
	case year >= 1800:
		c := float64(calendar.DateDifference(
			calendar.Date{Year: 1900, Month: time.January, Day: 1},
			calendar.Date{Year: year, Month: time.July, Day: 1},
		)) / 36525
		if year >= 1900 {
			return poly(c, coef1900)
		}
		return poly(c, coef1800)
	case year >= 1700:
		return poly(float64(year-1700), coef1700) / 86400
	case year >= 1600:
		return poly(float64(year-1600), coef1600) / 86400
	case year >= 500:
		return poly(float64(year-1000)/100, coef500) / 86400
	case year > -500:
		return poly(float64(year)/100, coef0) / 86400
	default:
		return other
	}
}

// DynamicalFromUniversal converts a moment from Universal to Dynamical Time.
func DynamicalFromUniversal(t float64) float64 {
	return t + EphemerisCorrection(t)
}

// UniversalFromDynamical converts a moment from Dynamical to Universal Time.
func UniversalFromDynamical(t float64) float64 {
	return t - EphemerisCorrection(t)
}

// JulianCenturies returns the number of Julian centuries (36525 days) of
// Dynamical Time since J2000 at moment t.
func JulianCenturies(t float64) float64 {
	return (DynamicalFromUniversal(t) - j2000) / 36525
}

// poly evaluates c[0] + c[1]*x + ... + c[n-1]*x^(n-1).
func poly(x float64, c []float64) float64 {
	p := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		p = p*x + c[i]
	}
	return p
}

func sinDeg(deg float64) float64 {
	return math.Sin(deg * math.Pi / 180)
}

func cosDeg(deg float64) float64 {
	return math.Cos(deg * math.Pi / 180)
}

// invertAngular finds, by bisection within [a, b], the moment at which the
// angular function f reaches y degrees.
func invertAngular(f func(float64) float64, y, a, b float64) float64 {
	const eps = 1e-6
	for {
		x := (a + b) / 2
		if calendar.ModF(f(x)-y, 360) < 180 {
			b = x
		} else {
			a = x
		}
		if math.Abs(a-b) < eps {
			return x
		}
	}
}
