// Package chinese converts between fixed days and dates of the Chinese
// lunisolar calendar (the 1645 Qīng reform), and locates the solar terms,
// new moons and New Years that define it.
//
// Every calculation is made for the Beijing reference point. A Calendar
// holds no mutable state and may be shared between goroutines.
package chinese

import (
	"fmt"
	"math"

	"github.com/zapponejosh/lunar-calendar-api/internal/astro"
	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
)

// Oracle supplies the positions of the Sun and Moon. Moments are
// fractional fixed days in Universal Time; angles are degrees.
type Oracle interface {
	SolarLongitude(t float64) float64
	SolarLongitudeAtAfter(lambda, t float64) float64
	EstimatePriorSolarLongitude(lambda, t float64) float64
	NewMoonBefore(t float64) float64
	NewMoonAtAfter(t float64) float64
	LunarPhase(t float64) float64
	LunarPhaseAtAfter(phi, t float64) float64
}

const (
	// Epoch is the fixed day of the start of the first sexagenary cycle,
	// February 15, 2637 BCE (Gregorian year -2636).
	Epoch calendar.FixedDay = -963099

	// MinYear and MaxYear bound the Gregorian years this package accepts.
	// Beyond them the polynomial fits of the ephemeris diverge.
	MinYear = -1000
	MaxYear = 3000
)

var (
	MinFixedDay = calendar.GregorianNewYear(MinYear)
	MaxFixedDay = calendar.GregorianNewYear(MaxYear+1) - 1
)

// Calendar performs Chinese calendar calculations against an Oracle.
type Calendar struct {
	oracle Oracle
}

// New returns a Calendar that takes its astronomy from o.
func New(o Oracle) *Calendar {
	return &Calendar{oracle: o}
}

var defaultCalendar = New(astro.Ephemeris{})

// Default returns the Calendar backed by astro.Ephemeris.
func Default() *Calendar {
	return defaultCalendar
}

// oracleFault aborts a calculation from deep inside the search helpers.
// It never escapes the package: exported methods convert it to an error
// wrapping ErrOracleFailure.
type oracleFault struct {
	msg string
}

func catch(err *error) {
	if r := recover(); r != nil {
		f, ok := r.(oracleFault)
		if !ok {
			panic(r)
		}
		*err = fmt.Errorf("%w: %s", ErrOracleFailure, f.msg)
	}
}

func fail(format string, args ...any) {
	panic(oracleFault{msg: fmt.Sprintf(format, args...)})
}

func checked(op string, v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		fail("%s returned %v", op, v)
	}
	return v
}

func (c *Calendar) solarLongitude(t float64) float64 {
	return checked("solar longitude", c.oracle.SolarLongitude(t))
}

func (c *Calendar) solarLongitudeAtAfter(lambda, t float64) float64 {
	return checked("solar longitude search", c.oracle.SolarLongitudeAtAfter(lambda, t))
}

func (c *Calendar) estimatePriorSolarLongitude(lambda, t float64) float64 {
	return checked("solar longitude estimate", c.oracle.EstimatePriorSolarLongitude(lambda, t))
}

func (c *Calendar) newMoonMomentBefore(t float64) float64 {
	return checked("new moon search", c.oracle.NewMoonBefore(t))
}

func (c *Calendar) newMoonMomentAtAfter(t float64) float64 {
	return checked("new moon search", c.oracle.NewMoonAtAfter(t))
}

func (c *Calendar) lunarPhase(t float64) float64 {
	return checked("lunar phase", c.oracle.LunarPhase(t))
}

func (c *Calendar) lunarPhaseAtAfter(phi, t float64) float64 {
	return checked("lunar phase search", c.oracle.LunarPhaseAtAfter(phi, t))
}

func checkRange(rd calendar.FixedDay) error {
	if rd < MinFixedDay || rd > MaxFixedDay {
		return fmt.Errorf("%w: %s is outside %s to %s", ErrOutOfRange, rd, MinFixedDay, MaxFixedDay)
	}
	return nil
}

// searchSlack lets a search start up to a year outside the window, since
// the Chinese year holding the first or last days of the window begins or
// ends beyond it.
const searchSlack = 400

// checkSearchStart rejects a search starting point far outside the window.
// Results still pass through checkRange.
func checkSearchStart(rd calendar.FixedDay) error {
	if rd < MinFixedDay-searchSlack || rd > MaxFixedDay+searchSlack {
		return fmt.Errorf("%w: %s is outside %s to %s", ErrOutOfRange, rd, MinFixedDay, MaxFixedDay)
	}
	return nil
}

func checkYear(gYear int) error {
	if gYear < MinYear || gYear > MaxYear {
		return fmt.Errorf("%w: year %d is outside %d to %d", ErrOutOfRange, gYear, MinYear, MaxYear)
	}
	return nil
}
