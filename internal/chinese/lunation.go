package chinese

import (
	"math"

	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
)

const (
	winterSolstice = 270.0

	// The solstice estimate is good to about a day and the walk starts one
	// day early, so a handful of steps always suffices.
	maxSolsticeSteps = 8

	// A sui never holds more than 13 months; allow a little slack.
	maxMonthsInSui = 16
)

// winterSolsticeOnBefore returns the Beijing day of the winter solstice on
// or before rd.
func (c *Calendar) winterSolsticeOnBefore(rd calendar.FixedDay) calendar.FixedDay {
	approx := c.estimatePriorSolarLongitude(winterSolstice, midnightInChina(rd+1))

	day := calendar.FixedDay(math.Floor(approx)) - 1
	for steps := 0; winterSolstice >= c.solarLongitude(midnightInChina(day+1)); steps++ {
		if steps >= maxSolsticeSteps {
			fail("winter solstice before %s not found within %d days of the estimate", rd, maxSolsticeSteps)
		}
		day++
	}
	return day
}

// newMoonOnAfter returns the Beijing day of the first new moon on or
// after rd.
func (c *Calendar) newMoonOnAfter(rd calendar.FixedDay) calendar.FixedDay {
	return standardDay(c.newMoonMomentAtAfter(midnightInChina(rd)), rd)
}

// newMoonBefore returns the Beijing day of the last new moon before rd.
func (c *Calendar) newMoonBefore(rd calendar.FixedDay) calendar.FixedDay {
	return standardDay(c.newMoonMomentBefore(midnightInChina(rd)), rd)
}

// currentMajorSolarTerm returns the index, 1 through 12, of the last major
// solar term at or before the start of rd.
func (c *Calendar) currentMajorSolarTerm(rd calendar.FixedDay) int {
	lon := c.solarLongitude(midnightInChina(rd))
	return calendar.Mod1(2+int(math.Floor(lon/30)), 12)
}

// currentMinorSolarTerm returns the index, 1 through 12, of the last minor
// solar term at or before the start of rd.
func (c *Calendar) currentMinorSolarTerm(rd calendar.FixedDay) int {
	lon := c.solarLongitude(midnightInChina(rd))
	return calendar.Mod1(3+int(math.Floor((lon-15)/30)), 12)
}

// noMajorSolarTerm reports whether the month starting on rd passes no
// major solar term.
func (c *Calendar) noMajorSolarTerm(rd calendar.FixedDay) bool {
	next := c.newMoonOnAfter(rd + 1)
	return c.currentMajorSolarTerm(rd) == c.currentMajorSolarTerm(next)
}

// priorLeapMonth reports whether any month starting on or after m1 and
// on or before m2 lacks a major solar term, walking back from m2.
func (c *Calendar) priorLeapMonth(m1, m2 calendar.FixedDay) bool {
	for months := 0; m2 >= m1; months++ {
		if months >= maxMonthsInSui {
			fail("leap month search from %s back to %s exceeded %d months", m2, m1, maxMonthsInSui)
		}
		if c.noMajorSolarTerm(m2) {
			return true
		}
		m2 = c.newMoonBefore(m2)
	}
	return false
}

// WinterSolsticeOnBefore returns the Beijing day of the winter solstice on
// or before rd.
func (c *Calendar) WinterSolsticeOnBefore(rd calendar.FixedDay) (day calendar.FixedDay, err error) {
	if err := checkRange(rd); err != nil {
		return 0, err
	}
	defer catch(&err)
	return c.winterSolsticeOnBefore(rd), nil
}

// NewMoonOnAfter returns the Beijing day of the first new moon on or
// after rd.
func (c *Calendar) NewMoonOnAfter(rd calendar.FixedDay) (day calendar.FixedDay, err error) {
	if err := checkRange(rd); err != nil {
		return 0, err
	}
	defer catch(&err)
	return c.newMoonOnAfter(rd), nil
}

// NewMoonBefore returns the Beijing day of the last new moon before rd.
func (c *Calendar) NewMoonBefore(rd calendar.FixedDay) (day calendar.FixedDay, err error) {
	if err := checkRange(rd); err != nil {
		return 0, err
	}
	defer catch(&err)
	return c.newMoonBefore(rd), nil
}

// CurrentMajorSolarTerm returns the index, 1 through 12, of the major
// solar term in effect at the start of rd. Term 1 is Yǔshuǐ.
func (c *Calendar) CurrentMajorSolarTerm(rd calendar.FixedDay) (term int, err error) {
	if err := checkRange(rd); err != nil {
		return 0, err
	}
	defer catch(&err)
	return c.currentMajorSolarTerm(rd), nil
}

// CurrentMinorSolarTerm returns the index, 1 through 12, of the minor
// solar term in effect at the start of rd. Term 1 is Lìchūn.
func (c *Calendar) CurrentMinorSolarTerm(rd calendar.FixedDay) (term int, err error) {
	if err := checkRange(rd); err != nil {
		return 0, err
	}
	defer catch(&err)
	return c.currentMinorSolarTerm(rd), nil
}
