package chinese

import (
	"math"
	"time"

	"github.com/zapponejosh/lunar-calendar-api/internal/astro"
	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
)

// sui is the solar year from one winter solstice to the next, measured by
// the months it holds.
type sui struct {
	solstice     calendar.FixedDay // s1: the solstice starting the sui
	nextSolstice calendar.FixedDay // s2
	m12          calendar.FixedDay // month after the 11th: 12 or leap 11
	m11Next      calendar.FixedDay // the following 11th month
	leap         bool              // 13 months
}

// suiOf brackets the sui containing rd.
func (c *Calendar) suiOf(rd calendar.FixedDay) sui {
	s1 := c.winterSolsticeOnBefore(rd)
	s2 := c.winterSolsticeOnBefore(s1 + 370)
	m12 := c.newMoonOnAfter(s1 + 1)
	m11Next := c.newMoonBefore(s2 + 1)

	return sui{
		solstice:     s1,
		nextSolstice: s2,
		m12:          m12,
		m11Next:      m11Next,
		leap:         lunations(m12, m11Next) == 12,
	}
}

// lunations rounds the span between two new moons to whole months.
func lunations(from, to calendar.FixedDay) int {
	return int(math.Round(float64(to-from) / astro.MeanSynodicMonth))
}

// newYearInSui returns the Chinese New Year of the sui containing rd.
func (c *Calendar) newYearInSui(rd calendar.FixedDay) calendar.FixedDay {
	s := c.suiOf(rd)
	m13 := c.newMoonOnAfter(s.m12 + 1)

	// One of the two months after the 11th is the leap month, so the
	// first month starts a month later.
	if s.leap && (c.noMajorSolarTerm(s.m12) || c.noMajorSolarTerm(m13)) {
		return c.newMoonOnAfter(m13 + 1)
	}
	return m13
}

// newYearOnBefore returns the last Chinese New Year on or before rd.
func (c *Calendar) newYearOnBefore(rd calendar.FixedDay) calendar.FixedDay {
	ny := c.newYearInSui(rd)
	if rd >= ny {
		return ny
	}
	return c.newYearInSui(rd - 180)
}

// newYear returns the Chinese New Year in Gregorian year gYear.
func (c *Calendar) newYear(gYear int) calendar.FixedDay {
	return c.newYearOnBefore(calendar.FixedFromGregorian(gYear, time.July, 1))
}

// NewYear returns the fixed day of the Chinese New Year that falls in
// Gregorian year gYear.
func (c *Calendar) NewYear(gYear int) (day calendar.FixedDay, err error) {
	if err := checkYear(gYear); err != nil {
		return 0, err
	}
	defer catch(&err)
	return c.newYear(gYear), nil
}

// NewYearOnBefore returns the fixed day of the last Chinese New Year on or
// before rd.
func (c *Calendar) NewYearOnBefore(rd calendar.FixedDay) (day calendar.FixedDay, err error) {
	if err := checkRange(rd); err != nil {
		return 0, err
	}
	defer catch(&err)
	return c.newYearOnBefore(rd), nil
}
