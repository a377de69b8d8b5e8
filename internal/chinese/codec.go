package chinese

import (
	"math"
	"time"

	"github.com/zapponejosh/lunar-calendar-api/internal/astro"
	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
)

// fromFixed decodes rd.
func (c *Calendar) fromFixed(rd calendar.FixedDay) Date {
	s := c.suiOf(rd)

	m := c.newMoonBefore(rd + 1) // start of the month holding rd
	mPrev := c.newMoonBefore(m)

	month := lunations(s.m12, m)
	if s.leap && c.priorLeapMonth(s.m12, m) {
		month--
	}
	month = calendar.Mod1(month, 12)

	leap := s.leap && c.noMajorSolarTerm(m) && !c.priorLeapMonth(s.m12, mPrev)

	elapsed := int(math.Floor(1.5 - float64(month)/12 + float64(rd-Epoch)/astro.MeanTropicalYear))

	return Date{
		Cycle: calendar.DivFloor(elapsed-1, 60) + 1,
		Year:  calendar.Mod1(elapsed, 60),
		Month: month,
		Leap:  leap,
		Day:   int(rd-m) + 1,
	}
}

// toFixed encodes d. It estimates the new moon of d's month from the New
// Year, corrects once for a leap month passed on the way, and rejects the
// date if the correction does not land on it.
func (c *Calendar) toFixed(d Date) (calendar.FixedDay, error) {
	midYear := calendar.FixedDay(math.Floor(float64(Epoch) + astro.MeanTropicalYear*(float64(d.ElapsedYears())-0.5)))
	if err := checkSearchStart(midYear); err != nil {
		return 0, err
	}

	newYear := c.newYearOnBefore(midYear)
	newMoon := c.newMoonOnAfter(newYear + calendar.FixedDay((d.Month-1)*29))

	got := c.fromFixed(newMoon)
	if got.Month != d.Month || got.Leap != d.Leap {
		newMoon = c.newMoonOnAfter(newMoon + 1)
		got = c.fromFixed(newMoon)
	}

	switch {
	case got.Cycle != d.Cycle || got.Year != d.Year:
		return 0, &DateError{Date: d, Reason: "month not found in that year"}
	case got.Leap != d.Leap && d.Leap:
		return 0, &DateError{Date: d, Reason: "month is not the leap month of that year"}
	case got.Month != d.Month || got.Leap != d.Leap:
		return 0, &DateError{Date: d, Reason: "month not found in that year"}
	}

	if length := int(c.newMoonOnAfter(newMoon+1) - newMoon); d.Day > length {
		return 0, &DateError{Date: d, Reason: "day past the end of a short month"}
	}

	rd := newMoon + calendar.FixedDay(d.Day-1)
	if err := checkRange(rd); err != nil {
		return 0, err
	}
	return rd, nil
}

// FromFixed returns the Chinese date of fixed day rd.
func (c *Calendar) FromFixed(rd calendar.FixedDay) (d Date, err error) {
	if err := checkRange(rd); err != nil {
		return Date{}, err
	}
	defer catch(&err)
	return c.fromFixed(rd), nil
}

// ToFixed returns the fixed day of Chinese date d. A date that names no
// day, such as a leap month in a year without one or day 30 of a 29-day
// month, yields an error wrapping ErrInvalidDate.
func (c *Calendar) ToFixed(d Date) (rd calendar.FixedDay, err error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	defer catch(&err)
	return c.toFixed(d)
}

// FromTime returns the Chinese date of the Beijing civil day containing t.
func (c *Calendar) FromTime(t time.Time) (Date, error) {
	return c.FromFixed(BeijingDay(t))
}
