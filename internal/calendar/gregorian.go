// Package calendar provides the fixed-day axis shared by all calendar
// calculations, and the proleptic Gregorian calendar on top of it.
package calendar

import (
	"fmt"
	"math"
	"time"
)

// FixedDay is a Rata Die (R.D.) day number. Day 1 is January 1, AD 1 of
// the proleptic Gregorian calendar.
type FixedDay int

// gregorianEpoch is the fixed day of January 1, AD 1.
const gregorianEpoch FixedDay = 1

// Date is a date on the proleptic Gregorian calendar. Years are
// astronomical: year 0 is 1 BC.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	r400 := Mod(year, 400)
	return Mod(year, 4) == 0 && r400 != 100 && r400 != 200 && r400 != 300
}

// FixedFromGregorian converts a Gregorian date to a fixed day.
//
// The month term assumes February has 30 days and is corrected afterwards.
func FixedFromGregorian(year int, month time.Month, day int) FixedDay {
	y := year - 1
	m := int(month)
	rd := int(gregorianEpoch-1) + 365*y + DivFloor(y, 4) - DivFloor(y, 100) + DivFloor(y, 400) +
		DivFloor(367*m-362, 12)

	switch {
	case m <= 2:
		rd += day
	case IsLeapYear(year):
		rd += day - 1
	default:
		rd += day - 2
	}
	return FixedDay(rd)
}

// GregorianNewYear returns the fixed day of January 1 of year.
func GregorianNewYear(year int) FixedDay {
	return FixedFromGregorian(year, time.January, 1)
}

// GregorianYearFromFixed returns the Gregorian year containing rd.
func GregorianYearFromFixed(rd FixedDay) int {
	d0 := int(rd - gregorianEpoch)
	n400 := DivFloor(d0, 146097)
	d1 := Mod(d0, 146097)
	n100 := DivFloor(d1, 36524)
	d2 := Mod(d1, 36524)
	n4 := DivFloor(d2, 1461)
	d3 := Mod(d2, 1461)
	n1 := DivFloor(d3, 365)

	year := 400*n400 + 100*n100 + 4*n4 + n1
	if n100 == 4 || n1 == 4 {
		return year
	}
	return year + 1
}

// GregorianFromFixed converts a fixed day to a Gregorian date.
func GregorianFromFixed(rd FixedDay) Date {
	year := GregorianYearFromFixed(rd)
	priorDays := int(rd - GregorianNewYear(year))

	correction := 0
	if rd >= FixedFromGregorian(year, time.March, 1) {
		if IsLeapYear(year) {
			correction = 1
		} else {
			correction = 2
		}
	}

	month := time.Month(DivFloor(12*(priorDays+correction)+373, 367))
	day := int(rd-FixedFromGregorian(year, month, 1)) + 1
	return Date{Year: year, Month: month, Day: day}
}

// DateDifference returns the number of days from a until b.
func DateDifference(a, b Date) int {
	return int(b.Fixed() - a.Fixed())
}

// Fixed returns the fixed day of the date.
func (d Date) Fixed() FixedDay {
	return FixedFromGregorian(d.Year, d.Month, d.Day)
}

// Time returns midnight UTC at the start of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	if d.Year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -d.Year, int(d.Month), d.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Date returns the Gregorian date of the fixed day.
func (rd FixedDay) Date() Date {
	return GregorianFromFixed(rd)
}

// Time returns midnight UTC at the start of the fixed day.
func (rd FixedDay) Time() time.Time {
	return rd.Date().Time()
}

// Weekday returns the day of the week. R.D. 1 is a Monday.
func (rd FixedDay) Weekday() time.Weekday {
	return time.Weekday(Mod(int(rd), 7))
}

// String formats the fixed day as its Gregorian YYYY-MM-DD.
func (rd FixedDay) String() string {
	return rd.Date().String()
}

// FromTime returns the fixed day of t's calendar date in t's location.
func FromTime(t time.Time) FixedDay {
	y, m, d := t.Date()
	return FixedFromGregorian(y, m, d)
}

// TimeFromMoment converts a moment, a fixed day plus a fraction of a day,
// to a UTC time rounded to the second.
func TimeFromMoment(t float64) time.Time {
	day := math.Floor(t)
	secs := math.Round((t - day) * 86400)
	return FixedDay(day).Time().Add(time.Duration(secs) * time.Second)
}
