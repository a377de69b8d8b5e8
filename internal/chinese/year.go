package chinese

import "github.com/zapponejosh/lunar-calendar-api/internal/calendar"

// Month is one month of a Chinese year.
type Month struct {
	Number int               `json:"number"`
	Leap   bool              `json:"leap"`
	Start  calendar.FixedDay `json:"-"`
	Days   int               `json:"days"` // 29 or 30
}

// Year describes the Chinese year that begins in a Gregorian year.
type Year struct {
	GregorianYear int               `json:"gregorian_year"`
	NewYear       calendar.FixedDay `json:"-"`
	Cycle         int               `json:"cycle"`
	Year          int               `json:"year"`
	LeapMonth     int               `json:"leap_month"` // 0 when the year has none
	Months        []Month           `json:"months"`
}

// Name returns the stem-branch name of the year.
func (y Year) Name() Sexagenary {
	return SexagenaryName(y.Year)
}

// Days returns the length of the year in days.
func (y Year) Days() int {
	n := 0
	for _, m := range y.Months {
		n += m.Days
	}
	return n
}

// YearInfo lists the months of the Chinese year that begins in Gregorian
// year gYear.
func (c *Calendar) YearInfo(gYear int) (y Year, err error) {
	if err := checkYear(gYear); err != nil {
		return Year{}, err
	}
	if err := checkYear(gYear + 1); err != nil {
		return Year{}, err
	}
	defer catch(&err)

	start := c.newYear(gYear)
	end := c.newYear(gYear + 1)
	first := c.fromFixed(start)

	y = Year{
		GregorianYear: gYear,
		NewYear:       start,
		Cycle:         first.Cycle,
		Year:          first.Year,
		Months:        make([]Month, 0, 13),
	}
	for m := start; m < end; {
		next := c.newMoonOnAfter(m + 1)
		d := c.fromFixed(m)
		if d.Leap {
			y.LeapMonth = d.Month
		}
		y.Months = append(y.Months, Month{
			Number: d.Month,
			Leap:   d.Leap,
			Start:  m,
			Days:   int(next - m),
		})
		m = next
	}
	return y, nil
}
