package chinese

import (
	"fmt"
	"strings"
)

// Date is a day of the Chinese calendar.
type Date struct {
	Cycle int  `json:"cycle"` // sexagenary cycle, 1 began in 2637 BCE
	Year  int  `json:"year"`  // year in the cycle, 1 to 60
	Month int  `json:"month"` // 1 to 12
	Leap  bool `json:"leap"`  // the month is the leap month of its year
	Day   int  `json:"day"`   // 1 to 30
}

// ElapsedYears returns the number of Chinese years from the epoch up to
// and including d's year.
func (d Date) ElapsedYears() int {
	return (d.Cycle-1)*60 + d.Year
}

// Validate checks that each field of d is in range. It cannot tell
// whether a leap month or a 30th day exists; ToFixed does that.
func (d Date) Validate() error {
	switch {
	case d.Cycle < 1:
		return &DateError{Date: d, Reason: "cycle must be at least 1"}
	case d.Year < 1 || d.Year > 60:
		return &DateError{Date: d, Reason: "year must be between 1 and 60"}
	case d.Month < 1 || d.Month > 12:
		return &DateError{Date: d, Reason: "month must be between 1 and 12"}
	case d.Day < 1 || d.Day > 30:
		return &DateError{Date: d, Reason: "day must be between 1 and 30"}
	}
	return nil
}

// String formats d as cycle-year-month-day, marking a leap month with L,
// for example 78-40-02L-05.
func (d Date) String() string {
	leap := ""
	if d.Leap {
		leap = "L"
	}
	return fmt.Sprintf("%d-%02d-%02d%s-%02d", d.Cycle, d.Year, d.Month, leap, d.Day)
}

// YearName returns the stem-branch name of d's year.
func (d Date) YearName() Sexagenary {
	return SexagenaryName(d.Year)
}

// Zodiac returns the animal of d's year.
func (d Date) Zodiac() string {
	return d.YearName().Branch.Animal
}

// MonthName returns the month in characters, such as 闰二月 or 腊月.
func (d Date) MonthName() string {
	if d.Month < 1 || d.Month > 12 {
		return ""
	}
	name := monthNames[d.Month-1]
	if d.Leap {
		return "闰" + name
	}
	return name
}

// DayName returns the day of the month in characters, such as 初五.
func (d Date) DayName() string {
	return dayName(d.Day)
}

// Hanzi renders d in characters, for example 癸卯年闰二月初五.
func (d Date) Hanzi() string {
	var b strings.Builder
	b.WriteString(d.YearName().Hanzi())
	b.WriteString("年")
	b.WriteString(d.MonthName())
	b.WriteString(d.DayName())
	return b.String()
}
