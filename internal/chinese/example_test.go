package chinese_test

import (
	"errors"
	"fmt"
	"time"

	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
	"github.com/zapponejosh/lunar-calendar-api/internal/chinese"
)

func ExampleCalendar_FromFixed() {
	cal := chinese.Default()

	d, err := cal.FromFixed(calendar.FixedFromGregorian(2023, time.January, 22))
	if err != nil {
		panic(err)
	}
	fmt.Println(d, d.YearName(), d.Zodiac(), d.Hanzi())
	// Output: 78-40-01-01 Guǐ-Mǎo Rabbit 癸卯年正月初一
}

func ExampleCalendar_ToFixed() {
	cal := chinese.Default()

	rd, err := cal.ToFixed(chinese.Date{Cycle: 78, Year: 40, Month: 2, Leap: true, Day: 1})
	if err != nil {
		panic(err)
	}
	fmt.Println(rd)

	_, err = cal.ToFixed(chinese.Date{Cycle: 78, Year: 40, Month: 3, Leap: true, Day: 1})
	fmt.Println(errors.Is(err, chinese.ErrInvalidDate))
	// Output:
	// 2023-03-22
	// true
}

func ExampleCalendar_NewYear() {
	rd, err := chinese.Default().NewYear(2020)
	if err != nil {
		panic(err)
	}
	fmt.Println(rd, rd.Weekday())
	// Output: 2020-01-25 Saturday
}
