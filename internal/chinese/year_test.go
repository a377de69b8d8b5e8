package chinese

import (
	"testing"
	"time"

	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
)

func TestYearInfo(t *testing.T) {
	c := Default()

	tests := []struct {
		gYear     int
		newYear   calendar.FixedDay
		year      int
		leapMonth int
		leapStart calendar.FixedDay
		days      int
	}{
		{2012, gregorian(2012, time.January, 23), 29, 4, gregorian(2012, time.May, 21), 384},
		{2017, gregorian(2017, time.January, 28), 34, 6, gregorian(2017, time.July, 23), 384},
		{2020, gregorian(2020, time.January, 25), 37, 4, gregorian(2020, time.May, 23), 384},
		{2022, gregorian(2022, time.February, 1), 39, 0, 0, 355},
		{2023, gregorian(2023, time.January, 22), 40, 2, gregorian(2023, time.March, 22), 384},
		{2025, gregorian(2025, time.January, 29), 42, 6, gregorian(2025, time.July, 25), 384},
	}

	for _, tt := range tests {
		y, err := c.YearInfo(tt.gYear)
		if err != nil {
			t.Fatalf("YearInfo(%d) error = %v", tt.gYear, err)
		}
		if y.NewYear != tt.newYear {
			t.Errorf("YearInfo(%d).NewYear = %s, want %s", tt.gYear, y.NewYear, tt.newYear)
		}
		if y.Cycle != 78 || y.Year != tt.year {
			t.Errorf("YearInfo(%d) cycle/year = %d/%d, want 78/%d", tt.gYear, y.Cycle, y.Year, tt.year)
		}
		if y.LeapMonth != tt.leapMonth {
			t.Errorf("YearInfo(%d).LeapMonth = %d, want %d", tt.gYear, y.LeapMonth, tt.leapMonth)
		}
		if got := y.Days(); got != tt.days {
			t.Errorf("YearInfo(%d).Days() = %d, want %d", tt.gYear, got, tt.days)
		}

		wantMonths := 12
		if tt.leapMonth != 0 {
			wantMonths = 13
		}
		if len(y.Months) != wantMonths {
			t.Fatalf("YearInfo(%d) has %d months, want %d", tt.gYear, len(y.Months), wantMonths)
		}

		number := 0
		for i, m := range y.Months {
			if m.Days != 29 && m.Days != 30 {
				t.Errorf("YearInfo(%d) month %d has %d days", tt.gYear, i, m.Days)
			}
			if m.Leap {
				if m.Number != tt.leapMonth || m.Start != tt.leapStart {
					t.Errorf("YearInfo(%d) leap month %d starts %s, want %d starting %s",
						tt.gYear, m.Number, m.Start, tt.leapMonth, tt.leapStart)
				}
				continue
			}
			number++
			if m.Number != number {
				t.Errorf("YearInfo(%d) month %d numbered %d, want %d", tt.gYear, i, m.Number, number)
			}
		}
	}
}

func TestYearInfo_OutOfRange(t *testing.T) {
	if _, err := Default().YearInfo(MaxYear); err == nil {
		t.Errorf("YearInfo(%d) succeeded, want an error past the window", MaxYear)
	}
}
