package almanac

import (
	"context"
	"fmt"
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
	"github.com/zapponejosh/lunar-calendar-api/internal/chinese"
)

// Day is everything the almanac knows about one Beijing civil day.
type Day struct {
	FixedDay  calendar.FixedDay `json:"fixed_day"`
	Date      string            `json:"date"` // Gregorian, YYYY-MM-DD
	Weekday   string            `json:"weekday"`
	Chinese   chinese.Date      `json:"chinese"`
	Formatted string            `json:"formatted"` // 78-40-02L-05
	Hanzi     string            `json:"hanzi"`     // 癸卯年闰二月初五
	YearName  string            `json:"year_name"` // Guǐ-Mǎo
	Zodiac    string            `json:"zodiac"`
	DayName   string            `json:"day_name"` // stem-branch of the day
	MajorTerm Term              `json:"major_term"`
	Term      *Term             `json:"term,omitempty"` // the term that begins this day
	Moon      Moon              `json:"moon"`
	Sunrise   *time.Time        `json:"sunrise,omitempty"`
	Sunset    *time.Time        `json:"sunset,omitempty"`
}

// Term is a solar term, dated when it is a specific occurrence.
type Term struct {
	Pinyin    string     `json:"pinyin"`
	Hanzi     string     `json:"hanzi"`
	English   string     `json:"english"`
	Longitude int        `json:"longitude"`
	Major     bool       `json:"major"`
	Number    int        `json:"number"`
	Date      string     `json:"date,omitempty"`
	Time      *time.Time `json:"time,omitempty"`

	Day calendar.FixedDay `json:"-"`
}

func termOf(s chinese.SolarTerm) Term {
	return Term{
		Pinyin:    s.Pinyin,
		Hanzi:     s.Hanzi,
		English:   s.English,
		Longitude: s.Longitude,
		Major:     s.Major,
		Number:    s.Number(),
	}
}

func termFromEvent(e chinese.TermEvent) Term {
	t := termOf(e.Term)
	at := e.Time()
	t.Date = calendar.FormatDate(e.Day)
	t.Time = &at
	t.Day = e.Day
	return t
}

// Day describes Beijing civil day rd.
func (s *Service) Day(ctx context.Context, rd calendar.FixedDay) (Day, error) {
	if err := ctx.Err(); err != nil {
		return Day{}, err
	}

	d, err := s.cal.FromFixed(rd)
	if err != nil {
		return Day{}, fmt.Errorf("day %s: %w", rd, err)
	}
	major, err := s.cal.CurrentMajorSolarTerm(rd)
	if err != nil {
		return Day{}, fmt.Errorf("day %s: %w", rd, err)
	}
	next, err := s.cal.SolarTermOnAfter(rd)
	if err != nil {
		return Day{}, fmt.Errorf("day %s: %w", rd, err)
	}
	moon, err := s.moon(rd)
	if err != nil {
		return Day{}, fmt.Errorf("day %s: %w", rd, err)
	}

	day := Day{
		FixedDay:  rd,
		Date:      calendar.FormatDate(rd),
		Weekday:   calendar.DayName(rd),
		Chinese:   d,
		Formatted: d.String(),
		Hanzi:     d.Hanzi(),
		YearName:  d.YearName().String(),
		Zodiac:    d.Zodiac(),
		DayName:   chinese.DayCycleName(rd).String(),
		MajorTerm: termOf(chinese.MajorSolarTerm(major)),
		Moon:      moon,
	}
	if next.Day == rd {
		t := termFromEvent(next)
		day.Term = &t
	}
	day.Sunrise, day.Sunset = sunTimes(rd)
	return day, nil
}

// Today describes the Beijing civil day containing now.
func (s *Service) Today(ctx context.Context, now time.Time) (Day, error) {
	return s.Day(ctx, chinese.BeijingDay(now))
}

// Range describes every day from start to end inclusive.
func (s *Service) Range(ctx context.Context, start, end calendar.FixedDay) ([]Day, error) {
	if end < start {
		return nil, fmt.Errorf("%w: %s is before %s", ErrInvalidRange, end, start)
	}
	if n := int(end-start) + 1; n > s.maxRangeDays {
		return nil, fmt.Errorf("%w: %d days exceeds the limit of %d", ErrInvalidRange, n, s.maxRangeDays)
	}

	days := make([]Day, 0, int(end-start)+1)
	for rd := start; rd <= end; rd++ {
		d, err := s.Day(ctx, rd)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

// Fixed describes the day named by Chinese date d.
func (s *Service) Fixed(ctx context.Context, d chinese.Date) (Day, error) {
	rd, err := s.cal.ToFixed(d)
	if err != nil {
		return Day{}, err
	}
	return s.Day(ctx, rd)
}

// NewYear describes the Chinese New Year that falls in Gregorian year
// gYear.
func (s *Service) NewYear(ctx context.Context, gYear int) (Day, error) {
	rd, err := s.cal.NewYear(gYear)
	if err != nil {
		return Day{}, fmt.Errorf("new year %d: %w", gYear, err)
	}
	return s.Day(ctx, rd)
}

// sunTimes returns sunrise and sunset at the Beijing reference point on
// rd, in the zone then in force. Either is nil when the Sun does not
// rise or set.
func sunTimes(rd calendar.FixedDay) (rise, set *time.Time) {
	loc := chinese.Location(rd)
	date := rd.Date()
	r, st := sunrise.SunriseSunset(loc.Latitude, loc.Longitude, date.Year, date.Month, date.Day)

	tz := chinese.TimeZone(rd)
	if !r.IsZero() {
		r = r.In(tz)
		rise = &r
	}
	if !st.IsZero() {
		st = st.In(tz)
		set = &st
	}
	return rise, set
}
