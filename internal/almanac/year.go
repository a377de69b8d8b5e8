package almanac

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
	"github.com/zapponejosh/lunar-calendar-api/internal/chinese"
	"github.com/zapponejosh/lunar-calendar-api/internal/database"
)

// Year is the table of the Chinese year that begins in a Gregorian year.
type Year struct {
	GregorianYear int     `json:"gregorian_year"`
	NewYear       string  `json:"new_year"`
	Cycle         int     `json:"cycle"`
	Year          int     `json:"year"`
	Name          string  `json:"name"`  // Guǐ-Mǎo
	Hanzi         string  `json:"hanzi"` // 癸卯
	Zodiac        string  `json:"zodiac"`
	LeapMonth     int     `json:"leap_month"` // 0 when the year has none
	Days          int     `json:"days"`
	Months        []Month `json:"months"`
}

// Month is one row of a year table.
type Month struct {
	Number int    `json:"number"`
	Leap   bool   `json:"leap"`
	Name   string `json:"name"` // 闰二月
	Start  string `json:"start"`
	End    string `json:"end"`
	Days   int    `json:"days"`
}

func yearView(y chinese.Year) Year {
	name := y.Name()
	v := Year{
		GregorianYear: y.GregorianYear,
		NewYear:       calendar.FormatDate(y.NewYear),
		Cycle:         y.Cycle,
		Year:          y.Year,
		Name:          name.String(),
		Hanzi:         name.Hanzi(),
		Zodiac:        name.Branch.Animal,
		LeapMonth:     y.LeapMonth,
		Days:          y.Days(),
		Months:        make([]Month, 0, len(y.Months)),
	}
	for _, m := range y.Months {
		v.Months = append(v.Months, Month{
			Number: m.Number,
			Leap:   m.Leap,
			Name:   chinese.Date{Month: m.Number, Leap: m.Leap}.MonthName(),
			Start:  calendar.FormatDate(m.Start),
			End:    calendar.FormatDate(m.Start + calendar.FixedDay(m.Days-1)),
			Days:   m.Days,
		})
	}
	return v
}

// Year returns the table of the Chinese year beginning in Gregorian year
// gYear, reading it from the cache when possible.
func (s *Service) Year(ctx context.Context, gYear int) (Year, error) {
	y, err := s.chineseYear(ctx, gYear)
	if err != nil {
		return Year{}, err
	}
	return yearView(y), nil
}

func (s *Service) chineseYear(ctx context.Context, gYear int) (chinese.Year, error) {
	log := s.logger.With(slog.Int("gregorian_year", gYear))

	if s.cache != nil {
		rec, err := s.cache.GetYear(ctx, gYear)
		switch {
		case err == nil:
			log.Debug("year cache hit")
			return yearFromRecord(rec), nil
		case database.IsNotFound(err):
			log.Debug("year cache miss")
		default:
			log.Warn("year cache read failed", slog.Any("error", err))
		}
	}

	y, err := s.cal.YearInfo(gYear)
	if err != nil {
		return chinese.Year{}, fmt.Errorf("year %d: %w", gYear, err)
	}

	if s.cache != nil {
		if err := s.cache.UpsertYear(ctx, yearRecord(y)); err != nil {
			log.Warn("year cache write failed", slog.Any("error", err))
		}
	}
	return y, nil
}

// Precompute computes the year and solar terms of gYear and stores them,
// replacing anything cached. The cache is required.
func (s *Service) Precompute(ctx context.Context, gYear int) error {
	if s.cache == nil {
		return ErrCacheDisabled
	}

	y, err := s.cal.YearInfo(gYear)
	if err != nil {
		return fmt.Errorf("year %d: %w", gYear, err)
	}
	events, err := s.cal.SolarTermsInYear(gYear)
	if err != nil {
		return fmt.Errorf("terms %d: %w", gYear, err)
	}

	if err := s.cache.UpsertYear(ctx, yearRecord(y)); err != nil {
		return err
	}
	return s.cache.ReplaceTerms(ctx, gYear, termRecords(events))
}

func yearRecord(y chinese.Year) *database.YearRecord {
	rec := &database.YearRecord{
		GregorianYear: y.GregorianYear,
		NewYear:       int(y.NewYear),
		Cycle:         y.Cycle,
		Year:          y.Year,
		LeapMonth:     y.LeapMonth,
		Months:        make([]database.MonthRecord, 0, len(y.Months)),
	}
	for _, m := range y.Months {
		rec.Months = append(rec.Months, database.MonthRecord{
			Number: m.Number,
			Leap:   m.Leap,
			Start:  int(m.Start),
			Days:   m.Days,
		})
	}
	return rec
}

func yearFromRecord(rec *database.YearRecord) chinese.Year {
	y := chinese.Year{
		GregorianYear: rec.GregorianYear,
		NewYear:       calendar.FixedDay(rec.NewYear),
		Cycle:         rec.Cycle,
		Year:          rec.Year,
		LeapMonth:     rec.LeapMonth,
		Months:        make([]chinese.Month, 0, len(rec.Months)),
	}
	for _, m := range rec.Months {
		y.Months = append(y.Months, chinese.Month{
			Number: m.Number,
			Leap:   m.Leap,
			Start:  calendar.FixedDay(m.Start),
			Days:   m.Days,
		})
	}
	return y
}
