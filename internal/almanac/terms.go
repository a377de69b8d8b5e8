package almanac

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
	"github.com/zapponejosh/lunar-calendar-api/internal/chinese"
	"github.com/zapponejosh/lunar-calendar-api/internal/database"
)

// Terms returns the 24 solar terms that begin in Gregorian year gYear,
// reading them from the cache when possible.
func (s *Service) Terms(ctx context.Context, gYear int) ([]Term, error) {
	log := s.logger.With(slog.Int("gregorian_year", gYear))

	if s.cache != nil {
		recs, err := s.cache.GetTerms(ctx, gYear)
		switch {
		case err == nil:
			log.Debug("terms cache hit")
			return termsFromRecords(recs), nil
		case database.IsNotFound(err):
			log.Debug("terms cache miss")
		default:
			log.Warn("terms cache read failed", slog.Any("error", err))
		}
	}

	events, err := s.cal.SolarTermsInYear(gYear)
	if err != nil {
		return nil, fmt.Errorf("terms %d: %w", gYear, err)
	}

	if s.cache != nil {
		if err := s.cache.ReplaceTerms(ctx, gYear, termRecords(events)); err != nil {
			log.Warn("terms cache write failed", slog.Any("error", err))
		}
	}

	terms := make([]Term, 0, len(events))
	for _, e := range events {
		terms = append(terms, termFromEvent(e))
	}
	return terms, nil
}

// Qingming describes the day of the Qīngmíng festival in Gregorian year
// gYear.
func (s *Service) Qingming(ctx context.Context, gYear int) (Day, error) {
	rd, err := s.cal.Qingming(gYear)
	if err != nil {
		return Day{}, fmt.Errorf("qingming %d: %w", gYear, err)
	}
	return s.Day(ctx, rd)
}

// SolarEvent is an equinox or solstice.
type SolarEvent struct {
	Name string `json:"name"`
	Term
}

// SolarEvents returns the equinoxes and solstices of Gregorian year gYear.
func (s *Service) SolarEvents(ctx context.Context, gYear int) ([]SolarEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	events, err := s.cal.SolarEvents(gYear)
	if err != nil {
		return nil, fmt.Errorf("solar events %d: %w", gYear, err)
	}

	out := make([]SolarEvent, 0, len(events))
	for _, e := range events {
		out = append(out, SolarEvent{Name: e.Name, Term: termFromEvent(e.TermEvent)})
	}
	return out, nil
}

func termRecords(events []chinese.TermEvent) []database.TermRecord {
	recs := make([]database.TermRecord, 0, len(events))
	for _, e := range events {
		recs = append(recs, database.TermRecord{
			Longitude: e.Term.Longitude,
			Day:       int(e.Day),
			Moment:    e.Moment,
		})
	}
	return recs
}

func termsFromRecords(recs []database.TermRecord) []Term {
	terms := make([]Term, 0, len(recs))
	for _, r := range recs {
		terms = append(terms, termFromEvent(chinese.TermEvent{
			Term:   chinese.SolarTermAt(r.Longitude),
			Day:    calendar.FixedDay(r.Day),
			Moment: r.Moment,
		}))
	}
	return terms
}
