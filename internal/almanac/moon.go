package almanac

import (
	"context"
	"fmt"
	"time"

	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
	"github.com/zapponejosh/lunar-calendar-api/internal/chinese"
)

// Moon describes the Moon on one Beijing civil day.
type Moon struct {
	Phase    float64    `json:"phase"` // degrees from new moon, at noon
	Name     string     `json:"name"`
	NewMoon  bool       `json:"new_moon"`
	FullMoon bool       `json:"full_moon"`
	Time     *time.Time `json:"time,omitempty"` // of the new or full moon
}

// MoonEvent is a dated new or full moon.
type MoonEvent struct {
	Name string    `json:"name"`
	Full bool      `json:"full"`
	Date string    `json:"date"`
	Time time.Time `json:"time"`
}

func moonEventOf(e chinese.MoonEvent) MoonEvent {
	return MoonEvent{
		Name: e.Name,
		Full: e.Full,
		Date: calendar.FormatDate(e.Day),
		Time: e.Time(),
	}
}

func (s *Service) moon(rd calendar.FixedDay) (Moon, error) {
	phase, err := s.cal.MoonPhase(rd)
	if err != nil {
		return Moon{}, err
	}
	next, err := s.cal.MoonOnAfter(rd)
	if err != nil {
		return Moon{}, err
	}

	m := Moon{Phase: phase, Name: chinese.MoonPhaseName(phase)}
	if next.Day == rd {
		at := next.Time()
		m.Time = &at
		if next.Full {
			m.FullMoon, m.Name = true, "full moon"
		} else {
			m.NewMoon, m.Name = true, "new moon"
		}
	}
	return m, nil
}

// MoonEvents returns the new and full moons of Gregorian year gYear.
func (s *Service) MoonEvents(ctx context.Context, gYear int) ([]MoonEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	events, err := s.cal.MoonEvents(gYear)
	if err != nil {
		return nil, fmt.Errorf("moon events %d: %w", gYear, err)
	}

	out := make([]MoonEvent, 0, len(events))
	for _, e := range events {
		out = append(out, moonEventOf(e))
	}
	return out, nil
}
