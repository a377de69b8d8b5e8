package chinese

import (
	"cmp"
	"slices"
	"time"

	"github.com/zapponejosh/lunar-calendar-api/internal/astro"
	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
)

// MoonEvent is a new or full moon.
type MoonEvent struct {
	Name   string            `json:"name"`
	Full   bool              `json:"full"`
	Day    calendar.FixedDay `json:"-"`
	Moment float64           `json:"-"` // Universal Time
}

// Time returns the moment of the event in Beijing time.
func (e MoonEvent) Time() time.Time {
	return BeijingTime(e.Moment)
}

// moonOnAfter returns the first new moon, or full moon when full is set,
// falling on Beijing day rd or later.
func (c *Calendar) moonOnAfter(rd calendar.FixedDay, full bool) MoonEvent {
	start := midnightInChina(rd)
	if full {
		t := c.lunarPhaseAtAfter(astro.FullMoonPhase, start)
		return MoonEvent{Name: "Full Moon", Full: true, Day: standardDay(t, rd), Moment: t}
	}
	t := c.newMoonMomentAtAfter(start)
	return MoonEvent{Name: "New Moon", Day: standardDay(t, rd), Moment: t}
}

// MoonOnAfter returns the first new or full moon falling on Beijing day
// rd or later.
func (c *Calendar) MoonOnAfter(rd calendar.FixedDay) (e MoonEvent, err error) {
	if err := checkRange(rd); err != nil {
		return MoonEvent{}, err
	}
	defer catch(&err)

	nm := c.moonOnAfter(rd, false)
	fm := c.moonOnAfter(rd, true)
	if fm.Moment < nm.Moment {
		return fm, nil
	}
	return nm, nil
}

// MoonEvents returns the new and full moons whose Beijing day falls in
// Gregorian year gYear, in order.
func (c *Calendar) MoonEvents(gYear int) (events []MoonEvent, err error) {
	if err := checkYear(gYear); err != nil {
		return nil, err
	}
	defer catch(&err)

	start := calendar.GregorianNewYear(gYear)
	end := calendar.GregorianNewYear(gYear + 1)
	events = make([]MoonEvent, 0, 26)
	for _, full := range []bool{false, true} {
		for rd := start; ; {
			e := c.moonOnAfter(rd, full)
			if e.Day >= end {
				break
			}
			events = append(events, e)
			rd = e.Day + 1
		}
	}
	slices.SortFunc(events, func(a, b MoonEvent) int {
		return cmp.Compare(a.Moment, b.Moment)
	})
	return events, nil
}

// MoonPhase returns the lunar phase, in degrees from new moon, at noon in
// Beijing on rd.
func (c *Calendar) MoonPhase(rd calendar.FixedDay) (phase float64, err error) {
	if err := checkRange(rd); err != nil {
		return 0, err
	}
	defer catch(&err)
	return c.lunarPhase(midnightInChina(rd) + 0.5), nil
}

// MoonPhaseName describes a lunar phase in degrees.
func MoonPhaseName(phase float64) string {
	switch phase = calendar.ModF(phase, 360); {
	case phase < 90:
		return "waxing crescent"
	case phase < 180:
		return "waxing gibbous"
	case phase < 270:
		return "waning gibbous"
	default:
		return "waning crescent"
	}
}
