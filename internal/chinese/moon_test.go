package chinese

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/zapponejosh/lunar-calendar-api/internal/astro"
	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
)

func TestMoonEvents(t *testing.T) {
	c := Default()

	events, err := c.MoonEvents(2023)
	if err != nil {
		t.Fatalf("MoonEvents error = %v", err)
	}
	if len(events) != 25 {
		t.Fatalf("MoonEvents(2023) returned %d events, want 25", len(events))
	}

	full := 0
	for i, e := range events {
		if e.Full {
			full++
		}
		if i > 0 && e.Full == events[i-1].Full {
			t.Errorf("events %d and %d are both %s", i-1, i, e.Name)
		}
		// A Chinese month begins on the day of each new moon.
		if !e.Full {
			d, err := c.FromFixed(e.Day)
			if err != nil {
				t.Fatalf("FromFixed(%s) error = %v", e.Day, err)
			}
			if d.Day != 1 {
				t.Errorf("new moon on %s falls on Chinese day %d", e.Day, d.Day)
			}
		}
	}
	if full != 13 {
		t.Errorf("MoonEvents(2023) has %d full moons, want 13", full)
	}

	tests := []struct {
		index int
		name  string
		day   string
	}{
		{0, "Full Moon", "2023-01-07"},
		{1, "New Moon", "2023-01-22"},
		{2, "Full Moon", "2023-02-06"},
		{24, "Full Moon", "2023-12-27"},
	}
	for _, tt := range tests {
		e := events[tt.index]
		if e.Name != tt.name || e.Day.String() != tt.day {
			t.Errorf("event %d = %s on %s, want %s on %s", tt.index, e.Name, e.Day, tt.name, tt.day)
		}
	}

	// The blue moon of August 2023.
	var august int
	for _, e := range events {
		if tm := e.Time(); e.Full && tm.Month() == time.August {
			august++
		}
	}
	if august != 2 {
		t.Errorf("found %d full moons in August 2023, want 2", august)
	}
}

func TestMoonOnAfter(t *testing.T) {
	c := Default()

	tests := []struct {
		from calendar.FixedDay
		name string
		want calendar.FixedDay
	}{
		{gregorian(2023, time.January, 22), "New Moon", gregorian(2023, time.January, 22)},
		{gregorian(2023, time.January, 23), "Full Moon", gregorian(2023, time.February, 6)},
		{gregorian(2023, time.August, 3), "New Moon", gregorian(2023, time.August, 16)},
		{gregorian(2023, time.August, 17), "Full Moon", gregorian(2023, time.August, 31)},
	}
	for _, tt := range tests {
		e, err := c.MoonOnAfter(tt.from)
		if err != nil {
			t.Fatalf("MoonOnAfter(%s) error = %v", tt.from, err)
		}
		if e.Name != tt.name || e.Day != tt.want {
			t.Errorf("MoonOnAfter(%s) = %s on %s, want %s on %s", tt.from, e.Name, e.Day, tt.name, tt.want)
		}
	}

	if _, err := c.MoonOnAfter(MaxFixedDay + 1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("MoonOnAfter(after window) error = %v, want ErrOutOfRange", err)
	}
}

func TestMoonPhase(t *testing.T) {
	c := Default()

	// Noon after the new moon, first quarter, full moon and last quarter
	// of early 2023.
	tests := []struct {
		day      calendar.FixedDay
		min, max float64
	}{
		{gregorian(2023, time.January, 22), 0, 10},
		{gregorian(2023, time.January, 29), 90, 105},
		{gregorian(2023, time.February, 6), 180, 192},
		{gregorian(2023, time.February, 14), 270, 285},
	}
	for _, tt := range tests {
		p, err := c.MoonPhase(tt.day)
		if err != nil {
			t.Fatalf("MoonPhase(%s) error = %v", tt.day, err)
		}
		if p < tt.min || p > tt.max {
			t.Errorf("MoonPhase(%s) = %v, want in [%v, %v]", tt.day, p, tt.min, tt.max)
		}
	}

	names := []struct {
		phase float64
		want  string
	}{
		{0, "waxing crescent"},
		{135, "waxing gibbous"},
		{180, "waning gibbous"},
		{300, "waning crescent"},
		{-10, "waning crescent"},
	}
	for _, tt := range names {
		if got := MoonPhaseName(tt.phase); got != tt.want {
			t.Errorf("MoonPhaseName(%v) = %q, want %q", tt.phase, got, tt.want)
		}
	}
}

type nanPhaseOracle struct {
	astro.Ephemeris
}

func (nanPhaseOracle) LunarPhaseAtAfter(float64, float64) float64 {
	return math.NaN()
}

func TestMoonEvents_OracleFailure(t *testing.T) {
	c := New(nanPhaseOracle{})
	if _, err := c.MoonEvents(2023); !errors.Is(err, ErrOracleFailure) {
		t.Errorf("MoonEvents error = %v, want ErrOracleFailure", err)
	}
	if _, err := c.MoonEvents(MaxYear + 1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("MoonEvents(%d) error = %v, want ErrOutOfRange", MaxYear+1, err)
	}
}
