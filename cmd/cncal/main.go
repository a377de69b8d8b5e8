// Command cncal prints the Chinese calendar for a day, its solar terms,
// the table of its Chinese year, its equinoxes and solstices, or its new
// and full moons.
//
// Usage:
//
//	go run ./cmd/cncal                     # today in Beijing
//	go run ./cmd/cncal -t 2023-01-22
//	go run ./cmd/cncal -t 2023-06-01 -s year
//	go run ./cmd/cncal -s terms -ascii
//	go run ./cmd/cncal -s moon
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/zapponejosh/lunar-calendar-api/internal/almanac"
	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
	"github.com/zapponejosh/lunar-calendar-api/internal/chinese"
	"github.com/zapponejosh/lunar-calendar-api/internal/config"
	"github.com/zapponejosh/lunar-calendar-api/internal/logger"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr, time.Now()); err != nil {
		fmt.Fprintln(os.Stderr, "cncal:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer, now time.Time) error {
	fs := flag.NewFlagSet("cncal", flag.ContinueOnError)
	fs.SetOutput(stderr)
	date := fs.String("t", "", "Gregorian date YYYY-MM-DD (default: today in Beijing)")
	section := fs.String("s", "chinese", "What to print: chinese, terms, year, solar or moon")
	ascii := fs.Bool("ascii", false, "Strip tone marks from pinyin")
	verbose := fs.Bool("v", false, "Verbose output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Setup logger
	logCfg := &config.Config{Env: "cli", LogLevel: "warn", LogFormat: "text"}
	if *verbose {
		logCfg.LogLevel = "debug"
	}
	log := logger.New(logCfg, stderr)

	rd := chinese.BeijingDay(now)
	if *date != "" {
		var err error
		if rd, err = calendar.ParseDateString(*date); err != nil {
			return err
		}
	}
	log.Debug("resolved day", slog.String("date", calendar.FormatDate(rd)), slog.String("section", *section))

	svc := almanac.New(chinese.Default(), almanac.Options{Logger: log})
	p := &printer{svc: svc, ascii: *ascii}
	ctx := context.Background()

	switch *section {
	case "chinese":
		return p.day(ctx, stdout, rd)
	case "terms":
		return p.terms(ctx, stdout, rd.Date().Year)
	case "year":
		return p.year(ctx, stdout, rd)
	case "solar":
		return p.solar(ctx, stdout, rd.Date().Year)
	case "moon":
		return p.moon(ctx, stdout, rd.Date().Year)
	default:
		return fmt.Errorf("unknown section %q: want chinese, terms, year, solar or moon", *section)
	}
}

type printer struct {
	svc   *almanac.Service
	ascii bool
}

func (p *printer) text(s string) string {
	if p.ascii {
		return almanac.Fold(s)
	}
	return s
}

// =============================================================================
// Sections
// =============================================================================

func (p *printer) day(ctx context.Context, w io.Writer, rd calendar.FixedDay) error {
	d, err := p.svc.Day(ctx, rd)
	if err != nil {
		return err
	}
	if p.ascii {
		d = d.ASCII()
	}

	month := humanize.Ordinal(d.Chinese.Month) + " month"
	if d.Chinese.Leap {
		month = "leap " + month
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s %s\n", d.Date, d.Weekday)
	fmt.Fprintf(tw, "Chinese date:\t%s\t%s\n", d.Formatted, d.Hanzi)
	fmt.Fprintf(tw, "Year:\t%s (%s), year of the %s\n", d.YearName, d.Chinese.YearName().Hanzi(), d.Zodiac)
	fmt.Fprintf(tw, "Month:\t%s, %s day\n", month, humanize.Ordinal(d.Chinese.Day))
	fmt.Fprintf(tw, "Day:\t%s\n", d.DayName)
	fmt.Fprintf(tw, "Solar term:\t%s\n", termLine(d.MajorTerm))
	if d.Term != nil {
		fmt.Fprintf(tw, "Begins today:\t%s at %s\n", termLine(*d.Term), d.Term.Time.Format("15:04 MST"))
	}
	if d.Moon.Time != nil {
		fmt.Fprintf(tw, "Moon:\t%s at %s\n", d.Moon.Name, d.Moon.Time.Format("15:04 MST"))
	} else {
		fmt.Fprintf(tw, "Moon:\t%s, %.0f°\n", d.Moon.Name, d.Moon.Phase)
	}
	if d.Sunrise != nil && d.Sunset != nil {
		fmt.Fprintf(tw, "Sun:\trises %s, sets %s\n", d.Sunrise.Format("15:04"), d.Sunset.Format("15:04 MST"))
	}

	// Next New Year, counted from this day
	gYear := rd.Date().Year
	ny, err := p.svc.Calendar().NewYear(gYear)
	if err == nil && ny <= rd {
		ny, err = p.svc.Calendar().NewYear(gYear + 1)
	}
	if err == nil {
		fmt.Fprintf(tw, "New Year:\t%s, %s\n", calendar.FormatDate(ny), humanize.RelTime(ny.Time(), rd.Time(), "ago", "from now"))
	}
	return tw.Flush()
}

func termLine(t almanac.Term) string {
	kind := "minor"
	if t.Major {
		kind = "major"
	}
	return fmt.Sprintf("%s %s (%s), %s term %d", t.Pinyin, t.Hanzi, t.English, kind, t.Number)
}

func (p *printer) terms(ctx context.Context, w io.Writer, gYear int) error {
	terms, err := p.svc.Terms(ctx, gYear)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Solar terms of %d\n", gYear)
	for _, t := range terms {
		if p.ascii {
			t = t.ASCII()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d°\n", t.Date, t.Time.Format("15:04"), t.Pinyin, t.Hanzi, t.Longitude)
	}
	return tw.Flush()
}

func (p *printer) year(ctx context.Context, w io.Writer, rd calendar.FixedDay) error {
	// The Chinese year containing rd may have begun in the previous
	// Gregorian year.
	start, err := p.svc.Calendar().NewYearOnBefore(rd)
	if err != nil {
		return err
	}
	y, err := p.svc.Year(ctx, start.Date().Year)
	if err != nil {
		return err
	}
	if p.ascii {
		y = y.ASCII()
	}

	leap := "no leap month"
	if y.LeapMonth != 0 {
		leap = "leap month after the " + humanize.Ordinal(y.LeapMonth)
	}
	fmt.Fprintf(w, "%s %s, year of the %s (cycle %d, year %d)\n", y.Name, y.Hanzi, y.Zodiac, y.Cycle, y.Year)
	fmt.Fprintf(w, "%s days from %s, %s\n\n", humanize.Comma(int64(y.Days)), y.NewYear, leap)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Month\t\tStart\tEnd\tDays")
	for _, m := range y.Months {
		num := fmt.Sprintf("%d", m.Number)
		if m.Leap {
			num += "L"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", num, m.Name, m.Start, m.End, m.Days)
	}
	return tw.Flush()
}

func (p *printer) solar(ctx context.Context, w io.Writer, gYear int) error {
	events, err := p.svc.SolarEvents(ctx, gYear)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range events {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.Time.Format("2006-01-02 15:04 MST"), p.text(strings.TrimSpace(e.Pinyin+" "+e.Hanzi)))
	}
	return tw.Flush()
}

func (p *printer) moon(ctx context.Context, w io.Writer, gYear int) error {
	events, err := p.svc.MoonEvents(ctx, gYear)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "New and full moons of %d\n", gYear)
	for _, e := range events {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Date, e.Time.Format("15:04"), e.Name)
	}
	return tw.Flush()
}
