// Command precompute fills the SQLite cache with Chinese years and solar
// terms for a range of Gregorian years.
//
// Usage:
//
//	go run ./cmd/precompute -from 1900 -to 2100 -db data/lunar.db
//	go run ./cmd/precompute -from 2020 -to 2030 -verify
//
// This tool:
//  1. Creates/opens the SQLite database
//  2. Runs migrations to ensure schema is current
//  3. Computes and stores each year and its 24 solar terms
//  4. With -verify, checks that every day of the range converts to a
//     Chinese date and back to itself, stopping at the first mismatch,
//     and that every stored year matches a fresh computation
//
// Running it twice is safe: cached years are replaced.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/zapponejosh/lunar-calendar-api/internal/almanac"
	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
	"github.com/zapponejosh/lunar-calendar-api/internal/chinese"
	"github.com/zapponejosh/lunar-calendar-api/internal/database"
)

func main() {
	// Parse command line flags
	from := flag.Int("from", 1900, "First Gregorian year")
	to := flag.Int("to", 2100, "Last Gregorian year")
	dbPath := flag.String("db", "data/lunar.db", "Path to SQLite database")
	verify := flag.Bool("verify", false, "Check the round trip of every day in the range")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	// Setup logger
	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *from, *to, *dbPath, *verify, logger); err != nil {
		logger.Error("precompute failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("precompute complete")
}

// errMismatch marks a day that does not survive the round trip.
var errMismatch = errors.New("round trip mismatch")

func run(ctx context.Context, from, to int, dbPath string, verify bool, logger *slog.Logger) error {
	startTime := time.Now()

	if from > to {
		return fmt.Errorf("-from %d is after -to %d", from, to)
	}
	// YearInfo needs the following New Year as well
	if from < chinese.MinYear || to >= chinese.MaxYear {
		return fmt.Errorf("years must lie in %d..%d", chinese.MinYear, chinese.MaxYear-1)
	}

	// =========================================================================
	// Step 1: Open database and run migrations
	// =========================================================================
	logger.Info("opening database", slog.String("path", dbPath))

	db, err := database.Open(database.DefaultConfig(dbPath), logger)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	migrated, err := db.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("migrations complete", slog.Int("applied", migrated))

	// =========================================================================
	// Step 2: Compute and store each year
	// =========================================================================
	cal := chinese.Default()
	svc := almanac.New(cal, almanac.Options{Cache: db, Logger: logger})

	for year := from; year <= to; year++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := svc.Precompute(ctx, year); err != nil {
			return fmt.Errorf("precompute %d: %w", year, err)
		}
		logger.Debug("year stored", slog.Int("gregorian_year", year))
	}

	// =========================================================================
	// Step 3: Verify round trips
	// =========================================================================
	var checked int
	if verify {
		first := calendar.GregorianNewYear(from)
		last := calendar.GregorianNewYear(to+1) - 1
		if checked, err = verifyRange(ctx, cal, first, last); err != nil {
			return err
		}
		logger.Info("round trips verified", slog.Int("days", checked))

		if err := verifyCache(ctx, db, cal, from, to); err != nil {
			return err
		}
		logger.Info("cached years verified", slog.Int("years", to-from+1))
	}

	stats, err := db.Stats(ctx)
	if err != nil {
		return fmt.Errorf("cache stats: %w", err)
	}

	elapsed := time.Since(startTime)

	// Print summary
	fmt.Println()
	fmt.Println("=== Precompute Summary ===")
	fmt.Printf("Years cached:        %s (%d-%d)\n", humanize.Comma(int64(stats.Years)), stats.Earliest, stats.Latest)
	fmt.Printf("Term years cached:   %s\n", humanize.Comma(int64(stats.TermYears)))
	if verify {
		fmt.Printf("Days verified:       %s\n", humanize.Comma(int64(checked)))
	}
	fmt.Printf("Time elapsed:        %v\n", elapsed.Round(time.Millisecond))

	return nil
}

// verifyRange checks that each day from first to last decodes to a
// Chinese date that encodes back to the same day.
func verifyRange(ctx context.Context, cal *chinese.Calendar, first, last calendar.FixedDay) (int, error) {
	n := 0
	for rd := first; rd <= last; rd++ {
		if n%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return n, err
			}
		}

		d, err := cal.FromFixed(rd)
		if err != nil {
			return n, fmt.Errorf("decode %s: %w", rd, err)
		}
		back, err := cal.ToFixed(d)
		if err != nil {
			return n, fmt.Errorf("encode %s (from %s): %w", d, rd, err)
		}
		if back != rd {
			return n, fmt.Errorf("%w: %s -> %s -> %s", errMismatch, rd, d, back)
		}
		n++
	}
	return n, nil
}

// verifyCache re-reads the stored years and compares each New Year and
// leap month with a fresh computation.
func verifyCache(ctx context.Context, db *database.DB, cal *chinese.Calendar, from, to int) error {
	recs, err := db.ListYears(ctx, from, to)
	if err != nil {
		return err
	}
	if len(recs) != to-from+1 {
		return fmt.Errorf("%w: %d years cached, want %d", errMismatch, len(recs), to-from+1)
	}

	for _, rec := range recs {
		y, err := cal.YearInfo(rec.GregorianYear)
		if err != nil {
			return fmt.Errorf("year %d: %w", rec.GregorianYear, err)
		}
		if calendar.FixedDay(rec.NewYear) != y.NewYear || rec.LeapMonth != y.LeapMonth || len(rec.Months) != len(y.Months) {
			return fmt.Errorf("%w: cached year %d differs from computed", errMismatch, rec.GregorianYear)
		}
	}
	return nil
}
