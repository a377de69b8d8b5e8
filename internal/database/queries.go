package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// =============================================================================
// Chinese Year Queries
// =============================================================================

const yearColumns = `gregorian_year, new_year, cycle, year, leap_month, months_json, computed_at`

// GetYear retrieves the cached Chinese year beginning in Gregorian year
// gYear. Returns ErrNotFound if it has not been computed.
//
// This is the cache lookup behind /api/v1/chinese/year/{year}
func (db *DB) GetYear(ctx context.Context, gYear int) (*YearRecord, error) {
	return getYear(ctx, db, gYear)
}

// GetYear is GetYear within the transaction.
func (tx *Tx) GetYear(ctx context.Context, gYear int) (*YearRecord, error) {
	return getYear(ctx, tx, gYear)
}

func getYear(ctx context.Context, q sqlx.QueryerContext, gYear int) (*YearRecord, error) {
	var rec YearRecord
	err := sqlx.GetContext(ctx, q, &rec,
		`SELECT `+yearColumns+` FROM chinese_years WHERE gregorian_year = ?`, gYear)
	if err != nil {
		if err := mapError(err); err == ErrNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("query year %d: %w", gYear, err)
	}

	if rec.Months, err = UnmarshalMonths(rec.MonthsJSON); err != nil {
		return nil, fmt.Errorf("year %d: %w", gYear, err)
	}
	return &rec, nil
}

// ListYears returns the cached years from gregorian year from to to
// (inclusive), in order. Years not yet cached are simply absent.
func (db *DB) ListYears(ctx context.Context, from, to int) ([]YearRecord, error) {
	recs := []YearRecord{}
	err := db.SelectContext(ctx, &recs,
		`SELECT `+yearColumns+` FROM chinese_years
		WHERE gregorian_year BETWEEN ? AND ?
		ORDER BY gregorian_year`, from, to)
	if err != nil {
		return nil, fmt.Errorf("query years %d-%d: %w", from, to, err)
	}

	for i := range recs {
		if recs[i].Months, err = UnmarshalMonths(recs[i].MonthsJSON); err != nil {
			return nil, fmt.Errorf("year %d: %w", recs[i].GregorianYear, err)
		}
	}
	return recs, nil
}

// InsertYear adds a year to the cache. Returns ErrDuplicate if the year
// is already cached.
func (db *DB) InsertYear(ctx context.Context, rec *YearRecord) error {
	return writeYear(ctx, db, rec, `INSERT INTO chinese_years
		(gregorian_year, new_year, cycle, year, leap_month, months_json)
		VALUES (:gregorian_year, :new_year, :cycle, :year, :leap_month, :months_json)`)
}

const upsertYearSQL = `INSERT INTO chinese_years
	(gregorian_year, new_year, cycle, year, leap_month, months_json)
	VALUES (:gregorian_year, :new_year, :cycle, :year, :leap_month, :months_json)
	ON CONFLICT(gregorian_year) DO UPDATE SET
		new_year = excluded.new_year,
		cycle = excluded.cycle,
		year = excluded.year,
		leap_month = excluded.leap_month,
		months_json = excluded.months_json,
		computed_at = datetime('now')`

// UpsertYear adds a year to the cache or replaces the cached copy.
func (db *DB) UpsertYear(ctx context.Context, rec *YearRecord) error {
	return writeYear(ctx, db, rec, upsertYearSQL)
}

// UpsertYear is UpsertYear within the transaction.
func (tx *Tx) UpsertYear(ctx context.Context, rec *YearRecord) error {
	return writeYear(ctx, tx, rec, upsertYearSQL)
}

func writeYear(ctx context.Context, e sqlx.ExtContext, rec *YearRecord, query string) error {
	months, err := MarshalMonths(rec.Months)
	if err != nil {
		return err
	}
	rec.MonthsJSON = months

	if _, err := sqlx.NamedExecContext(ctx, e, query, rec); err != nil {
		if err := mapError(err); err == ErrDuplicate {
			return err
		}
		return fmt.Errorf("write year %d: %w", rec.GregorianYear, err)
	}
	return nil
}

// =============================================================================
// Solar Term Queries
// =============================================================================

// GetTerms returns the cached solar terms of Gregorian year gYear ordered
// by day. Returns ErrNotFound if the year has not been computed.
func (db *DB) GetTerms(ctx context.Context, gYear int) ([]TermRecord, error) {
	terms := []TermRecord{}
	err := db.SelectContext(ctx, &terms,
		`SELECT gregorian_year, longitude, day, moment, computed_at
		FROM solar_terms
		WHERE gregorian_year = ?
		ORDER BY day`, gYear)
	if err != nil {
		return nil, fmt.Errorf("query terms %d: %w", gYear, err)
	}
	if len(terms) == 0 {
		return nil, ErrNotFound
	}
	return terms, nil
}

// ReplaceTerms stores the solar terms of Gregorian year gYear, replacing
// any cached copy.
func (db *DB) ReplaceTerms(ctx context.Context, gYear int, terms []TermRecord) error {
	return db.WithTx(ctx, func(tx *Tx) error {
		return tx.ReplaceTerms(ctx, gYear, terms)
	})
}

// ReplaceTerms is ReplaceTerms within the transaction.
func (tx *Tx) ReplaceTerms(ctx context.Context, gYear int, terms []TermRecord) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM solar_terms WHERE gregorian_year = ?`, gYear); err != nil {
		return fmt.Errorf("clear terms %d: %w", gYear, err)
	}

	for i := range terms {
		terms[i].GregorianYear = gYear
		_, err := tx.NamedExecContext(ctx, `INSERT INTO solar_terms
			(gregorian_year, longitude, day, moment)
			VALUES (:gregorian_year, :longitude, :day, :moment)`, &terms[i])
		if err != nil {
			return fmt.Errorf("insert term %d/%d: %w", gYear, terms[i].Longitude, mapError(err))
		}
	}
	return nil
}

// =============================================================================
// Maintenance
// =============================================================================

// ClearCache removes every cached year and solar term. Returns the number
// of rows removed.
func (db *DB) ClearCache(ctx context.Context) (int64, error) {
	var total int64
	err := db.WithTx(ctx, func(tx *Tx) error {
		for _, table := range []string{"chinese_years", "solar_terms"} {
			res, err := tx.ExecContext(ctx, "DELETE FROM "+table)
			if err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
			total += n
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	db.logger.Info("cache cleared", "rows", total)
	return total, nil
}

// Stats returns a summary of the cache contents.
//
// Useful for:
// - Health check endpoint
// - Verifying precompute coverage
func (db *DB) Stats(ctx context.Context) (*CacheStats, error) {
	var stats CacheStats
	err := db.GetContext(ctx, &stats, `
		SELECT
			(SELECT COUNT(*) FROM chinese_years) AS years,
			(SELECT COUNT(DISTINCT gregorian_year) FROM solar_terms) AS term_years,
			(SELECT COALESCE(MIN(gregorian_year), 0) FROM chinese_years) AS earliest,
			(SELECT COALESCE(MAX(gregorian_year), 0) FROM chinese_years) AS latest
	`)
	if err != nil {
		return nil, fmt.Errorf("query cache stats: %w", err)
	}
	return &stats, nil
}
