package database

import (
	"encoding/json"
	"fmt"
)

// YearRecord is a cached Chinese year. Days are R.D. fixed day numbers.
type YearRecord struct {
	GregorianYear int           `db:"gregorian_year" json:"gregorian_year"`
	NewYear       int           `db:"new_year" json:"new_year"`
	Cycle         int           `db:"cycle" json:"cycle"`
	Year          int           `db:"year" json:"year"`
	LeapMonth     int           `db:"leap_month" json:"leap_month"`
	MonthsJSON    string        `db:"months_json" json:"-"`
	ComputedAt    string        `db:"computed_at" json:"computed_at"`
	Months        []MonthRecord `db:"-" json:"months"`
}

// MonthRecord is one month of a cached year.
type MonthRecord struct {
	Number int  `json:"number"`
	Leap   bool `json:"leap"`
	Start  int  `json:"start"`
	Days   int  `json:"days"`
}

// TermRecord is a cached solar term.
type TermRecord struct {
	GregorianYear int     `db:"gregorian_year"`
	Longitude     int     `db:"longitude"`
	Day           int     `db:"day"`
	Moment        float64 `db:"moment"`
	ComputedAt    string  `db:"computed_at"`
}

// CacheStats summarizes the contents of the cache.
type CacheStats struct {
	Years     int `db:"years" json:"years"`
	TermYears int `db:"term_years" json:"term_years"`
	Earliest  int `db:"earliest" json:"earliest"` // Gregorian year, 0 when empty
	Latest    int `db:"latest" json:"latest"`
}

// MarshalMonths encodes months for the months_json column.
func MarshalMonths(months []MonthRecord) (string, error) {
	if months == nil {
		months = []MonthRecord{}
	}
	b, err := json.Marshal(months)
	if err != nil {
		return "", fmt.Errorf("marshal months: %w", err)
	}
	return string(b), nil
}

// UnmarshalMonths decodes the months_json column.
func UnmarshalMonths(s string) ([]MonthRecord, error) {
	if s == "" {
		return []MonthRecord{}, nil
	}
	var months []MonthRecord
	if err := json.Unmarshal([]byte(s), &months); err != nil {
		return nil, fmt.Errorf("unmarshal months: %w", err)
	}
	return months, nil
}
