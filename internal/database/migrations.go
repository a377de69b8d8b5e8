package database

// migrationsSQL contains all database migrations.
// Migrations are applied in order by version number.
// Each migration should be idempotent (safe to run multiple times).
var migrationsSQL = map[int]string{
	1: migrationV1ChineseYears,
	2: migrationV2SolarTerms,
}

// migrationV1ChineseYears stores one row per Chinese year, keyed by the
// Gregorian year its New Year falls in. Days are R.D. fixed day numbers.
const migrationV1ChineseYears = `
CREATE TABLE IF NOT EXISTS chinese_years (
    gregorian_year INTEGER PRIMARY KEY,

    -- Fixed day of the New Year
    new_year INTEGER NOT NULL,

    cycle INTEGER NOT NULL CHECK (cycle >= 1),
    year INTEGER NOT NULL CHECK (year BETWEEN 1 AND 60),

    -- 0 when the year has no leap month
    leap_month INTEGER NOT NULL DEFAULT 0 CHECK (leap_month BETWEEN 0 AND 12),

    -- JSON array of {"number","leap","start","days"}
    months_json TEXT NOT NULL DEFAULT '[]',

    computed_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_chinese_years_new_year
    ON chinese_years(new_year);
`

// migrationV2SolarTerms stores the 24 solar terms of each Gregorian year.
const migrationV2SolarTerms = `
CREATE TABLE IF NOT EXISTS solar_terms (
    gregorian_year INTEGER NOT NULL,

    -- Solar longitude of the term, a multiple of 15
    longitude INTEGER NOT NULL CHECK (longitude BETWEEN 0 AND 345),

    -- Beijing civil day the term begins
    day INTEGER NOT NULL,

    -- Universal Time moment, fractional fixed day
    moment REAL NOT NULL,

    computed_at TEXT NOT NULL DEFAULT (datetime('now')),

    PRIMARY KEY (gregorian_year, longitude)
);

CREATE INDEX IF NOT EXISTS idx_solar_terms_day
    ON solar_terms(day);
`
