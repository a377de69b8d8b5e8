// Package almanac answers calendar questions for the HTTP API and the
// command line tools. It combines the Chinese calendar engine with the
// SQLite cache of computed years and renders results as JSON-ready views.
package almanac

import (
	"context"
	"errors"
	"log/slog"

	"github.com/zapponejosh/lunar-calendar-api/internal/chinese"
	"github.com/zapponejosh/lunar-calendar-api/internal/database"
)

var (
	// ErrInvalidRange is returned for a range that ends before it starts
	// or spans more days than the service allows.
	ErrInvalidRange = errors.New("invalid date range")

	// ErrCacheDisabled is returned by cache maintenance when the service
	// runs without a cache.
	ErrCacheDisabled = errors.New("year cache disabled")
)

// Cache stores computed years and solar terms.
// This allows us to use either *database.DB or a test double.
type Cache interface {
	GetYear(ctx context.Context, gYear int) (*database.YearRecord, error)
	UpsertYear(ctx context.Context, rec *database.YearRecord) error
	GetTerms(ctx context.Context, gYear int) ([]database.TermRecord, error)
	ReplaceTerms(ctx context.Context, gYear int, terms []database.TermRecord) error
	ClearCache(ctx context.Context) (int64, error)
}

// DefaultMaxRangeDays caps Range when Options leaves it unset.
const DefaultMaxRangeDays = 90

// Options configures a Service.
type Options struct {
	// Cache is consulted before computing years and terms. Nil disables
	// caching.
	Cache Cache

	// MaxRangeDays is the longest span Range accepts.
	MaxRangeDays int

	Logger *slog.Logger
}

// Service resolves days, years and solar terms. It is safe for concurrent
// use.
type Service struct {
	cal          *chinese.Calendar
	cache        Cache
	maxRangeDays int
	logger       *slog.Logger
}

// New creates a Service over cal.
func New(cal *chinese.Calendar, opts Options) *Service {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.MaxRangeDays <= 0 {
		opts.MaxRangeDays = DefaultMaxRangeDays
	}
	return &Service{
		cal:          cal,
		cache:        opts.Cache,
		maxRangeDays: opts.MaxRangeDays,
		logger:       opts.Logger.With(slog.String("component", "almanac")),
	}
}

// Calendar returns the engine behind the service.
func (s *Service) Calendar() *chinese.Calendar {
	return s.cal
}

// MaxRangeDays returns the longest span Range accepts.
func (s *Service) MaxRangeDays() int {
	return s.maxRangeDays
}

// CacheEnabled reports whether the service has a cache.
func (s *Service) CacheEnabled() bool {
	return s.cache != nil
}

// ClearCache drops every cached year and solar term. Returns the number
// of rows removed.
func (s *Service) ClearCache(ctx context.Context) (int64, error) {
	if s.cache == nil {
		return 0, ErrCacheDisabled
	}
	n, err := s.cache.ClearCache(ctx)
	if err != nil {
		return 0, err
	}
	s.logger.Info("year cache cleared", slog.Int64("rows", n))
	return n, nil
}
