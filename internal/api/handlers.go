package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/lunar-calendar-api/internal/almanac"
	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
	"github.com/zapponejosh/lunar-calendar-api/internal/chinese"
	"github.com/zapponejosh/lunar-calendar-api/internal/config"
	"github.com/zapponejosh/lunar-calendar-api/internal/database"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	almanac *almanac.Service
	db      *database.DB // nil when the cache is disabled
	cfg     *config.Config
	logger  *slog.Logger
	now     func() time.Time
}

// NewHandlers creates a new Handlers instance. db may be nil.
func NewHandlers(svc *almanac.Service, db *database.DB, cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		almanac: svc,
		db:      db,
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.db == nil {
		WriteSuccess(w, map[string]interface{}{
			"status": "healthy",
			"cache":  "disabled",
		})
		return
	}

	// Check database health
	if err := h.db.Health(ctx); err != nil {
		h.logger.Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", CodeHealthCheck)
		return
	}

	stats, err := h.db.Stats(ctx)
	if err != nil {
		h.logger.Warn("cache stats failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", CodeHealthCheck)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"status": "healthy",
		"cache":  stats,
	})
}

// GetToday handles GET /api/v1/chinese/today
func (h *Handlers) GetToday(w http.ResponseWriter, r *http.Request) {
	day, err := h.almanac.Today(r.Context(), h.now())
	if err != nil {
		WriteCalendarError(w, r, err)
		return
	}
	WriteSuccess(w, h.dayView(r, day))
}

// GetDate handles GET /api/v1/chinese/date/{YYYY-MM-DD}
func (h *Handlers) GetDate(w http.ResponseWriter, r *http.Request) {
	dateStr := chi.URLParam(r, "date")
	rd, err := calendar.ParseDateString(dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
		return
	}

	day, err := h.almanac.Day(r.Context(), rd)
	if err != nil {
		WriteCalendarError(w, r, err)
		return
	}
	WriteSuccess(w, h.dayView(r, day))
}

// GetRange handles GET /api/v1/chinese/range?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handlers) GetRange(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" || endStr == "" {
		WriteBadRequest(w, "Both start and end date parameters are required")
		return
	}

	start, err := calendar.ParseDateString(startStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid start date format: %s. Use YYYY-MM-DD", startStr))
		return
	}
	end, err := calendar.ParseDateString(endStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid end date format: %s. Use YYYY-MM-DD", endStr))
		return
	}

	days, err := h.almanac.Range(r.Context(), start, end)
	if err != nil {
		WriteCalendarError(w, r, err)
		return
	}

	views := make([]almanac.Day, 0, len(days))
	for _, d := range days {
		views = append(views, h.dayView(r, d))
	}
	WriteSuccess(w, map[string]interface{}{
		"start": startStr,
		"end":   endStr,
		"days":  views,
	})
}

// GetFixed handles GET /api/v1/chinese/fixed?cycle=&year=&month=&leap=&day=
func (h *Handlers) GetFixed(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var d chinese.Date
	fields := []struct {
		name string
		dst  *int
	}{
		{"cycle", &d.Cycle},
		{"year", &d.Year},
		{"month", &d.Month},
		{"day", &d.Day},
	}
	for _, f := range fields {
		v, err := strconv.Atoi(q.Get(f.name))
		if err != nil {
			WriteBadRequest(w, fmt.Sprintf("Parameter %s must be an integer", f.name))
			return
		}
		*f.dst = v
	}
	if s := q.Get("leap"); s != "" {
		leap, err := strconv.ParseBool(s)
		if err != nil {
			WriteBadRequest(w, "Parameter leap must be true or false")
			return
		}
		d.Leap = leap
	}

	day, err := h.almanac.Fixed(r.Context(), d)
	if err != nil {
		WriteCalendarError(w, r, err)
		return
	}
	WriteSuccess(w, h.dayView(r, day))
}

// GetNewYear handles GET /api/v1/chinese/newyear/{year}
func (h *Handlers) GetNewYear(w http.ResponseWriter, r *http.Request) {
	h.yearDay(w, r, h.almanac.NewYear)
}

// GetQingming handles GET /api/v1/chinese/qingming/{year}
func (h *Handlers) GetQingming(w http.ResponseWriter, r *http.Request) {
	h.yearDay(w, r, h.almanac.Qingming)
}

func (h *Handlers) yearDay(w http.ResponseWriter, r *http.Request, fn func(context.Context, int) (almanac.Day, error)) {
	year, ok := yearParam(w, r)
	if !ok {
		return
	}
	day, err := fn(r.Context(), year)
	if err != nil {
		WriteCalendarError(w, r, err)
		return
	}
	WriteSuccess(w, h.dayView(r, day))
}

// GetYear handles GET /api/v1/chinese/year/{year}
func (h *Handlers) GetYear(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(w, r)
	if !ok {
		return
	}

	y, err := h.almanac.Year(r.Context(), year)
	if err != nil {
		WriteCalendarError(w, r, err)
		return
	}
	if wantASCII(r) {
		y = y.ASCII()
	}
	WriteSuccess(w, y)
}

// GetTerms handles GET /api/v1/chinese/terms/{year}
func (h *Handlers) GetTerms(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(w, r)
	if !ok {
		return
	}

	terms, err := h.almanac.Terms(r.Context(), year)
	if err != nil {
		WriteCalendarError(w, r, err)
		return
	}
	if wantASCII(r) {
		for i := range terms {
			terms[i] = terms[i].ASCII()
		}
	}
	WriteSuccess(w, map[string]interface{}{
		"gregorian_year": year,
		"terms":          terms,
	})
}

// GetMoonEvents handles GET /api/v1/moon/{year}
func (h *Handlers) GetMoonEvents(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(w, r)
	if !ok {
		return
	}

	events, err := h.almanac.MoonEvents(r.Context(), year)
	if err != nil {
		WriteCalendarError(w, r, err)
		return
	}
	WriteSuccess(w, map[string]interface{}{
		"gregorian_year": year,
		"events":         events,
	})
}

// GetSolarEvents handles GET /api/v1/solar/{year}
func (h *Handlers) GetSolarEvents(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(w, r)
	if !ok {
		return
	}

	events, err := h.almanac.SolarEvents(r.Context(), year)
	if err != nil {
		WriteCalendarError(w, r, err)
		return
	}
	if wantASCII(r) {
		for i := range events {
			events[i] = events[i].ASCII()
		}
	}
	WriteSuccess(w, map[string]interface{}{
		"gregorian_year": year,
		"events":         events,
	})
}

// ClearCache handles DELETE /api/v1/cache
func (h *Handlers) ClearCache(w http.ResponseWriter, r *http.Request) {
	n, err := h.almanac.ClearCache(r.Context())
	if err != nil {
		WriteCalendarError(w, r, err)
		return
	}
	WriteSuccess(w, map[string]interface{}{"removed": n})
}

// dayView applies the ascii query option to a day.
func (h *Handlers) dayView(r *http.Request, d almanac.Day) almanac.Day {
	if wantASCII(r) {
		return d.ASCII()
	}
	return d
}

func wantASCII(r *http.Request) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get("ascii"))
	return err == nil && v
}

// yearParam reads the {year} path parameter, writing a 400 on failure.
func yearParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	s := chi.URLParam(r, "year")
	year, err := strconv.Atoi(s)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid year: %s", s))
		return 0, false
	}
	return year, true
}
