package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zapponejosh/lunar-calendar-api/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET    /health
//	GET    /api/v1/chinese/today
//	GET    /api/v1/chinese/date/{date}          YYYY-MM-DD
//	GET    /api/v1/chinese/range?start=&end=
//	GET    /api/v1/chinese/fixed?cycle=&year=&month=&leap=&day=
//	GET    /api/v1/chinese/newyear/{year}
//	GET    /api/v1/chinese/qingming/{year}
//	GET    /api/v1/chinese/year/{year}
//	GET    /api/v1/chinese/terms/{year}
//	GET    /api/v1/solar/{year}
//	GET    /api/v1/moon/{year}
//	DELETE /api/v1/cache                         X-API-Key
//
// Every GET under /api/v1 accepts ascii=1 to strip tone marks from pinyin.
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RecoveryMiddleware(logger),
		middleware.CleanPath,
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(),
	)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteNotFound(w, "No route for "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed", CodeMethodNotAllowed)
	})

	// ==========================================================================
	// Public routes
	// ==========================================================================
	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/chinese", func(r chi.Router) {
			r.Get("/today", handlers.GetToday)
			r.Get("/date/{date}", handlers.GetDate)
			r.Get("/range", handlers.GetRange)
			r.Get("/fixed", handlers.GetFixed)
			r.Get("/newyear/{year}", handlers.GetNewYear)
			r.Get("/qingming/{year}", handlers.GetQingming)
			r.Get("/year/{year}", handlers.GetYear)
			r.Get("/terms/{year}", handlers.GetTerms)
		})
		r.Get("/solar/{year}", handlers.GetSolarEvents)
		r.Get("/moon/{year}", handlers.GetMoonEvents)

		// ======================================================================
		// Maintenance routes (API key)
		// ======================================================================
		r.With(AuthMiddleware(cfg, logger)).Delete("/cache", handlers.ClearCache)
	})

	return r
}
