package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/verdictlab/verdict/internal/api/handlers"
	mw "github.com/verdictlab/verdict/internal/api/middleware"
	"github.com/verdictlab/verdict/internal/config"
	"github.com/verdictlab/verdict/internal/domain"
	"github.com/verdictlab/verdict/internal/rules"
	"github.com/verdictlab/verdict/internal/service"
	"github.com/verdictlab/verdict/internal/store"
)

// App holds the router and request metrics.
type App struct {
	Router       *chi.Mux
	startTime    time.Time
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

// NewApp wires the rule registry, fact store and HTTP surface. db may be
// nil, in which case facts live in process memory only.
func NewApp(db *pgxpool.Pool, logger *zap.Logger) *App {
	var facts domain.FactStore
	if db != nil {
		facts = store.NewFactStore(db)
	} else {
		facts = store.NewMemoryFactStore()
		logger.Warn("no database configured, answers are not persisted")
	}

	reg := rules.NewRegistry()
	rules.RegisterBuiltins(reg)

	temporal := config.Temporal()

	assessmentSvc := service.NewAssessmentService(reg, facts, temporal, logger)

	assessmentHandler := handlers.NewAssessmentHandler(assessmentSvc)
	rulesHandler := handlers.NewRulesHandler(assessmentSvc)
	factsHandler := handlers.NewFactsHandler(reg, facts)

	r := chi.NewRouter()

	app := &App{
		Router:    r,
		startTime: time.Now(),
	}

	metricsCollector := mw.NewMetricsCollector(&app.requestCount, &app.errorCount)

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metricsCollector.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst()))

	r.Get("/health", healthHandler(db))
	r.Get("/metrics", app.metricsHandler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/rules", rulesHandler.List)
		r.Post("/assessments", assessmentHandler.Evaluate)

		r.Route("/facts", func(r chi.Router) {
			r.Get("/defs", rulesHandler.ListFacts)
			r.Get("/", factsHandler.ListBySubject)
			r.Put("/", factsHandler.Put)
			r.Delete("/", factsHandler.Delete)
		})
	})

	return app
}

// NewRouter returns just the chi.Mux.
func NewRouter(db *pgxpool.Pool, logger *zap.Logger) *chi.Mux {
	return NewApp(db, logger).Router
}

func healthHandler(db *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.Ping(r.Context()); err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.requestCount.Load(),
			"error_count":    app.errorCount.Load(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb":       float64(memStats.Alloc) / 1024 / 1024,
				"total_alloc_mb": float64(memStats.TotalAlloc) / 1024 / 1024,
				"sys_mb":         float64(memStats.Sys) / 1024 / 1024,
				"num_gc":         memStats.NumGC,
			},
			"go_version": runtime.Version(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Compile-time interface checks.
var (
	_ domain.FactStore = (*store.FactStore)(nil)
	_ domain.FactStore = (*store.MemoryFactStore)(nil)
)
