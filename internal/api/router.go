package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/katalvlaran/ecoeval/internal/config"
	"github.com/katalvlaran/ecoeval/internal/metrics"
)

// NewRouter mounts the evaluation endpoints under /api/v1.
func NewRouter(cfg *config.Config, m *metrics.Metrics, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	if cfg.Server.TrustProxy {
		r.Use(chiMiddleware.RealIP)
	}
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(cfg.Server.RateLimitPerMin))
	if cfg.Server.MaxBodyBytes > 0 {
		r.Use(chiMiddleware.RequestSize(int64(cfg.Server.MaxBodyBytes)))
	}

	eval := NewEvalHandler(cfg.Defaults(), m, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(chiMiddleware.AllowContentType("application/json"))

		r.Post("/ahp", eval.AHP)
		r.Post("/entropy", eval.Entropy)
		r.Post("/combine", eval.Combine)
		r.Post("/composite", eval.Composite)
		r.Post("/pipeline", eval.Pipeline)
	})

	return r
}

// NewMetricsRouter serves /health and /metrics on the internal listener.
func NewMetricsRouter(m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", m.Handler())
	return r
}
