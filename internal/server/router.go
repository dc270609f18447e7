// Package server exposes the analysis pipeline over HTTP.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sells-group/compintel/internal/config"
	"github.com/sells-group/compintel/internal/pipeline"
)

// NewRouter builds the HTTP router: middleware stack, health check and
// the three analysis endpoints.
func NewRouter(svc *pipeline.Service, cfg config.ServerConfig) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(recoverer)
	r.Use(requestLogger)
	// Competitor batches can legitimately run for minutes.
	r.Use(chimw.Timeout(10 * time.Minute))

	if cfg.EnableCORS {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/analyze-site", h.AnalyzeSite)
		r.Post("/suggest-competitors", h.SuggestCompetitors)
		r.Post("/analyze-competitors", h.AnalyzeCompetitors)
	})

	return r
}
