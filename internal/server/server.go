// Package server exposes the promptlab HTTP API over chi.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/thebtf/promptlab/internal/store"
)

// Options configures the HTTP service.
type Options struct {
	Version        string
	AllowedOrigins []string
}

// Service wires the store to the HTTP API.
type Service struct {
	version   string
	store     *store.Store
	router    chi.Router
	metrics   *metrics
	startTime time.Time
}

// New creates the service and mounts all routes.
func New(st *store.Store, opts Options) *Service {
	s := &Service{
		version:   opts.Version,
		store:     st,
		router:    chi.NewRouter(),
		metrics:   newMetrics(st),
		startTime: time.Now(),
	}
	st.SetPruneFunc(func(_ string, removed int) {
		s.metrics.pruned.Add(float64(removed))
	})

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.requestLogger)
	s.router.Use(middleware.Recoverer)

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	s.setupRoutes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Service) Handler() http.Handler { return s.router }

func (s *Service) setupRoutes() {
	s.router.Get("/health", s.handleHealth)
	s.router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	s.router.Route("/prompts", func(r chi.Router) {
		r.Get("/", s.handleListPrompts)
		r.Post("/", s.handleCreatePrompt)
		r.Route("/{promptID}", func(r chi.Router) {
			r.Get("/", s.handleGetPrompt)
			r.Put("/", s.handleReplacePrompt)
			r.Patch("/", s.handlePatchPrompt)
			r.Delete("/", s.handleDeletePrompt)
			r.Get("/variables", s.handlePromptVariables)
			r.Route("/versions", func(r chi.Router) {
				r.Get("/", s.handleListVersions)
				r.Get("/{versionNumber}", s.handleGetVersion)
				r.Post("/{versionNumber}/revert", s.handleRevertVersion)
			})
		})
	})

	s.router.Route("/collections", func(r chi.Router) {
		r.Get("/", s.handleListCollections)
		r.Post("/", s.handleCreateCollection)
		r.Route("/{collectionID}", func(r chi.Router) {
			r.Get("/", s.handleGetCollection)
			r.Delete("/", s.handleDeleteCollection)
		})
	})
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":         "healthy",
		"version":        s.version,
		"uptime_seconds": int(time.Since(s.startTime).Seconds()),
	})
}
