package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/mkovtun/aifolio/internal/config"
	"github.com/mkovtun/aifolio/internal/logger"
	"github.com/mkovtun/aifolio/internal/portfolio"
	"github.com/mkovtun/aifolio/internal/storage"
)

type Server struct {
	httpServer *http.Server
	service    *portfolio.Service
	repo       *storage.Repository
	config     *config.Config
	logger     *logger.Logger
}

func NewServer(service *portfolio.Service, repo *storage.Repository, cfg *config.Config, log *logger.Logger) *Server {
	s := &Server{
		service: service,
		repo:    repo,
		config:  cfg,
		logger:  log,
	}

	r := chi.NewRouter()
	r.Use(s.requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Web.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-User-ID"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/assets", s.handleListAssets)
		r.Get("/portfolio", s.handleHoldings)
		r.Post("/portfolio/generate", s.handleGenerate)
		r.Post("/positions", s.handleAddPosition)
		r.Put("/positions/{id}", s.handleUpdateQuantity)
		r.Delete("/positions/{id}", s.handleRemovePosition)
	})

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Web.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return s
}

func (s *Server) Start() error {
	s.logger.Info("web server starting", "port", s.config.Web.Port)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("web server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
