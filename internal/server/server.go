// Package server provides the loopback HTTP API and change feed for the career planner.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-planner/internal/catalog"
	"github.com/jonathan/career-planner/internal/profile"
)

const shutdownTimeout = 10 * time.Second

// Server represents the HTTP server
type Server struct {
	httpServer   *http.Server
	session      *profile.Session
	catalog      *catalog.Catalog
	logger       zerolog.Logger
	resultsLimit int
	upgrader     websocket.Upgrader
	now          func() time.Time

	closing   chan struct{}
	closeOnce sync.Once
}

// Config holds server configuration
type Config struct {
	Host         string
	Port         int
	ResultsLimit int // majors returned by /results when no limit is given; 0 returns all
}

// New creates a new server instance
func New(cfg Config, session *profile.Session, cat *catalog.Catalog, logger zerolog.Logger) *Server {
	s := &Server{
		session:      session,
		catalog:      cat,
		logger:       logger.With().Str("component", "server").Logger(),
		resultsLimit: cfg.ResultsLimit,
		upgrader:     buildUpgrader(),
		now:          time.Now,
		closing:      make(chan struct{}),
	}

	s.httpServer = &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, fmt.Sprint(cfg.Port)),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s
}

// Addr returns the address the server listens on when started with Run
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Handler builds the router with all middleware attached
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.withRequestID, s.withLogging, middleware.Recoverer, s.withCORS)

	r.Get("/health", s.handleHealth)

	r.Route("/catalog", func(r chi.Router) {
		r.Get("/majors", s.handleListMajors)
		r.Get("/colleges", s.handleListColleges)
		r.Get("/jobs", s.handleListJobs)
	})

	r.Route("/profile", func(r chi.Router) {
		r.Get("/", s.handleGetProfile)
		r.Put("/courses/{course}", s.handleSetCourse)
		r.Delete("/courses/{course}", s.handleRemoveCourse)
		r.Post("/activities", s.handleAddActivity)
		r.Delete("/activities/{index}", s.handleRemoveActivity)
		r.Put("/skills/{skill}", s.handleRateSkill)
		r.Put("/preferences/{axis}", s.handleSetPreference)
		r.Put("/goals", s.handleSetGoals)
		r.Post("/goals/priorities/move", s.handleMovePriority)
		r.Post("/saved/{kind}/{id}", s.handleSave)
		r.Delete("/saved/{kind}/{id}", s.handleUnsave)
	})

	r.Get("/results", s.handleResults)
	r.Get("/dashboard", s.handleDashboard)
	r.Get("/plan/export", s.handleExport)
	r.Get("/plan/print", s.handlePrint)
	r.Get("/ws", s.handleFeed)

	return r
}

// Run listens on the configured address and serves until ctx is canceled
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled or the server fails,
// then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info().Str("addr", ln.Addr().String()).Msg("server listening")
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		s.logger.Info().Msg("shutting down server")
		s.closeOnce.Do(func() { close(s.closing) })

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		s.logger.Info().Msg("server stopped")
		return nil
	})

	return g.Wait()
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// writeError maps err to its status code and writes it
func (s *Server) writeError(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), err.Error())
}
