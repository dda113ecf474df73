package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"codetally/internal/adapters/progress"
	"codetally/internal/logging"
	"codetally/internal/ports"
	"codetally/internal/services"
)

const shutdownTimeout = 30 * time.Second

// Server exposes scans and progress streams over HTTP
type Server struct {
	addr       string
	httpServer *http.Server
	registry   *progress.Registry
	scans      *services.ScanService
	store      ports.ReportStore
}

// NewServer creates a new Server listening on addr
func NewServer(addr string, scans *services.ScanService, registry *progress.Registry, store ports.ReportStore) *Server {
	s := &Server{
		addr:     addr,
		registry: registry,
		scans:    scans,
		store:    store,
	}
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the routed handler with middleware applied
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/analyze", s.handleAnalyze)
	mux.HandleFunc("POST /api/analyze-repo", s.handleAnalyzeRepo)
	mux.HandleFunc("GET /api/scans/{scanId}", s.handleGetScan)
	mux.HandleFunc("GET /api/logs/{sessionId}", s.handleLogs)
	mux.HandleFunc("GET /api/health", s.handleHealth)

	// Middleware executes outermost first
	return recoverMiddleware(requestLogMiddleware(corsMiddleware(mux)))
}

// Run serves until ctx is done, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logging.Logger.Info("Starting HTTP server", "address", s.addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}
	logging.Logger.Info("HTTP server stopped")
	return nil
}
