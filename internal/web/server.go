package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dantdj/business-hours/internal/schedule"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Config configures the site server.
type Config struct {
	HTTPAddr string
	// Clock defaults to the host clock.
	Clock  schedule.Clock
	Logger zerolog.Logger
}

// Server serves the site over HTTP.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewServer builds a server listening on cfg.HTTPAddr.
func NewServer(cfg Config) (*Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg.Clock, cfg.Logger)
	if err != nil {
		return nil, err
	}
	return &Server{
		httpAddr: cfg.HTTPAddr,
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}, nil
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	serveErr := make(chan error, 1)
	log.Info().Str("addr", s.httpAddr).Msg("site listening")
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
