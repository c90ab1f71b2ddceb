// Package server defines the core Server struct that composes the app's
// main dependencies.
//
// It owns the lifecycle of the configuration, logger, database pool, and
// http.Server, and provides start/shutdown logic to run the application
// cleanly.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/quickbite/api/internal/config"
	"github.com/quickbite/api/internal/database"
)

// Server is the application container that holds shared resources. It is
// not the HTTP server itself; the internal *http.Server is configured in
// SetupHTTPServer and started in Start.
type Server struct {
	Config *config.Config
	Logger *zerolog.Logger
	DB     *database.Database

	httpServer *http.Server
}

// New constructs a Server and initializes core dependencies. The database
// is pinged during construction, so startup fails fast when it is down.
func New(cfg *config.Config, logger *zerolog.Logger) (*Server, error) {
	db, err := database.New(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Server{
		Config: cfg,
		Logger: logger,
		DB:     db,
	}, nil
}

// SetupHTTPServer configures the internal net/http server with the router
// as handler. Timeouts come from config and protect against slow clients.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It blocks until the server stops or errors.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server, letting in-flight requests
// finish until ctx expires, then closes the database pool.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	if err := s.DB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	return nil
}
