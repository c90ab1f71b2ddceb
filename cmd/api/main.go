package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quickbite/api/internal/config"
	"github.com/quickbite/api/internal/database"
	"github.com/quickbite/api/internal/handler"
	"github.com/quickbite/api/internal/logger"
	"github.com/quickbite/api/internal/middleware"
	"github.com/quickbite/api/internal/repository"
	"github.com/quickbite/api/internal/router"
	"github.com/quickbite/api/internal/server"
	"github.com/quickbite/api/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.New()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), time.Minute)
	defer cancelMigrate()
	if err := database.Migrate(migrateCtx, log, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to run database migrations")
	}

	s, err := server.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(s)
	services := service.NewServices(s, repos)
	handlers := handler.NewHandlers(s, services)
	middlewares := middleware.NewMiddlewares(s)

	e := router.New(s, middlewares, handlers)
	s.SetupHTTPServer(e)

	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-done

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("failed to shut down cleanly")
	}
}
