package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"forum-backend/internal/common/logger"
	"forum-backend/internal/config"
	usersqlite "forum-backend/internal/features/user/repository/sqlite"
	userservice "forum-backend/internal/features/user/service"
	apphttp "forum-backend/internal/http"
	"forum-backend/internal/platform/db"
)

func main() {
	// Create cancellable root context for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("config load: %v", err))
	}

	logger.Init("forum-backend", cfg.Debug)

	database, err := db.Open(ctx, cfg.Database.Path)
	if err != nil {
		logger.Fatal().Err(err).Msg("sqlite open failed")
	}
	defer database.Close()

	// Bootstrap admin account, idempotently.
	userRepo := usersqlite.NewUserRepository(database)
	if err := userservice.EnsureAdmin(ctx, userRepo, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		logger.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	router, err := apphttp.NewRouter(database, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("router setup failed")
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("listen failed")
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown")
	}
	logger.Info().Msg("server stopped")
}
