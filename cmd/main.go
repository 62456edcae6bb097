package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/aurabank/aura-api/internal/config"
	"github.com/aurabank/aura-api/internal/events"
	"github.com/aurabank/aura-api/internal/handler"
	"github.com/aurabank/aura-api/internal/logging"
	redisClient "github.com/aurabank/aura-api/internal/redis"
	"github.com/aurabank/aura-api/internal/repository"
	"github.com/aurabank/aura-api/internal/router"
	"github.com/aurabank/aura-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.GinMode)

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Str("pkg", "main").Msg("aura api stopped")
	}
}

func run(cfg *config.Config) error {
	logger := log.With().Str("pkg", "main").Logger()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	users, err := repository.NewMemoryUserRepository(repository.DefaultSeed())
	if err != nil {
		return fmt.Errorf("failed to seed user directory: %w", err)
	}
	logger.Info().Int("users", users.Len()).Msg("user directory seeded")

	// Redis is optional: without it transfer events are dropped.
	var publisher service.EventPublisher = events.NopPublisher{}
	if cfg.Redis.Enabled() {
		redis, err := redisClient.NewClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer redis.Close()
		publisher = events.NewPublisher(redis.Client)
		logger.Info().Str("addr", cfg.Redis.Addr).Str("stream", events.TransferEventsStream).Msg("publishing transfer events")
	}

	accountSvc := service.NewAccountService(users, publisher)
	accountHandler := handler.NewAccountHandler(accountSvc, accountSvc)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.New(accountHandler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info().Str("port", cfg.Port).Msg("aura api starting")
		errChan <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info().Msg("shutting down...")
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
