// @title           Simple Test API
// @version         1.0.0
// @description     간단한 테스트용 REST API 서버입니다.
// @host            localhost:3000
// @BasePath        /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/simpletest/user-api/internal/api"
	"github.com/simpletest/user-api/internal/core/domain"
	"github.com/simpletest/user-api/internal/core/ports"
	"github.com/simpletest/user-api/internal/core/service"
	"github.com/simpletest/user-api/internal/infrastructure/db/memory"
	mongostore "github.com/simpletest/user-api/internal/infrastructure/db/mongo"
	redisstore "github.com/simpletest/user-api/internal/infrastructure/db/redis"
	"github.com/simpletest/user-api/internal/pkg/config"
	"github.com/simpletest/user-api/pkg/logger"
)

// userStore is what every backend provides.
type userStore interface {
	ports.UserStore
	ports.Pinger
}

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: cfg.AppName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("failed to open user store")
	}
	defer closeStore()

	startedAt := time.Now()
	users := service.NewUserService(store, log.With().Str("component", "users").Logger())
	if cfg.SeedUsers {
		if err := users.Seed(ctx, domain.SeedUsers()); err != nil {
			log.Fatal().Err(err).Msg("failed to seed users")
		}
	}

	router := api.NewRouter(api.Dependencies{
		Logger:    log,
		Users:     users,
		Greetings: service.NewGreetingService(log.With().Str("component", "greetings").Logger()),
		System: service.NewSystemService(service.AppInfo{
			Name:        cfg.AppName,
			Version:     cfg.AppVersion,
			Environment: cfg.Env,
		}, startedAt),
		Readiness:   map[string]ports.Pinger{cfg.StoreDriver: store},
		Development: cfg.IsDevelopment(),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("env", cfg.Env).
			Str("store", cfg.StoreDriver).
			Msgf("Application is running on: http://localhost:%s", cfg.Port)
		log.Info().Msgf("Swagger documentation: http://localhost:%s/api/index.html", cfg.Port)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			log.Error().Err(err).Msg("server failed")
		}
	case <-ctx.Done():
		log.Info().Msg("server shutting down")
	}

	shutdown(srv, cfg.ShutdownTimeout, log)
}

func shutdown(srv *http.Server, timeout time.Duration, log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return
	}
	log.Info().Msg("shutdown complete")
}

// openStore connects the backend named by cfg.StoreDriver. The returned func
// releases its connections.
func openStore(ctx context.Context, cfg *config.Config) (userStore, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverRedis:
		client, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:       cfg.Redis.Addr,
			DB:         cfg.Redis.DB,
			ClientName: cfg.AppName,
		})
		if err != nil {
			return nil, nil, err
		}
		return redisstore.NewUserStore(client, cfg.Redis.Prefix), func() { _ = client.Close() }, nil

	case config.DriverMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
			AppName:  cfg.AppName,
		})
		if err != nil {
			return nil, nil, err
		}
		store := mongostore.NewUserStore(db)
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, fmt.Errorf("mongo indexes: %w", err)
		}
		return store, func() { _ = client.Disconnect(context.Background()) }, nil

	case config.DriverMemory:
		return memory.NewUserStore(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
}
