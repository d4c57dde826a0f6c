// Command server runs the travel API: user registration and login, the
// role-check endpoint, and the destination catalog, all behind one router
// sharing a single token codec and access guard.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	_ "github.com/travelgo/travel-api/docs"
	"github.com/travelgo/travel-api/internal/api"
	"github.com/travelgo/travel-api/internal/core/ports"
	"github.com/travelgo/travel-api/internal/core/token"
	memstore "github.com/travelgo/travel-api/internal/infrastructure/db/memory"
	mongostore "github.com/travelgo/travel-api/internal/infrastructure/db/mongo"
	redisstore "github.com/travelgo/travel-api/internal/infrastructure/db/redis"
	"github.com/travelgo/travel-api/internal/pkg/config"
	"github.com/travelgo/travel-api/pkg/logger"
)

// @title                      Travel API
// @version                    1.0
// @description                User registration and login, role-checked access, and the destination catalog.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	deps := api.Dependencies{
		Codec:   token.NewCodec(cfg.JWTSecret, cfg.TokenTTL),
		Logger:  log,
		Metrics: prometheus.DefaultRegisterer,
	}

	if cfg.Mongo.URI != "" {
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongodb connection failed")
		}
		defer func() {
			_ = client.Disconnect(context.Background())
		}()

		users := mongostore.NewUserRepository(db)
		if err := users.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("mongodb index creation failed")
		}

		deps.Mongo = db
		deps.Users = users
		deps.Destinations = mongostore.NewDestinationRepository(db)
		log.Info().Str("database", cfg.Mongo.Database).Msg("using mongodb store")
	} else {
		deps.Users, deps.Destinations, err = memoryStores(cfg.DataDir)
		if err != nil {
			log.Fatal().Err(err).Msg("in-memory store initialisation failed")
		}
		log.Info().Str("data_dir", cfg.DataDir).Msg("using in-memory store")
	}

	if cfg.Redis.Addr != "" {
		rdb, err := redisstore.Connect(ctx, redisstore.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() {
			_ = rdb.Close()
		}()

		deps.Redis = rdb
		deps.Cache = redisstore.NewCatalogCache(rdb, log)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("catalog cache enabled")
	}

	e := api.NewRouter(deps)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}

// memoryStores builds the in-memory repositories, with JSON snapshot files
// under dataDir when it is set.
func memoryStores(dataDir string) (ports.UserRepository, ports.DestinationRepository, error) {
	var userSnapshot, destinationSnapshot string
	if dataDir != "" {
		if err := os.MkdirAll(dataDir, 0o700); err != nil {
			return nil, nil, err
		}
		userSnapshot = filepath.Join(dataDir, "users.json")
		destinationSnapshot = filepath.Join(dataDir, "destinations.json")
	}

	users, err := memstore.NewUserRepository(userSnapshot)
	if err != nil {
		return nil, nil, err
	}
	destinations, err := memstore.NewDestinationRepository(destinationSnapshot)
	if err != nil {
		return nil, nil, err
	}
	return users, destinations, nil
}
