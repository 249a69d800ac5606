package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/firmdesk/client-portal/internal/api"
	"github.com/firmdesk/client-portal/internal/core/service"
	"github.com/firmdesk/client-portal/internal/infrastructure/config"
	mongodb "github.com/firmdesk/client-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/firmdesk/client-portal/internal/infrastructure/db/redis"
	"github.com/firmdesk/client-portal/internal/infrastructure/storage/s3"
	"github.com/firmdesk/client-portal/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title           Client Portal API
// @version         1.0
// @description     Role-gated client management portal: authentication, service catalog, client assignments and document access.
// @BasePath        /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet; panic keeps the failure loud.
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.Production(),
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes failed")
	}

	if err := service.EnsureAdmin(ctx, mongodb.NewUserRepository(db), cfg.Admin.Email, cfg.Admin.Name, cfg.Admin.Phone, log); err != nil {
		log.Fatal().Err(err).Msg("admin bootstrap failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	blobs, err := s3.New(ctx, s3.Config{
		Region:    cfg.S3.Region,
		Endpoint:  cfg.S3.Endpoint,
		Bucket:    cfg.S3.Bucket,
		AccessKey: cfg.S3.AccessKey,
		SecretKey: cfg.S3.SecretKey,
		URLTTL:    cfg.S3.URLTTL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("s3 init failed")
	}

	e := api.NewRouter(cfg, db, rdb, blobs, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
