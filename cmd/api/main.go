package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/starcode/library-api/internal/api"
	"github.com/starcode/library-api/internal/infrastructure/config"
	mongorepo "github.com/starcode/library-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/starcode/library-api/internal/infrastructure/db/redis"
	"github.com/starcode/library-api/internal/infrastructure/storage"
	"github.com/starcode/library-api/pkg/logger"
)

const shutdownTimeout = 30 * time.Second

// @title           Library API
// @version         1.0
// @description     REST API for managing persons and books, with JWT authentication, HATEOAS pagination and file storage.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(cfg.LogLevel, cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongorepo.Connect(ctx, mongorepo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect")
		}
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	files, err := storage.NewLocal(cfg.Files.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("upload directory unavailable")
	}

	e := api.NewRouter(cfg, db, rdb, files)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown incomplete")
	}
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongorepo.NewPersonRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongorepo.NewBookRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongorepo.NewAuthRepository(db).EnsureIndexes(ctx)
}
