package main

import (
	"context"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mercadito/ecommerce-api/internal/api"
	mongostore "github.com/mercadito/ecommerce-api/internal/infrastructure/db/mongo"
	redisstore "github.com/mercadito/ecommerce-api/internal/infrastructure/db/redis"
	"github.com/mercadito/ecommerce-api/internal/pkg/config"
	"github.com/mercadito/ecommerce-api/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	ctx := context.Background()

	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer func() { _ = rdb.Close() }()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	e := api.NewRouter(db, rdb, cfg, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongostore.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongostore.NewProductRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongostore.NewCartRepository(db).EnsureIndexes(ctx)
}
