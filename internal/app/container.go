package app

import (
	"context"
	"log"
	"time"

	"tutor-match/internal/config"
	"tutor-match/internal/database"
	"tutor-match/internal/database/migration"
	dbpostgres "tutor-match/internal/database/postgres"
	"tutor-match/internal/infrastructure/cache"
	"tutor-match/internal/usecase"
	"tutor-match/internal/ws"
	"tutor-match/migrations"
)

// Container owns the process-wide dependencies and their lifecycle.
// Everything here is constructed explicitly and handed down; nothing
// is reached through package-level state.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  usecase.SearchCache
	Hub    *ws.Hub

	redis *cache.Redis
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	runner := migration.Runner{FS: migrations.FS()}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	r := cache.NewRedis(cfg.Redis, logger)

	hub := ws.NewHub(logger)
	go hub.Run()
	ws.SetDefaultHub(hub)

	return &Container{Config: cfg, DB: db, Cache: r, Hub: hub, redis: r}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.redis != nil {
		_ = c.redis.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
