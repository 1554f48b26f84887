package main

import (
	"context"
	"log"

	"github.com/memoboard/memo-backend/config"
	"github.com/memoboard/memo-backend/internal/bootstrap"
	"github.com/memoboard/memo-backend/internal/memo/repository"
	"github.com/memoboard/memo-backend/internal/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()
	db, err := postgres.NewConnection(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	store := repository.NewPostgresStore(db)
	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatalf("schema: %v", err)
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "memo-backend",
		Version:     cfg.App.Version,
		DB:          db,
		Store:       store,
		StaticDir:   cfg.Server.StaticDir,
		CORSOrigins: cfg.Server.CORSOrigins,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	log.Fatal(r.Run(":" + cfg.Server.Port))
}
