package main

import (
	stdlog "log"

	"github.com/marwa1454/formulaire/internal/api"
	"github.com/marwa1454/formulaire/internal/infrastructure/config"
	"github.com/marwa1454/formulaire/internal/infrastructure/db/postgres"
	"github.com/marwa1454/formulaire/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("failed to load configuration: %v", err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	db, err := postgres.Connect(cfg.Postgres, log)
	if err != nil {
		log.Fatal().Err(err).Msg("database unavailable")
	}

	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	e := api.NewRouter(db, cfg, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
