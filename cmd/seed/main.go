// Command seed creates the two fixed accounts the system authenticates:
// a USER for filing reports and an ADMIN for the dashboard. Accounts that
// already exist are left untouched, so the command is safe to re-run.
package main

import (
	"context"
	"errors"
	stdlog "log"

	"github.com/sethvargo/go-envconfig"

	"github.com/marwa1454/formulaire/internal/core/domain"
	"github.com/marwa1454/formulaire/internal/core/service"
	"github.com/marwa1454/formulaire/internal/infrastructure/config"
	"github.com/marwa1454/formulaire/internal/infrastructure/db/postgres"
	"github.com/marwa1454/formulaire/pkg/logger"
)

type seedConfig struct {
	UserUsername  string `env:"SEED_USER_USERNAME,  default=user"`
	UserPassword  string `env:"SEED_USER_PASSWORD,  default=user123"`
	AdminUsername string `env:"SEED_ADMIN_USERNAME, default=admin"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD, default=admin123"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("failed to load configuration: %v", err)
	}

	var seeds seedConfig
	if err := envconfig.Process(context.Background(), &seeds); err != nil {
		stdlog.Fatalf("failed to load seed configuration: %v", err)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	db, err := postgres.Connect(cfg.Postgres, log)
	if err != nil {
		log.Fatal().Err(err).Msg("database unavailable")
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	repo := postgres.NewAuthRepository(db)
	ctx := context.Background()

	accounts := []struct {
		username string
		password string
		role     string
	}{
		{seeds.UserUsername, seeds.UserPassword, domain.RoleUser},
		{seeds.AdminUsername, seeds.AdminPassword, domain.RoleAdmin},
	}

	for _, a := range accounts {
		if _, err := repo.FindByUsername(ctx, a.username); err == nil {
			log.Info().Str("username", a.username).Msg("account already exists, skipping")
			continue
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			log.Fatal().Err(err).Str("username", a.username).Msg("account lookup failed")
		}

		hash, err := service.HashPassword(a.password)
		if err != nil {
			log.Fatal().Err(err).Msg("password hashing failed")
		}

		user := &domain.User{
			Username:       a.username,
			HashedPassword: hash,
			Role:           a.role,
			IsActive:       true,
		}
		if _, err := repo.Create(ctx, user); err != nil {
			log.Fatal().Err(err).Str("username", a.username).Msg("account creation failed")
		}
		log.Info().Str("username", a.username).Str("role", a.role).Msg("account created")
	}
}
