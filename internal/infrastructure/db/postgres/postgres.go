package postgres

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/marwa1454/formulaire/internal/core/domain"
	"github.com/marwa1454/formulaire/internal/infrastructure/config"
)

const (
	connectAttempts   = 5
	connectRetryDelay = 2 * time.Second
)

// Connect opens a PostgreSQL connection and verifies it with a ping,
// retrying a bounded number of times with a fixed delay. Per-request
// operations are never retried; only this startup check is.
func Connect(cfg config.PostgresConfig, log zerolog.Logger) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.DBName, cfg.Port, cfg.SSLMode,
	)

	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			sqlDB, derr := db.DB()
			if derr == nil {
				if derr = sqlDB.Ping(); derr == nil {
					return db, nil
				}
			}
			err = derr
		}

		lastErr = err
		log.Warn().Err(err).Int("attempt", attempt).Msg("database not ready")
		if attempt < connectAttempts {
			time.Sleep(connectRetryDelay)
		}
	}

	return nil, fmt.Errorf("connect postgres after %d attempts: %w", connectAttempts, lastErr)
}

// Migrate creates or updates the signalements and users tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.Signalement{}, &domain.User{})
}
