package cli

import (
	"fmt"
	"time"

	"orgbook-backend/internal/config"
	"orgbook-backend/internal/database"
	apperrors "orgbook-backend/internal/errors"
	"orgbook-backend/internal/logger"
	"orgbook-backend/internal/repository"

	"gorm.io/gorm"
)

const (
	connectAttempts = 10
	connectDelay    = 2 * time.Second
)

// OpenStorage returns the storage backend named by cfg.StorageDriver
func OpenStorage(cfg *config.Config) (repository.StorageInterface, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverSQLite:
		return repository.NewSQLiteStorage(cfg.DataDir)
	case config.StorageDriverFile:
		return repository.NewFileStorage(cfg.DataDir)
	case config.StorageDriverMemory:
		return repository.NewMemoryStorage(), nil
	case config.StorageDriverPostgres:
		db, err := connectWithRetry(cfg.DatabaseURL, connectAttempts, connectDelay)
		if err != nil {
			return nil, err
		}
		return repository.NewPostgresStorage(db), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownStorageDriver, cfg.StorageDriver)
	}
}

// connectWithRetry waits for Postgres to accept connections
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	log := logger.New().WithComponent("storage")

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, nil)
		if err == nil {
			return db, nil
		}
		lastErr = err
		log.WithError(err).WithField("attempt", attempt).Warn("Postgres not ready, retrying")
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("connect to postgres after %d attempts: %w", maxAttempts, lastErr)
}
