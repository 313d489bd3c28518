// Package database opens the Postgres connection behind the postgres storage driver.
package database

import (
	"fmt"
	"time"

	"orgbook-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Options tunes the connection pool; zero values select defaults
type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

// withDefaults fills unset options; writes touch at most three rows
func (o Options) withDefaults() Options {
	if o.LogLevel == 0 {
		o.LogLevel = logger.Error
	}
	if o.MaxOpenConns == 0 {
		o.MaxOpenConns = 5
	}
	if o.MaxIdleConns == 0 {
		o.MaxIdleConns = 2
	}
	if o.ConnMaxLifetime == 0 {
		o.ConnMaxLifetime = 30 * time.Minute
	}
	if o.ConnMaxIdleTime == 0 {
		o.ConnMaxIdleTime = 10 * time.Minute
	}
	return o
}

// Initialize opens a Postgres connection and creates the storage_entries table
// unless opts.SkipMigrate is set
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	o = o.withDefaults()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(o.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(o.MaxOpenConns)
	sqlDB.SetMaxIdleConns(o.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(o.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(o.ConnMaxIdleTime)

	if o.SkipMigrate {
		return db, nil
	}
	if err := db.AutoMigrate(&models.StorageEntry{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate storage_entries: %w", err)
	}
	return db, nil
}
