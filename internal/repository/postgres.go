package repository

import (
	"errors"
	"fmt"

	"orgbook-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostgresStorage keeps the collection blobs in the storage_entries table
type PostgresStorage struct {
	db *gorm.DB
}

// NewPostgresStorage creates a storage over an initialized gorm connection
func NewPostgresStorage(db *gorm.DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

// Get retrieves the entry for key
func (r *PostgresStorage) Get(key string) ([]byte, bool, error) {
	var entry models.StorageEntry
	err := r.db.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return entry.Value, true, nil
}

// Set upserts the entry for key
func (r *PostgresStorage) Set(key string, value []byte) error {
	entry := models.StorageEntry{Key: key, Value: value}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

// Ping checks the database connection
func (r *PostgresStorage) Ping() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.Ping()
}

// Close closes the underlying connection pool
func (r *PostgresStorage) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
