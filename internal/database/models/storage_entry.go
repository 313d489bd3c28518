package models

import "time"

// StorageEntry is one persisted collection blob in the Postgres backend
type StorageEntry struct {
	Key       string    `gorm:"primaryKey;size:40"`
	Value     []byte    `gorm:"type:bytea;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName returns the table name for StorageEntry
func (StorageEntry) TableName() string {
	return "storage_entries"
}
