package repository

import (
	"orgbook-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// Fixed storage keys, one per collection
const (
	KeyEmployees = "employees"
	KeyTopics    = "topics"
	KeyTeams     = "teams"
)

// StorageInterface is a durable key/value store holding one JSON blob per collection
type StorageInterface interface {
	// Get returns the stored value and whether the key exists
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Ping() error
	Close() error
}

// DirectoryRepositoryInterface defines the interface for loading and saving the three collections
type DirectoryRepositoryInterface interface {
	Load() *models.Snapshot
	SaveEmployees(employees []models.Employee) error
	SaveTopics(topics []models.Topic) error
	SaveTeams(teams []models.Team) error
	Ping() error
}
