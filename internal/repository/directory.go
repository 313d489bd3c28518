package repository

import (
	"encoding/json"
	"fmt"

	"orgbook-backend/internal/database/models"
	apperrors "orgbook-backend/internal/errors"
	"orgbook-backend/internal/logger"
)

// DirectoryRepository encodes the three collections as JSON arrays under fixed keys
type DirectoryRepository struct {
	storage StorageInterface
	log     *logger.Logger
}

// NewDirectoryRepository creates a new directory repository over the given storage
func NewDirectoryRepository(storage StorageInterface) *DirectoryRepository {
	return &DirectoryRepository{
		storage: storage,
		log:     logger.New().WithComponent("repository"),
	}
}

// Load reads all three collections. A missing, unreadable or undecodable key
// yields an empty collection and a warning; Load itself never fails.
func (r *DirectoryRepository) Load() *models.Snapshot {
	snapshot := models.EmptySnapshot()

	if employees, ok := loadCollection[models.Employee](r, KeyEmployees); ok {
		snapshot.Employees = employees
	}
	if topics, ok := loadCollection[models.Topic](r, KeyTopics); ok {
		snapshot.Topics = topics
	}
	if teams, ok := loadCollection[models.Team](r, KeyTeams); ok {
		snapshot.Teams = teams
	}

	for i := range snapshot.Employees {
		snapshot.Employees[i] = snapshot.Employees[i].Clone()
	}
	for i := range snapshot.Topics {
		snapshot.Topics[i] = snapshot.Topics[i].Clone()
	}
	for i := range snapshot.Teams {
		snapshot.Teams[i] = snapshot.Teams[i].Clone()
	}

	r.log.WithFields(map[string]interface{}{
		"employees": len(snapshot.Employees),
		"topics":    len(snapshot.Topics),
		"teams":     len(snapshot.Teams),
	}).Info("Directory loaded")

	return snapshot
}

func loadCollection[T any](r *DirectoryRepository, key string) ([]T, bool) {
	data, found, err := r.storage.Get(key)
	if err != nil {
		r.log.WithError(err).WithField("key", key).Warn("Failed to read collection, starting empty")
		return nil, false
	}
	if !found || len(data) == 0 {
		return nil, false
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		r.log.WithError(err).WithField("key", key).Warn("Failed to decode collection, starting empty")
		return nil, false
	}
	if items == nil {
		return nil, false
	}
	return items, true
}

// SaveEmployees persists the employee collection
func (r *DirectoryRepository) SaveEmployees(employees []models.Employee) error {
	return r.save(KeyEmployees, employees)
}

// SaveTopics persists the topic collection
func (r *DirectoryRepository) SaveTopics(topics []models.Topic) error {
	return r.save(KeyTopics, topics)
}

// SaveTeams persists the team collection
func (r *DirectoryRepository) SaveTeams(teams []models.Team) error {
	return r.save(KeyTeams, teams)
}

// Ping checks the underlying storage
func (r *DirectoryRepository) Ping() error {
	return r.storage.Ping()
}

func (r *DirectoryRepository) save(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return apperrors.NewPersistenceError(key, fmt.Errorf("encode: %w", err))
	}
	if err := r.storage.Set(key, data); err != nil {
		return apperrors.NewPersistenceError(key, err)
	}
	return nil
}
