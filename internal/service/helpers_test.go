package service_test

import (
	"testing"

	"orgbook-backend/internal/database/models"
	"orgbook-backend/internal/repository"
	"orgbook-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

// newTestService builds a service over in-memory storage
func newTestService() (*service.DirectoryService, *repository.MemoryStorage) {
	storage := repository.NewMemoryStorage()
	svc := service.NewDirectoryService(repository.NewDirectoryRepository(storage), validator.New(), nil)
	return svc, storage
}

// assertConsistent checks that every edge is present on both sides and that
// no set references a missing record
func assertConsistent(t *testing.T, s *models.Snapshot) {
	t.Helper()

	for _, e := range s.Employees {
		for _, id := range e.Topics {
			topic, ok := s.Topic(id)
			if assert.Truef(t, ok, "employee %s references missing topic %s", e.ID, id) {
				assert.Containsf(t, topic.Experts, e.ID, "topic %s misses expert %s", id, e.ID)
			}
		}
		for _, id := range e.Teams {
			team, ok := s.Team(id)
			if assert.Truef(t, ok, "employee %s references missing team %s", e.ID, id) {
				assert.Containsf(t, team.Employees, e.ID, "team %s misses member %s", id, e.ID)
			}
		}
	}
	for _, topic := range s.Topics {
		for _, id := range topic.Experts {
			e, ok := s.Employee(id)
			if assert.Truef(t, ok, "topic %s references missing employee %s", topic.ID, id) {
				assert.Containsf(t, e.Topics, topic.ID, "employee %s misses topic %s", id, topic.ID)
			}
		}
	}
	for _, team := range s.Teams {
		for _, id := range team.Employees {
			e, ok := s.Employee(id)
			if assert.Truef(t, ok, "team %s references missing employee %s", team.ID, id) {
				assert.Containsf(t, e.Teams, team.ID, "employee %s misses team %s", id, team.ID)
			}
		}
	}
}
