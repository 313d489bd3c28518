package service

import (
	"sync"
	"sync/atomic"

	"orgbook-backend/internal/database/models"
	"orgbook-backend/internal/logger"
	"orgbook-backend/internal/metrics"
	"orgbook-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

// changeSet records which collections a mutation touched
type changeSet uint8

const (
	changedEmployees changeSet = 1 << iota
	changedTopics
	changedTeams
)

// mutation derives the next snapshot from the current one. It must not modify
// cur; returning a zero changeSet means nothing happened.
type mutation func(cur *models.Snapshot) (*models.Snapshot, changeSet, error)

// DirectoryService owns the employee, topic and team collections. Readers get
// the published snapshot without locking; writers are serialised and publish a
// new snapshot in one atomic swap.
type DirectoryService struct {
	mu        sync.Mutex
	current   atomic.Pointer[models.Snapshot]
	repo      repository.DirectoryRepositoryInterface
	validator *validator.Validate
	metrics   *metrics.Collector
	log       *logger.Logger
}

// NewDirectoryService loads the persisted collections and returns a ready service.
// collector may be nil.
func NewDirectoryService(repo repository.DirectoryRepositoryInterface, validate *validator.Validate, collector *metrics.Collector) *DirectoryService {
	if validate == nil {
		validate = validator.New()
	}
	validate.RegisterTagNameFunc(jsonFieldName)

	s := &DirectoryService{
		repo:      repo,
		validator: validate,
		metrics:   collector,
		log:       logger.New().WithComponent("directory"),
	}
	s.publish(repo.Load())
	return s
}

// Snapshot returns the current snapshot. It is shared and must not be modified.
func (s *DirectoryService) Snapshot() *models.Snapshot {
	return s.current.Load()
}

// Ping checks the storage behind the service
func (s *DirectoryService) Ping() error {
	return s.repo.Ping()
}

func (s *DirectoryService) publish(next *models.Snapshot) {
	s.current.Store(next)
	if s.metrics != nil {
		s.metrics.SetCollectionSizes(len(next.Employees), len(next.Topics), len(next.Teams))
	}
}

// apply runs fn under the writer lock, publishes its result and then persists
// the collections it changed. Persistence failures never undo the swap.
func (s *DirectoryService) apply(operation string, fn mutation) (*models.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current.Load()
	next, changed, err := fn(cur)
	if err != nil {
		return cur, err
	}
	if changed == 0 || next == nil {
		return cur, nil
	}

	s.publish(next)
	if s.metrics != nil {
		s.metrics.RecordMutation(operation)
	}
	s.log.WithField("operation", operation).Debug("Snapshot published")

	s.persist(next, changed)
	return next, nil
}

func (s *DirectoryService) persist(snapshot *models.Snapshot, changed changeSet) {
	if changed&changedEmployees != 0 {
		s.report(repository.KeyEmployees, s.repo.SaveEmployees(snapshot.Employees))
	}
	if changed&changedTopics != 0 {
		s.report(repository.KeyTopics, s.repo.SaveTopics(snapshot.Topics))
	}
	if changed&changedTeams != 0 {
		s.report(repository.KeyTeams, s.repo.SaveTeams(snapshot.Teams))
	}
}

func (s *DirectoryService) report(key string, err error) {
	if err == nil {
		return
	}
	s.log.WithError(err).WithField("key", key).Error("Failed to persist collection; in-memory state stays authoritative")
	if s.metrics != nil {
		s.metrics.RecordPersistenceFailure(key)
	}
}

// Departments returns the distinct non-empty departments of the current snapshot
func (s *DirectoryService) Departments() []string {
	return s.Snapshot().Departments()
}

// Managers returns the distinct non-empty reportsTo values of the current snapshot
func (s *DirectoryService) Managers() []string {
	return s.Snapshot().Managers()
}
