package service

import (
	"fmt"

	"orgbook-backend/internal/database/models"
	apperrors "orgbook-backend/internal/errors"
)

// MergeEmployees folds source into target. Target's non-empty scalar fields
// win, topic and team sets are unioned, every expert and member reference to
// source is rewritten to target, and source is removed. Merging an employee
// into itself changes nothing.
func (s *DirectoryService) MergeEmployees(sourceID, targetID string) (models.Employee, error) {
	var merged models.Employee

	_, err := s.apply("merge", func(cur *models.Snapshot) (*models.Snapshot, changeSet, error) {
		source, ok := cur.Employee(sourceID)
		if !ok {
			return nil, 0, fmt.Errorf("merge source %s: %w", sourceID, apperrors.ErrEmployeeNotFound)
		}
		target, ok := cur.Employee(targetID)
		if !ok {
			return nil, 0, fmt.Errorf("merge target %s: %w", targetID, apperrors.ErrEmployeeNotFound)
		}
		if sourceID == targetID {
			merged = target
			return nil, 0, nil
		}

		merged = mergeRecords(source, target)
		return rewriteEmployee(cur, sourceID, merged), changedEmployees | changedTopics | changedTeams, nil
	})
	if err != nil {
		return models.Employee{}, err
	}

	s.log.WithFields(map[string]interface{}{
		"source": sourceID,
		"target": targetID,
	}).Info("Employees merged")
	return merged, nil
}

func mergeRecords(source, target models.Employee) models.Employee {
	merged := target
	merged.JobTitle = firstNonEmpty(target.JobTitle, source.JobTitle)
	merged.Department = firstNonEmpty(target.Department, source.Department)
	merged.ReportsTo = firstNonEmpty(target.ReportsTo, source.ReportsTo)
	merged.Topics = models.UnionIDs(target.Topics, source.Topics)
	merged.Teams = models.UnionIDs(target.Teams, source.Teams)
	return merged
}

// rewriteEmployee removes sourceID, replaces the merged record in place and
// points every reference to sourceID at the merged employee
func rewriteEmployee(cur *models.Snapshot, sourceID string, merged models.Employee) *models.Snapshot {
	next := &models.Snapshot{
		Employees: make([]models.Employee, 0, len(cur.Employees)),
		Topics:    make([]models.Topic, len(cur.Topics)),
		Teams:     make([]models.Team, len(cur.Teams)),
	}

	for _, e := range cur.Employees {
		switch e.ID {
		case sourceID:
			continue
		case merged.ID:
			next.Employees = append(next.Employees, merged)
		default:
			next.Employees = append(next.Employees, e)
		}
	}
	for i, t := range cur.Topics {
		t.Experts = models.ReplaceID(t.Experts, sourceID, merged.ID)
		next.Topics[i] = t
	}
	for i, t := range cur.Teams {
		t.Employees = models.ReplaceID(t.Employees, sourceID, merged.ID)
		next.Teams[i] = t
	}

	return next
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
