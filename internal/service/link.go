package service

import (
	"fmt"
	"slices"

	"orgbook-backend/internal/database/models"
	apperrors "orgbook-backend/internal/errors"
)

// Link adds the edge between an employee and a topic or team on both sides.
// Linking an existing edge is a no-op.
func (s *DirectoryService) Link(employeeID, itemID string, kind models.ItemKind) error {
	if !kind.Valid() {
		return apperrors.ErrInvalidItemKind
	}

	_, err := s.apply("link", func(cur *models.Snapshot) (*models.Snapshot, changeSet, error) {
		employee, ok := cur.Employee(employeeID)
		if !ok {
			return nil, 0, fmt.Errorf("link employee %s: %w", employeeID, apperrors.ErrEmployeeNotFound)
		}
		if !cur.HasItem(kind, itemID) {
			return nil, 0, fmt.Errorf("link %s %s: %w", kind, itemID, notFoundFor(kind))
		}

		if models.ContainsID(employee.Items(kind), itemID) && models.ContainsID(members(cur, kind, itemID), employeeID) {
			return nil, 0, nil
		}

		return setEdge(cur, employeeID, itemID, kind, models.AddID), changedEmployees | changesFor(kind), nil
	})
	return err
}

// Unlink removes the edge between an employee and a topic or team on both
// sides. Absent edges and unknown ids are no-ops.
func (s *DirectoryService) Unlink(employeeID, itemID string, kind models.ItemKind) error {
	if !kind.Valid() {
		return apperrors.ErrInvalidItemKind
	}

	_, err := s.apply("unlink", func(cur *models.Snapshot) (*models.Snapshot, changeSet, error) {
		employee, _ := cur.Employee(employeeID)
		if !models.ContainsID(employee.Items(kind), itemID) && !models.ContainsID(members(cur, kind, itemID), employeeID) {
			return nil, 0, nil
		}

		remove := func(ids []string, id string) []string { return models.RemoveIDs(ids, id) }
		return setEdge(cur, employeeID, itemID, kind, remove), changedEmployees | changesFor(kind), nil
	})
	return err
}

// setEdge applies op to the employee's item set and to the item's member set
func setEdge(cur *models.Snapshot, employeeID, itemID string, kind models.ItemKind, op func([]string, string) []string) *models.Snapshot {
	next := *cur

	next.Employees = slices.Clone(cur.Employees)
	for i, e := range next.Employees {
		if e.ID == employeeID {
			next.Employees[i] = e.WithItems(kind, op(e.Items(kind), itemID))
		}
	}

	if kind == models.KindTeam {
		next.Teams = slices.Clone(cur.Teams)
		for i, t := range next.Teams {
			if t.ID == itemID {
				next.Teams[i].Employees = op(t.Employees, employeeID)
			}
		}
	} else {
		next.Topics = slices.Clone(cur.Topics)
		for i, t := range next.Topics {
			if t.ID == itemID {
				next.Topics[i].Experts = op(t.Experts, employeeID)
			}
		}
	}

	return &next
}

// members returns the member set of a topic (experts) or team (employees)
func members(cur *models.Snapshot, kind models.ItemKind, itemID string) []string {
	if kind == models.KindTeam {
		t, _ := cur.Team(itemID)
		return t.Employees
	}
	t, _ := cur.Topic(itemID)
	return t.Experts
}

func changesFor(kind models.ItemKind) changeSet {
	if kind == models.KindTeam {
		return changedTeams
	}
	return changedTopics
}

func notFoundFor(kind models.ItemKind) error {
	if kind == models.KindTeam {
		return apperrors.ErrTeamNotFound
	}
	return apperrors.ErrTopicNotFound
}
