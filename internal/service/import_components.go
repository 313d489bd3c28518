package service

import (
	"slices"
	"strings"

	"orgbook-backend/internal/database/models"
	"orgbook-backend/internal/imports"
)

// componentRoles are the columns naming a component's experts
var componentRoles = [][]string{
	{"product manager", "Product Manager"},
	{"product owner", "Product Owner"},
	{"support coach", "Support Coach"},
}

// ImportComponents creates one new topic per row with a component name.
// Topics are never deduplicated against existing ones. The people named in
// the role columns are found by exact name or created, become the topic's
// experts, and get the new topics added to their topic sets after all rows.
func (s *DirectoryService) ImportComponents(rows []imports.Row) *ImportResult {
	return s.runImport(PipelineComponents, func(cur *models.Snapshot, result *ImportResult) (*models.Snapshot, changeSet) {
		employees := slices.Clone(cur.Employees)
		var created []models.Topic

		for _, row := range rows {
			result.RowsRead++

			component := row.Value("component", "Component")
			if component == "" {
				result.RowsSkipped++
				continue
			}

			experts := []string{}
			for _, columns := range componentRoles {
				name := row.Value(columns...)
				if name == "" {
					continue
				}

				ei := slices.IndexFunc(employees, func(e models.Employee) bool { return strings.TrimSpace(e.Name) == name })
				if ei < 0 {
					employees = append(employees, newImportedEmployee(name))
					ei = len(employees) - 1
					result.EmployeesCreated++
				}
				experts = models.AddID(experts, employees[ei].ID)
			}

			created = append(created, models.Topic{
				ID:          models.NewTopicID(),
				Name:        component,
				Description: row.Value("description", "Description"),
				Experts:     experts,
				Teams:       []string{},
			})
			result.TopicsCreated++
		}

		if len(created) == 0 {
			return nil, 0
		}

		for i, e := range employees {
			for _, t := range created {
				if models.ContainsID(t.Experts, e.ID) {
					e.Topics = models.AddID(e.Topics, t.ID)
					result.EdgesCreated++
				}
			}
			employees[i] = e
		}

		topics := append(slices.Clip(cur.Topics), created...)
		return &models.Snapshot{Employees: employees, Topics: topics, Teams: cur.Teams}, changedEmployees | changedTopics
	})
}
