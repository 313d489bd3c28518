package service

import (
	"slices"
	"strings"

	"orgbook-backend/internal/database/models"
	"orgbook-backend/internal/imports"
	"orgbook-backend/internal/normalize"
)

// ImportSkills links employees to skill topics from rows with "name" and
// "skill" columns. Employees are found by normalised name and topics by
// case-insensitive name; both are created when missing. Rows missing either
// value are skipped.
func (s *DirectoryService) ImportSkills(rows []imports.Row) *ImportResult {
	return s.runImport(PipelineSkills, func(cur *models.Snapshot, result *ImportResult) (*models.Snapshot, changeSet) {
		employees := slices.Clone(cur.Employees)
		topics := slices.Clone(cur.Topics)

		for _, row := range rows {
			result.RowsRead++

			name := row.Value("name", "Name")
			skill := row.Value("skill", "Skill")
			if name == "" || skill == "" {
				result.RowsSkipped++
				continue
			}

			ei := slices.IndexFunc(employees, func(e models.Employee) bool { return normalize.SameName(e.Name, name) })
			if ei < 0 {
				employees = append(employees, newImportedEmployee(name))
				ei = len(employees) - 1
				result.EmployeesCreated++
			}

			ti := slices.IndexFunc(topics, func(t models.Topic) bool { return strings.EqualFold(strings.TrimSpace(t.Name), skill) })
			if ti < 0 {
				topics = append(topics, models.Topic{
					ID:          models.NewTopicID(),
					Name:        skill,
					Description: "Skill: " + skill,
					Experts:     []string{},
					Teams:       []string{},
				})
				ti = len(topics) - 1
				result.TopicsCreated++
			}

			emp, topic := employees[ei], topics[ti]
			if models.ContainsID(topic.Experts, emp.ID) && models.ContainsID(emp.Topics, topic.ID) {
				continue
			}
			topics[ti].Experts = models.AddID(topic.Experts, emp.ID)
			employees[ei].Topics = models.AddID(emp.Topics, topic.ID)
			result.EdgesCreated++
		}

		if result.EmployeesCreated == 0 && result.TopicsCreated == 0 && result.EdgesCreated == 0 {
			return nil, 0
		}
		return &models.Snapshot{Employees: employees, Topics: topics, Teams: cur.Teams}, changedEmployees | changedTopics
	})
}
