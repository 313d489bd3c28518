package service

import (
	"slices"

	"orgbook-backend/internal/database/models"
	"orgbook-backend/internal/imports"
)

// ImportEmployees creates one employee per row with empty relationship sets.
// No row is matched against existing employees.
func (s *DirectoryService) ImportEmployees(rows []imports.Row) *ImportResult {
	return s.runImport(PipelineEmployees, func(cur *models.Snapshot, result *ImportResult) (*models.Snapshot, changeSet) {
		if len(rows) == 0 {
			return nil, 0
		}

		employees := slices.Clip(cur.Employees)
		for _, row := range rows {
			result.RowsRead++
			employees = append(employees, models.Employee{
				ID:         models.NewEmployeeID(),
				Name:       row.Value("Name", "name"),
				JobTitle:   row.Value("Job Title", "jobTitle", "job title"),
				Department: models.DepartmentOrDefault(row.Value("Department", "department")),
				ReportsTo:  row.Value("Reports To", "reportsTo", "reports to"),
				Topics:     []string{},
				Teams:      []string{},
			})
			result.EmployeesCreated++
		}

		return &models.Snapshot{Employees: employees, Topics: cur.Topics, Teams: cur.Teams}, changedEmployees
	})
}

// ImportTopics creates one topic per row with an empty expert set
func (s *DirectoryService) ImportTopics(rows []imports.Row) *ImportResult {
	return s.runImport(PipelineTopics, func(cur *models.Snapshot, result *ImportResult) (*models.Snapshot, changeSet) {
		if len(rows) == 0 {
			return nil, 0
		}

		topics := slices.Clip(cur.Topics)
		for _, row := range rows {
			result.RowsRead++
			topics = append(topics, models.Topic{
				ID:          models.NewTopicID(),
				Name:        row.Value("Name", "name"),
				Description: row.Value("Description", "description"),
				Experts:     []string{},
				Link:        row.Value("Link", "link"),
				Teams:       []string{},
			})
			result.TopicsCreated++
		}

		return &models.Snapshot{Employees: cur.Employees, Topics: topics, Teams: cur.Teams}, changedTopics
	})
}

// ImportTeams creates one team per row with an empty member set
func (s *DirectoryService) ImportTeams(rows []imports.Row) *ImportResult {
	return s.runImport(PipelineTeams, func(cur *models.Snapshot, result *ImportResult) (*models.Snapshot, changeSet) {
		if len(rows) == 0 {
			return nil, 0
		}

		teams := slices.Clip(cur.Teams)
		for _, row := range rows {
			result.RowsRead++
			teams = append(teams, models.Team{
				ID:          models.NewTeamID(),
				Name:        row.Value("Name", "name"),
				Description: row.Value("Description", "description"),
				ChannelLink: row.Value("Teams Channel", "teamsLink", "teams channel"),
				Employees:   []string{},
			})
			result.TeamsCreated++
		}

		return &models.Snapshot{Employees: cur.Employees, Topics: cur.Topics, Teams: teams}, changedTeams
	})
}
