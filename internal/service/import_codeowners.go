package service

import (
	"slices"

	"orgbook-backend/internal/database/models"
	"orgbook-backend/internal/imports"
	"orgbook-backend/internal/normalize"
)

// CodeOwnersTeamDescription is the description given to teams created from a CODEOWNERS document
const CodeOwnersTeamDescription = "Imported from CODEOWNERS JSON"

// ImportCodeOwners creates one team per group in document order. Each handle
// is turned into a display name and resolved to an existing employee by
// normalised name, or to a new employee, who is added to the team. All teams
// and employees land in one snapshot transition.
func (s *DirectoryService) ImportCodeOwners(doc *imports.CodeOwners) *ImportResult {
	return s.runImport(PipelineCodeOwners, func(cur *models.Snapshot, result *ImportResult) (*models.Snapshot, changeSet) {
		if doc == nil || len(doc.Groups) == 0 {
			return nil, 0
		}

		employees := slices.Clone(cur.Employees)
		teams := slices.Clip(cur.Teams)

		for _, group := range doc.Groups {
			team := models.Team{
				ID:          models.NewTeamID(),
				Name:        group.Name,
				Description: CodeOwnersTeamDescription,
				Employees:   []string{},
			}
			result.TeamsCreated++

			for _, handle := range group.Handles {
				result.RowsRead++

				name := normalize.HandleToName(handle)
				if name == "" {
					result.RowsSkipped++
					continue
				}

				ei := slices.IndexFunc(employees, func(e models.Employee) bool { return normalize.SameName(e.Name, name) })
				if ei < 0 {
					emp := newImportedEmployee(name)
					emp.Teams = []string{team.ID}
					employees = append(employees, emp)
					ei = len(employees) - 1
					result.EmployeesCreated++
				} else {
					employees[ei].Teams = models.AddID(employees[ei].Teams, team.ID)
				}

				if !models.ContainsID(team.Employees, employees[ei].ID) {
					team.Employees = models.AddID(team.Employees, employees[ei].ID)
					result.EdgesCreated++
				}
			}

			teams = append(teams, team)
		}

		return &models.Snapshot{Employees: employees, Topics: cur.Topics, Teams: teams}, changedEmployees | changedTeams
	})
}
