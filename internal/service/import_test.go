package service_test

import (
	"strings"
	"testing"

	"orgbook-backend/internal/database/models"
	apperrors "orgbook-backend/internal/errors"
	"orgbook-backend/internal/imports"
	"orgbook-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportSkills_NormalisedNamesResolveToOneEmployee(t *testing.T) {
	svc, _ := newTestService()

	result := svc.ImportSkills([]imports.Row{
		{"name": "Doe, Jane", "skill": "Rust"},
		{"name": "jane doe", "skill": "Rust"},
	})

	snap := svc.Snapshot()
	require.Len(t, snap.Employees, 1)
	require.Len(t, snap.Topics, 1)
	assert.Equal(t, "Doe, Jane", snap.Employees[0].Name)
	assert.Equal(t, models.UnassignedDepartment, snap.Employees[0].Department)
	assert.Equal(t, "Rust", snap.Topics[0].Name)
	assert.Equal(t, "Skill: Rust", snap.Topics[0].Description)
	assert.Equal(t, []string{snap.Employees[0].ID}, snap.Topics[0].Experts)
	assert.Equal(t, []string{snap.Topics[0].ID}, snap.Employees[0].Topics)

	assert.Equal(t, &service.ImportResult{
		Pipeline:         service.PipelineSkills,
		RowsRead:         2,
		EmployeesCreated: 1,
		TopicsCreated:    1,
		EdgesCreated:     1,
	}, result)
	assertConsistent(t, snap)
}

func TestImportSkills_ReusesExistingRecords(t *testing.T) {
	svc, _ := newTestService()
	jane, err := svc.CreateEmployee(&service.EmployeeRequest{Name: "Jane Doe", Department: "Eng"})
	require.NoError(t, err)
	topic, err := svc.CreateTopic(&service.TopicRequest{Name: "Kubernetes"})
	require.NoError(t, err)

	result := svc.ImportSkills([]imports.Row{
		{"Name": " Doe, Jane ", "Skill": "kubernetes"},
		{"Name": "", "Skill": "Go"},
		{"Name": "Ghost", "Skill": "  "},
		{"NAME": "John Roe", "SKILL": "Go"},
	})

	snap := svc.Snapshot()
	assert.Len(t, snap.Employees, 2)
	assert.Len(t, snap.Topics, 2)
	got, _ := snap.Employee(jane.ID)
	assert.Equal(t, []string{topic.ID}, got.Topics)
	assert.Equal(t, "Eng", got.Department)
	assert.Equal(t, 2, result.RowsSkipped)
	assert.Equal(t, 1, result.EmployeesCreated)
	assert.Equal(t, 2, result.EdgesCreated)
	assertConsistent(t, snap)

	again := svc.ImportSkills([]imports.Row{{"name": "Jane Doe", "skill": "Kubernetes"}})
	assert.Equal(t, 0, again.EdgesCreated)
	assert.Same(t, snap, svc.Snapshot())
}

func TestImportComponents(t *testing.T) {
	svc, _ := newTestService()
	pm, err := svc.CreateEmployee(&service.EmployeeRequest{Name: "Paula Manager"})
	require.NoError(t, err)

	rows := []imports.Row{
		{"Component": "Billing", "Description": "Invoices", "Product Manager": "Paula Manager", "Product Owner": "Owen Owner", "Support Coach": "Owen Owner"},
		{"component": "Search", "product manager": "paula manager"},
		{"Component": " ", "Product Manager": "Nobody"},
	}
	result := svc.ImportComponents(rows)

	snap := svc.Snapshot()
	require.Len(t, snap.Topics, 2)
	billing, search := snap.Topics[0], snap.Topics[1]
	assert.Equal(t, "Billing", billing.Name)
	assert.Equal(t, "Invoices", billing.Description)
	assert.Equal(t, "", search.Description)

	// exact name matching: "paula manager" is a different person
	require.Len(t, snap.Employees, 3)
	owen := snap.Employees[1]
	paulaLower := snap.Employees[2]
	assert.Equal(t, "Owen Owner", owen.Name)
	assert.Equal(t, "paula manager", paulaLower.Name)
	assert.Equal(t, []string{pm.ID, owen.ID}, billing.Experts)
	assert.Equal(t, []string{paulaLower.ID}, search.Experts)

	gotPM, _ := snap.Employee(pm.ID)
	assert.Equal(t, []string{billing.ID}, gotPM.Topics)
	assert.Equal(t, []string{billing.ID}, owen.Topics)

	assert.Equal(t, 3, result.RowsRead)
	assert.Equal(t, 1, result.RowsSkipped)
	assert.Equal(t, 2, result.TopicsCreated)
	assert.Equal(t, 2, result.EmployeesCreated)
	assert.Equal(t, 3, result.EdgesCreated)
	assertConsistent(t, snap)
}

func TestImportComponents_AlwaysCreatesTopics(t *testing.T) {
	svc, _ := newTestService()
	rows := []imports.Row{{"component": "Billing", "product owner": "Owen"}}

	svc.ImportComponents(rows)
	svc.ImportComponents(rows)

	snap := svc.Snapshot()
	assert.Len(t, snap.Topics, 2)
	assert.Len(t, snap.Employees, 1)
	assert.Len(t, snap.Employees[0].Topics, 2)
	assertConsistent(t, snap)
}

func TestImportCodeOwners_LinksExistingEmployee(t *testing.T) {
	svc, _ := newTestService()
	jane, err := svc.CreateEmployee(&service.EmployeeRequest{Name: "Jane Doe", Department: "Eng"})
	require.NoError(t, err)

	result := svc.ImportCodeOwners(&imports.CodeOwners{Groups: []imports.Group{
		{Name: "backend", Handles: []string{"@jane.doe"}},
	}})

	snap := svc.Snapshot()
	require.Len(t, snap.Employees, 1)
	require.Len(t, snap.Teams, 1)
	team := snap.Teams[0]
	assert.Equal(t, "backend", team.Name)
	assert.Equal(t, service.CodeOwnersTeamDescription, team.Description)
	assert.Equal(t, []string{jane.ID}, team.Employees)
	assert.Equal(t, []string{team.ID}, snap.Employees[0].Teams)
	assert.Equal(t, 0, result.EmployeesCreated)
	assert.Equal(t, 1, result.TeamsCreated)
	assertConsistent(t, snap)
}

func TestImportCodeOwners_CreatesEmployeesAcrossGroups(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.CreateEmployee(&service.EmployeeRequest{Name: "Smith, John"})
	require.NoError(t, err)

	result := svc.ImportCodeOwners(&imports.CodeOwners{Groups: []imports.Group{
		{Name: "backend", Handles: []string{"@jane.doe", "@JOHN.SMITH", "@jane.doe"}},
		{Name: "frontend", Handles: []string{"@jane.doe", "@", "@cher"}},
	}})

	snap := svc.Snapshot()
	require.Len(t, snap.Teams, 2)
	require.Len(t, snap.Employees, 3)
	john, jane, cher := snap.Employees[0], snap.Employees[1], snap.Employees[2]
	assert.Equal(t, "Jane Doe", jane.Name)
	assert.Equal(t, "Cher", cher.Name)
	assert.Equal(t, models.UnassignedDepartment, cher.Department)
	assert.Equal(t, []string{snap.Teams[0].ID, snap.Teams[1].ID}, jane.Teams)
	assert.Equal(t, []string{snap.Teams[0].ID}, john.Teams)
	assert.Equal(t, []string{jane.ID, john.ID}, snap.Teams[0].Employees)
	assert.Equal(t, []string{jane.ID, cher.ID}, snap.Teams[1].Employees)

	assert.Equal(t, 6, result.RowsRead)
	assert.Equal(t, 1, result.RowsSkipped)
	assert.Equal(t, 2, result.EmployeesCreated)
	assert.Equal(t, 2, result.TeamsCreated)
	assertConsistent(t, snap)
}

func TestImportCodeOwners_EmptyDocument(t *testing.T) {
	svc, _ := newTestService()
	before := svc.Snapshot()

	result := svc.ImportCodeOwners(&imports.CodeOwners{})

	assert.Equal(t, 0, result.TeamsCreated)
	assert.Same(t, before, svc.Snapshot())
}

func TestImportSheets(t *testing.T) {
	svc, _ := newTestService()

	employees := svc.ImportEmployees([]imports.Row{
		{"Name": "Jane Doe", "Job Title": "Engineer", "Department": "Eng", "Reports To": "Boss"},
		{"name": "Jane Doe", "jobTitle": "Engineer", "reports to": "Boss"},
	})
	topics := svc.ImportTopics([]imports.Row{{"Name": "Go", "Description": "Language"}})
	teams := svc.ImportTeams([]imports.Row{{"name": "Core", "Teams Channel": "https://chat/core"}})

	snap := svc.Snapshot()
	require.Len(t, snap.Employees, 2)
	assert.NotEqual(t, snap.Employees[0].ID, snap.Employees[1].ID)
	for _, e := range snap.Employees {
		assert.True(t, strings.HasPrefix(e.ID, "emp-"))
		assert.Equal(t, "Jane Doe", e.Name)
		assert.Equal(t, "Engineer", e.JobTitle)
		assert.Equal(t, "Boss", e.ReportsTo)
		assert.Empty(t, e.Topics)
	}
	assert.Equal(t, "Eng", snap.Employees[0].Department)
	assert.Equal(t, models.UnassignedDepartment, snap.Employees[1].Department)

	require.Len(t, snap.Topics, 1)
	assert.Equal(t, "Language", snap.Topics[0].Description)
	require.Len(t, snap.Teams, 1)
	assert.Equal(t, "https://chat/core", snap.Teams[0].ChannelLink)

	assert.Equal(t, 2, employees.EmployeesCreated)
	assert.Equal(t, 1, topics.TopicsCreated)
	assert.Equal(t, 1, teams.TeamsCreated)
}

func TestImport_Dispatch(t *testing.T) {
	svc, _ := newTestService()

	csv := "Name,Skill\nJane Doe,Go\n,Rust\n"
	result, err := svc.Import("Skills", strings.NewReader(csv), "skills.csv")
	require.NoError(t, err)
	assert.Equal(t, service.PipelineSkills, result.Pipeline)
	assert.Equal(t, 1, result.RowsSkipped)

	doc := `{"groups": {"backend": ["@jane.doe"], "ops": ["@sam.ops"]}}`
	result, err = svc.Import(service.PipelineCodeOwners, strings.NewReader(doc), "codeowners.json")
	require.NoError(t, err)
	assert.Equal(t, 2, result.TeamsCreated)
	assert.Equal(t, 1, result.EmployeesCreated)

	snap := svc.Snapshot()
	assert.Equal(t, "backend", snap.Teams[0].Name)
	assert.Equal(t, "ops", snap.Teams[1].Name)
	assertConsistent(t, snap)
}

func TestImport_Errors(t *testing.T) {
	svc, _ := newTestService()
	before := svc.Snapshot()

	_, err := svc.Import("payroll", strings.NewReader("x"), "x.csv")
	assert.ErrorIs(t, err, apperrors.ErrUnknownPipeline)

	_, err = svc.Import(service.PipelineEmployees, strings.NewReader("x"), "people.pdf")
	assert.True(t, apperrors.IsMalformedImport(err))

	_, err = svc.Import(service.PipelineCodeOwners, strings.NewReader(`{"groups": ["not", "a", "map"]}`), "c.json")
	assert.True(t, apperrors.IsMalformedImport(err))

	_, err = svc.Import(service.PipelineTeams, strings.NewReader("not a workbook"), "teams.xlsx")
	assert.True(t, apperrors.IsMalformedImport(err))

	assert.Same(t, before, svc.Snapshot())
}
