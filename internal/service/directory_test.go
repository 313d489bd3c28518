package service_test

import (
	"errors"
	"strings"
	"testing"

	"orgbook-backend/internal/database/models"
	apperrors "orgbook-backend/internal/errors"
	"orgbook-backend/internal/metrics"
	"orgbook-backend/internal/mocks"
	"orgbook-backend/internal/repository"
	"orgbook-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DirectoryServiceTestSuite tests the entity store operations
type DirectoryServiceTestSuite struct {
	suite.Suite
	svc     *service.DirectoryService
	storage *repository.MemoryStorage
}

// SetupTest runs before each test
func (suite *DirectoryServiceTestSuite) SetupTest() {
	suite.svc, suite.storage = newTestService()
}

func (suite *DirectoryServiceTestSuite) createEmployee(name, department string) models.Employee {
	e, err := suite.svc.CreateEmployee(&service.EmployeeRequest{Name: name, Department: department})
	suite.Require().NoError(err)
	return e
}

func (suite *DirectoryServiceTestSuite) createTopic(name string) models.Topic {
	t, err := suite.svc.CreateTopic(&service.TopicRequest{Name: name})
	suite.Require().NoError(err)
	return t
}

func (suite *DirectoryServiceTestSuite) createTeam(name string) models.Team {
	t, err := suite.svc.CreateTeam(&service.TeamRequest{Name: name})
	suite.Require().NoError(err)
	return t
}

func (suite *DirectoryServiceTestSuite) TestCreateEmployee() {
	e, err := suite.svc.CreateEmployee(&service.EmployeeRequest{
		Name:      "  Jane Doe ",
		JobTitle:  "Engineer",
		ReportsTo: "Sam Boss",
	})

	suite.NoError(err)
	suite.True(strings.HasPrefix(e.ID, "emp-"))
	suite.Equal("Jane Doe", e.Name)
	suite.Equal(models.UnassignedDepartment, e.Department)
	suite.Empty(e.Topics)
	suite.Empty(e.Teams)
	suite.Equal([]models.Employee{e}, suite.svc.Snapshot().Employees)
}

func (suite *DirectoryServiceTestSuite) TestCreateRejectsBlankName() {
	before := suite.svc.Snapshot()

	_, err := suite.svc.CreateEmployee(&service.EmployeeRequest{Name: "   ", Department: "Sales"})
	suite.True(apperrors.IsMissingRequiredField(err))
	suite.ErrorIs(err, &apperrors.MissingRequiredFieldError{Entity: "employee", Field: "name"})

	_, err = suite.svc.CreateTopic(&service.TopicRequest{})
	suite.ErrorIs(err, &apperrors.MissingRequiredFieldError{Entity: "topic", Field: "name"})

	_, err = suite.svc.CreateTeam(&service.TeamRequest{Description: "no name"})
	suite.ErrorIs(err, &apperrors.MissingRequiredFieldError{Entity: "team", Field: "name"})

	suite.Same(before, suite.svc.Snapshot())
	_, found, _ := suite.storage.Get(repository.KeyEmployees)
	suite.False(found)
}

func (suite *DirectoryServiceTestSuite) TestCreateRejectsOverlongField() {
	_, err := suite.svc.CreateEmployee(&service.EmployeeRequest{Name: "Jane", JobTitle: strings.Repeat("x", 201)})

	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "jobTitle")
	suite.Empty(suite.svc.Snapshot().Employees)
}

func (suite *DirectoryServiceTestSuite) TestCreateTopicAndTeam() {
	topic, err := suite.svc.CreateTopic(&service.TopicRequest{Name: "Go", Description: "Language", Link: "https://go.dev"})
	suite.NoError(err)
	suite.True(strings.HasPrefix(topic.ID, "topic-"))
	suite.Equal("https://go.dev", topic.Link)
	suite.NotNil(topic.Experts)

	team, err := suite.svc.CreateTeam(&service.TeamRequest{Name: "Core", ChannelLink: "https://chat/core"})
	suite.NoError(err)
	suite.True(strings.HasPrefix(team.ID, "team-"))
	suite.Equal("https://chat/core", team.ChannelLink)
	suite.NotNil(team.Employees)
}

func (suite *DirectoryServiceTestSuite) TestEditEmployeeKeepsRelations() {
	e := suite.createEmployee("Jane", "Eng")
	topic := suite.createTopic("Go")
	suite.NoError(suite.svc.Link(e.ID, topic.ID, models.KindTopic))

	edited, found, err := suite.svc.EditEmployee(e.ID, &service.EmployeeRequest{Name: "Jane Doe", JobTitle: "Lead"})

	suite.NoError(err)
	suite.True(found)
	suite.Equal(e.ID, edited.ID)
	suite.Equal("Jane Doe", edited.Name)
	suite.Equal("Lead", edited.JobTitle)
	suite.Equal(models.UnassignedDepartment, edited.Department)
	suite.Equal([]string{topic.ID}, edited.Topics)
	assertConsistent(suite.T(), suite.svc.Snapshot())
}

func (suite *DirectoryServiceTestSuite) TestEditUnknownIsNoOp() {
	suite.createEmployee("Jane", "Eng")
	before := suite.svc.Snapshot()

	_, found, err := suite.svc.EditEmployee("emp-missing", &service.EmployeeRequest{Name: "X"})
	suite.NoError(err)
	suite.False(found)

	_, found, err = suite.svc.EditTopic("topic-missing", &service.TopicRequest{Name: "X"})
	suite.NoError(err)
	suite.False(found)

	_, found, err = suite.svc.EditTeam("team-missing", &service.TeamRequest{Name: "X"})
	suite.NoError(err)
	suite.False(found)

	suite.Same(before, suite.svc.Snapshot())
}

func (suite *DirectoryServiceTestSuite) TestEditRejectsBlankName() {
	topic := suite.createTopic("Go")

	_, _, err := suite.svc.EditTopic(topic.ID, &service.TopicRequest{Name: ""})

	suite.True(apperrors.IsMissingRequiredField(err))
	got, _ := suite.svc.Snapshot().Topic(topic.ID)
	suite.Equal("Go", got.Name)
}

func (suite *DirectoryServiceTestSuite) TestEditTopicAndTeam() {
	topic := suite.createTopic("Go")
	team := suite.createTeam("Core")

	editedTopic, found, err := suite.svc.EditTopic(topic.ID, &service.TopicRequest{Name: "Golang", Description: "d", Link: "l"})
	suite.NoError(err)
	suite.True(found)
	suite.Equal("Golang", editedTopic.Name)
	suite.Equal("l", editedTopic.Link)

	editedTeam, found, err := suite.svc.EditTeam(team.ID, &service.TeamRequest{Name: "Core Platform", ChannelLink: "c"})
	suite.NoError(err)
	suite.True(found)
	suite.Equal("Core Platform", editedTeam.Name)
	suite.Equal("c", editedTeam.ChannelLink)
}

func (suite *DirectoryServiceTestSuite) TestDeleteEmployeeCascades() {
	jane := suite.createEmployee("Jane", "Eng")
	john := suite.createEmployee("John", "Eng")
	topic := suite.createTopic("Go")
	team := suite.createTeam("Core")
	suite.NoError(suite.svc.Link(jane.ID, topic.ID, models.KindTopic))
	suite.NoError(suite.svc.Link(jane.ID, team.ID, models.KindTeam))
	suite.NoError(suite.svc.Link(john.ID, team.ID, models.KindTeam))

	suite.True(suite.svc.DeleteEmployee(jane.ID))
	suite.False(suite.svc.DeleteEmployee(jane.ID))

	snap := suite.svc.Snapshot()
	_, ok := snap.Employee(jane.ID)
	suite.False(ok)
	gotTopic, _ := snap.Topic(topic.ID)
	suite.Empty(gotTopic.Experts)
	gotTeam, _ := snap.Team(team.ID)
	suite.Equal([]string{john.ID}, gotTeam.Employees)
	assertConsistent(suite.T(), snap)
}

func (suite *DirectoryServiceTestSuite) TestDeleteTopicAndTeamLeaveNoDanglingReferences() {
	jane := suite.createEmployee("Jane", "Eng")
	john := suite.createEmployee("John", "Eng")
	topic := suite.createTopic("Go")
	other := suite.createTopic("Rust")
	team := suite.createTeam("Core")
	for _, id := range []string{jane.ID, john.ID} {
		suite.NoError(suite.svc.Link(id, topic.ID, models.KindTopic))
		suite.NoError(suite.svc.Link(id, other.ID, models.KindTopic))
		suite.NoError(suite.svc.Link(id, team.ID, models.KindTeam))
	}

	suite.True(suite.svc.DeleteTopic(topic.ID))
	suite.True(suite.svc.DeleteTeam(team.ID))
	suite.False(suite.svc.DeleteTopic(topic.ID))
	suite.False(suite.svc.DeleteTeam("team-missing"))

	snap := suite.svc.Snapshot()
	for _, e := range snap.Employees {
		suite.Equal([]string{other.ID}, e.Topics)
		suite.Empty(e.Teams)
	}
	suite.Len(snap.Topics, 1)
	suite.Empty(snap.Teams)
	assertConsistent(suite.T(), snap)
}

func (suite *DirectoryServiceTestSuite) TestDeleteDepartment() {
	eng := suite.createEmployee("Eng Person", "Engineering")
	sales := suite.createEmployee("Sales Person", "Sales")
	topic := suite.createTopic("T")
	team := suite.createTeam("Core")
	suite.NoError(suite.svc.Link(eng.ID, topic.ID, models.KindTopic))
	suite.NoError(suite.svc.Link(eng.ID, team.ID, models.KindTeam))
	suite.NoError(suite.svc.Link(sales.ID, topic.ID, models.KindTopic))

	removed := suite.svc.DeleteDepartment("Engineering")

	suite.Equal(1, removed)
	snap := suite.svc.Snapshot()
	suite.Equal([]models.Employee{mustEmployee(snap, sales.ID)}, snap.Employees)
	suite.Equal([]string{topic.ID}, snap.Employees[0].Topics)
	gotTopic, _ := snap.Topic(topic.ID)
	suite.Equal([]string{sales.ID}, gotTopic.Experts)
	gotTeam, _ := snap.Team(team.ID)
	suite.Empty(gotTeam.Employees)
	assertConsistent(suite.T(), snap)
}

func (suite *DirectoryServiceTestSuite) TestDeleteDepartmentExactMatch() {
	suite.createEmployee("A", "")
	suite.createEmployee("B", "engineering")
	before := suite.svc.Snapshot()

	suite.Equal(0, suite.svc.DeleteDepartment("Engineering"))
	suite.Same(before, suite.svc.Snapshot())

	suite.Equal(1, suite.svc.DeleteDepartment(models.UnassignedDepartment))
	suite.Len(suite.svc.Snapshot().Employees, 1)
}

func (suite *DirectoryServiceTestSuite) TestDepartmentsAndManagers() {
	for _, req := range []service.EmployeeRequest{
		{Name: "A", Department: "Eng", ReportsTo: "Boss"},
		{Name: "B", Department: "Sales"},
		{Name: "C", Department: "Eng", ReportsTo: "Other"},
		{Name: "D", Department: "Eng", ReportsTo: "Boss"},
	} {
		_, err := suite.svc.CreateEmployee(&req)
		suite.Require().NoError(err)
	}

	suite.Equal([]string{"Eng", "Sales"}, suite.svc.Departments())
	suite.Equal([]string{"Boss", "Other"}, suite.svc.Managers())
}

func (suite *DirectoryServiceTestSuite) TestPublishedSnapshotsAreNeverModified() {
	jane := suite.createEmployee("Jane", "Eng")
	topic := suite.createTopic("Go")
	before := suite.svc.Snapshot()
	beforeCopy := before.Clone()

	suite.NoError(suite.svc.Link(jane.ID, topic.ID, models.KindTopic))
	_, _, _ = suite.svc.EditEmployee(jane.ID, &service.EmployeeRequest{Name: "Jane Doe"})
	suite.createEmployee("John", "Eng")
	suite.svc.DeleteTopic(topic.ID)

	suite.Equal(beforeCopy, before)
	suite.NotSame(before, suite.svc.Snapshot())
}

func (suite *DirectoryServiceTestSuite) TestRoundTripThroughStorage() {
	jane := suite.createEmployee("Doe, Jane", "Eng")
	john := suite.createEmployee("John", "")
	topic := suite.createTopic("Go")
	team := suite.createTeam("Core")
	suite.NoError(suite.svc.Link(jane.ID, topic.ID, models.KindTopic))
	suite.NoError(suite.svc.Link(john.ID, team.ID, models.KindTeam))
	suite.NoError(suite.svc.Link(jane.ID, team.ID, models.KindTeam))

	reloaded := service.NewDirectoryService(repository.NewDirectoryRepository(suite.storage), validator.New(), nil)

	suite.Equal(suite.svc.Snapshot(), reloaded.Snapshot())
}

func (suite *DirectoryServiceTestSuite) TestInvariantHoldsAcrossOperations() {
	a := suite.createEmployee("A", "Eng")
	b := suite.createEmployee("B", "Eng")
	c := suite.createEmployee("C", "Sales")
	t1 := suite.createTopic("T1")
	t2 := suite.createTopic("T2")
	m1 := suite.createTeam("M1")
	m2 := suite.createTeam("M2")

	steps := []func(){
		func() { suite.NoError(suite.svc.Link(a.ID, t1.ID, models.KindTopic)) },
		func() { suite.NoError(suite.svc.Link(b.ID, t1.ID, models.KindTopic)) },
		func() { suite.NoError(suite.svc.Link(c.ID, t2.ID, models.KindTopic)) },
		func() { suite.NoError(suite.svc.Link(a.ID, m1.ID, models.KindTeam)) },
		func() { suite.NoError(suite.svc.Link(b.ID, m1.ID, models.KindTeam)) },
		func() { suite.NoError(suite.svc.Link(c.ID, m2.ID, models.KindTeam)) },
		func() { suite.NoError(suite.svc.Unlink(b.ID, t1.ID, models.KindTopic)) },
		func() { _, _, _ = suite.svc.EditEmployee(c.ID, &service.EmployeeRequest{Name: "C2", Department: "Sales"}) },
		func() { _, err := suite.svc.MergeEmployees(a.ID, b.ID); suite.NoError(err) },
		func() { suite.svc.DeleteTeam(m2.ID) },
		func() { suite.svc.DeleteDepartment("Sales") },
		func() { suite.NoError(suite.svc.Link(b.ID, t2.ID, models.KindTopic)) },
		func() { suite.svc.DeleteEmployee(b.ID) },
	}

	for _, step := range steps {
		step()
		assertConsistent(suite.T(), suite.svc.Snapshot())
	}
	suite.Empty(suite.svc.Snapshot().Employees)
}

func (suite *DirectoryServiceTestSuite) TestOnlyChangedCollectionsArePersisted() {
	suite.createTopic("Go")

	_, found, _ := suite.storage.Get(repository.KeyTopics)
	suite.True(found)
	_, found, _ = suite.storage.Get(repository.KeyEmployees)
	suite.False(found)
	_, found, _ = suite.storage.Get(repository.KeyTeams)
	suite.False(found)
}

func mustEmployee(s *models.Snapshot, id string) models.Employee {
	e, _ := s.Employee(id)
	return e
}

func TestDirectoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DirectoryServiceTestSuite))
}

func TestPersistenceFailureKeepsInMemoryState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockDirectoryRepositoryInterface(ctrl)
	collector := metrics.NewCollector()
	repo.EXPECT().Load().Return(models.EmptySnapshot())

	svc := service.NewDirectoryService(repo, validator.New(), collector)

	quota := errors.New("quota exceeded")
	repo.EXPECT().SaveEmployees(gomock.Any()).Return(apperrors.NewPersistenceError(repository.KeyEmployees, quota)).Times(2)

	jane, err := svc.CreateEmployee(&service.EmployeeRequest{Name: "Jane"})
	if err != nil {
		t.Fatalf("create returned %v", err)
	}
	_, found, err := svc.EditEmployee(jane.ID, &service.EmployeeRequest{Name: "Jane Doe"})
	if err != nil || !found {
		t.Fatalf("edit returned found=%v err=%v", found, err)
	}

	got, ok := svc.Snapshot().Employee(jane.ID)
	if !ok || got.Name != "Jane Doe" {
		t.Fatalf("in-memory state lost after failed writes: %+v", got)
	}
	if v := testutil.ToFloat64(collector.PersistenceFailures.WithLabelValues(repository.KeyEmployees)); v != 2 {
		t.Fatalf("expected 2 persistence failures, got %v", v)
	}
	if v := testutil.ToFloat64(collector.Mutations.WithLabelValues("edit_employee")); v != 1 {
		t.Fatalf("expected 1 edit mutation, got %v", v)
	}
}

func TestMutationPersistsAffectedKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	snap := models.EmptySnapshot()
	snap.Employees = []models.Employee{{ID: "emp-1", Name: "Jane", Department: "Eng", Topics: []string{}, Teams: []string{"team-1"}}}
	snap.Teams = []models.Team{{ID: "team-1", Name: "Core", Employees: []string{"emp-1"}}}

	repo := mocks.NewMockDirectoryRepositoryInterface(ctrl)
	repo.EXPECT().Load().Return(snap)
	svc := service.NewDirectoryService(repo, nil, nil)

	gomock.InOrder(
		repo.EXPECT().SaveEmployees(gomock.Any()).Return(nil),
		repo.EXPECT().SaveTeams(gomock.Any()).DoAndReturn(func(teams []models.Team) error {
			if len(teams) != 0 {
				t.Errorf("expected team to be deleted, got %+v", teams)
			}
			return nil
		}),
	)

	if !svc.DeleteTeam("team-1") {
		t.Fatal("expected team-1 to be deleted")
	}
}
