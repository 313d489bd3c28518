package service

import (
	"io"

	"orgbook-backend/internal/database/models"
	"orgbook-backend/internal/imports"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// DirectoryServiceInterface defines the interface for the directory service
type DirectoryServiceInterface interface {
	Snapshot() *models.Snapshot
	Departments() []string
	Managers() []string
	Ping() error

	FilterEmployees(filter EmployeeFilter) []models.Employee
	OrganizedEmployees(filter EmployeeFilter) []DepartmentGroup
	EmployeeDetail(id string) (*EmployeeDetail, error)
	CreateEmployee(req *EmployeeRequest) (models.Employee, error)
	EditEmployee(id string, req *EmployeeRequest) (models.Employee, bool, error)
	DeleteEmployee(id string) bool
	DeleteDepartment(name string) int

	Topics() []models.Topic
	TopicDetail(id string) (*TopicDetail, error)
	CreateTopic(req *TopicRequest) (models.Topic, error)
	EditTopic(id string, req *TopicRequest) (models.Topic, bool, error)
	DeleteTopic(id string) bool

	Teams() []models.Team
	TeamDetail(id string) (*TeamDetail, error)
	CreateTeam(req *TeamRequest) (models.Team, error)
	EditTeam(id string, req *TeamRequest) (models.Team, bool, error)
	DeleteTeam(id string) bool

	Link(employeeID, itemID string, kind models.ItemKind) error
	Unlink(employeeID, itemID string, kind models.ItemKind) error
	LinkCandidates(employeeID string, kind models.ItemKind) ([]LinkCandidate, error)
	MergeEmployees(sourceID, targetID string) (models.Employee, error)
	MergeCandidates(employeeID, query string) ([]MergeCandidate, error)

	Import(pipeline string, r io.Reader, filename string) (*ImportResult, error)
	ImportSkills(rows []imports.Row) *ImportResult
	ImportComponents(rows []imports.Row) *ImportResult
	ImportCodeOwners(doc *imports.CodeOwners) *ImportResult
	ImportEmployees(rows []imports.Row) *ImportResult
	ImportTopics(rows []imports.Row) *ImportResult
	ImportTeams(rows []imports.Row) *ImportResult
}

var _ DirectoryServiceInterface = (*DirectoryService)(nil)
