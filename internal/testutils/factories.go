package testutils

import (
	"orgbook-backend/internal/database/models"
)

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates a test Employee with default values
func (f *EmployeeFactory) Create() models.Employee {
	return models.Employee{
		ID:         models.NewEmployeeID(),
		Name:       "Test Employee",
		JobTitle:   "Software Engineer",
		Department: "Engineering",
		ReportsTo:  "Test Manager",
		Topics:     []string{},
		Teams:      []string{},
	}
}

// WithName sets a custom name for the employee
func (f *EmployeeFactory) WithName(name string) models.Employee {
	e := f.Create()
	e.Name = name
	return e
}

// WithDepartment sets a custom department and manager for the employee
func (f *EmployeeFactory) WithDepartment(name, department, reportsTo string) models.Employee {
	e := f.WithName(name)
	e.Department = department
	e.ReportsTo = reportsTo
	return e
}

// TopicFactory provides methods to create test Topic data
type TopicFactory struct{}

// NewTopicFactory creates a new TopicFactory
func NewTopicFactory() *TopicFactory {
	return &TopicFactory{}
}

// Create creates a test Topic with default values
func (f *TopicFactory) Create() models.Topic {
	return models.Topic{
		ID:          models.NewTopicID(),
		Name:        "Test Topic",
		Description: "A test topic for testing purposes",
		Experts:     []string{},
		Link:        "",
		Teams:       []string{},
	}
}

// WithName sets a custom name for the topic
func (f *TopicFactory) WithName(name string) models.Topic {
	t := f.Create()
	t.Name = name
	return t
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() models.Team {
	return models.Team{
		ID:          models.NewTeamID(),
		Name:        "Test Team",
		Description: "A test team for testing purposes",
		ChannelLink: "https://chat.example.com/test-team",
		Employees:   []string{},
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) models.Team {
	t := f.Create()
	t.Name = name
	return t
}

// FactorySet provides access to all factories
type FactorySet struct {
	Employee *EmployeeFactory
	Topic    *TopicFactory
	Team     *TeamFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Employee: NewEmployeeFactory(),
		Topic:    NewTopicFactory(),
		Team:     NewTeamFactory(),
	}
}

// LinkedSnapshot builds a consistent snapshot where every employee is an
// expert of every topic and a member of every team.
func (fs *FactorySet) LinkedSnapshot(employees []models.Employee, topics []models.Topic, teams []models.Team) *models.Snapshot {
	s := &models.Snapshot{
		Employees: make([]models.Employee, len(employees)),
		Topics:    make([]models.Topic, len(topics)),
		Teams:     make([]models.Team, len(teams)),
	}

	for i, e := range employees {
		e = e.Clone()
		for _, t := range topics {
			e.Topics = models.AddID(e.Topics, t.ID)
		}
		for _, t := range teams {
			e.Teams = models.AddID(e.Teams, t.ID)
		}
		s.Employees[i] = e
	}
	for i, t := range topics {
		t = t.Clone()
		for _, e := range employees {
			t.Experts = models.AddID(t.Experts, e.ID)
		}
		s.Topics[i] = t
	}
	for i, t := range teams {
		t = t.Clone()
		for _, e := range employees {
			t.Employees = models.AddID(t.Employees, e.ID)
		}
		s.Teams[i] = t
	}

	return s
}
