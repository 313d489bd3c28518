package service

import (
	"slices"

	"orgbook-backend/internal/database/models"
)

// CreateEmployee adds an employee with empty topic and team sets
func (s *DirectoryService) CreateEmployee(req *EmployeeRequest) (models.Employee, error) {
	req.trim()
	if err := s.validateRequest("employee", req); err != nil {
		return models.Employee{}, err
	}

	employee := models.Employee{
		ID:         models.NewEmployeeID(),
		Name:       req.Name,
		JobTitle:   req.JobTitle,
		Department: models.DepartmentOrDefault(req.Department),
		ReportsTo:  req.ReportsTo,
		Topics:     []string{},
		Teams:      []string{},
	}

	_, err := s.apply("create_employee", func(cur *models.Snapshot) (*models.Snapshot, changeSet, error) {
		next := *cur
		next.Employees = append(slices.Clip(cur.Employees), employee)
		return &next, changedEmployees, nil
	})
	return employee, err
}

// EditEmployee replaces the editable fields of an employee. Relationship sets
// and the identifier are kept. An unknown id is a no-op reported as found=false.
func (s *DirectoryService) EditEmployee(id string, req *EmployeeRequest) (models.Employee, bool, error) {
	req.trim()
	if err := s.validateRequest("employee", req); err != nil {
		return models.Employee{}, false, err
	}

	var edited models.Employee
	var found bool
	_, err := s.apply("edit_employee", func(cur *models.Snapshot) (*models.Snapshot, changeSet, error) {
		i := slices.IndexFunc(cur.Employees, func(e models.Employee) bool { return e.ID == id })
		if i < 0 {
			return nil, 0, nil
		}
		found = true

		edited = cur.Employees[i]
		edited.Name = req.Name
		edited.JobTitle = req.JobTitle
		edited.Department = models.DepartmentOrDefault(req.Department)
		edited.ReportsTo = req.ReportsTo

		next := *cur
		next.Employees = slices.Clone(cur.Employees)
		next.Employees[i] = edited
		return &next, changedEmployees, nil
	})
	return edited, found, err
}

// DeleteEmployee removes an employee and every topic expert and team member
// reference to it. Reports whether the employee existed.
func (s *DirectoryService) DeleteEmployee(id string) bool {
	var found bool
	_, _ = s.apply("delete_employee", func(cur *models.Snapshot) (*models.Snapshot, changeSet, error) {
		if _, ok := cur.Employee(id); !ok {
			return nil, 0, nil
		}
		found = true
		return removeEmployees(cur, id), changedEmployees | changedTopics | changedTeams, nil
	})
	return found
}

// DeleteDepartment removes every employee whose department equals name and
// their topic and team memberships, in one snapshot transition.
// Returns the number of employees removed.
func (s *DirectoryService) DeleteDepartment(name string) int {
	var removed int
	_, _ = s.apply("delete_department", func(cur *models.Snapshot) (*models.Snapshot, changeSet, error) {
		var ids []string
		for _, e := range cur.Employees {
			if e.Department == name {
				ids = append(ids, e.ID)
			}
		}
		if len(ids) == 0 {
			return nil, 0, nil
		}
		removed = len(ids)
		return removeEmployees(cur, ids...), changedEmployees | changedTopics | changedTeams, nil
	})

	if removed > 0 {
		s.log.WithFields(map[string]interface{}{
			"department": name,
			"removed":    removed,
		}).Info("Department deleted")
	}
	return removed
}

// removeEmployees drops the given employees and strips their ids from every
// topic and team
func removeEmployees(cur *models.Snapshot, ids ...string) *models.Snapshot {
	next := &models.Snapshot{
		Employees: make([]models.Employee, 0, len(cur.Employees)),
		Topics:    make([]models.Topic, len(cur.Topics)),
		Teams:     make([]models.Team, len(cur.Teams)),
	}
	for _, e := range cur.Employees {
		if !slices.Contains(ids, e.ID) {
			next.Employees = append(next.Employees, e)
		}
	}
	for i, t := range cur.Topics {
		t.Experts = models.RemoveIDs(t.Experts, ids...)
		next.Topics[i] = t
	}
	for i, t := range cur.Teams {
		t.Employees = models.RemoveIDs(t.Employees, ids...)
		next.Teams[i] = t
	}
	return next
}
