package models

// Snapshot is the complete state of the three collections at one point in
// time. A published snapshot is never modified; operations build a new one.
type Snapshot struct {
	Employees []Employee `json:"employees"`
	Topics    []Topic    `json:"topics"`
	Teams     []Team     `json:"teams"`
}

// EmptySnapshot returns a snapshot with three empty collections
func EmptySnapshot() *Snapshot {
	return &Snapshot{
		Employees: []Employee{},
		Topics:    []Topic{},
		Teams:     []Team{},
	}
}

// Employee looks up an employee by ID
func (s *Snapshot) Employee(id string) (Employee, bool) {
	for _, e := range s.Employees {
		if e.ID == id {
			return e, true
		}
	}
	return Employee{}, false
}

// Topic looks up a topic by ID
func (s *Snapshot) Topic(id string) (Topic, bool) {
	for _, t := range s.Topics {
		if t.ID == id {
			return t, true
		}
	}
	return Topic{}, false
}

// Team looks up a team by ID
func (s *Snapshot) Team(id string) (Team, bool) {
	for _, t := range s.Teams {
		if t.ID == id {
			return t, true
		}
	}
	return Team{}, false
}

// HasItem reports whether a topic or team with the given ID exists
func (s *Snapshot) HasItem(kind ItemKind, id string) bool {
	if kind == KindTeam {
		_, ok := s.Team(id)
		return ok
	}
	_, ok := s.Topic(id)
	return ok
}

// Departments returns the distinct non-empty department values in first-appearance order
func (s *Snapshot) Departments() []string {
	return distinct(s.Employees, func(e Employee) string { return e.Department })
}

// Managers returns the distinct non-empty reportsTo values in first-appearance order
func (s *Snapshot) Managers() []string {
	return distinct(s.Employees, func(e Employee) string { return e.ReportsTo })
}

// Clone returns a deep copy
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		Employees: make([]Employee, len(s.Employees)),
		Topics:    make([]Topic, len(s.Topics)),
		Teams:     make([]Team, len(s.Teams)),
	}
	for i, e := range s.Employees {
		out.Employees[i] = e.Clone()
	}
	for i, t := range s.Topics {
		out.Topics[i] = t.Clone()
	}
	for i, t := range s.Teams {
		out.Teams[i] = t.Clone()
	}
	return out
}

func distinct(employees []Employee, field func(Employee) string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, e := range employees {
		v := field(e)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
