package service

import (
	"fmt"
	"slices"
	"sort"

	"orgbook-backend/internal/database/models"
	apperrors "orgbook-backend/internal/errors"
	"orgbook-backend/internal/normalize"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// EmployeeFilter narrows the employee list. Empty fields match everything.
type EmployeeFilter struct {
	Search     string `form:"search"`
	Department string `form:"department"`
	Manager    string `form:"manager"`
	TopicID    string `form:"topic"`
	TeamID     string `form:"team"`
}

// Matches reports whether e passes every set criterion
func (f EmployeeFilter) Matches(e models.Employee) bool {
	return normalize.MatchesSearch(e.Name, f.Search) &&
		(f.Department == "" || e.Department == f.Department) &&
		(f.Manager == "" || e.ReportsTo == f.Manager) &&
		(f.TopicID == "" || models.ContainsID(e.Topics, f.TopicID)) &&
		(f.TeamID == "" || models.ContainsID(e.Teams, f.TeamID))
}

// ManagerGroup lists the employees reporting to one manager
type ManagerGroup struct {
	Manager   string            `json:"manager"`
	Employees []models.Employee `json:"employees"`
}

// DepartmentGroup lists the manager groups of one department
type DepartmentGroup struct {
	Department string         `json:"department"`
	Managers   []ManagerGroup `json:"managers"`
}

// EmployeeDetail is an employee with its own topics and teams resolved
type EmployeeDetail struct {
	Employee models.Employee `json:"employee"`
	Topics   []models.Topic  `json:"topics"`
	Teams    []models.Team   `json:"teams"`
}

// TopicDetail is a topic with its experts resolved
type TopicDetail struct {
	Topic   models.Topic      `json:"topic"`
	Experts []models.Employee `json:"experts"`
}

// TeamDetail is a team with its members resolved
type TeamDetail struct {
	Team    models.Team       `json:"team"`
	Members []models.Employee `json:"members"`
}

// LinkCandidate is a topic or team an employee is not yet linked to
type LinkCandidate struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// MergeCandidate is another employee offered as merge target
type MergeCandidate struct {
	Employee models.Employee `json:"employee"`
	SameName bool            `json:"sameName"`
	Distance int             `json:"distance"`
}

// FilterEmployees returns the employees matching filter in collection order
func (s *DirectoryService) FilterEmployees(filter EmployeeFilter) []models.Employee {
	out := []models.Employee{}
	for _, e := range s.Snapshot().Employees {
		if filter.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

// OrganizedEmployees groups the filtered employees by department and then by
// manager, both in first-appearance order
func (s *DirectoryService) OrganizedEmployees(filter EmployeeFilter) []DepartmentGroup {
	groups := []DepartmentGroup{}
	for _, e := range s.FilterEmployees(filter) {
		d := slices.IndexFunc(groups, func(g DepartmentGroup) bool { return g.Department == e.Department })
		if d < 0 {
			groups = append(groups, DepartmentGroup{Department: e.Department})
			d = len(groups) - 1
		}

		managers := groups[d].Managers
		m := slices.IndexFunc(managers, func(g ManagerGroup) bool { return g.Manager == e.ReportsTo })
		if m < 0 {
			managers = append(managers, ManagerGroup{Manager: e.ReportsTo})
			m = len(managers) - 1
		}
		managers[m].Employees = append(managers[m].Employees, e)
		groups[d].Managers = managers
	}
	return groups
}

// Topics returns all topics in collection order
func (s *DirectoryService) Topics() []models.Topic {
	return s.Snapshot().Topics
}

// Teams returns all teams in collection order
func (s *DirectoryService) Teams() []models.Team {
	return s.Snapshot().Teams
}

// EmployeeDetail resolves the employee's own topic and team sets
func (s *DirectoryService) EmployeeDetail(id string) (*EmployeeDetail, error) {
	snap := s.Snapshot()
	employee, ok := snap.Employee(id)
	if !ok {
		return nil, apperrors.ErrEmployeeNotFound
	}

	detail := &EmployeeDetail{Employee: employee, Topics: []models.Topic{}, Teams: []models.Team{}}
	for _, topicID := range employee.Topics {
		if t, ok := snap.Topic(topicID); ok {
			detail.Topics = append(detail.Topics, t)
		}
	}
	for _, teamID := range employee.Teams {
		if t, ok := snap.Team(teamID); ok {
			detail.Teams = append(detail.Teams, t)
		}
	}
	return detail, nil
}

// TopicDetail resolves the topic's experts
func (s *DirectoryService) TopicDetail(id string) (*TopicDetail, error) {
	snap := s.Snapshot()
	topic, ok := snap.Topic(id)
	if !ok {
		return nil, apperrors.ErrTopicNotFound
	}
	return &TopicDetail{Topic: topic, Experts: resolveEmployees(snap, topic.Experts)}, nil
}

// TeamDetail resolves the team's members
func (s *DirectoryService) TeamDetail(id string) (*TeamDetail, error) {
	snap := s.Snapshot()
	team, ok := snap.Team(id)
	if !ok {
		return nil, apperrors.ErrTeamNotFound
	}
	return &TeamDetail{Team: team, Members: resolveEmployees(snap, team.Employees)}, nil
}

func resolveEmployees(snap *models.Snapshot, ids []string) []models.Employee {
	out := []models.Employee{}
	for _, id := range ids {
		if e, ok := snap.Employee(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// LinkCandidates lists the topics or teams the employee is not linked to yet
func (s *DirectoryService) LinkCandidates(employeeID string, kind models.ItemKind) ([]LinkCandidate, error) {
	if !kind.Valid() {
		return nil, apperrors.ErrInvalidItemKind
	}

	snap := s.Snapshot()
	employee, ok := snap.Employee(employeeID)
	if !ok {
		return nil, apperrors.ErrEmployeeNotFound
	}

	linked := employee.Items(kind)
	out := []LinkCandidate{}
	if kind == models.KindTeam {
		for _, t := range snap.Teams {
			if !models.ContainsID(linked, t.ID) {
				out = append(out, LinkCandidate{ID: t.ID, Name: t.Name, Type: kind.String()})
			}
		}
		return out, nil
	}
	for _, t := range snap.Topics {
		if !models.ContainsID(linked, t.ID) {
			out = append(out, LinkCandidate{ID: t.ID, Name: t.Name, Type: kind.String()})
		}
	}
	return out, nil
}

// MergeCandidates lists every other employee as a possible merge target.
// Without a query, employees sharing the normalised name come first and the
// rest follow in collection order. With a query, only fuzzy matches of the
// query are returned, closest first.
func (s *DirectoryService) MergeCandidates(employeeID, query string) ([]MergeCandidate, error) {
	snap := s.Snapshot()
	employee, ok := snap.Employee(employeeID)
	if !ok {
		return nil, fmt.Errorf("merge candidates: %w", apperrors.ErrEmployeeNotFound)
	}

	others := make([]models.Employee, 0, len(snap.Employees))
	names := make([]string, 0, len(snap.Employees))
	for _, e := range snap.Employees {
		if e.ID != employeeID {
			others = append(others, e)
			names = append(names, normalize.NormalizeName(e.Name))
		}
	}

	out := []MergeCandidate{}
	if query = normalize.NormalizeName(query); query != "" {
		ranks := fuzzy.RankFindNormalizedFold(query, names)
		sort.Sort(ranks)
		for _, r := range ranks {
			e := others[r.OriginalIndex]
			out = append(out, MergeCandidate{Employee: e, SameName: normalize.SameName(e.Name, employee.Name), Distance: r.Distance})
		}
		return out, nil
	}

	key := normalize.NormalizeName(employee.Name)
	for i, e := range others {
		out = append(out, MergeCandidate{
			Employee: e,
			SameName: normalize.SameName(e.Name, employee.Name),
			Distance: fuzzy.LevenshteinDistance(key, names[i]),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SameName && !out[j].SameName })
	return out, nil
}
