package models

// Employee is a person record with organizational attributes and edges to topics and teams
type Employee struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	JobTitle   string   `json:"jobTitle"`
	Department string   `json:"department"`
	ReportsTo  string   `json:"reportsTo"`
	Topics     []string `json:"topics"`
	Teams      []string `json:"teams"`
}

// Clone returns a copy that shares no slices with e
func (e Employee) Clone() Employee {
	e.Topics = cloneIDs(e.Topics)
	e.Teams = cloneIDs(e.Teams)
	return e
}

// Items returns the employee's edge set for the given kind
func (e Employee) Items(kind ItemKind) []string {
	if kind == KindTeam {
		return e.Teams
	}
	return e.Topics
}

// WithItems returns a copy of e whose edge set for kind is replaced by ids
func (e Employee) WithItems(kind ItemKind, ids []string) Employee {
	if kind == KindTeam {
		e.Teams = ids
	} else {
		e.Topics = ids
	}
	return e
}
