package models

import "encoding/json"

// Topic is a skill or product component with a set of expert employees.
// Teams is persisted for compatibility but no operation reads or writes it.
type Topic struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Experts     []string `json:"experts"`
	Link        string   `json:"link"`
	Teams       []string `json:"teams"`
}

// Clone returns a copy that shares no slices with t
func (t Topic) Clone() Topic {
	t.Experts = cloneIDs(t.Experts)
	t.Teams = cloneIDs(t.Teams)
	return t
}

// UnmarshalJSON accepts the legacy "employees" member list some stored topics
// carry instead of "experts".
func (t *Topic) UnmarshalJSON(data []byte) error {
	type plain Topic
	var aux struct {
		plain
		Employees []string `json:"employees"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*t = Topic(aux.plain)
	if len(t.Experts) == 0 && len(aux.Employees) > 0 {
		t.Experts = aux.Employees
	}
	return nil
}
