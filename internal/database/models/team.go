package models

// Team is a group record with a member set and an optional channel link
type Team struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ChannelLink string   `json:"teamsLink"`
	Employees   []string `json:"employees"`
}

// Clone returns a copy that shares no slices with t
func (t Team) Clone() Team {
	t.Employees = cloneIDs(t.Employees)
	return t
}
