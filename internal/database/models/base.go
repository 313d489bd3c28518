package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Identifier prefixes, one per collection
const (
	EmployeeIDPrefix = "emp"
	TopicIDPrefix    = "topic"
	TeamIDPrefix     = "team"
)

// UnassignedDepartment is the canonical department of employees created without one
const UnassignedDepartment = "Unassigned"

// now is swapped in tests that need deterministic timestamps
var now = time.Now

// NewID builds "<prefix>-<unix-ms>-<random>". The random part is taken from a
// v4 UUID so two IDs minted in the same millisecond do not collide.
func NewID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%s-%d-%s", prefix, now().UnixMilli(), suffix)
}

// NewEmployeeID returns a fresh employee identifier
func NewEmployeeID() string { return NewID(EmployeeIDPrefix) }

// NewTopicID returns a fresh topic identifier
func NewTopicID() string { return NewID(TopicIDPrefix) }

// NewTeamID returns a fresh team identifier
func NewTeamID() string { return NewID(TeamIDPrefix) }

// DepartmentOrDefault maps a blank department to UnassignedDepartment
func DepartmentOrDefault(department string) string {
	if strings.TrimSpace(department) == "" {
		return UnassignedDepartment
	}
	return strings.TrimSpace(department)
}
