package models

import (
	"fmt"
	"strings"

	apperrors "orgbook-backend/internal/errors"
)

// ItemKind selects which side of an employee edge is addressed: a topic or a team
type ItemKind int

const (
	KindTopic ItemKind = iota + 1
	KindTeam
)

// ParseItemKind resolves the external "topic"/"team" string once, at the API boundary
func ParseItemKind(s string) (ItemKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "topic", "topics":
		return KindTopic, nil
	case "team", "teams":
		return KindTeam, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidItemKind, s)
	}
}

func (k ItemKind) String() string {
	switch k {
	case KindTopic:
		return "topic"
	case KindTeam:
		return "team"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of the declared kinds
func (k ItemKind) Valid() bool {
	return k == KindTopic || k == KindTeam
}
