package models

import "slices"

// Relationship sets are stored as ordered ID slices. The helpers below never
// modify their input; they return a fresh slice whenever the content changes.

func cloneIDs(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return slices.Clone(ids)
}

// ContainsID reports whether id is in ids
func ContainsID(ids []string, id string) bool {
	return slices.Contains(ids, id)
}

// AddID returns ids with id appended, or ids itself when already present
func AddID(ids []string, id string) []string {
	if slices.Contains(ids, id) {
		return ids
	}
	out := make([]string, 0, len(ids)+1)
	out = append(out, ids...)
	return append(out, id)
}

// RemoveIDs returns ids without any of the given ids, or ids itself when nothing matched
func RemoveIDs(ids []string, remove ...string) []string {
	if !slices.ContainsFunc(ids, func(id string) bool { return slices.Contains(remove, id) }) {
		return ids
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(remove, id) {
			out = append(out, id)
		}
	}
	return out
}

// ReplaceID returns ids with from rewritten to to, dropping the rewrite when
// to is already present so no duplicate is introduced.
func ReplaceID(ids []string, from, to string) []string {
	if !slices.Contains(ids, from) {
		return ids
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == from {
			id = to
		}
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

// UnionIDs returns the ordered union of a and b with duplicates removed
func UnionIDs(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	for _, id := range a {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	for _, id := range b {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
