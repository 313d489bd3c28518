// Package normalize canonicalizes free-text person names into matching keys.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeName returns the matching key for a person name: trimmed,
// lowercased, and with "Last, First" reordered to "first last".
// An empty or blank name yields "".
func NormalizeName(name string) string {
	n := cases.Lower(language.Und).String(strings.TrimSpace(name))
	if !strings.Contains(n, ",") {
		return n
	}

	parts := strings.Split(n, ",")
	last := strings.TrimSpace(parts[0])
	first := strings.TrimSpace(parts[1])
	return strings.TrimSpace(first + " " + last)
}

// SameName reports whether two names denote the same person. Names whose key
// is empty never match anything, including each other.
func SameName(a, b string) bool {
	ka := NormalizeName(a)
	if ka == "" {
		return false
	}
	return ka == NormalizeName(b)
}

// MatchesSearch reports whether the normalised term occurs in the normalised name.
// An empty term matches every name.
func MatchesSearch(name, term string) bool {
	return strings.Contains(NormalizeName(name), NormalizeName(term))
}

// Capitalize upper-cases the first letter of a fragment and lower-cases the rest
func Capitalize(fragment string) string {
	if fragment == "" {
		return ""
	}
	return cases.Title(language.Und).String(fragment)
}

// HandleToName turns a CODEOWNERS handle such as "@jane.doe" into "Jane Doe".
// Every dot-separated fragment is capitalized; empty fragments are dropped.
func HandleToName(handle string) string {
	clean := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(handle), "@"))
	if clean == "" {
		return ""
	}

	fragments := strings.Split(clean, ".")
	words := make([]string, 0, len(fragments))
	for _, f := range fragments {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		words = append(words, Capitalize(f))
	}
	return strings.Join(words, " ")
}
