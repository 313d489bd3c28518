// Package imports turns uploaded spreadsheets and CODEOWNERS documents into
// the row and group values the import pipelines consume.
package imports

import "strings"

// Row maps column header to cell value for one spreadsheet row
type Row map[string]string

// Value returns the first non-blank value among the given column names.
// Each name is tried verbatim first, then case-insensitively. Values are trimmed.
func (r Row) Value(names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(r[name]); v != "" {
			return v
		}
	}
	for _, name := range names {
		for header, v := range r {
			if strings.EqualFold(strings.TrimSpace(header), name) {
				if v = strings.TrimSpace(v); v != "" {
					return v
				}
			}
		}
	}
	return ""
}

// IsBlank reports whether every cell in the row is empty
func (r Row) IsBlank() bool {
	for _, v := range r {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
