package workflow

import "strings"

// Matches reports whether any field contains query, case-insensitively. An
// empty (or all-whitespace) query matches every record. Filtering is a pure
// view operation over the already-loaded list; it never re-fetches.
func Matches(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// MatchesCategory applies the optional exact-match secondary filter. An empty
// selection (or the "All" sentinel the console uses) matches everything;
// otherwise the comparison is exact, ignoring case. Callers AND this with
// Matches.
func MatchesCategory(selected, value string) bool {
	if selected == "" || strings.EqualFold(selected, "All") {
		return true
	}
	return strings.EqualFold(selected, value)
}
