// Package search holds shared heuristics for paged list queries.
package search

import "strings"

// EmailPivotOK reports whether it's safe and useful to pivot a paged
// student search from name-based sorting to email-based sorting.
//
// We pivot when the user is clearly searching by email (the query
// contains '@') and the result set is constrained by status, keeping
// the indexed path selective.
func EmailPivotOK(query, status string) bool {
	qHasAt := strings.Contains(query, "@")
	statusFixed := equalsAnyFold(status, "active", "disabled")
	return qHasAt && statusFixed
}

func equalsAnyFold(s string, vals ...string) bool {
	s = strings.TrimSpace(strings.ToLower(s))
	for _, v := range vals {
		if s == strings.ToLower(v) {
			return true
		}
	}
	return false
}
