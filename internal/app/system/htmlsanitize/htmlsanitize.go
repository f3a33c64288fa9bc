// Package htmlsanitize strips unsafe markup from rich-text fields
// (course descriptions, job postings) before they are persisted.
package htmlsanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	// Course content uses tables and inline formatting beyond the UGC set.
	p.AllowTables()
	p.AllowAttrs("class").OnElements("table", "thead", "tbody", "tr", "th", "td", "p", "span", "div")
	p.AllowElements("u", "s", "sub", "sup", "mark")
	return p
}

// Sanitize returns s with dangerous HTML removed. Safe formatting
// (paragraphs, lists, tables, links) passes through.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}
