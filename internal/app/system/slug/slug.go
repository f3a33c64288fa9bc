// Package slug generates URL slugs and unique keys for courses.
package slug

import (
	"strings"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/google/uuid"
)

const maxSlugLen = 80

// Make builds a URL slug from a title: case-folded, non-alphanumerics
// collapsed to single dashes, trimmed to maxSlugLen.
func Make(title string) string {
	folded := text.Fold(title)
	var b strings.Builder
	b.Grow(len(folded))
	lastDash := true // suppress leading dash
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	s := strings.TrimRight(b.String(), "-")
	if len(s) > maxSlugLen {
		s = strings.TrimRight(s[:maxSlugLen], "-")
	}
	if s == "" {
		s = "course"
	}
	return s
}

// WithSuffix appends a short random suffix, used to resolve slug
// collisions on insert.
func WithSuffix(s string) string {
	return s + "-" + uuid.NewString()[:8]
}

// NewUniqueKey returns a fresh unique_key value.
func NewUniqueKey() string {
	return uuid.NewString()
}
