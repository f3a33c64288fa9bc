package migrate

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/medhedtech/medh-backend/internal/domain/models"
)

// recommendations is the static playbook for known legacy-only fields.
// Anything not listed gets reviewNote.
var recommendations = map[string]string{
	"class_type":      "map to course_type: 'live' substrings → live, 'blended'/'hybrid' → blended, 'self'/'recorded'/'pre-recorded' → free, else blended",
	"category_type":   "map to category; value 'Free' forces course_type free and is_free true",
	"course_title":    "rename to title",
	"course_image":    "rename to image",
	"course_category": "rename to category",
	"course_fee":      "convert to a prices[] entry (currency INR, individual price, active)",
	"course_videos":   "attach as free-course lessons or curriculum lesson resources",
	"course_duration": "parse into min/max hours_per_week where the format allows",
	"brochures":       "re-upload via /api/v1/uploads/document and link from description",
	"no_of_sessions":  "map to live.total_sessions",
	"session_duration": "map to live.session_duration_min",
}

const reviewNote = "no automatic mapping; review manually"

// Report is the analyze-mode output. The diff sections are sorted, so
// the same snapshots yield the same diff run to run; only GeneratedAt
// varies between runs.
type Report struct {
	GeneratedAt time.Time      `json:"generated_at"`
	LegacyCount int            `json:"legacy_count"`
	NewCounts   map[string]int `json:"new_counts"`

	LegacyOnly []string `json:"legacy_only"`
	NewOnly    []string `json:"new_only"`
	Common     []string `json:"common"`

	Recommendations map[string]string `json:"recommendations"`
}

// Analyze fetches legacy docs and a sample of each new course type in
// parallel, then diffs their top-level field sets.
func Analyze(ctx context.Context, c *Client, limit int) (*Report, error) {
	sample := limit
	if sample <= 0 {
		sample = legacyPageSize
	}

	var legacy []map[string]any
	// Each goroutine writes its own slot; no shared map under the fan-out.
	byType := make([][]map[string]any, len(models.CourseTypes))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := c.FetchLegacy(gctx, limit)
		if err != nil {
			return err
		}
		legacy = rows
		return nil
	})
	for i, ct := range models.CourseTypes {
		g.Go(func() error {
			rows, err := c.FetchCourses(gctx, ct, sample)
			if err != nil {
				return err
			}
			byType[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	legacyKeys := keyUnion(legacy)
	var newDocs []map[string]any
	newCounts := make(map[string]int, len(models.CourseTypes))
	for i, ct := range models.CourseTypes {
		newCounts[ct] = len(byType[i])
		newDocs = append(newDocs, byType[i]...)
	}
	newKeys := keyUnion(newDocs)

	report := &Report{
		GeneratedAt:     time.Now().UTC(),
		LegacyCount:     len(legacy),
		NewCounts:       newCounts,
		LegacyOnly:      diffKeys(legacyKeys, newKeys),
		NewOnly:         diffKeys(newKeys, legacyKeys),
		Common:          commonKeys(legacyKeys, newKeys),
		Recommendations: map[string]string{},
	}
	for _, k := range report.LegacyOnly {
		if rec, ok := recommendations[k]; ok {
			report.Recommendations[k] = rec
		} else {
			report.Recommendations[k] = reviewNote
		}
	}
	return report, nil
}

func keyUnion(docs []map[string]any) map[string]bool {
	keys := make(map[string]bool)
	for _, doc := range docs {
		for k := range doc {
			keys[k] = true
		}
	}
	return keys
}

func diffKeys(a, b map[string]bool) []string {
	var out []string
	for k := range a {
		if !b[k] {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func commonKeys(a, b map[string]bool) []string {
	var out []string
	for k := range a {
		if b[k] {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
