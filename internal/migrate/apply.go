package migrate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/medhedtech/medh-backend/internal/app/system/slug"
)

// ApplyResult summarizes an apply run.
type ApplyResult struct {
	Total   int      `json:"total"`
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}

// Apply fetches legacy docs, maps each to a new-model payload, and
// posts them to the API. This is a one-shot ETL pass with no retries or
// transactional guarantees; reruns are handled best-effort by skipping
// legacy docs whose derived slug already exists upstream. Legacy
// documents are never modified.
//
// In dry-run mode the mapped payloads are written to out instead of
// being posted.
func Apply(ctx context.Context, c *Client, limit int, dryRun bool, out io.Writer) (*ApplyResult, error) {
	legacy, err := c.FetchLegacy(ctx, limit)
	if err != nil {
		return nil, err
	}

	res := &ApplyResult{Total: len(legacy)}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	for _, doc := range legacy {
		payload, err := MapLegacy(doc)
		if err != nil {
			res.Failed++
			res.Errors = append(res.Errors, err.Error())
			continue
		}

		// The server will generate the same slug from the title, so a
		// hit here means a previous run already migrated this course.
		derived := slug.Make(payload["title"].(string))
		exists, err := c.SlugExists(ctx, derived)
		if err != nil {
			res.Failed++
			res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", derived, err))
			continue
		}
		if exists {
			res.Skipped++
			c.log.Info("skipping already-migrated course", zap.String("slug", derived))
			continue
		}

		if dryRun {
			if err := enc.Encode(payload); err != nil {
				return res, err
			}
			res.Created++
			continue
		}

		id, err := c.CreateCourse(ctx, payload)
		if err != nil {
			res.Failed++
			res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", derived, err))
			continue
		}
		res.Created++
		c.log.Info("migrated course",
			zap.String("slug", derived), zap.String("id", id))
	}

	return res, nil
}
