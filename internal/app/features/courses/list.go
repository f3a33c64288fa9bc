// internal/app/features/courses/list.go
package courses

import (
	"context"
	"maps"
	"net/http"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/medhedtech/medh-backend/internal/app/system/httpjson"
	"github.com/medhedtech/medh-backend/internal/app/system/paging"
	"github.com/medhedtech/medh-backend/internal/app/system/timeouts"
	"github.com/medhedtech/medh-backend/internal/domain/models"
)

// HandleList handles GET /api/v1/tcourse (with optional ?q= search and
// course_type/status/category/currency filters). Soft-deleted courses
// are excluded unless status=deleted is requested explicitly.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := query.Search(r, "q")
	after := query.Get(r, "after")
	before := query.Get(r, "before")
	limit := paging.ParseLimit(r)

	courseType := query.Get(r, "course_type")
	status := query.Get(r, "status")
	category := query.Get(r, "category")
	currency := query.Get(r, "currency")

	if courseType != "" && !models.IsValidCourseType(courseType) {
		httpjson.BadRequest(w, "course_type must be blended, live or free")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// Build base filter
	base := bson.M{}
	if courseType != "" {
		base["course_type"] = courseType
	}
	if status != "" {
		base["status"] = status
	} else {
		base["status"] = bson.M{"$ne": models.CourseStatusDeleted}
	}
	if category != "" {
		base["category_ci"] = text.Fold(category)
	}
	if currency != "" {
		base["prices"] = bson.M{"$elemMatch": bson.M{"currency": currency, "is_active": true}}
	}
	var searchOr []bson.M
	if lo, hi := text.PrefixRange(q); lo != "" {
		searchOr = []bson.M{
			{"title_ci": bson.M{"$gte": lo, "$lt": hi}},
			{"category_ci": bson.M{"$gte": lo, "$lt": hi}},
		}
		base["$or"] = searchOr
	}

	total, err := h.DB.Collection("courses").CountDocuments(ctx, base)
	if err != nil {
		h.Log.Error("count courses failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	// Clone base filter for the pagination query
	f := maps.Clone(base)
	find := options.Find()
	sortField := "title_ci"

	cfg := paging.ConfigureKeyset(before, after, limit)
	cfg.ApplyToFind(find, sortField)

	// Apply cursor conditions (handle $or clause specially)
	if ks := cfg.KeysetWindow(sortField); ks != nil {
		if len(searchOr) > 0 {
			f["$and"] = []bson.M{{"$or": searchOr}, ks}
			delete(f, "$or")
		} else {
			maps.Copy(f, ks)
		}
	}

	cur, err := h.DB.Collection("courses").Find(ctx, f, find)
	if err != nil {
		h.Log.Error("find courses failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}
	defer cur.Close(ctx)

	var rows []models.Course
	if err := cur.All(ctx, &rows); err != nil {
		h.Log.Error("decode courses failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	if cfg.Direction == paging.Backward {
		paging.Reverse(rows)
	}
	page := paging.TrimPage(&rows, before, after, limit)

	items := make([]listItem, 0, len(rows))
	for _, c := range rows {
		items = append(items, listItem{
			ID:         c.ID,
			CourseType: c.CourseType,
			Title:      c.Title,
			TitleCI:    c.TitleCI,
			Category:   c.Category,
			Level:      c.Level,
			Status:     c.Status,
			Slug:       c.Slug,
			Image:      c.Image,
			IsFree:     c.IsFree,
			Prices:     c.Prices,
		})
	}

	prevCur, nextCur := "", ""
	if len(rows) > 0 {
		prevCur = wafflemongo.EncodeCursor(rows[0].TitleCI, rows[0].ID)
		nextCur = wafflemongo.EncodeCursor(rows[len(rows)-1].TitleCI, rows[len(rows)-1].ID)
	}

	httpjson.OK(w, "Courses fetched.", listData{
		Items:      items,
		Total:      total,
		Shown:      len(items),
		HasPrev:    page.HasPrev,
		HasNext:    page.HasNext,
		PrevCursor: prevCur,
		NextCursor: nextCur,
	})
}
