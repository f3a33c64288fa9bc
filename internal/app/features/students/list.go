// internal/app/features/students/list.go
package students

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
	"github.com/medhedtech/medh-backend/internal/app/system/search"
	"github.com/medhedtech/medh-backend/internal/app/system/timeouts"
	"github.com/medhedtech/medh-backend/internal/domain/models"
)

// HandleList handles GET /api/v1/students (with optional ?q= search
// and status filter). Email-shaped queries pivot the sort to the
// email index; everything else pages on folded name.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := query.Search(r, "q")
	after := query.Get(r, "after")
	before := query.Get(r, "before")
	limit := paging.ParseLimit(r)
	status := query.Get(r, "status")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	base := bson.M{}
	if status != "" {
		base["status"] = status
	}

	sortField := "full_name_ci"
	searchField := sortField
	if search.EmailPivotOK(q, status) {
		sortField = "email_ci"
		searchField = "email_ci"
	}
	if lo, hi := text.PrefixRange(q); lo != "" {
		base[searchField] = bson.M{"$gte": lo, "$lt": hi}
	}

	total, err := h.DB.Collection("students").CountDocuments(ctx, base)
	if err != nil {
		h.Log.Error("count students failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	f := maps.Clone(base)
	find := options.Find()

	cfg := paging.ConfigureKeyset(before, after, limit)
	cfg.ApplyToFind(find, sortField)
	if ks := cfg.KeysetWindow(sortField); ks != nil {
		if _, ok := f[sortField]; ok {
			f["$and"] = []bson.M{{sortField: f[sortField]}, ks}
			delete(f, sortField)
		} else {
			maps.Copy(f, ks)
		}
	}

	cur, err := h.DB.Collection("students").Find(ctx, f, find)
	if err != nil {
		h.Log.Error("find students failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}
	defer cur.Close(ctx)

	var rows []models.Student
	if err := cur.All(ctx, &rows); err != nil {
		h.Log.Error("decode students failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	if cfg.Direction == paging.Backward {
		paging.Reverse(rows)
	}
	page := paging.TrimPage(&rows, before, after, limit)

	items := make([]listItem, 0, len(rows))
	for _, st := range rows {
		items = append(items, listItem{
			ID:          st.ID,
			FullName:    st.FullName,
			FullNameCI:  st.FullNameCI,
			Email:       st.Email,
			Phone:       st.Phone,
			Status:      st.Status,
			Enrollments: len(st.Enrollments),
		})
	}

	cursorKey := func(st models.Student) string {
		if sortField == "email_ci" {
			return st.EmailCI
		}
		return st.FullNameCI
	}
	prevCur, nextCur := "", ""
	if len(rows) > 0 {
		prevCur = wafflemongo.EncodeCursor(cursorKey(rows[0]), rows[0].ID)
		nextCur = wafflemongo.EncodeCursor(cursorKey(rows[len(rows)-1]), rows[len(rows)-1].ID)
	}

	httpjson.OK(w, "Students fetched.", listData{
		Items:      items,
		Total:      total,
		Shown:      len(items),
		HasPrev:    page.HasPrev,
		HasNext:    page.HasNext,
		PrevCursor: prevCur,
		NextCursor: nextCur,
	})
}
