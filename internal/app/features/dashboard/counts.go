// internal/app/features/dashboard/counts.go
package dashboard

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	coursestore "github.com/medhedtech/medh-backend/internal/app/store/courses"
	"github.com/medhedtech/medh-backend/internal/app/system/httpjson"
	"github.com/medhedtech/medh-backend/internal/app/system/timeouts"
)

const (
	countsCacheKey = "dashboard:counts"
	countsCacheTTL = 30 * time.Second
)

// countsData is the dashboard payload. CachedAt lets the UI show how
// stale the numbers are.
type countsData struct {
	Courses      []coursestore.TypeStatusCount `json:"courses"`
	Students     int64                         `json:"students"`
	Certificates int64                         `json:"certificates"`
	Forms        map[string]int64              `json:"forms"`
	CachedAt     time.Time                     `json:"cached_at"`
}

// HandleCounts handles GET /api/v1/dashboard/counts. Counts are served
// cache-aside from Redis with a short TTL; with Redis down every
// request falls through to Mongo.
func (h *Handler) HandleCounts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	var data countsData
	if h.Counts.GetJSON(ctx, countsCacheKey, &data) {
		httpjson.OK(w, "Dashboard counts fetched.", data)
		return
	}

	courses, err := h.Courses.CountByTypeStatus(ctx)
	if err != nil {
		h.Log.Error("count courses failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}
	students, err := h.Students.Count(ctx)
	if err != nil {
		h.Log.Error("count students failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}
	certs, err := h.Certs.Count(ctx)
	if err != nil {
		h.Log.Error("count certificates failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}
	forms, err := h.Forms.CountByStatus(ctx)
	if err != nil {
		h.Log.Error("count forms failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	data = countsData{
		Courses:      courses,
		Students:     students,
		Certificates: certs,
		Forms:        forms,
		CachedAt:     time.Now().UTC(),
	}
	h.Counts.SetJSON(ctx, countsCacheKey, data, countsCacheTTL)

	httpjson.OK(w, "Dashboard counts fetched.", data)
}
