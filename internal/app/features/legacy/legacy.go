// internal/app/features/legacy/legacy.go
package legacy

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	legacystore "github.com/medhedtech/medh-backend/internal/app/store/legacycourses"
	"github.com/medhedtech/medh-backend/internal/app/system/httpjson"
	"github.com/medhedtech/medh-backend/internal/app/system/paging"
	"github.com/medhedtech/medh-backend/internal/app/system/timeouts"
)

// Handler exposes the read-only legacy course collection so the
// migration tool can fetch snapshots over the same API it posts to.
type Handler struct {
	Legacy *legacystore.Store
	Log    *zap.Logger
}

// NewHandler constructs a Legacy handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Legacy: legacystore.New(db),
		Log:    logger,
	}
}

// HandleList handles GET /api/v1/legacy-courses. Raw documents are
// returned untyped; the migration tool does its own field analysis.
// Pages are walked with ?after=<last _id>; the migration tool loops
// until a short page so it sees the whole collection despite the
// per-request limit cap.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit := paging.ParseLimit(r)

	var after primitive.ObjectID
	if s := r.URL.Query().Get("after"); s != "" {
		var err error
		if after, err = primitive.ObjectIDFromHex(s); err != nil {
			httpjson.BadRequest(w, "invalid after cursor")
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	rows, err := h.Legacy.List(ctx, after, int64(limit))
	if err != nil {
		h.Log.Error("list legacy courses failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	items := make([]map[string]any, 0, len(rows))
	for _, lc := range rows {
		items = append(items, lc.Raw)
	}

	total, err := h.Legacy.Count(ctx)
	if err != nil {
		h.Log.Error("count legacy courses failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.OK(w, "Legacy courses fetched.", map[string]any{
		"items": items,
		"shown": len(items),
		"total": total,
	})
}
