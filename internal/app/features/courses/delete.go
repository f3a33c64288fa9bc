// internal/app/features/courses/delete.go
package courses

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	coursestore "github.com/medhedtech/medh-backend/internal/app/store/courses"
	"github.com/medhedtech/medh-backend/internal/app/system/httpjson"
	"github.com/medhedtech/medh-backend/internal/app/system/timeouts"
)

// HandleDelete handles DELETE /api/v1/tcourse/{id}. Deletes are soft:
// the course moves to status "deleted" and drops out of listings.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.BadRequest(w, "invalid course id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err = h.Courses.SoftDelete(ctx, id)
	switch {
	case errors.Is(err, coursestore.ErrNotFound):
		httpjson.NotFound(w, "course not found")
		return
	case err != nil:
		h.Log.Error("delete course failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.OK(w, "Course deleted.", nil)
}
