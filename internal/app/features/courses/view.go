// internal/app/features/courses/view.go
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

// HandleGet handles GET /api/v1/tcourse/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.BadRequest(w, "invalid course id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	course, err := h.Courses.GetByID(ctx, id)
	switch {
	case errors.Is(err, coursestore.ErrNotFound):
		httpjson.NotFound(w, "course not found")
		return
	case err != nil:
		h.Log.Error("get course failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.OK(w, "Course fetched.", course)
}

// HandleGetBySlug handles GET /api/v1/tcourse/slug/{slug}.
func (h *Handler) HandleGetBySlug(w http.ResponseWriter, r *http.Request) {
	slugVal := chi.URLParam(r, "slug")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	course, err := h.Courses.GetBySlug(ctx, slugVal)
	switch {
	case errors.Is(err, coursestore.ErrNotFound):
		httpjson.NotFound(w, "course not found")
		return
	case err != nil:
		h.Log.Error("get course by slug failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.OK(w, "Course fetched.", course)
}
