// internal/app/features/courses/update.go
package courses

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	coursestore "github.com/medhedtech/medh-backend/internal/app/store/courses"
	"github.com/medhedtech/medh-backend/internal/app/system/htmlsanitize"
	"github.com/medhedtech/medh-backend/internal/app/system/httpjson"
	"github.com/medhedtech/medh-backend/internal/app/system/timeouts"
	"github.com/medhedtech/medh-backend/internal/domain/models"
)

// HandleUpdate handles PUT /api/v1/tcourse/{id}. The discriminator is
// immutable; curriculum item IDs already present are preserved.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.BadRequest(w, "invalid course id")
		return
	}

	var in models.Course
	if err := httpjson.Decode(w, r, &in); err != nil {
		httpjson.BadRequest(w, err.Error())
		return
	}
	in.Description = htmlsanitize.Sanitize(in.Description)
	in.Specifications = htmlsanitize.Sanitize(in.Specifications)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.Courses.Update(ctx, id, in)
	switch {
	case errors.Is(err, coursestore.ErrNotFound):
		httpjson.NotFound(w, "course not found")
		return
	case errors.Is(err, coursestore.ErrInvalid):
		httpjson.BadRequest(w, err.Error())
		return
	case errors.Is(err, coursestore.ErrDuplicate):
		httpjson.Conflict(w, err.Error())
		return
	case err != nil:
		h.Log.Error("update course failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.OK(w, "Course updated.", updated)
}
