// internal/app/features/courses/curriculum.go
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
	"github.com/medhedtech/medh-backend/internal/domain/models"
)

// HandleCurriculum handles GET /api/v1/tcourse/{id}/curriculum.
func (h *Handler) HandleCurriculum(w http.ResponseWriter, r *http.Request) {
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
		h.Log.Error("get curriculum failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	curriculum := course.Curriculum
	if curriculum == nil {
		curriculum = []models.Week{}
	}
	httpjson.OK(w, "Curriculum fetched.", curriculumData{
		CourseID:   course.ID.Hex(),
		CourseType: course.CourseType,
		Curriculum: curriculum,
	})
}
