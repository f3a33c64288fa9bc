// internal/app/features/students/enroll.go
package students

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	coursestore "github.com/medhedtech/medh-backend/internal/app/store/courses"
	studentstore "github.com/medhedtech/medh-backend/internal/app/store/students"
	"github.com/medhedtech/medh-backend/internal/app/system/httpjson"
	"github.com/medhedtech/medh-backend/internal/app/system/inputval"
	"github.com/medhedtech/medh-backend/internal/app/system/timeouts"
	"github.com/medhedtech/medh-backend/internal/domain/models"
)

// HandleEnroll handles POST /api/v1/students/{id}/enroll. Time-limited
// free courses stamp an expiry on the enrollment.
func (h *Handler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.BadRequest(w, "invalid student id")
		return
	}

	var in enrollRequest
	if err := httpjson.Decode(w, r, &in); err != nil {
		httpjson.BadRequest(w, err.Error())
		return
	}
	if res := inputval.Validate(in); res.HasErrors() {
		httpjson.BadRequest(w, res.First())
		return
	}
	courseID, err := primitive.ObjectIDFromHex(in.CourseID)
	if err != nil {
		httpjson.BadRequest(w, "invalid course id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	course, err := h.Courses.GetByID(ctx, courseID)
	switch {
	case errors.Is(err, coursestore.ErrNotFound):
		httpjson.NotFound(w, "course not found")
		return
	case err != nil:
		h.Log.Error("load course for enrollment failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}
	if course.Status == models.CourseStatusDeleted {
		httpjson.BadRequest(w, "cannot enroll in a deleted course")
		return
	}

	enr := models.Enrollment{
		CourseID:   course.ID,
		CourseType: course.CourseType,
		EnrolledAt: time.Now().UTC(),
	}
	if course.CourseType == models.CourseTypeFree &&
		course.Free != nil &&
		course.Free.AccessType == models.AccessTimeLimited {
		exp := enr.EnrolledAt.AddDate(0, 0, course.Free.AccessDaysOnce)
		enr.ExpiresAt = &exp
	}

	err = h.Students.Enroll(ctx, id, enr)
	switch {
	case errors.Is(err, studentstore.ErrNotFound):
		httpjson.NotFound(w, "student not found")
		return
	case errors.Is(err, studentstore.ErrInvalid):
		httpjson.BadRequest(w, err.Error())
		return
	case err != nil:
		h.Log.Error("enroll student failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.OK(w, "Student enrolled.", enr)
}
