// internal/app/features/students/edit.go
package students

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	studentstore "github.com/medhedtech/medh-backend/internal/app/store/students"
	"github.com/medhedtech/medh-backend/internal/app/system/httpjson"
	"github.com/medhedtech/medh-backend/internal/app/system/inputval"
	"github.com/medhedtech/medh-backend/internal/app/system/timeouts"
	"github.com/medhedtech/medh-backend/internal/domain/models"
)

// HandleUpdate handles PUT /api/v1/students/{id}. Empty fields are
// left unchanged; status "disabled" is the soft-delete.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.BadRequest(w, "invalid student id")
		return
	}

	var in updateRequest
	if err := httpjson.Decode(w, r, &in); err != nil {
		httpjson.BadRequest(w, err.Error())
		return
	}
	if res := inputval.Validate(in); res.HasErrors() {
		httpjson.BadRequest(w, res.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Students.Update(ctx, id, models.Student{
		FullName: in.FullName,
		Email:    in.Email,
		Phone:    in.Phone,
		Status:   in.Status,
	})
	switch {
	case errors.Is(err, studentstore.ErrNotFound):
		httpjson.NotFound(w, "student not found")
		return
	case errors.Is(err, studentstore.ErrInvalid):
		httpjson.BadRequest(w, err.Error())
		return
	case errors.Is(err, studentstore.ErrDuplicateEmail):
		httpjson.Conflict(w, err.Error())
		return
	case err != nil:
		h.Log.Error("update student failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.OK(w, "Student updated.", nil)
}
