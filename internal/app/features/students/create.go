// internal/app/features/students/create.go
package students

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	studentstore "github.com/medhedtech/medh-backend/internal/app/store/students"
	"github.com/medhedtech/medh-backend/internal/app/system/httpjson"
	"github.com/medhedtech/medh-backend/internal/app/system/inputval"
	"github.com/medhedtech/medh-backend/internal/app/system/timeouts"
	"github.com/medhedtech/medh-backend/internal/domain/models"
)

// HandleCreate handles POST /api/v1/students.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in createRequest
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

	created, err := h.Students.Create(ctx, models.Student{
		FullName: in.FullName,
		Email:    in.Email,
		Phone:    in.Phone,
	}, in.Password)
	switch {
	case errors.Is(err, studentstore.ErrInvalid):
		httpjson.BadRequest(w, err.Error())
		return
	case errors.Is(err, studentstore.ErrDuplicateEmail):
		httpjson.Conflict(w, err.Error())
		return
	case err != nil:
		h.Log.Error("create student failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.Created(w, "Student created.", created)
}
