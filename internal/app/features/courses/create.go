// internal/app/features/courses/create.go
package courses

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	coursestore "github.com/medhedtech/medh-backend/internal/app/store/courses"
	"github.com/medhedtech/medh-backend/internal/app/system/htmlsanitize"
	"github.com/medhedtech/medh-backend/internal/app/system/httpjson"
	"github.com/medhedtech/medh-backend/internal/app/system/timeouts"
	"github.com/medhedtech/medh-backend/internal/domain/models"
)

// HandleCreate handles POST /api/v1/tcourse.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in models.Course
	if err := httpjson.Decode(w, r, &in); err != nil {
		httpjson.BadRequest(w, err.Error())
		return
	}

	// Server-owned fields are never taken from the body.
	in.TitleCI = ""
	in.CategoryCI = ""
	if in.Source != "legacy_migration" {
		in.Source = "api"
	}
	in.Description = htmlsanitize.Sanitize(in.Description)
	in.Specifications = htmlsanitize.Sanitize(in.Specifications)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Courses.Create(ctx, in)
	switch {
	case errors.Is(err, coursestore.ErrInvalid):
		httpjson.BadRequest(w, err.Error())
		return
	case errors.Is(err, coursestore.ErrDuplicate):
		httpjson.Conflict(w, err.Error())
		return
	case err != nil:
		h.Log.Error("create course failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.Created(w, "Course created.", createdData{
		ID:        created.ID.Hex(),
		Slug:      created.Slug,
		UniqueKey: created.UniqueKey,
	})
}
