// internal/app/features/forms/submit.go
package forms

import (
	"context"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	formstore "github.com/medhedtech/medh-backend/internal/app/store/forms"
	"github.com/medhedtech/medh-backend/internal/app/system/htmlsanitize"
	"github.com/medhedtech/medh-backend/internal/app/system/httpjson"
	"github.com/medhedtech/medh-backend/internal/app/system/inputval"
	"github.com/medhedtech/medh-backend/internal/app/system/timeouts"
	"github.com/medhedtech/medh-backend/internal/domain/models"
)

type submitRequest struct {
	Type     string `json:"type" validate:"required,oneof=contact enrollment corporate feedback"`
	FullName string `json:"full_name" label:"full name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
	Message  string `json:"message" validate:"omitempty,max=5000"`
	CourseID string `json:"course_id" label:"course id" validate:"omitempty"`
}

// HandleSubmit handles POST /api/v1/forms (public, rate limited).
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var in submitRequest
	if err := httpjson.Decode(w, r, &in); err != nil {
		httpjson.BadRequest(w, err.Error())
		return
	}
	if res := inputval.Validate(in); res.HasErrors() {
		httpjson.BadRequest(w, res.First())
		return
	}

	f := models.Form{
		Type:     in.Type,
		FullName: in.FullName,
		Email:    in.Email,
		Phone:    in.Phone,
		Message:  htmlsanitize.Sanitize(in.Message),
	}
	if in.CourseID != "" {
		courseID, err := primitive.ObjectIDFromHex(in.CourseID)
		if err != nil {
			httpjson.BadRequest(w, "invalid course id")
			return
		}
		f.CourseID = &courseID
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Forms.Create(ctx, f)
	switch {
	case errors.Is(err, formstore.ErrInvalid):
		httpjson.BadRequest(w, err.Error())
		return
	case err != nil:
		h.Log.Error("create form failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.Created(w, "Form submitted. We'll be in touch.", map[string]string{"id": created.ID.Hex()})
}
