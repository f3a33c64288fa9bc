// internal/app/features/forms/admin.go
package forms

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	formstore "github.com/medhedtech/medh-backend/internal/app/store/forms"
	"github.com/medhedtech/medh-backend/internal/app/system/httpjson"
	"github.com/medhedtech/medh-backend/internal/app/system/inputval"
	"github.com/medhedtech/medh-backend/internal/app/system/paging"
	"github.com/medhedtech/medh-backend/internal/app/system/timeouts"
)

// HandleList handles GET /api/v1/forms with optional status and type
// filters, newest first.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	status := query.Get(r, "status")
	formType := query.Get(r, "type")
	limit := paging.ParseLimit(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, err := h.Forms.List(ctx, status, formType, int64(limit))
	if err != nil {
		h.Log.Error("list forms failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	counts, err := h.Forms.CountByStatus(ctx)
	if err != nil {
		h.Log.Error("count forms failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.OK(w, "Forms fetched.", map[string]any{
		"items":  rows,
		"shown":  len(rows),
		"counts": counts,
	})
}

// HandleGet handles GET /api/v1/forms/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.BadRequest(w, "invalid form id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	f, err := h.Forms.GetByID(ctx, id)
	switch {
	case errors.Is(err, formstore.ErrNotFound):
		httpjson.NotFound(w, "form not found")
		return
	case err != nil:
		h.Log.Error("get form failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.OK(w, "Form fetched.", f)
}

type statusRequest struct {
	Status string `json:"status" validate:"required,oneof=new in_progress closed"`
	Notes  string `json:"notes" validate:"omitempty,max=5000"`
}

// HandleUpdateStatus handles PUT /api/v1/forms/{id}/status, moving a
// submission through the new → in_progress → closed workflow.
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.BadRequest(w, "invalid form id")
		return
	}

	var in statusRequest
	if err := httpjson.Decode(w, r, &in); err != nil {
		httpjson.BadRequest(w, err.Error())
		return
	}
	if res := inputval.Validate(in); res.HasErrors() {
		httpjson.BadRequest(w, res.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err = h.Forms.UpdateStatus(ctx, id, in.Status, in.Notes)
	switch {
	case errors.Is(err, formstore.ErrNotFound):
		httpjson.NotFound(w, "form not found")
		return
	case errors.Is(err, formstore.ErrInvalid):
		httpjson.BadRequest(w, err.Error())
		return
	case err != nil:
		h.Log.Error("update form status failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.OK(w, "Form updated.", nil)
}
