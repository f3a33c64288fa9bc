// internal/app/features/jobs/crud.go
package jobs

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	jobstore "github.com/medhedtech/medh-backend/internal/app/store/jobs"
	"github.com/medhedtech/medh-backend/internal/app/system/htmlsanitize"
	"github.com/medhedtech/medh-backend/internal/app/system/httpjson"
	"github.com/medhedtech/medh-backend/internal/app/system/inputval"
	"github.com/medhedtech/medh-backend/internal/app/system/paging"
	"github.com/medhedtech/medh-backend/internal/app/system/timeouts"
	"github.com/medhedtech/medh-backend/internal/domain/models"
)

type jobRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Department  string   `json:"department" validate:"omitempty,max=100"`
	Location    string   `json:"location" validate:"omitempty,max=200"`
	WorkMode    string   `json:"work_mode" label:"work mode" validate:"omitempty,oneof=remote hybrid office"`
	Description string   `json:"description" validate:"required"`
	Skills      []string `json:"skills" validate:"omitempty,dive,max=100"`
}

// HandleList handles GET /api/v1/jobs, the public careers list:
// active postings only.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit := paging.ParseLimit(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, err := h.Jobs.List(ctx, true, int64(limit))
	if err != nil {
		h.Log.Error("list jobs failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.OK(w, "Jobs fetched.", map[string]any{"items": rows, "shown": len(rows)})
}

// HandleListAll handles GET /api/v1/jobs/all (admin): every posting,
// closed ones included.
func (h *Handler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	limit := paging.ParseLimit(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rows, err := h.Jobs.List(ctx, false, int64(limit))
	if err != nil {
		h.Log.Error("list all jobs failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.OK(w, "Jobs fetched.", map[string]any{"items": rows, "shown": len(rows)})
}

// HandleGet handles GET /api/v1/jobs/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.BadRequest(w, "invalid job id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	j, err := h.Jobs.GetByID(ctx, id)
	switch {
	case errors.Is(err, jobstore.ErrNotFound):
		httpjson.NotFound(w, "job not found")
		return
	case err != nil:
		h.Log.Error("get job failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.OK(w, "Job fetched.", j)
}

// HandleCreate handles POST /api/v1/jobs.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in jobRequest
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

	created, err := h.Jobs.Create(ctx, models.Job{
		Title:       in.Title,
		Department:  in.Department,
		Location:    in.Location,
		WorkMode:    in.WorkMode,
		Description: htmlsanitize.Sanitize(in.Description),
		Skills:      in.Skills,
	})
	switch {
	case errors.Is(err, jobstore.ErrInvalid):
		httpjson.BadRequest(w, err.Error())
		return
	case err != nil:
		h.Log.Error("create job failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.Created(w, "Job created.", created)
}

// HandleUpdate handles PUT /api/v1/jobs/{id}. Empty fields are left
// unchanged.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.BadRequest(w, "invalid job id")
		return
	}

	var in jobRequest
	if err := httpjson.Decode(w, r, &in); err != nil {
		httpjson.BadRequest(w, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Jobs.Update(ctx, id, models.Job{
		Title:       in.Title,
		Department:  in.Department,
		Location:    in.Location,
		WorkMode:    in.WorkMode,
		Description: htmlsanitize.Sanitize(in.Description),
		Skills:      in.Skills,
	})
	switch {
	case errors.Is(err, jobstore.ErrNotFound):
		httpjson.NotFound(w, "job not found")
		return
	case errors.Is(err, jobstore.ErrInvalid):
		httpjson.BadRequest(w, err.Error())
		return
	case err != nil:
		h.Log.Error("update job failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.OK(w, "Job updated.", nil)
}

// HandleClose handles POST /api/v1/jobs/{id}/close.
func (h *Handler) HandleClose(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.BadRequest(w, "invalid job id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err = h.Jobs.Close(ctx, id)
	switch {
	case errors.Is(err, jobstore.ErrNotFound):
		httpjson.NotFound(w, "job not found")
		return
	case err != nil:
		h.Log.Error("close job failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.OK(w, "Job closed.", nil)
}
