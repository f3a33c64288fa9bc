// internal/app/features/certificates/view.go
package certificates

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	certstore "github.com/medhedtech/medh-backend/internal/app/store/certificates"
	"github.com/medhedtech/medh-backend/internal/app/system/httpjson"
	"github.com/medhedtech/medh-backend/internal/app/system/timeouts"
)

// HandleGet handles GET /api/v1/certificates/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.BadRequest(w, "invalid certificate id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	cert, err := h.Certs.GetByID(ctx, id)
	switch {
	case errors.Is(err, certstore.ErrNotFound):
		httpjson.NotFound(w, "certificate not found")
		return
	case err != nil:
		h.Log.Error("get certificate failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.OK(w, "Certificate fetched.", cert)
}

// HandleVerify handles GET /api/v1/certificates/verify/{number}. The
// response carries only what a verifier needs, not the full record.
func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	cert, err := h.Certs.GetByNumber(ctx, number)
	switch {
	case errors.Is(err, certstore.ErrNotFound):
		httpjson.NotFound(w, "no certificate with that number")
		return
	case err != nil:
		h.Log.Error("verify certificate failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.OK(w, "Certificate verified.", map[string]any{
		"number":          cert.Number,
		"student_name":    cert.StudentName,
		"course_title":    cert.CourseTitle,
		"course_type":     cert.CourseType,
		"completion_date": cert.CompletionDate,
		"issued_at":       cert.IssuedAt,
	})
}
