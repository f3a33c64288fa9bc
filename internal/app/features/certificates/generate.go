// internal/app/features/certificates/generate.go
package certificates

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	certstore "github.com/medhedtech/medh-backend/internal/app/store/certificates"
	coursestore "github.com/medhedtech/medh-backend/internal/app/store/courses"
	studentstore "github.com/medhedtech/medh-backend/internal/app/store/students"
	"github.com/medhedtech/medh-backend/internal/app/system/certgen"
	"github.com/medhedtech/medh-backend/internal/app/system/httpjson"
	"github.com/medhedtech/medh-backend/internal/app/system/inputval"
	"github.com/medhedtech/medh-backend/internal/app/system/storage"
	"github.com/medhedtech/medh-backend/internal/app/system/timeouts"
	"github.com/medhedtech/medh-backend/internal/domain/models"
)

type generateRequest struct {
	StudentID      string     `json:"student_id" label:"student id" validate:"required"`
	CourseID       string     `json:"course_id" label:"course id" validate:"required"`
	CompletionDate *time.Time `json:"completion_date"`
}

// newCertNumber builds a verification number like MEDH-3F2A9C41.
func newCertNumber() string {
	return "MEDH-" + strings.ToUpper(uuid.NewString()[:8])
}

// HandleGenerate handles POST /api/v1/certificates. The PDF is
// rendered and uploaded synchronously; when storage is unreachable the
// record is still persisted with a placeholder URL and flagged for the
// repair worker, so the caller always gets a certificate back.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var in generateRequest
	if err := httpjson.Decode(w, r, &in); err != nil {
		httpjson.BadRequest(w, err.Error())
		return
	}
	if res := inputval.Validate(in); res.HasErrors() {
		httpjson.BadRequest(w, res.First())
		return
	}
	studentID, err := primitive.ObjectIDFromHex(in.StudentID)
	if err != nil {
		httpjson.BadRequest(w, "invalid student id")
		return
	}
	courseID, err := primitive.ObjectIDFromHex(in.CourseID)
	if err != nil {
		httpjson.BadRequest(w, "invalid course id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	student, err := h.Students.GetByID(ctx, studentID)
	switch {
	case errors.Is(err, studentstore.ErrNotFound):
		httpjson.NotFound(w, "student not found")
		return
	case err != nil:
		h.Log.Error("load student for certificate failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	course, err := h.Courses.GetByID(ctx, courseID)
	switch {
	case errors.Is(err, coursestore.ErrNotFound):
		httpjson.NotFound(w, "course not found")
		return
	case err != nil:
		h.Log.Error("load course for certificate failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	enrolled := false
	for _, e := range student.Enrollments {
		if e.CourseID == course.ID {
			enrolled = true
			break
		}
	}
	if !enrolled {
		httpjson.BadRequest(w, "student is not enrolled in this course")
		return
	}

	completion := time.Now().UTC()
	if in.CompletionDate != nil {
		completion = in.CompletionDate.UTC()
	}

	cert := models.Certificate{
		Number:         newCertNumber(),
		StudentID:      student.ID,
		CourseID:       course.ID,
		StudentName:    student.FullName,
		CourseTitle:    course.Title,
		CourseType:     course.CourseType,
		CompletionDate: completion,
	}

	pdf, err := certgen.Render(certgen.Input{
		StudentName:    cert.StudentName,
		CourseTitle:    cert.CourseTitle,
		CourseType:     cert.CourseType,
		Number:         cert.Number,
		CompletionDate: cert.CompletionDate,
	})
	if err != nil {
		h.Log.Error("render certificate failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	path := fmt.Sprintf("certificates/%s.pdf", cert.Number)
	if err := h.Files.Put(ctx, path, bytes.NewReader(pdf), &storage.PutOptions{ContentType: "application/pdf"}); err != nil {
		// Storage being down must not fail certificate issuance.
		h.Log.Warn("certificate upload failed, persisting placeholder",
			zap.String("number", cert.Number), zap.Error(err))
		cert.GeneratedFileURL = models.PlaceholderCertificateURL
		cert.StorageDegraded = true
	} else {
		cert.GeneratedFileURL = h.Files.URL(path)
	}

	created, err := h.Certs.Create(ctx, cert)
	if errors.Is(err, certstore.ErrDuplicateNumber) {
		httpjson.Conflict(w, err.Error())
		return
	}
	if err != nil {
		h.Log.Error("persist certificate failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	httpjson.Created(w, "Certificate generated.", created)
}
