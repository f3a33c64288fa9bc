// internal/app/features/certificates/handler.go
package certificates

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	certstore "github.com/medhedtech/medh-backend/internal/app/store/certificates"
	coursestore "github.com/medhedtech/medh-backend/internal/app/store/courses"
	studentstore "github.com/medhedtech/medh-backend/internal/app/store/students"
	"github.com/medhedtech/medh-backend/internal/app/system/storage"
)

// Handler is the feature-level entry point for Certificates.
type Handler struct {
	DB       *mongo.Database
	Certs    *certstore.Store
	Students *studentstore.Store
	Courses  *coursestore.Store
	Files    storage.Store
	Log      *zap.Logger
}

// NewHandler constructs a Certificates handler bound to a DB, a file
// storage backend, and logger.
func NewHandler(db *mongo.Database, files storage.Store, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		Certs:    certstore.New(db),
		Students: studentstore.New(db),
		Courses:  coursestore.New(db),
		Files:    files,
		Log:      logger,
	}
}
