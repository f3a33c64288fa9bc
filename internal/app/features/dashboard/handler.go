// internal/app/features/dashboard/handler.go
package dashboard

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	certstore "github.com/medhedtech/medh-backend/internal/app/store/certificates"
	coursestore "github.com/medhedtech/medh-backend/internal/app/store/courses"
	formstore "github.com/medhedtech/medh-backend/internal/app/store/forms"
	studentstore "github.com/medhedtech/medh-backend/internal/app/store/students"
	"github.com/medhedtech/medh-backend/internal/app/system/cache"
)

// Handler is the feature-level entry point for the admin dashboard.
type Handler struct {
	DB       *mongo.Database
	Courses  *coursestore.Store
	Students *studentstore.Store
	Certs    *certstore.Store
	Forms    *formstore.Store
	Counts   *cache.Cache
	Log      *zap.Logger
}

// NewHandler constructs a Dashboard handler bound to a DB, a count
// cache, and logger.
func NewHandler(db *mongo.Database, counts *cache.Cache, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		Courses:  coursestore.New(db),
		Students: studentstore.New(db),
		Certs:    certstore.New(db),
		Forms:    formstore.New(db),
		Counts:   counts,
		Log:      logger,
	}
}
