// internal/app/features/students/handler.go
package students

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	coursestore "github.com/medhedtech/medh-backend/internal/app/store/courses"
	studentstore "github.com/medhedtech/medh-backend/internal/app/store/students"
)

// Handler is the feature-level entry point for Students.
type Handler struct {
	DB       *mongo.Database
	Students *studentstore.Store
	Courses  *coursestore.Store
	Log      *zap.Logger
}

// NewHandler constructs a Students handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		Students: studentstore.New(db),
		Courses:  coursestore.New(db),
		Log:      logger,
	}
}
