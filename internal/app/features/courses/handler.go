// internal/app/features/courses/handler.go
package courses

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	coursestore "github.com/medhedtech/medh-backend/internal/app/store/courses"
)

// Handler is the feature-level entry point for the typed-course API.
type Handler struct {
	DB      *mongo.Database
	Courses *coursestore.Store
	Log     *zap.Logger
}

// NewHandler constructs a Courses handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		Courses: coursestore.New(db),
		Log:     logger,
	}
}
