// internal/app/features/jobs/handler.go
package jobs

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	jobstore "github.com/medhedtech/medh-backend/internal/app/store/jobs"
)

// Handler is the feature-level entry point for Job postings.
type Handler struct {
	DB   *mongo.Database
	Jobs *jobstore.Store
	Log  *zap.Logger
}

// NewHandler constructs a Jobs handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:   db,
		Jobs: jobstore.New(db),
		Log:  logger,
	}
}
