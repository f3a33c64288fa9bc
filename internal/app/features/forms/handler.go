// internal/app/features/forms/handler.go
package forms

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	formstore "github.com/medhedtech/medh-backend/internal/app/store/forms"
)

// Handler is the feature-level entry point for Forms.
type Handler struct {
	DB    *mongo.Database
	Forms *formstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a Forms handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:    db,
		Forms: formstore.New(db),
		Log:   logger,
	}
}
