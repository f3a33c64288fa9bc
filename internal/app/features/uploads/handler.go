// internal/app/features/uploads/handler.go
package uploads

import (
	"go.uber.org/zap"

	"github.com/medhedtech/medh-backend/internal/app/system/storage"
)

// Default size caps, overridable from config.
const (
	DefaultMaxImageBytes    = 5 << 20  // 5 MiB
	DefaultMaxDocumentBytes = 20 << 20 // 20 MiB
)

// Handler is the feature-level entry point for Uploads.
type Handler struct {
	Files            storage.Store
	Log              *zap.Logger
	MaxImageBytes    int64
	MaxDocumentBytes int64
}

// NewHandler constructs an Uploads handler bound to a storage backend
// and logger. Zero size caps fall back to the defaults.
func NewHandler(files storage.Store, logger *zap.Logger, maxImageBytes, maxDocumentBytes int64) *Handler {
	if maxImageBytes <= 0 {
		maxImageBytes = DefaultMaxImageBytes
	}
	if maxDocumentBytes <= 0 {
		maxDocumentBytes = DefaultMaxDocumentBytes
	}
	return &Handler{
		Files:            files,
		Log:              logger,
		MaxImageBytes:    maxImageBytes,
		MaxDocumentBytes: maxDocumentBytes,
	}
}
