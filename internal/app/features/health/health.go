package health

import (
	"context"
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/medhedtech/medh-backend/internal/app/system/cache"
	"github.com/medhedtech/medh-backend/internal/app/system/timeouts"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Client *mongo.Client
	Cache  *cache.Cache
	Log    *zap.Logger
}

// NewHandler constructs a health Handler with the Mongo client, the
// Redis-backed cache, and logger.
func NewHandler(client *mongo.Client, c *cache.Cache, logger *zap.Logger) *Handler {
	return &Handler{
		Client: client,
		Cache:  c,
		Log:    logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache,omitempty"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "database":"connected", "cache":"connected" }
//
// On DB failure: 503. A Redis failure is reported but never fails the
// check; the API degrades without it.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:   "ok",
		Database: "connected",
	}

	if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Error("health-check: mongo ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Database = "disconnected"
		resp.Message = "Database unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	// Redis is informational only.
	switch {
	case !h.Cache.Enabled():
		resp.Cache = "disabled"
	case h.Cache.Ping(ctx) != nil:
		resp.Cache = "disconnected"
	default:
		resp.Cache = "connected"
	}

	_ = json.NewEncoder(w).Encode(resp)
}
