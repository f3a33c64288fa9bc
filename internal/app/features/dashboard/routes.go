// internal/app/features/dashboard/routes.go
package dashboard

import (
	"github.com/go-chi/chi/v5"

	"github.com/medhedtech/medh-backend/internal/app/system/auth"
)

// Routes mounts the dashboard routes under the base path (typically
// "/api/v1/dashboard" from bootstrap).
func Routes(h *Handler, tokens *auth.Manager) chi.Router {
	r := chi.NewRouter()

	r.Use(tokens.RequireAuth)
	r.Use(auth.RequireRole("admin", "superadmin"))

	r.Get("/counts", h.HandleCounts)

	return r
}
