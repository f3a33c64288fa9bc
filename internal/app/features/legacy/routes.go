// internal/app/features/legacy/routes.go
package legacy

import (
	"github.com/go-chi/chi/v5"

	"github.com/medhedtech/medh-backend/internal/app/system/auth"
)

// Routes mounts the legacy-course routes under the base path
// (typically "/api/v1/legacy-courses" from bootstrap). Admin-only.
func Routes(h *Handler, tokens *auth.Manager) chi.Router {
	r := chi.NewRouter()

	r.Use(tokens.RequireAuth)
	r.Use(auth.RequireRole("admin", "superadmin"))

	r.Get("/", h.HandleList)

	return r
}
