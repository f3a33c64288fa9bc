// internal/app/features/uploads/routes.go
package uploads

import (
	"github.com/go-chi/chi/v5"

	"github.com/medhedtech/medh-backend/internal/app/system/auth"
)

// Routes mounts the upload routes under the base path (typically
// "/api/v1/uploads" from bootstrap). Uploads are admin-only.
func Routes(h *Handler, tokens *auth.Manager) chi.Router {
	r := chi.NewRouter()

	r.Use(tokens.RequireAuth)
	r.Use(auth.RequireRole("admin", "superadmin"))

	r.Post("/image", h.HandleImage)
	r.Post("/document", h.HandleDocument)

	return r
}
