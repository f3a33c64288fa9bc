// internal/app/features/students/routes.go
package students

import (
	"github.com/go-chi/chi/v5"

	"github.com/medhedtech/medh-backend/internal/app/system/auth"
)

// Routes mounts the student routes under the base path (typically
// "/api/v1/students" from bootstrap). The whole surface is an admin
// API; student self-service login is out of scope here.
func Routes(h *Handler, tokens *auth.Manager) chi.Router {
	r := chi.NewRouter()

	r.Use(tokens.RequireAuth)
	r.Use(auth.RequireRole("admin", "superadmin"))

	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)
	r.Get("/{id}", h.HandleGet)
	r.Put("/{id}", h.HandleUpdate)
	r.Post("/{id}/enroll", h.HandleEnroll)

	return r
}
