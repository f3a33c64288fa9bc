// internal/app/features/courses/routes.go
package courses

import (
	"github.com/go-chi/chi/v5"

	"github.com/medhedtech/medh-backend/internal/app/system/auth"
)

// Routes mounts the typed-course routes under the base path
// (typically "/api/v1/tcourse" from bootstrap). Reads are public;
// writes require an authenticated admin.
func Routes(h *Handler, tokens *auth.Manager) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.HandleList)
	r.Get("/{id}", h.HandleGet)
	r.Get("/slug/{slug}", h.HandleGetBySlug)
	r.Get("/{id}/curriculum", h.HandleCurriculum)

	r.Group(func(pr chi.Router) {
		pr.Use(tokens.RequireAuth)
		pr.Use(auth.RequireRole("admin", "superadmin"))

		pr.Post("/", h.HandleCreate)
		pr.Put("/{id}", h.HandleUpdate)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
