// internal/app/features/jobs/routes.go
package jobs

import (
	"github.com/go-chi/chi/v5"

	"github.com/medhedtech/medh-backend/internal/app/system/auth"
)

// Routes mounts the job-posting routes under the base path (typically
// "/api/v1/jobs" from bootstrap). The public list shows active
// postings only.
func Routes(h *Handler, tokens *auth.Manager) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.HandleList)
	r.Get("/{id}", h.HandleGet)

	r.Group(func(pr chi.Router) {
		pr.Use(tokens.RequireAuth)
		pr.Use(auth.RequireRole("admin", "superadmin"))

		pr.Get("/all", h.HandleListAll)
		pr.Post("/", h.HandleCreate)
		pr.Put("/{id}", h.HandleUpdate)
		pr.Post("/{id}/close", h.HandleClose)
	})

	return r
}
