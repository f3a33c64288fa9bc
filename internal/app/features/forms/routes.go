// internal/app/features/forms/routes.go
package forms

import (
	"github.com/go-chi/chi/v5"

	"github.com/medhedtech/medh-backend/internal/app/system/auth"
	"github.com/medhedtech/medh-backend/internal/app/system/ratelimit"
)

// Routes mounts the form routes under the base path (typically
// "/api/v1/forms" from bootstrap). Submission is public but rate
// limited; triage is admin-only.
func Routes(h *Handler, tokens *auth.Manager, limiter *ratelimit.Limiter) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(limiter.Middleware)
		pr.Post("/", h.HandleSubmit)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(tokens.RequireAuth)
		pr.Use(auth.RequireRole("admin", "superadmin"))

		pr.Get("/", h.HandleList)
		pr.Get("/{id}", h.HandleGet)
		pr.Put("/{id}/status", h.HandleUpdateStatus)
	})

	return r
}
