// internal/app/features/certificates/routes.go
package certificates

import (
	"github.com/go-chi/chi/v5"

	"github.com/medhedtech/medh-backend/internal/app/system/auth"
)

// Routes mounts the certificate routes under the base path (typically
// "/api/v1/certificates" from bootstrap). Verification is public so
// third parties can check a certificate number.
func Routes(h *Handler, tokens *auth.Manager) chi.Router {
	r := chi.NewRouter()

	r.Get("/verify/{number}", h.HandleVerify)

	r.Group(func(pr chi.Router) {
		pr.Use(tokens.RequireAuth)
		pr.Use(auth.RequireRole("admin", "superadmin"))

		pr.Post("/", h.HandleGenerate)
		pr.Get("/{id}", h.HandleGet)
	})

	return r
}
