// internal/app/features/login/routes.go
package login

import (
	"github.com/go-chi/chi/v5"

	"github.com/medhedtech/medh-backend/internal/app/system/ratelimit"
)

// Routes mounts the auth routes under the base path (typically
// "/api/v1/auth" from bootstrap). Login attempts are rate limited.
func Routes(h *Handler, limiter *ratelimit.Limiter) chi.Router {
	r := chi.NewRouter()
	r.With(limiter.Middleware).Post("/login", h.HandleLogin)
	return r
}
