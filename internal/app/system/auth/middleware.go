package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/medhedtech/medh-backend/internal/app/system/httpjson"
)

type ctxKey int

const claimsKey ctxKey = 0

// RequireAuth rejects requests without a valid bearer token and stores
// the verified claims in the request context.
func (m *Manager) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			httpjson.Unauthorized(w, "Missing bearer token.")
			return
		}
		claims, err := m.Verify(token)
		if err != nil {
			httpjson.Unauthorized(w, "Invalid or expired token.")
			return
		}
		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole allows only authenticated users with one of the given
// roles. Must be mounted after RequireAuth.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFrom(r)
			if !ok {
				httpjson.Unauthorized(w, "Authentication required.")
				return
			}
			for _, role := range roles {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			httpjson.Forbidden(w, "Insufficient permissions.")
		})
	}
}

// ClaimsFrom extracts the verified claims placed by RequireAuth.
func ClaimsFrom(r *http.Request) (*Claims, bool) {
	claims, ok := r.Context().Value(claimsKey).(*Claims)
	return claims, ok
}

// WithClaims returns a request whose context carries the given claims.
// Intended for handler tests.
func WithClaims(r *http.Request, claims *Claims) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), claimsKey, claims))
}
