package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueVerify_RoundTrip(t *testing.T) {
	m, err := NewManager("test-secret-0123456789", "medh-api")
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	token, err := m.Issue("abc123", "Jane Admin", "admin")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if claims.Subject != "abc123" {
		t.Errorf("subject: got %q, want abc123", claims.Subject)
	}
	if claims.Name != "Jane Admin" {
		t.Errorf("name: got %q, want Jane Admin", claims.Name)
	}
	if claims.Role != "admin" {
		t.Errorf("role: got %q, want admin", claims.Role)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	a, _ := NewManager("secret-a-0123456789", "medh-api")
	b, _ := NewManager("secret-b-0123456789", "medh-api")

	token, err := a.Issue("abc", "X", "admin")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := b.Verify(token); err == nil {
		t.Error("expected verification to fail with a different secret")
	}
}

func TestVerify_WrongIssuer(t *testing.T) {
	a, _ := NewManager("shared-secret-0123456789", "other-api")
	b, _ := NewManager("shared-secret-0123456789", "medh-api")

	token, err := a.Issue("abc", "X", "admin")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := b.Verify(token); err == nil {
		t.Error("expected verification to fail for a foreign issuer")
	}
}

func TestNewManager_EmptySecret(t *testing.T) {
	if _, err := NewManager("", "medh-api"); err == nil {
		t.Error("expected error for empty secret")
	}
}

func TestRequireAuth(t *testing.T) {
	m, _ := NewManager("test-secret-0123456789", "medh-api")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFrom(r)
		if !ok {
			t.Error("claims missing from authed request context")
		} else if claims.Role != "superadmin" {
			t.Errorf("role: got %q, want superadmin", claims.Role)
		}
		w.WriteHeader(http.StatusOK)
	})
	handler := m.RequireAuth(next)

	// No token.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("missing token: got %d, want 401", rec.Code)
	}

	// Garbage token.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("garbage token: got %d, want 401", rec.Code)
	}

	// Valid token.
	token, err := m.Issue("id1", "Root", "superadmin")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("valid token: got %d, want 200", rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireRole("admin", "superadmin")(next)

	inject := func(role string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		return WithClaims(req, &Claims{
			Role:             role,
			RegisteredClaims: jwt.RegisteredClaims{Subject: "id1"},
		})
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, inject("admin"))
	if rec.Code != http.StatusOK {
		t.Errorf("admin role: got %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, inject("viewer"))
	if rec.Code != http.StatusForbidden {
		t.Errorf("viewer role: got %d, want 403", rec.Code)
	}

	// No claims at all.
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no claims: got %d, want 401", rec.Code)
	}
}
