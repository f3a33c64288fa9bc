// internal/app/features/login/login.go
package login

import (
	"context"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	adminstore "github.com/medhedtech/medh-backend/internal/app/store/admins"
	"github.com/medhedtech/medh-backend/internal/app/system/auth"
	"github.com/medhedtech/medh-backend/internal/app/system/httpjson"
	"github.com/medhedtech/medh-backend/internal/app/system/inputval"
	"github.com/medhedtech/medh-backend/internal/app/system/timeouts"
)

// Handler is the feature-level entry point for admin login.
type Handler struct {
	Admins *adminstore.Store
	Tokens *auth.Manager
	Log    *zap.Logger
}

// NewHandler constructs a Login handler bound to a DB, token manager,
// and logger.
func NewHandler(db *mongo.Database, tokens *auth.Manager, logger *zap.Logger) *Handler {
	return &Handler{
		Admins: adminstore.New(db),
		Tokens: tokens,
		Log:    logger,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin handles POST /api/v1/auth/login. Unknown email and wrong
// password produce the same response so accounts cannot be enumerated.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := httpjson.Decode(w, r, &in); err != nil {
		httpjson.BadRequest(w, err.Error())
		return
	}
	if res := inputval.Validate(in); res.HasErrors() {
		httpjson.BadRequest(w, res.First())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	admin, err := h.Admins.GetByEmail(ctx, in.Email)
	if errors.Is(err, adminstore.ErrNotFound) {
		httpjson.Unauthorized(w, "invalid email or password")
		return
	}
	if err != nil {
		h.Log.Error("load admin for login failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}
	if admin.Status != "active" || !adminstore.VerifyPassword(admin, in.Password) {
		httpjson.Unauthorized(w, "invalid email or password")
		return
	}

	token, err := h.Tokens.Issue(admin.ID.Hex(), admin.FullName, admin.Role)
	if err != nil {
		h.Log.Error("issue token failed", zap.Error(err))
		httpjson.ServerError(w)
		return
	}

	if err := h.Admins.TouchLogin(ctx, admin.ID); err != nil {
		h.Log.Warn("record login time failed", zap.Error(err))
	}

	httpjson.OK(w, "Signed in.", map[string]any{
		"token":     token,
		"full_name": admin.FullName,
		"role":      admin.Role,
	})
}
