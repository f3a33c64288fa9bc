// Package adminstore persists back-office admin accounts.
package adminstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/medhedtech/medh-backend/internal/domain/models"
)

var (
	ErrNotFound       = errors.New("admin not found")
	ErrDuplicateEmail = errors.New("an admin with that email already exists")
	ErrInvalid        = errors.New("invalid admin")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("admins")}
}

func (s *Store) Create(ctx context.Context, a models.Admin, password string) (models.Admin, error) {
	a.Email = strings.TrimSpace(strings.ToLower(a.Email))
	if a.Email == "" {
		return models.Admin{}, fmt.Errorf("%w: email is required", ErrInvalid)
	}
	if len(password) < 8 {
		return models.Admin{}, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalid)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Admin{}, err
	}

	a.ID = primitive.NewObjectID()
	a.EmailCI = text.Fold(a.Email)
	a.PasswordHash = string(hash)
	if a.Role == "" {
		a.Role = models.RoleAdmin
	}
	if a.Status == "" {
		a.Status = "active"
	}
	a.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, a); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Admin{}, ErrDuplicateEmail
		}
		return models.Admin{}, err
	}
	return a, nil
}

func (s *Store) GetByEmail(ctx context.Context, email string) (models.Admin, error) {
	var a models.Admin
	err := s.c.FindOne(ctx, bson.M{"email_ci": text.Fold(strings.TrimSpace(email))}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Admin{}, ErrNotFound
	}
	if err != nil {
		return models.Admin{}, err
	}
	return a, nil
}

// VerifyPassword reports whether the supplied password matches the
// stored hash.
func VerifyPassword(a models.Admin, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
}

// TouchLogin records a successful login.
func (s *Store) TouchLogin(ctx context.Context, id primitive.ObjectID) error {
	now := time.Now().UTC()
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"last_login_at": now}})
	return err
}

// EnsureSeedAdmin guarantees a superadmin account exists for the given
// email. An existing account is promoted to superadmin if needed; a
// missing one is created with the supplied initial password. It is a
// no-op when email is empty.
func (s *Store) EnsureSeedAdmin(ctx context.Context, email, password string, logger *zap.Logger) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil
	}

	existing, err := s.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Role == models.RoleSuperAdmin {
			return nil
		}
		now := time.Now().UTC()
		_, err := s.c.UpdateOne(ctx,
			bson.M{"_id": existing.ID},
			bson.M{"$set": bson.M{"role": models.RoleSuperAdmin, "updated_at": now}},
		)
		if err != nil {
			return fmt.Errorf("promote seed admin: %w", err)
		}
		logger.Info("promoted existing admin to superadmin", zap.String("email", email))
		return nil
	case errors.Is(err, ErrNotFound):
		if password == "" {
			return fmt.Errorf("seed admin %s does not exist and no initial password is configured", email)
		}
		_, err := s.Create(ctx, models.Admin{
			FullName: "Super Admin",
			Email:    email,
			Role:     models.RoleSuperAdmin,
			Status:   "active",
		}, password)
		if err != nil && !errors.Is(err, ErrDuplicateEmail) {
			return fmt.Errorf("create seed admin: %w", err)
		}
		logger.Info("created seed superadmin", zap.String("email", email))
		return nil
	default:
		return err
	}
}
