// Package studentstore persists learner accounts and their enrollments.
package studentstore

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
	"golang.org/x/crypto/bcrypt"

	"github.com/medhedtech/medh-backend/internal/domain/models"
)

var (
	ErrNotFound       = errors.New("student not found")
	ErrDuplicateEmail = errors.New("a student with this email already exists")
	ErrInvalid        = errors.New("invalid student")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("students")}
}

// Create inserts a new student, hashing the plaintext password.
func (s *Store) Create(ctx context.Context, st models.Student, password string) (models.Student, error) {
	st.FullName = strings.TrimSpace(st.FullName)
	st.Email = strings.TrimSpace(st.Email)
	if st.FullName == "" {
		return models.Student{}, fmt.Errorf("%w: full_name is required", ErrInvalid)
	}
	if st.Email == "" {
		return models.Student{}, fmt.Errorf("%w: email is required", ErrInvalid)
	}
	if len(password) < 8 {
		return models.Student{}, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalid)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Student{}, err
	}
	st.PasswordHash = string(hash)

	st.ID = primitive.NewObjectID()
	st.FullNameCI = text.Fold(st.FullName)
	st.EmailCI = text.Fold(st.Email)
	if st.Status == "" {
		st.Status = "active"
	}
	now := time.Now().UTC()
	st.CreatedAt = now
	st.UpdatedAt = &now

	if _, err := s.c.InsertOne(ctx, st); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Student{}, ErrDuplicateEmail
		}
		return models.Student{}, err
	}
	return st, nil
}

// VerifyPassword checks a plaintext password against the stored hash.
func VerifyPassword(st models.Student, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(st.PasswordHash), []byte(password)) == nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Student, error) {
	var st models.Student
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&st)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Student{}, ErrNotFound
	}
	if err != nil {
		return models.Student{}, err
	}
	return st, nil
}

func (s *Store) GetByEmail(ctx context.Context, email string) (models.Student, error) {
	var st models.Student
	err := s.c.FindOne(ctx, bson.M{"email_ci": text.Fold(email)}).Decode(&st)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Student{}, ErrNotFound
	}
	if err != nil {
		return models.Student{}, err
	}
	return st, nil
}

// Update applies mutable profile fields. Email changes re-fold the CI
// column and can surface ErrDuplicateEmail.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, mut models.Student) error {
	set := bson.M{}
	if name := strings.TrimSpace(mut.FullName); name != "" {
		set["full_name"] = name
		set["full_name_ci"] = text.Fold(name)
	}
	if email := strings.TrimSpace(mut.Email); email != "" {
		set["email"] = email
		set["email_ci"] = text.Fold(email)
	}
	if mut.Phone != "" {
		set["phone"] = mut.Phone
	}
	if mut.Status != "" {
		if mut.Status != "active" && mut.Status != "disabled" {
			return fmt.Errorf("%w: status must be 'active' or 'disabled'", ErrInvalid)
		}
		set["status"] = mut.Status
	}
	if len(set) == 0 {
		return nil
	}
	set["updated_at"] = time.Now().UTC()

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Enroll appends an enrollment unless the student already has one for
// the course.
func (s *Store) Enroll(ctx context.Context, id primitive.ObjectID, enr models.Enrollment) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "enrollments.course_id": bson.M{"$ne": enr.CourseID}},
		bson.M{
			"$push": bson.M{"enrollments": enr},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// Either the student is unknown or the enrollment already exists.
		n, err := s.c.CountDocuments(ctx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return fmt.Errorf("%w: student already enrolled in this course", ErrInvalid)
	}
	return nil
}

// Count returns the total number of students.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
