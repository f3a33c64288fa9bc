package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Student is a learner account. Email is unique across the collection.
// PasswordHash is a bcrypt hash and is never serialized to JSON.
type Student struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName   string             `bson:"full_name" json:"full_name"`
	FullNameCI string             `bson:"full_name_ci" json:"full_name_ci"` // lowercase, diacritics-stripped
	Email      string             `bson:"email" json:"email"`
	EmailCI    string             `bson:"email_ci" json:"email_ci"`
	Phone      string             `bson:"phone,omitempty" json:"phone,omitempty"`

	PasswordHash string `bson:"password_hash" json:"-"`

	Status string `bson:"status" json:"status"` // active | disabled

	Enrollments []Enrollment `bson:"enrollments,omitempty" json:"enrollments,omitempty"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// Enrollment links a student to a course.
type Enrollment struct {
	CourseID    primitive.ObjectID `bson:"course_id" json:"course_id"`
	CourseType  string             `bson:"course_type" json:"course_type"`
	EnrolledAt  time.Time          `bson:"enrolled_at" json:"enrolled_at"`
	ExpiresAt   *time.Time         `bson:"expires_at,omitempty" json:"expires_at,omitempty"` // time-limited free access
	CompletedAt *time.Time         `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}
