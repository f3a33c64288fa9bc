package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medhedtech/medh-backend/internal/app/system/slug"
	"github.com/medhedtech/medh-backend/internal/domain/models"
)

// Fixtures provides helper methods for seeding test data directly into
// the collections, bypassing the stores.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateCourse inserts a published course of the given type with a
// minimal valid detail section.
func (f *Fixtures) CreateCourse(ctx context.Context, title, courseType string) models.Course {
	f.t.Helper()

	now := time.Now().UTC()
	c := models.Course{
		ID:         primitive.NewObjectID(),
		CourseType: courseType,
		Title:      title,
		TitleCI:    text.Fold(title),
		Category:   "Technology",
		CategoryCI: text.Fold("Technology"),
		Level:      models.LevelAll,
		Status:     models.CourseStatusPublished,
		Slug:       slug.Make(title),
		UniqueKey:  uuid.NewString(),
		CreatedAt:  now,
	}
	switch courseType {
	case models.CourseTypeBlended:
		c.Blended = &models.BlendedDetails{}
	case models.CourseTypeLive:
		c.Live = &models.LiveDetails{TotalSessions: 12, SessionDurationMin: 60}
	case models.CourseTypeFree:
		c.Free = &models.FreeDetails{AccessType: models.AccessUnrestricted}
	}
	c.DeriveIsFree()

	if _, err := f.db.Collection("courses").InsertOne(ctx, c); err != nil {
		f.t.Fatalf("failed to create test course: %v", err)
	}
	return c
}

// CreateFreeTimeLimitedCourse inserts a free course whose enrollments
// expire after the given number of days.
func (f *Fixtures) CreateFreeTimeLimitedCourse(ctx context.Context, title string, accessDays int) models.Course {
	f.t.Helper()

	now := time.Now().UTC()
	c := models.Course{
		ID:         primitive.NewObjectID(),
		CourseType: models.CourseTypeFree,
		Title:      title,
		TitleCI:    text.Fold(title),
		Category:   models.CategoryFree,
		CategoryCI: text.Fold(models.CategoryFree),
		Level:      models.LevelAll,
		Status:     models.CourseStatusPublished,
		Slug:       slug.Make(title),
		UniqueKey:  uuid.NewString(),
		Free: &models.FreeDetails{
			AccessType:     models.AccessTimeLimited,
			AccessDaysOnce: accessDays,
		},
		CreatedAt: now,
	}
	c.DeriveIsFree()

	if _, err := f.db.Collection("courses").InsertOne(ctx, c); err != nil {
		f.t.Fatalf("failed to create test course: %v", err)
	}
	return c
}

// CreateStudent inserts an active student.
func (f *Fixtures) CreateStudent(ctx context.Context, fullName, email string) models.Student {
	f.t.Helper()

	now := time.Now().UTC()
	s := models.Student{
		ID:         primitive.NewObjectID(),
		FullName:   fullName,
		FullNameCI: text.Fold(fullName),
		Email:      email,
		EmailCI:    text.Fold(email),
		Status:     "active",
		CreatedAt:  now,
	}
	if _, err := f.db.Collection("students").InsertOne(ctx, s); err != nil {
		f.t.Fatalf("failed to create test student: %v", err)
	}
	return s
}

// CreateEnrolledStudent inserts a student already enrolled in the given course.
func (f *Fixtures) CreateEnrolledStudent(ctx context.Context, fullName, email string, course models.Course) models.Student {
	f.t.Helper()

	now := time.Now().UTC()
	s := models.Student{
		ID:         primitive.NewObjectID(),
		FullName:   fullName,
		FullNameCI: text.Fold(fullName),
		Email:      email,
		EmailCI:    text.Fold(email),
		Status:     "active",
		Enrollments: []models.Enrollment{{
			CourseID:   course.ID,
			CourseType: course.CourseType,
			EnrolledAt: now,
		}},
		CreatedAt: now,
	}
	if _, err := f.db.Collection("students").InsertOne(ctx, s); err != nil {
		f.t.Fatalf("failed to create test student: %v", err)
	}
	return s
}

// CreateForm inserts a form submission of the given type and status.
func (f *Fixtures) CreateForm(ctx context.Context, formType, status string) models.Form {
	f.t.Helper()

	form := models.Form{
		ID:        primitive.NewObjectID(),
		Type:      formType,
		FullName:  "Form Tester",
		Email:     fmt.Sprintf("form-%s@test.com", primitive.NewObjectID().Hex()[:8]),
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("forms").InsertOne(ctx, form); err != nil {
		f.t.Fatalf("failed to create test form: %v", err)
	}
	return form
}

// CreateJob inserts a job posting with the given status.
func (f *Fixtures) CreateJob(ctx context.Context, title, status string) models.Job {
	f.t.Helper()

	j := models.Job{
		ID:          primitive.NewObjectID(),
		Title:       title,
		TitleCI:     text.Fold(title),
		Description: "Test job description.",
		WorkMode:    "remote",
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := f.db.Collection("jobs").InsertOne(ctx, j); err != nil {
		f.t.Fatalf("failed to create test job: %v", err)
	}
	return j
}

// CreateCertificate inserts a certificate for the given student and course.
func (f *Fixtures) CreateCertificate(ctx context.Context, student models.Student, course models.Course) models.Certificate {
	f.t.Helper()

	now := time.Now().UTC()
	c := models.Certificate{
		ID:               primitive.NewObjectID(),
		Number:           fmt.Sprintf("MEDH-%s", primitive.NewObjectID().Hex()[:8]),
		StudentID:        student.ID,
		CourseID:         course.ID,
		StudentName:      student.FullName,
		CourseTitle:      course.Title,
		CourseType:       course.CourseType,
		GeneratedFileURL: "/files/certificates/test.pdf",
		CompletionDate:   now,
		IssuedAt:         now,
	}
	if _, err := f.db.Collection("certificates").InsertOne(ctx, c); err != nil {
		f.t.Fatalf("failed to create test certificate: %v", err)
	}
	return c
}
