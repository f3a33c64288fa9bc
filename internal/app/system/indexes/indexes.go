// Package indexes reconciles the MongoDB indexes the API depends on.
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureAll is called at startup. Index creation is idempotent; errors
// are aggregated so every problem is visible and startup can fail fast.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureCourses(ctx, db); err != nil {
		problems = append(problems, "courses: "+err.Error())
	}
	if err := ensureStudents(ctx, db); err != nil {
		problems = append(problems, "students: "+err.Error())
	}
	if err := ensureCertificates(ctx, db); err != nil {
		problems = append(problems, "certificates: "+err.Error())
	}
	if err := ensureForms(ctx, db); err != nil {
		problems = append(problems, "forms: "+err.Error())
	}
	if err := ensureJobs(ctx, db); err != nil {
		problems = append(problems, "jobs: "+err.Error())
	}
	if err := ensureAdmins(ctx, db); err != nil {
		problems = append(problems, "admins: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureCourses(ctx context.Context, db *mongo.Database) error {
	return createMany(ctx, db, "courses", []mongo.IndexModel{
		// slug and unique_key back the duplicate-detection contract:
		// inserts racing on the same value get E11000, surfaced as 409.
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_slug")},
		{Keys: bson.D{{Key: "unique_key", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_unique_key")},
		{Keys: bson.D{{Key: "course_type", Value: 1}, {Key: "status", Value: 1}}, Options: options.Index().SetName("type_status")},
		{Keys: bson.D{{Key: "title_ci", Value: 1}, {Key: "_id", Value: 1}}, Options: options.Index().SetName("title_ci_id")},
		{Keys: bson.D{{Key: "category_ci", Value: 1}}, Options: options.Index().SetName("category_ci")},
	})
}

func ensureStudents(ctx context.Context, db *mongo.Database) error {
	return createMany(ctx, db, "students", []mongo.IndexModel{
		{Keys: bson.D{{Key: "email_ci", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email_ci")},
		{Keys: bson.D{{Key: "full_name_ci", Value: 1}, {Key: "_id", Value: 1}}, Options: options.Index().SetName("full_name_ci_id")},
		{Keys: bson.D{{Key: "enrollments.course_id", Value: 1}}, Options: options.Index().SetName("enrollment_course")},
	})
}

func ensureCertificates(ctx context.Context, db *mongo.Database) error {
	return createMany(ctx, db, "certificates", []mongo.IndexModel{
		{Keys: bson.D{{Key: "number", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_number")},
		{Keys: bson.D{{Key: "student_id", Value: 1}, {Key: "course_id", Value: 1}}, Options: options.Index().SetName("student_course")},
		{Keys: bson.D{{Key: "storage_degraded", Value: 1}}, Options: options.Index().SetName("storage_degraded").SetSparse(true)},
	})
}

func ensureForms(ctx context.Context, db *mongo.Database) error {
	return createMany(ctx, db, "forms", []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}, Options: options.Index().SetName("status_created")},
		{Keys: bson.D{{Key: "type", Value: 1}}, Options: options.Index().SetName("type")},
	})
}

func ensureJobs(ctx context.Context, db *mongo.Database) error {
	return createMany(ctx, db, "jobs", []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}}, Options: options.Index().SetName("status_created")},
		{Keys: bson.D{{Key: "title_ci", Value: 1}, {Key: "_id", Value: 1}}, Options: options.Index().SetName("title_ci_id")},
	})
}

func ensureAdmins(ctx context.Context, db *mongo.Database) error {
	return createMany(ctx, db, "admins", []mongo.IndexModel{
		{Keys: bson.D{{Key: "email_ci", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email_ci")},
	})
}

func createMany(ctx context.Context, db *mongo.Database, coll string, models []mongo.IndexModel) error {
	_, err := db.Collection(coll).Indexes().CreateMany(ctx, models)
	return err
}
