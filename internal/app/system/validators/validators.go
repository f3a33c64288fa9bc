// Package validators attaches JSON-Schema validators to the core
// collections so malformed writes are rejected by the server itself,
// not just by application code.
package validators

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/medhedtech/medh-backend/internal/domain/models"
)

// EnsureAll creates collections (if missing) and tries to attach
// JSON-Schema validators. On servers that don't support collMod
// validators (e.g. some DocumentDB versions), we log and skip
// gracefully.
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	ensure := func(coll string, schema bson.M) {
		if err := ensureCollection(ctx, db, coll); err != nil {
			problems = append(problems, coll+": "+err.Error())
			return
		}
		if schema == nil {
			return
		}
		if err := setValidator(ctx, db, coll, schema); err != nil {
			if isUnsupported(err) {
				zap.L().Info("validator skipped (unsupported)", zap.String("collection", coll))
				return
			}
			problems = append(problems, coll+": "+err.Error())
		}
	}

	ensure("courses", coursesSchema())
	ensure("students", studentsSchema())
	ensure("certificates", certificatesSchema())
	ensure("forms", formsSchema())
	ensure("jobs", nil)
	ensure("admins", nil)

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func coursesSchema() bson.M {
	return bson.M{
		"bsonType": "object",
		"required": bson.A{"course_type", "title", "status", "slug", "unique_key"},
		"properties": bson.M{
			"course_type": bson.M{"enum": bson.A{
				models.CourseTypeBlended, models.CourseTypeLive, models.CourseTypeFree,
			}},
			"title":      bson.M{"bsonType": "string", "minLength": 1},
			"slug":       bson.M{"bsonType": "string", "minLength": 1},
			"unique_key": bson.M{"bsonType": "string", "minLength": 1},
			"status": bson.M{"enum": bson.A{
				models.CourseStatusDraft, models.CourseStatusPublished,
				models.CourseStatusUpcoming, models.CourseStatusArchived,
				models.CourseStatusDeleted,
			}},
			"is_free": bson.M{"bsonType": "bool"},
			"prices":  bson.M{"bsonType": "array"},
		},
	}
}

func studentsSchema() bson.M {
	return bson.M{
		"bsonType": "object",
		"required": bson.A{"full_name", "email", "status"},
		"properties": bson.M{
			"full_name": bson.M{"bsonType": "string", "minLength": 1},
			"email":     bson.M{"bsonType": "string", "minLength": 3},
			"status":    bson.M{"enum": bson.A{"active", "disabled"}},
		},
	}
}

func certificatesSchema() bson.M {
	return bson.M{
		"bsonType": "object",
		"required": bson.A{"number", "student_id", "course_id", "generated_file_url"},
		"properties": bson.M{
			"number":             bson.M{"bsonType": "string", "minLength": 1},
			"generated_file_url": bson.M{"bsonType": "string", "minLength": 1},
		},
	}
}

func formsSchema() bson.M {
	return bson.M{
		"bsonType": "object",
		"required": bson.A{"type", "full_name", "email", "status"},
		"properties": bson.M{
			"type":   bson.M{"enum": bson.A{models.FormTypeContact, models.FormTypeEnrollment, models.FormTypeCorporate, models.FormTypeFeedback}},
			"status": bson.M{"enum": bson.A{models.FormStatusNew, models.FormStatusInProgress, models.FormStatusClosed}},
		},
	}
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string) error {
	err := db.CreateCollection(ctx, name)
	if err == nil {
		return nil
	}
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == 48 { // NamespaceExists
		return nil
	}
	if strings.Contains(err.Error(), "already exists") {
		return nil
	}
	return err
}

func setValidator(ctx context.Context, db *mongo.Database, coll string, schema bson.M) error {
	cmd := bson.D{
		{Key: "collMod", Value: coll},
		{Key: "validator", Value: bson.M{"$jsonSchema": schema}},
		{Key: "validationLevel", Value: "moderate"},
	}
	return db.RunCommand(ctx, cmd).Err()
}

// isUnsupported detects servers that reject collMod validators outright.
func isUnsupported(err error) bool {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		// 59 CommandNotFound, 115 CommandNotSupported
		if cmdErr.Code == 59 || cmdErr.Code == 115 {
			return true
		}
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "no such command") || strings.Contains(msg, "not implemented")
}
