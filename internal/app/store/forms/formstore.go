// Package formstore persists public form submissions.
package formstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medhedtech/medh-backend/internal/domain/models"
)

var (
	ErrNotFound = errors.New("form not found")
	ErrInvalid  = errors.New("invalid form")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("forms")}
}

// Create inserts a submission with status "new".
func (s *Store) Create(ctx context.Context, f models.Form) (models.Form, error) {
	f.FullName = strings.TrimSpace(f.FullName)
	f.Email = strings.TrimSpace(f.Email)
	if !models.IsValidFormType(f.Type) {
		return models.Form{}, fmt.Errorf("%w: type must be one of %v", ErrInvalid, models.FormTypes)
	}
	if f.FullName == "" || f.Email == "" {
		return models.Form{}, fmt.Errorf("%w: full_name and email are required", ErrInvalid)
	}
	if f.Type == models.FormTypeEnrollment && f.CourseID == nil {
		return models.Form{}, fmt.Errorf("%w: enrollment forms require a course_id", ErrInvalid)
	}

	f.ID = primitive.NewObjectID()
	f.Status = models.FormStatusNew
	now := time.Now().UTC()
	f.CreatedAt = now
	f.UpdatedAt = &now

	if _, err := s.c.InsertOne(ctx, f); err != nil {
		return models.Form{}, err
	}
	return f, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Form, error) {
	var f models.Form
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&f)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Form{}, ErrNotFound
	}
	if err != nil {
		return models.Form{}, err
	}
	return f, nil
}

// UpdateStatus advances a form through the triage workflow and records
// optional admin notes.
func (s *Store) UpdateStatus(ctx context.Context, id primitive.ObjectID, status, notes string) error {
	if !models.IsValidFormStatus(status) {
		return fmt.Errorf("%w: status must be one of %v", ErrInvalid, models.FormStatuses)
	}
	set := bson.M{"status": status, "updated_at": time.Now().UTC()}
	if notes != "" {
		set["notes"] = notes
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns submissions newest first, optionally filtered by status
// and type.
func (s *Store) List(ctx context.Context, status, formType string, limit int64) ([]models.Form, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	if formType != "" {
		filter["type"] = formType
	}
	cur, err := s.c.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Form
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CountByStatus aggregates submissions per workflow status.
func (s *Store) CountByStatus(ctx context.Context) (map[string]int64, error) {
	cur, err := s.c.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var rows []struct {
		ID    string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.ID] = r.Count
	}
	return out, nil
}
