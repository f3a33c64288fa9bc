// Package jobstore persists careers-page job postings.
package jobstore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medhedtech/medh-backend/internal/domain/models"
)

var (
	ErrNotFound = errors.New("job not found")
	ErrInvalid  = errors.New("invalid job")
)

var workModes = map[string]bool{"remote": true, "hybrid": true, "office": true}

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("jobs")}
}

func (s *Store) Create(ctx context.Context, j models.Job) (models.Job, error) {
	j.Title = strings.TrimSpace(j.Title)
	if j.Title == "" {
		return models.Job{}, fmt.Errorf("%w: title is required", ErrInvalid)
	}
	if j.WorkMode != "" && !workModes[j.WorkMode] {
		return models.Job{}, fmt.Errorf("%w: work_mode must be remote, hybrid or office", ErrInvalid)
	}

	j.ID = primitive.NewObjectID()
	j.TitleCI = text.Fold(j.Title)
	if j.Status == "" {
		j.Status = models.JobStatusActive
	}
	now := time.Now().UTC()
	j.CreatedAt = now
	j.UpdatedAt = &now

	if _, err := s.c.InsertOne(ctx, j); err != nil {
		return models.Job{}, err
	}
	return j, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Job, error) {
	var j models.Job
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&j)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Job{}, ErrNotFound
	}
	if err != nil {
		return models.Job{}, err
	}
	return j, nil
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, mut models.Job) error {
	set := bson.M{}
	if t := strings.TrimSpace(mut.Title); t != "" {
		set["title"] = t
		set["title_ci"] = text.Fold(t)
	}
	if mut.Department != "" {
		set["department"] = mut.Department
	}
	if mut.Location != "" {
		set["location"] = mut.Location
	}
	if mut.WorkMode != "" {
		if !workModes[mut.WorkMode] {
			return fmt.Errorf("%w: work_mode must be remote, hybrid or office", ErrInvalid)
		}
		set["work_mode"] = mut.WorkMode
	}
	if mut.Description != "" {
		set["description"] = mut.Description
	}
	if mut.Skills != nil {
		set["skills"] = mut.Skills
	}
	if len(set) == 0 {
		return nil
	}
	set["updated_at"] = time.Now().UTC()

	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Close marks a posting closed; it stays visible to admins only.
func (s *Store) Close(ctx context.Context, id primitive.ObjectID) error {
	now := time.Now().UTC()
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": models.JobStatusClosed, "closed_at": now, "updated_at": now}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns postings newest first. When activeOnly is set, closed
// postings are excluded (the public careers view).
func (s *Store) List(ctx context.Context, activeOnly bool, limit int64) ([]models.Job, error) {
	filter := bson.M{}
	if activeOnly {
		filter["status"] = models.JobStatusActive
	}
	cur, err := s.c.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Job
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
