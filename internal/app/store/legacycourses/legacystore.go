// Package legacystore reads the pre-migration course collection. The
// collection is never written by this application; the migration tool
// reads from it and writes into the new courses collection.
package legacystore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medhedtech/medh-backend/internal/domain/models"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("legacy_courses")}
}

// List returns legacy courses oldest first, each carrying both the
// typed view and the raw document so callers can diff fields the typed
// view does not cover. A non-zero after fetches only documents past
// that _id, so callers can walk the whole collection page by page.
func (s *Store) List(ctx context.Context, after primitive.ObjectID, limit int64) ([]models.LegacyCourse, error) {
	filter := bson.M{}
	if !after.IsZero() {
		filter["_id"] = bson.M{"$gt": after}
	}
	cur, err := s.c.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}).SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.LegacyCourse
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, err
		}
		var lc models.LegacyCourse
		b, err := bson.Marshal(raw)
		if err != nil {
			return nil, err
		}
		if err := bson.Unmarshal(b, &lc); err != nil {
			return nil, err
		}
		lc.Raw = raw
		out = append(out, lc)
	}
	return out, cur.Err()
}

func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
