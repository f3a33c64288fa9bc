// Package certstore persists generated completion certificates.
package certstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medhedtech/medh-backend/internal/domain/models"
)

var (
	ErrNotFound        = errors.New("certificate not found")
	ErrDuplicateNumber = errors.New("a certificate with this number already exists")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("certificates")}
}

// Create inserts a certificate record.
func (s *Store) Create(ctx context.Context, cert models.Certificate) (models.Certificate, error) {
	cert.ID = primitive.NewObjectID()
	cert.IssuedAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, cert); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Certificate{}, ErrDuplicateNumber
		}
		return models.Certificate{}, err
	}
	return cert, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Certificate, error) {
	var cert models.Certificate
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&cert)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Certificate{}, ErrNotFound
	}
	if err != nil {
		return models.Certificate{}, err
	}
	return cert, nil
}

// GetByNumber looks a certificate up by its public verification number.
func (s *Store) GetByNumber(ctx context.Context, number string) (models.Certificate, error) {
	var cert models.Certificate
	err := s.c.FindOne(ctx, bson.M{"number": number}).Decode(&cert)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Certificate{}, ErrNotFound
	}
	if err != nil {
		return models.Certificate{}, err
	}
	return cert, nil
}

// ListDegraded returns certificates persisted with a placeholder URL,
// oldest first, for the repair worker.
func (s *Store) ListDegraded(ctx context.Context, limit int64) ([]models.Certificate, error) {
	cur, err := s.c.Find(ctx,
		bson.M{"storage_degraded": true},
		options.Find().SetSort(bson.D{{Key: "issued_at", Value: 1}}).SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Certificate
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkRepaired replaces the placeholder URL once the upload succeeded.
func (s *Store) MarkRepaired(ctx context.Context, id primitive.ObjectID, url string) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$set":   bson.M{"generated_file_url": url},
			"$unset": bson.M{"storage_degraded": ""},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of certificates.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
