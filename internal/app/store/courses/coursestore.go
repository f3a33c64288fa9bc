// Package coursestore persists the polymorphic course hierarchy.
//
// All three course types live in the single "courses" collection keyed
// by the course_type discriminator. The store owns the pre-save
// invariants: slug/unique_key generation, IsFree derivation, curriculum
// ID assignment, and shape/pricing validation.
package coursestore

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
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medhedtech/medh-backend/internal/app/system/slug"
	"github.com/medhedtech/medh-backend/internal/domain/models"
)

var (
	ErrNotFound  = errors.New("course not found")
	ErrDuplicate = errors.New("a course with this slug or unique key already exists")
	// ErrInvalid wraps all validation failures so handlers can map them
	// to 400 responses.
	ErrInvalid = errors.New("invalid course")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("courses")}
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Create inserts a new course, applying the pre-save invariants.
//
// When the caller did not supply a slug, a collision with an existing
// generated slug is resolved once by appending a random suffix; a
// caller-supplied duplicate surfaces as ErrDuplicate.
func (s *Store) Create(ctx context.Context, c models.Course) (models.Course, error) {
	c.Title = strings.TrimSpace(c.Title)
	if c.Title == "" {
		return models.Course{}, invalidf("title is required")
	}
	if c.Status == "" {
		c.Status = models.CourseStatusDraft
	}
	if !models.IsValidCourseStatus(c.Status) {
		return models.Course{}, invalidf("status must be one of %v", models.CourseStatuses)
	}
	if c.Level == "" {
		c.Level = models.LevelAll
	}
	if !models.IsValidCourseLevel(c.Level) {
		return models.Course{}, invalidf("level must be one of %v", models.CourseLevels)
	}
	if c.MinHoursPerWeek < 0 || c.MaxHoursPerWeek < 0 {
		return models.Course{}, invalidf("hours per week must be non-negative")
	}
	if c.MinHoursPerWeek > 0 && c.MaxHoursPerWeek > 0 && c.MinHoursPerWeek > c.MaxHoursPerWeek {
		return models.Course{}, invalidf("min_hours_per_week exceeds max_hours_per_week")
	}
	if err := c.ValidateShape(); err != nil {
		return models.Course{}, fmt.Errorf("%w: %s", ErrInvalid, err.Error())
	}
	models.NormalizePrices(c.Prices)
	if err := models.ValidatePrices(c.Prices); err != nil {
		return models.Course{}, fmt.Errorf("%w: %s", ErrInvalid, err.Error())
	}

	models.AssignCurriculumIDs(c.Curriculum)
	if err := models.ValidateCurriculum(c.Curriculum); err != nil {
		return models.Course{}, fmt.Errorf("%w: %s", ErrInvalid, err.Error())
	}
	switch c.CourseType {
	case models.CourseTypeBlended:
		c.Blended.AssignModuleIDs()
	case models.CourseTypeFree:
		c.Free.AssignLessonIDs()
	}

	generatedSlug := false
	if c.Slug == "" {
		c.Slug = slug.Make(c.Title)
		generatedSlug = true
	}
	if c.UniqueKey == "" {
		c.UniqueKey = slug.NewUniqueKey()
	}
	c.DeriveIsFree()

	c.ID = primitive.NewObjectID()
	c.TitleCI = text.Fold(c.Title)
	c.CategoryCI = text.Fold(c.Category)
	if c.Source == "" {
		c.Source = "api"
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = &now

	_, err := s.c.InsertOne(ctx, c)
	if wafflemongo.IsDup(err) && generatedSlug {
		// Another course already owns the generated slug; retry once
		// with a suffixed slug before giving up.
		c.Slug = slug.WithSuffix(c.Slug)
		_, err = s.c.InsertOne(ctx, c)
	}
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Course{}, ErrDuplicate
		}
		return models.Course{}, err
	}
	return c, nil
}

// GetByID fetches a course by ObjectID. Soft-deleted courses are
// returned too; callers decide whether to expose them.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Course, error) {
	var c models.Course
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Course{}, ErrNotFound
	}
	if err != nil {
		return models.Course{}, err
	}
	return c, nil
}

// GetBySlug fetches a course by its slug.
func (s *Store) GetBySlug(ctx context.Context, slugVal string) (models.Course, error) {
	var c models.Course
	err := s.c.FindOne(ctx, bson.M{"slug": slugVal}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Course{}, ErrNotFound
	}
	if err != nil {
		return models.Course{}, err
	}
	return c, nil
}

// Update applies mutable fields from mut onto the stored course.
//
// The discriminator is immutable: attempts to change course_type are
// rejected. Curriculum items keep their existing IDs; only new items
// receive generated ones.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, mut models.Course) (models.Course, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return models.Course{}, err
	}
	if mut.CourseType != "" && mut.CourseType != current.CourseType {
		return models.Course{}, invalidf("course_type is immutable (stored %q)", current.CourseType)
	}

	set := bson.M{}
	if t := strings.TrimSpace(mut.Title); t != "" {
		set["title"] = t
		set["title_ci"] = text.Fold(t)
		current.Title = t
	}
	if mut.Category != "" {
		set["category"] = mut.Category
		set["category_ci"] = text.Fold(mut.Category)
		current.Category = mut.Category
	}
	if mut.Level != "" {
		if !models.IsValidCourseLevel(mut.Level) {
			return models.Course{}, invalidf("level must be one of %v", models.CourseLevels)
		}
		set["level"] = mut.Level
	}
	if mut.Status != "" {
		if !models.IsValidCourseStatus(mut.Status) {
			return models.Course{}, invalidf("status must be one of %v", models.CourseStatuses)
		}
		set["status"] = mut.Status
	}
	if mut.Image != "" {
		set["image"] = mut.Image
	}
	if mut.Description != "" {
		set["description"] = mut.Description
	}
	if mut.Specifications != "" {
		set["specifications"] = mut.Specifications
	}
	if mut.Tags != nil {
		set["tags"] = mut.Tags
	}
	if mut.MinHoursPerWeek != 0 || mut.MaxHoursPerWeek != 0 {
		minH, maxH := mut.MinHoursPerWeek, mut.MaxHoursPerWeek
		if minH < 0 || maxH < 0 || (minH > 0 && maxH > 0 && minH > maxH) {
			return models.Course{}, invalidf("invalid hours per week range")
		}
		if minH != 0 {
			set["min_hours_per_week"] = minH
		}
		if maxH != 0 {
			set["max_hours_per_week"] = maxH
		}
	}

	if mut.Prices != nil {
		models.NormalizePrices(mut.Prices)
		if err := models.ValidatePrices(mut.Prices); err != nil {
			return models.Course{}, fmt.Errorf("%w: %s", ErrInvalid, err.Error())
		}
		set["prices"] = mut.Prices
	}

	if mut.Curriculum != nil {
		models.AssignCurriculumIDs(mut.Curriculum)
		if err := models.ValidateCurriculum(mut.Curriculum); err != nil {
			return models.Course{}, fmt.Errorf("%w: %s", ErrInvalid, err.Error())
		}
		set["curriculum"] = mut.Curriculum
	}

	// Detail sub-documents may be replaced wholesale, but only the one
	// matching the stored discriminator.
	switch {
	case mut.Blended != nil:
		if current.CourseType != models.CourseTypeBlended {
			return models.Course{}, invalidf("%s course cannot carry a blended section", current.CourseType)
		}
		mut.Blended.AssignModuleIDs()
		if err := mut.Blended.Validate(); err != nil {
			return models.Course{}, fmt.Errorf("%w: %s", ErrInvalid, err.Error())
		}
		set["blended"] = mut.Blended
	case mut.Live != nil:
		if current.CourseType != models.CourseTypeLive {
			return models.Course{}, invalidf("%s course cannot carry a live section", current.CourseType)
		}
		if err := mut.Live.Validate(); err != nil {
			return models.Course{}, fmt.Errorf("%w: %s", ErrInvalid, err.Error())
		}
		set["live"] = mut.Live
	case mut.Free != nil:
		if current.CourseType != models.CourseTypeFree {
			return models.Course{}, invalidf("%s course cannot carry a free section", current.CourseType)
		}
		mut.Free.AssignLessonIDs()
		if err := mut.Free.Validate(); err != nil {
			return models.Course{}, fmt.Errorf("%w: %s", ErrInvalid, err.Error())
		}
		set["free"] = mut.Free
	}

	// Recompute the derived flag from the post-update state.
	current.DeriveIsFree()
	set["is_free"] = current.IsFree

	now := time.Now().UTC()
	set["updated_at"] = now

	res := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.Course
	if err := res.Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Course{}, ErrNotFound
		}
		if wafflemongo.IsDup(err) {
			return models.Course{}, ErrDuplicate
		}
		return models.Course{}, err
	}
	return updated, nil
}

// SoftDelete moves a course to the deleted status. Courses are never
// hard-deleted.
func (s *Store) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	now := time.Now().UTC()
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": models.CourseStatusDeleted, "updated_at": now}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// TypeStatusCount is one cell of the dashboard course matrix.
type TypeStatusCount struct {
	CourseType string `bson:"course_type" json:"course_type"`
	Status     string `bson:"status" json:"status"`
	Count      int64  `bson:"count" json:"count"`
}

// CountByTypeStatus aggregates course counts grouped by discriminator
// and status.
func (s *Store) CountByTypeStatus(ctx context.Context) ([]TypeStatusCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"course_type": "$course_type", "status": "$status"},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":         0,
			"course_type": "$_id.course_type",
			"status":      "$_id.status",
			"count":       1,
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "course_type", Value: 1}, {Key: "status", Value: 1}}}},
	}
	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []TypeStatusCount
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
