package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course is the single persisted shape for all course products.
//
// All three course types share the physical collection "courses"; the
// course_type discriminator selects which detail sub-document must be
// present. Exactly one of Blended/Live/Free is non-nil and it must match
// CourseType (enforced by ValidateShape).
type Course struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CourseType string             `bson:"course_type" json:"course_type"`

	Title   string `bson:"title" json:"title"`
	TitleCI string `bson:"title_ci" json:"title_ci"` // lowercase, diacritics-stripped

	Category   string `bson:"category" json:"category"`
	CategoryCI string `bson:"category_ci" json:"category_ci"`

	Level  string `bson:"level" json:"level"`
	Image  string `bson:"image,omitempty" json:"image,omitempty"`
	Status string `bson:"status" json:"status"`

	// Slug and UniqueKey are generated on create when absent and carry
	// unique indexes. Duplicate submissions surface as conflict errors.
	Slug      string `bson:"slug" json:"slug"`
	UniqueKey string `bson:"unique_key" json:"unique_key"`

	// Description holds sanitized HTML.
	Description    string   `bson:"description,omitempty" json:"description,omitempty"`
	Specifications string   `bson:"specifications,omitempty" json:"specifications,omitempty"`
	Tags           []string `bson:"tags,omitempty" json:"tags,omitempty"`

	MinHoursPerWeek int `bson:"min_hours_per_week,omitempty" json:"min_hours_per_week,omitempty"`
	MaxHoursPerWeek int `bson:"max_hours_per_week,omitempty" json:"max_hours_per_week,omitempty"`

	// IsFree is derived, never taken from client input: true when the
	// discriminator is free or the category is "Free".
	IsFree bool `bson:"is_free" json:"is_free"`

	Prices     []Price `bson:"prices,omitempty" json:"prices,omitempty"`
	Curriculum []Week  `bson:"curriculum,omitempty" json:"curriculum,omitempty"`

	Blended *BlendedDetails `bson:"blended,omitempty" json:"blended,omitempty"`
	Live    *LiveDetails    `bson:"live,omitempty" json:"live,omitempty"`
	Free    *FreeDetails    `bson:"free,omitempty" json:"free,omitempty"`

	// Source distinguishes documents created through the API ("api")
	// from those posted by the legacy migration ("legacy_migration").
	Source string `bson:"_source,omitempty" json:"_source,omitempty"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// DeriveIsFree recomputes the IsFree flag from the discriminator and category.
func (c *Course) DeriveIsFree() {
	c.IsFree = c.CourseType == CourseTypeFree || c.Category == CategoryFree
}

// ValidateShape enforces the discriminator contract: a known
// course_type, and exactly the matching detail sub-document present.
func (c *Course) ValidateShape() error {
	if !IsValidCourseType(c.CourseType) {
		return fmt.Errorf("course_type must be one of %v, got %q", CourseTypes, c.CourseType)
	}
	details := map[string]bool{
		CourseTypeBlended: c.Blended != nil,
		CourseTypeLive:    c.Live != nil,
		CourseTypeFree:    c.Free != nil,
	}
	for ct, present := range details {
		if ct == c.CourseType && !present {
			return fmt.Errorf("%s course requires the %s detail section", ct, ct)
		}
		if ct != c.CourseType && present {
			return fmt.Errorf("%s course must not carry a %s detail section", c.CourseType, ct)
		}
	}
	switch c.CourseType {
	case CourseTypeBlended:
		return c.Blended.Validate()
	case CourseTypeLive:
		return c.Live.Validate()
	case CourseTypeFree:
		return c.Free.Validate()
	}
	return nil
}
