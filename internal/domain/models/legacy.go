package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LegacyCourse is a typed view over the pre-restructuring course
// documents. These predate the discriminator: class_type is free text,
// category_type is a loose enum, and there is no slug/unique_key.
//
// LegacyCourse is read-only — the migration tooling never mutates legacy
// documents, it only reads them and posts new discriminated documents.
type LegacyCourse struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	CourseTitle  string             `bson:"course_title" json:"course_title"`
	ClassType    string             `bson:"class_type,omitempty" json:"class_type,omitempty"`       // free text, e.g. "Live Courses", "Blended Courses"
	CategoryType string             `bson:"category_type,omitempty" json:"category_type,omitempty"` // "Paid" | "Live" | "Free"
	Category     string             `bson:"category,omitempty" json:"category,omitempty"`
	CourseImage  string             `bson:"course_image,omitempty" json:"course_image,omitempty"`
	CourseFee    float64            `bson:"course_fee,omitempty" json:"course_fee,omitempty"`
	Status       string             `bson:"status,omitempty" json:"status,omitempty"`

	// Raw preserves the complete document, including fields the typed
	// view does not know about. Field-set diffing works off Raw so the
	// analysis sees historical fields exactly as stored.
	Raw map[string]any `bson:"-" json:"-"`
}

// IsFree reports whether the legacy category marks the course as free
// (the legacy derivation: category_type == "Free").
func (lc *LegacyCourse) IsFree() bool {
	return lc.CategoryType == CategoryFree
}
