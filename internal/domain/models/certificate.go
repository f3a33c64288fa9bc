package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Certificate records a generated completion certificate.
//
// GeneratedFileURL is always non-empty: when the storage upload fails,
// the record persists with a placeholder URL rather than failing the
// request (best-effort policy for non-critical assets).
type Certificate struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Number    string             `bson:"number" json:"number"` // unique, verification handle
	StudentID primitive.ObjectID `bson:"student_id" json:"student_id"`
	CourseID  primitive.ObjectID `bson:"course_id" json:"course_id"`

	StudentName string `bson:"student_name" json:"student_name"`
	CourseTitle string `bson:"course_title" json:"course_title"`
	CourseType  string `bson:"course_type" json:"course_type"`

	GeneratedFileURL string `bson:"generated_file_url" json:"generatedFileUrl"`
	// StorageDegraded marks certificates persisted with a placeholder URL
	// so they can be found and re-rendered later.
	StorageDegraded bool `bson:"storage_degraded,omitempty" json:"storage_degraded,omitempty"`

	CompletionDate time.Time `bson:"completion_date" json:"completion_date"`
	IssuedAt       time.Time `bson:"issued_at" json:"issued_at"`
}

// PlaceholderCertificateURL is persisted when storage is unreachable.
const PlaceholderCertificateURL = "/assets/certificates/pending.pdf"
