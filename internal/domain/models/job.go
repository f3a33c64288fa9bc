package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	JobStatusActive = "active"
	JobStatusClosed = "closed"
)

// Job is a posting on the careers page. Description holds sanitized HTML.
type Job struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title   string             `bson:"title" json:"title"`
	TitleCI string             `bson:"title_ci" json:"title_ci"`

	Department  string   `bson:"department,omitempty" json:"department,omitempty"`
	Location    string   `bson:"location,omitempty" json:"location,omitempty"`
	WorkMode    string   `bson:"work_mode,omitempty" json:"work_mode,omitempty"` // remote | hybrid | office
	Description string   `bson:"description" json:"description"`
	Skills      []string `bson:"skills,omitempty" json:"skills,omitempty"`

	Status string `bson:"status" json:"status"` // active | closed

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
	ClosedAt  *time.Time `bson:"closed_at,omitempty" json:"closed_at,omitempty"`
}
