package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Form statuses follow a simple triage workflow.
const (
	FormStatusNew        = "new"
	FormStatusInProgress = "in_progress"
	FormStatusClosed     = "closed"
)

var FormStatuses = []string{FormStatusNew, FormStatusInProgress, FormStatusClosed}

func IsValidFormStatus(s string) bool {
	for _, fs := range FormStatuses {
		if fs == s {
			return true
		}
	}
	return false
}

// Known form types. Free-form types are rejected so the admin list
// filters stay meaningful.
const (
	FormTypeContact    = "contact"
	FormTypeEnrollment = "enrollment"
	FormTypeCorporate  = "corporate"
	FormTypeFeedback   = "feedback"
)

var FormTypes = []string{FormTypeContact, FormTypeEnrollment, FormTypeCorporate, FormTypeFeedback}

func IsValidFormType(t string) bool {
	for _, ft := range FormTypes {
		if ft == t {
			return true
		}
	}
	return false
}

// Form is a submitted public form (contact, enrollment inquiry, ...).
type Form struct {
	ID       primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Type     string              `bson:"type" json:"type"`
	FullName string              `bson:"full_name" json:"full_name"`
	Email    string              `bson:"email" json:"email"`
	Phone    string              `bson:"phone,omitempty" json:"phone,omitempty"`
	Message  string              `bson:"message,omitempty" json:"message,omitempty"`
	CourseID *primitive.ObjectID `bson:"course_id,omitempty" json:"course_id,omitempty"` // enrollment inquiries

	Status string `bson:"status" json:"status"`
	Notes  string `bson:"notes,omitempty" json:"notes,omitempty"` // admin triage notes

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
