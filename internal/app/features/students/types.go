// internal/app/features/students/types.go
package students

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// createRequest is the POST body for a new student account.
type createRequest struct {
	FullName string `json:"full_name" label:"full name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// updateRequest carries the mutable profile fields. Empty fields are
// left unchanged.
type updateRequest struct {
	FullName string `json:"full_name" label:"full name" validate:"omitempty,max=200"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
	Status   string `json:"status" validate:"omitempty,oneof=active disabled"`
}

// enrollRequest enrolls the student in a course.
type enrollRequest struct {
	CourseID string `json:"course_id" label:"course id" validate:"required"`
}

// listItem is a single row in the students list.
type listItem struct {
	ID          primitive.ObjectID `json:"id"`
	FullName    string             `json:"full_name"`
	FullNameCI  string             `json:"-"`
	Email       string             `json:"email"`
	Phone       string             `json:"phone,omitempty"`
	Status      string             `json:"status"`
	Enrollments int                `json:"enrollments"`
}

// listData is the list response payload.
type listData struct {
	Items      []listItem `json:"items"`
	Total      int64      `json:"total"`
	Shown      int        `json:"shown"`
	HasPrev    bool       `json:"has_prev"`
	HasNext    bool       `json:"has_next"`
	PrevCursor string     `json:"prev_cursor,omitempty"`
	NextCursor string     `json:"next_cursor,omitempty"`
}
