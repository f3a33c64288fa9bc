// internal/app/features/courses/types.go
package courses

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medhedtech/medh-backend/internal/domain/models"
)

// createdData is the create response payload.
type createdData struct {
	ID        string `json:"_id"`
	Slug      string `json:"slug"`
	UniqueKey string `json:"unique_key"`
}

// listItem is a single row in the course list.
type listItem struct {
	ID         primitive.ObjectID `json:"id"`
	CourseType string             `json:"course_type"`
	Title      string             `json:"title"`
	TitleCI    string             `json:"-"`
	Category   string             `json:"category,omitempty"`
	Level      string             `json:"level"`
	Status     string             `json:"status"`
	Slug       string             `json:"slug"`
	Image      string             `json:"image,omitempty"`
	IsFree     bool               `json:"is_free"`
	Prices     []models.Price     `json:"prices,omitempty"`
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

// curriculumData is the curriculum subtree payload.
type curriculumData struct {
	CourseID   string        `json:"course_id"`
	CourseType string        `json:"course_type"`
	Curriculum []models.Week `json:"curriculum"`
}
