package models

import "fmt"

// Free-course access types.
const (
	AccessUnrestricted = "unrestricted"
	AccessTimeLimited  = "time-limited"
)

// FreeDetails holds the fields specific to free courses: a flat lesson
// list (no week structure), downloadable resources, and access policy.
type FreeDetails struct {
	Lessons        []Lesson         `bson:"lessons,omitempty" json:"lessons,omitempty"`
	Resources      []LessonResource `bson:"resources,omitempty" json:"resources,omitempty"`
	AccessType     string           `bson:"access_type" json:"access_type"`
	AccessDaysOnce int              `bson:"access_days,omitempty" json:"access_days,omitempty"` // days from enrollment, time-limited only
}

func (d *FreeDetails) Validate() error {
	switch d.AccessType {
	case AccessUnrestricted:
		if d.AccessDaysOnce != 0 {
			return fmt.Errorf("access_days only applies to time-limited access")
		}
	case AccessTimeLimited:
		if d.AccessDaysOnce <= 0 {
			return fmt.Errorf("time-limited access requires a positive access_days")
		}
	default:
		return fmt.Errorf("access_type must be %q or %q, got %q", AccessUnrestricted, AccessTimeLimited, d.AccessType)
	}
	for i, l := range d.Lessons {
		if l.Title == "" {
			return fmt.Errorf("lessons[%d]: title is required", i)
		}
	}
	return nil
}

// AssignLessonIDs fills in missing lesson/resource IDs positionally
// (lesson_1, resource_lesson_1_1, ...), preserving any existing IDs.
func (d *FreeDetails) AssignLessonIDs() {
	for i := range d.Lessons {
		l := &d.Lessons[i]
		if l.ID == "" {
			l.ID = fmt.Sprintf("lesson_%d", i+1)
		}
		for ri := range l.Resources {
			if l.Resources[ri].ID == "" {
				l.Resources[ri].ID = fmt.Sprintf("resource_%s_%d", l.ID, ri+1)
			}
		}
	}
	for i := range d.Resources {
		if d.Resources[i].ID == "" {
			d.Resources[i].ID = fmt.Sprintf("resource_%d", i+1)
		}
	}
}
