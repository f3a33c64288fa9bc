package models

import "fmt"

// Curriculum hierarchy: week -> section -> lesson -> resource.
//
// IDs follow the positional naming scheme (week_1, section_w1_2,
// lesson_w1_3, resource_w1_3_1) but are assigned only when an item
// arrives without one. An item that already carries an ID keeps it
// forever, so reordering or deleting siblings never re-keys existing
// items and external references (bookmarks, progress records) stay valid.
type Week struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Sections    []Section `bson:"sections,omitempty" json:"sections,omitempty"`
}

type Section struct {
	ID      string   `bson:"id" json:"id"`
	Title   string   `bson:"title" json:"title"`
	Order   int      `bson:"order,omitempty" json:"order,omitempty"`
	Lessons []Lesson `bson:"lessons,omitempty" json:"lessons,omitempty"`
}

type Lesson struct {
	ID          string           `bson:"id" json:"id"`
	Title       string           `bson:"title" json:"title"`
	Description string           `bson:"description,omitempty" json:"description,omitempty"`
	ContentType string           `bson:"content_type,omitempty" json:"content_type,omitempty"` // video | text | quiz
	ContentURL  string           `bson:"content_url,omitempty" json:"content_url,omitempty"`
	DurationMin int              `bson:"duration_min,omitempty" json:"duration_min,omitempty"`
	IsPreview   bool             `bson:"is_preview,omitempty" json:"is_preview,omitempty"`
	Resources   []LessonResource `bson:"resources,omitempty" json:"resources,omitempty"`
}

type LessonResource struct {
	ID    string `bson:"id" json:"id"`
	Title string `bson:"title" json:"title"`
	URL   string `bson:"url" json:"url"`
	Type  string `bson:"type,omitempty" json:"type,omitempty"` // pdf | link | code
}

// AssignCurriculumIDs fills in missing IDs across the curriculum tree.
//
// Numbering is positional and 1-based. Lessons are numbered per week
// (running across that week's sections), resources per lesson. For a
// curriculum submitted entirely without IDs the result is fully
// deterministic given the input order.
func AssignCurriculumIDs(weeks []Week) {
	for wi := range weeks {
		w := &weeks[wi]
		if w.ID == "" {
			w.ID = fmt.Sprintf("week_%d", wi+1)
		}
		lessonNum := 0
		for si := range w.Sections {
			s := &w.Sections[si]
			if s.ID == "" {
				s.ID = fmt.Sprintf("section_w%d_%d", wi+1, si+1)
			}
			for li := range s.Lessons {
				lessonNum++
				l := &s.Lessons[li]
				if l.ID == "" {
					l.ID = fmt.Sprintf("lesson_w%d_%d", wi+1, lessonNum)
				}
				for ri := range l.Resources {
					r := &l.Resources[ri]
					if r.ID == "" {
						r.ID = fmt.Sprintf("resource_%s_%d", l.ID, ri+1)
					}
				}
			}
		}
	}
}

// ValidateCurriculum checks that every item has a non-empty title and
// that IDs are unique across the whole tree. It assumes
// AssignCurriculumIDs has already run.
func ValidateCurriculum(weeks []Week) error {
	seen := make(map[string]bool)
	claim := func(id, kind string) error {
		if id == "" {
			return fmt.Errorf("%s is missing an id", kind)
		}
		if seen[id] {
			return fmt.Errorf("duplicate curriculum id %q", id)
		}
		seen[id] = true
		return nil
	}
	for _, w := range weeks {
		if w.Title == "" {
			return fmt.Errorf("week %q: title is required", w.ID)
		}
		if err := claim(w.ID, "week"); err != nil {
			return err
		}
		for _, s := range w.Sections {
			if s.Title == "" {
				return fmt.Errorf("section %q: title is required", s.ID)
			}
			if err := claim(s.ID, "section"); err != nil {
				return err
			}
			for _, l := range s.Lessons {
				if l.Title == "" {
					return fmt.Errorf("lesson %q: title is required", l.ID)
				}
				if err := claim(l.ID, "lesson"); err != nil {
					return err
				}
				for _, r := range l.Resources {
					if err := claim(r.ID, "resource"); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}
