package models

// Course discriminator values. Every document in the courses collection
// carries exactly one of these in its course_type field; the value decides
// which detail sub-document (blended/live/free) must be present.
const (
	CourseTypeBlended = "blended"
	CourseTypeLive    = "live"
	CourseTypeFree    = "free"
)

// CourseTypes is the canonical ordered list of discriminator values.
var CourseTypes = []string{CourseTypeBlended, CourseTypeLive, CourseTypeFree}

// IsValidCourseType reports whether t is a known discriminator value.
func IsValidCourseType(t string) bool {
	for _, ct := range CourseTypes {
		if ct == t {
			return true
		}
	}
	return false
}

// Course lifecycle statuses. Courses are never hard-deleted; a delete
// request moves the document to StatusDeleted.
const (
	CourseStatusDraft     = "draft"
	CourseStatusPublished = "published"
	CourseStatusUpcoming  = "upcoming"
	CourseStatusArchived  = "archived"
	CourseStatusDeleted   = "deleted"
)

// CourseStatuses lists the statuses a client may set directly.
// StatusDeleted is reachable only through the delete endpoint.
var CourseStatuses = []string{
	CourseStatusDraft,
	CourseStatusPublished,
	CourseStatusUpcoming,
	CourseStatusArchived,
}

// IsValidCourseStatus reports whether s is a client-settable status.
func IsValidCourseStatus(s string) bool {
	for _, cs := range CourseStatuses {
		if cs == s {
			return true
		}
	}
	return false
}

// Course difficulty levels.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
	LevelAll          = "all"
)

var CourseLevels = []string{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelAll}

func IsValidCourseLevel(l string) bool {
	for _, cl := range CourseLevels {
		if cl == l {
			return true
		}
	}
	return false
}

// CategoryFree is the category whose membership makes a course free
// regardless of its discriminator (IsFree derivation).
const CategoryFree = "Free"
