package migrate

import (
	"fmt"
	"strings"

	"github.com/medhedtech/medh-backend/internal/domain/models"
)

// ClassTypeToCourseType maps the legacy free-text class_type onto the
// discriminator. Unrecognized values default to blended, the most
// common legacy product.
func ClassTypeToCourseType(classType, categoryType string) string {
	if categoryType == models.CategoryFree {
		return models.CourseTypeFree
	}
	ct := strings.ToLower(classType)
	switch {
	case strings.Contains(ct, "live"):
		return models.CourseTypeLive
	case strings.Contains(ct, "blended"), strings.Contains(ct, "hybrid"):
		return models.CourseTypeBlended
	case strings.Contains(ct, "self"), strings.Contains(ct, "recorded"), strings.Contains(ct, "free"):
		return models.CourseTypeFree
	default:
		return models.CourseTypeBlended
	}
}

func legacyStatus(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "published", "active", "live":
		return models.CourseStatusPublished
	case "upcoming":
		return models.CourseStatusUpcoming
	case "archived", "inactive":
		return models.CourseStatusArchived
	default:
		return models.CourseStatusDraft
	}
}

func str(doc map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := doc[k].(string); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func num(doc map[string]any, keys ...string) float64 {
	for _, k := range keys {
		switch v := doc[k].(type) {
		case float64:
			return v
		case int:
			return float64(v)
		case int32:
			return float64(v)
		case int64:
			return float64(v)
		}
	}
	return 0
}

// MapLegacy converts one raw legacy document into a create payload for
// the new API. The server re-validates everything; this only has to
// produce a well-formed candidate.
func MapLegacy(doc map[string]any) (map[string]any, error) {
	title := str(doc, "course_title", "title")
	if title == "" {
		return nil, fmt.Errorf("legacy document has no course_title")
	}

	classType := str(doc, "class_type")
	categoryType := str(doc, "category_type")
	courseType := ClassTypeToCourseType(classType, categoryType)

	category := str(doc, "course_category", "category")
	if categoryType == models.CategoryFree && category == "" {
		category = models.CategoryFree
	}

	payload := map[string]any{
		"course_type": courseType,
		"title":       title,
		"category":    category,
		"status":      legacyStatus(str(doc, "status")),
		"_source":     "legacy_migration",
	}
	if img := str(doc, "course_image", "image"); img != "" {
		payload["image"] = img
	}
	if desc := str(doc, "course_description", "description"); desc != "" {
		payload["description"] = desc
	}

	if fee := num(doc, "course_fee"); fee > 0 && courseType != models.CourseTypeFree {
		payload["prices"] = []map[string]any{
			{"currency": "INR", "individual": fee, "is_active": true},
		}
	}

	switch courseType {
	case models.CourseTypeBlended:
		payload["blended"] = map[string]any{}
	case models.CourseTypeLive:
		sessions := int(num(doc, "no_of_sessions", "total_sessions"))
		if sessions <= 0 {
			sessions = 12
		}
		duration := int(num(doc, "session_duration", "session_duration_min"))
		if duration <= 0 {
			duration = 60
		}
		payload["live"] = map[string]any{
			"total_sessions":       sessions,
			"session_duration_min": duration,
		}
	case models.CourseTypeFree:
		payload["free"] = map[string]any{
			"access_type": models.AccessUnrestricted,
		}
	}

	return payload, nil
}
