package migrate_test

import (
	"testing"

	"github.com/medhedtech/medh-backend/internal/domain/models"
	"github.com/medhedtech/medh-backend/internal/migrate"
)

func TestClassTypeToCourseType(t *testing.T) {
	tests := []struct {
		classType    string
		categoryType string
		want         string
	}{
		{"Live Courses", "", "live"},
		{"LIVE", "", "live"},
		{"Blended Courses", "", "blended"},
		{"Hybrid", "", "blended"},
		{"Self-Paced", "", "free"},
		{"Recorded Sessions", "", "free"},
		{"Free Classes", "", "free"},
		{"", "", "blended"},
		{"Workshop", "", "blended"},
		// category_type Free wins over any class_type.
		{"Live Courses", models.CategoryFree, "free"},
	}
	for _, tt := range tests {
		if got := migrate.ClassTypeToCourseType(tt.classType, tt.categoryType); got != tt.want {
			t.Errorf("ClassTypeToCourseType(%q, %q) = %q, want %q",
				tt.classType, tt.categoryType, got, tt.want)
		}
	}
}

func TestMapLegacy_StatusMapping(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Published", "published"},
		{"active", "published"},
		{"LIVE", "published"},
		{"Upcoming", "upcoming"},
		{"archived", "archived"},
		{"Inactive", "archived"},
		{"", "draft"},
		{"weird", "draft"},
	}
	for _, tt := range tests {
		payload, err := migrate.MapLegacy(map[string]any{
			"course_title": "Status Probe Course",
			"status":       tt.in,
		})
		if err != nil {
			t.Fatalf("MapLegacy(status=%q) failed: %v", tt.in, err)
		}
		if got := payload["status"]; got != tt.want {
			t.Errorf("status %q mapped to %v, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMapLegacy_Live(t *testing.T) {
	doc := map[string]any{
		"course_title":     "Legacy Live Analytics",
		"class_type":       "Live Courses",
		"course_category":  "Analytics",
		"status":           "Active",
		"course_fee":       float64(9999),
		"no_of_sessions":   float64(20),
		"session_duration": float64(90),
		"course_image":     "https://cdn.example.com/img.png",
	}

	payload, err := migrate.MapLegacy(doc)
	if err != nil {
		t.Fatalf("MapLegacy failed: %v", err)
	}

	if payload["course_type"] != "live" {
		t.Errorf("course_type: got %v", payload["course_type"])
	}
	if payload["status"] != "published" {
		t.Errorf("status: got %v", payload["status"])
	}
	if payload["_source"] != "legacy_migration" {
		t.Errorf("_source: got %v", payload["_source"])
	}

	live, ok := payload["live"].(map[string]any)
	if !ok {
		t.Fatal("missing live section")
	}
	if live["total_sessions"] != 20 || live["session_duration_min"] != 90 {
		t.Errorf("live section: %v", live)
	}

	prices, ok := payload["prices"].([]map[string]any)
	if !ok || len(prices) != 1 {
		t.Fatalf("prices: %v", payload["prices"])
	}
	if prices[0]["currency"] != "INR" || prices[0]["individual"] != float64(9999) {
		t.Errorf("price row: %v", prices[0])
	}
}

func TestMapLegacy_LiveDefaults(t *testing.T) {
	payload, err := migrate.MapLegacy(map[string]any{
		"course_title": "Sparse Live",
		"class_type":   "live",
	})
	if err != nil {
		t.Fatalf("MapLegacy failed: %v", err)
	}
	live := payload["live"].(map[string]any)
	if live["total_sessions"] != 12 || live["session_duration_min"] != 60 {
		t.Errorf("defaults: %v", live)
	}
}

func TestMapLegacy_FreeDropsFee(t *testing.T) {
	payload, err := migrate.MapLegacy(map[string]any{
		"course_title":  "Old Free Course",
		"category_type": models.CategoryFree,
		"course_fee":    float64(500), // stale data; free courses carry no prices
	})
	if err != nil {
		t.Fatalf("MapLegacy failed: %v", err)
	}
	if payload["course_type"] != "free" {
		t.Errorf("course_type: got %v", payload["course_type"])
	}
	if _, ok := payload["prices"]; ok {
		t.Error("free course payload must not carry prices")
	}
	free := payload["free"].(map[string]any)
	if free["access_type"] != models.AccessUnrestricted {
		t.Errorf("access_type: got %v", free["access_type"])
	}
	if payload["category"] != models.CategoryFree {
		t.Errorf("category fallback: got %v", payload["category"])
	}
}

func TestMapLegacy_MissingTitle(t *testing.T) {
	if _, err := migrate.MapLegacy(map[string]any{"class_type": "live"}); err == nil {
		t.Error("expected error for legacy doc without a title")
	}
}
