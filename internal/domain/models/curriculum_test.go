package models_test

import (
	"testing"

	"github.com/medhedtech/medh-backend/internal/domain/models"
)

func TestAssignCurriculumIDs_Positional(t *testing.T) {
	weeks := []models.Week{
		{
			Title: "Week One",
			Sections: []models.Section{
				{
					Title: "Intro",
					Lessons: []models.Lesson{
						{Title: "Welcome"},
						{Title: "Setup", Resources: []models.LessonResource{{Title: "Slides", URL: "https://example.com/slides.pdf"}}},
					},
				},
				{
					Title:   "Basics",
					Lessons: []models.Lesson{{Title: "Variables"}},
				},
			},
		},
		{
			Title: "Week Two",
			Sections: []models.Section{
				{Title: "Advanced", Lessons: []models.Lesson{{Title: "Pointers"}}},
			},
		},
	}

	models.AssignCurriculumIDs(weeks)

	if weeks[0].ID != "week_1" {
		t.Errorf("week id: got %q, want week_1", weeks[0].ID)
	}
	if weeks[1].ID != "week_2" {
		t.Errorf("week id: got %q, want week_2", weeks[1].ID)
	}
	if weeks[0].Sections[0].ID != "section_w1_1" {
		t.Errorf("section id: got %q, want section_w1_1", weeks[0].Sections[0].ID)
	}
	if weeks[0].Sections[1].ID != "section_w1_2" {
		t.Errorf("section id: got %q, want section_w1_2", weeks[0].Sections[1].ID)
	}

	// Lessons are numbered per week, running across sections.
	if got := weeks[0].Sections[0].Lessons[0].ID; got != "lesson_w1_1" {
		t.Errorf("lesson id: got %q, want lesson_w1_1", got)
	}
	if got := weeks[0].Sections[0].Lessons[1].ID; got != "lesson_w1_2" {
		t.Errorf("lesson id: got %q, want lesson_w1_2", got)
	}
	if got := weeks[0].Sections[1].Lessons[0].ID; got != "lesson_w1_3" {
		t.Errorf("lesson id: got %q, want lesson_w1_3", got)
	}
	if got := weeks[1].Sections[0].Lessons[0].ID; got != "lesson_w2_1" {
		t.Errorf("lesson id: got %q, want lesson_w2_1", got)
	}

	if got := weeks[0].Sections[0].Lessons[1].Resources[0].ID; got != "resource_lesson_w1_2_1" {
		t.Errorf("resource id: got %q, want resource_lesson_w1_2_1", got)
	}
}

func TestAssignCurriculumIDs_PreservesExisting(t *testing.T) {
	weeks := []models.Week{
		{
			ID:    "week_7",
			Title: "Kept Week",
			Sections: []models.Section{
				{
					ID:    "section_w7_3",
					Title: "Kept Section",
					Lessons: []models.Lesson{
						{ID: "lesson_w7_9", Title: "Kept Lesson"},
						{Title: "New Lesson"},
					},
				},
			},
		},
	}

	models.AssignCurriculumIDs(weeks)

	// Existing IDs survive even when they no longer match their position.
	if weeks[0].ID != "week_7" {
		t.Errorf("existing week id was rewritten to %q", weeks[0].ID)
	}
	if weeks[0].Sections[0].ID != "section_w7_3" {
		t.Errorf("existing section id was rewritten to %q", weeks[0].Sections[0].ID)
	}
	if weeks[0].Sections[0].Lessons[0].ID != "lesson_w7_9" {
		t.Errorf("existing lesson id was rewritten to %q", weeks[0].Sections[0].Lessons[0].ID)
	}

	// The new sibling still gets a positional id.
	if got := weeks[0].Sections[0].Lessons[1].ID; got != "lesson_w1_2" {
		t.Errorf("new lesson id: got %q, want lesson_w1_2", got)
	}
}

func TestAssignCurriculumIDs_StableAcrossReorder(t *testing.T) {
	weeks := []models.Week{
		{ID: "week_1", Title: "First"},
		{ID: "week_2", Title: "Second"},
	}

	// Delete the first week and resubmit; the survivor keeps its id.
	weeks = weeks[1:]
	models.AssignCurriculumIDs(weeks)

	if weeks[0].ID != "week_2" {
		t.Errorf("surviving week was re-keyed to %q", weeks[0].ID)
	}
}

func TestValidateCurriculum(t *testing.T) {
	valid := []models.Week{
		{ID: "week_1", Title: "Week", Sections: []models.Section{
			{ID: "section_w1_1", Title: "Section", Lessons: []models.Lesson{
				{ID: "lesson_w1_1", Title: "Lesson"},
			}},
		}},
	}
	if err := models.ValidateCurriculum(valid); err != nil {
		t.Errorf("valid curriculum rejected: %v", err)
	}

	missingTitle := []models.Week{{ID: "week_1"}}
	if err := models.ValidateCurriculum(missingTitle); err == nil {
		t.Error("expected error for week without title")
	}

	dupIDs := []models.Week{
		{ID: "week_1", Title: "A"},
		{ID: "week_1", Title: "B"},
	}
	if err := models.ValidateCurriculum(dupIDs); err == nil {
		t.Error("expected error for duplicate ids")
	}
}
