package models_test

import (
	"testing"

	"github.com/medhedtech/medh-backend/internal/domain/models"
)

func TestValidateShape(t *testing.T) {
	blended := &models.BlendedDetails{}
	live := &models.LiveDetails{TotalSessions: 10, SessionDurationMin: 90}
	free := &models.FreeDetails{AccessType: models.AccessUnrestricted}

	tests := []struct {
		name    string
		course  models.Course
		wantErr bool
	}{
		{"blended with blended details", models.Course{CourseType: "blended", Blended: blended}, false},
		{"live with live details", models.Course{CourseType: "live", Live: live}, false},
		{"free with free details", models.Course{CourseType: "free", Free: free}, false},
		{"unknown type", models.Course{CourseType: "cohort", Blended: blended}, true},
		{"missing details", models.Course{CourseType: "live"}, true},
		{"mismatched details", models.Course{CourseType: "live", Blended: blended}, true},
		{"extra details", models.Course{CourseType: "live", Live: live, Free: free}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.course.ValidateShape()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateShape() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateShape_DelegatesToDetails(t *testing.T) {
	c := models.Course{
		CourseType: "live",
		Live:       &models.LiveDetails{TotalSessions: 0, SessionDurationMin: 60},
	}
	if err := c.ValidateShape(); err == nil {
		t.Error("expected error for live course with zero total_sessions")
	}

	c = models.Course{
		CourseType: "free",
		Free:       &models.FreeDetails{AccessType: models.AccessTimeLimited},
	}
	if err := c.ValidateShape(); err == nil {
		t.Error("expected error for time-limited access without access_days")
	}
}

func TestDeriveIsFree(t *testing.T) {
	c := models.Course{CourseType: models.CourseTypeFree}
	c.DeriveIsFree()
	if !c.IsFree {
		t.Error("free course_type should derive is_free=true")
	}

	c = models.Course{CourseType: models.CourseTypeBlended, Category: models.CategoryFree}
	c.DeriveIsFree()
	if !c.IsFree {
		t.Error("Free category should derive is_free=true for any type")
	}

	c = models.Course{CourseType: models.CourseTypeLive, Category: "Technology", IsFree: true}
	c.DeriveIsFree()
	if c.IsFree {
		t.Error("client-supplied is_free must be overwritten by derivation")
	}
}
