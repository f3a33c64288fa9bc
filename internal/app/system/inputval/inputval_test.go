package inputval

import (
	"strings"
	"testing"
)

type sample struct {
	FullName string `json:"full_name" label:"full name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Status   string `json:"status" validate:"omitempty,oneof=active disabled"`
	Password string `json:"password" validate:"omitempty,min=8"`
}

func TestValidate_OK(t *testing.T) {
	res := Validate(sample{FullName: "Jane", Email: "jane@example.com"})
	if res.HasErrors() {
		t.Errorf("unexpected errors: %v", res.Errors)
	}
	if res.Err() != nil {
		t.Errorf("Err() = %v, want nil", res.Err())
	}
}

func TestValidate_Failures(t *testing.T) {
	res := Validate(sample{Email: "nope", Status: "pending", Password: "short"})
	if !res.HasErrors() {
		t.Fatal("expected validation errors")
	}

	joined := res.Err().Error()
	// Messages use the label tag, then the json tag, never Go names.
	if !strings.Contains(joined, "full name is required") {
		t.Errorf("missing label-based message, got: %s", joined)
	}
	if !strings.Contains(joined, "email must be a valid email address") {
		t.Errorf("missing email message, got: %s", joined)
	}
	if !strings.Contains(joined, "status must be one of") {
		t.Errorf("missing oneof message, got: %s", joined)
	}
	if !strings.Contains(joined, "password must be at least 8") {
		t.Errorf("missing min message, got: %s", joined)
	}
	if strings.Contains(joined, "FullName") {
		t.Errorf("message leaked a Go field name: %s", joined)
	}
}

func TestResult_First(t *testing.T) {
	if got := (Result{}).First(); got != "" {
		t.Errorf("First() on empty result = %q", got)
	}
	r := Result{Errors: []string{"a", "b"}}
	if got := r.First(); got != "a" {
		t.Errorf("First() = %q, want a", got)
	}
}
