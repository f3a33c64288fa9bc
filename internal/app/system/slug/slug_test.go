package slug

import (
	"strings"
	"testing"
)

func TestMake(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Advanced Go Programming", "advanced-go-programming"},
		{"  C++ & Rust: Systems!  ", "c-rust-systems"},
		{"Déjà Vu Café", "deja-vu-cafe"},
		{"---", "course"},
		{"", "course"},
		{"already-a-slug", "already-a-slug"},
	}
	for _, tt := range tests {
		if got := Make(tt.title); got != tt.want {
			t.Errorf("Make(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestMake_Truncates(t *testing.T) {
	long := strings.Repeat("word ", 40)
	got := Make(long)
	if len(got) > maxSlugLen {
		t.Errorf("slug length %d exceeds %d", len(got), maxSlugLen)
	}
	if strings.HasSuffix(got, "-") {
		t.Errorf("truncated slug ends with a dash: %q", got)
	}
}

func TestWithSuffix(t *testing.T) {
	a := WithSuffix("go-course")
	b := WithSuffix("go-course")
	if !strings.HasPrefix(a, "go-course-") {
		t.Errorf("suffix slug missing base: %q", a)
	}
	if a == b {
		t.Error("expected distinct suffixes on repeated calls")
	}
}

func TestNewUniqueKey(t *testing.T) {
	if NewUniqueKey() == NewUniqueKey() {
		t.Error("expected distinct unique keys")
	}
}
