package paging

import (
	"net/http/httptest"
	"testing"
)

func TestParseLimit(t *testing.T) {
	tests := []struct {
		url  string
		want int
	}{
		{"/list", PageSize},
		{"/list?limit=", PageSize},
		{"/list?limit=abc", PageSize},
		{"/list?limit=0", PageSize},
		{"/list?limit=-5", PageSize},
		{"/list?limit=35", 35},
		{"/list?limit=500", MaxPageSize},
	}
	for _, tt := range tests {
		r := httptest.NewRequest("GET", tt.url, nil)
		if got := ParseLimit(r); got != tt.want {
			t.Errorf("ParseLimit(%q) = %d, want %d", tt.url, got, tt.want)
		}
	}
}

func TestTrimPage_ForwardFull(t *testing.T) {
	rows := []int{1, 2, 3, 4} // pageSize+1 rows fetched
	res := TrimPage(&rows, "", "", 3)

	if len(rows) != 3 {
		t.Errorf("rows trimmed to %d, want 3", len(rows))
	}
	if !res.HasNext {
		t.Error("expected HasNext with an extra row")
	}
	if res.HasPrev {
		t.Error("first page must not report HasPrev")
	}
}

func TestTrimPage_ForwardPartial(t *testing.T) {
	rows := []int{1, 2}
	res := TrimPage(&rows, "", "cursor", 3)

	if len(rows) != 2 {
		t.Errorf("rows trimmed to %d, want 2", len(rows))
	}
	if res.HasNext {
		t.Error("partial page must not report HasNext")
	}
	if !res.HasPrev {
		t.Error("page fetched with after-cursor must report HasPrev")
	}
}

func TestTrimPage_Backward(t *testing.T) {
	rows := []int{1, 2, 3, 4}
	res := TrimPage(&rows, "cursor", "", 3)

	if len(rows) != 3 {
		t.Errorf("rows trimmed to %d, want 3", len(rows))
	}
	// Backward paging trims the oldest (first) element.
	if rows[0] != 2 {
		t.Errorf("rows[0] = %d, want 2", rows[0])
	}
	if !res.HasPrev || !res.HasNext {
		t.Errorf("backward full page: HasPrev=%v HasNext=%v, want both true", res.HasPrev, res.HasNext)
	}
}

func TestTrimPage_BackwardPartial(t *testing.T) {
	rows := []int{1, 2}
	res := TrimPage(&rows, "cursor", "", 3)

	if len(rows) != 2 {
		t.Errorf("rows trimmed to %d, want 2", len(rows))
	}
	if res.HasPrev {
		t.Error("partial backward page must not report HasPrev")
	}
	if !res.HasNext {
		t.Error("backward page always has a next page")
	}
}

func TestConfigureKeyset(t *testing.T) {
	cfg := ConfigureKeyset("", "", 20)
	if cfg.Direction != Forward || cfg.SortOrder != 1 || cfg.Cursor != nil {
		t.Errorf("default config: %+v", cfg)
	}
	if cfg.KeysetWindow("title_ci") != nil {
		t.Error("window should be nil without a cursor")
	}
	if cfg.Limit != 20 {
		t.Errorf("limit = %d, want 20", cfg.Limit)
	}

	cfg = ConfigureKeyset("cursor123", "", 20)
	if cfg.Direction != Backward || cfg.SortOrder != -1 {
		t.Errorf("before-cursor config: %+v", cfg)
	}
}

func TestReverse(t *testing.T) {
	rows := []string{"a", "b", "c"}
	Reverse(rows)
	if rows[0] != "c" || rows[2] != "a" {
		t.Errorf("Reverse = %v", rows)
	}

	empty := []string{}
	Reverse(empty) // must not panic
}
