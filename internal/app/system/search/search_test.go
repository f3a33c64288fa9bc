package search

import "testing"

func TestEmailPivotOK(t *testing.T) {
	tests := []struct {
		query  string
		status string
		want   bool
	}{
		{"jane@example.com", "active", true},
		{"jane@example.com", "disabled", true},
		{"jane@example.com", " Active ", true},
		{"jane@example.com", "", false},
		{"jane@example.com", "pending", false},
		{"jane doe", "active", false},
		{"", "active", false},
	}
	for _, tt := range tests {
		if got := EmailPivotOK(tt.query, tt.status); got != tt.want {
			t.Errorf("EmailPivotOK(%q, %q) = %v, want %v", tt.query, tt.status, got, tt.want)
		}
	}
}
