package htmlsanitize

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
		excludes string
	}{
		{"plain text", "hello world", "hello world", ""},
		{"keeps paragraphs", "<p>intro</p>", "<p>intro</p>", ""},
		{"keeps tables", "<table><tr><td>cell</td></tr></table>", "<td>cell</td>", ""},
		{"keeps underline", "<u>key term</u>", "<u>key term</u>", ""},
		{"strips script", `<p>ok</p><script>alert(1)</script>`, "<p>ok</p>", "<script"},
		{"strips event handlers", `<p onclick="steal()">text</p>`, "text", "onclick"},
		{"strips javascript urls", `<a href="javascript:alert(1)">x</a>`, "x", "javascript:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			if tt.contains != "" && !strings.Contains(got, tt.contains) {
				t.Errorf("Sanitize(%q) = %q, want containing %q", tt.input, got, tt.contains)
			}
			if tt.excludes != "" && strings.Contains(got, tt.excludes) {
				t.Errorf("Sanitize(%q) = %q, must not contain %q", tt.input, got, tt.excludes)
			}
		})
	}
}

func TestSanitize_Empty(t *testing.T) {
	if got := Sanitize(""); got != "" {
		t.Errorf("Sanitize(\"\") = %q, want empty", got)
	}
}
