package exclude

import (
	"testing"
)

func TestNewFilterRejectsInvalidPattern(t *testing.T) {
	if _, err := NewFilter([]string{"[unterminated"}); err == nil {
		t.Error("expected error for invalid pattern, got nil")
	}
}

func TestFilterMatches(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		filename string
		want     bool
	}{
		{"empty filter matches nothing", nil, "anything.txt", false},
		{"anchored dotfile pattern", []string{`^\.`}, ".hidden", true},
		{"anchored pattern misses visible file", []string{`^\.`}, "visible.txt", false},
		{"substring search, not full match", []string{"tmp"}, "notes.tmp.txt", true},
		{"extension pattern", []string{`\.bak$`}, "data.bak", true},
		{"extension pattern misses other suffix", []string{`\.bak$`}, "data.bak.old", false},
		{"any of several patterns", []string{`^\.`, "draft"}, "my_draft_v2.doc", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := NewFilter(tt.patterns)
			if err != nil {
				t.Fatalf("NewFilter(%v) failed: %v", tt.patterns, err)
			}
			if got := filter.Matches(tt.filename); got != tt.want {
				t.Errorf("Matches(%q) with %v = %v, want %v", tt.filename, tt.patterns, got, tt.want)
			}
		})
	}
}

func TestFilterLen(t *testing.T) {
	filter, err := NewFilter([]string{"a", "b"})
	if err != nil {
		t.Fatalf("NewFilter failed: %v", err)
	}
	if filter.Len() != 2 {
		t.Errorf("Len() = %d, want 2", filter.Len())
	}
}
