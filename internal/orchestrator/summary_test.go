package orchestrator

import (
	"strings"
	"testing"

	"organizer/internal/config"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0.00 B"},
		{512, "512.00 B"},
		{1023, "1023.00 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1048576, "1.00 MB"},
		{1073741824, "1.00 GB"},
		// GB is uncapped: no TB step.
		{1099511627776, "1024.00 GB"},
	}

	for _, tt := range tests {
		if got := FormatSize(tt.bytes); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}

func TestSummaryTextBeforeAnyRun(t *testing.T) {
	org := New(config.Default())
	if got := org.SummaryText(); !strings.Contains(got, "No organization run yet") {
		t.Errorf("unexpected summary before a run: %q", got)
	}
}

func TestSummaryTextContents(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.jpg", "12345")
	writeFile(t, dir, "b.txt", "678")

	org := New(config.Default())
	if _, err := org.Run(dir, false, false); err != nil {
		t.Fatal(err)
	}

	got := org.SummaryText()

	for _, want := range []string{
		"Organization Summary:",
		"Total files processed: 2",
		"Files organized: 2",
		"Files skipped: 0",
		"Total size processed: 8.00 B",
		"Files by category:",
		"  - Photos: 1",
		"  - Documents: 1",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}

	// Categories with zero files are omitted.
	if strings.Contains(got, "Music") {
		t.Errorf("summary lists empty category:\n%s", got)
	}
}

func TestSummaryTextCategoryOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "movie.mp4", "v")
	writeFile(t, dir, "weird.zzz", "?")

	org := New(config.Default())
	if _, err := org.Run(dir, false, false); err != nil {
		t.Fatal(err)
	}

	got := org.SummaryText()
	videosAt := strings.Index(got, "Videos")
	othersAt := strings.Index(got, "Others")
	if videosAt == -1 || othersAt == -1 || videosAt > othersAt {
		t.Errorf("expected configuration order with Others last:\n%s", got)
	}
}
