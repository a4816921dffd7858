package orchestrator

import (
	"fmt"
	"strings"

	"organizer/internal/classifier"
)

// sizeUnits are the binary-step units used for human-readable sizes.
// GB is the last step and is uncapped.
var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FormatSize renders a byte count with binary unit steps (1024 boundaries).
func FormatSize(sizeBytes int64) string {
	size := float64(sizeBytes)
	for _, unit := range sizeUnits {
		if size < 1024 || unit == "GB" {
			return fmt.Sprintf("%.2f %s", size, unit)
		}
		size /= 1024
	}
	return "" // unreachable
}

// LastStats returns the statistics from the most recent run, or nil if no
// run has completed yet.
func (o *Organizer) LastStats() *RunStats {
	return o.last
}

// SummaryText renders a human-readable summary of the last run.
// Categories are listed in configuration order, Others last, and only
// when they received at least one file.
func (o *Organizer) SummaryText() string {
	if o.last == nil {
		return "No organization run yet.\n"
	}

	var b strings.Builder
	b.WriteString("Organization Summary:\n")
	fmt.Fprintf(&b, "Total files processed: %d\n", o.last.TotalFiles)
	fmt.Fprintf(&b, "Files organized: %d\n", o.last.OrganizedFiles)
	fmt.Fprintf(&b, "Files skipped: %d\n", o.last.SkippedFiles)
	fmt.Fprintf(&b, "Total size processed: %s\n", FormatSize(o.last.TotalSize))
	b.WriteString("\nFiles by category:\n")

	for _, rule := range o.cfg.Categories {
		if count := o.last.ByCategory[rule.Name]; count > 0 {
			fmt.Fprintf(&b, "  - %s: %d\n", rule.Name, count)
		}
	}
	if count := o.last.ByCategory[classifier.Others]; count > 0 {
		fmt.Fprintf(&b, "  - %s: %d\n", classifier.Others, count)
	}

	return b.String()
}
