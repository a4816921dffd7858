// Package classifier maps filenames to category names based on extension rules.
package classifier

import (
	"strings"

	"organizer/internal/config"
)

// Others is the sentinel category for files that match no configured rule.
const Others = "Others"

// Classify determines the category for a filename.
// Rules are walked in insertion order and the first category whose
// extension set contains a case-insensitive suffix match wins, so
// classification is deterministic for a given rule list.
// Pure function: no I/O, the file does not need to exist.
func Classify(filename string, rules []config.CategoryRule) string {
	lower := strings.ToLower(filename)
	for _, rule := range rules {
		for _, ext := range rule.Extensions {
			if ext == "" {
				continue
			}
			if strings.HasSuffix(lower, strings.ToLower(ext)) {
				return rule.Name
			}
		}
	}
	return Others
}
