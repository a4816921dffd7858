// Package exclude provides pattern-based filtering of filenames.
package exclude

import (
	"regexp"
)

// Filter holds a compiled, ordered set of exclude patterns.
type Filter struct {
	patterns []*regexp.Regexp
}

// NewFilter compiles the given patterns into a Filter.
// Patterns are validated at insertion time by the configuration layer,
// but a hand-edited config file can still carry a broken one, so
// compilation errors are surfaced here too.
func NewFilter(patterns []string) (*Filter, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, err
		}
		compiled = append(compiled, re)
	}
	return &Filter{patterns: compiled}, nil
}

// Matches returns true if any pattern matches anywhere within the filename.
// This is a search, not a full match: the pattern "tmp" excludes
// "notes.tmp.txt" as well as "tmp".
func (f *Filter) Matches(filename string) bool {
	for _, re := range f.patterns {
		if re.MatchString(filename) {
			return true
		}
	}
	return false
}

// Len returns the number of patterns in the filter.
func (f *Filter) Len() int {
	return len(f.patterns)
}
