package watcher

import (
	"path/filepath"
	"strings"
)

// DefaultIgnorePatterns returns glob patterns for files that should never
// be organized while being watched, such as in-progress downloads and the
// operational log.
func DefaultIgnorePatterns() []string {
	return []string{"*.tmp", "*.part", "*.crdownload", "*.download", "*.log"}
}

// FileFilter decides whether a watched file should be ignored.
type FileFilter struct {
	patterns []string
}

// NewFileFilter creates a FileFilter from glob patterns matched against
// the base filename.
func NewFileFilter(patterns []string) *FileFilter {
	return &FileFilter{patterns: patterns}
}

// ShouldIgnore returns true if the file matches any ignore pattern or is
// a hidden dotfile.
func (f *FileFilter) ShouldIgnore(path string) bool {
	name := filepath.Base(path)
	if strings.HasPrefix(name, ".") {
		return true
	}
	for _, pattern := range f.patterns {
		if ok, err := filepath.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}
