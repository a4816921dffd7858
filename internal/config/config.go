// Package config handles category rule and exclude pattern persistence for Organizer.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// FileName is the configuration file kept next to the executable.
const FileName = "organizer_config.json"

// ConfigErrorType represents the type of configuration error.
type ConfigErrorType string

const (
	FileNotFound    ConfigErrorType = "FILE_NOT_FOUND"
	InvalidJSON     ConfigErrorType = "INVALID_JSON"
	ValidationError ConfigErrorType = "VALIDATION_ERROR"
	WriteFailed     ConfigErrorType = "WRITE_FAILED"
)

// ConfigError represents an error that occurred during configuration loading or saving.
type ConfigError struct {
	Type    ConfigErrorType
	Path    string
	Message string
}

func (e *ConfigError) Error() string {
	switch e.Type {
	case FileNotFound:
		return fmt.Sprintf("configuration file not found: %s", e.Path)
	case InvalidJSON:
		return fmt.Sprintf("invalid JSON in configuration file: %s", e.Message)
	case ValidationError:
		return fmt.Sprintf("configuration validation error: %s", e.Message)
	case WriteFailed:
		return fmt.Sprintf("failed to write configuration file %s: %s", e.Path, e.Message)
	default:
		return fmt.Sprintf("configuration error: %s", e.Message)
	}
}

// PatternError indicates an exclude pattern that does not compile as a regular expression.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid exclude pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// IndexError indicates a removal by position outside the valid range.
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range (0-%d)", e.Index, e.Length-1)
}

// CategoryRule maps a category name to the file extensions it covers.
// Rules are kept as an ordered list: classification walks them in
// insertion order and the first match wins.
type CategoryRule struct {
	Name       string   `json:"name"`
	Extensions []string `json:"extensions"`
}

// Configuration holds all settings that survive across runs.
type Configuration struct {
	Categories      []CategoryRule `json:"categories"`
	ExcludePatterns []string       `json:"excludePatterns"`
}

// Default returns a fresh Configuration with the built-in category table.
func Default() *Configuration {
	return &Configuration{
		Categories: []CategoryRule{
			{Name: "Videos", Extensions: []string{".mp4", ".mkv", ".flv", ".avi", ".mov", ".wmv", ".m4v", ".mpg", ".mpeg"}},
			{Name: "Photos", Extensions: []string{".jpg", ".jpeg", ".png", ".cr2", ".gif", ".bmp", ".tiff", ".svg", ".webp", ".raw"}},
			{Name: "Music", Extensions: []string{".mp3", ".wav", ".aac", ".flac", ".ogg", ".m4a", ".wma", ".opus"}},
			{Name: "Documents", Extensions: []string{".pdf", ".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx", ".txt", ".rtf", ".odt", ".md", ".csv"}},
			{Name: "Archives", Extensions: []string{".zip", ".rar", ".7z", ".tar", ".gz", ".bz2", ".xz"}},
			{Name: "Code", Extensions: []string{".py", ".java", ".cpp", ".c", ".h", ".js", ".html", ".css", ".php", ".rb", ".go", ".rs", ".json"}},
			{Name: "Executables", Extensions: []string{".exe", ".msi", ".app", ".bat", ".sh"}},
		},
		ExcludePatterns: []string{},
	}
}

// DefaultPath returns the configuration file location next to the executable.
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(exe), FileName), nil
}

// NormalizeExtension lowercases an extension and ensures it has a leading dot.
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" || ext == "." {
		return ""
	}
	return "." + strings.TrimLeft(ext, ".")
}

// Validate checks that the configuration is internally consistent.
func (c *Configuration) Validate() error {
	seen := make(map[string]bool)
	for i, rule := range c.Categories {
		if rule.Name == "" {
			return &ConfigError{
				Type:    ValidationError,
				Message: fmt.Sprintf("categories[%d].name cannot be empty", i),
			}
		}
		if seen[rule.Name] {
			return &ConfigError{
				Type:    ValidationError,
				Message: fmt.Sprintf("duplicate category name %q", rule.Name),
			}
		}
		seen[rule.Name] = true
		if len(rule.Extensions) == 0 {
			return &ConfigError{
				Type:    ValidationError,
				Message: fmt.Sprintf("categories[%d] (%s) has no extensions", i, rule.Name),
			}
		}
	}
	for _, pattern := range c.ExcludePatterns {
		if _, err := regexp.Compile(pattern); err != nil {
			return &ConfigError{
				Type:    ValidationError,
				Message: fmt.Sprintf("exclude pattern %q does not compile: %v", pattern, err),
			}
		}
	}
	return nil
}

// HasCategory checks if a category name already exists (case-insensitive).
func (c *Configuration) HasCategory(name string) bool {
	lower := strings.ToLower(name)
	for _, rule := range c.Categories {
		if strings.ToLower(rule.Name) == lower {
			return true
		}
	}
	return false
}

// AddCategory appends a category rule if the name doesn't already exist.
// Extensions are normalized to lowercase with a leading dot.
// Returns true if the rule was added, false if it was rejected as a
// duplicate or empty.
func (c *Configuration) AddCategory(name string, extensions []string) bool {
	if name == "" || c.HasCategory(name) {
		return false
	}
	normalized := normalizeExtensions(extensions)
	if len(normalized) == 0 {
		return false
	}
	c.Categories = append(c.Categories, CategoryRule{
		Name:       name,
		Extensions: normalized,
	})
	return true
}

// SetCategoryExtensions replaces the extension set of the category at the given position.
func (c *Configuration) SetCategoryExtensions(index int, extensions []string) error {
	if index < 0 || index >= len(c.Categories) {
		return &IndexError{Index: index, Length: len(c.Categories)}
	}
	normalized := normalizeExtensions(extensions)
	if len(normalized) == 0 {
		return &ConfigError{
			Type:    ValidationError,
			Message: "extensions cannot be empty",
		}
	}
	c.Categories[index].Extensions = normalized
	return nil
}

// RemoveCategory removes the category at the given position.
func (c *Configuration) RemoveCategory(index int) error {
	if index < 0 || index >= len(c.Categories) {
		return &IndexError{Index: index, Length: len(c.Categories)}
	}
	c.Categories = append(c.Categories[:index], c.Categories[index+1:]...)
	return nil
}

// AddExcludePattern appends an exclude pattern after verifying it compiles.
// An invalid pattern returns a PatternError and leaves the set unchanged.
func (c *Configuration) AddExcludePattern(pattern string) error {
	if _, err := regexp.Compile(pattern); err != nil {
		return &PatternError{Pattern: pattern, Err: err}
	}
	c.ExcludePatterns = append(c.ExcludePatterns, pattern)
	return nil
}

// RemoveExcludePattern removes the pattern at the given position.
func (c *Configuration) RemoveExcludePattern(index int) error {
	if index < 0 || index >= len(c.ExcludePatterns) {
		return &IndexError{Index: index, Length: len(c.ExcludePatterns)}
	}
	c.ExcludePatterns = append(c.ExcludePatterns[:index], c.ExcludePatterns[index+1:]...)
	return nil
}

func normalizeExtensions(extensions []string) []string {
	normalized := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		if n := NormalizeExtension(ext); n != "" {
			normalized = append(normalized, n)
		}
	}
	return normalized
}

// Load reads and parses a configuration file from the given path.
func Load(filePath string) (*Configuration, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ConfigError{
				Type: FileNotFound,
				Path: filePath,
			}
		}
		return nil, &ConfigError{
			Type:    FileNotFound,
			Path:    filePath,
			Message: err.Error(),
		}
	}

	var config Configuration
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, &ConfigError{
			Type:    InvalidJSON,
			Message: err.Error(),
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	if config.ExcludePatterns == nil {
		config.ExcludePatterns = []string{}
	}

	return &config, nil
}

// LoadOrDefault loads config if it exists, or returns the built-in defaults.
// A missing or unreadable file is not fatal; the error is returned alongside
// the defaults so the caller can log the fallback.
func LoadOrDefault(filePath string) (*Configuration, error) {
	config, err := Load(filePath)
	if err != nil {
		return Default(), err
	}
	return config, nil
}

// Save serializes and writes a configuration to the given path.
func Save(config *Configuration, filePath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return &ConfigError{
			Type:    InvalidJSON,
			Message: err.Error(),
		}
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return &ConfigError{
			Type:    WriteFailed,
			Path:    filePath,
			Message: err.Error(),
		}
	}

	return nil
}
