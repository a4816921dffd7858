// Package scanner handles directory enumeration for Organizer.
package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"time"
)

// ScanErrorType represents the type of scanning error.
type ScanErrorType string

const (
	// DirectoryNotFound indicates the directory does not exist.
	DirectoryNotFound ScanErrorType = "DIRECTORY_NOT_FOUND"
	// PermissionDenied indicates insufficient permissions to read the directory.
	PermissionDenied ScanErrorType = "PERMISSION_DENIED"
	// NotADirectory indicates the path exists but is not a directory.
	NotADirectory ScanErrorType = "NOT_A_DIRECTORY"
)

// ScanError represents an error that occurred during directory scanning.
// Any ScanError means the target directory is not usable; a run aborts
// before touching anything.
type ScanError struct {
	Type ScanErrorType
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return string(e.Type) + ": " + e.Path
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// FileEntry represents a regular file found at the top level of a directory.
type FileEntry struct {
	Name     string    // Filename only
	FullPath string    // Absolute path
	Size     int64     // Size in bytes
	ModTime  time.Time // Last modification timestamp
}

// Scan enumerates regular files at the top level of the given directory.
// Subdirectories and symlinks are skipped; there is no recursion, so files
// already organized into category folders by a prior run stay put.
func Scan(directory string) ([]FileEntry, error) {
	info, err := os.Stat(directory)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ScanError{
				Type: DirectoryNotFound,
				Path: directory,
				Err:  err,
			}
		}
		if os.IsPermission(err) {
			return nil, &ScanError{
				Type: PermissionDenied,
				Path: directory,
				Err:  err,
			}
		}
		return nil, err
	}

	if !info.IsDir() {
		return nil, &ScanError{
			Type: NotADirectory,
			Path: directory,
			Err:  errors.New("path is not a directory"),
		}
	}

	entries, err := os.ReadDir(directory)
	if err != nil {
		if os.IsPermission(err) {
			return nil, &ScanError{
				Type: PermissionDenied,
				Path: directory,
				Err:  err,
			}
		}
		return nil, err
	}

	var files []FileEntry
	for _, entry := range entries {
		fullPath := filepath.Join(directory, entry.Name())

		entryInfo, err := os.Lstat(fullPath)
		if err != nil {
			continue // Skip entries we can't stat
		}

		if entryInfo.IsDir() || entryInfo.Mode()&os.ModeSymlink != 0 {
			continue
		}

		absPath, err := filepath.Abs(fullPath)
		if err != nil {
			absPath = fullPath
		}

		files = append(files, FileEntry{
			Name:     entry.Name(),
			FullPath: absPath,
			Size:     entryInfo.Size(),
			ModTime:  entryInfo.ModTime(),
		})
	}

	return files, nil
}
