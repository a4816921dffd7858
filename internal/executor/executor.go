// Package executor performs single-file move and copy operations for Organizer.
package executor

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Mode identifies the kind of transfer performed on a file.
type Mode string

const (
	// ModeMove relocates the file, removing the original.
	ModeMove Mode = "move"
	// ModeCopy duplicates the file, leaving the original untouched.
	ModeCopy Mode = "copy"
)

// OperationRecord captures the minimal data needed to reverse one transfer.
// It is created at the moment a file is successfully transferred and is
// immutable afterward.
type OperationRecord struct {
	Kind            Mode
	SourcePath      string
	DestinationPath string
}

// TransferError represents a per-file transfer failure.
// Callers treat it as a skip: one failed file never aborts a run.
type TransferError struct {
	Filename string
	Path     string
	Err      error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer failed for %s: %v", e.Filename, e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

// Execute transfers one file into destDir, resolving name collisions.
// When dateBucket is non-empty the file lands in destDir/dateBucket/,
// creating that subfolder on demand. The returned record holds the final
// destination after any conflict renaming.
//
// Collision avoidance guarantees no existing file is ever overwritten.
func Execute(sourcePath, destDir, filename string, mode Mode, dateBucket string) (*OperationRecord, error) {
	dir := destDir
	if dateBucket != "" {
		dir = filepath.Join(destDir, dateBucket)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, &TransferError{Filename: filename, Path: dir, Err: err}
		}
	}

	finalName := ResolveConflict(dir, filename)
	destPath := filepath.Join(dir, finalName)

	var err error
	switch mode {
	case ModeCopy:
		err = copyPreserving(sourcePath, destPath)
	default:
		err = Move(sourcePath, destPath)
	}
	if err != nil {
		return nil, &TransferError{Filename: filename, Path: destPath, Err: err}
	}

	return &OperationRecord{
		Kind:            mode,
		SourcePath:      sourcePath,
		DestinationPath: destPath,
	}, nil
}

// ResolveConflict returns a filename that is free in dir.
// If dir/filename does not exist, the filename is returned unchanged.
// Otherwise an integer suffix is inserted before the extension:
// "report.pdf" -> "report_1.pdf" -> "report_2.pdf" and so on.
func ResolveConflict(dir, filename string) string {
	if !fileExists(filepath.Join(dir, filename)) {
		return filename
	}

	ext := filepath.Ext(filename)
	base := filename[:len(filename)-len(ext)]

	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s_%d%s", base, n, ext)
		if !fileExists(filepath.Join(dir, candidate)) {
			return candidate
		}
	}
}

// Move relocates a file. os.Rename is tried first; on failure (e.g. a
// cross-device move) it falls back to copy-and-delete, so moves work
// across filesystem boundaries.
func Move(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := copyPreserving(src, dst); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		// Couldn't remove the original; don't leave both copies behind.
		os.Remove(dst)
		return err
	}
	return nil
}

// copyPreserving duplicates a file including its mode and modification time.
func copyPreserving(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return err
	}

	return os.Chtimes(dst, srcInfo.ModTime(), srcInfo.ModTime())
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
