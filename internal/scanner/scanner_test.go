package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestScanReturnsTopLevelFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.jpg", "photo")
	writeFile(t, dir, "b.txt", "text")

	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "subdir"), "nested.txt", "nested")

	files, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("Scan returned %d entries, want 2 (no recursion, no dirs)", len(files))
	}
	names := map[string]bool{}
	for _, f := range files {
		names[f.Name] = true
		if !filepath.IsAbs(f.FullPath) {
			t.Errorf("FullPath %q is not absolute", f.FullPath)
		}
	}
	if !names["a.jpg"] || !names["b.txt"] {
		t.Errorf("unexpected entries: %v", names)
	}
}

func TestScanCapturesSizeAndModTime(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "sized.bin", "12345")

	mtime := time.Date(2025, 3, 14, 10, 0, 0, 0, time.Local)
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatal(err)
	}

	files, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d entries, want 1", len(files))
	}
	if files[0].Size != 5 {
		t.Errorf("Size = %d, want 5", files[0].Size)
	}
	if !files[0].ModTime.Equal(mtime) {
		t.Errorf("ModTime = %v, want %v", files[0].ModTime, mtime)
	}
}

func TestScanSkipsSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := writeFile(t, dir, "real.txt", "content")

	if err := os.Symlink(target, filepath.Join(dir, "link.txt")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	files, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(files) != 1 || files[0].Name != "real.txt" {
		t.Errorf("expected only real.txt, got %v", files)
	}
}

func TestScanMissingDirectory(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"))

	var scanErr *ScanError
	if !errors.As(err, &scanErr) || scanErr.Type != DirectoryNotFound {
		t.Errorf("expected DirectoryNotFound ScanError, got %v", err)
	}
}

func TestScanPathIsAFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "file.txt", "x")

	_, err := Scan(path)
	var scanErr *ScanError
	if !errors.As(err, &scanErr) || scanErr.Type != NotADirectory {
		t.Errorf("expected NotADirectory ScanError, got %v", err)
	}
}

func TestScanEmptyDirectory(t *testing.T) {
	files, err := Scan(t.TempDir())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no entries, got %d", len(files))
	}
}
