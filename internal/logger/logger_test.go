package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog/log"
)

func TestInitWritesToLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	Init(path, false)
	log.Info().Str("file", "a.jpg").Msg("organized file")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "organized file") {
		t.Errorf("event missing from log: %q", content)
	}
	if !strings.Contains(content, `"time"`) {
		t.Errorf("events must be timestamped: %q", content)
	}
}

func TestInitAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	Init(path, false)
	log.Info().Msg("first event")

	Init(path, false)
	log.Info().Msg("second event")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.Contains(content, "first event") || !strings.Contains(content, "second event") {
		t.Errorf("log is not append-only: %q", content)
	}
}
