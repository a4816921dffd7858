package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestInfoAppendsNewline(t *testing.T) {
	var buf bytes.Buffer
	out := New(Config{Writer: &buf})

	out.Info("hello %s", "world")

	if got := buf.String(); got != "hello world\n" {
		t.Errorf("Info wrote %q", got)
	}
}

func TestVerboseSuppressedByDefault(t *testing.T) {
	var buf bytes.Buffer
	out := New(Config{Writer: &buf, Verbose: false})

	out.Verbose("debug detail")

	if buf.Len() != 0 {
		t.Errorf("Verbose wrote %q with verbose disabled", buf.String())
	}
}

func TestVerboseEnabled(t *testing.T) {
	var buf bytes.Buffer
	out := New(Config{Writer: &buf, Verbose: true})

	out.Verbose("debug detail")

	if got := buf.String(); got != "debug detail\n" {
		t.Errorf("Verbose wrote %q", got)
	}
}

func TestErrorGoesToErrWriter(t *testing.T) {
	var stdout, stderr bytes.Buffer
	out := New(Config{Writer: &stdout, ErrWriter: &stderr})

	out.Error("something failed")

	if stdout.Len() != 0 {
		t.Errorf("Error leaked to stdout: %q", stdout.String())
	}
	if got := stderr.String(); got != "something failed\n" {
		t.Errorf("Error wrote %q", got)
	}
}

func TestProgressSilentOnNonTTY(t *testing.T) {
	var buf bytes.Buffer
	out := New(Config{Writer: &buf, IsTTY: false})

	out.Progress("Processing...")
	out.EndProgress()

	if buf.Len() != 0 {
		t.Errorf("Progress wrote %q on non-TTY output", buf.String())
	}
}

func TestProgressClearedBeforeInfo(t *testing.T) {
	var buf bytes.Buffer
	out := New(Config{Writer: &buf, IsTTY: true})

	out.Progress("Processing...")
	out.Info("done")

	got := buf.String()
	if !strings.Contains(got, "\r") {
		t.Errorf("expected carriage returns clearing progress, got %q", got)
	}
	if !strings.HasSuffix(got, "done\n") {
		t.Errorf("expected final message after progress clear, got %q", got)
	}
}
