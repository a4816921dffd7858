package executor

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestConflictResolutionNeverOverwrites(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30

	properties := gopter.NewProperties(parameters)

	properties.Property("repeated transfers of the same name land on distinct paths", prop.ForAll(
		func(count int) bool {
			srcDir, err := os.MkdirTemp("", "organizer-conflict-src-*")
			if err != nil {
				t.Logf("failed to create source dir: %v", err)
				return false
			}
			defer os.RemoveAll(srcDir)
			destDir, err := os.MkdirTemp("", "organizer-conflict-dest-*")
			if err != nil {
				t.Logf("failed to create destination dir: %v", err)
				return false
			}
			defer os.RemoveAll(destDir)

			seen := make(map[string]string)
			for i := 0; i < count; i++ {
				content := fmt.Sprintf("payload %d", i)
				src := filepath.Join(srcDir, "invoice.pdf")
				if err := os.WriteFile(src, []byte(content), 0644); err != nil {
					t.Logf("failed to write source: %v", err)
					return false
				}
				record, err := Execute(src, destDir, "invoice.pdf", ModeMove, "")
				if err != nil {
					t.Logf("transfer %d failed: %v", i, err)
					return false
				}
				if _, dup := seen[record.DestinationPath]; dup {
					t.Logf("destination reused: %s", record.DestinationPath)
					return false
				}
				seen[record.DestinationPath] = content
			}

			// Every payload survived intact at its own destination.
			for path, content := range seen {
				data, err := os.ReadFile(path)
				if err != nil {
					t.Logf("missing %s: %v", path, err)
					return false
				}
				if string(data) != content {
					t.Logf("%s was overwritten", path)
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 8),
	))

	properties.TestingRun(t)
}
