// Package orchestrator coordinates the file organization workflow for Organizer.
package orchestrator

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"organizer/internal/classifier"
	"organizer/internal/config"
	"organizer/internal/exclude"
	"organizer/internal/executor"
	"organizer/internal/history"
	"organizer/internal/scanner"
)

// dateBucketLayout is the calendar-date folder name used when organizing by date.
const dateBucketLayout = "2006-01-02"

// logSuffix identifies the process's own log artifact, which is never
// organized so repeated runs don't shuffle operational files around.
const logSuffix = ".log"

// RunStats aggregates counters for a single run.
// Reset at the start of every run, mutated only during it, and
// read-only afterward until the next run.
type RunStats struct {
	TotalFiles     int
	OrganizedFiles int
	SkippedFiles   int
	TotalSize      int64
	ByCategory     map[string]int
}

// Organizer owns the configuration, exclude filter, and undo history for
// an organizing session. It is not safe for concurrent runs; the design
// assumes at most one run active at a time against a given directory.
type Organizer struct {
	cfg     *config.Configuration
	history *history.Stack
	last    *RunStats

	// ConfigPath, when set, is where pattern and category changes are persisted.
	ConfigPath string
}

// New creates an Organizer around the given configuration.
func New(cfg *config.Configuration) *Organizer {
	return &Organizer{
		cfg:     cfg,
		history: history.NewStack(),
	}
}

// Config returns the configuration owned by this Organizer.
func (o *Organizer) Config() *config.Configuration {
	return o.cfg
}

// History returns the undo stack owned by this Organizer.
func (o *Organizer) History() *history.Stack {
	return o.history
}

// Run organizes the top level of directory into category folders.
// When organizeByDate is set, files are split further into per-day
// subfolders named after their modification date. When copyInsteadOfMove
// is set, originals are left in place.
//
// The directory is scanned before anything is created or moved, so an
// inaccessible directory aborts with no mutation. Per-file transfer
// failures are logged, counted as skips, and never abort the run.
func (o *Organizer) Run(directory string, organizeByDate, copyInsteadOfMove bool) (*RunStats, error) {
	filter, err := exclude.NewFilter(o.cfg.ExcludePatterns)
	if err != nil {
		return nil, err
	}

	entries, err := scanner.Scan(directory)
	if err != nil {
		return nil, err
	}

	stats := &RunStats{ByCategory: make(map[string]int)}
	for _, rule := range o.cfg.Categories {
		stats.ByCategory[rule.Name] = 0
	}
	stats.ByCategory[classifier.Others] = 0

	// One folder per category, plus Others.
	for _, rule := range o.cfg.Categories {
		if err := os.MkdirAll(filepath.Join(directory, rule.Name), 0755); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(filepath.Join(directory, classifier.Others), 0755); err != nil {
		return nil, err
	}

	mode := executor.ModeMove
	if copyInsteadOfMove {
		mode = executor.ModeCopy
	}

	for _, entry := range entries {
		if strings.HasSuffix(entry.Name, logSuffix) {
			continue
		}

		if filter.Matches(entry.Name) {
			stats.SkippedFiles++
			log.Info().Str("file", entry.Name).Msg("skipped file (excluded pattern)")
			continue
		}

		stats.TotalFiles++
		stats.TotalSize += entry.Size

		category := classifier.Classify(entry.Name, o.cfg.Categories)

		dateBucket := ""
		if organizeByDate {
			dateBucket = entry.ModTime.Format(dateBucketLayout)
		}

		op, err := executor.Execute(entry.FullPath, filepath.Join(directory, category), entry.Name, mode, dateBucket)
		if err != nil {
			stats.SkippedFiles++
			log.Error().Err(err).Str("file", entry.Name).Msg("error organizing file")
			continue
		}

		o.history.Record(op)
		stats.OrganizedFiles++
		stats.ByCategory[category]++

		log.Info().
			Str("file", entry.Name).
			Str("destination", op.DestinationPath).
			Str("mode", string(op.Kind)).
			Msg("organized file")
	}

	o.last = stats
	return stats, nil
}

// UndoLast reverses the most recent recorded operation.
// Returns false when there is nothing to undo or the undo failed;
// callers must treat false as "nothing changed".
func (o *Organizer) UndoLast() bool {
	return o.history.UndoLast()
}

// AddExcludePattern validates and appends an exclude pattern, then
// persists the configuration if a config path is set.
func (o *Organizer) AddExcludePattern(pattern string) error {
	if err := o.cfg.AddExcludePattern(pattern); err != nil {
		return err
	}
	log.Info().Str("pattern", pattern).Msg("added exclude pattern")
	return o.persist()
}

// RemoveExcludePattern removes an exclude pattern by position, then
// persists the configuration if a config path is set.
func (o *Organizer) RemoveExcludePattern(index int) error {
	if err := o.cfg.RemoveExcludePattern(index); err != nil {
		return err
	}
	log.Info().Int("index", index).Msg("removed exclude pattern")
	return o.persist()
}

// SaveConfig writes the configuration to the configured path.
func (o *Organizer) SaveConfig() error {
	if o.ConfigPath == "" {
		return nil
	}
	if err := config.Save(o.cfg, o.ConfigPath); err != nil {
		log.Error().Err(err).Str("path", o.ConfigPath).Msg("error saving configuration")
		return err
	}
	log.Info().Str("path", o.ConfigPath).Msg("configuration saved")
	return nil
}

func (o *Organizer) persist() error {
	return o.SaveConfig()
}
