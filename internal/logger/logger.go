// Package logger configures the operational event log for Organizer.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// FileName is the append-only log artifact written next to the working
// directory. The orchestrator skips *.log entries during a run so the
// log never organizes itself.
const FileName = "file_organizer.log"

// Init wires the global zerolog logger: timestamped JSON events appended
// to the log file, plus a console writer on stderr when verbose is set.
// A log file that cannot be opened is not fatal; logging falls back to
// stderr only.
func Init(path string, verbose bool) {
	zerolog.TimeFieldFormat = time.RFC3339

	writers := make([]io.Writer, 0, 2)

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		writers = append(writers, file)
	}

	level := zerolog.InfoLevel
	if verbose {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: "15:04:05",
		})
		level = zerolog.DebugLevel
	} else if len(writers) == 0 {
		writers = append(writers, os.Stderr)
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()

	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("could not open log file")
	}
}
