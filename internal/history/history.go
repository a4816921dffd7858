// Package history provides the in-memory undo stack for Organizer file operations.
package history

import (
	"os"

	"github.com/rs/zerolog/log"

	"organizer/internal/executor"
)

// Stack is an ordered sequence of operation records, newest last.
// Records survive across runs within a process, so operations from
// earlier runs remain undoable in stack order until exhausted. Nothing
// is persisted: history is gone when the process exits.
type Stack struct {
	ops []*executor.OperationRecord
}

// NewStack returns an empty undo stack.
func NewStack() *Stack {
	return &Stack{}
}

// Record appends an operation record to the stack.
func (s *Stack) Record(op *executor.OperationRecord) {
	s.ops = append(s.ops, op)
}

// Len returns the number of undoable operations.
func (s *Stack) Len() int {
	return len(s.ops)
}

// UndoLast reverses the most recent operation.
// The record is discarded whether or not the undo succeeds, so a failed
// undo is never retried. Returns false when there is nothing to undo or
// the destination no longer exists (e.g. deleted externally).
func (s *Stack) UndoLast() bool {
	if len(s.ops) == 0 {
		log.Warn().Msg("no operations to undo")
		return false
	}

	op := s.ops[len(s.ops)-1]
	s.ops = s.ops[:len(s.ops)-1]

	if _, err := os.Stat(op.DestinationPath); err != nil {
		log.Warn().
			Str("destination", op.DestinationPath).
			Msg("cannot undo: destination no longer exists")
		return false
	}

	switch op.Kind {
	case executor.ModeMove:
		if err := executor.Move(op.DestinationPath, op.SourcePath); err != nil {
			log.Error().
				Err(err).
				Str("destination", op.DestinationPath).
				Str("source", op.SourcePath).
				Msg("undo move failed")
			return false
		}
		log.Info().
			Str("from", op.DestinationPath).
			Str("to", op.SourcePath).
			Msg("undone move")
		return true
	case executor.ModeCopy:
		// The original was never touched by a copy; deleting the
		// duplicate restores the previous state.
		if err := os.Remove(op.DestinationPath); err != nil {
			log.Error().
				Err(err).
				Str("destination", op.DestinationPath).
				Msg("undo copy failed")
			return false
		}
		log.Info().
			Str("removed", op.DestinationPath).
			Msg("undone copy")
		return true
	default:
		return false
	}
}
