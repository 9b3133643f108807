package tasks

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyText    = errors.New("tasks: task text is empty")
	ErrTaskNotFound = errors.New("tasks: task not found")
)

// ValidationError rejects an add before any state changes. The UI answers
// it with the input-error signal.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("tasks: invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// CorruptionError reports a stored collection that could not be decoded.
type CorruptionError struct {
	Err error
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("tasks: corrupt stored collection: %v", e.Err)
}

func (e *CorruptionError) Unwrap() error { return e.Err }
