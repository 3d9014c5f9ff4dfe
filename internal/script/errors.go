package script

import (
	"errors"
	"fmt"
)

// Errors for script states.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrCompile is returned when a chunk fails to compile.
	ErrCompile = errors.New("lua compile error")

	// ErrExecutionTimeout is returned when a chunk runs past its deadline.
	ErrExecutionTimeout = errors.New("lua execution timeout")
)

// Error reports a failure while running a named chunk.
type Error struct {
	Name string // Chunk name
	Err  error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("script %s: %v", e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}
