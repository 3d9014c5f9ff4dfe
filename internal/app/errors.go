package app

import (
	"errors"
	"fmt"
)

// ErrNoDocument indicates no document was given or configured.
var ErrNoDocument = errors.New("no document")

// BindError reports a configured binding that could not be made.
type BindError struct {
	Index    int    // Position of the binding in the configuration
	Selector string // Binding selector
	Keys     string // Binding combination text
	Err      error  // Underlying error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("binding %d (%q on %q): %v", e.Index, e.Keys, e.Selector, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *BindError) Unwrap() error {
	return e.Err
}
