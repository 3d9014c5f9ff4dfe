package dom

import (
	"errors"
	"fmt"
)

// Document errors.
var (
	// ErrInvalidSelector indicates a selector that cannot be parsed.
	ErrInvalidSelector = errors.New("invalid selector")

	// ErrInvalidDocument indicates a document description that cannot be loaded.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrNotInDocument indicates an element that does not belong to the document.
	ErrNotInDocument = errors.New("element not in document")
)

// SelectorError describes a selector parse failure.
type SelectorError struct {
	Selector string // The selector as given
	Pos      int    // Byte offset of the failure
	Msg      string // What went wrong
}

func (e *SelectorError) Error() string {
	return fmt.Sprintf("invalid selector %q at offset %d: %s", e.Selector, e.Pos, e.Msg)
}

// Unwrap returns ErrInvalidSelector for errors.Is support.
func (e *SelectorError) Unwrap() error {
	return ErrInvalidSelector
}

// ListenerError wraps a panic raised by an event listener.
type ListenerError struct {
	Type   string   // Event type being dispatched
	Target *Element // Element the event was dispatched to
	Value  any      // Recovered panic value
}

func (e *ListenerError) Error() string {
	return fmt.Sprintf("%s listener on %s panicked: %v", e.Type, e.Target, e.Value)
}

// Unwrap returns the panic value if it is an error.
func (e *ListenerError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
