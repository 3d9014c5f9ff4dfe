package key

import (
	"errors"
	"fmt"
)

// Combination errors.
var (
	// ErrNoTrigger indicates the combination has no non-modifier token.
	ErrNoTrigger = errors.New("no trigger key in combination")

	// ErrMultipleTriggers indicates more than one non-modifier token was
	// given to ParseStrict.
	ErrMultipleTriggers = errors.New("more than one trigger key in combination")
)

// InvalidCombinationError reports combination text that cannot be used as
// a hotkey.
type InvalidCombinationError struct {
	Text string // The combination text as given
	Err  error  // ErrNoTrigger or ErrMultipleTriggers
}

func (e *InvalidCombinationError) Error() string {
	return fmt.Sprintf("invalid key combination %q: %v", e.Text, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *InvalidCombinationError) Unwrap() error {
	return e.Err
}

// IsInvalidCombination reports whether err is an InvalidCombinationError.
func IsInvalidCombination(err error) bool {
	var ice *InvalidCombinationError
	return errors.As(err, &ice)
}
