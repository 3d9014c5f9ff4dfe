// Package key provides key identifiers, modifier masks and hotkey
// combination parsing for the input system.
//
// This package defines the fundamental types for describing a hotkey:
//
//   - Modifier: A bitmask of modifier keys (Ctrl, Alt, Shift, Meta)
//   - Combination: Required modifiers plus a single trigger key
//
// # Combination Text
//
// Combinations are written as tokens joined by a plus sign, with optional
// whitespace around each separator:
//
//   - Trigger only: "p", "Enter", "F5"
//   - With modifiers: "ctrl+s", "ctrl + alt + h", "shift+alt+p"
//
// The modifier tokens are exactly "ctrl", "alt" and "shift". Any other
// token is the trigger key. Only one trigger key is kept: when several are
// given, the last one wins. ParseStrict rejects that case instead.
//
// # Key Identifiers
//
// Trigger keys are compared verbatim against the key identifier of a live
// event. Identifiers follow the KeyboardEvent.key vocabulary: printable keys
// are the character itself ("a", "A", " "), named keys use names such as
// "Enter", "Escape" or "ArrowUp".
package key
