// Package dom provides an in-process element tree with selector queries,
// keyboard event dispatch and focus tracking.
//
// It supplies the host primitives that hotkey bindings are attached to:
//
//   - Document.QuerySelectorAll resolves a selector to a fixed slice of
//     elements in document order
//   - Element.AddEventListener registers a listener for an event type
//   - Document.Dispatch delivers an Event to its target, then bubbles it
//     through the target's ancestors
//
// # Selectors
//
// The selector engine supports the universal selector, type selectors,
// #id, .class, [attr] and [attr=value] (value optionally quoted), the
// descendant (whitespace) and child (">") combinators, and comma-separated
// selector groups.
//
// # Threading
//
// A Document and its elements are not safe for concurrent use. All calls
// are expected on a single event-loop goroutine.
package dom
