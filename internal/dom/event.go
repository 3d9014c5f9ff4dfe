package dom

import "github.com/dshills/hotkey/internal/input/key"

// Event types.
const (
	EventKeyPress = "keypress"
	EventKeyDown  = "keydown"
)

// Listener handles an event delivered to an element.
type Listener func(ev *Event)

// Event is a keyboard event travelling through the element tree.
type Event struct {
	// Type is the event type, e.g. EventKeyPress.
	Type string

	// Key is the key identifier ("a", "Enter", "ArrowUp", ...).
	Key string

	// Modifiers holds the modifier keys active when the key was pressed.
	Modifiers key.Modifier

	// Target is the element the event was dispatched to.
	Target *Element

	// CurrentTarget is the element whose listeners are running.
	CurrentTarget *Element

	defaultPrevented bool
	stopped          bool
}

// NewKeyEvent creates a keyboard event of the given type.
func NewKeyEvent(typ, id string, mods key.Modifier) *Event {
	return &Event{
		Type:      typ,
		Key:       id,
		Modifiers: mods,
	}
}

// CtrlKey returns true if Control was held.
func (e *Event) CtrlKey() bool { return e.Modifiers.HasCtrl() }

// AltKey returns true if Alt was held.
func (e *Event) AltKey() bool { return e.Modifiers.HasAlt() }

// ShiftKey returns true if Shift was held.
func (e *Event) ShiftKey() bool { return e.Modifiers.HasShift() }

// MetaKey returns true if Meta was held.
func (e *Event) MetaKey() bool { return e.Modifiers.HasMeta() }

// PreventDefault cancels the host's default action for this event.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented returns true if PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// StopPropagation stops the event from bubbling past the current element.
// Remaining listeners on the current element still run.
func (e *Event) StopPropagation() {
	e.stopped = true
}
