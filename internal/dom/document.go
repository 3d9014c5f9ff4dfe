package dom

import (
	"github.com/dshills/hotkey/internal/input/key"
	"github.com/dshills/hotkey/internal/logging"
)

// ErrorHandler receives errors raised by listeners during dispatch.
type ErrorHandler func(err error)

// Document owns an element tree and routes events through it.
type Document struct {
	root    *Element
	active  *Element
	onError ErrorHandler
}

// NewDocument creates a document rooted at root. A nil root is replaced
// by an empty "body" element.
func NewDocument(root *Element) *Document {
	if root == nil {
		root = NewElement("body")
	}
	return &Document{root: root}
}

// Root returns the root element.
func (d *Document) Root() *Element {
	return d.root
}

// OnError sets the handler for listener failures. Without a handler,
// failures are written to logging.Default at error level.
func (d *Document) OnError(h ErrorHandler) {
	d.onError = h
}

// QuerySelectorAll returns every element matching selector, in document
// order. The result is a snapshot: later changes to the tree do not
// affect it. A selector that matches nothing returns an empty slice.
func (d *Document) QuerySelectorAll(selector string) ([]*Element, error) {
	sel, err := CompileSelector(selector)
	if err != nil {
		return nil, err
	}
	return d.Select(sel), nil
}

// Select returns every element matching a compiled selector.
func (d *Document) Select(sel *Selector) []*Element {
	matches := make([]*Element, 0)
	d.root.walk(func(e *Element) bool {
		if sel.Matches(e) {
			matches = append(matches, e)
		}
		return true
	})
	return matches
}

// QuerySelector returns the first element matching selector, or nil.
func (d *Document) QuerySelector(selector string) (*Element, error) {
	sel, err := CompileSelector(selector)
	if err != nil {
		return nil, err
	}
	var found *Element
	d.root.walk(func(e *Element) bool {
		if sel.Matches(e) {
			found = e
			return false
		}
		return true
	})
	return found, nil
}

// GetElementByID returns the first element with the given id, or nil.
func (d *Document) GetElementByID(id string) *Element {
	if id == "" {
		return nil
	}
	var found *Element
	d.root.walk(func(e *Element) bool {
		if e.id == id {
			found = e
			return false
		}
		return true
	})
	return found
}

// Elements returns every element in document order.
func (d *Document) Elements() []*Element {
	var all []*Element
	d.root.walk(func(e *Element) bool {
		all = append(all, e)
		return true
	})
	return all
}

// Dispatch delivers ev to target and then to each ancestor until
// propagation is stopped. Listeners registered while the event is being
// dispatched are not invoked for it. A panicking listener is reported to
// the error handler and the remaining listeners still run.
//
// Returns false if a listener called PreventDefault.
func (d *Document) Dispatch(target *Element, ev *Event) bool {
	if target == nil {
		target = d.root
	}
	ev.Target = target

	// The propagation path is fixed before any listener runs.
	var path []*Element
	for n := target; n != nil; n = n.parent {
		path = append(path, n)
	}

	for _, n := range path {
		listeners := n.listeners[ev.Type]
		if len(listeners) == 0 {
			continue
		}
		snapshot := make([]Listener, len(listeners))
		copy(snapshot, listeners)

		ev.CurrentTarget = n
		for _, l := range snapshot {
			d.invoke(l, ev)
		}
		if ev.stopped {
			break
		}
	}
	ev.CurrentTarget = nil

	return !ev.defaultPrevented
}

func (d *Document) invoke(l Listener, ev *Event) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		err := &ListenerError{Type: ev.Type, Target: ev.Target, Value: r}
		if d.onError != nil {
			d.onError(err)
			return
		}
		logging.Default().WithComponent("dom").Error("unhandled: %v", err)
	}()
	l(ev)
}

// DispatchKey dispatches a keypress to the active element and returns
// the event after dispatch.
func (d *Document) DispatchKey(id string, mods key.Modifier) *Event {
	ev := NewKeyEvent(EventKeyPress, id, mods)
	d.Dispatch(d.ActiveElement(), ev)
	return ev
}
