package dom

// focusableTags are focusable without a tabindex attribute.
var focusableTags = map[string]bool{
	"a":        true,
	"button":   true,
	"input":    true,
	"select":   true,
	"textarea": true,
}

// IsFocusable returns true if the element can receive focus.
// Elements with tabindex="-1" are excluded from focus cycling.
func IsFocusable(e *Element) bool {
	if ti, ok := e.Attr("tabindex"); ok {
		return ti != "-1"
	}
	return focusableTags[e.tag]
}

// ActiveElement returns the focused element. It falls back to the root
// when nothing is focused or the focused element left the tree.
func (d *Document) ActiveElement() *Element {
	if d.active == nil || !d.root.Contains(d.active) {
		return d.root
	}
	return d.active
}

// Focus makes e the active element. A nil e clears focus.
func (d *Document) Focus(e *Element) error {
	if e != nil && !d.root.Contains(e) {
		return ErrNotInDocument
	}
	d.active = e
	return nil
}

// Focusable returns the focusable elements in document order.
func (d *Document) Focusable() []*Element {
	var out []*Element
	d.root.walk(func(e *Element) bool {
		if IsFocusable(e) {
			out = append(out, e)
		}
		return true
	})
	return out
}

// FocusNext moves focus to the next focusable element, wrapping around.
// Returns the newly focused element, or nil if nothing is focusable.
func (d *Document) FocusNext() *Element {
	return d.cycleFocus(1)
}

// FocusPrev moves focus to the previous focusable element, wrapping around.
func (d *Document) FocusPrev() *Element {
	return d.cycleFocus(-1)
}

func (d *Document) cycleFocus(step int) *Element {
	ring := d.Focusable()
	if len(ring) == 0 {
		return nil
	}

	current := -1
	active := d.ActiveElement()
	for i, e := range ring {
		if e == active {
			current = i
			break
		}
	}

	var next int
	switch {
	case current < 0 && step > 0:
		next = 0
	case current < 0:
		next = len(ring) - 1
	default:
		next = (current + step + len(ring)) % len(ring)
	}

	d.active = ring[next]
	return d.active
}
