package dom

import (
	"slices"
	"strings"
)

// Element is a node in the document tree.
type Element struct {
	tag      string
	id       string
	classes  []string
	attrs    map[string]string
	text     string
	parent   *Element
	children []*Element

	listeners map[string][]Listener
}

// NewElement creates a detached element with the given tag name.
// Tag names are stored lowercase.
func NewElement(tag string) *Element {
	return &Element{
		tag:   strings.ToLower(tag),
		attrs: make(map[string]string),
	}
}

// Tag returns the lowercase tag name.
func (e *Element) Tag() string {
	return e.tag
}

// ID returns the element id, or "" if unset.
func (e *Element) ID() string {
	return e.id
}

// SetID sets the element id.
func (e *Element) SetID(id string) *Element {
	e.id = id
	if id == "" {
		delete(e.attrs, "id")
	} else {
		e.attrs["id"] = id
	}
	return e
}

// Classes returns a copy of the element's class list.
func (e *Element) Classes() []string {
	return slices.Clone(e.classes)
}

// AddClass adds class names, ignoring duplicates and empty names.
func (e *Element) AddClass(names ...string) *Element {
	for _, n := range names {
		if n == "" || slices.Contains(e.classes, n) {
			continue
		}
		e.classes = append(e.classes, n)
	}
	e.attrs["class"] = strings.Join(e.classes, " ")
	return e
}

// HasClass returns true if the element carries the class.
func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.classes, name)
}

// Attr returns an attribute value and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// SetAttr sets an attribute. The id and class attributes update the
// element's id and class list.
func (e *Element) SetAttr(name, value string) *Element {
	switch name {
	case "id":
		return e.SetID(value)
	case "class":
		e.classes = nil
		return e.AddClass(strings.Fields(value)...)
	}
	e.attrs[name] = value
	return e
}

// Text returns the element's own text content.
func (e *Element) Text() string {
	return e.text
}

// SetText sets the element's own text content.
func (e *Element) SetText(text string) *Element {
	e.text = text
	return e
}

// Parent returns the parent element, or nil for a root or detached element.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns a copy of the child list.
func (e *Element) Children() []*Element {
	return slices.Clone(e.children)
}

// AppendChild attaches child as the last child of e, detaching it from
// any previous parent. Returns nil without changes if child is e or one of
// its ancestors.
func (e *Element) AppendChild(child *Element) *Element {
	if child == nil || child.Contains(e) {
		return nil
	}
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = e
	e.children = append(e.children, child)
	return child
}

func (e *Element) removeChild(child *Element) {
	if i := slices.Index(e.children, child); i >= 0 {
		e.children = slices.Delete(e.children, i, i+1)
	}
	child.parent = nil
}

// Contains returns true if other is e or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

// Depth returns the number of ancestors of e.
func (e *Element) Depth() int {
	d := 0
	for n := e.parent; n != nil; n = n.parent {
		d++
	}
	return d
}

// AddEventListener registers a listener for events of type typ.
// Listeners run in registration order and are never removed.
func (e *Element) AddEventListener(typ string, l Listener) {
	if l == nil {
		return
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]Listener)
	}
	e.listeners[typ] = append(e.listeners[typ], l)
}

// ListenerCount returns the number of listeners registered for typ.
func (e *Element) ListenerCount(typ string) int {
	return len(e.listeners[typ])
}

// walk visits e and its descendants in document (pre-)order.
// Returning false from fn stops the walk.
func (e *Element) walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}

// String returns a short selector-like description, e.g. "input#name.field".
func (e *Element) String() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(e.tag)
	if e.id != "" {
		b.WriteByte('#')
		b.WriteString(e.id)
	}
	for _, c := range e.classes {
		b.WriteByte('.')
		b.WriteString(c)
	}
	return b.String()
}
