package hotkey

import (
	"slices"

	"github.com/google/uuid"

	"github.com/dshills/hotkey/internal/dom"
	"github.com/dshills/hotkey/internal/input/key"
	"github.com/dshills/hotkey/internal/logging"
)

// Callback is invoked when a bound combination is pressed. el is the
// element that received the event.
type Callback func(ev *dom.Event, el *dom.Element)

// Binding records one successful call to Bind or Prepare. Apart from
// being attached once, it does not change.
type Binding struct {
	id          string
	selector    string
	combination key.Combination
	elements    []*dom.Element
	callback    Callback
	logger      *logging.Logger
	attached    bool
}

func newBinding(selector string, combo key.Combination, elements []*dom.Element, cb Callback, logger *logging.Logger) *Binding {
	return &Binding{
		id:          uuid.NewString(),
		selector:    selector,
		combination: combo,
		elements:    elements,
		callback:    cb,
		logger:      logger,
	}
}

// Attach adds the keypress listener to every element resolved by
// Prepare. Calls after the first do nothing.
func (b *Binding) Attach() {
	if b.attached {
		return
	}
	b.attached = true

	l := b.listener(b.callback)
	for _, el := range b.elements {
		el.AddEventListener(dom.EventKeyPress, l)
	}

	b.logger.WithFields(map[string]any{
		"binding":  b.id,
		"elements": len(b.elements),
	}).Debug("bound %s to %q", b.combination, b.selector)
}

// Attached reports whether Attach has run.
func (b *Binding) Attached() bool {
	return b.attached
}

// ID returns the unique identifier of the binding.
func (b *Binding) ID() string {
	return b.id
}

// Selector returns the selector the binding was made with.
func (b *Binding) Selector() string {
	return b.selector
}

// Combination returns the parsed combination.
func (b *Binding) Combination() key.Combination {
	return b.combination
}

// Elements returns the elements resolved at bind time.
func (b *Binding) Elements() []*dom.Element {
	return slices.Clone(b.elements)
}

// Len returns the number of elements a listener was attached to.
func (b *Binding) Len() int {
	return len(b.elements)
}

// listener returns the keypress listener shared by every element of the
// binding.
func (b *Binding) listener(cb Callback) dom.Listener {
	combo := b.combination
	return func(ev *dom.Event) {
		if !combo.Matches(ev.Key, ev.Modifiers) {
			return
		}
		cb(ev, ev.Target)
	}
}
