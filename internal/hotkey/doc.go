// Package hotkey binds key combinations to callbacks on document elements.
//
// A binding is made once: the combination text is parsed, the selector is
// resolved against the document as it is at that moment, and one keypress
// listener is attached to each matched element. Elements added later are
// not covered, and bindings are never removed.
//
//	ok := hotkey.Bind(doc, "input.search", "ctrl + alt + h", func(ev *dom.Event, el *dom.Element) {
//		fmt.Println("help requested in", el)
//	})
//
// The callback receives the event and the element that received it
// (ev.Target). A listener fires only when every modifier named in the
// combination is held and the event's key identifier equals the trigger
// key exactly. Modifiers that the combination does not name are ignored.
package hotkey
