// Package script runs hotkey callbacks written in Lua.
//
// A compiled chunk runs each time its binding fires, with two globals set:
//
//	this   the element that received the event
//	       fields: tag, id, text, classes; methods: attr(name), has_class(name)
//	event  the keyboard event
//	       fields: key, ctrl, alt, shift, meta
//	       functions: prevent_default(), stop_propagation()
//
// The host may also provide emit(message) to report text back.
//
// States are sandboxed: only the base, table, string and math libraries are
// opened, and dofile, loadfile, load and loadstring are removed. A state is
// not goroutine-safe and must be used from the event-loop goroutine.
package script
