package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/hotkey/internal/dom"
)

// elementTable exposes an element to Lua as a read-only snapshot plus
// accessor functions bound to the live element.
func elementTable(L *lua.LState, el *dom.Element) lua.LValue {
	if el == nil {
		return lua.LNil
	}

	t := L.NewTable()
	t.RawSetString("tag", lua.LString(el.Tag()))
	t.RawSetString("id", lua.LString(el.ID()))
	t.RawSetString("text", lua.LString(el.Text()))

	classes := L.NewTable()
	for _, c := range el.Classes() {
		classes.Append(lua.LString(c))
	}
	t.RawSetString("classes", classes)

	// Methods are called as this:attr(name), so the name is argument 2.
	t.RawSetString("attr", L.NewFunction(func(L *lua.LState) int {
		v, ok := el.Attr(L.CheckString(2))
		if !ok {
			L.Push(lua.LNil)
			return 1
		}
		L.Push(lua.LString(v))
		return 1
	}))
	t.RawSetString("has_class", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LBool(el.HasClass(L.CheckString(2))))
		return 1
	}))

	return t
}

// eventTable exposes a keyboard event to Lua.
func eventTable(L *lua.LState, ev *dom.Event) lua.LValue {
	if ev == nil {
		return lua.LNil
	}

	t := L.NewTable()
	t.RawSetString("type", lua.LString(ev.Type))
	t.RawSetString("key", lua.LString(ev.Key))
	t.RawSetString("ctrl", lua.LBool(ev.CtrlKey()))
	t.RawSetString("alt", lua.LBool(ev.AltKey()))
	t.RawSetString("shift", lua.LBool(ev.ShiftKey()))
	t.RawSetString("meta", lua.LBool(ev.MetaKey()))

	t.RawSetString("prevent_default", L.NewFunction(func(L *lua.LState) int {
		ev.PreventDefault()
		return 0
	}))
	t.RawSetString("stop_propagation", L.NewFunction(func(L *lua.LState) int {
		ev.StopPropagation()
		return 0
	}))

	return t
}
