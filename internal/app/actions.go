package app

import (
	"fmt"

	"github.com/dshills/hotkey/internal/config"
	"github.com/dshills/hotkey/internal/dom"
	"github.com/dshills/hotkey/internal/hotkey"
)

// callback builds the callback for a configured binding.
func (a *App) callback(i int, b config.Binding) (hotkey.Callback, error) {
	var run hotkey.Callback

	switch b.Action {
	case config.ActionEcho:
		run = a.echo(b)
	case config.ActionFocus:
		cb, err := a.focus(b)
		if err != nil {
			return nil, err
		}
		run = cb
	case config.ActionQuit:
		run = func(*dom.Event, *dom.Element) { a.Quit() }
	case config.ActionLua:
		cb, err := a.lua.Compile(fmt.Sprintf("binding[%d]", i), b.Script)
		if err != nil {
			return nil, err
		}
		run = cb
	default:
		return nil, fmt.Errorf("unknown action %q", b.Action)
	}

	log := a.logger.WithFields(map[string]any{"binding": i, "action": b.Action})
	return func(ev *dom.Event, el *dom.Element) {
		log.Debug("%q fired on %s", b.Keys, el)
		if b.PreventDefault {
			ev.PreventDefault()
		}
		run(ev, el)
	}, nil
}

func (a *App) echo(b config.Binding) hotkey.Callback {
	return func(ev *dom.Event, el *dom.Element) {
		msg := b.Message
		if msg == "" {
			msg = fmt.Sprintf("%s pressed", b.Keys)
		}
		a.pushStatus(fmt.Sprintf("%s: %s", el, msg))
	}
}

// focus moves focus to the first element matching the target selector at
// the time the binding fires.
func (a *App) focus(b config.Binding) (hotkey.Callback, error) {
	sel, err := dom.CompileSelector(b.Target)
	if err != nil {
		return nil, fmt.Errorf("focus target: %w", err)
	}
	return func(*dom.Event, *dom.Element) {
		matches := a.doc.Select(sel)
		if len(matches) == 0 {
			a.pushStatus(fmt.Sprintf("nothing matches %q", b.Target))
			return
		}
		_ = a.doc.Focus(matches[0])
	}, nil
}
