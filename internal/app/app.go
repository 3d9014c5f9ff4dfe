// Package app wires a document, its configured hotkey bindings and the
// default key handling together. Frontends feed key presses into an App
// and render its element tree and status lines.
package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/hotkey/internal/config"
	"github.com/dshills/hotkey/internal/dom"
	"github.com/dshills/hotkey/internal/hotkey"
	"github.com/dshills/hotkey/internal/input/key"
	"github.com/dshills/hotkey/internal/logging"
	"github.com/dshills/hotkey/internal/script"
)

// Options configures an App.
type Options struct {
	// Config holds the bindings to make.
	Config config.Config

	// Document overrides Config.Document when set.
	Document *dom.Document

	// Logger defaults to logging.NullLogger.
	Logger *logging.Logger
}

// App owns a document and the bindings made on it.
// It is not safe for concurrent use.
type App struct {
	cfg      config.Config
	doc      *dom.Document
	logger   *logging.Logger
	binder   *hotkey.Binder
	lua      *script.State
	bindings []*hotkey.Binding

	status   []string
	quitting bool
}

// New loads the document if needed and makes every configured binding.
// A binding that cannot be made fails the whole call.
func New(opts Options) (*App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NullLogger
	}

	doc := opts.Document
	if doc == nil {
		if opts.Config.Document == "" {
			return nil, ErrNoDocument
		}
		var err error
		doc, err = dom.LoadFile(opts.Config.Document)
		if err != nil {
			return nil, err
		}
	}

	cfg := opts.Config
	if cfg.StatusLines < 1 {
		cfg.StatusLines = config.Default().StatusLines
	}

	a := &App{
		cfg:    cfg,
		doc:    doc,
		logger: logger.WithComponent("app"),
		binder: hotkey.NewBinder(
			hotkey.WithLogger(logger.WithComponent("binder")),
			hotkey.WithStrict(cfg.Strict),
		),
	}
	a.lua = script.NewState(script.WithEmit(a.pushStatus))

	if err := a.bindAll(); err != nil {
		a.Close()
		return nil, err
	}
	doc.OnError(a.reportError)

	a.logger.Info("ready with %d bindings on %d elements", len(a.bindings), len(doc.Elements()))
	return a, nil
}

// bindAll prepares every configured binding and attaches them only if
// all of them could be made, so a failed New leaves the document as it
// was.
func (a *App) bindAll() error {
	var errs []error
	prepared := make([]*hotkey.Binding, 0, len(a.cfg.Bindings))
	for i, b := range a.cfg.Bindings {
		binding, err := a.prepare(i, b)
		if err != nil {
			errs = append(errs, &BindError{Index: i, Selector: b.Selector, Keys: b.Keys, Err: err})
			continue
		}
		prepared = append(prepared, binding)
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	for i, binding := range prepared {
		binding.Attach()
		if binding.Len() == 0 {
			a.logger.Warn("binding %d: selector %q matched no elements", i, binding.Selector())
		}
	}
	a.bindings = prepared
	return nil
}

func (a *App) prepare(i int, b config.Binding) (*hotkey.Binding, error) {
	cb, err := a.callback(i, b)
	if err != nil {
		return nil, err
	}
	return a.binder.Prepare(a.doc, b.Selector, b.Keys, cb)
}

// HandleKey dispatches a keypress to the active element and then runs
// the default action for the key unless a listener prevented it:
// Tab moves focus forward, shift+Tab moves it back and ctrl+c quits.
func (a *App) HandleKey(id string, mods key.Modifier) *dom.Event {
	ev := a.doc.DispatchKey(id, mods)
	if ev.DefaultPrevented() {
		return ev
	}

	switch {
	case id == key.Tab && mods.HasShift():
		a.doc.FocusPrev()
	case id == key.Tab:
		a.doc.FocusNext()
	case id == "c" && mods.HasCtrl():
		a.Quit()
	}
	return ev
}

// Quit marks the app as quitting.
func (a *App) Quit() {
	a.quitting = true
}

// Quitting returns true once a quit was requested.
func (a *App) Quitting() bool {
	return a.quitting
}

// Document returns the document.
func (a *App) Document() *dom.Document {
	return a.doc
}

// Bindings returns the bindings made at startup.
func (a *App) Bindings() []*hotkey.Binding {
	out := make([]*hotkey.Binding, len(a.bindings))
	copy(out, a.bindings)
	return out
}

// Status returns the most recent status messages, oldest first.
func (a *App) Status() []string {
	out := make([]string, len(a.status))
	copy(out, a.status)
	return out
}

func (a *App) pushStatus(msg string) {
	a.status = append(a.status, msg)
	if over := len(a.status) - a.cfg.StatusLines; over > 0 {
		a.status = a.status[over:]
	}
}

func (a *App) reportError(err error) {
	a.logger.Error("callback failed: %v", err)
	a.pushStatus("error: " + err.Error())
}

// Line is one row of the rendered element tree.
type Line struct {
	Depth     int
	Label     string
	Focused   bool
	Listeners int
}

// Lines returns the element tree in document order.
func (a *App) Lines() []Line {
	active := a.doc.ActiveElement()
	elems := a.doc.Elements()
	lines := make([]Line, 0, len(elems))
	for _, e := range elems {
		label := e.String()
		if t := strings.TrimSpace(e.Text()); t != "" {
			label = fmt.Sprintf("%s %q", label, t)
		}
		lines = append(lines, Line{
			Depth:     e.Depth(),
			Label:     label,
			Focused:   e == active,
			Listeners: e.ListenerCount(dom.EventKeyPress),
		})
	}
	return lines
}

// Close releases resources held by the app.
func (a *App) Close() {
	if a.lua != nil {
		a.lua.Close()
	}
}
