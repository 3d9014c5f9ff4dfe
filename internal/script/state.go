package script

import (
	"context"
	"errors"
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/hotkey/internal/dom"
	"github.com/dshills/hotkey/internal/hotkey"
)

// DefaultTimeout bounds a single callback run.
const DefaultTimeout = 2 * time.Second

// EmitFunc receives messages passed to emit() from Lua.
type EmitFunc func(msg string)

// State wraps a sandboxed gopher-lua state.
type State struct {
	L *lua.LState

	timeout time.Duration
	emit    EmitFunc
	closed  bool
}

// Option configures a State.
type Option func(*State)

// WithTimeout sets the per-callback execution timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *State) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithEmit installs the host function behind emit().
func WithEmit(fn EmitFunc) Option {
	return func(s *State) {
		s.emit = fn
	}
}

// NewState creates a sandboxed Lua state.
func NewState(opts ...Option) *State {
	s := &State{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(s)
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)
	s.L = L
	s.installHost()
	return s
}

// openSafeLibraries opens only the libraries a callback needs.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
}

func (s *State) installHost() {
	s.L.SetGlobal("emit", s.L.NewFunction(func(L *lua.LState) int {
		msg := L.CheckString(1)
		if s.emit != nil {
			s.emit(msg)
		}
		return 0
	}))
}

// Close releases the Lua state. Compiled callbacks fail afterwards.
func (s *State) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.L.Close()
}

// IsClosed returns true if Close was called.
func (s *State) IsClosed() bool {
	return s.closed
}

// Compile compiles src and returns a callback that runs it. Runtime
// failures panic with an *Error so the document routes them to its
// unhandled-error handler.
func (s *State) Compile(name, src string) (hotkey.Callback, error) {
	if s.closed {
		return nil, ErrStateClosed
	}

	fn, err := s.L.LoadString(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCompile, name, err)
	}

	return func(ev *dom.Event, el *dom.Element) {
		if err := s.Run(name, fn, ev, el); err != nil {
			panic(err)
		}
	}, nil
}

// Run executes a compiled chunk with this and event bound.
func (s *State) Run(name string, fn *lua.LFunction, ev *dom.Event, el *dom.Element) error {
	if s.closed {
		return &Error{Name: name, Err: ErrStateClosed}
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	s.L.SetContext(ctx)
	defer s.L.RemoveContext()

	s.L.SetGlobal("this", elementTable(s.L, el))
	s.L.SetGlobal("event", eventTable(s.L, ev))
	defer func() {
		s.L.SetGlobal("this", lua.LNil)
		s.L.SetGlobal("event", lua.LNil)
	}()

	s.L.Push(fn)
	if err := s.L.PCall(0, 0, nil); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return &Error{Name: name, Err: ErrExecutionTimeout}
		}
		return &Error{Name: name, Err: err}
	}
	return nil
}
