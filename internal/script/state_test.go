package script

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dshills/hotkey/internal/dom"
	"github.com/dshills/hotkey/internal/hotkey"
	"github.com/dshills/hotkey/internal/input/key"
)

func newDoc() (*dom.Document, *dom.Element) {
	body := dom.NewElement("body")
	field := body.AppendChild(dom.NewElement("input").SetID("q").AddClass("search").SetAttr("type", "text"))
	field.SetText("hello")
	return dom.NewDocument(body), field
}

func TestCompileAndRun(t *testing.T) {
	var got []string
	s := NewState(WithEmit(func(msg string) { got = append(got, msg) }))
	defer s.Close()

	cb, err := s.Compile("greet", `
		local mods = ""
		if event.ctrl then mods = mods .. "C" end
		if event.alt then mods = mods .. "A" end
		emit(this.tag .. "#" .. this.id .. " " .. mods .. "-" .. event.key)
		emit(this:attr("type") .. " " .. tostring(this:attr("missing")))
		emit(tostring(this:has_class("search")) .. " " .. this.classes[1] .. " " .. this.text)
	`)
	if err != nil {
		t.Fatalf("Compile error = %v", err)
	}

	doc, field := newDoc()
	if !hotkey.Bind(doc, "#q", "ctrl+alt+h", cb) {
		t.Fatal("Bind returned false")
	}
	doc.Dispatch(field, dom.NewKeyEvent(dom.EventKeyPress, "h", key.ModCtrl|key.ModAlt))

	want := []string{"input#q CA-h", "text nil", "true search hello"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("emitted %q, want %q", got, want)
	}
}

func TestRunPreventDefault(t *testing.T) {
	s := NewState()
	defer s.Close()

	cb, err := s.Compile("prevent", `event.prevent_default()`)
	if err != nil {
		t.Fatal(err)
	}

	doc, field := newDoc()
	hotkey.Bind(doc, "input", "Tab", cb)
	ev := dom.NewKeyEvent(dom.EventKeyPress, key.Tab, key.ModNone)
	if doc.Dispatch(field, ev) {
		t.Error("Dispatch should report the default as prevented")
	}
}

func TestCompileError(t *testing.T) {
	s := NewState()
	defer s.Close()

	_, err := s.Compile("broken", `if then`)
	if !errors.Is(err, ErrCompile) {
		t.Errorf("Compile error = %v, want ErrCompile", err)
	}
}

func TestRuntimeErrorReachesDocument(t *testing.T) {
	s := NewState()
	defer s.Close()

	cb, err := s.Compile("fails", `error("nope")`)
	if err != nil {
		t.Fatal(err)
	}

	doc, field := newDoc()
	var reported error
	doc.OnError(func(err error) { reported = err })
	hotkey.Bind(doc, "input", "x", cb)
	doc.Dispatch(field, dom.NewKeyEvent(dom.EventKeyPress, "x", key.ModNone))

	var se *Error
	if !errors.As(reported, &se) {
		t.Fatalf("reported %v, want *script.Error", reported)
	}
	if se.Name != "fails" || !strings.Contains(se.Error(), "nope") {
		t.Errorf("script error = %v", se)
	}
}

func TestSandbox(t *testing.T) {
	s := NewState()
	defer s.Close()

	for _, src := range []string{
		`dofile("x.lua")`,
		`loadstring("return 1")()`,
		`os.exit(1)`,
		`io.write("x")`,
	} {
		cb, err := s.Compile("sandbox", src)
		if err != nil {
			t.Fatalf("Compile(%q) error = %v", src, err)
		}
		doc, field := newDoc()
		var reported error
		doc.OnError(func(err error) { reported = err })
		hotkey.Bind(doc, "input", "x", cb)
		doc.Dispatch(field, dom.NewKeyEvent(dom.EventKeyPress, "x", key.ModNone))
		if reported == nil {
			t.Errorf("%q should fail inside the sandbox", src)
		}
	}
}

func TestTimeout(t *testing.T) {
	s := NewState(WithTimeout(50 * time.Millisecond))
	defer s.Close()

	fn, err := s.L.LoadString(`while true do end`)
	if err != nil {
		t.Fatal(err)
	}
	_, field := newDoc()
	err = s.Run("spin", fn, dom.NewKeyEvent(dom.EventKeyPress, "x", key.ModNone), field)
	if !errors.Is(err, ErrExecutionTimeout) {
		t.Errorf("Run error = %v, want ErrExecutionTimeout", err)
	}
}

func TestClosedState(t *testing.T) {
	s := NewState()
	fn, _ := s.L.LoadString(`x = 1`)
	s.Close()
	s.Close()

	if !s.IsClosed() {
		t.Error("IsClosed() = false after Close")
	}
	if _, err := s.Compile("late", `x = 1`); !errors.Is(err, ErrStateClosed) {
		t.Errorf("Compile error = %v, want ErrStateClosed", err)
	}
	if err := s.Run("late", fn, nil, nil); !errors.Is(err, ErrStateClosed) {
		t.Errorf("Run error = %v, want ErrStateClosed", err)
	}
}
