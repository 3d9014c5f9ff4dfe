package dom

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/dshills/hotkey/internal/input/key"
	"github.com/dshills/hotkey/internal/logging"
)

func TestNewDocumentNilRoot(t *testing.T) {
	doc := NewDocument(nil)
	if doc.Root() == nil || doc.Root().Tag() != "body" {
		t.Errorf("Root() = %v, want body", doc.Root())
	}
}

func TestQuerySelectorAllIsSnapshot(t *testing.T) {
	doc := testPage(t)

	before, err := doc.QuerySelectorAll(".field")
	if err != nil {
		t.Fatal(err)
	}
	doc.Root().AppendChild(NewElement("input").AddClass("field"))

	if len(before) != 2 {
		t.Errorf("snapshot changed length to %d", len(before))
	}
	after, _ := doc.QuerySelectorAll(".field")
	if len(after) != 3 {
		t.Errorf("fresh query found %d elements, want 3", len(after))
	}
}

func TestQuerySelector(t *testing.T) {
	doc := testPage(t)

	e, err := doc.QuerySelector(".item")
	if err != nil {
		t.Fatal(err)
	}
	if e == nil || e.Tag() != "li" {
		t.Fatalf("QuerySelector(.item) = %v", e)
	}
	if _, ok := e.Attr("data-role"); ok {
		t.Error("QuerySelector should return the first match")
	}

	e, err = doc.QuerySelector("table")
	if err != nil || e != nil {
		t.Errorf("QuerySelector(table) = %v, %v; want nil, nil", e, err)
	}

	if _, err := doc.QuerySelector("div >"); !errors.Is(err, ErrInvalidSelector) {
		t.Errorf("QuerySelector error = %v, want ErrInvalidSelector", err)
	}
}

func TestGetElementByID(t *testing.T) {
	doc := testPage(t)

	if e := doc.GetElementByID("email"); e == nil || e.Tag() != "input" {
		t.Errorf("GetElementByID(email) = %v", e)
	}
	if e := doc.GetElementByID("nope"); e != nil {
		t.Errorf("GetElementByID(nope) = %v, want nil", e)
	}
	if e := doc.GetElementByID(""); e != nil {
		t.Errorf("GetElementByID(\"\") = %v, want nil", e)
	}
}

func TestDispatchBubbles(t *testing.T) {
	doc := testPage(t)
	name := doc.GetElementByID("name")
	main := doc.GetElementByID("main")

	var order []string
	record := func(label string) Listener {
		return func(ev *Event) {
			if ev.Target != name {
				t.Errorf("%s: Target = %v, want %v", label, ev.Target, name)
			}
			order = append(order, label+"@"+ev.CurrentTarget.String())
		}
	}

	name.AddEventListener(EventKeyPress, record("first"))
	name.AddEventListener(EventKeyPress, record("second"))
	main.AddEventListener(EventKeyPress, record("parent"))
	doc.Root().AddEventListener(EventKeyPress, record("root"))
	doc.Root().AddEventListener(EventKeyDown, record("other-type"))

	ok := doc.Dispatch(name, NewKeyEvent(EventKeyPress, "a", key.ModNone))
	if !ok {
		t.Error("Dispatch returned false without PreventDefault")
	}

	want := []string{
		"first@input#name.field",
		"second@input#name.field",
		"parent@div#main.panel",
		"root@body",
	}
	if !slices.Equal(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestDispatchStopPropagation(t *testing.T) {
	doc := testPage(t)
	name := doc.GetElementByID("name")

	var calls []string
	name.AddEventListener(EventKeyPress, func(ev *Event) {
		calls = append(calls, "stop")
		ev.StopPropagation()
	})
	name.AddEventListener(EventKeyPress, func(ev *Event) {
		calls = append(calls, "same-element")
	})
	doc.Root().AddEventListener(EventKeyPress, func(ev *Event) {
		calls = append(calls, "root")
	})

	doc.Dispatch(name, NewKeyEvent(EventKeyPress, "a", key.ModNone))

	if !slices.Equal(calls, []string{"stop", "same-element"}) {
		t.Errorf("calls = %v", calls)
	}
}

func TestDispatchPreventDefault(t *testing.T) {
	doc := testPage(t)
	doc.Root().AddEventListener(EventKeyPress, func(ev *Event) {
		ev.PreventDefault()
	})

	ev := NewKeyEvent(EventKeyPress, key.Tab, key.ModNone)
	if doc.Dispatch(nil, ev) {
		t.Error("Dispatch should return false after PreventDefault")
	}
	if !ev.DefaultPrevented() {
		t.Error("DefaultPrevented() = false")
	}
	if ev.Target != doc.Root() {
		t.Errorf("nil target should default to root, got %v", ev.Target)
	}
	if ev.CurrentTarget != nil {
		t.Error("CurrentTarget should be cleared after dispatch")
	}
}

func TestDispatchListenerAddedDuringDispatch(t *testing.T) {
	doc := testPage(t)
	root := doc.Root()

	var late int
	root.AddEventListener(EventKeyPress, func(ev *Event) {
		root.AddEventListener(EventKeyPress, func(ev *Event) { late++ })
	})

	doc.Dispatch(root, NewKeyEvent(EventKeyPress, "x", key.ModNone))
	if late != 0 {
		t.Errorf("listener added during dispatch ran %d times", late)
	}

	doc.Dispatch(root, NewKeyEvent(EventKeyPress, "x", key.ModNone))
	if late != 1 {
		t.Errorf("late listener ran %d times on second dispatch, want 1", late)
	}
}

func TestDispatchRecoversListenerPanic(t *testing.T) {
	doc := testPage(t)
	save := doc.GetElementByID("save")

	var reported []error
	doc.OnError(func(err error) { reported = append(reported, err) })

	boom := errors.New("boom")
	var after bool
	save.AddEventListener(EventKeyPress, func(ev *Event) { panic(boom) })
	save.AddEventListener(EventKeyPress, func(ev *Event) { after = true })

	doc.Dispatch(save, NewKeyEvent(EventKeyPress, "s", key.ModCtrl))

	if !after {
		t.Error("listener after a panicking one should still run")
	}
	if len(reported) != 1 {
		t.Fatalf("reported %d errors, want 1", len(reported))
	}
	var le *ListenerError
	if !errors.As(reported[0], &le) {
		t.Fatalf("reported error %T, want *ListenerError", reported[0])
	}
	if le.Target != save || le.Type != EventKeyPress {
		t.Errorf("ListenerError = %+v", le)
	}
	if !errors.Is(reported[0], boom) {
		t.Error("ListenerError should unwrap to the panic value")
	}
}

func TestDispatchWithoutHandlerLogsPanic(t *testing.T) {
	var buf bytes.Buffer
	logging.SetDefault(logging.New(logging.Config{Level: logging.LevelInfo, Output: &buf}))
	defer logging.SetDefault(nil)

	doc := NewDocument(nil)
	var after bool
	doc.Root().AddEventListener(EventKeyPress, func(ev *Event) { panic("boom") })
	doc.Root().AddEventListener(EventKeyPress, func(ev *Event) { after = true })

	doc.DispatchKey("x", key.ModNone)

	if !after {
		t.Error("listener after a panicking one should still run")
	}
	out := buf.String()
	for _, want := range []string{"[ERROR]", "keypress listener on body panicked: boom", "component=dom"} {
		if !strings.Contains(out, want) {
			t.Errorf("default logger output missing %q: %s", want, out)
		}
	}
}

func TestDispatchKeyTargetsActiveElement(t *testing.T) {
	doc := testPage(t)
	email := doc.GetElementByID("email")
	if err := doc.Focus(email); err != nil {
		t.Fatal(err)
	}

	var got *Event
	email.AddEventListener(EventKeyPress, func(ev *Event) { got = ev })

	ev := doc.DispatchKey("h", key.ModCtrl|key.ModAlt)
	if got != ev {
		t.Fatal("listener on active element did not receive the event")
	}
	if ev.Type != EventKeyPress || ev.Key != "h" || !ev.CtrlKey() || !ev.AltKey() || ev.ShiftKey() || ev.MetaKey() {
		t.Errorf("event = %+v", ev)
	}
}
