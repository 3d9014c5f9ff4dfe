package dom

import (
	"errors"
	"slices"
	"testing"
)

func TestQuerySelectorAll(t *testing.T) {
	doc := testPage(t)

	tests := []struct {
		selector string
		want     []string
	}{
		{"input", []string{"input#name.field", "input#email.field.required"}},
		{"INPUT", []string{"input#name.field", "input#email.field.required"}},
		{"#save", []string{"button#save.primary"}},
		{".field", []string{"input#name.field", "input#email.field.required"}},
		{".field.required", []string{"input#email.field.required"}},
		{"input.field#name", []string{"input#name.field"}},
		{"[type]", []string{"input#name.field", "input#email.field.required"}},
		{"[type=email]", []string{"input#email.field.required"}},
		{`[type="text"]`, []string{"input#name.field"}},
		{"[ data-role = 'last' ]", []string{"li.item"}},
		{"div input", []string{"input#name.field", "input#email.field.required"}},
		{"body li", []string{"li.item", "li.item"}},
		{"div > li", []string{}},
		{"ul > li", []string{"li.item", "li.item"}},
		{"#side > ul > .item", []string{"li.item", "li.item"}},
		{"body>div>p", []string{"p.hint"}},
		{"#save, #name", []string{"input#name.field", "button#save.primary"}},
		{"p, p.hint", []string{"p.hint"}},
		{"*", []string{
			"body", "div#main.panel", "input#name.field", "input#email.field.required", "p.hint",
			"div#side.panel", "button#save.primary", "ul", "li.item", "li.item",
		}},
		{"#missing", []string{}},
		{"table", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			got, err := doc.QuerySelectorAll(tt.selector)
			if err != nil {
				t.Fatalf("QuerySelectorAll(%q) error = %v", tt.selector, err)
			}
			if got == nil {
				t.Fatalf("QuerySelectorAll(%q) returned nil slice", tt.selector)
			}
			if names := describe(got); !slices.Equal(names, tt.want) {
				t.Errorf("QuerySelectorAll(%q) = %v, want %v", tt.selector, names, tt.want)
			}
		})
	}
}

func TestQuerySelectorAllDescendantBacktracking(t *testing.T) {
	// div.a span must match through an intermediate div without .a.
	root := NewElement("div").AddClass("a")
	mid := root.AppendChild(NewElement("div"))
	span := mid.AppendChild(NewElement("span"))
	doc := NewDocument(root)

	got, err := doc.QuerySelectorAll("div.a span")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != span {
		t.Errorf("got %v, want [span]", describe(got))
	}

	got, _ = doc.QuerySelectorAll("div.a > span")
	if len(got) != 0 {
		t.Errorf("child combinator matched %v, want none", describe(got))
	}
}

func TestCompileSelectorErrors(t *testing.T) {
	for _, sel := range []string{
		"",
		"   ",
		"#",
		".",
		"div >",
		"> div",
		"div,",
		",div",
		"[type",
		"[=x]",
		"[type=]",
		`[type="x]`,
		"div!",
		"a ~ b",
		"a:hover",
	} {
		t.Run(sel, func(t *testing.T) {
			_, err := CompileSelector(sel)
			if err == nil {
				t.Fatalf("CompileSelector(%q) should fail", sel)
			}
			if !errors.Is(err, ErrInvalidSelector) {
				t.Errorf("error = %v, want ErrInvalidSelector", err)
			}
			var se *SelectorError
			if !errors.As(err, &se) {
				t.Errorf("error should be a *SelectorError")
			}
		})
	}
}

func TestMustCompileSelectorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCompileSelector should panic")
		}
	}()
	MustCompileSelector("div >")
}

func TestSelectorString(t *testing.T) {
	s := MustCompileSelector("div > .x")
	if s.String() != "div > .x" {
		t.Errorf("String() = %q", s.String())
	}
}
