package dom

import "testing"

// testPage builds:
//
//	body
//	  div#main.panel
//	    input#name.field[type=text]
//	    input#email.field.required[type=email]
//	    p.hint
//	  div#side.panel
//	    button#save.primary
//	    ul
//	      li.item
//	      li.item[data-role=last]
func testPage(t *testing.T) *Document {
	t.Helper()

	body := NewElement("body")
	main := body.AppendChild(NewElement("div").SetID("main").AddClass("panel"))
	main.AppendChild(NewElement("input").SetID("name").AddClass("field").SetAttr("type", "text"))
	main.AppendChild(NewElement("input").SetID("email").AddClass("field", "required").SetAttr("type", "email"))
	main.AppendChild(NewElement("p").AddClass("hint"))

	side := body.AppendChild(NewElement("div").SetID("side").AddClass("panel"))
	side.AppendChild(NewElement("button").SetID("save").AddClass("primary"))
	list := side.AppendChild(NewElement("ul"))
	list.AppendChild(NewElement("li").AddClass("item"))
	list.AppendChild(NewElement("li").AddClass("item").SetAttr("data-role", "last"))

	return NewDocument(body)
}

func describe(elems []*Element) []string {
	out := make([]string, len(elems))
	for i, e := range elems {
		out[i] = e.String()
	}
	return out
}
