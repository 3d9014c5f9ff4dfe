package dom

import "strings"

type combinator int

const (
	combNone combinator = iota
	combDescendant
	combChild
)

type attrTest struct {
	name     string
	value    string
	hasValue bool
}

// compound is a sequence of simple selectors applying to one element.
type compound struct {
	tag     string // "" or "*" matches any tag
	id      string
	classes []string
	attrs   []attrTest
}

func (c *compound) matches(e *Element) bool {
	if c.tag != "" && c.tag != "*" && c.tag != e.tag {
		return false
	}
	if c.id != "" && c.id != e.id {
		return false
	}
	for _, cls := range c.classes {
		if !e.HasClass(cls) {
			return false
		}
	}
	for _, a := range c.attrs {
		v, ok := e.Attr(a.name)
		if !ok || (a.hasValue && v != a.value) {
			return false
		}
	}
	return true
}

// complexSelector is a chain of compounds joined by combinators.
// combs[i] joins parts[i-1] and parts[i]; combs[0] is combNone.
type complexSelector struct {
	parts []compound
	combs []combinator
}

func (s *complexSelector) matches(e *Element) bool {
	return s.matchAt(e, len(s.parts)-1)
}

func (s *complexSelector) matchAt(e *Element, i int) bool {
	if !s.parts[i].matches(e) {
		return false
	}
	if i == 0 {
		return true
	}
	switch s.combs[i] {
	case combChild:
		return e.parent != nil && s.matchAt(e.parent, i-1)
	default:
		for a := e.parent; a != nil; a = a.parent {
			if s.matchAt(a, i-1) {
				return true
			}
		}
		return false
	}
}

// Selector is a compiled selector list.
type Selector struct {
	text   string
	groups []complexSelector
}

// CompileSelector parses a selector. Errors are *SelectorError values
// wrapping ErrInvalidSelector.
func CompileSelector(text string) (*Selector, error) {
	p := &selectorParser{src: text}
	groups, err := p.parseList()
	if err != nil {
		return nil, err
	}
	return &Selector{text: text, groups: groups}, nil
}

// MustCompileSelector compiles a selector and panics on error.
func MustCompileSelector(text string) *Selector {
	s, err := CompileSelector(text)
	if err != nil {
		panic(err.Error())
	}
	return s
}

// String returns the selector text as given.
func (s *Selector) String() string {
	return s.text
}

// Matches returns true if e matches any selector in the list.
func (s *Selector) Matches(e *Element) bool {
	for i := range s.groups {
		if s.groups[i].matches(e) {
			return true
		}
	}
	return false
}

type selectorParser struct {
	src string
	pos int
}

func (p *selectorParser) fail(msg string) error {
	return &SelectorError{Selector: p.src, Pos: p.pos, Msg: msg}
}

func (p *selectorParser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *selectorParser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *selectorParser) skipSpace() bool {
	start := p.pos
	for !p.eof() && isSpace(p.src[p.pos]) {
		p.pos++
	}
	return p.pos > start
}

func (p *selectorParser) parseList() ([]complexSelector, error) {
	var groups []complexSelector
	for {
		p.skipSpace()
		sel, err := p.parseComplex()
		if err != nil {
			return nil, err
		}
		groups = append(groups, sel)
		p.skipSpace()
		if p.eof() {
			return groups, nil
		}
		if p.peek() != ',' {
			return nil, p.fail("unexpected character")
		}
		p.pos++
	}
}

func (p *selectorParser) parseComplex() (complexSelector, error) {
	var sel complexSelector

	first, err := p.parseCompound()
	if err != nil {
		return sel, err
	}
	sel.parts = append(sel.parts, first)
	sel.combs = append(sel.combs, combNone)

	for {
		hadSpace := p.skipSpace()
		comb := combNone
		switch c := p.peek(); {
		case c == '>':
			p.pos++
			p.skipSpace()
			comb = combChild
		case c == ',' || p.eof():
			return sel, nil
		case hadSpace:
			comb = combDescendant
		default:
			return sel, p.fail("unexpected character")
		}

		next, err := p.parseCompound()
		if err != nil {
			return sel, err
		}
		sel.parts = append(sel.parts, next)
		sel.combs = append(sel.combs, comb)
	}
}

func (p *selectorParser) parseCompound() (compound, error) {
	var c compound
	start := p.pos

	if p.peek() == '*' {
		p.pos++
		c.tag = "*"
	} else if isIdentByte(p.peek()) {
		c.tag = strings.ToLower(p.ident())
	}

	for !p.eof() {
		switch p.peek() {
		case '#':
			p.pos++
			id := p.ident()
			if id == "" {
				return c, p.fail("expected id after '#'")
			}
			c.id = id
		case '.':
			p.pos++
			cls := p.ident()
			if cls == "" {
				return c, p.fail("expected class name after '.'")
			}
			c.classes = append(c.classes, cls)
		case '[':
			p.pos++
			a, err := p.parseAttr()
			if err != nil {
				return c, err
			}
			c.attrs = append(c.attrs, a)
		default:
			if p.pos == start {
				return c, p.fail("expected selector")
			}
			return c, nil
		}
	}

	if p.pos == start {
		return c, p.fail("expected selector")
	}
	return c, nil
}

func (p *selectorParser) parseAttr() (attrTest, error) {
	var a attrTest

	p.skipSpace()
	a.name = p.ident()
	if a.name == "" {
		return a, p.fail("expected attribute name")
	}
	p.skipSpace()

	switch p.peek() {
	case ']':
		p.pos++
		return a, nil
	case '=':
		p.pos++
	default:
		return a, p.fail("expected '=' or ']'")
	}

	p.skipSpace()
	a.hasValue = true
	switch q := p.peek(); q {
	case '"', '\'':
		p.pos++
		end := strings.IndexByte(p.src[p.pos:], q)
		if end < 0 {
			return a, p.fail("unterminated string")
		}
		a.value = p.src[p.pos : p.pos+end]
		p.pos += end + 1
	default:
		a.value = p.ident()
		if a.value == "" {
			return a, p.fail("expected attribute value")
		}
	}

	p.skipSpace()
	if p.peek() != ']' {
		return a, p.fail("expected ']'")
	}
	p.pos++
	return a, nil
}

func (p *selectorParser) ident() string {
	start := p.pos
	for !p.eof() && isIdentByte(p.src[p.pos]) {
		p.pos++
	}
	return p.src[start:p.pos]
}

func isIdentByte(c byte) bool {
	return c == '-' || c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c >= 0x80
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
