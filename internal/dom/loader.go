package dom

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Node is the serialized form of an element and its subtree.
//
//	tag: body
//	children:
//	  - tag: input
//	    id: search
//	    class: [field, search]
//	    attrs: {type: text}
type Node struct {
	Tag      string            `yaml:"tag"`
	ID       string            `yaml:"id,omitempty"`
	Class    ClassList         `yaml:"class,omitempty"`
	Attrs    map[string]string `yaml:"attrs,omitempty"`
	Text     string            `yaml:"text,omitempty"`
	Children []Node            `yaml:"children,omitempty"`
}

// ClassList accepts either a space-separated string or a sequence.
type ClassList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *ClassList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*c = strings.Fields(value.Value)
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		*c = list
		return nil
	default:
		return fmt.Errorf("line %d: class must be a string or a list", value.Line)
	}
}

// Build creates the element tree described by n.
func (n Node) Build() (*Element, error) {
	tag := strings.TrimSpace(n.Tag)
	if tag == "" {
		return nil, fmt.Errorf("%w: element without tag", ErrInvalidDocument)
	}

	e := NewElement(tag)
	for name, value := range n.Attrs {
		e.SetAttr(name, value)
	}
	if n.ID != "" {
		e.SetID(n.ID)
	}
	e.AddClass(n.Class...)
	e.SetText(n.Text)

	for i, child := range n.Children {
		c, err := child.Build()
		if err != nil {
			return nil, fmt.Errorf("%s child %d: %w", e, i, err)
		}
		e.AppendChild(c)
	}
	return e, nil
}

// Load reads a YAML document description.
func Load(r io.Reader) (*Document, error) {
	var root Node
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&root); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty input", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	e, err := root.Build()
	if err != nil {
		return nil, err
	}
	return NewDocument(e), nil
}

// LoadFile reads a YAML document description from path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()

	doc, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("loading document %s: %w", path, err)
	}
	return doc, nil
}
