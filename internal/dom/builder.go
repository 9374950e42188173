package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Option configures an element built by Element.
type Option func(*html.Node)

// Element builds a detached element. Text and attribute values are stored
// verbatim and escaped when the tree is rendered.
func Element(tag string, opts ...Option) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Class sets the class attribute, skipping empty names.
func Class(names ...string) Option {
	return func(n *html.Node) {
		kept := make([]string, 0, len(names))
		for _, name := range names {
			if name != "" {
				kept = append(kept, name)
			}
		}
		SetAttr(n, "class", strings.Join(kept, " "))
	}
}

// WithAttr sets an attribute.
func WithAttr(key, val string) Option {
	return func(n *html.Node) { SetAttr(n, key, val) }
}

// Text appends a text node.
func Text(s string) Option {
	return func(n *html.Node) {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: s})
	}
}

// Append appends the given children; nil entries are skipped.
func Append(children ...*html.Node) Option {
	return func(n *html.Node) {
		for _, c := range children {
			if c != nil {
				n.AppendChild(c)
			}
		}
	}
}

// Each builds one child per item.
func Each[T any](items []T, build func(T) *html.Node) Option {
	return func(n *html.Node) {
		for _, it := range items {
			if c := build(it); c != nil {
				n.AppendChild(c)
			}
		}
	}
}
