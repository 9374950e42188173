// Package dom wraps an x/net/html tree with the lookups, class helpers and
// click dispatch the page controllers need.
package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Listener handles a dispatched event.
type Listener func()

// Document is a parsed HTML page plus its registered event listeners.
// It is not safe for concurrent use.
type Document struct {
	Root      *html.Node
	listeners map[*html.Node]map[string][]Listener
}

// Parse reads a full HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return &Document{Root: root}, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// HTML returns the <html> element.
func (d *Document) HTML() *html.Node {
	return firstChildTag(d.Root, atom.Html)
}

// Body returns the <body> element.
func (d *Document) Body() *html.Node {
	return firstChildTag(d.HTML(), atom.Body)
}

// ByID returns the first element with the given id, or nil.
func (d *Document) ByID(id string) *html.Node {
	var found *html.Node
	walk(d.Root, func(n *html.Node) bool {
		if v, ok := Attr(n, "id"); ok && v == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// ByClass returns, in document order, every element carrying at least one of the classes.
func (d *Document) ByClass(classes ...string) []*html.Node {
	return FindAll(d.Root, func(n *html.Node) bool {
		for _, c := range classes {
			if HasClass(n, c) {
				return true
			}
		}
		return false
	})
}

// First returns the first element carrying the class, or nil.
func (d *Document) First(class string) *html.Node {
	var found *html.Node
	walk(d.Root, func(n *html.Node) bool {
		if HasClass(n, class) {
			found = n
			return false
		}
		return true
	})
	return found
}

// ByTag returns every element with the tag name, in document order.
func (d *Document) ByTag(tag string) []*html.Node {
	return ByTag(d.Root, tag)
}

// On registers fn for event on n. A nil node is ignored.
func (d *Document) On(n *html.Node, event string, fn Listener) {
	if n == nil || fn == nil {
		return
	}
	if d.listeners == nil {
		d.listeners = make(map[*html.Node]map[string][]Listener)
	}
	byEvent, ok := d.listeners[n]
	if !ok {
		byEvent = make(map[string][]Listener)
		d.listeners[n] = byEvent
	}
	byEvent[event] = append(byEvent[event], fn)
}

// Dispatch runs the listeners registered for event on n in registration order.
// It reports whether any listener ran.
func (d *Document) Dispatch(n *html.Node, event string) bool {
	fns := d.listeners[n][event]
	for _, fn := range fns {
		fn()
	}
	return len(fns) > 0
}

// Click dispatches a click event on n.
func (d *Document) Click(n *html.Node) bool {
	return d.Dispatch(n, "click")
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.Root)
}

// String renders the document, returning an empty string on failure.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// FindAll returns the elements under n (n included) matching pred, in document order.
func FindAll(n *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	walk(n, func(c *html.Node) bool {
		if pred(c) {
			out = append(out, c)
		}
		return true
	})
	return out
}

// ByTag returns the elements under n with the tag name.
func ByTag(n *html.Node, tag string) []*html.Node {
	return FindAll(n, func(c *html.Node) bool { return c.Data == tag })
}

// walk visits elements depth-first; visit returns false to stop.
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if n == nil {
		return true
	}
	if n.Type == html.ElementNode && !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}

func firstChildTag(n *html.Node, a atom.Atom) *html.Node {
	if n == nil {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			return c
		}
	}
	return nil
}
