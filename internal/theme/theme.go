// Package theme implements the light/dark toggle for the page.
package theme

import (
	"golang.org/x/net/html"

	"github.com/rdraksharam/portfolio/internal/dom"
)

// State is the active colour scheme.
type State string

const (
	Dark  State = "dark"
	Light State = "light"
)

const (
	attrTheme     = "data-theme"
	attrDarkIcon  = "data-dark-icon"
	attrLightIcon = "data-light-icon"

	ToggleClass = "theme-toggle"
	IconID      = "theme-icon"
)

// Parse maps an attribute value to a State; anything but "dark" is light.
func Parse(v string) State {
	if v == string(Dark) {
		return Dark
	}
	return Light
}

// Controller owns the theme state of one document.
type Controller struct {
	doc   *dom.Document
	icon  *html.Node
	state State
}

// New resolves the initial state from the data-theme attribute of <html>,
// then <body>, defaulting to dark.
func New(doc *dom.Document) *Controller {
	return &Controller{
		doc:   doc,
		icon:  doc.ByID(IconID),
		state: resolve(doc),
	}
}

// Mount applies the initial theme and binds the toggle button if present.
func Mount(doc *dom.Document) *Controller {
	c := New(doc)
	c.Apply()
	doc.On(doc.First(ToggleClass), "click", c.Toggle)
	return c
}

func resolve(doc *dom.Document) State {
	for _, n := range []*html.Node{doc.HTML(), doc.Body()} {
		if v, ok := dom.Attr(n, attrTheme); ok && v != "" {
			return Parse(v)
		}
	}
	return Dark
}

// State returns the current theme.
func (c *Controller) State() State {
	return c.state
}

// Toggle flips dark and light and applies the result.
func (c *Controller) Toggle() {
	if c.state == Dark {
		c.state = Light
	} else {
		c.state = Dark
	}
	c.Apply()
}

// Apply writes the state to <html> and <body> and swaps the icon.
func (c *Controller) Apply() {
	dom.SetAttr(c.doc.HTML(), attrTheme, string(c.state))
	dom.SetAttr(c.doc.Body(), attrTheme, string(c.state))

	if c.icon == nil {
		return
	}
	key := attrLightIcon
	if c.state == Dark {
		key = attrDarkIcon
	}
	icon, _ := dom.Attr(c.icon, key)
	dom.SetAttr(c.icon, "class", "fas "+icon)
}
