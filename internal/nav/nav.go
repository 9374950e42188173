// Package nav toggles the mobile navigation menu.
package nav

import (
	"golang.org/x/net/html"

	"github.com/rdraksharam/portfolio/internal/dom"
)

const (
	ToggleClass = "nav-toggle"
	MenuClass   = "main-nav"
	OpenClass   = "open"
)

// Controller opens and closes the main navigation.
type Controller struct {
	menu *html.Node
}

// Mount binds the nav toggle to the main nav. It returns nil when either
// element is missing from the page.
func Mount(doc *dom.Document) *Controller {
	toggle, menu := doc.First(ToggleClass), doc.First(MenuClass)
	if toggle == nil || menu == nil {
		return nil
	}
	c := &Controller{menu: menu}
	doc.On(toggle, "click", c.Toggle)
	return c
}

// Toggle flips the open class on the menu.
func (c *Controller) Toggle() {
	if c == nil {
		return
	}
	dom.ToggleClass(c.menu, OpenClass)
}

// Open reports whether the menu is open.
func (c *Controller) Open() bool {
	return c != nil && dom.HasClass(c.menu, OpenClass)
}
