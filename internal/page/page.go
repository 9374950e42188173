// Package page runs the page-ready sequence: render content, bind the
// controllers, then attach the scroll observers.
package page

import (
	"time"

	"github.com/rdraksharam/portfolio/internal/content"
	"github.com/rdraksharam/portfolio/internal/dom"
	"github.com/rdraksharam/portfolio/internal/nav"
	"github.com/rdraksharam/portfolio/internal/render"
	"github.com/rdraksharam/portfolio/internal/theme"
	"github.com/rdraksharam/portfolio/internal/visibility"
)

// Options tune Mount.
type Options struct {
	// Now stamps the footer year. Zero means time.Now.
	Now time.Time
	// Host drives the scroll observers. Nil leaves them out, as on the server.
	Host visibility.Host
}

// Page holds the controllers bound to a mounted document.
type Page struct {
	Doc       *dom.Document
	Theme     *theme.Controller
	Nav       *nav.Controller
	Slide     *visibility.Observer
	Fade      *visibility.Observer
	Highlight *visibility.Observer
}

// Mount populates doc from m and binds every behavior the page supports.
func Mount(doc *dom.Document, m *content.Model, opts Options) *Page {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	render.All(doc, m, now)

	p := &Page{
		Doc:   doc,
		Theme: theme.Mount(doc),
		Nav:   nav.Mount(doc),
	}

	if opts.Host != nil {
		p.Slide = visibility.Reveal(doc, opts.Host, visibility.SlideClasses...)
		p.Highlight = visibility.Highlight(doc, opts.Host)
		p.Fade = visibility.Reveal(doc, opts.Host, visibility.FadeClasses...)
	}
	return p
}
