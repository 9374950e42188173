package visibility

import (
	"github.com/rdraksharam/portfolio/internal/dom"
)

const (
	RevealThreshold    = 0.1
	HighlightThreshold = 0.4

	InViewClass    = "in-view"
	ActiveNavClass = "active-nav"
	navMenuClass   = "main-nav"
)

var (
	SlideClasses = []string{"slide-left", "slide-right"}
	FadeClasses  = []string{"fade-in-section"}
)

// Reveal adds the in-view class to every element carrying one of classes the
// first time it intersects, then stops watching it. It returns nil without a host.
func Reveal(doc *dom.Document, host Host, classes ...string) *Observer {
	if host == nil {
		return nil
	}
	o := NewObserver(RevealThreshold, func(entries []Entry, o *Observer) {
		for _, e := range entries {
			if !e.Intersecting {
				continue
			}
			dom.AddClass(e.Target, InViewClass)
			o.Unobserve(e.Target)
		}
	})
	host.Attach(o)
	for _, el := range doc.ByClass(classes...) {
		o.Observe(el)
	}
	return o
}

// Highlight watches every <section> and keeps the active-nav class of the
// matching main-nav link in step with whether that section meets the
// threshold. Links are updated independently, so overlapping sections can
// be active together.
func Highlight(doc *dom.Document, host Host) *Observer {
	if host == nil {
		return nil
	}
	links := dom.ByTag(doc.First(navMenuClass), "a")
	o := NewObserver(HighlightThreshold, func(entries []Entry, _ *Observer) {
		for _, e := range entries {
			id, ok := dom.Attr(e.Target, "id")
			if !ok || id == "" {
				continue
			}
			for _, link := range links {
				if href, _ := dom.Attr(link, "href"); href == "#"+id {
					dom.SetClassTo(link, ActiveNavClass, e.Intersecting)
				}
			}
		}
	})
	host.Attach(o)
	for _, section := range doc.ByTag("section") {
		o.Observe(section)
	}
	return o
}
