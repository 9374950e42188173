// Package visibility reports when page elements scroll into view and builds
// the reveal-on-scroll and nav-highlight behaviors on top of that.
//
// Everything here runs on a single goroutine, the way a browser's UI thread
// drives intersection callbacks.
package visibility

import (
	"slices"

	"golang.org/x/net/html"
)

// Entry describes one intersection change for a target.
type Entry struct {
	Target       *html.Node
	Ratio        float64
	Intersecting bool
}

// Callback receives the entries queued for an observer since the last delivery.
type Callback func(entries []Entry, o *Observer)

// Host schedules intersection callbacks for attached observers.
type Host interface {
	Attach(o *Observer)
}

// Observer watches a set of elements against a single threshold.
type Observer struct {
	threshold float64
	callback  Callback
	targets   []*html.Node
}

// NewObserver creates an observer. It does nothing until attached to a Host.
func NewObserver(threshold float64, cb Callback) *Observer {
	return &Observer{threshold: threshold, callback: cb}
}

// Threshold returns the visible ratio at which targets count as intersecting.
func (o *Observer) Threshold() float64 {
	return o.threshold
}

// Observe starts watching n. Observing the same node twice is a no-op.
func (o *Observer) Observe(n *html.Node) {
	if n == nil || o.Observing(n) {
		return
	}
	o.targets = append(o.targets, n)
}

// Unobserve stops watching n. Entries already queued for n are dropped.
func (o *Observer) Unobserve(n *html.Node) {
	if i := slices.Index(o.targets, n); i >= 0 {
		o.targets = slices.Delete(o.targets, i, i+1)
	}
}

// Disconnect stops watching every target.
func (o *Observer) Disconnect() {
	o.targets = nil
}

// Observing reports whether n is watched.
func (o *Observer) Observing(n *html.Node) bool {
	return slices.Contains(o.targets, n)
}

// Targets returns the watched elements in observation order.
func (o *Observer) Targets() []*html.Node {
	return slices.Clone(o.targets)
}

func (o *Observer) intersecting(ratio float64) bool {
	return ratio > 0 && ratio >= o.threshold
}

func (o *Observer) deliver(entries []Entry) {
	live := entries[:0]
	for _, e := range entries {
		if o.Observing(e.Target) {
			live = append(live, e)
		}
	}
	if len(live) == 0 || o.callback == nil {
		return
	}
	o.callback(live, o)
}
