package visibility

import (
	"golang.org/x/net/html"
)

// Rect is the vertical extent of an element in page coordinates.
type Rect struct {
	Top    float64
	Height float64
}

func (r Rect) bottom() float64 { return r.Top + r.Height }

type targetKey struct {
	obs    *Observer
	target *html.Node
}

// Viewport is a Host driven by explicit layout and scroll input. Entries are
// queued on ScrollTo and delivered on Flush, once per simulated frame, so
// callbacks never run inside ScrollTo.
type Viewport struct {
	height    float64
	scrollY   float64
	layout    map[*html.Node]Rect
	observers []*Observer
	last      map[targetKey]bool
	queued    map[*Observer][]Entry
}

// NewViewport creates a viewport of the given height scrolled to the top.
func NewViewport(height float64) *Viewport {
	return &Viewport{
		height: height,
		layout: make(map[*html.Node]Rect),
		last:   make(map[targetKey]bool),
		queued: make(map[*Observer][]Entry),
	}
}

// Attach registers o with the viewport. A nil viewport ignores it.
func (v *Viewport) Attach(o *Observer) {
	if v == nil || o == nil {
		return
	}
	for _, have := range v.observers {
		if have == o {
			return
		}
	}
	v.observers = append(v.observers, o)
}

// SetRect places n on the page. Elements never placed have zero visibility.
func (v *Viewport) SetRect(n *html.Node, r Rect) {
	v.layout[n] = r
}

// Stack lays the nodes out top to bottom starting at top, each with its height.
func (v *Viewport) Stack(top float64, nodes []*html.Node, heights []float64) {
	for i, n := range nodes {
		if i >= len(heights) {
			return
		}
		v.SetRect(n, Rect{Top: top, Height: heights[i]})
		top += heights[i]
	}
}

// ScrollY returns the current scroll offset.
func (v *Viewport) ScrollY() float64 {
	return v.scrollY
}

// ScrollTo moves the viewport and queues entries for every threshold crossing.
func (v *Viewport) ScrollTo(y float64) {
	if v == nil {
		return
	}
	v.scrollY = y
	v.update()
}

// Ratio returns the fraction of n currently inside the viewport.
func (v *Viewport) Ratio(n *html.Node) float64 {
	r, ok := v.layout[n]
	if !ok {
		return 0
	}
	top, bottom := v.scrollY, v.scrollY+v.height
	if r.Height <= 0 {
		if r.Top >= top && r.Top <= bottom {
			return 1
		}
		return 0
	}
	visible := min(r.bottom(), bottom) - max(r.Top, top)
	if visible <= 0 {
		return 0
	}
	return visible / r.Height
}

// Flush delivers queued entries, one callback per observer in attach order.
// Newly observed targets receive their initial entry here.
func (v *Viewport) Flush() {
	if v == nil {
		return
	}
	v.update()
	for _, o := range v.observers {
		entries := v.queued[o]
		if len(entries) == 0 {
			continue
		}
		delete(v.queued, o)
		o.deliver(entries)
	}
}

// update compares every watched target with its last reported state.
func (v *Viewport) update() {
	for key := range v.last {
		if !key.obs.Observing(key.target) {
			delete(v.last, key)
		}
	}
	for _, o := range v.observers {
		for _, t := range o.targets {
			ratio := v.Ratio(t)
			state := o.intersecting(ratio)
			key := targetKey{obs: o, target: t}
			if prev, seen := v.last[key]; seen && prev == state {
				continue
			}
			v.last[key] = state
			v.queued[o] = append(v.queued[o], Entry{Target: t, Ratio: ratio, Intersecting: state})
		}
	}
}
