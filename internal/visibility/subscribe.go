package visibility

import (
	"iter"

	"golang.org/x/net/html"
)

// Subscription is a pull-style view of the entries for a single element.
// Entries accumulate as the host delivers them and are consumed with Next or
// All. The sequence ends for good once Close is called.
type Subscription struct {
	obs    *Observer
	target *html.Node
	buf    []Entry
	closed bool
}

// Subscribe watches el on host at threshold. A nil host or element yields a
// closed subscription.
func Subscribe(host Host, el *html.Node, threshold float64) *Subscription {
	s := &Subscription{target: el}
	if host == nil || el == nil {
		s.closed = true
		return s
	}
	s.obs = NewObserver(threshold, func(entries []Entry, _ *Observer) {
		s.buf = append(s.buf, entries...)
	})
	host.Attach(s.obs)
	s.obs.Observe(el)
	return s
}

// Next pops the oldest buffered entry.
func (s *Subscription) Next() (Entry, bool) {
	if s.closed || len(s.buf) == 0 {
		return Entry{}, false
	}
	e := s.buf[0]
	s.buf = s.buf[1:]
	return e, true
}

// All yields the buffered entries, stopping early if the consumer closes the
// subscription.
func (s *Subscription) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for {
			e, ok := s.Next()
			if !ok || !yield(e) {
				return
			}
		}
	}
}

// Close unsubscribes the element and discards anything still buffered.
func (s *Subscription) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.buf = nil
	s.obs.Unobserve(s.target)
}

// Closed reports whether the subscription has ended.
func (s *Subscription) Closed() bool {
	return s.closed
}
