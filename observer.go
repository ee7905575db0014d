package reveal

// Direction is the scroll direction that produced a crossing.
type Direction uint8

const (
	Forward  Direction = iota // scrolling down the page
	Backward                  // scrolling back up
)

// Edge says whether a crossing entered or left the trigger window.
type Edge uint8

const (
	Enter Edge = iota
	Leave
)

// Crossing is one directional enter/leave event for an observed node.
type Crossing struct {
	Sub       *Subscription
	Direction Direction
	Edge      Edge
}

// String names the crossing the way debug logs print it.
func (c Crossing) String() string {
	switch {
	case c.Direction == Forward && c.Edge == Enter:
		return "enter"
	case c.Direction == Forward && c.Edge == Leave:
		return "leave"
	case c.Direction == Backward && c.Edge == Enter:
		return "enter-back"
	default:
		return "leave-back"
	}
}

// Trigger positions a node's trigger window as fractions of the viewport
// height. The window opens when the node's top edge reaches Start and
// closes when its bottom edge reaches End.
type Trigger struct {
	Start float64
	End   float64
}

// DefaultTrigger opens at 85% of the viewport and closes at 10%.
var DefaultTrigger = Trigger{Start: 0.85, End: 0.10}

// zone is where the scroll position sits relative to a trigger window.
type zone uint8

const (
	zoneBefore zone = iota
	zoneActive
	zoneAfter
)

// Watcher reports trigger window crossings. The Controller depends only on
// this interface; *Observer implements it.
type Watcher interface {
	Observe(n *Node, tr Trigger) *Subscription
	Unobserve(sub *Subscription)
	// Viewport returns the last evaluated scroll position and height.
	Viewport() (top, height float64)
}

// Subscription ties an observed node to its trigger window.
type Subscription struct {
	Node    *Node
	Trigger Trigger

	zone zone
}

// Active reports whether the scroll position is inside the trigger window.
func (s *Subscription) Active() bool {
	return s.zone == zoneActive
}

// window returns the scroll positions at which the trigger window opens
// and closes.
func (s *Subscription) window(height float64) (start, end float64) {
	b := s.Node.WorldBounds()
	start = b.Y - s.Trigger.Start*height
	end = b.Bottom() - s.Trigger.End*height
	if end < start {
		end = start
	}
	return start, end
}

// InView reports whether the node overlaps the viewport at top, above the
// trigger start line. A short node near the page top can be in view while
// already past its window.
func (s *Subscription) InView(top, height float64) bool {
	b := s.Node.WorldBounds()
	return b.Y < top+s.Trigger.Start*height && b.Bottom() > top
}

func (s *Subscription) zoneAt(top, height float64) zone {
	start, end := s.window(height)
	switch {
	case top < start:
		return zoneBefore
	case top < end:
		return zoneActive
	default:
		return zoneAfter
	}
}

// Observer evaluates every subscription against the viewport once per frame
// and queues the crossings it finds. Consumers drain the queue and handle
// crossings one at a time.
type Observer struct {
	subs  []*Subscription
	queue []Crossing
	spare []Crossing

	top, height float64
}

// NewObserver creates an Observer with no viewport. Call SetViewport before
// the first Observe so initial zones are computed against the real page.
func NewObserver() *Observer {
	return &Observer{}
}

// SetViewport records the viewport and recomputes every zone without
// emitting crossings.
func (o *Observer) SetViewport(top, height float64) {
	o.top, o.height = top, height
	for _, s := range o.subs {
		s.zone = s.zoneAt(top, height)
	}
}

// Viewport returns the scroll position and height of the last SetViewport
// or Evaluate.
func (o *Observer) Viewport() (top, height float64) {
	return o.top, o.height
}

// Observe subscribes n with the given trigger window. The initial zone is
// recorded silently; only later movement produces crossings.
func (o *Observer) Observe(n *Node, tr Trigger) *Subscription {
	if n == nil {
		return nil
	}
	s := &Subscription{Node: n, Trigger: tr}
	s.zone = s.zoneAt(o.top, o.height)
	o.subs = append(o.subs, s)
	return s
}

// Unobserve drops a subscription. Crossings already queued for it stay queued.
func (o *Observer) Unobserve(sub *Subscription) {
	for i, s := range o.subs {
		if s == sub {
			copy(o.subs[i:], o.subs[i+1:])
			o.subs[len(o.subs)-1] = nil
			o.subs = o.subs[:len(o.subs)-1]
			return
		}
	}
}

// Len returns the number of live subscriptions.
func (o *Observer) Len() int {
	return len(o.subs)
}

// Evaluate moves the viewport to top and queues a crossing for every window
// edge passed since the previous call. Skipping over a whole window queues
// both of its crossings in travel order.
func (o *Observer) Evaluate(top, height float64) {
	o.top, o.height = top, height
	for _, s := range o.subs {
		if s.Node.IsDisposed() {
			continue
		}
		next := s.zoneAt(top, height)
		prev := s.zone
		s.zone = next
		switch {
		case next > prev:
			if prev == zoneBefore {
				o.queue = append(o.queue, Crossing{Sub: s, Direction: Forward, Edge: Enter})
			}
			if next == zoneAfter {
				o.queue = append(o.queue, Crossing{Sub: s, Direction: Forward, Edge: Leave})
			}
		case next < prev:
			if prev == zoneAfter {
				o.queue = append(o.queue, Crossing{Sub: s, Direction: Backward, Edge: Enter})
			}
			if next == zoneBefore {
				o.queue = append(o.queue, Crossing{Sub: s, Direction: Backward, Edge: Leave})
			}
		}
	}
}

// Drain returns the queued crossings and empties the queue. The returned
// slice is only valid until the next Drain.
func (o *Observer) Drain() []Crossing {
	out := o.queue
	o.queue = o.spare[:0]
	o.spare = out
	return out
}
