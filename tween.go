package reveal

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Scheduler schedules delayed interpolations of a node's Shift. The
// Controller depends only on this interface; *Tweener implements it.
type Scheduler interface {
	// To interpolates from the value the node has when the delay elapses.
	To(n *Node, to float64, duration float32, fn ease.TweenFunc, delay float32, onComplete func())
	// FromTo writes from immediately and interpolates to after the delay.
	FromTo(n *Node, from, to float64, duration float32, fn ease.TweenFunc, delay float32)
	// Repeat loops between the current value and to forever.
	Repeat(n *Node, to float64, duration float32, fn ease.TweenFunc, yoyo bool, pause float32)
	// Kill cancels every pending interpolation for n.
	Kill(n *Node)
}

// shiftTween is one scheduled interpolation of a node's Shift.
type shiftTween struct {
	target     *Node
	delay      float32
	from, to   float64
	hasFrom    bool
	duration   float32
	fn         ease.TweenFunc
	onComplete func()

	repeat bool
	yoyo   bool
	pause  float32
	origin float64 // first leg start, for non-yoyo restarts

	tw   *gween.Tween
	dead bool
}

// advance consumes dt and reports whether the tween finished.
func (t *shiftTween) advance(dt float32) bool {
	if t.delay > 0 {
		if dt < t.delay {
			t.delay -= dt
			return false
		}
		dt -= t.delay
		t.delay = 0
	}

	if t.tw == nil {
		if !t.hasFrom {
			t.from = t.target.Shift
		}
		if t.duration <= 0 {
			t.target.Shift = t.to
			return t.restart()
		}
		t.tw = gween.New(float32(t.from), float32(t.to), t.duration, t.fn)
	}

	val, finished := t.tw.Update(dt)
	if !finished {
		t.target.Shift = float64(val)
		return false
	}
	t.target.Shift = t.to
	return t.restart()
}

// restart prepares the next leg of a repeating tween. Returns true when the
// tween is not repeating and is therefore complete.
func (t *shiftTween) restart() bool {
	if !t.repeat {
		return true
	}
	t.tw = nil
	t.hasFrom = true
	t.delay = t.pause
	if t.yoyo {
		t.from, t.to = t.to, t.from
	} else {
		t.from = t.origin
	}
	return false
}

// Tweener is the frame-driven Scheduler. Call Update(dt) once per frame.
//
// There is no global animation manager; the Scene owns one Tweener.
type Tweener struct {
	tweens []*shiftTween
	done   []func()
}

// NewTweener creates an empty Tweener.
func NewTweener() *Tweener {
	return &Tweener{}
}

// To schedules an interpolation of n.Shift to the target value. The start
// value is read when the delay elapses, so chained calls pick up where the
// previous stage left off.
func (tw *Tweener) To(n *Node, to float64, duration float32, fn ease.TweenFunc, delay float32, onComplete func()) {
	if n == nil {
		return
	}
	tw.tweens = append(tw.tweens, &shiftTween{
		target:     n,
		delay:      delay,
		to:         to,
		duration:   duration,
		fn:         fn,
		onComplete: onComplete,
	})
}

// FromTo writes from to n.Shift immediately and schedules an interpolation
// to the target value after the delay.
func (tw *Tweener) FromTo(n *Node, from, to float64, duration float32, fn ease.TweenFunc, delay float32) {
	if n == nil {
		return
	}
	n.Shift = from
	tw.tweens = append(tw.tweens, &shiftTween{
		target:   n,
		delay:    delay,
		from:     from,
		hasFrom:  true,
		to:       to,
		duration: duration,
		fn:       fn,
	})
}

// Repeat loops n.Shift between its current value and to, forever, pausing
// between legs. With yoyo the loop runs back and forth; without it each leg
// restarts from the original value.
func (tw *Tweener) Repeat(n *Node, to float64, duration float32, fn ease.TweenFunc, yoyo bool, pause float32) {
	if n == nil {
		return
	}
	tw.tweens = append(tw.tweens, &shiftTween{
		target:   n,
		from:     n.Shift,
		hasFrom:  true,
		origin:   n.Shift,
		to:       to,
		duration: duration,
		fn:       fn,
		repeat:   true,
		yoyo:     yoyo,
		pause:    pause,
	})
}

// Kill cancels every pending interpolation for n. Safe to call from a
// completion callback.
func (tw *Tweener) Kill(n *Node) {
	for _, t := range tw.tweens {
		if t.target == n {
			t.dead = true
		}
	}
}

// Value returns n's current Shift.
func (tw *Tweener) Value(n *Node) float64 {
	return n.Shift
}

// Pending returns the number of live interpolations targeting n.
func (tw *Tweener) Pending(n *Node) int {
	count := 0
	for _, t := range tw.tweens {
		if t.target == n && !t.dead {
			count++
		}
	}
	return count
}

// Len returns the number of live interpolations.
func (tw *Tweener) Len() int {
	count := 0
	for _, t := range tw.tweens {
		if !t.dead {
			count++
		}
	}
	return count
}

// Update advances every live interpolation by dt seconds. Tweens whose
// target has been disposed stop without writing. Completion callbacks run
// after the whole list has advanced; tweens they schedule start next frame.
func (tw *Tweener) Update(dt float32) {
	for _, t := range tw.tweens {
		if t.dead {
			continue
		}
		if t.target.IsDisposed() {
			t.dead = true
			continue
		}
		if t.advance(dt) {
			t.dead = true
			if t.onComplete != nil {
				tw.done = append(tw.done, t.onComplete)
			}
		}
	}

	tw.compact()

	for i, fn := range tw.done {
		fn()
		tw.done[i] = nil
	}
	tw.done = tw.done[:0]
}

// compact drops dead entries in place.
func (tw *Tweener) compact() {
	live := tw.tweens[:0]
	for _, t := range tw.tweens {
		if !t.dead {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(tw.tweens); i++ {
		tw.tweens[i] = nil
	}
	tw.tweens = live
}
