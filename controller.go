package reveal

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/tanema/gween/ease"
	"golang.org/x/text/unicode/norm"
)

// State is the reveal state of a whole TextBlock.
type State uint8

const (
	StateBelow     State = iota // not yet reached
	StateAnimating              // a reveal sequence is in flight
	StateFloating               // every letter settled and drifting
	StateSettled                // snapped to rest, no drift
)

func (s State) String() string {
	switch s {
	case StateBelow:
		return "below"
	case StateAnimating:
		return "animating"
	case StateFloating:
		return "floating"
	case StateSettled:
		return "settled"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// LetterState is the per-letter stage of a reveal.
type LetterState uint8

const (
	LetterHidden    LetterState = iota // parked below the baseline
	LetterScrambled                    // in the scramble or settle stage
	LetterFloating                     // ambient drift loop running
	LetterSettled                      // at rest, no drift
)

// Timing holds the durations (seconds) and offsets of the reveal sequence.
type Timing struct {
	Stagger       float32 `yaml:"stagger"`
	ScrambleFresh float32 `yaml:"scrambleFresh"`
	ScrambleWarm  float32 `yaml:"scrambleWarm"`
	ScrambleMin   float64 `yaml:"scrambleMin"`
	ScrambleMax   float64 `yaml:"scrambleMax"`
	Settle        float32 `yaml:"settle"`
	FloatCycle    float32 `yaml:"floatCycle"`
	FloatPause    float32 `yaml:"floatPause"`
	FloatDepth    float64 `yaml:"floatDepth"`
	Snap          float32 `yaml:"snap"`
	SnapStagger   float32 `yaml:"snapStagger"`
	BootDelay     float32 `yaml:"bootDelay"`
}

// DefaultTiming is the reveal choreography used when no config overrides it.
var DefaultTiming = Timing{
	Stagger:       0.05,
	ScrambleFresh: 2.5,
	ScrambleWarm:  1.5,
	ScrambleMin:   20,
	ScrambleMax:   120,
	Settle:        1.5,
	FloatCycle:    4,
	FloatPause:    1,
	FloatDepth:    -3,
	Snap:          0.8,
	SnapStagger:   0.02,
	BootDelay:     0.1,
}

// Letter is one animatable glyph of a TextBlock.
type Letter struct {
	Node  *Node
	Rune  rune
	Index int

	state     LetterState
	commanded float64 // last offset handed to the scheduler
	block     *TextBlock
}

// State returns the letter's current stage.
func (l *Letter) State() LetterState {
	return l.state
}

// Commanded returns the last offset the controller asked for.
func (l *Letter) Commanded() float64 {
	return l.commanded
}

// TextBlock is a heading split into letters and bound to a trigger window.
type TextBlock struct {
	Node    *Node
	Letters []*Letter

	sub         *Subscription
	state       State
	hasAnimated bool
	floating    int

	booting bool
	bootIn  float32
}

// HasAnimated reports whether the block has had its first forward reveal.
// Once true it stays true.
func (b *TextBlock) HasAnimated() bool {
	return b.hasAnimated
}

// State returns the block's reveal state.
func (b *TextBlock) State() State {
	return b.state
}

// Subscription returns the observer subscription, or nil when the block is
// not attached.
func (b *TextBlock) Subscription() *Subscription {
	return b.sub
}

// ControllerOptions configures a Controller.
type ControllerOptions struct {
	ReducedMotion bool
	Trigger       Trigger
	Timing        Timing
	// Seed fixes the scramble offsets. Zero seeds from the runtime source.
	Seed uint64
	// OnTransition, when set, is called after each crossing is applied.
	OnTransition func(b *TextBlock, c Crossing)
}

// Controller splits headings into letters and drives their offsets through
// the reveal state machine. All crossings go through Transition.
type Controller struct {
	sched Scheduler
	watch Watcher

	enabled       bool
	reducedMotion bool
	trigger       Trigger
	timing        Timing
	onTransition  func(*TextBlock, Crossing)

	blocks []*TextBlock
	bySub  map[*Subscription]*TextBlock
	booted bool
	rng    *rand.Rand
}

// NewController creates a controller. A nil scheduler or watcher disables
// animation: headings are still split, but letters rest at their settled
// offset and nothing is observed.
func NewController(sched Scheduler, watch Watcher, opts ControllerOptions) *Controller {
	if opts.Trigger == (Trigger{}) {
		opts.Trigger = DefaultTrigger
	}
	if opts.Timing == (Timing{}) {
		opts.Timing = DefaultTiming
	}
	var rng *rand.Rand
	if opts.Seed != 0 {
		rng = rand.New(rand.NewPCG(opts.Seed, opts.Seed>>1|1))
	} else {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Controller{
		sched:         sched,
		watch:         watch,
		enabled:       sched != nil && watch != nil,
		reducedMotion: opts.ReducedMotion,
		trigger:       opts.Trigger,
		timing:        opts.Timing,
		onTransition:  opts.OnTransition,
		bySub:         make(map[*Subscription]*TextBlock),
		rng:           rng,
	}
}

// Enabled reports whether letters are animated at all.
func (c *Controller) Enabled() bool {
	return c.enabled && !c.reducedMotion
}

// Blocks returns the prepared blocks in the order they were added.
func (c *Controller) Blocks() []*TextBlock {
	return c.blocks
}

// Add splits a heading into letters and attaches its trigger window. The
// split replaces the heading's own text rendering and cannot be undone.
// Returns nil for a nil node.
func (c *Controller) Add(n *Node) *TextBlock {
	if n == nil {
		return nil
	}
	b := c.prepare(n)
	c.blocks = append(c.blocks, b)

	if !c.Enabled() {
		c.rest(b)
		return b
	}
	c.attach(b)
	if c.booted {
		c.boot(b)
	}
	return b
}

// prepare builds one letter child per non-space rune, in reading order,
// each parked fully hidden. Text is NFC-normalized first so a base letter
// and its combining accent become a single letter.
func (c *Controller) prepare(n *Node) *TextBlock {
	b := &TextBlock{Node: n, state: StateBelow}

	var space, lineH float64
	if n.Font != nil {
		space, _ = n.Font.MeasureString(" ")
		lineH = n.Font.LineHeight()
	}

	x := 0.0
	for w, word := range strings.Fields(norm.NFC.String(n.Text)) {
		if w > 0 {
			x += space
		}
		for _, r := range word {
			glyph := string(r)
			var adv float64
			if n.Font != nil {
				adv, _ = n.Font.MeasureString(glyph)
			}
			ln := newLetter(fmt.Sprintf("%s/%d", n.Name, len(b.Letters)), glyph, adv, lineH)
			ln.X = x
			ln.Color = n.Color
			ln.Accent = n.Accent
			ln.Shift = ShiftHidden
			n.AddChild(ln)

			b.Letters = append(b.Letters, &Letter{
				Node:      ln,
				Rune:      r,
				Index:     len(b.Letters),
				commanded: ShiftHidden,
				block:     b,
			})
			x += adv
		}
	}
	if x > 0 {
		n.Width = x
	}
	if lineH > 0 {
		n.Height = lineH
	}
	return b
}

// attach subscribes the block's heading to its trigger window.
func (c *Controller) attach(b *TextBlock) {
	b.sub = c.watch.Observe(b.Node, c.trigger)
	if b.sub != nil {
		c.bySub[b.sub] = b
	}
}

// rest puts every letter at the settled offset without scheduling anything.
func (c *Controller) rest(b *TextBlock) {
	for _, l := range b.Letters {
		l.Node.Shift = ShiftSettled
		l.commanded = ShiftSettled
		l.state = LetterSettled
	}
	b.state = StateSettled
}

// Remove detaches a block from its trigger window and cancels its letters.
func (c *Controller) Remove(b *TextBlock) {
	if b == nil {
		return
	}
	if b.sub != nil {
		c.watch.Unobserve(b.sub)
		delete(c.bySub, b.sub)
		b.sub = nil
	}
	if c.Enabled() {
		for _, l := range b.Letters {
			c.sched.Kill(l.Node)
		}
	}
	b.booting = false
	for i, other := range c.blocks {
		if other == b {
			copy(c.blocks[i:], c.blocks[i+1:])
			c.blocks[len(c.blocks)-1] = nil
			c.blocks = c.blocks[:len(c.blocks)-1]
			break
		}
	}
}

// Bootstrap treats every block visible without scrolling as a first
// forward entry: its heading overlaps the viewport above the trigger start
// line. The sequence starts after the boot delay so the observer's first
// evaluation cannot trigger it twice. Blocks added later are checked as
// they are added.
func (c *Controller) Bootstrap() {
	if !c.Enabled() {
		return
	}
	c.booted = true
	for _, b := range c.blocks {
		c.boot(b)
	}
}

// boot schedules the load-time reveal for b if it is in view and has never
// animated.
func (c *Controller) boot(b *TextBlock) {
	if b.sub == nil || b.hasAnimated || len(b.Letters) == 0 {
		return
	}
	if !b.sub.InView(c.watch.Viewport()) {
		return
	}
	b.hasAnimated = true
	b.booting = true
	b.bootIn = c.timing.BootDelay
}

// Update fires pending boot sequences.
func (c *Controller) Update(dt float32) {
	for _, b := range c.blocks {
		if !b.booting {
			continue
		}
		b.bootIn -= dt
		if b.bootIn <= 0 {
			b.booting = false
			c.animate(b)
		}
	}
}

// Transition applies one crossing to its block. Crossings for unknown
// subscriptions are ignored.
func (c *Controller) Transition(x Crossing) {
	if !c.Enabled() {
		return
	}
	b := c.bySub[x.Sub]
	if b == nil || len(b.Letters) == 0 {
		return
	}
	b.booting = false

	switch {
	case x.Direction == Forward && x.Edge == Enter:
		if !b.hasAnimated {
			b.hasAnimated = true
			c.animate(b)
		} else {
			c.settleImmediate(b)
		}
	case x.Direction == Backward && x.Edge == Enter:
		c.animate(b)
	default:
		c.settleImmediate(b)
	}

	if c.onTransition != nil {
		c.onTransition(b, x)
	}
}

// animate runs the full scramble, settle and float sequence on every letter.
func (c *Controller) animate(b *TextBlock) {
	if len(b.Letters) == 0 {
		return
	}
	t := c.timing
	b.state = StateAnimating
	b.floating = 0

	for _, l := range b.Letters {
		c.sched.Kill(l.Node)

		delay := float32(l.Index) * t.Stagger
		mid := t.ScrambleMin + c.rng.Float64()*(t.ScrambleMax-t.ScrambleMin)

		first := t.ScrambleFresh
		if l.commanded != ShiftHidden {
			first = t.ScrambleWarm
			c.sched.To(l.Node, mid, first, ease.InOutCubic, delay, nil)
		} else {
			c.sched.FromTo(l.Node, ShiftHidden, mid, first, ease.InOutCubic, delay)
		}

		l.state = LetterScrambled
		l.commanded = ShiftSettled
		c.sched.To(l.Node, ShiftSettled, t.Settle, ease.OutCubic, delay+first, c.floatFunc(l))
	}
}

// floatFunc returns the settle-stage completion callback for l.
func (c *Controller) floatFunc(l *Letter) func() {
	return func() {
		c.sched.Kill(l.Node)
		c.sched.Repeat(l.Node, c.timing.FloatDepth, c.timing.FloatCycle, ease.InOutSine, true, c.timing.FloatPause)
		l.state = LetterFloating
		b := l.block
		b.floating++
		if b.floating == len(b.Letters) {
			b.state = StateFloating
		}
	}
}

// settleImmediate snaps every letter straight to rest with a short stagger.
func (c *Controller) settleImmediate(b *TextBlock) {
	if len(b.Letters) == 0 {
		return
	}
	b.state = StateSettled
	b.floating = 0
	for _, l := range b.Letters {
		c.sched.Kill(l.Node)
		l.state = LetterSettled
		l.commanded = ShiftSettled
		c.sched.To(l.Node, ShiftSettled, c.timing.Snap, ease.OutCubic, float32(l.Index)*c.timing.SnapStagger, nil)
	}
}
