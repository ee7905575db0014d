package reveal

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, every applied crossing is forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event RevealEvent)
}

// RevealEvent carries one applied crossing for the ECS bridge.
type RevealEvent struct {
	Heading     string
	NodeID      uint32
	Direction   Direction
	Edge        Edge
	State       State
	HasAnimated bool
}

// Scene is the top-level object that owns the page graph, camera, tween
// scheduler, viewport observer and reveal controller.
type Scene struct {
	// ClearColor fills the screen before the page is drawn.
	ClearColor Color
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	root       *Node
	camera     *Camera
	tweens     *Tweener
	observer   *Observer
	controller *Controller

	font       Font
	foreground Color
	accent     Color
	margin     float64
	gap        float64
	scrollStep float64
	cursorY    float64

	store  EntityStore
	debug  bool
	booted bool
	frame  int

	injectQueue     []float64
	testRunner      *TestRunner
	screenshotQueue []string
}

// NewScene builds a page from cfg. Every configured heading is laid out top
// to bottom with font and handed to the reveal controller.
func NewScene(cfg Config, font Font) *Scene {
	root := NewContainer("page")
	s := &Scene{
		ClearColor:    cfg.Background,
		ScreenshotDir: cfg.ScreenshotDir,
		root:          root,
		camera:        NewCamera(Rect{Width: float64(cfg.Width), Height: float64(cfg.Height)}),
		tweens:        NewTweener(),
		observer:      NewObserver(),
		font:          font,
		foreground:    cfg.Foreground,
		accent:        cfg.Accent,
		margin:        cfg.Margin,
		gap:           cfg.Gap,
		scrollStep:    cfg.ScrollStep,
		cursorY:       cfg.Margin,
	}
	s.observer.SetViewport(0, float64(cfg.Height))
	s.controller = NewController(s.tweens, s.observer, ControllerOptions{
		ReducedMotion: cfg.ReducedMotion,
		Trigger:       cfg.TriggerWindow(),
		Timing:        cfg.Timing,
		OnTransition:  s.onTransition,
	})
	s.camera.SetPageHeight(float64(cfg.Height))
	s.SetDebugMode(cfg.Debug)

	for _, h := range cfg.Headings {
		s.AddHeading(h.Name, h.Text)
	}
	return s
}

// Root returns the page's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Camera returns the page camera.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// Controller returns the reveal controller.
func (s *Scene) Controller() *Controller {
	return s.controller
}

// Tweens returns the scene's tween scheduler.
func (s *Scene) Tweens() *Tweener {
	return s.tweens
}

// AddHeading appends a heading below the previous one and prepares it for
// the reveal. The page grows so the last heading can scroll past the top.
func (s *Scene) AddHeading(name, content string) *TextBlock {
	n := NewHeading(name, content, s.font)
	n.X = s.margin
	n.Y = s.cursorY
	n.Color = s.foreground
	n.Accent = s.accent
	s.root.AddChild(n)

	b := s.controller.Add(n)
	s.cursorY += n.Height + s.gap
	s.camera.SetPageHeight(s.cursorY + s.camera.Viewport.Height)
	if s.debug {
		debugLogf("heading %q: %d letters at y=%.0f", name, len(b.Letters), n.Y)
	}
	return b
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics and transitions are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool

// Update processes input, moves the camera, applies viewport crossings and
// advances animations by one tick.
func (s *Scene) Update() {
	s.step(float32(1.0 / float64(ebiten.TPS())))
}

// step is Update with an explicit frame time.
func (s *Scene) step(dt float32) {
	s.frame++
	if !s.booted {
		s.booted = true
		s.controller.Bootstrap()
	}
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	s.camera.update(dt)

	s.observer.Evaluate(s.camera.ScrollY, s.camera.Viewport.Height)
	for _, c := range s.observer.Drain() {
		s.controller.Transition(c)
	}
	s.controller.Update(dt)
	s.tweens.Update(dt)

	if s.debug && s.frame%debugSummaryFrames == 0 {
		s.debugSummary()
	}
}

// onTransition logs and forwards each applied crossing.
func (s *Scene) onTransition(b *TextBlock, c Crossing) {
	if s.debug {
		debugLogf("frame %d: %q %s -> %s", s.frame, b.Node.Name, c, b.State())
	}
	if s.store != nil {
		s.store.EmitEvent(RevealEvent{
			Heading:     b.Node.Name,
			NodeID:      b.Node.ID,
			Direction:   c.Direction,
			Edge:        c.Edge,
			State:       b.State(),
			HasAnimated: b.HasAnimated(),
		})
	}
}

// Draw renders every visible heading into the camera viewport.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(s.ClearColor.toRGBA())

	vp := s.camera.Viewport
	target := screen.SubImage(image.Rect(
		int(vp.X), int(vp.Y),
		int(vp.X+vp.Width), int(vp.Y+vp.Height),
	)).(*ebiten.Image)
	s.drawNode(target, s.root, s.camera.VisibleBounds())

	s.flushScreenshots(screen)
}

// drawNode walks the page graph, skipping headings outside the viewport.
func (s *Scene) drawNode(dst *ebiten.Image, n *Node, visible Rect) {
	if !n.Visible {
		return
	}
	switch n.Type {
	case NodeTypeLetter:
		s.drawLetter(dst, n)
		return
	case NodeTypeHeading:
		if !n.WorldBounds().Intersects(visible) {
			return
		}
	}
	for _, child := range n.children {
		s.drawNode(dst, child, visible)
	}
}

// drawLetter draws the accent layer and then the base layer of one glyph at
// its current Shift, clipped to the letter's cell so a hidden glyph is
// cropped away below the baseline.
func (s *Scene) drawLetter(dst *ebiten.Image, n *Node) {
	if n.Parent == nil {
		return
	}
	f, ok := n.Parent.Font.(*TTFFont)
	if !ok {
		return
	}
	b := n.WorldBounds()
	sx, sy := s.camera.WorldToScreen(b.X, b.Y)
	cell := image.Rect(
		int(math.Floor(sx)), int(math.Floor(sy)),
		int(math.Ceil(sx+b.Width)), int(math.Ceil(sy+b.Height)),
	).Intersect(dst.Bounds())
	if cell.Empty() {
		return
	}
	clip := dst.SubImage(cell).(*ebiten.Image)
	dy := n.Shift / 100 * b.Height

	for _, c := range [2]Color{n.Accent, n.Color} {
		op := &text.DrawOptions{}
		op.GeoM.Translate(sx, sy+dy)
		op.ColorScale = c.scale()
		text.Draw(clip, n.Text, f.Face(), op)
	}
}
