package reveal

import "testing"

// recordingStore collects the events forwarded to the ECS bridge.
type recordingStore struct {
	events []RevealEvent
}

func (r *recordingStore) EmitEvent(e RevealEvent) {
	r.events = append(r.events, e)
}

// newTestScene builds an 800x600 page with two headings: "Hi" at y=48,
// already inside its window, and "Yo" at y=548, below the fold.
func newTestScene(mutate func(*Config)) *Scene {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 800, 600
	cfg.Headings = []HeadingConfig{
		{Name: "hi", Text: "Hi"},
		{Name: "yo", Text: "Yo"},
	}
	if mutate != nil {
		mutate(&cfg)
	}
	return NewScene(cfg, monoFont{advance: 10, height: 20})
}

// idle advances the scene by frames ticks with no scrolling.
func idle(s *Scene, frames int) {
	for i := 0; i < frames; i++ {
		s.InjectScroll(0)
		s.step(1.0 / 60)
	}
}

func TestNewSceneLaysOutHeadings(t *testing.T) {
	s := newTestScene(nil)

	if s.Root().NumChildren() != 2 {
		t.Fatalf("root children = %d, want 2", s.Root().NumChildren())
	}
	hi, yo := s.Root().Children()[0], s.Root().Children()[1]
	if hi.Y != 48 || yo.Y != 548 {
		t.Errorf("heading Y = %v, %v, want 48, 548", hi.Y, yo.Y)
	}
	if hi.X != 48 {
		t.Errorf("heading X = %v, want margin 48", hi.X)
	}
	if got := s.Camera().PageHeight; got != 1648 {
		t.Errorf("PageHeight = %v, want 1648", got)
	}
	if len(s.Controller().Blocks()) != 2 {
		t.Fatalf("blocks = %d, want 2", len(s.Controller().Blocks()))
	}
	for _, b := range s.Controller().Blocks() {
		if len(b.Letters) != 2 {
			t.Errorf("%q letters = %d, want 2", b.Node.Name, len(b.Letters))
		}
	}
	if s.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", s.ScreenshotDir, "screenshots")
	}
}

func TestSceneBootRevealsVisibleHeading(t *testing.T) {
	s := newTestScene(nil)
	hi, yo := s.Controller().Blocks()[0], s.Controller().Blocks()[1]

	idle(s, 1)
	if !hi.HasAnimated() || hi.State() != StateBelow {
		t.Fatalf("after first tick: hasAnimated=%v state=%v, want pending boot", hi.HasAnimated(), hi.State())
	}

	idle(s, 10)
	if hi.State() != StateAnimating {
		t.Errorf("hi state = %v, want animating", hi.State())
	}
	if yo.HasAnimated() || yo.State() != StateBelow {
		t.Errorf("yo should stay hidden below the fold, got %v", yo.State())
	}
	for _, l := range yo.Letters {
		if l.Node.Shift != ShiftHidden {
			t.Errorf("yo letter Shift = %v, want %v", l.Node.Shift, ShiftHidden)
		}
	}
}

func TestSceneAddHeadingAfterFirstFrame(t *testing.T) {
	s := newTestScene(func(c *Config) { c.Headings = nil })
	idle(s, 1)

	late := s.AddHeading("late", "Late")
	if !late.HasAnimated() {
		t.Fatal("heading added in view should be revealed without scrolling")
	}
	idle(s, 60)
	if late.State() != StateAnimating {
		t.Errorf("state = %v, want animating", late.State())
	}
	for _, l := range late.Letters {
		if l.Node.Shift == ShiftHidden {
			t.Errorf("letter %d still hidden", l.Index)
		}
	}
}

func TestSceneScrollDrivesTransitions(t *testing.T) {
	s := newTestScene(nil)
	store := &recordingStore{}
	s.SetEntityStore(store)

	s.InjectScroll(100)
	s.step(1.0 / 60)

	if s.Camera().ScrollY != 100 {
		t.Fatalf("ScrollY = %v, want 100", s.Camera().ScrollY)
	}
	if len(store.events) != 2 {
		t.Fatalf("events = %+v, want 2", store.events)
	}
	leave, enter := store.events[0], store.events[1]
	if leave.Heading != "hi" || leave.Direction != Forward || leave.Edge != Leave || leave.State != StateSettled {
		t.Errorf("first event = %+v, want hi forward leave settled", leave)
	}
	if enter.Heading != "yo" || enter.Direction != Forward || enter.Edge != Enter || enter.State != StateAnimating {
		t.Errorf("second event = %+v, want yo forward enter animating", enter)
	}
	if !enter.HasAnimated {
		t.Error("yo should be marked as animated")
	}

	// The pending boot reveal on hi was cancelled by its leave.
	idle(s, 20)
	if got := s.Controller().Blocks()[0].State(); got != StateSettled {
		t.Errorf("hi state = %v, want settled", got)
	}

	// Scrolling back brings yo back out and hi back in.
	s.InjectScroll(-100)
	s.step(1.0 / 60)
	if len(store.events) != 4 {
		t.Fatalf("events = %d, want 4", len(store.events))
	}
	if e := store.events[2]; e.Heading != "hi" || e.Direction != Backward || e.Edge != Enter {
		t.Errorf("third event = %+v, want hi enter-back", e)
	}
	if e := store.events[3]; e.Heading != "yo" || e.Direction != Backward || e.Edge != Leave {
		t.Errorf("fourth event = %+v, want yo leave-back", e)
	}
}

func TestSceneReducedMotion(t *testing.T) {
	s := newTestScene(func(c *Config) { c.ReducedMotion = true })
	store := &recordingStore{}
	s.SetEntityStore(store)

	if s.Controller().Enabled() {
		t.Error("controller should be disabled under reduced motion")
	}
	for _, b := range s.Controller().Blocks() {
		if b.State() != StateSettled {
			t.Errorf("%q state = %v, want settled", b.Node.Name, b.State())
		}
		for _, l := range b.Letters {
			if l.Node.Shift != ShiftSettled {
				t.Errorf("letter Shift = %v, want %v", l.Node.Shift, ShiftSettled)
			}
		}
	}

	s.InjectScroll(400)
	idle(s, 5)
	if len(store.events) != 0 {
		t.Errorf("events = %+v, want none", store.events)
	}
	if s.Tweens().Len() != 0 {
		t.Errorf("tweens = %d, want 0", s.Tweens().Len())
	}
}

func TestSceneSetEntityStore(t *testing.T) {
	s := newTestScene(nil)
	s.SetEntityStore(nil) // should not panic
	if s.store != nil {
		t.Error("store should be nil")
	}
	s.InjectScroll(100)
	s.step(1.0 / 60)
}

func TestSceneSetDebugMode(t *testing.T) {
	s := newTestScene(nil)
	s.SetDebugMode(true)
	if !s.debug || !globalDebug {
		t.Error("debug should be true")
	}
	s.SetDebugMode(false)
	if s.debug || globalDebug {
		t.Error("debug should be false")
	}
}

func TestSceneDebugFromConfig(t *testing.T) {
	s := newTestScene(func(c *Config) { c.Debug = true })
	defer s.SetDebugMode(false)
	if !s.debug {
		t.Error("Config.Debug should enable debug mode")
	}
}
