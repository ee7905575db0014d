package reveal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"
)

const (
	// keyScrollFraction is the share of ScrollStep moved per tick while an
	// arrow key is held.
	keyScrollFraction = 0.25
	// pageScrollFraction is the share of the viewport height a page key moves.
	pageScrollFraction = 0.9
	// jumpDuration is the scroll-to time for Home and End.
	jumpDuration = 0.8
)

// processInput scrolls the camera from injected deltas or, when none are
// queued, from the mouse wheel and keyboard.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}

	_, wy := ebiten.Wheel()
	dy := -wy * s.scrollStep

	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy += s.scrollStep * keyScrollFraction
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy -= s.scrollStep * keyScrollFraction
	}

	page := s.camera.Viewport.Height * pageScrollFraction
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		dy += page
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		dy -= page
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		s.camera.ScrollTo(0, jumpDuration, ease.InOutCubic)
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		s.camera.ScrollTo(s.camera.PageHeight-s.camera.Viewport.Height, jumpDuration, ease.InOutCubic)
		return
	}

	if dy != 0 {
		s.camera.ScrollBy(dy)
	}
}
