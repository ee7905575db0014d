package reveal

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds an active scroll-to tween.
type scrollAnim struct {
	tween *gween.Tween
}

// Camera is the page viewport: a screen rectangle looking at the page from
// ScrollY downward.
type Camera struct {
	// ScrollY is the page-space Y shown at the top of the viewport.
	ScrollY float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	// BoundsEnabled clamps ScrollY so the viewport stays within
	// [0, PageHeight].
	BoundsEnabled bool
	// PageHeight is the total scrollable height of the page.
	PageHeight float64

	scrollTween *scrollAnim
}

// NewCamera creates a camera at the top of the page.
func NewCamera(viewport Rect) *Camera {
	return &Camera{Viewport: viewport}
}

// ScrollTo animates the camera to the given page position over duration
// seconds. A non-positive duration jumps immediately.
func (c *Camera) ScrollTo(y float64, duration float32, easeFn ease.TweenFunc) {
	if duration <= 0 {
		c.scrollTween = nil
		c.ScrollY = y
		c.ClampToBounds()
		return
	}
	c.scrollTween = &scrollAnim{
		tween: gween.New(float32(c.ScrollY), float32(y), duration, easeFn),
	}
}

// ScrollBy moves the camera by dy immediately and cancels any running
// scroll-to animation.
func (c *Camera) ScrollBy(dy float64) {
	c.scrollTween = nil
	c.ScrollY += dy
	c.ClampToBounds()
}

// Scrolling reports whether a scroll-to animation is running.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// SetPageHeight enables bounds clamping for a page of the given height.
func (c *Camera) SetPageHeight(h float64) {
	c.BoundsEnabled = true
	c.PageHeight = h
	c.ClampToBounds()
}

// ClampToBounds immediately clamps ScrollY so the viewport stays within
// the page. No-op if BoundsEnabled is false.
func (c *Camera) ClampToBounds() {
	if !c.BoundsEnabled {
		return
	}
	maxY := math.Max(0, c.PageHeight-c.Viewport.Height)
	c.ScrollY = math.Max(0, math.Min(c.ScrollY, maxY))
}

// update advances the scroll animation. Called from Scene.Update().
func (c *Camera) update(dt float32) {
	if c.scrollTween == nil {
		return
	}
	val, done := c.scrollTween.tween.Update(dt)
	c.ScrollY = float64(val)
	if done {
		c.scrollTween = nil
	}
	c.ClampToBounds()
}

// WorldToScreen converts page coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return wx + c.Viewport.X, wy - c.ScrollY + c.Viewport.Y
}

// ScreenToWorld converts screen coordinates to page coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	return sx - c.Viewport.X, sy - c.Viewport.Y + c.ScrollY
}

// VisibleBounds returns the page-space rectangle the camera shows.
func (c *Camera) VisibleBounds() Rect {
	return Rect{X: 0, Y: c.ScrollY, Width: c.Viewport.Width, Height: c.Viewport.Height}
}
