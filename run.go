package reveal

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// ExitWhenScripted ends the loop once an attached TestRunner is done.
	ExitWhenScripted bool
}

// Run opens a window and drives scene until the window is closed. For full
// control, implement ebiten.Game yourself and call Scene.Update and
// Scene.Draw directly.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("reveal: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&game{scene: scene, cfg: cfg})
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
	cfg   RunConfig

	fpsImg   *ebiten.Image
	fpsTimer float64
}

func (g *game) Update() error {
	g.scene.Update()
	if g.cfg.ExitWhenScripted && g.scene.testRunner != nil && g.scene.testRunner.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.cfg.ShowFPS {
		g.drawFPS(screen)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// drawFPS draws the current FPS and TPS in the top-left corner, refreshing
// the readout every half second.
func (g *game) drawFPS(screen *ebiten.Image) {
	if g.fpsImg == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		g.fpsImg = ebiten.NewImage(100, 32)
	}
	g.fpsTimer += 1 / float64(ebiten.TPS())
	if g.fpsTimer >= 0.5 || g.scene.frame <= 1 {
		g.fpsTimer = 0
		g.fpsImg.Clear()
		g.fpsImg.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(g.fpsImg, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	screen.DrawImage(g.fpsImg, nil)
}
