// Package reveal animates page headings letter by letter as they scroll
// into view, on top of [Ebitengine].
//
// Each heading is split into one node per visible letter. The first time a
// heading scrolls into its trigger window, every letter scrambles up from
// below its baseline to a random height, settles onto the baseline and then
// floats gently. Scrolling past snaps the letters to rest; scrolling back
// into the heading from below replays a shorter scramble. Headings already
// in view when the page loads reveal themselves after a short boot delay.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	cfg, err := reveal.LoadConfig("page.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	font, err := reveal.DefaultFont(cfg.FontSize)
//	if err != nil {
//		log.Fatal(err)
//	}
//	scene := reveal.NewScene(*cfg, font)
//	reveal.Run(scene, reveal.RunConfig{
//		Title: cfg.Title, Width: cfg.Width, Height: cfg.Height,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Pieces
//
// The [Controller] owns the reveal state machine. It depends on two small
// interfaces: a [Scheduler] of delayed offset tweens, implemented by
// [Tweener] on top of [gween], and a [Watcher] of trigger windows,
// implemented by [Observer]. Every viewport crossing reaches the controller
// through [Controller.Transition], one at a time. A controller built without
// either collaborator, or with reduced motion, shows every letter at rest
// and never schedules anything.
//
// # Configuration
//
// [Config] is read from YAML and then overlaid with REVEAL_* environment
// variables, so REVEAL_REDUCED_MOTION=true or REVEAL_DEBUG=true can be set
// without editing the page file.
//
// # Automated testing
//
// [Scene.InjectScroll] queues synthetic scroll deltas, and [LoadTestScript]
// sequences scrolls, waits and [Scene.Screenshot] captures from a JSON file.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package reveal
