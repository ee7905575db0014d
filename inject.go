package reveal

// InjectScroll queues a scroll of dy page pixels. Injected scrolls are
// consumed one per frame and replace real wheel and keyboard input for
// that frame.
func (s *Scene) InjectScroll(dy float64) {
	s.injectQueue = append(s.injectQueue, dy)
}

// InjectScrollOver spreads a scroll of dy evenly across frames, mimicking a
// wheel flick. Minimum frames is 1.
func (s *Scene) InjectScrollOver(dy float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	part := dy / float64(frames)
	for i := 0; i < frames; i++ {
		s.InjectScroll(part)
	}
}

// processInjectedInput pops one queued scroll and applies it to the camera.
// Returns true if an event was consumed (real input should be skipped).
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	dy := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.camera.ScrollBy(dy)
	return true
}
