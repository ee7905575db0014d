package reveal

import (
	"fmt"
	"os"
)

// debugLogf prints one prefixed line to stderr. Callers check the debug
// flag first.
func debugLogf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[reveal] "+format+"\n", args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("reveal debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckChildCount warns on stderr if a heading grows past the point
// where per-letter tweening stays cheap.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		debugLogf("warning: node %q has %d children (threshold %d)",
			n.Name, len(n.children), debugMaxChildCount)
	}
}

// debugSummaryFrames is how often, in ticks, debug mode logs a summary.
const debugSummaryFrames = 120

// debugSummary logs the live tween and subscription counts.
func (s *Scene) debugSummary() {
	if !s.debug {
		return
	}
	debugLogf("frame %d: scroll %.0f | tweens %d | observed %d | blocks %d",
		s.frame, s.camera.ScrollY, s.tweens.Len(), s.observer.Len(), len(s.controller.Blocks()))
}
