package reveal

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenToReachesTarget(t *testing.T) {
	n := newLetter("l", "a", 10, 10)
	n.Shift = 100
	tw := NewTweener()

	tw.To(n, 0, 1.0, ease.Linear, 0, nil)

	// Exact halves avoid float32 accumulation drift.
	tw.Update(0.5)
	if math.Abs(n.Shift-50) > 0.5 {
		t.Errorf("Shift = %f, want ~50 at halfway", n.Shift)
	}
	tw.Update(0.5)
	if n.Shift != 0 {
		t.Errorf("Shift = %f, want exactly 0", n.Shift)
	}
	if tw.Pending(n) != 0 {
		t.Errorf("Pending = %d, want 0 after completion", tw.Pending(n))
	}
}

func TestTweenToHonorsDelay(t *testing.T) {
	n := newLetter("l", "a", 10, 10)
	n.Shift = 100
	tw := NewTweener()

	tw.To(n, 0, 1.0, ease.Linear, 0.5, nil)

	tw.Update(0.25)
	if n.Shift != 100 {
		t.Errorf("Shift = %f, want untouched during delay", n.Shift)
	}

	// Crosses the delay boundary; the remainder advances the tween.
	tw.Update(0.5)
	if math.Abs(n.Shift-75) > 0.5 {
		t.Errorf("Shift = %f, want ~75", n.Shift)
	}
}

func TestTweenToCapturesStartAfterDelay(t *testing.T) {
	n := newLetter("l", "a", 10, 10)
	n.Shift = 100
	tw := NewTweener()

	// Second stage starts where the first one ends.
	tw.To(n, 40, 1.0, ease.Linear, 0, nil)
	tw.To(n, 0, 1.0, ease.Linear, 1.0, nil)

	tw.Update(0.5)
	tw.Update(0.5)
	if n.Shift != 40 {
		t.Fatalf("Shift = %f, want 40 after first stage", n.Shift)
	}
	tw.Update(0.5)
	if math.Abs(n.Shift-20) > 0.5 {
		t.Errorf("Shift = %f, want ~20 halfway through second stage", n.Shift)
	}
}

func TestTweenFromToWritesImmediately(t *testing.T) {
	n := newLetter("l", "a", 10, 10)
	n.Shift = 0
	tw := NewTweener()

	tw.FromTo(n, 100, 50, 1.0, ease.Linear, 2.0)
	if n.Shift != 100 {
		t.Errorf("Shift = %f, want 100 written before the delay", n.Shift)
	}
	if v := tw.Value(n); v != 100 {
		t.Errorf("Value = %f, want 100", v)
	}

	tw.Update(2.5)
	if v := tw.Value(n); v != 75 {
		t.Errorf("Value = %f, want 75 halfway", v)
	}
}

func TestTweenOnCompleteRunsOnce(t *testing.T) {
	n := newLetter("l", "a", 10, 10)
	tw := NewTweener()
	calls := 0

	tw.To(n, 0, 0.5, ease.Linear, 0, func() { calls++ })
	tw.Update(0.25)
	if calls != 0 {
		t.Fatal("onComplete fired early")
	}
	tw.Update(0.25)
	tw.Update(0.25)
	if calls != 1 {
		t.Errorf("onComplete calls = %d, want 1", calls)
	}
}

func TestTweenKillCancelsPending(t *testing.T) {
	n := newLetter("l", "a", 10, 10)
	other := newLetter("o", "b", 10, 10)
	n.Shift, other.Shift = 100, 100
	tw := NewTweener()
	fired := false

	tw.To(n, 0, 1.0, ease.Linear, 0, func() { fired = true })
	tw.To(n, 50, 1.0, ease.Linear, 0.5, nil)
	tw.To(other, 0, 1.0, ease.Linear, 0, nil)

	tw.Update(0.25)
	tw.Kill(n)
	if tw.Pending(n) != 0 {
		t.Errorf("Pending(n) = %d, want 0 after Kill", tw.Pending(n))
	}
	if tw.Pending(other) != 1 {
		t.Errorf("Pending(other) = %d, want 1", tw.Pending(other))
	}

	saved := n.Shift
	tw.Update(2)
	if n.Shift != saved {
		t.Errorf("Shift changed to %f after Kill", n.Shift)
	}
	if fired {
		t.Error("killed tween should not complete")
	}
	if other.Shift != 0 {
		t.Errorf("other.Shift = %f, want 0", other.Shift)
	}
}

func TestTweenKillFromCallback(t *testing.T) {
	n := newLetter("l", "a", 10, 10)
	tw := NewTweener()

	tw.To(n, 0, 0.5, ease.Linear, 0, func() {
		tw.Kill(n)
		tw.Repeat(n, -3, 1, ease.Linear, true, 0)
	})
	tw.Update(0.5)

	if tw.Pending(n) != 1 {
		t.Fatalf("Pending = %d, want the repeat scheduled by the callback", tw.Pending(n))
	}
	tw.Update(0.5)
	if math.Abs(n.Shift+1.5) > 0.1 {
		t.Errorf("Shift = %f, want ~-1.5", n.Shift)
	}
}

func TestTweenRepeatYoyoWithPause(t *testing.T) {
	n := newLetter("l", "a", 10, 10)
	tw := NewTweener()

	tw.Repeat(n, -3, 1.0, ease.Linear, true, 0.5)

	tw.Update(0.5)
	tw.Update(0.5)
	if n.Shift != -3 {
		t.Fatalf("Shift = %f, want -3 at the end of the first leg", n.Shift)
	}

	// Pause holds the value.
	tw.Update(0.25)
	if n.Shift != -3 {
		t.Errorf("Shift = %f, want -3 during pause", n.Shift)
	}
	tw.Update(0.25)
	tw.Update(0.5)
	if math.Abs(n.Shift+1.5) > 0.1 {
		t.Errorf("Shift = %f, want ~-1.5 halfway back", n.Shift)
	}
	tw.Update(0.5)
	if n.Shift != 0 {
		t.Errorf("Shift = %f, want 0 after the return leg", n.Shift)
	}
	if tw.Pending(n) != 1 {
		t.Errorf("Pending = %d, repeat should never finish", tw.Pending(n))
	}
}

func TestTweenRepeatWithoutYoyoRestarts(t *testing.T) {
	n := newLetter("l", "a", 10, 10)
	tw := NewTweener()

	tw.Repeat(n, 10, 1.0, ease.Linear, false, 0)
	tw.Update(0.5)
	tw.Update(0.5)
	tw.Update(0.5)
	if math.Abs(n.Shift-5) > 0.1 {
		t.Errorf("Shift = %f, want ~5 after restart from origin", n.Shift)
	}
}

func TestTweenZeroDurationSnaps(t *testing.T) {
	n := newLetter("l", "a", 10, 10)
	n.Shift = 100
	tw := NewTweener()

	tw.To(n, 0, 0, ease.Linear, 0, nil)
	tw.Update(0.01)
	if n.Shift != 0 {
		t.Errorf("Shift = %f, want 0", n.Shift)
	}
}

func TestTweenDisposedTarget(t *testing.T) {
	n := newLetter("l", "a", 10, 10)
	n.Shift = 100
	tw := NewTweener()

	tw.To(n, 0, 1.0, ease.Linear, 0, nil)
	n.Dispose()
	tw.Update(0.5)

	if n.Shift != 100 {
		t.Errorf("Shift changed to %f on disposed node", n.Shift)
	}
	if tw.Len() != 0 {
		t.Errorf("Len = %d, want 0", tw.Len())
	}
}

func TestTweenNilTargetIgnored(t *testing.T) {
	tw := NewTweener()
	tw.To(nil, 0, 1, ease.Linear, 0, nil)
	tw.FromTo(nil, 0, 1, 1, ease.Linear, 0)
	tw.Repeat(nil, 0, 1, ease.Linear, true, 0)
	if tw.Len() != 0 {
		t.Errorf("Len = %d, want 0", tw.Len())
	}
}

func TestTweenEasingFunctionsProduceDifferentCurves(t *testing.T) {
	lin := newLetter("lin", "a", 10, 10)
	cub := newLetter("cub", "b", 10, 10)
	lin.Shift, cub.Shift = 100, 100
	tw := NewTweener()

	tw.To(lin, 0, 1.0, ease.Linear, 0, nil)
	tw.To(cub, 0, 1.0, ease.OutCubic, 0, nil)
	tw.Update(0.5)

	// OutCubic runs ahead of linear at the midpoint.
	if cub.Shift >= lin.Shift-1 {
		t.Errorf("OutCubic should lead: linear=%f cubic=%f", lin.Shift, cub.Shift)
	}
}

func TestTweenerUpdateZeroAlloc(t *testing.T) {
	n := newLetter("alloc", "a", 10, 10)
	tw := NewTweener()
	tw.Repeat(n, -3, 4, ease.InOutSine, true, 1)

	// Warm up.
	tw.Update(0.01)

	result := testing.AllocsPerRun(100, func() {
		tw.Update(0.001)
	})
	if result > 0 {
		t.Errorf("Tweener.Update allocated %f times per run, want 0", result)
	}
}
