package figbridge

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenAlphaHalfway(t *testing.T) {
	n := NewContainer("Main")
	g := TweenAlpha(n, 0, 1, ease.Linear)

	g.Update(0.5)
	if g.Done {
		t.Fatal("done at halfway")
	}
	if math.Abs(n.Alpha-0.5) > 0.05 {
		t.Errorf("Alpha = %f at halfway, want ~0.5", n.Alpha)
	}

	g.Update(0.5)
	g.Update(0.1)
	if !g.Done || math.Abs(n.Alpha) > 0.01 {
		t.Errorf("Done=%v Alpha=%f after the duration", g.Done, n.Alpha)
	}
}

func TestTweenEasing(t *testing.T) {
	lin := NewContainer("linear")
	out := NewContainer("out")
	lin.Alpha, out.Alpha = 0, 0
	gl := TweenAlpha(lin, 1, 1, ease.Linear)
	gOut := TweenAlpha(out, 1, 1, ease.OutCubic)
	gl.Update(0.5)
	gOut.Update(0.5)

	if out.Alpha <= lin.Alpha {
		t.Errorf("OutCubic %f not ahead of Linear %f at midpoint", out.Alpha, lin.Alpha)
	}
}

// A rebuild disposes the previous frames; a fade still running on one of them
// must stop without writing to it.
func TestFadeStopsWhenFrameIsRebuilt(t *testing.T) {
	s, b := newTestBuilder()
	doc := page(design("1:1", "Main", DesignFrame, 0, 0, 200, 100))

	res := mustBuild(t, b, doc)
	fade, err := res.Frames.Fade("Main", 1, ease.Linear)
	if err != nil {
		t.Fatalf("Fade: %v", err)
	}
	fade.Update(0.25)
	old := res.Frames.Get("Main")
	alpha := old.Alpha

	mustBuild(t, b, doc)
	if !old.IsDisposed() {
		t.Fatal("previous frame still live after rebuild")
	}
	fade.Update(0.25)
	if !fade.Done {
		t.Error("fade on a disposed frame not marked done")
	}
	if old.Alpha != alpha {
		t.Errorf("disposed frame alpha changed from %f to %f", alpha, old.Alpha)
	}
	if got := mustFind(t, s, "Main [Frame]"); got == old {
		t.Error("scene still holds the disposed frame")
	}
}

func TestTweenUpdateZeroAlloc(t *testing.T) {
	n := NewContainer("alloc")
	g := TweenAlpha(n, 0, 1, ease.Linear)
	g.Update(0.01)

	if allocs := testing.AllocsPerRun(100, func() { g.Update(0.001) }); allocs > 0 {
		t.Errorf("Update allocated %f times per run, want 0", allocs)
	}
}
