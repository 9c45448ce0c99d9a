package scroller

import (
	"github.com/robinovitch61/vl/internal/fixtures"
	"testing"
)

type extent struct {
	content, viewport int
}

func (e *extent) ContentHeight() int { return e.content }

func (e *extent) ViewportHeight() int { return e.viewport }

func TestNative_ScrollToClamps(t *testing.T) {
	n := NewNative(&extent{content: 100, viewport: 10})
	calls := 0
	n.OnScroll(func() { calls++ })

	n.ScrollTo(50, true)
	fixtures.Cmp(t, 50, n.Offset())
	n.ScrollTo(500, false)
	fixtures.Cmp(t, 90, n.Offset())
	n.ScrollBy(-200)
	fixtures.Cmp(t, 0, n.Offset())
	n.ScrollTo(0, false)
	fixtures.Cmp(t, 3, calls)
	if n.IsScrolling() {
		t.Errorf("native never animates")
	}
}

func TestNative_RefreshAfterShrink(t *testing.T) {
	e := &extent{content: 100, viewport: 10}
	n := NewNative(e)
	n.ScrollTo(80, false)
	e.content = 40
	n.Refresh()
	fixtures.Cmp(t, 30, n.Offset())
	e.content = 5
	n.Refresh()
	fixtures.Cmp(t, 0, n.Offset())
	fixtures.Cmp(t, 0, n.MaxOffset())
}

func TestMomentum_ImmediateScroll(t *testing.T) {
	m := NewMomentum(&extent{content: 100, viewport: 10})
	m.ScrollTo(40, false)
	fixtures.Cmp(t, 40, m.Offset())
	if m.IsScrolling() {
		t.Errorf("expected no animation")
	}
}

func TestMomentum_AnimatedScrollEasesToTarget(t *testing.T) {
	m := NewMomentum(&extent{content: 1000, viewport: 10})
	var offsets []int
	m.OnScroll(func() { offsets = append(offsets, m.Offset()) })

	m.ScrollTo(100, true)
	if !m.IsScrolling() {
		t.Fatalf("expected animation in progress")
	}
	// the first step happens right away
	fixtures.Cmp(t, []int{35}, offsets)

	steps := 0
	for m.IsScrolling() {
		m.Step()
		steps++
		if steps > 50 {
			t.Fatalf("animation never finished")
		}
	}
	fixtures.Cmp(t, 100, m.Offset())
	for i := 1; i < len(offsets); i++ {
		if offsets[i] <= offsets[i-1] {
			t.Errorf("expected strictly increasing offsets, got %v", offsets)
		}
	}
	if m.Step() {
		t.Errorf("expected no movement once settled")
	}
}

func TestMomentum_AnimatedScrollToCurrentOffset(t *testing.T) {
	m := NewMomentum(&extent{content: 1000, viewport: 10})
	m.ScrollTo(0, true)
	if m.IsScrolling() {
		t.Errorf("expected nothing to animate")
	}
}

func TestMomentum_FlingCoastsToStop(t *testing.T) {
	m := NewMomentum(&extent{content: 1000, viewport: 10})
	m.Fling(8)
	if !m.IsScrolling() {
		t.Fatalf("expected fling in progress")
	}
	steps := 0
	for m.IsScrolling() {
		m.Step()
		steps++
		if steps > 100 {
			t.Fatalf("fling never stopped")
		}
	}
	if m.Offset() <= 8 {
		t.Errorf("expected fling to coast past its first step, got %d", m.Offset())
	}
	// the sum of a geometric series with ratio Friction bounds the distance
	bound := 8 / (1 - Friction)
	if m.Offset() > int(bound)+1 {
		t.Errorf("fling went too far: %d", m.Offset())
	}
}

func TestMomentum_FlingStopsAtEdge(t *testing.T) {
	m := NewMomentum(&extent{content: 20, viewport: 10})
	m.Fling(-5)
	if m.IsScrolling() {
		t.Errorf("expected fling at the top edge to stop")
	}
	m.Fling(30)
	for i := 0; m.IsScrolling() && i < 100; i++ {
		m.Step()
	}
	fixtures.Cmp(t, 10, m.Offset())
	if m.IsScrolling() {
		t.Errorf("expected fling to stop at the bottom edge")
	}
}

func TestMomentum_ScrollInterruptsFling(t *testing.T) {
	m := NewMomentum(&extent{content: 1000, viewport: 10})
	m.Fling(10)
	m.ScrollBy(1)
	if m.IsScrolling() {
		t.Errorf("expected ScrollBy to stop the fling")
	}
	m.Fling(10)
	m.ScrollTo(3, false)
	if m.IsScrolling() {
		t.Errorf("expected ScrollTo to stop the fling")
	}
	fixtures.Cmp(t, 3, m.Offset())
}

func TestMomentum_RefreshClampsTarget(t *testing.T) {
	e := &extent{content: 1000, viewport: 10}
	m := NewMomentum(e)
	m.ScrollTo(500, true)
	e.content = 60
	m.Refresh()
	for i := 0; m.IsScrolling() && i < 50; i++ {
		m.Step()
	}
	fixtures.Cmp(t, 50, m.Offset())
}
