package edges

import (
	"testing"

	"github.com/labwc/labwc-core/geom"
)

func TestFindBestPlacementVacantRegion(t *testing.T) {
	usable := geom.Box{X: 0, Y: 0, Width: 1920, Height: 1080}
	others := []PlacementTarget{
		{Box: geom.Box{X: 0, Y: 0, Width: 800, Height: 600}},
	}
	got := FindBestPlacement(usable, geom.Border{}, 10, 500, 400, others)
	want := geom.Box{X: 810, Y: 10, Width: 500, Height: 400}
	if got != want {
		t.Fatalf("FindBestPlacement = %+v, want %+v", got, want)
	}
}

func TestFindBestPlacementNoOthersUsesCorner(t *testing.T) {
	usable := geom.Box{X: 0, Y: 0, Width: 1920, Height: 1080}
	got := FindBestPlacement(usable, geom.Border{}, 10, 500, 400, nil)
	want := geom.Box{X: 10, Y: 10, Width: 500, Height: 400}
	if got != want {
		t.Fatalf("FindBestPlacement(no others) = %+v, want %+v", got, want)
	}
}

func TestSnapConstraintEscapesStickyEdge(t *testing.T) {
	var c SnapConstraint
	view := "terminal"

	// First resize snaps to x+w=1000, client clamps to x+w=996.
	target := geom.Box{X: 0, Y: 0, Width: 1000, Height: 100}
	c.Set(view, geom.DirRight, target)
	clamped := geom.Box{X: 0, Y: 0, Width: 996, Height: 100}
	c.Update(view, target, clamped)

	// A subsequent resize with pending geometry matching the clamped
	// commit should substitute the original (uncommitted) snap offset,
	// letting the resize progress past the sticky edge.
	pending := geom.Box{X: 0, Y: 0, Width: 996, Height: 100}
	eff := c.Effective(view, geom.DirRight, pending)
	if eff.Width != 1000 {
		t.Fatalf("Effective width = %d, want 1000 (escaping the sticky edge)", eff.Width)
	}

	// Once the raw target moves past the sticky offset, the constraint no
	// longer applies and the raw pending value passes through unchanged.
	raw := geom.Box{X: 0, Y: 0, Width: 1003, Height: 100}
	eff2 := c.Effective(view, geom.DirRight, raw)
	if eff2.Width != 1003 {
		t.Fatalf("Effective width past sticky edge = %d, want 1003 unchanged", eff2.Width)
	}
}

func TestSnapConstraintInvalidatesOnViewChange(t *testing.T) {
	var c SnapConstraint
	c.Set("a", geom.DirLeft, geom.Box{X: 5, Width: 10, Height: 10})
	c.Invalidate("b")
	if !geom.Bounded(c.offset) {
		t.Fatal("Invalidate with a different view should not clear the constraint")
	}
	c.Invalidate("a")
	if geom.Bounded(c.offset) {
		t.Fatal("Invalidate with the matching view should clear the constraint")
	}
}

func TestFindNeighborsOrderIndependent(t *testing.T) {
	viewEdges := geom.Edges{Left: 100, Right: 500, Top: 100, Bottom: 400}
	targetEdges := geom.Edges{Left: 0, Right: 400, Top: 100, Bottom: 400}

	n1 := Neighbor{Box: geom.Box{X: -50, Y: 0, Width: 100, Height: 1000}}
	n2 := Neighbor{Box: geom.Box{X: 600, Y: 0, Width: 100, Height: 1000}}

	a := FindNeighbors(viewEdges, targetEdges, []Neighbor{n1, n2}, 0, SnapValidator)
	b := FindNeighbors(viewEdges, targetEdges, []Neighbor{n2, n1}, 0, SnapValidator)
	if a != b {
		t.Fatalf("FindNeighbors should be order-independent: %+v vs %+v", a, b)
	}
}

func TestResistanceSticksNearScreenEdge(t *testing.T) {
	// Resistance catches a drag that overshoots the screen edge by less
	// than the configured strength, snapping it back to the edge.
	r := Resistance{ScreenStrength: 10}
	current := geom.Box{X: 50, Y: 50, Width: 200, Height: 100}
	screens := []OutputUsable{{Usable: geom.Box{X: 0, Y: 0, Width: 1920, Height: 1080}}}

	x, y := r.Apply(current, 100, geom.Border{}, screens, nil, -4, 50)
	if x != 0 {
		t.Fatalf("expected resistance to stick the left edge at 0, got x=%d", x)
	}
	_ = y
}
