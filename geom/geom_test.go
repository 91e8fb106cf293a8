package geom

import "testing"

func TestBoxEdges(t *testing.T) {
	b := Box{X: 10, Y: 20, Width: 100, Height: 50}
	if b.Left() != 10 || b.Top() != 20 || b.Right() != 110 || b.Bottom() != 70 {
		t.Fatalf("edges = %d,%d,%d,%d", b.Left(), b.Top(), b.Right(), b.Bottom())
	}
}

func TestBoxGrow(t *testing.T) {
	b := Box{X: 10, Y: 10, Width: 100, Height: 100}
	got := b.Grow(Border{Top: 1, Right: 2, Bottom: 3, Left: 4})
	want := Box{X: 6, Y: 9, Width: 106, Height: 104}
	if got != want {
		t.Fatalf("Grow = %+v, want %+v", got, want)
	}
}

func TestBoxContains(t *testing.T) {
	b := Box{X: 0, Y: 0, Width: 10, Height: 10}
	if !b.Contains(5, 5) {
		t.Fatal("expected (5,5) inside box")
	}
	if b.Contains(10, 10) {
		t.Fatal("box bounds are half-open; (10,10) is outside")
	}
}

func TestBoxIntersects(t *testing.T) {
	a := Box{X: 0, Y: 0, Width: 10, Height: 10}
	b := Box{X: 5, Y: 5, Width: 10, Height: 10}
	c := Box{X: 20, Y: 20, Width: 10, Height: 10}
	if !a.Intersects(b) {
		t.Fatal("expected overlapping boxes to intersect")
	}
	if a.Intersects(c) {
		t.Fatal("expected disjoint boxes not to intersect")
	}
}

func TestClippedAddSaturates(t *testing.T) {
	if got := ClippedAdd(UnboundedMax-1, 10); got != UnboundedMax {
		t.Fatalf("ClippedAdd overflow = %d, want %d", got, UnboundedMax)
	}
	if got := ClippedAdd(UnboundedMin+1, -10); got != UnboundedMin {
		t.Fatalf("ClippedAdd underflow = %d, want %d", got, UnboundedMin)
	}
	if got := ClippedAdd(5, 3); got != 8 {
		t.Fatalf("ClippedAdd(5,3) = %d, want 8", got)
	}
}

func TestClippedSub(t *testing.T) {
	if got := ClippedSub(10, 3); got != 7 {
		t.Fatalf("ClippedSub(10,3) = %d, want 7", got)
	}
}

func TestBounded(t *testing.T) {
	if Bounded(UnboundedMax) || Bounded(UnboundedMin) {
		t.Fatal("sentinels must not be reported as bounded")
	}
	if !Bounded(0) {
		t.Fatal("0 must be reported as bounded")
	}
}

func TestEdgeGetBestPrefersBoundedOverUnbounded(t *testing.T) {
	if got := EdgeGetBest(UnboundedMax, 50, false); got != 50 {
		t.Fatalf("EdgeGetBest(unbounded, bounded) = %d, want 50", got)
	}
	if got := EdgeGetBest(50, UnboundedMax, false); got != 50 {
		t.Fatalf("EdgeGetBest(bounded, unbounded) = %d, want 50", got)
	}
}

func TestEdgeGetBestTieBreakByDirection(t *testing.T) {
	if got := EdgeGetBest(10, 20, true); got != 20 {
		t.Fatalf("EdgeGetBest decreasing = %d, want max 20", got)
	}
	if got := EdgeGetBest(10, 20, false); got != 10 {
		t.Fatalf("EdgeGetBest increasing = %d, want min 10", got)
	}
}

func TestEdgeSetHasAndEmpty(t *testing.T) {
	var s EdgeSet
	if !s.Empty() {
		t.Fatal("zero value EdgeSet should be empty")
	}
	s |= EdgeLeft | EdgeTop
	if s.Empty() {
		t.Fatal("expected non-empty after OR-ing in edges")
	}
	if !s.Has(EdgeLeft) || !s.Has(EdgeTop) {
		t.Fatal("expected Has true for both set edges")
	}
	if s.Has(EdgeRight) || s.Has(EdgeBottom) {
		t.Fatal("expected Has false for unset edges")
	}
}
