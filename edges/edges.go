// Package edges implements the edge/snap search engine: finding the
// nearest neighboring view or output boundary a moving or resizing view
// edge should stick to, and the least-overlap placement search used to
// auto-place newly mapped views.
package edges

import "github.com/labwc/labwc-core/geom"

// Target is a candidate view or output edge set considered during a
// neighbor/output search: the box it occupies plus whether it should be
// skipped (not usable, wrong output, the moving view itself).
type Target struct {
	Box geom.Box
}

// Validator decides, for one axis of motion, whether a trial region's
// opposing or aligned edge should become the new "best" snap candidate.
// current/target describe the moving edge's position before and after the
// move; oppose/align describe the trial region's near and far edges along
// that axis; lesser is true when the moving edge is the left or top edge.
// It returns the new best offset (geom.UnboundedMin/Max to mean "keep
// best unchanged" is never needed: callers start from best itself).
type Validator func(best, current, target, oppose, align int, lesser bool) int

// SnapValidator is the default Validator: the moving edge sticks to the
// first region edge crossed while moving from current toward target,
// preferring an opposing edge (which keeps the configured gap) whenever
// both land between current and target.
func SnapValidator(best, current, target, oppose, align int, lesser bool) int {
	best = considerEdge(best, current, target, oppose, lesser)
	best = considerEdge(best, current, target, align, lesser)
	return best
}

// considerEdge treats an edge between current and target (inclusive of
// target) as a candidate; among candidates, the decreasing-move tie-break
// in geom.EdgeGetBest selects the one closest to current.
func considerEdge(best, current, target, edge int, lesser bool) int {
	if !geom.Bounded(edge) {
		return best
	}
	decreasing := target < current
	var crossed bool
	if decreasing {
		crossed = edge >= target && edge <= current
	} else {
		crossed = edge <= target && edge >= current
	}
	if !crossed {
		return best
	}
	return geom.EdgeGetBest(best, edge, decreasing)
}

// regionPad returns region, padded outward by gap for "aligned" edge
// comparisons only, so an aligned snap lands flush while an opposing
// snap keeps the gap.
func regionPad(region geom.Edges, gap int) geom.Edges {
	return geom.Edges{
		Left:   geom.ClippedSub(region.Left, gap),
		Right:  geom.ClippedAdd(region.Right, gap),
		Top:    geom.ClippedSub(region.Top, gap),
		Bottom: geom.ClippedAdd(region.Bottom, gap),
	}
}

// ValidateEdges runs validator against all four axes of a single trial
// region (view/target/region edges given in viewEdges/targetEdges/region),
// updating best in place.
func ValidateEdges(best *geom.Edges, viewEdges, targetEdges, region geom.Edges, gap int, validator Validator) {
	padded := regionPad(region, gap)

	best.Left = validator(best.Left, viewEdges.Left, targetEdges.Left, region.Right, padded.Left, true)
	best.Right = validator(best.Right, viewEdges.Right, targetEdges.Right, region.Left, padded.Right, false)
	best.Top = validator(best.Top, viewEdges.Top, targetEdges.Top, region.Bottom, padded.Top, true)
	best.Bottom = validator(best.Bottom, viewEdges.Bottom, targetEdges.Bottom, region.Top, padded.Bottom, false)
}

// ForTargetGeometry computes the outward-facing edges of box once grown by
// border and padded by gap; effHeight should already reflect shaded views
// (height 0).
func ForTargetGeometry(box geom.Box, effHeight int, border geom.Border, gap int) geom.Edges {
	return geom.Edges{
		Left:   box.X - border.Left - gap,
		Top:    box.Y - border.Top - gap,
		Right:  box.X + box.Width + border.Right + gap,
		Bottom: box.Y + effHeight + border.Bottom + gap,
	}
}

// Neighbor is one other view's box and margin, as seen by FindNeighbors.
type Neighbor struct {
	Box    geom.Box
	Margin geom.Border
	// EffHeight is the neighbor's effective (shaded-aware) height.
	EffHeight int
}

// FindNeighbors searches neighbors for the nearest edge a view moving from
// viewEdges toward targetEdges should snap to: each neighbor's current box
// (grown by its own SSD margin) is one trial region.
func FindNeighbors(viewEdges, targetEdges geom.Edges, neighbors []Neighbor, gap int, validator Validator) geom.Edges {
	best := geom.UnboundedEdges()
	for _, n := range neighbors {
		region := geom.Edges{
			Top:    n.Box.Y - n.Margin.Top,
			Left:   n.Box.X - n.Margin.Left,
			Bottom: n.Box.Y + n.Margin.Bottom + n.EffHeight,
			Right:  n.Box.X + n.Box.Width + n.Margin.Right,
		}
		ValidateEdges(&best, viewEdges, targetEdges, region, gap, validator)
	}
	return best
}

// OutputUsable is one candidate output's usable-area box, as seen by
// FindOutputs.
type OutputUsable struct {
	Usable geom.Box
}

// FindOutputs searches outputs for the nearest output boundary a view
// moving from viewEdges toward targetEdges should snap to, decomposed
// into four half-plane sub-problems (top, bottom, left, right), which
// prevents a view's bottom edge from snapping above an output's top edge.
func FindOutputs(viewEdges, targetEdges geom.Edges, outputs []OutputUsable, gap int, validator Validator) geom.Edges {
	best := geom.UnboundedEdges()
	for _, o := range outputs {
		usable := o.Usable

		halfPlane := func(screen, viewEff, targetEff geom.Edges) {
			ValidateEdges(&best, viewEff, targetEff, screen, gap, validator)
		}

		halfPlane(
			geom.Edges{Top: geom.UnboundedMin, Right: geom.UnboundedMax, Left: geom.UnboundedMin, Bottom: usable.Y},
			geom.Edges{Top: viewEdges.Top, Right: geom.UnboundedMax, Left: geom.UnboundedMin, Bottom: geom.UnboundedMax},
			geom.Edges{Top: targetEdges.Top, Right: geom.UnboundedMax, Left: geom.UnboundedMin, Bottom: geom.UnboundedMax},
		)
		halfPlane(
			geom.Edges{Top: usable.Y + usable.Height, Right: geom.UnboundedMax, Left: geom.UnboundedMin, Bottom: geom.UnboundedMax},
			geom.Edges{Top: geom.UnboundedMin, Right: geom.UnboundedMax, Left: geom.UnboundedMin, Bottom: viewEdges.Bottom},
			geom.Edges{Top: geom.UnboundedMin, Right: geom.UnboundedMax, Left: geom.UnboundedMin, Bottom: targetEdges.Bottom},
		)
		halfPlane(
			geom.Edges{Top: geom.UnboundedMin, Right: usable.X, Left: geom.UnboundedMin, Bottom: geom.UnboundedMax},
			geom.Edges{Top: geom.UnboundedMin, Right: geom.UnboundedMax, Left: viewEdges.Left, Bottom: geom.UnboundedMax},
			geom.Edges{Top: geom.UnboundedMin, Right: geom.UnboundedMax, Left: targetEdges.Left, Bottom: geom.UnboundedMax},
		)
		halfPlane(
			geom.Edges{Top: geom.UnboundedMin, Right: geom.UnboundedMax, Left: usable.X + usable.Width, Bottom: geom.UnboundedMax},
			geom.Edges{Top: geom.UnboundedMin, Right: viewEdges.Right, Left: geom.UnboundedMin, Bottom: geom.UnboundedMax},
			geom.Edges{Top: geom.UnboundedMin, Right: targetEdges.Right, Left: geom.UnboundedMin, Bottom: geom.UnboundedMax},
		)
	}
	return best
}

// AdjustMoveCoords clips a proposed move (x, y) to the nearest valid edge
// found by FindNeighbors/FindOutputs: motion is limited to the first
// valid intervening edge rather than allowed to pass through it.
func AdjustMoveCoords(edges geom.Edges, x, y *int, border geom.Border, gap, viewWidth, viewHeight, origX, origY int) {
	if origX != *x {
		adjustAxis1D(x, edges.Left, border.Left+gap, edges.Right, border.Right+gap+viewWidth, *x < origX)
	}
	if origY != *y {
		adjustAxis1D(y, edges.Top, border.Top+gap, edges.Bottom, border.Bottom+gap+viewHeight, *y < origY)
	}
}

func adjustAxis1D(coord *int, lesser, lesserOffset, greater, greaterOffset int, decreasing bool) {
	best := geom.UnboundedMax
	if geom.Bounded(lesser) {
		best = geom.ClippedAdd(lesser, lesserOffset)
	}
	if geom.Bounded(greater) {
		best = geom.EdgeGetBest(best, geom.ClippedSub(greater, greaterOffset), decreasing)
	}
	if geom.Bounded(best) {
		*coord = best
	}
}

// AdjustResizeGeom clips a proposed resize to the nearest valid edge in
// the direction(s) being resized.
func AdjustResizeGeom(edges geom.Edges, resizing geom.EdgeSet, box *geom.Box, border geom.Border, gap, origX, origY, origWidth, origHeight int) {
	switch {
	case resizing.Has(geom.EdgeLeft):
		if geom.Bounded(edges.Left) {
			box.X = edges.Left + border.Left + gap
			box.Width = origWidth + origX - box.X
		}
	case resizing.Has(geom.EdgeRight):
		if geom.Bounded(edges.Right) {
			box.Width = edges.Right - origX - border.Right - gap
		}
	}
	switch {
	case resizing.Has(geom.EdgeTop):
		if geom.Bounded(edges.Top) {
			box.Y = edges.Top + border.Top + gap
			box.Height = origHeight + origY - box.Y
		}
	case resizing.Has(geom.EdgeBottom):
		if geom.Bounded(edges.Bottom) {
			box.Height = edges.Bottom - origY - border.Bottom - gap
		}
	}
}
