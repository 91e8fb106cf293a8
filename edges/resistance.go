package edges

import "github.com/labwc/labwc-core/geom"

// Strength controls edge resistance: positive values make it harder to
// cross a nearby edge (the view sticks before the cursor reaches it),
// negative values make it easier (the view jumps slightly early), zero
// disables resistance entirely. This is the <windowEdgeStrength> /
// <screenEdgeStrength> config value.
type Strength int

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// withinResistanceRange reports, per side, whether target's edge falls in
// the "sticky" range around other's corresponding edge, following
// is_within_resistance_range: the range only applies on the side from
// which view is approaching (e.g. the left-edge check only runs if view
// starts at or right of other's left edge).
func withinResistanceRange(view, target, other geom.Edges, strength int) (left, right, top, bottom bool) {
	if view.Left >= other.Left {
		lo := other.Left - abs(strength)
		hi := other.Left - min(strength, 0)
		left = target.Left >= lo && target.Left < hi
	}
	if !left && view.Right <= other.Right {
		lo := other.Right + min(strength, 0)
		hi := other.Right + abs(strength)
		right = target.Right > lo && target.Right <= hi
	}
	if view.Top >= other.Top {
		lo := other.Top - abs(strength)
		hi := other.Top - min(strength, 0)
		top = target.Top >= lo && target.Top < hi
	}
	if !top && view.Bottom <= other.Bottom {
		lo := other.Bottom + min(strength, 0)
		hi := other.Bottom + abs(strength)
		bottom = target.Bottom > lo && target.Bottom <= hi
	}
	return
}

// updateNearestEdge folds one trial region's resistance flags into next,
// following update_nearest_edge: a sticky left/top edge raises the floor
// (MAX), a sticky right/bottom edge lowers the ceiling (MIN).
func updateNearestEdge(view, target, region geom.Edges, strength int, next *geom.Edges) {
	left, right, top, bottom := withinResistanceRange(view, target, region, strength)
	if left {
		next.Left = max(region.Left, next.Left)
	} else if right {
		next.Right = min(region.Right, next.Right)
	}
	if top {
		next.Top = max(region.Top, next.Top)
	} else if bottom {
		next.Bottom = min(region.Bottom, next.Bottom)
	}
}

// buildViewEdges computes the current and target edges used for
// resistance comparisons, following build_view_edges. The +1 nudge on a
// move's current edges (vs. a resize's) reproduces the original's
// asymmetric "currently touching" tie-break for drags in progress.
func buildViewEdges(current geom.Box, effHeight int, border geom.Border, newGeom geom.Box, move bool) (view, target geom.Edges) {
	nudge := 0
	if move {
		nudge = 1
	}
	view = geom.Edges{
		Left:   current.X - border.Left + nudge,
		Top:    current.Y - border.Top + nudge,
		Right:  current.X + current.Width + border.Right,
		Bottom: current.Y + effHeight + border.Bottom,
	}
	target = geom.Edges{
		Left:   newGeom.X - border.Left,
		Top:    newGeom.Y - border.Top,
		Right:  newGeom.X + newGeom.Width + border.Right,
		Bottom: newGeom.Y + newGeom.Height + border.Bottom,
	}
	return
}

// Resistance computes the screen- and neighbor-edge resistance for a
// view's current state, following resistance_move_apply /
// resistance_resize_apply: ScreenEdges and NeighborEdges are searched
// separately (each gated by its own Strength being non-zero) and folded
// into a single next-edges result the caller clips a move or resize to.
type Resistance struct {
	ScreenStrength   Strength
	NeighborStrength Strength
}

// NeighborBox is one other view's current box and SSD margin, as seen by
// resistance's neighbor-edge search. Note the edges here are intentionally
// the *inverse* sides of a normal box: win_edges is built with
// top/bottom and left/right swapped, since a view approaching from the
// left of a neighbor "encounters" that neighbor's left edge as a right
// boundary, and vice versa.
type NeighborBox struct {
	Box    geom.Box
	Margin geom.Border
}

func neighborRegion(n NeighborBox) geom.Edges {
	return geom.Edges{
		Top:    n.Box.Y + n.Box.Height + n.Margin.Bottom,
		Right:  n.Box.X - n.Margin.Left,
		Bottom: n.Box.Y - n.Margin.Top,
		Left:   n.Box.X + n.Box.Width + n.Margin.Right,
	}
}

// Apply computes resistance-adjusted move coordinates for a view being
// dragged from current to (x, y), following resistance_move_apply.
func (r Resistance) Apply(current geom.Box, effHeight int, border geom.Border, screens []OutputUsable, neighbors []NeighborBox, x, y int) (int, int) {
	newGeom := geom.Box{X: x, Y: y, Width: current.Width, Height: current.Height}
	next := geom.UnboundedEdges()

	if r.ScreenStrength != 0 {
		view, target := buildViewEdges(current, effHeight, border, newGeom, true)
		for _, o := range screens {
			region := geom.Edges{
				Top:    o.Usable.Y,
				Right:  o.Usable.X + o.Usable.Width,
				Bottom: o.Usable.Y + o.Usable.Height,
				Left:   o.Usable.X,
			}
			updateNearestEdge(view, target, region, int(r.ScreenStrength), &next)
		}
	}
	if r.NeighborStrength != 0 {
		view, target := buildViewEdges(current, effHeight, border, newGeom, true)
		for _, n := range neighbors {
			updateNearestEdge(view, target, neighborRegion(n), int(r.NeighborStrength), &next)
		}
	}

	if next.Left > geom.UnboundedMin {
		x = next.Left + border.Left
	} else if next.Right < geom.UnboundedMax {
		x = next.Right - current.Width - border.Right
	}
	if next.Top > geom.UnboundedMin {
		y = next.Top + border.Top
	} else if next.Bottom < geom.UnboundedMax {
		y = next.Bottom - border.Bottom - effHeight
	}
	return x, y
}

// ApplyResize computes resistance-adjusted resize geometry, following
// resistance_resize_apply. resizing names which edges the gesture is
// moving; geo is mutated in place.
func (r Resistance) ApplyResize(current geom.Box, border geom.Border, screens []OutputUsable, neighbors []NeighborBox, resizing geom.EdgeSet, geo *geom.Box) {
	next := geom.UnboundedEdges()

	if r.ScreenStrength != 0 {
		view, target := buildViewEdges(current, current.Height, border, *geo, false)
		for _, o := range screens {
			region := geom.Edges{
				Top:    o.Usable.Y,
				Right:  o.Usable.X + o.Usable.Width,
				Bottom: o.Usable.Y + o.Usable.Height,
				Left:   o.Usable.X,
			}
			updateNearestEdge(view, target, region, int(r.ScreenStrength), &next)
		}
	}
	if r.NeighborStrength != 0 {
		view, target := buildViewEdges(current, current.Height, border, *geo, false)
		for _, n := range neighbors {
			updateNearestEdge(view, target, neighborRegion(n), int(r.NeighborStrength), &next)
		}
	}

	switch {
	case resizing.Has(geom.EdgeLeft):
		if next.Left > geom.UnboundedMin {
			geo.X = next.Left + border.Left
			geo.Width = current.Width + current.X - geo.X
		}
	case resizing.Has(geom.EdgeRight):
		if next.Right < geom.UnboundedMax {
			geo.Width = next.Right - current.X - border.Right
		}
	}
	switch {
	case resizing.Has(geom.EdgeTop):
		if next.Top > geom.UnboundedMin {
			geo.Y = next.Top + border.Top
			geo.Height = current.Height + current.Y - geo.Y
		}
	case resizing.Has(geom.EdgeBottom):
		if next.Bottom < geom.UnboundedMax {
			geo.Height = next.Bottom - current.Y - border.Bottom
		}
	}
}
