// Package geom provides the box and edge arithmetic shared by the view,
// ssd and edges packages: clipped integer math, axis-aligned boxes and the
// 1-D "edge" primitive used by the snapping engine.
package geom

import "math"

// Box is an axis-aligned rectangle in layout (logical pixel) coordinates.
type Box struct {
	X, Y          int
	Width, Height int
}

// Border is a per-side thickness, e.g. the SSD margin around a view's
// content box.
type Border struct {
	Top, Right, Bottom, Left int
}

func (b Border) Horizontal() int { return b.Left + b.Right }
func (b Border) Vertical() int   { return b.Top + b.Bottom }

// Right, Bottom, Left, Top return the outer edge coordinates of the box.
func (b Box) Left() int   { return b.X }
func (b Box) Top() int    { return b.Y }
func (b Box) Right() int  { return b.X + b.Width }
func (b Box) Bottom() int { return b.Y + b.Height }

// Grow expands b by border, moving the origin outward.
func (b Box) Grow(border Border) Box {
	return Box{
		X:      b.X - border.Left,
		Y:      b.Y - border.Top,
		Width:  b.Width + border.Horizontal(),
		Height: b.Height + border.Vertical(),
	}
}

// Contains reports whether the point (x, y) lies within b.
func (b Box) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// Intersects reports whether b and o overlap.
func (b Box) Intersects(o Box) bool {
	return b.Left() < o.Right() && o.Left() < b.Right() &&
		b.Top() < o.Bottom() && o.Top() < b.Bottom()
}

const (
	// Sentinels standing in for ±infinity: an Edge offset holding one
	// is ignored by the snap search.
	unboundedMax = math.MaxInt32
	unboundedMin = math.MinInt32
)

// UnboundedMax and UnboundedMin are the sentinel values a candidate Edge
// offset takes when it should be treated as "no constraint".
const (
	UnboundedMax = unboundedMax
	UnboundedMin = unboundedMin
)

// Bounded reports whether v is a real (non-sentinel) edge offset.
func Bounded(v int) bool {
	return v > unboundedMin && v < unboundedMax
}

// ClippedAdd adds a and b, saturating at the unbounded sentinels instead
// of overflowing.
func ClippedAdd(a, b int) int {
	if b > 0 {
		if a >= unboundedMax-b {
			return unboundedMax
		}
		return a + b
	} else if b < 0 {
		if a <= unboundedMin-b {
			return unboundedMin
		}
		return a + b
	}
	return a
}

// ClippedSub subtracts b from a with the same saturation as ClippedAdd.
func ClippedSub(a, b int) int {
	return ClippedAdd(a, -b)
}

// EdgeGetBest picks the better of two candidate edge offsets: any bounded
// edge beats an unbounded one, and among two bounded edges the max wins for
// a decreasing move, the min for an increasing one.
func EdgeGetBest(next, edge int, decreasing bool) int {
	if !Bounded(next) {
		if Bounded(edge) {
			return edge
		}
		return next
	}
	if !Bounded(edge) {
		return next
	}
	if decreasing {
		return max(next, edge)
	}
	return min(next, edge)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Edge is a 1-D segment along an axis: Offset is its position along the
// axis perpendicular to it, Min/Max bound the span along its own axis.
// Offset of UnboundedMin/UnboundedMax means "ignore this edge".
type Edge struct {
	Offset int
	Min    int
	Max    int
}

// Edges bundles the four directional edges of a box (or a search result),
// named after the side of the box they describe.
type Edges struct {
	Left, Right, Top, Bottom int
}

// UnboundedEdges returns an Edges with every side ignored, the starting point of
// any neighbor/output search (edges.h:edges_initialize).
func UnboundedEdges() Edges {
	return Edges{
		Left:   unboundedMin,
		Right:  unboundedMax,
		Top:    unboundedMin,
		Bottom: unboundedMax,
	}
}

// EdgeSet is a bitset of the four tiling edges a view can be docked to.
type EdgeSet uint8

const (
	EdgeLeft EdgeSet = 1 << iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

func (s EdgeSet) Has(e EdgeSet) bool { return s&e != 0 }
func (s EdgeSet) Empty() bool        { return s == 0 }

// Direction names a single snap/move direction, distinct from EdgeSet
// because a view can be tiled to more than one edge but a single
// snap-constraint record only ever tracks one.
type Direction int

const (
	DirInvalid Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)
