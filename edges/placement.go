package edges

import (
	"sort"

	"github.com/labwc/labwc-core/geom"
)

// PlacementTarget is one other view considered by FindBestPlacement, in
// the same output as the view being placed.
type PlacementTarget struct {
	Box    geom.Box
	Margin geom.Border
}

// overlapGrid is an irregular grid: extending every other view's edges to
// infinity divides the usable area into intervals that are each either
// fully covered or fully uncovered by any given view.
type overlapGrid struct {
	rows, cols []int
	grid       []int // (nr_rows-1) x (nr_cols-1), row-major
}

func (g *overlapGrid) at(i, j int) int { return g.grid[i*(len(g.cols)-1)+j] }
func (g *overlapGrid) add(i, j, n int) { g.grid[i*(len(g.cols)-1)+j] += n }

// buildGrid constructs the overlap grid for usable: grid lines are placed
// at every other view's left/right/top/bottom edge that falls strictly
// inside the usable area, then deduplicated and sorted.
func buildGrid(usable geom.Box, others []PlacementTarget) *overlapGrid {
	usableRight := usable.X + usable.Width
	usableBottom := usable.Y + usable.Height

	cols := []int{usable.X, usableRight}
	rows := []int{usable.Y, usableBottom}

	for _, o := range others {
		x := o.Box.X - o.Margin.Left
		y := o.Box.Y - o.Margin.Top
		if x > usable.X && x < usableRight {
			cols = append(cols, x)
		}
		if y > usable.Y && y < usableBottom {
			rows = append(rows, y)
		}
		x2 := o.Box.X + o.Box.Width + o.Margin.Right
		y2 := o.Box.Y + o.Box.Height + o.Margin.Bottom
		if x2 > usable.X && x2 < usableRight {
			cols = append(cols, x2)
		}
		if y2 > usable.Y && y2 < usableBottom {
			rows = append(rows, y2)
		}
	}

	cols = orderGrid(cols)
	rows = orderGrid(rows)

	g := &overlapGrid{rows: rows, cols: cols}
	if len(rows) > 1 && len(cols) > 1 {
		g.grid = make([]int, (len(rows)-1)*(len(cols)-1))
	}
	return g
}

// orderGrid sorts and de-duplicates edge positions.
func orderGrid(edges []int) []int {
	sort.Ints(edges)
	out := edges[:0:0]
	i := 0
	for i < len(edges) {
		v := edges[i]
		out = append(out, v)
		for i < len(edges) && edges[i] == v {
			i++
		}
	}
	return out
}

// findInterval performs a rightmost binary search: the largest index j
// such that edges[j] <= val, or -1 if val is less than every edge.
func findInterval(edges []int, val float64) int {
	l, r := 0, len(edges)
	for l < r {
		m := (l + r) / 2
		if float64(edges[m]) > val {
			r = m
		} else {
			l = m + 1
		}
	}
	return r - 1
}

// buildOverlap fills g's grid with, for every interval, the count of
// other views that fully cover it. The +-0.5 perturbation keeps the
// binary search inside the interior of an interval, since view edges
// always land exactly on a grid line.
func buildOverlap(g *overlapGrid, others []PlacementTarget) {
	if len(g.rows) < 2 || len(g.cols) < 2 {
		return
	}
	nri, nci := len(g.rows)-1, len(g.cols)-1

	for _, o := range others {
		lx := o.Box.X - o.Margin.Left
		ly := o.Box.Y - o.Margin.Top
		hx := o.Box.X + o.Box.Width + o.Margin.Right
		hy := o.Box.Y + o.Box.Height + o.Margin.Bottom

		fc := max(findInterval(g.cols, float64(lx)+0.5), 0)
		fr := max(findInterval(g.rows, float64(ly)+0.5), 0)
		lc := min(nci-1, findInterval(g.cols, float64(hx)-0.5)+1)
		lr := min(nri-1, findInterval(g.rows, float64(hy)-0.5)+1)

		for i := fr; i < lr; i++ {
			for j := fc; j < lc; j++ {
				g.add(i, j, 1)
			}
		}
	}
}

// computeOverlap sums the overlap of a width x height region starting at
// grid cell (i, j) and extending right/down as indicated. A region that
// would extend past the edge of the grid returns geom.UnboundedMax (an
// invalid placement).
func computeOverlap(g *overlapGrid, i, j, width, height int, right, down bool) int {
	nri, nci := len(g.rows)-1, len(g.cols)-1
	iIncr, jIncr := -1, -1
	if down {
		iIncr = 1
	}
	if right {
		jIncr = 1
	}

	overlap := 0
	for ii := i; ii >= 0 && ii < nri && height > 0; ii += iIncr {
		rh := g.rows[ii+1] - g.rows[ii]
		mh := max(0, min(height, rh))
		height -= rh

		ww := width
		for jj := j; jj >= 0 && jj < nci && ww > 0; jj += jIncr {
			cw := g.cols[jj+1] - g.cols[jj]
			mw := max(0, min(ww, cw))
			overlap += g.at(ii, jj) * mh * mw
			ww -= cw
		}
		if ww > 0 {
			return geom.UnboundedMax
		}
	}
	if height > 0 {
		return geom.UnboundedMax
	}
	return overlap
}

// FindBestPlacement computes the least-overlap position for a view of the
// given width/height (plus margin and gap) within usable: it convolves
// the candidate region with the precomputed overlap grid in all four
// corner-extension directions from every grid cell and keeps the
// minimum-overlap placement, stopping early on a perfect (zero-overlap)
// fit.
func FindBestPlacement(usable geom.Box, margin geom.Border, gap, width, height int, others []PlacementTarget) geom.Box {
	result := geom.Box{
		X:      usable.X + margin.Left + gap,
		Y:      usable.Y + margin.Top + gap,
		Width:  width,
		Height: height,
	}
	if len(others) == 0 {
		return result
	}

	g := buildGrid(usable, others)
	buildOverlap(g, others)
	if len(g.rows) < 2 || len(g.cols) < 2 {
		return result
	}

	regionHeight := height + margin.Vertical() + 2*gap
	regionWidth := width + margin.Horizontal() + 2*gap
	offsetX := margin.Left + gap
	offsetY := margin.Top + gap

	minOverlap := geom.UnboundedMax
	nri, nci := len(g.rows)-1, len(g.cols)-1

direction:
	for i := 0; i < nri; i++ {
		for j := 0; j < nci; j++ {
			for dir := 0; dir < 4; dir++ {
				right := dir&0x1 == 0
				down := dir&0x2 == 0

				overlap := computeOverlap(g, i, j, regionWidth, regionHeight, right, down)
				if overlap >= minOverlap {
					continue
				}
				minOverlap = overlap

				if right {
					result.X = g.cols[j] + offsetX
				} else {
					result.X = g.cols[j+1] - regionWidth + offsetX
				}
				if down {
					result.Y = g.rows[i] + offsetY
				} else {
					result.Y = g.rows[i+1] - regionHeight + offsetY
				}

				if minOverlap <= 0 {
					break direction
				}
			}
		}
	}
	return result
}
