package server

import (
	"github.com/labwc/labwc-core/geom"
	"github.com/labwc/labwc-core/view"
)

// SnapToEdge performs a half-screen (or, combined with a previous snap,
// quarter-screen) tile against output's usable area. storeNatural
// captures the view's pre-snap floating geometry before any tiling
// state is touched, so a later Restore call can return to it bit-exact.
//
// combine ORs direction into the view's existing tiled edge set instead
// of replacing it (pressing e.g. SnapToEdge(top) after SnapToEdge(left)
// lands in the top-left quarter), mirroring the "combine directions"
// keybind option. acrossOutputs is accepted for interface symmetry with
// the cross-output snap option; choosing which output to snap against is
// the caller's responsibility (it already passed in the target output).
func SnapToEdge(v *view.View, output *view.Output, direction geom.Direction, gap int, acrossOutputs, combine, storeNatural bool) {
	if storeNatural {
		v.StoreNaturalGeometry()
	}

	var edgeSet geom.EdgeSet
	switch direction {
	case geom.DirLeft:
		edgeSet = geom.EdgeLeft
	case geom.DirRight:
		edgeSet = geom.EdgeRight
	case geom.DirUp:
		edgeSet = geom.EdgeTop
	case geom.DirDown:
		edgeSet = geom.EdgeBottom
	}

	tiled := edgeSet
	if combine {
		tiled |= v.TiledEdges()
	}

	box := halfRegion(output.Usable, tiled, gap)
	v.SetTiled(tiled)
	v.MoveResize(box)
}

// halfRegion computes the tiled box for edgeSet against usable: a single
// horizontal edge halves the width and keeps the full height (and vice
// versa for a single vertical edge); both a horizontal and a vertical
// edge set together (the "combine" case) yields a quarter. gap insets
// the result uniformly, matching the gap config's application to tiled
// views against the screen edge.
func halfRegion(usable geom.Box, edgeSet geom.EdgeSet, gap int) geom.Box {
	x, y := usable.X, usable.Y
	w, h := usable.Width, usable.Height

	horizontal := edgeSet.Has(geom.EdgeLeft) || edgeSet.Has(geom.EdgeRight)
	vertical := edgeSet.Has(geom.EdgeTop) || edgeSet.Has(geom.EdgeBottom)

	if horizontal {
		w = usable.Width / 2
		if edgeSet.Has(geom.EdgeRight) {
			x = usable.X + usable.Width - w
		}
	}
	if vertical {
		h = usable.Height / 2
		if edgeSet.Has(geom.EdgeBottom) {
			y = usable.Y + usable.Height - h
		}
	}

	if gap > 0 {
		x += gap
		y += gap
		w -= 2 * gap
		h -= 2 * gap
	}

	return geom.Box{X: x, Y: y, Width: w, Height: h}
}

// Restore returns v to its natural (pre-tile/maximize/fullscreen)
// geometry, a no-op if none was ever captured.
func Restore(v *view.View) {
	if box, ok := v.Natural(); ok {
		v.RestoreTo(box)
	}
}
