package server

import (
	"github.com/labwc/labwc-core/edges"
	"github.com/labwc/labwc-core/geom"
	"github.com/labwc/labwc-core/view"
)

// PlaceNewView runs the least-overlap placement search for a newly
// mapped floating view of size width x height on output, against every
// currently-mapped view in views; views are not filtered by output.
// margin is the new view's own SSD thickness, passed to
// edges.FindBestPlacement as its Border argument; the existing views
// count with their current boxes only, without a decoration margin.
func PlaceNewView(output *view.Output, margin geom.Border, gap, width, height int, views []*view.View) geom.Box {
	var others []edges.PlacementTarget
	for _, v := range views {
		if !v.Mapped() {
			continue
		}
		others = append(others, edges.PlacementTarget{Box: v.Current()})
	}
	return edges.FindBestPlacement(output.Usable, margin, gap, width, height, others)
}
