package interactive

import (
	"time"

	"github.com/labwc/labwc-core/geom"
	"github.com/labwc/labwc-core/wm"
)

// Edge names a candidate snap edge for the preview overlay, mirroring
// enum view_edge's spatial members (VIEW_EDGE_CENTER covers the
// <topMaximize> case).
type Edge int

const (
	EdgeNone Edge = iota
	EdgeLeft
	EdgeRight
	EdgeUp
	EdgeDown
	EdgeCenter
)

// OverlayDelays holds the two configurable snap-preview delays:
// crossing into an edge that borders
// another output ("inner") shows the preview sooner than an edge at the
// outer boundary of the whole layout.
type OverlayDelays struct {
	Inner time.Duration
	Outer time.Duration
}

// Overlay tracks which edge/region preview is currently active and
// when a pending (delayed) edge preview should become visible: arming
// splits into "set active, arm timer" and "timer fires, show".
type Overlay struct {
	activeEdge   Edge
	activeRegion string

	pendingEdge  Edge
	pendingSince time.Time
	pendingDelay time.Duration
	visible      bool
}

// UpdateEdge arms or re-arms the overlay for edge, using delays.Inner if
// innerBoundary (the cursor is over an output-adjacent edge) else
// delays.Outer. Repeated motion within the same edge's band keeps the
// running timer; switching to a new edge restarts it. The overlay only
// becomes Visible() once Tick observes the delay elapsed, or
// immediately if the configured delay is zero.
func (o *Overlay) UpdateEdge(edge Edge, innerBoundary bool, delays OverlayDelays, now time.Time) {
	if o.activeRegion != "" {
		o.activeRegion = ""
	}
	if o.pendingEdge == edge {
		return
	}
	o.activeEdge = EdgeNone
	o.visible = false
	o.pendingEdge = edge

	delay := delays.Outer
	if innerBoundary {
		delay = delays.Inner
	}
	o.pendingDelay = delay
	o.pendingSince = now

	if delay <= 0 {
		o.activeEdge = edge
		o.visible = true
	}
}

// Tick advances time, making a delayed edge preview visible once its
// delay has elapsed. Returns the edge that just became visible, or
// EdgeNone if nothing changed.
func (o *Overlay) Tick(now time.Time) Edge {
	if o.visible || o.pendingEdge == EdgeNone {
		return EdgeNone
	}
	if now.Sub(o.pendingSince) < o.pendingDelay {
		return EdgeNone
	}
	o.activeEdge = o.pendingEdge
	o.visible = true
	return o.activeEdge
}

// UpdateRegion switches the overlay to showing a named region preview
// (regions take priority over edge previews and show immediately, per
// show_region_overlay).
func (o *Overlay) UpdateRegion(region string) {
	if o.activeRegion == region {
		return
	}
	o.activeEdge = EdgeNone
	o.pendingEdge = EdgeNone
	o.visible = region != ""
	o.activeRegion = region
}

// Clear hides any active or pending preview (interactive_cancel's
// overlay_finish call).
func (o *Overlay) Clear() {
	*o = Overlay{}
}

// Visible reports whether an edge or region preview is currently shown.
func (o *Overlay) Visible() bool { return o.visible }

// ActiveEdge returns the currently visible edge preview, or EdgeNone.
func (o *Overlay) ActiveEdge() Edge {
	if !o.visible {
		return EdgeNone
	}
	return o.activeEdge
}

// ActiveRegion returns the currently visible region preview name, or "".
func (o *Overlay) ActiveRegion() string { return o.activeRegion }


// EdgeSnapBox returns the region the preview (and an eventual snap)
// covers for edge within an output's usable area: left/right halve the
// width, up/down halve the height, and EdgeCenter — the <topMaximize>
// case — covers the whole area.
func EdgeSnapBox(edge Edge, usable geom.Box, snapTopMaximize bool) geom.Box {
	box := usable
	if edge == EdgeUp && snapTopMaximize {
		edge = EdgeCenter
	}
	switch edge {
	case EdgeRight:
		box.X += box.Width / 2
		fallthrough
	case EdgeLeft:
		box.Width /= 2
	case EdgeDown:
		box.Y += box.Height / 2
		fallthrough
	case EdgeUp:
		box.Height /= 2
	case EdgeCenter:
	default:
		return geom.Box{}
	}
	return box
}

// EdgeAtCursor reports which usable-area edge the cursor at (x, y) is
// within rng pixels of, or EdgeNone. Corners resolve to the horizontal
// edge so a drag along the top never flickers between left and up.
func EdgeAtCursor(x, y int, usable geom.Box, rng int) Edge {
	switch {
	case x < usable.X+rng:
		return EdgeLeft
	case x >= usable.X+usable.Width-rng:
		return EdgeRight
	case y < usable.Y+rng:
		return EdgeUp
	case y >= usable.Y+usable.Height-rng:
		return EdgeDown
	default:
		return EdgeNone
	}
}

// UpdatePreview drives the grab's snap-preview overlay from a cursor
// motion during a MOVE grab: entering an output-edge trigger band arms
// the overlay (with the inner delay when that edge borders another
// output, the outer delay at the layout boundary), leaving it clears
// any pending or visible preview. Resize grabs never show a preview.
func (g *Grab) UpdatePreview(x, y int, usable geom.Box, snapRange int, innerBoundary bool, delays OverlayDelays, now time.Time) {
	if g.Mode != wm.ModeMove || snapRange <= 0 {
		return
	}
	edge := EdgeAtCursor(x, y, usable, snapRange)
	if edge == EdgeNone {
		g.Overlay.Clear()
		return
	}
	g.Overlay.UpdateEdge(edge, innerBoundary, delays, now)
	g.Overlay.Tick(now)
}

// PreviewBox returns the region the currently visible edge preview
// covers, or a zero box when no edge preview is showing.
func (g *Grab) PreviewBox(usable geom.Box, snapTopMaximize bool) geom.Box {
	edge := g.Overlay.ActiveEdge()
	if edge == EdgeNone {
		return geom.Box{}
	}
	return EdgeSnapBox(edge, usable, snapTopMaximize)
}
