// Package interactive implements the move/resize grab state machine:
// capturing the grab box and cursor position at the start of a drag,
// anchoring geometry to the cursor when un-tiling mid-drag, and the
// finish/cancel paths that hand back to the seat's PASSTHROUGH mode.
package interactive

import (
	"github.com/labwc/labwc-core/geom"
	"github.com/labwc/labwc-core/input"
	"github.com/labwc/labwc-core/wm"
)

// MinViewWidth and MinViewHeight are the floor a resize grab never
// shrinks a view below.
const (
	MinViewWidth  = 100
	MinViewHeight = 60
)

// View is the subset of view.View the grab machinery needs, kept small
// and consumer-declared to avoid an interactive<->view import cycle the
// way ssd.View does for the decoration engine.
type View interface {
	Current() geom.Box
	Fullscreen() bool
	Shaded() bool
	Tiled() bool
	Maximized() wm.Maximized
	Natural() (geom.Box, bool)
	StoreNaturalGeometry()
	SetMaximized(axis wm.Maximized, storeNatural bool)
	SetUntiled()
	SetShaded(shaded bool)
	MoveResize(geo geom.Box) uint32
}

// floating reports whether v is in no snap state at all: not maximized,
// tiled, fullscreen or shaded.
func floating(v View) bool {
	return v.Maximized() == wm.MaximizeNone && !v.Tiled() && !v.Fullscreen() && !v.Shaded()
}

// Grab is the in-progress move/resize operation: the cursor position
// and view box captured at interactive_begin time, rescaled in place as
// the drag continues.
type Grab struct {
	View        View
	Mode        wm.InputMode
	GrabX       int
	GrabY       int
	Box         geom.Box
	ResizeEdges input.ResizeEdges

	// Indicator is the on-screen "WxH"/"X,Y" label shown alongside this
	// grab; zero value until Show is called by whatever drives
	// indicator policy.
	Indicator ResizeIndicator

	// Overlay is the snap-preview rectangle for a MOVE grab, driven by
	// UpdatePreview on every cursor motion and cleared when the grab
	// ends.
	Overlay Overlay
}

// Begin captures a new Grab for view entering mode at grab coordinates
// (cursorX, cursorY), applying the begin-time guards and the
// un-maximize/un-tile rules for each mode. ok is false if the seat
// itself refused the transition (already not in PASSTHROUGH, or the
// mode-specific guard failed) and no grab was captured.
//
// unsnapThreshold is the <unSnapThreshold> config value: when zero or
// negative, beginning a move on a snapped (tiled/maximized/shaded)
// view immediately restores it to its natural geometry, anchored to
// the cursor; a positive threshold defers that to the motion handler
// once the cursor has travelled far enough.
func Begin(seat *input.Seat, view View, mode wm.InputMode, edges input.ResizeEdges, cursorX, cursorY, unsnapThreshold int) (*Grab, bool) {
	switch mode {
	case wm.ModeMove:
		if !seat.CanBeginMove(view.Fullscreen()) {
			return nil, false
		}
		view.StoreNaturalGeometry()
		seat.BeginMove(view)

	case wm.ModeResize:
		if !seat.CanBeginResize(view.Shaded(), view.Fullscreen(), view.Maximized(), false) {
			return nil, false
		}
		maximized := view.Maximized()
		if edges.Left || edges.Right {
			maximized &^= wm.MaximizeHorizontal
		}
		if edges.Top || edges.Bottom {
			maximized &^= wm.MaximizeVertical
		}
		view.SetMaximized(maximized, false)
		view.SetUntiled()
		seat.BeginResize(view, edges)

	default:
		return nil, false
	}

	g := &Grab{
		View:        view,
		Mode:        mode,
		GrabX:       cursorX,
		GrabY:       cursorY,
		Box:         view.Current(),
		ResizeEdges: edges,
	}

	// Un-tile a maximized/tiled/shaded view immediately if the unsnap
	// threshold is zero; otherwise the motion handler un-tiles it once
	// the cursor has moved far enough. The grab box was captured above
	// from the snapped geometry, so AnchorToCursor rescales it to keep
	// the cursor at the same fractional offset within the window.
	if mode == wm.ModeMove && !floating(view) && unsnapThreshold <= 0 {
		natural, _ := view.Natural()
		geo := g.AnchorToCursor(natural, cursorX, cursorY)
		// Shaded clients will not process resize events until unshaded.
		view.SetShaded(false)
		view.SetMaximized(wm.MaximizeNone, false)
		view.SetUntiled()
		view.MoveResize(geo)
	}

	return g, true
}

// maxMoveScale rescales one axis of the grab box to a new size while
// anchoring it to the cursor: the cursor's fractional offset within the old box is
// preserved in the new box, clamped so the new position never moves
// past the box's original near edge.
func maxMoveScale(cursorPos, oldPos, oldSize, newSize int) int {
	if oldSize == 0 {
		return oldPos
	}
	anchorFrac := float64(cursorPos-oldPos) / float64(oldSize)
	newPos := cursorPos - int(float64(newSize)*anchorFrac)
	if newPos < oldPos {
		newPos = oldPos
	}
	return newPos
}

// AnchorToCursor resizes g's grab box to geo's dimensions while keeping
// it anchored to the cursor position captured at grab start, then
// returns the resulting box positioned at the current cursor
// (cursorX, cursorY). Used when un-tiling a maximized/tiled view
// mid-move so the cursor stays over the same relative point in the
// window.
func (g *Grab) AnchorToCursor(geo geom.Box, cursorX, cursorY int) geom.Box {
	if geo.Width == 0 && geo.Height == 0 {
		return geo
	}
	g.Box.X = maxMoveScale(g.GrabX, g.Box.X, g.Box.Width, geo.Width)
	g.Box.Y = maxMoveScale(g.GrabY, g.Box.Y, g.Box.Height, geo.Height)
	g.Box.Width = geo.Width
	g.Box.Height = geo.Height

	return geom.Box{
		X:      g.Box.X + (cursorX - g.GrabX),
		Y:      g.Box.Y + (cursorY - g.GrabY),
		Width:  geo.Width,
		Height: geo.Height,
	}
}

// Finish ends the grab, applying snapFn (region/edge snap resolution,
// supplied by the caller since it depends on the workspace/edges
// packages this one must not import) if in MOVE mode, then returns the
// seat to PASSTHROUGH.
func Finish(seat *input.Seat, g *Grab, snapFn func(View) bool) {
	if g.Mode == wm.ModeMove && snapFn != nil {
		snapFn(g.View)
	}
	g.Overlay.Clear()
	g.Indicator.Hide()
	seat.Finish()
}

// Cancel ends the grab without changing the view's geometry or tiled
// state.
func Cancel(seat *input.Seat, g *Grab) {
	g.Overlay.Clear()
	g.Indicator.Hide()
	seat.Cancel()
}
