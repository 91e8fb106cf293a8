package server

import (
	"time"

	"github.com/labwc/labwc-core/edges"
	"github.com/labwc/labwc-core/geom"
	"github.com/labwc/labwc-core/input"
	"github.com/labwc/labwc-core/interactive"
	"github.com/labwc/labwc-core/ssd"
	"github.com/labwc/labwc-core/view"
	"github.com/labwc/labwc-core/wm"
)

// SnapConfig is the snap/resistance tuning the grab handlers read, all
// of it rc.xml-driven: <snapping><range>, <topMaximize>, the screen and
// window edge strengths, the gap applied between snapped views and the
// unsnap threshold for dragging a tiled view loose.
type SnapConfig struct {
	Range              int
	TopMaximize        bool
	Gap                int
	UnsnapThreshold    int
	ScreenEdgeStrength edges.Strength
	WindowEdgeStrength edges.Strength
	PreviewDelays      interactive.OverlayDelays
}

// BeginInteractive starts a move or resize grab for v at the current
// cursor position. It refuses when the seat is not in PASSTHROUGH, the
// view's state forbids the mode, or a fixedPosition window rule pins the
// view in place.
func (s *Server) BeginInteractive(v *view.View, mode wm.InputMode, re input.ResizeEdges, cursorX, cursorY int) bool {
	if s.GetProperty(v, wm.PropFixedPosition) == wm.True {
		return false
	}
	if mode == wm.ModeResize {
		v.StartResize(re.Left, re.Top)
	}
	g, ok := interactive.Begin(s.Seat, v, mode, re, cursorX, cursorY, s.SnapCfg.UnsnapThreshold)
	if !ok {
		return false
	}
	s.Grab = g
	return true
}

// HandleMotion drives the in-progress grab from a cursor motion: MOVE
// translates the grab box and runs it through resistance, the edge
// search and the snap-preview overlay; RESIZE recomputes the pending
// geometry anchored to the non-moving edges and clips it the same way,
// recording any snapped edge in the sticky-edge constraint.
func (s *Server) HandleMotion(x, y int, now time.Time) {
	g := s.Grab
	if g == nil {
		return
	}
	v, ok := g.View.(*view.View)
	if !ok {
		return
	}

	border := ssd.ComputeThickness(v, s.Theme)
	screens := s.usableOutputs()
	resist := edges.Resistance{
		ScreenStrength:   s.SnapCfg.ScreenEdgeStrength,
		NeighborStrength: s.SnapCfg.WindowEdgeStrength,
	}

	switch g.Mode {
	case wm.ModeMove:
		box := g.MoveMotion(x, y)
		nx, ny := resist.Apply(v.Current(), v.EffectiveHeight(), border,
			screens, s.neighborBoxes(v), box.X, box.Y)

		viewEdges := edges.ForTargetGeometry(v.Current(), v.EffectiveHeight(), border, 0)
		target := geom.Box{X: nx, Y: ny, Width: box.Width, Height: box.Height}
		targetEdges := edges.ForTargetGeometry(target, v.EffectiveHeight(), border, 0)

		near := edges.FindNeighbors(viewEdges, targetEdges, s.neighbors(v), s.SnapCfg.Gap, edges.SnapValidator)
		edges.AdjustMoveCoords(near, &nx, &ny, border, s.SnapCfg.Gap,
			box.Width, v.EffectiveHeight(), v.Current().X, v.Current().Y)
		screen := edges.FindOutputs(viewEdges, targetEdges, screens, 0, edges.SnapValidator)
		edges.AdjustMoveCoords(screen, &nx, &ny, border, 0,
			box.Width, v.EffectiveHeight(), v.Current().X, v.Current().Y)

		v.Move(nx, ny)

		if o := s.outputAt(x, y); o != nil {
			edge := interactive.EdgeAtCursor(x, y, o.Usable, s.SnapCfg.Range)
			g.UpdatePreview(x, y, o.Usable, s.SnapCfg.Range,
				s.innerBoundary(o, edge), s.SnapCfg.PreviewDelays, now)
		}

	case wm.ModeResize:
		dir := resizeDirection(g.ResizeEdges)
		// The sticky-edge override: if the client undershot the last
		// snapped size, measure this resize from the unconstrained
		// target instead so progress past the missed edge is possible.
		cur := s.Snap.Effective(v, dir, v.Current())
		box := g.ResizeMotion(x, y)
		raw := box

		set := edgeSetOf(g.ResizeEdges)
		resist.ApplyResize(cur, border, screens, s.neighborBoxes(v), set, &box)

		viewEdges := edges.ForTargetGeometry(cur, cur.Height, border, 0)
		targetEdges := edges.ForTargetGeometry(box, box.Height, border, 0)
		near := edges.FindNeighbors(viewEdges, targetEdges, s.neighbors(v), s.SnapCfg.Gap, edges.SnapValidator)
		edges.AdjustResizeGeom(near, set, &box, border, s.SnapCfg.Gap,
			cur.X, cur.Y, cur.Width, cur.Height)
		screen := edges.FindOutputs(viewEdges, targetEdges, screens, 0, edges.SnapValidator)
		edges.AdjustResizeGeom(screen, set, &box, border, 0,
			cur.X, cur.Y, cur.Width, cur.Height)

		if box != raw {
			s.Snap.Set(v, dir, box)
		}
		v.MoveResize(box)
	}
}

// FinishInteractive ends the grab, applying the snap the preview
// promised: a visible top-edge preview maximizes when <topMaximize> is
// set, any other visible edge half-snaps against the output under the
// cursor.
func (s *Server) FinishInteractive(now time.Time) {
	g := s.Grab
	if g == nil {
		return
	}
	interactive.Finish(s.Seat, g, func(iv interactive.View) bool {
		v, ok := iv.(*view.View)
		if !ok {
			return false
		}
		return s.applyMoveSnap(g, v, now)
	})
	s.Grab = nil
}

// CancelInteractive ends the grab without snapping (ESC, view destroy).
func (s *Server) CancelInteractive() {
	g := s.Grab
	if g == nil {
		return
	}
	interactive.Cancel(s.Seat, g)
	s.Grab = nil
}

func (s *Server) applyMoveSnap(g *interactive.Grab, v *view.View, now time.Time) bool {
	g.Overlay.Tick(now)
	edge := g.Overlay.ActiveEdge()
	if edge == interactive.EdgeNone {
		return false
	}
	o := s.viewOutput(v)
	if o == nil {
		return false
	}
	if edge == interactive.EdgeUp && s.SnapCfg.TopMaximize {
		v.SetMaximized(wm.MaximizeBoth, true)
		return true
	}
	SnapToEdge(v, o, snapDirection(edge), s.SnapCfg.Gap, false, false, true)
	return true
}

// HandleCommit routes a client commit ack through the view's
// pending-to-current protocol, then gives the sticky-edge record its
// one-time correction to whatever geometry the client actually chose.
func (s *Server) HandleCommit(v *view.View, serial uint32) {
	pending := v.Pending()
	v.Commit(serial)
	s.Snap.Update(v, pending, v.Current())
}

func (s *Server) usableOutputs() []edges.OutputUsable {
	var out []edges.OutputUsable
	for _, o := range s.Outputs {
		if o.Usable_() {
			out = append(out, edges.OutputUsable{Usable: o.Usable})
		}
	}
	return out
}

// neighborEligible reports whether other participates in v's edge
// search: mapped, not minimized, and visible on the current workspace.
func (s *Server) neighborEligible(v, other *view.View) bool {
	if other == v || !other.Mapped() || other.Minimized() {
		return false
	}
	return other.Omnipresent() || other.Workspace == s.Workspaces.Active()
}

func (s *Server) neighbors(v *view.View) []edges.Neighbor {
	var out []edges.Neighbor
	for _, other := range s.Views {
		if !s.neighborEligible(v, other) {
			continue
		}
		out = append(out, edges.Neighbor{
			Box:       other.Current(),
			Margin:    ssd.ComputeThickness(other, s.Theme),
			EffHeight: other.EffectiveHeight(),
		})
	}
	return out
}

func (s *Server) neighborBoxes(v *view.View) []edges.NeighborBox {
	var out []edges.NeighborBox
	for _, other := range s.Views {
		if !s.neighborEligible(v, other) {
			continue
		}
		out = append(out, edges.NeighborBox{
			Box:    other.Current(),
			Margin: ssd.ComputeThickness(other, s.Theme),
		})
	}
	return out
}

func (s *Server) outputAt(x, y int) *view.Output {
	for _, o := range s.Outputs {
		if o.Usable_() && o.Usable.Contains(x, y) {
			return o
		}
	}
	return nil
}

// viewOutput resolves v's primary output, falling back to the first
// surviving one when the assignment is stale or empty.
func (s *Server) viewOutput(v *view.View) *view.Output {
	for _, o := range s.Outputs {
		if o.Name == v.Output && o.Usable_() {
			return o
		}
	}
	for _, o := range s.Outputs {
		if o.Usable_() {
			return o
		}
	}
	return nil
}

// innerBoundary reports whether o's usable-area edge borders another
// output (the preview then uses the shorter inner delay) rather than the
// outer boundary of the whole layout.
func (s *Server) innerBoundary(o *view.Output, edge interactive.Edge) bool {
	u := o.Usable
	for _, other := range s.Outputs {
		if other == o || !other.Usable_() {
			continue
		}
		ou := other.Usable
		overlapV := ou.Y < u.Bottom() && ou.Bottom() > u.Y
		overlapH := ou.X < u.Right() && ou.Right() > u.X
		switch edge {
		case interactive.EdgeLeft:
			if ou.Right() <= u.X && overlapV {
				return true
			}
		case interactive.EdgeRight:
			if ou.X >= u.Right() && overlapV {
				return true
			}
		case interactive.EdgeUp:
			if ou.Bottom() <= u.Y && overlapH {
				return true
			}
		case interactive.EdgeDown:
			if ou.Y >= u.Bottom() && overlapH {
				return true
			}
		}
	}
	return false
}

func resizeDirection(re input.ResizeEdges) geom.Direction {
	switch {
	case re.Left:
		return geom.DirLeft
	case re.Right:
		return geom.DirRight
	case re.Top:
		return geom.DirUp
	case re.Bottom:
		return geom.DirDown
	}
	return geom.DirInvalid
}

func edgeSetOf(re input.ResizeEdges) geom.EdgeSet {
	var set geom.EdgeSet
	if re.Left {
		set |= geom.EdgeLeft
	}
	if re.Right {
		set |= geom.EdgeRight
	}
	if re.Top {
		set |= geom.EdgeTop
	}
	if re.Bottom {
		set |= geom.EdgeBottom
	}
	return set
}

func snapDirection(edge interactive.Edge) geom.Direction {
	switch edge {
	case interactive.EdgeLeft:
		return geom.DirLeft
	case interactive.EdgeRight:
		return geom.DirRight
	case interactive.EdgeUp:
		return geom.DirUp
	case interactive.EdgeDown:
		return geom.DirDown
	}
	return geom.DirInvalid
}
