package interactive

import "github.com/labwc/labwc-core/geom"

// MoveMotion computes the view position for a cursor at (x, y) during a
// MOVE grab: the grab box translated by the cursor delta since Begin.
func (g *Grab) MoveMotion(x, y int) geom.Box {
	box := g.Box
	box.X += x - g.GrabX
	box.Y += y - g.GrabY
	return box
}

// ResizeMotion computes the pending geometry for a cursor at (x, y)
// during a RESIZE grab: each latched edge follows the cursor delta
// while its opposite edge stays anchored, and both dimensions are
// floored at the view minimum by giving the anchored edge priority —
// growing the delta back rather than sliding the anchor.
func (g *Grab) ResizeMotion(x, y int) geom.Box {
	dx := x - g.GrabX
	dy := y - g.GrabY
	box := g.Box

	if g.ResizeEdges.Left {
		box.X += dx
		box.Width -= dx
		if box.Width < MinViewWidth {
			box.X -= MinViewWidth - box.Width
			box.Width = MinViewWidth
		}
	} else if g.ResizeEdges.Right {
		box.Width += dx
		if box.Width < MinViewWidth {
			box.Width = MinViewWidth
		}
	}

	if g.ResizeEdges.Top {
		box.Y += dy
		box.Height -= dy
		if box.Height < MinViewHeight {
			box.Y -= MinViewHeight - box.Height
			box.Height = MinViewHeight
		}
	} else if g.ResizeEdges.Bottom {
		box.Height += dy
		if box.Height < MinViewHeight {
			box.Height = MinViewHeight
		}
	}

	return box
}
