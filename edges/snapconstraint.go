package edges

import "github.com/labwc/labwc-core/geom"

// SnapConstraint tracks the single most recent snapped-resize "sticky
// edge" override. XDG clients can round a configured size to honor
// their own constraints (aspect ratio, cell-size grids), which can fall
// short of the edge it snapped to; without this override a subsequent
// resize in the same direction could never cross that missed edge. Only
// one record is kept at a time, held by the interactive resize state
// machine per seat, not per view.
type SnapConstraint struct {
	view      any
	pending   bool
	offset    int
	direction geom.Direction
	geo       geom.Box
}

// Reset clears the constraint, following snap_constraints_reset.
func (c *SnapConstraint) Reset() {
	*c = SnapConstraint{offset: geom.UnboundedMin}
}

// valid reports whether the constraint still applies: same view, same
// direction, a bounded offset, and the view's pending geometry still
// matches what was recorded — any intervening change invalidates it.
func (c *SnapConstraint) valid(view any, direction geom.Direction, pending geom.Box) bool {
	return c.view == view && view != nil &&
		direction == c.direction &&
		geom.Bounded(c.offset) &&
		pending == c.geo
}

// Set records a new snapped-resize expectation for view, following
// snap_constraints_set: the offset is derived from whichever edge
// direction is moving, and a pending flag allows exactly one later
// correction from Update once the client's actual commit is known.
func (c *SnapConstraint) Set(view any, direction geom.Direction, geo geom.Box) {
	offset := geom.UnboundedMin
	switch direction {
	case geom.DirLeft:
		offset = geo.X
	case geom.DirRight:
		offset = geo.X + geo.Width
	case geom.DirUp:
		offset = geo.Y
	case geom.DirDown:
		offset = geo.Y + geo.Height
	}
	if !geom.Bounded(offset) {
		c.Reset()
		return
	}
	c.view = view
	c.offset = offset
	c.direction = direction
	c.geo = geo
	c.pending = true
}

// Invalidate clears the constraint if it belongs to view, following
// snap_constraints_invalidate (called e.g. when the view is moved or
// closed outside the resize gesture).
func (c *SnapConstraint) Invalidate(view any) {
	if c.view == view {
		c.Reset()
	}
}

// Update corrects the constraint's expected geometry to the view's actual
// committed geometry, exactly once, following snap_constraints_update:
// this captures whatever size the client actually chose to honor instead
// of the originally requested pending geometry.
func (c *SnapConstraint) Update(view any, pendingGeo, currentGeo geom.Box) {
	if c.view != view || !c.pending {
		return
	}
	if pendingGeo != c.geo {
		return
	}
	c.geo = currentGeo
	c.pending = false
}

// Effective returns the geometry a subsequent resize should use in place
// of pending: pending itself when the constraint doesn't apply, or
// pending with the constrained edge overridden by the last sticky offset,
// following snap_constraints_effective. Falls back to pending if the
// override would produce a non-positive size.
func (c *SnapConstraint) Effective(view any, direction geom.Direction, pending geom.Box) geom.Box {
	if !c.valid(view, direction, pending) {
		return pending
	}
	geo := pending
	switch c.direction {
	case geom.DirLeft:
		geo.X = c.offset
	case geom.DirRight:
		geo.Width = c.offset - geo.X
	case geom.DirUp:
		geo.Y = c.offset
	case geom.DirDown:
		geo.Height = c.offset - geo.Y
	default:
		return pending
	}
	if geo.Width <= 0 || geo.Height <= 0 {
		return pending
	}
	return geo
}
