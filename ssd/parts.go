package ssd

import (
	"github.com/labwc/labwc-core/geom"
	"github.com/labwc/labwc-core/scene"
	"github.com/labwc/labwc-core/wm"
)

// Subtrees is the full decoration node graph under an SSD's root: the
// titlebar, border and shadow each exist as an active/inactive pair of
// which exactly one is enabled at a time, plus the single extents
// subtree (invisible resize halos have no active variant).
type Subtrees struct {
	TitlebarActive   *scene.Node
	TitlebarInactive *scene.Node
	BorderActive     *scene.Node
	BorderInactive   *scene.Node
	ShadowActive     *scene.Node
	ShadowInactive   *scene.Node
	Extents          *scene.Node

	// Borders and ExtentSides hold the four per-side rect nodes of
	// whichever border/extent subtree they live under, indexed top,
	// right, bottom, left. ShadowPieces holds the eight shadow nodes
	// (4 corners + 4 sides) of the active subtree, same for inactive.
	BordersActive   [4]*scene.Node
	BordersInactive [4]*scene.Node
	ExtentSides     [4]*scene.Node
	ShadowsActive   [8]*scene.Node
	ShadowsInactive [8]*scene.Node
}

func newSubtree(root *scene.Node) *scene.Node {
	n := scene.NewNode()
	n.SetDescriptor(scene.Descriptor{Type: scene.TypeTree})
	n.Attach(root, 0, 0)
	return n
}

// NewSubtrees builds the decoration node graph under root, all pieces
// enabled; UpdateVisibility applies the resolved State afterwards.
func NewSubtrees(root *scene.Node) *Subtrees {
	s := &Subtrees{
		TitlebarActive:   newSubtree(root),
		TitlebarInactive: newSubtree(root),
		BorderActive:     newSubtree(root),
		BorderInactive:   newSubtree(root),
		ShadowActive:     newSubtree(root),
		ShadowInactive:   newSubtree(root),
		Extents:          newSubtree(root),
	}
	for i := 0; i < 4; i++ {
		s.BordersActive[i] = newSubtree(s.BorderActive)
		s.BordersInactive[i] = newSubtree(s.BorderInactive)
		s.ExtentSides[i] = newSubtree(s.Extents)
	}
	for i := 0; i < 8; i++ {
		s.ShadowsActive[i] = newSubtree(s.ShadowActive)
		s.ShadowsInactive[i] = newSubtree(s.ShadowInactive)
	}
	return s
}

// SetActive enables the active or inactive variant of each pair,
// leaving resolved-state hiding (borders hidden when maximized, …) to
// UpdateVisibility, which runs after.
func (s *Subtrees) SetActive(active bool) {
	s.TitlebarActive.Enabled = active
	s.TitlebarInactive.Enabled = !active
	s.BorderActive.Enabled = active
	s.BorderInactive.Enabled = !active
	s.ShadowActive.Enabled = active
	s.ShadowInactive.Enabled = !active
}

// UpdateVisibility applies a resolved State on top of the active/
// inactive split: a hidden concern disables both variants.
func (s *Subtrees) UpdateVisibility(state State, active bool) {
	s.SetActive(active)
	if state.TitlebarHidden {
		s.TitlebarActive.Enabled = false
		s.TitlebarInactive.Enabled = false
	}
	if state.BordersHidden {
		s.BorderActive.Enabled = false
		s.BorderInactive.Enabled = false
	}
	if state.ShadowsHidden {
		s.ShadowActive.Enabled = false
		s.ShadowInactive.Enabled = false
	}
	s.Extents.Enabled = !state.ExtentsHidden
}

// ExtentThickness is how far the invisible resize halo extends beyond
// the visible border on each side: the configured minimum grab area
// less whatever the border itself already provides.
func ExtentThickness(theme Theme) int {
	t := theme.ResizeMinArea - theme.BorderWidth
	if t < 0 {
		t = 0
	}
	return t
}

// ExtentBoxes returns the four halo rects (top, right, bottom, left)
// around the view's decorated outer box.
func ExtentBoxes(outer geom.Box, thickness int) [4]geom.Box {
	return [4]geom.Box{
		{X: outer.X - thickness, Y: outer.Y - thickness, Width: outer.Width + 2*thickness, Height: thickness},
		{X: outer.X + outer.Width, Y: outer.Y, Width: thickness, Height: outer.Height},
		{X: outer.X - thickness, Y: outer.Y + outer.Height, Width: outer.Width + 2*thickness, Height: thickness},
		{X: outer.X - thickness, Y: outer.Y, Width: thickness, Height: outer.Height},
	}
}

// StateCache is the last-applied decoration inputs, kept so
// Reconfigure can skip node churn when nothing visible changed. The
// truncated flags are cached per activity because active and inactive
// titlebars use different fonts and so truncate at different widths.
type StateCache struct {
	Geometry       geom.Box
	WasMaximized   bool
	WasSquared     bool
	WasShaded      bool
	WasOmnipresent bool
	Title          string
	TruncatedActive   bool
	TruncatedInactive bool
}

// Stale reports whether the cached inputs differ from the view's
// current state under the resolved squared flag, i.e. whether a
// Reconfigure actually has node work to do.
func (c *StateCache) Stale(v View, squared bool) bool {
	box := v.ContentBox()
	box.Height = v.EffectiveHeight()
	return c.Geometry != box ||
		c.WasMaximized != (v.Maximized() == wm.MaximizeBoth) ||
		c.Title != v.Title() ||
		c.WasSquared != squared ||
		c.WasShaded != v.Shaded() ||
		c.WasOmnipresent != v.Omnipresent()
}

// Refresh captures the view's current inputs after a Reconfigure has
// applied them.
func (c *StateCache) Refresh(v View, squared bool) {
	box := v.ContentBox()
	box.Height = v.EffectiveHeight()
	c.Geometry = box
	c.WasMaximized = v.Maximized() == wm.MaximizeBoth
	c.Title = v.Title()
	c.WasSquared = squared
	c.WasShaded = v.Shaded()
	c.WasOmnipresent = v.Omnipresent()
}
