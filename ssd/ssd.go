// Package ssd implements the server-side-decoration engine: titlebar/
// border/extent layout, the squared/maximized/shaded state machine, button
// hover state and the part-at hit-test, all expressed against a
// scene.Node tree.
//
// ssd never imports the view package: it declares the minimal View it
// needs below, and *view.View satisfies it structurally. This keeps the
// view <-> ssd relationship one-directional (view imports ssd to hold its
// Decoration field) without an import cycle.
package ssd

import (
	"github.com/labwc/labwc-core/geom"
	"github.com/labwc/labwc-core/wm"
)

// View is the subset of view.View's state the decoration engine reads.
// EffectiveHeight excludes shaded content — a shaded view's decoration
// occupies no vertical space for geometry purposes.
type View interface {
	ContentBox() geom.Box
	EffectiveHeight() int
	Maximized() wm.Maximized
	Shaded() bool
	Fullscreen() bool
	Omnipresent() bool
	SSDEnabled() bool
	TitlebarHidden() bool
	Tiled() bool
	NarrowForSSD() bool
	Title() string
	Active() bool
}

// Theme is the subset of the theme atlas the engine needs for layout;
// the rest is consumed directly via buffer.ScaledBuffer/theme.Img.
type Theme struct {
	TitlebarHeight   int
	BorderWidth      int
	CornerRadius     int
	ResizeCornerRange int
	ResizeMinArea    int
	ShadowsOnTiled   bool
}

// Thickness is the per-side decoration border.
type Thickness = geom.Border

// ComputeThickness returns the titlebar+border thickness for v under theme:
// zero when SSD is disabled or the view is fullscreen; titlebar-only when
// maximized on both axes; full thickness (minus a hidden titlebar)
// otherwise.
func ComputeThickness(v View, theme Theme) Thickness {
	if !v.SSDEnabled() || v.Fullscreen() {
		return Thickness{}
	}
	if v.Maximized() == wm.MaximizeBoth {
		if v.TitlebarHidden() {
			return Thickness{}
		}
		return Thickness{Top: theme.TitlebarHeight}
	}
	t := Thickness{
		Top:    theme.TitlebarHeight + theme.BorderWidth,
		Bottom: theme.BorderWidth,
		Left:   theme.BorderWidth,
		Right:  theme.BorderWidth,
	}
	if v.TitlebarHidden() {
		t.Top -= theme.TitlebarHeight
	}
	return t
}

// MaxExtents returns the outer box of a view's decoration: its content box
// grown by the decoration thickness.
func MaxExtents(v View, theme Theme) geom.Box {
	border := ComputeThickness(v, theme)
	box := v.ContentBox()
	box.Height = v.EffectiveHeight()
	return box.Grow(border)
}

// squared reports whether the titlebar should render without rounded
// outer corners.
func squared(v View) bool {
	return v.Maximized() == wm.MaximizeBoth || v.Tiled() || v.NarrowForSSD()
}

// State is the resolved decoration appearance for one frame, computed once
// per configure/state-change rather than re-derived on every paint.
type State struct {
	Squared       bool
	BordersHidden bool
	ExtentsHidden bool
	ShadowsHidden bool
	TitlebarHidden bool
}

// Resolve runs the full SSD state machine for v under theme.
func Resolve(v View, theme Theme) State {
	maxBoth := v.Maximized() == wm.MaximizeBoth
	return State{
		Squared:        squared(v),
		BordersHidden:  maxBoth,
		ExtentsHidden:  maxBoth || v.Fullscreen(),
		ShadowsHidden:  maxBoth || (v.Tiled() && !theme.ShadowsOnTiled),
		TitlebarHidden: v.TitlebarHidden(),
	}
}
