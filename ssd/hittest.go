package ssd

import (
	"github.com/labwc/labwc-core/geom"
	"github.com/labwc/labwc-core/wm"
)

// PartAt resolves the SSD part under the cursor at (x, y) in layout
// coordinates, following ssd_get_part_type()'s two-stage approach:
// an explicit part, if (x, y) falls on a tagged region (titlebar, a
// button, a border strip); otherwise the corner-region override from
// get_resizing_type, which takes priority over a plain edge whenever the
// cursor is within the clipped corner range of the view's outer bounds.
func PartAt(v View, theme Theme, x, y int, explicit wm.Part) wm.Part {
	if !v.SSDEnabled() || v.Fullscreen() {
		if explicit != wm.PartNone {
			return explicit
		}
		return wm.PartClient
	}

	box := v.ContentBox()
	box.Height = v.EffectiveHeight()
	if !v.TitlebarHidden() {
		box.Y -= theme.TitlebarHeight
		box.Height += theme.TitlebarHeight
	}

	if box.Contains(x, y) {
		if explicit != wm.PartNone {
			return explicit
		}
		return wm.PartClient
	}

	if corner := cornerAt(box, theme.ResizeCornerRange, x, y); corner != wm.PartNone {
		return corner
	}
	if explicit != wm.PartNone {
		return explicit
	}
	return wm.PartNone
}

// cornerAt reproduces get_resizing_type's clipped corner-range test: the
// corner hot zone is min(resize_corner_range, dimension/2) on each axis, so
// small views don't have overlapping corner regions.
func cornerAt(box geom.Box, resizeCornerRange, x, y int) wm.Part {
	cornerW := clamp(resizeCornerRange, 0, box.Width/2)
	cornerH := clamp(resizeCornerRange, 0, box.Height/2)

	left := x < box.X+cornerW
	right := x > box.X+box.Width-cornerW
	top := y < box.Y+cornerH
	bottom := y > box.Y+box.Height-cornerH

	switch {
	case top && left:
		return wm.PartCornerTL
	case top && right:
		return wm.PartCornerTR
	case bottom && left:
		return wm.PartCornerBL
	case bottom && right:
		return wm.PartCornerBR
	case top:
		return wm.PartTop
	case bottom:
		return wm.PartBottom
	case left:
		return wm.PartLeft
	case right:
		return wm.PartRight
	default:
		return wm.PartNone
	}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
