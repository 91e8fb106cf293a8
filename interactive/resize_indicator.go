package interactive

import (
	"fmt"

	"github.com/labwc/labwc-core/wm"
)

// IndicatorPolicy selects when the on-screen
// "WxH"/"X,Y" label shows during an interactive move/resize.
type IndicatorPolicy int

const (
	IndicatorNever IndicatorPolicy = iota
	IndicatorAlways
	IndicatorNonPixel
)

// SizeHints is the subset of the xdg-shell size-hints protocol the
// indicator's resize text needs: when WidthInc/HeightInc are both
// non-zero the view resizes in discrete increments (e.g. a terminal's
// character cell) and the indicator reports increment counts rather
// than raw pixels.
type SizeHints struct {
	WidthInc, HeightInc   int
	BaseWidth, BaseHeight int
}

// WantsIndicator decides whether the on-screen resize/move indicator
// should be shown at all: ALWAYS always shows it; NON_PIXEL only shows it while
// actually resizing a view whose size hints declare pixel increments
// (so a plain move, or a resize of a view with no increment hints,
// stays silent); NEVER never shows it.
func WantsIndicator(policy IndicatorPolicy, mode wm.InputMode, hints SizeHints) bool {
	if policy == IndicatorAlways {
		return true
	}
	if policy == IndicatorNonPixel {
		return mode == wm.ModeResize && hints.WidthInc != 0 && hints.HeightInc != 0
	}
	return false
}

// ResizeIndicator tracks the on-screen indicator's visibility for one
// view's grab; actual scene-node placement is the caller's
// responsibility (this package has no scene dependency), mirroring how
// Grab itself only tracks geometry, not rendering.
type ResizeIndicator struct {
	visible bool
}

// Show lazily arms the indicator if
// policy/mode call for it, a no-op otherwise.
func (r *ResizeIndicator) Show(policy IndicatorPolicy, mode wm.InputMode, hints SizeHints) {
	if !WantsIndicator(policy, mode, hints) {
		return
	}
	r.visible = true
}

// Hide disarms the indicator, always safe to call.
func (r *ResizeIndicator) Hide() {
	r.visible = false
}

func (r *ResizeIndicator) Visible() bool { return r.visible }

// Text formats the indicator's label for the current grab mode,
// with two text branches: RESIZE
// reports increment counts (clamped at zero, divisor floored at one, per
// the source's MAX(0,...)/MAX(1,...) guards against negative or
// divide-by-zero increments mid-shrink); MOVE reports the view's
// position net of its SSD margin.
func (r *ResizeIndicator) Text(mode wm.InputMode, effWidth, effHeight int, hints SizeHints, currentX, currentY, marginLeft, marginTop int) string {
	switch mode {
	case wm.ModeResize:
		widthInc, heightInc := hints.WidthInc, hints.HeightInc
		if widthInc < 1 {
			widthInc = 1
		}
		if heightInc < 1 {
			heightInc = 1
		}
		w := effWidth - hints.BaseWidth
		if w < 0 {
			w = 0
		}
		h := effHeight - hints.BaseHeight
		if h < 0 {
			h = 0
		}
		return fmt.Sprintf("%d x %d", w/widthInc, h/heightInc)
	case wm.ModeMove:
		return fmt.Sprintf("%d , %d", currentX-marginLeft, currentY-marginTop)
	default:
		return ""
	}
}
