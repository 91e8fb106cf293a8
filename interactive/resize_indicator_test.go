package interactive

import (
	"testing"

	"github.com/labwc/labwc-core/wm"
)

func TestWantsIndicatorNonPixelRequiresResizeAndIncrements(t *testing.T) {
	hints := SizeHints{WidthInc: 8, HeightInc: 16}
	if !WantsIndicator(IndicatorNonPixel, wm.ModeResize, hints) {
		t.Fatal("expected indicator during resize of a view with pixel increments")
	}
	if WantsIndicator(IndicatorNonPixel, wm.ModeMove, hints) {
		t.Fatal("non-pixel policy must not show during a plain move")
	}
	if WantsIndicator(IndicatorNonPixel, wm.ModeResize, SizeHints{}) {
		t.Fatal("non-pixel policy must not show for a view with no increment hints")
	}
}

func TestWantsIndicatorAlwaysIgnoresMode(t *testing.T) {
	if !WantsIndicator(IndicatorAlways, wm.ModePassthrough, SizeHints{}) {
		t.Fatal("ALWAYS policy should show regardless of mode")
	}
}

func TestWantsIndicatorNever(t *testing.T) {
	if WantsIndicator(IndicatorNever, wm.ModeResize, SizeHints{WidthInc: 1, HeightInc: 1}) {
		t.Fatal("NEVER policy must never show the indicator")
	}
}

func TestResizeIndicatorTextResizeIncrements(t *testing.T) {
	var r ResizeIndicator
	hints := SizeHints{WidthInc: 8, HeightInc: 16, BaseWidth: 10, BaseHeight: 20}
	got := r.Text(wm.ModeResize, 90, 180, hints, 0, 0, 0, 0)
	want := "10 x 10"
	if got != want {
		t.Fatalf("Text(resize) = %q, want %q", got, want)
	}
}

func TestResizeIndicatorTextResizeClampsNegative(t *testing.T) {
	var r ResizeIndicator
	hints := SizeHints{WidthInc: 0, HeightInc: 0, BaseWidth: 100, BaseHeight: 100}
	got := r.Text(wm.ModeResize, 10, 10, hints, 0, 0, 0, 0)
	if got != "0 x 0" {
		t.Fatalf("Text(resize) with shrink-below-base = %q, want %q", got, "0 x 0")
	}
}

func TestResizeIndicatorTextMoveSubtractsMargin(t *testing.T) {
	var r ResizeIndicator
	got := r.Text(wm.ModeMove, 0, 0, SizeHints{}, 120, 80, 4, 24)
	want := "116 , 56"
	if got != want {
		t.Fatalf("Text(move) = %q, want %q", got, want)
	}
}

func TestResizeIndicatorShowHideVisibility(t *testing.T) {
	var r ResizeIndicator
	r.Show(IndicatorNever, wm.ModeResize, SizeHints{WidthInc: 1, HeightInc: 1})
	if r.Visible() {
		t.Fatal("NEVER policy must not arm the indicator")
	}
	r.Show(IndicatorAlways, wm.ModeResize, SizeHints{})
	if !r.Visible() {
		t.Fatal("expected indicator visible after Show with ALWAYS policy")
	}
	r.Hide()
	if r.Visible() {
		t.Fatal("expected indicator hidden after Hide")
	}
}
