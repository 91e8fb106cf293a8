package ssd

import (
	"testing"

	"github.com/labwc/labwc-core/geom"
	"github.com/labwc/labwc-core/wm"
)

type fakeView struct {
	box            geom.Box
	effHeight      int
	maximized      wm.Maximized
	shaded         bool
	fullscreen     bool
	omnipresent    bool
	ssdEnabled     bool
	titlebarHidden bool
	tiled          bool
	narrow         bool
	title          string
	active         bool
}

func (v *fakeView) ContentBox() geom.Box       { return v.box }
func (v *fakeView) EffectiveHeight() int       { return v.effHeight }
func (v *fakeView) Maximized() wm.Maximized    { return v.maximized }
func (v *fakeView) Shaded() bool               { return v.shaded }
func (v *fakeView) Fullscreen() bool           { return v.fullscreen }
func (v *fakeView) Omnipresent() bool          { return v.omnipresent }
func (v *fakeView) SSDEnabled() bool           { return v.ssdEnabled }
func (v *fakeView) TitlebarHidden() bool       { return v.titlebarHidden }
func (v *fakeView) Tiled() bool                { return v.tiled }
func (v *fakeView) NarrowForSSD() bool         { return v.narrow }
func (v *fakeView) Title() string              { return v.title }
func (v *fakeView) Active() bool               { return v.active }

func baseTheme() Theme {
	return Theme{TitlebarHeight: 24, BorderWidth: 4, ResizeCornerRange: 16, ResizeMinArea: 8}
}

func TestComputeThicknessNormal(t *testing.T) {
	v := &fakeView{ssdEnabled: true, box: geom.Box{X: 0, Y: 0, Width: 100, Height: 100}, effHeight: 100}
	got := ComputeThickness(v, baseTheme())
	want := Thickness{Top: 28, Bottom: 4, Left: 4, Right: 4}
	if got != want {
		t.Fatalf("ComputeThickness = %+v, want %+v", got, want)
	}
}

func TestComputeThicknessMaximizedBoth(t *testing.T) {
	v := &fakeView{ssdEnabled: true, maximized: wm.MaximizeBoth}
	got := ComputeThickness(v, baseTheme())
	want := Thickness{Top: 24}
	if got != want {
		t.Fatalf("ComputeThickness(maximized) = %+v, want %+v", got, want)
	}
}

func TestComputeThicknessDisabledOrFullscreen(t *testing.T) {
	v := &fakeView{ssdEnabled: false}
	if got := ComputeThickness(v, baseTheme()); got != (Thickness{}) {
		t.Fatalf("disabled SSD should have zero thickness, got %+v", got)
	}
	v2 := &fakeView{ssdEnabled: true, fullscreen: true}
	if got := ComputeThickness(v2, baseTheme()); got != (Thickness{}) {
		t.Fatalf("fullscreen should have zero thickness, got %+v", got)
	}
}

func TestResolveStateMachine(t *testing.T) {
	v := &fakeView{ssdEnabled: true, maximized: wm.MaximizeBoth}
	st := Resolve(v, baseTheme())
	if !st.Squared || !st.BordersHidden || !st.ExtentsHidden {
		t.Fatalf("maximized-both should square, hide borders and extents: %+v", st)
	}

	v2 := &fakeView{ssdEnabled: true, tiled: true}
	st2 := Resolve(v2, Theme{ShadowsOnTiled: false})
	if !st2.Squared || !st2.ShadowsHidden || st2.BordersHidden {
		t.Fatalf("tiled without shadows-on-tiled should square and hide shadows only: %+v", st2)
	}
}

func TestPartAtCorner(t *testing.T) {
	v := &fakeView{
		ssdEnabled: true,
		box:        geom.Box{X: 100, Y: 100, Width: 200, Height: 200},
		effHeight:  200,
	}
	theme := baseTheme()
	// (98, 74) lies just outside the content box grown by the titlebar
	// (x from 100, y from 76) and within the 16px corner range.
	got := PartAt(v, theme, 98, 74, wm.PartNone)
	if got != wm.PartCornerTL {
		t.Fatalf("PartAt corner = %v, want CornerTL", got)
	}
}

func TestPartAtClientInterior(t *testing.T) {
	v := &fakeView{
		ssdEnabled: true,
		box:        geom.Box{X: 100, Y: 100, Width: 200, Height: 200},
		effHeight:  200,
	}
	got := PartAt(v, baseTheme(), 200, 200, wm.PartNone)
	if got != wm.PartClient {
		t.Fatalf("PartAt interior = %v, want Client", got)
	}
}

func TestHoverTrackerExclusive(t *testing.T) {
	var h HoverTracker
	a := NewButton(ButtonClose, wm.PartButtonClose)
	b := NewButton(ButtonMaximize, wm.PartButtonMaximize)

	h.Set(a)
	if !a.Hovered() {
		t.Fatal("a should be hovered")
	}
	h.Set(b)
	if a.Hovered() {
		t.Fatal("a should no longer be hovered once b is set")
	}
	if !b.Hovered() {
		t.Fatal("b should be hovered")
	}
}

func TestSSDDestroyFreesButtonDescriptors(t *testing.T) {
	v := &fakeView{ssdEnabled: true, box: geom.Box{Width: 200, Height: 200}, effHeight: 200}
	s := NewSSD(v, baseTheme())

	if len(s.Buttons) == 0 {
		t.Fatal("expected NewSSD to build a default button set")
	}
	buttons := append([]*Button(nil), s.Buttons...)
	for _, b := range buttons {
		if b.Node.Descriptor() == nil {
			t.Fatal("expected each button node to carry a descriptor before destroy")
		}
	}

	s.Destroy()

	for _, b := range buttons {
		if b.Node.Descriptor() != nil {
			t.Fatal("expected button node descriptor cleared after SSD.Destroy")
		}
	}
	if !s.Root.Destroyed() {
		t.Fatal("expected root node destroyed")
	}

	// Safe to call twice.
	s.Destroy()
}

type fixedMeasurer int

func (f fixedMeasurer) MeasureWidth(string) int { return int(f) }

func TestLayoutTitleTruncates(t *testing.T) {
	layout := LayoutTitle(fixedMeasurer(500), "a long title", 200, 20, 20, JustifyCenter)
	if !layout.Truncated {
		t.Fatal("expected truncation when title wider than available space")
	}
	if layout.Width != 160 {
		t.Fatalf("truncated width = %d, want 160 (200-20-20)", layout.Width)
	}
}
