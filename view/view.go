// Package view implements the view model: the geometry state machine
// (current/pending/natural), maximize/tile/fullscreen/shade/minimize
// toggles, workspace membership and the xdg-shell configure-serial
// commit protocol. The protocol backend's vtable of operations is
// modeled as an Impl interface rather than a struct of function
// pointers, the idiomatic "accept interfaces, return structs" seam for a
// backend-specific dependency.
package view

import (
	"github.com/labwc/labwc-core/event"
	"github.com/labwc/labwc-core/geom"
	"github.com/labwc/labwc-core/ssd"
	"github.com/labwc/labwc-core/wm"
)

// Impl is implemented by the xdg-shell/xwayland backend for a view: the
// protocol-specific operations view.View cannot perform generically.
type Impl interface {
	// Configure asks the client to resize/reposition to geo and returns
	// the serial the client will ack on commit (xdg-shell); xwayland
	// implementations may apply geo synchronously and return 0.
	Configure(geo geom.Box) uint32
	SetActivated(activated bool)
	SetFullscreen(fullscreen bool)
	SetMaximized(maximized wm.Maximized)
	Close()
	GetStringProp(name string) string
}

// StateChange is emitted on View.Changed after any operation that alters
// visible state, so the SSD/workspace/foreign-toplevel fanout can all
// subscribe once instead of each operation threading its own callbacks.
type StateChange struct {
	View *View
}

// View is one mapped (or about-to-be-mapped) toplevel surface.
type View struct {
	Kind  wm.Kind
	impl  Impl
	title string
	appID string

	mapped     bool
	beenMapped bool
	minimized  bool
	inhibitsKeybinds bool
	fullscreen bool
	fullscreenOutput string
	shaded     bool
	maximized  wm.Maximized
	alwaysOnTop bool
	omnipresent bool
	ssdEnabled bool
	titlebarHidden bool
	tiledEdges geom.EdgeSet
	decorationsForcedOff bool
	activated  bool

	current geom.Box
	pending geom.Box
	natural geom.Box
	hasNatural bool

	pendingConfigureSerial uint32
	pendingResizingLeft    bool
	pendingResizingTop     bool

	Decoration *ssd.SSD

	Workspace string
	// Output is the view's primary output assignment, by name; empty
	// until the compositor assigns one on first map. A view belongs to
	// at most one output.
	Output string

	Changed event.Signal[StateChange]
}

// New constructs an unmapped View backed by impl.
func New(kind wm.Kind, impl Impl) *View {
	return &View{Kind: kind, impl: impl, ssdEnabled: true}
}

func (v *View) notify() { v.Changed.Emit(StateChange{View: v}) }

// --- ssd.View interface -----------------------------------------------

func (v *View) ContentBox() geom.Box    { return v.current }
func (v *View) Maximized() wm.Maximized { return v.maximized }
func (v *View) Shaded() bool            { return v.shaded }
func (v *View) Fullscreen() bool        { return v.fullscreen }
func (v *View) Omnipresent() bool       { return v.omnipresent }
func (v *View) SSDEnabled() bool        { return v.ssdEnabled && !v.decorationsForcedOff }
func (v *View) TitlebarHidden() bool    { return v.titlebarHidden }
func (v *View) Tiled() bool             { return !v.tiledEdges.Empty() }
func (v *View) Title() string           { return v.title }
func (v *View) Active() bool            { return v.activated }

// NarrowForSSD reports whether the view is too narrow for a full titlebar
// layout: it distinguishes "tiled" (docked to one edge, can still be
// narrow) from "maximized both" (always squared regardless of width).
func (v *View) NarrowForSSD() bool {
	return v.Tiled() && v.current.Width < narrowThreshold
}

const narrowThreshold = 132

// EffectiveHeight returns the content height, zero when shaded: a shaded
// view keeps its full geometry in current/pending but paints only the
// titlebar.
func (v *View) EffectiveHeight() int {
	if v.shaded {
		return 0
	}
	return v.current.Height
}

