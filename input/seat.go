package input

import "github.com/labwc/labwc-core/wm"

// Button is a pointer button code, using the libinput BTN_* numbering the
// default stylus mapping refers to.
type Button uint32

const (
	BtnLeft   Button = 0x110
	BtnRight  Button = 0x111
	BtnMiddle Button = 0x112
)

// StylusButton names the tablet tool buttons the default mapping table
// covers.
type StylusButton int

const (
	StylusTip StylusButton = iota
	StylusButton1
	StylusButton2
)

// DefaultStylusMapping is the built-in Tip/Stylus/Stylus2 → BTN_* table,
// overridable per-user.
var DefaultStylusMapping = map[StylusButton]Button{
	StylusTip:     BtnLeft,
	StylusButton1: BtnRight,
	StylusButton2: BtnMiddle,
}

// TabletPadLink records that a tablet pad shares a libinput device group
// with a tablet tool, so native tablet-v2 events route to the focused
// surface instead of the emulated-click path.
type TabletPadLink struct {
	PadDeviceGroup    string
	TabletDeviceGroup string
}

func (l TabletPadLink) Linked() bool {
	return l.PadDeviceGroup != "" && l.PadDeviceGroup == l.TabletDeviceGroup
}

// Seat is the mutable, mutually-exclusive input-mode state machine.
// Exactly one of PASSTHROUGH/MOVE/RESIZE/MENU is active at a time;
// transitions out of MOVE/RESIZE always return to PASSTHROUGH.
type Seat struct {
	mode        wm.InputMode
	grabView    any
	resizeEdges ResizeEdges
}

// ResizeEdges names which edges a resize gesture latched at begin, a
// subset of {Left, Right, Top, Bottom}.
type ResizeEdges struct {
	Left, Right, Top, Bottom bool
}

func (s *Seat) Mode() wm.InputMode { return s.mode }
func (s *Seat) GrabView() any      { return s.grabView }

// CanBeginMove reports whether a view may start an interactive move: not
// fullscreen, and only from PASSTHROUGH.
func (s *Seat) CanBeginMove(fullscreen bool) bool {
	return s.mode == wm.ModePassthrough && !fullscreen
}

// CanBeginResize reports whether a view may start an interactive resize:
// not shaded, fullscreen or maximized-both, and only from PASSTHROUGH, and
// not position-fixed (struts, fixedPosition rule).
func (s *Seat) CanBeginResize(shaded, fullscreen bool, maximized wm.Maximized, fixedPosition bool) bool {
	if s.mode != wm.ModePassthrough {
		return false
	}
	if fixedPosition {
		return false
	}
	return !shaded && !fullscreen && maximized != wm.MaximizeBoth
}

// BeginMove transitions PASSTHROUGH → MOVE for view.
func (s *Seat) BeginMove(view any) {
	s.mode = wm.ModeMove
	s.grabView = view
}

// BeginResize transitions PASSTHROUGH → RESIZE for view with the given
// latched edges.
func (s *Seat) BeginResize(view any, edges ResizeEdges) {
	s.mode = wm.ModeResize
	s.grabView = view
	s.resizeEdges = edges
}

func (s *Seat) ResizeEdges() ResizeEdges { return s.resizeEdges }

// Finish and Cancel both return to PASSTHROUGH; Finish additionally
// applies a snap (the caller does that before calling Finish), Cancel
// discards the in-progress geometry (the caller restores grab_box before
// calling Cancel). Button release always calls one of these.
func (s *Seat) Finish() { s.reset() }
func (s *Seat) Cancel() { s.reset() }

func (s *Seat) reset() {
	s.mode = wm.ModePassthrough
	s.grabView = nil
	s.resizeEdges = ResizeEdges{}
}
