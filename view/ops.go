package view

import (
	"github.com/labwc/labwc-core/geom"
	"github.com/labwc/labwc-core/wm"
)

// Map marks the view visible. The first map is sticky: beenMapped never
// clears again, so callers can distinguish a first map (window rules,
// placement, foreign-toplevel create) from a re-map after minimize.
func (v *View) Map() {
	v.mapped = true
	v.beenMapped = true
	v.notify()
}

// BeenMapped reports whether the view has ever been mapped.
func (v *View) BeenMapped() bool { return v.beenMapped }

// Unmap marks the view invisible without destroying it (e.g. minimized
// xwayland surfaces stay allocated).
func (v *View) Unmap() {
	v.mapped = false
	v.notify()
}

// Mapped reports whether the view is currently mapped.
func (v *View) Mapped() bool { return v.mapped }

// Destroy tears down the view. Callers must have already unmapped it and
// detached any scene nodes/decoration.
func (v *View) Destroy() {
	if v.Decoration != nil {
		v.Decoration.Destroy()
		v.Decoration = nil
	}
}

// storeNaturalIfFloating copies current into natural before a state change
// that would shrink the floating area: only while the view is still
// floating (not already maximized/tiled/fullscreen) does the current box
// represent a position worth returning to.
func (v *View) storeNaturalIfFloating() {
	if v.maximized == wm.MaximizeNone && !v.Tiled() && !v.fullscreen {
		v.natural = v.current
		v.hasNatural = true
	}
}

// Current returns the view's current (committed) geometry.
func (v *View) Current() geom.Box { return v.current }

// Pending returns the geometry of the outstanding configure, equal to
// Current when no configure is in flight.
func (v *View) Pending() geom.Box { return v.pending }

// StoreNaturalGeometry captures current into natural if the view is
// still floating, exported for the interactive move/resize grab to call
// at the start of a move.
func (v *View) StoreNaturalGeometry() { v.storeNaturalIfFloating() }

// SetUntiled clears the tiled edge set without touching maximize state,
// exported for the interactive resize grab.
func (v *View) SetUntiled() { v.SetTiled(0) }

// Move repositions the view without resizing it.
func (v *View) Move(x, y int) {
	v.pending.X, v.pending.Y = x, y
	v.commitOrApply()
}

// MoveResize requests geo as the new pending geometry, returning the
// configure serial an xdg-shell implementation should wait for before
// promoting pending to current. Anchor rule: resizing the left edge
// anchors the right edge and vice versa, same for top/bottom; callers
// set pendingResizingLeft/Top via StartResize before calling this
// repeatedly during an interactive resize.
func (v *View) MoveResize(geo geom.Box) uint32 {
	v.pending = geo
	return v.commitOrApply()
}

// StartResize records which edges are moving for this resize gesture, so
// Commit can apply the correct anchor once the client acks.
func (v *View) StartResize(resizingLeft, resizingTop bool) {
	v.pendingResizingLeft = resizingLeft
	v.pendingResizingTop = resizingTop
}

func (v *View) commitOrApply() uint32 {
	if v.impl == nil {
		v.current = v.pending
		v.notify()
		return 0
	}
	serial := v.impl.Configure(v.pending)
	if v.Kind == wm.KindXWayland {
		// Xwayland applies changes synchronously.
		v.current = v.pending
		v.notify()
		return 0
	}
	v.pendingConfigureSerial = serial
	return serial
}

// Commit adopts pending into current if serial matches the outstanding
// configure, applying the edge-anchor rule: if the left edge was the one
// resizing, the right edge (current.X+current.Width) stays fixed and X
// moves; symmetric for top/bottom.
func (v *View) Commit(serial uint32) {
	if serial != v.pendingConfigureSerial {
		return
	}
	prev := v.current
	next := v.pending

	if v.pendingResizingLeft {
		right := prev.Right()
		next.X = right - next.Width
	}
	if v.pendingResizingTop {
		bottom := prev.Bottom()
		next.Y = bottom - next.Height
	}

	v.current = next
	v.notify()
}

// SetMaximized applies axis, capturing natural geometry first when
// storeNatural is true and the view is currently floating.
func (v *View) SetMaximized(axis wm.Maximized, storeNatural bool) {
	if storeNatural {
		v.storeNaturalIfFloating()
	}
	v.maximized = axis
	if v.impl != nil {
		v.impl.SetMaximized(axis)
	}
	v.notify()
}

// SetTiled docks the view to the given edge set; maximize state is left
// unchanged.
func (v *View) SetTiled(edges geom.EdgeSet) {
	v.tiledEdges = edges
	v.notify()
}

// TiledEdges returns the current tiling edge set.
func (v *View) TiledEdges() geom.EdgeSet { return v.tiledEdges }

// SetFullscreen enters or leaves fullscreen on the given output name.
func (v *View) SetFullscreen(fullscreen bool, output string) {
	if fullscreen {
		v.storeNaturalIfFloating()
	}
	v.fullscreen = fullscreen
	v.fullscreenOutput = output
	if v.impl != nil {
		v.impl.SetFullscreen(fullscreen)
	}
	v.notify()
}

// FullscreenOutput returns the output the view is fullscreen on, or "" if
// not fullscreen.
func (v *View) FullscreenOutput() string { return v.fullscreenOutput }

// SetShaded toggles the shaded (titlebar-only) state.
func (v *View) SetShaded(shaded bool) {
	v.shaded = shaded
	v.notify()
}

// SetMinimized toggles the minimized (iconified) state.
func (v *View) SetMinimized(minimized bool) {
	v.minimized = minimized
	if minimized {
		v.Unmap()
		return
	}
	v.notify()
}

func (v *View) Minimized() bool { return v.minimized }

// MoveToWorkspace reassigns the view's workspace membership.
func (v *View) MoveToWorkspace(ws string) {
	v.Workspace = ws
	v.notify()
}

// SetOutput reassigns the view's primary output, e.g. on first map or
// when its previous output is destroyed and the compositor migrates it.
func (v *View) SetOutput(output string) {
	v.Output = output
	v.notify()
}

// SetDecorations enables or disables SSD for this view specifically.
func (v *View) SetDecorations(enabled bool) {
	v.ssdEnabled = enabled
	v.notify()
}

// SetVisibleOnAllWorkspaces pins the view to every workspace
// (omnipresent); the SSD's pin button reflects this via its toggled
// icon variant.
func (v *View) SetVisibleOnAllWorkspaces(omnipresent bool) {
	v.omnipresent = omnipresent
	v.notify()
}

// SetTitlebarHidden hides or shows the titlebar while keeping the rest
// of the decoration.
func (v *View) SetTitlebarHidden(hidden bool) {
	v.titlebarHidden = hidden
	v.notify()
}

// SetInhibitsKeybinds marks the view as swallowing compositor keybinds
// while focused (window-rule driven; games and VMs ask for this).
func (v *View) SetInhibitsKeybinds(inhibit bool) {
	v.inhibitsKeybinds = inhibit
	v.notify()
}

func (v *View) InhibitsKeybinds() bool { return v.inhibitsKeybinds }

// ToggleAlwaysOnTop flips the always-on-top stacking flag.
func (v *View) ToggleAlwaysOnTop() {
	v.alwaysOnTop = !v.alwaysOnTop
	v.notify()
}

func (v *View) AlwaysOnTop() bool { return v.alwaysOnTop }

// RestoreTo sets current (and pending) directly to box, clearing
// maximize/tile/fullscreen — the inverse of the maximize/tile/fullscreen
// operations, used when restoring from natural geometry.
func (v *View) RestoreTo(box geom.Box) {
	v.maximized = wm.MaximizeNone
	v.tiledEdges = 0
	v.fullscreen = false
	v.pending = box
	v.commitOrApply()
}

// Natural returns the stored natural (pre-maximize/tile/fullscreen)
// geometry and whether one has been captured yet.
func (v *View) Natural() (geom.Box, bool) { return v.natural, v.hasNatural }

// SetActivated sets the activated flag; at most one view is active at a
// time, enforced by the caller (the workspace manager) rather than here.
func (v *View) SetActivated(activated bool) {
	v.activated = activated
	if v.impl != nil {
		v.impl.SetActivated(activated)
	}
	v.notify()
}

// SetTitle updates the cached title string.
func (v *View) SetTitle(title string) {
	v.title = title
	v.notify()
}

func (v *View) SetAppID(appID string) { v.appID = appID }
func (v *View) AppID() string         { return v.appID }

// Close requests the client close the view.
func (v *View) Close() {
	if v.impl != nil {
		v.impl.Close()
	}
}
