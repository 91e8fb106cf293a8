package server

import "github.com/labwc/labwc-core/view"

// focusable reports whether v can receive focus after a cycle ends: it
// must be mapped, not minimized, and either on the current workspace or
// pinned everywhere.
func (s *Server) focusable(v *view.View) bool {
	if !v.Mapped() || v.Minimized() {
		return false
	}
	return v.Workspace == s.Workspaces.Active() || v.Omnipresent()
}

// outputAlive reports whether the named output still exists and is
// usable.
func (s *Server) outputAlive(name string) bool {
	for _, o := range s.Outputs {
		if o.Name == name && o.Usable_() {
			return true
		}
	}
	return false
}

// FocusAfterCycle resolves which view receives focus when the window
// switcher closes: the last-cycled view if it is still focusable and
// its output survives; otherwise the topmost focusable view on the
// current workspace whose output survives (s.Views is kept in stacking
// order, last on top). Returns nil when nothing is focusable.
func (s *Server) FocusAfterCycle() *view.View {
	candidate := func(v *view.View) bool {
		return s.focusable(v) && (v.Output == "" || s.outputAlive(v.Output))
	}
	if v := s.LastCycledView; v != nil && candidate(v) {
		return v
	}
	for i := len(s.Views) - 1; i >= 0; i-- {
		if candidate(s.Views[i]) {
			return s.Views[i]
		}
	}
	return nil
}
