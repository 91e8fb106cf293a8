// Package server wires the leaf components (view, ssd, edges, input,
// interactive, workspace, rules) into the single compositor root: the
// snap-constraint record and the last-cycled view are modeled here as
// fields on Server rather than as process-wide singletons, threaded
// explicitly through the handlers that need them. Server holds no
// key-repeat state.
package server

import (
	"github.com/labwc/labwc-core/edges"
	"github.com/labwc/labwc-core/input"
	"github.com/labwc/labwc-core/interactive"
	"github.com/labwc/labwc-core/rules"
	"github.com/labwc/labwc-core/ssd"
	"github.com/labwc/labwc-core/view"
	"github.com/labwc/labwc-core/wm"
	"github.com/labwc/labwc-core/workspace"
	"github.com/rs/zerolog/log"
)

// Server is the compositor root. It owns every view and output, the
// seat (input-mode state machine), the workspace manager, the window
// rule set and the snap-constraint singleton, and provides the
// cross-package orchestration (snap-to-edge, placement, first-map
// rule application, output-destroy migration) that no single leaf
// package can perform without importing all the others.
type Server struct {
	Views   []*view.View
	Outputs []*view.Output

	Workspaces *workspace.Manager
	Seat       *input.Seat
	Rules      *rules.Set
	Theme      ssd.Theme

	// Snap is the single sticky-edge record, otherwise a process-wide
	// singleton; kept here instead so tests can construct independent
	// Servers.
	Snap edges.SnapConstraint

	// SnapCfg tunes the grab handlers; Grab is the in-progress
	// interactive move/resize, nil while the seat is in PASSTHROUGH.
	SnapCfg SnapConfig
	Grab    *interactive.Grab

	// LastCycledView backs the window-switcher's "last toplevel"
	// focus-restore heuristic; falls back to the topmost focusable view
	// on the current workspace when its output is gone.
	LastCycledView *view.View

	// IMEPopups coalesces input-method popup reposition requests, one of
	// the event loop's idle-source-driven deferred tasks.
	IMEPopups *input.IMEPopupTracker
}

// New constructs an empty Server with a fresh seat and workspace
// manager, ready to have outputs/views/rules attached.
func New(rs *rules.Set, theme ssd.Theme) *Server {
	return &Server{
		Workspaces: workspace.NewManager(),
		Seat:       &input.Seat{},
		Rules:      rs,
		Theme:      theme,
		Snap:       edges.SnapConstraint{},
		IMEPopups:  input.NewIMEPopupTracker(),
	}
}

// AddView registers a newly created (not-yet-mapped) view.
func (s *Server) AddView(v *view.View) {
	s.Views = append(s.Views, v)
}

// RemoveView unregisters v (on destroy), invalidating any snap
// constraint or cycle-focus record that still points at it.
func (s *Server) RemoveView(v *view.View) {
	for i, existing := range s.Views {
		if existing == v {
			s.Views = append(s.Views[:i], s.Views[i+1:]...)
			break
		}
	}
	s.Snap.Invalidate(v)
	if s.LastCycledView == v {
		s.LastCycledView = nil
	}
	if s.Grab != nil {
		if gv, ok := s.Grab.View.(*view.View); ok && gv == v {
			s.CancelInteractive()
		}
	}
}

// ruleView adapts *view.View to rules.View without either package
// importing the other.
type ruleView struct{ v *view.View }

func (r ruleView) Query() rules.Query {
	return rules.Query{Identifier: r.v.AppID(), Title: r.v.Title()}
}

// ruleViews converts the server's tracked views to rules.View once, for
// a single Apply/GetProperty call.
func (s *Server) ruleViews() []rules.View {
	out := make([]rules.View, len(s.Views))
	for i, v := range s.Views {
		out[i] = ruleView{v}
	}
	return out
}

// GetProperty resolves a window-rule property for v against the
// server's configured rule set.
func (s *Server) GetProperty(v *view.View, prop wm.Property) wm.Tristate {
	return s.Rules.GetProperty(ruleView{v}, s.ruleViews(), prop)
}

// HandleFirstMap runs on-first-map window rules for v and logs each
// fired action; actual action execution (menu/exec dispatch) is an
// external collaborator's job, so actions are only logged here, for the
// caller to interpret.
func (s *Server) HandleFirstMap(v *view.View) []rules.Action {
	actions := s.Rules.Apply(ruleView{v}, s.ruleViews(), rules.EventOnFirstMap)
	for _, a := range actions {
		log.Info().Str("view", v.AppID()).Str("action", a.Name).Msg("window rule fired on first map")
	}
	return actions
}
