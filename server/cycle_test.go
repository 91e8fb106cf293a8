package server

import (
	"testing"

	"github.com/labwc/labwc-core/geom"
	"github.com/labwc/labwc-core/rules"
	"github.com/labwc/labwc-core/ssd"
	"github.com/labwc/labwc-core/view"
	"github.com/labwc/labwc-core/wm"
)

func cycleServer() (*Server, *view.Output) {
	s := New(&rules.Set{}, ssd.Theme{})
	s.Workspaces.Create("main")
	out := view.NewOutput("eDP-1", geom.Box{Width: 1920, Height: 1080})
	s.Outputs = append(s.Outputs, out)
	return s, out
}

func cycleView(s *Server, output string) *view.View {
	v := view.New(wm.KindXDG, nil)
	v.Workspace = "main"
	v.SetOutput(output)
	v.Map()
	s.AddView(v)
	return v
}

func TestFocusAfterCycleLastCycledWins(t *testing.T) {
	s, _ := cycleServer()
	a := cycleView(s, "eDP-1")
	b := cycleView(s, "eDP-1")
	_ = b

	s.LastCycledView = a
	if got := s.FocusAfterCycle(); got != a {
		t.Fatal("expected last-cycled view to win while its output survives")
	}
}

// The open-question policy: a last toplevel on a destroyed output falls
// back to the topmost focusable view on the current workspace.
func TestFocusAfterCycleFallsBackWhenOutputGone(t *testing.T) {
	s, out := cycleServer()
	dead := view.NewOutput("HDMI-1", geom.Box{Width: 1280, Height: 720})
	s.Outputs = append(s.Outputs, dead)

	a := cycleView(s, "eDP-1")
	b := cycleView(s, "HDMI-1")
	_ = out

	s.LastCycledView = b
	dead.MarkDestroyed()
	// Note: without migration the view still names the dead output.
	if got := s.FocusAfterCycle(); got != a {
		t.Fatalf("expected fallback to topmost focusable view, got %v", got)
	}
}

func TestFocusAfterCycleSkipsMinimizedAndOtherWorkspaces(t *testing.T) {
	s, _ := cycleServer()
	s.Workspaces.Create("two")

	a := cycleView(s, "eDP-1")
	b := cycleView(s, "eDP-1")
	b.SetMinimized(true)
	c := cycleView(s, "eDP-1")
	c.MoveToWorkspace("two")

	if got := s.FocusAfterCycle(); got != a {
		t.Fatalf("expected the remaining focusable view, got %v", got)
	}
}

func TestFocusAfterCycleOmnipresentCounts(t *testing.T) {
	s, _ := cycleServer()
	s.Workspaces.Create("two")

	v := cycleView(s, "eDP-1")
	v.MoveToWorkspace("two")
	v.SetVisibleOnAllWorkspaces(true)

	if got := s.FocusAfterCycle(); got != v {
		t.Fatal("expected omnipresent view focusable from any workspace")
	}
}

func TestFocusAfterCycleNothingFocusable(t *testing.T) {
	s, _ := cycleServer()
	if got := s.FocusAfterCycle(); got != nil {
		t.Fatalf("expected nil with no views, got %v", got)
	}
}
