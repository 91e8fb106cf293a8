package server

import (
	"testing"
	"time"

	"github.com/labwc/labwc-core/geom"
	"github.com/labwc/labwc-core/input"
	"github.com/labwc/labwc-core/interactive"
	"github.com/labwc/labwc-core/rules"
	"github.com/labwc/labwc-core/ssd"
	"github.com/labwc/labwc-core/view"
	"github.com/labwc/labwc-core/wm"
)

func grabServer() *Server {
	s := New(&rules.Set{}, ssd.Theme{})
	s.Outputs = append(s.Outputs, view.NewOutput("eDP-1", geom.Box{X: 0, Y: 0, Width: 1920, Height: 1080}))
	s.SnapCfg = SnapConfig{
		Range:       10,
		Gap:         0,
		TopMaximize: false,
		PreviewDelays: interactive.OverlayDelays{
			Inner: 100 * time.Millisecond,
			Outer: 200 * time.Millisecond,
		},
	}
	return s
}

func mappedView(s *Server, box geom.Box) *view.View {
	v := view.New(wm.KindXDG, nil)
	v.Map()
	v.MoveResize(box)
	s.AddView(v)
	return v
}

// A move grab dragged to the left screen edge clamps at the output
// boundary, shows the snap preview after the outer delay, and half-snaps
// on release.
func TestMoveGrabEdgeSnapLifecycle(t *testing.T) {
	s := grabServer()
	v := mappedView(s, geom.Box{X: 500, Y: 500, Width: 400, Height: 300})

	if !s.BeginInteractive(v, wm.ModeMove, input.ResizeEdges{}, 700, 600) {
		t.Fatal("BeginInteractive refused a plain floating move")
	}
	if s.Seat.Mode() != wm.ModeMove {
		t.Fatalf("seat mode = %v, want move", s.Seat.Mode())
	}

	t0 := time.Unix(100, 0)
	s.HandleMotion(5, 600, t0)
	if got := v.Current(); got.X != 0 {
		t.Fatalf("X = %d, want clamp at output edge 0", got.X)
	}
	if s.Grab.Overlay.Visible() {
		t.Fatal("preview visible before the outer delay elapsed")
	}

	s.HandleMotion(5, 600, t0.Add(250*time.Millisecond))
	if !s.Grab.Overlay.Visible() {
		t.Fatal("preview still hidden after the outer delay")
	}
	if got := s.Grab.PreviewBox(s.Outputs[0].Usable, false); got != (geom.Box{X: 0, Y: 0, Width: 960, Height: 1080}) {
		t.Fatalf("PreviewBox = %+v, want left half", got)
	}

	s.FinishInteractive(t0.Add(260 * time.Millisecond))
	if s.Grab != nil || s.Seat.Mode() != wm.ModePassthrough {
		t.Fatal("finish should clear the grab and return to passthrough")
	}
	if got := v.Current(); got != (geom.Box{X: 0, Y: 0, Width: 960, Height: 1080}) {
		t.Fatalf("Current = %+v, want left half-snap", got)
	}
	if !v.TiledEdges().Has(geom.EdgeLeft) {
		t.Fatal("view should be tiled left after the snap")
	}
}

// With <topMaximize> set, releasing a move on the top-edge preview
// maximizes instead of half-snapping.
func TestMoveGrabTopMaximize(t *testing.T) {
	s := grabServer()
	s.SnapCfg.TopMaximize = true
	v := mappedView(s, geom.Box{X: 500, Y: 500, Width: 400, Height: 300})
	v.SetOutput("eDP-1")

	s.BeginInteractive(v, wm.ModeMove, input.ResizeEdges{}, 700, 600)
	t0 := time.Unix(100, 0)
	s.HandleMotion(700, 5, t0)
	s.FinishInteractive(t0.Add(time.Second))

	if v.Maximized() != wm.MaximizeBoth {
		t.Fatalf("Maximized = %v, want both", v.Maximized())
	}
	natural, ok := v.Natural()
	if !ok || natural.Width != 400 {
		t.Fatalf("natural geometry lost across topMaximize: %+v, %v", natural, ok)
	}
}

type recordingImpl struct {
	serial uint32
	geo    geom.Box
}

func (f *recordingImpl) Configure(geo geom.Box) uint32 {
	f.serial++
	f.geo = geo
	return f.serial
}
func (f *recordingImpl) SetActivated(bool)         {}
func (f *recordingImpl) SetFullscreen(bool)        {}
func (f *recordingImpl) SetMaximized(wm.Maximized) {}
func (f *recordingImpl) Close()                    {}
func (f *recordingImpl) GetStringProp(string) string {
	return ""
}

// A rightward resize toward a neighbor clamps at the neighbor's edge,
// records the sticky constraint, and the commit path hands the client's
// actual geometry back to the constraint record.
func TestResizeGrabSnapsToNeighborAndRecordsConstraint(t *testing.T) {
	s := grabServer()

	impl := &recordingImpl{}
	v := view.New(wm.KindXDG, impl)
	v.Map()
	s.AddView(v)
	// Give the xdg view its starting geometry through the commit path.
	v.MoveResize(geom.Box{X: 0, Y: 0, Width: 400, Height: 300})
	s.HandleCommit(v, impl.serial)

	mappedView(s, geom.Box{X: 500, Y: 0, Width: 300, Height: 300})

	re := input.ResizeEdges{Right: true}
	if !s.BeginInteractive(v, wm.ModeResize, re, 400, 150) {
		t.Fatal("BeginInteractive refused a plain resize")
	}

	s.HandleMotion(510, 150, time.Unix(100, 0))
	if impl.geo != (geom.Box{X: 0, Y: 0, Width: 500, Height: 300}) {
		t.Fatalf("configure geo = %+v, want width clamped at neighbor edge 500", impl.geo)
	}

	s.HandleCommit(v, impl.serial)
	if v.Current().Width != 500 {
		t.Fatalf("Current.Width = %d, want 500", v.Current().Width)
	}

	// The constraint survives commit and still names the snapped edge.
	eff := s.Snap.Effective(v, geom.DirRight, v.Current())
	if eff.Right() != 500 {
		t.Fatalf("Effective right edge = %d, want sticky 500", eff.Right())
	}

	s.FinishInteractive(time.Unix(101, 0))
	if s.Seat.Mode() != wm.ModePassthrough {
		t.Fatal("resize finish should return to passthrough")
	}
}

// A fixedPosition window rule refuses interactive grabs outright.
func TestBeginInteractiveHonorsFixedPosition(t *testing.T) {
	rs := &rules.Set{Rules: []rules.Rule{
		{IdentifierGlob: "*", WindowType: -1,
			Properties: map[wm.Property]wm.Tristate{wm.PropFixedPosition: wm.True}},
	}}
	s := New(rs, ssd.Theme{})
	s.Outputs = append(s.Outputs, view.NewOutput("eDP-1", geom.Box{Width: 1920, Height: 1080}))
	v := mappedView(s, geom.Box{X: 100, Y: 100, Width: 400, Height: 300})

	if s.BeginInteractive(v, wm.ModeMove, input.ResizeEdges{}, 200, 200) {
		t.Fatal("fixedPosition view must not begin a move grab")
	}
	if s.Seat.Mode() != wm.ModePassthrough {
		t.Fatal("refused grab must leave the seat in passthrough")
	}
}

// Destroying the grabbed view cancels the grab.
func TestRemoveViewCancelsGrab(t *testing.T) {
	s := grabServer()
	v := mappedView(s, geom.Box{X: 100, Y: 100, Width: 400, Height: 300})

	s.BeginInteractive(v, wm.ModeMove, input.ResizeEdges{}, 200, 200)
	s.RemoveView(v)

	if s.Grab != nil || s.Seat.Mode() != wm.ModePassthrough {
		t.Fatal("removing the grabbed view should cancel the grab")
	}
}
