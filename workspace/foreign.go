package workspace

// ToplevelState is the subset of view state the foreign-toplevel
// protocols mirror: the fields both the wlr and ext handle families
// expose via their overlapping set_* calls.
type ToplevelState struct {
	Title      string
	AppID      string
	Outputs    []string
	Maximized  bool
	Minimized  bool
	Fullscreen bool
	Activated  bool
}

// ProtocolCall records one outbound handle update, tagged by which
// protocol family it targets, so tests can assert both fire and in
// what order.
type ProtocolCall struct {
	Protocol string // "wlr" or "ext"
	Field    string
	State    ToplevelState
}

// Toplevel fans a single view-state change out to both the wlr and the
// ext foreign-toplevel handle for one view within a single call: both
// handles are updated in the same dispatch, with no intervening call
// able to observe the prior state.
type Toplevel struct {
	ID    string
	State ToplevelState
}

// SetTitle updates the cached title and returns the two protocol calls
// this emits, wlr before ext.
func (t *Toplevel) SetTitle(title string) []ProtocolCall {
	t.State.Title = title
	return t.fanout("title")
}

func (t *Toplevel) SetMaximized(maximized bool) []ProtocolCall {
	t.State.Maximized = maximized
	return t.fanout("maximized")
}

func (t *Toplevel) SetMinimized(minimized bool) []ProtocolCall {
	t.State.Minimized = minimized
	return t.fanout("minimized")
}

func (t *Toplevel) SetFullscreen(fullscreen bool) []ProtocolCall {
	t.State.Fullscreen = fullscreen
	return t.fanout("fullscreen")
}

func (t *Toplevel) SetActivated(activated bool) []ProtocolCall {
	t.State.Activated = activated
	return t.fanout("activated")
}

func (t *Toplevel) fanout(field string) []ProtocolCall {
	return []ProtocolCall{
		{Protocol: "wlr", Field: field, State: t.State},
		{Protocol: "ext", Field: field, State: t.State},
	}
}

// SetOutputs fans a change in the view's output set out to both
// protocols; the ext handle sends the full set, the wlr handle sends
// per-output enter/leave, but at this level both are one "outputs"
// update in the same dispatch.
func (t *Toplevel) SetOutputs(outputs []string) []ProtocolCall {
	t.State.Outputs = append([]string(nil), outputs...)
	return t.fanout("outputs")
}

func (t *Toplevel) SetAppID(appID string) []ProtocolCall {
	t.State.AppID = appID
	return t.fanout("app_id")
}

// Finished closes out both handles when the view is destroyed; the
// aggregator must not be used afterwards.
func (t *Toplevel) Finished() []ProtocolCall {
	return t.fanout("finished")
}

// ViewHandler is the view-side implementation of the five unified
// client requests both foreign-toplevel protocols can deliver. The
// aggregator funnels requests from either protocol family through one
// handler so a panel on the wlr protocol and a dock on the ext
// protocol cannot race each other with divergent code paths.
type ViewHandler interface {
	RequestMaximize(maximized bool)
	RequestMinimize(minimized bool)
	RequestFullscreen(fullscreen bool)
	RequestActivate()
	RequestClose()
}

// Requests routes client-side foreign-toplevel requests to a view,
// dropping them entirely while the window switcher is cycling so a
// taskbar click cannot steal focus mid-cycle.
type Requests struct {
	Handler        ViewHandler
	SwitcherActive func() bool
}

func (r *Requests) blocked() bool {
	return r.SwitcherActive != nil && r.SwitcherActive()
}

func (r *Requests) Maximize(maximized bool) {
	if r.blocked() || r.Handler == nil {
		return
	}
	r.Handler.RequestMaximize(maximized)
}

func (r *Requests) Minimize(minimized bool) {
	if r.blocked() || r.Handler == nil {
		return
	}
	r.Handler.RequestMinimize(minimized)
}

func (r *Requests) Fullscreen(fullscreen bool) {
	if r.blocked() || r.Handler == nil {
		return
	}
	r.Handler.RequestFullscreen(fullscreen)
}

func (r *Requests) Activate() {
	if r.blocked() || r.Handler == nil {
		return
	}
	r.Handler.RequestActivate()
}

func (r *Requests) Close() {
	if r.blocked() || r.Handler == nil {
		return
	}
	r.Handler.RequestClose()
}
