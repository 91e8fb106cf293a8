// Package workspace implements the workspace container:
// named view membership, per-output enter/leave tracking, the tearing-
// control policy, and a dual-protocol (wlr + ext) foreign-toplevel
// fanout that keeps both handle families in lockstep inside one
// dispatch.
package workspace

// Workspace is a named grouping of views, the authoritative owner of
// membership that view.View's plain Workspace string field defers to.
type Workspace struct {
	Name    string
	members map[string]struct{}
}

func New(name string) *Workspace {
	return &Workspace{Name: name, members: make(map[string]struct{})}
}

func (w *Workspace) Add(viewID string) {
	w.members[viewID] = struct{}{}
}

func (w *Workspace) Remove(viewID string) {
	delete(w.members, viewID)
}

func (w *Workspace) Has(viewID string) bool {
	_, ok := w.members[viewID]
	return ok
}

func (w *Workspace) Len() int { return len(w.members) }

// Manager owns the ordered list of workspaces and the currently active
// one, plus the signal fanout a commit ("activate A; deactivate B;
// commit") must fire in request order.
type Manager struct {
	order  []*Workspace
	byName map[string]*Workspace
	active string

	pending []TransactionEvent
}

func NewManager() *Manager {
	return &Manager{byName: make(map[string]*Workspace)}
}

// Create adds a new workspace; the first one created becomes active.
func (m *Manager) Create(name string) *Workspace {
	ws := New(name)
	m.order = append(m.order, ws)
	m.byName[name] = ws
	if m.active == "" {
		m.active = name
	}
	return ws
}

func (m *Manager) Get(name string) (*Workspace, bool) {
	ws, ok := m.byName[name]
	return ws, ok
}

func (m *Manager) Active() string { return m.active }

// QueueActivate and QueueDeactivate stage a workspace transaction's
// constituent requests without firing any signal yet; signals fire in
// request order only once the terminal Commit arrives.
func (m *Manager) QueueActivate(name string) {
	m.pending = append(m.pending, TransactionEvent{Workspace: name, Kind: OpActivate, Activated: true})
}

func (m *Manager) QueueDeactivate(name string) {
	m.pending = append(m.pending, TransactionEvent{Workspace: name, Kind: OpDeactivate})
}

// remove deletes the named workspace, refusing to remove the last one
// (a compositor always has at least one workspace to park views on).
func (m *Manager) remove(name string) bool {
	ws, ok := m.byName[name]
	if !ok || len(m.order) <= 1 {
		return false
	}
	delete(m.byName, name)
	for i, w := range m.order {
		if w == ws {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	if m.active == name {
		m.active = m.order[0].Name
	}
	return true
}

// TransactionEvent is one signal fired during Commit, in the exact
// order the corresponding Queue* call was made.
type TransactionEvent struct {
	Workspace string
	Kind      OpKind
	Activated bool
	Group     string
}

// Commit replays every queued activate/deactivate request in the exact
// order the caller issued them, updating m.active as it goes, and
// returns the ordered event list. No "done" marker is returned:
// wlr_ext_workspace's one-done-per-bound-manager rule is left to the
// caller, which emits Done() to every bound manager once after this
// return; this package does not track bound managers itself.
func (m *Manager) Commit() []TransactionEvent {
	events := m.pending
	for _, ev := range events {
		if ev.Activated {
			m.active = ev.Workspace
		}
	}
	m.pending = nil
	return events
}
