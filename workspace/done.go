package workspace

// State is the per-workspace protocol-visible state both workspace
// protocols advertise between done events.
type State struct {
	Active      bool
	Urgent      bool
	Hidden      bool
	Name        string
	Coordinates []int
}

func (s State) equal(o State) bool {
	if s.Active != o.Active || s.Urgent != o.Urgent || s.Hidden != o.Hidden || s.Name != o.Name {
		return false
	}
	if len(s.Coordinates) != len(o.Coordinates) {
		return false
	}
	for i := range s.Coordinates {
		if s.Coordinates[i] != o.Coordinates[i] {
			return false
		}
	}
	return true
}

// DoneSink receives the flushed state updates for one bound manager
// resource: per-workspace state, then exactly one Done per flush.
type DoneSink interface {
	SendState(workspace string, state State)
	SendDone()
}

// DoneBatcher coalesces workspace state changes into a single done
// event per bound manager per event-loop iteration. Mutations mark a
// workspace's state_pending and schedule a flush; Flush (the idle
// source firing) pushes state_pending into state for every dirty
// workspace and sends one aggregated done to each bound sink.
type DoneBatcher struct {
	state     map[string]State
	pending   map[string]State
	dirty     []string
	scheduled bool
	sinks     []DoneSink
}

func NewDoneBatcher() *DoneBatcher {
	return &DoneBatcher{
		state:   make(map[string]State),
		pending: make(map[string]State),
	}
}

// Bind registers a manager resource's sink; subsequent flushes include
// it. Newly bound sinks receive the full current state immediately,
// ending with a done, so a late-binding panel sees a consistent world.
func (b *DoneBatcher) Bind(sink DoneSink) {
	b.sinks = append(b.sinks, sink)
	for name, st := range b.state {
		sink.SendState(name, st)
	}
	sink.SendDone()
}

// Unbind removes a sink (client disconnect).
func (b *DoneBatcher) Unbind(sink DoneSink) {
	for i, s := range b.sinks {
		if s == sink {
			b.sinks = append(b.sinks[:i], b.sinks[i+1:]...)
			return
		}
	}
}

// Update stages a new state for workspace. The change is not visible to
// clients until the next Flush; staging the same state twice, or a
// state equal to what clients already saw, schedules nothing.
func (b *DoneBatcher) Update(workspace string, state State) {
	if cur, ok := b.state[workspace]; ok && cur.equal(state) {
		if pend, pending := b.pending[workspace]; !pending || pend.equal(state) {
			delete(b.pending, workspace)
			return
		}
	}
	if _, already := b.pending[workspace]; !already {
		b.dirty = append(b.dirty, workspace)
	}
	b.pending[workspace] = state
	b.scheduled = true
}

// Remove drops a workspace from the batcher (workspace destroyed); any
// staged update for it is cancelled silently.
func (b *DoneBatcher) Remove(workspace string) {
	delete(b.state, workspace)
	delete(b.pending, workspace)
	for i, name := range b.dirty {
		if name == workspace {
			b.dirty = append(b.dirty[:i], b.dirty[i+1:]...)
			break
		}
	}
}

// Scheduled reports whether a flush is outstanding, i.e. the idle
// source is armed.
func (b *DoneBatcher) Scheduled() bool { return b.scheduled }

// Flush promotes every staged state and emits it to all bound sinks,
// each followed by exactly one done, regardless of how many workspaces
// changed. Dirty order is preserved (first-staged flushes first).
func (b *DoneBatcher) Flush() {
	if !b.scheduled {
		return
	}
	b.scheduled = false
	dirty := b.dirty
	b.dirty = nil
	flushed := 0
	for _, name := range dirty {
		st, ok := b.pending[name]
		if !ok {
			continue
		}
		delete(b.pending, name)
		b.state[name] = st
		flushed++
		for _, sink := range b.sinks {
			sink.SendState(name, st)
		}
	}
	if flushed == 0 {
		return
	}
	for _, sink := range b.sinks {
		sink.SendDone()
	}
}
