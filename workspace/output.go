package workspace

// TearingPolicy is the per-output tearing-presentation mode, driven by
// the <tearing> config knob.
type TearingPolicy int

const (
	TearingDisabled TearingPolicy = iota
	TearingEnabled
	TearingFullscreenOnly
	TearingAlways
)

// ViewTearingHint is the per-view input ShouldTear needs: its explicit
// wp_tearing_control hint and whether it's fullscreen.
type ViewTearingHint struct {
	Hint       bool
	Fullscreen bool
}

// ShouldTear decides whether an output should enable tearing
// presentation: DISABLED and ALWAYS are unconditional; ENABLED tears
// when any view on the output opts in via its tearing hint;
// FULLSCREEN_ONLY additionally requires that opting-in view to be
// fullscreen.
func ShouldTear(policy TearingPolicy, views []ViewTearingHint) bool {
	switch policy {
	case TearingDisabled:
		return false
	case TearingAlways:
		return true
	}
	for _, v := range views {
		if !v.Hint {
			continue
		}
		if policy == TearingEnabled || v.Fullscreen {
			return true
		}
	}
	return false
}

// OutputTracker records which views currently overlap each output, by
// output name and view ID; a destroyed output's entry is dropped.
type OutputTracker struct {
	byOutput map[string]map[string]struct{}
}

func NewOutputTracker() *OutputTracker {
	return &OutputTracker{byOutput: make(map[string]map[string]struct{})}
}

// Enter records that viewID now overlaps output.
func (t *OutputTracker) Enter(output, viewID string) {
	set, ok := t.byOutput[output]
	if !ok {
		set = make(map[string]struct{})
		t.byOutput[output] = set
	}
	set[viewID] = struct{}{}
}

// Leave records that viewID no longer overlaps output.
func (t *OutputTracker) Leave(output, viewID string) {
	if set, ok := t.byOutput[output]; ok {
		delete(set, viewID)
	}
}

// ViewsOn returns the set of views currently tracked as overlapping
// output, for building ViewTearingHint slices or similar per-output
// queries.
func (t *OutputTracker) ViewsOn(output string) []string {
	set := t.byOutput[output]
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}

// Destroyed migrates every view tracked on output away from it (the
// caller is responsible for reassigning those views to a surviving
// output; this only clears the stale tracking entry).
func (t *OutputTracker) Destroyed(output string) {
	delete(t.byOutput, output)
}

// OutputSender is the three-function vtable an object registers with
// the resource tracker: how to tell its client about output
// enter/leave, and how to flush a coalesced done.
type OutputSender interface {
	SendOutputEnter(output string)
	SendOutputLeave(output string)
	SendDone()
}

// ResourceOutputTracker associates protocol objects with the outputs
// they currently occupy, delivering enter on first association, leave
// on removal or output destruction, and one coalesced done per
// affected object per Flush.
type ResourceOutputTracker struct {
	entries map[OutputSender]map[string]struct{}
	touched map[OutputSender]struct{}
}

func NewResourceOutputTracker() *ResourceOutputTracker {
	return &ResourceOutputTracker{
		entries: make(map[OutputSender]map[string]struct{}),
		touched: make(map[OutputSender]struct{}),
	}
}

// Associate records that sender's object now occupies output, sending
// enter exactly once per (object, output) pair.
func (t *ResourceOutputTracker) Associate(sender OutputSender, output string) {
	set, ok := t.entries[sender]
	if !ok {
		set = make(map[string]struct{})
		t.entries[sender] = set
	}
	if _, present := set[output]; present {
		return
	}
	set[output] = struct{}{}
	sender.SendOutputEnter(output)
	t.touched[sender] = struct{}{}
}

// Dissociate removes one (object, output) pair, sending leave if it was
// present.
func (t *ResourceOutputTracker) Dissociate(sender OutputSender, output string) {
	set, ok := t.entries[sender]
	if !ok {
		return
	}
	if _, present := set[output]; !present {
		return
	}
	delete(set, output)
	sender.SendOutputLeave(output)
	t.touched[sender] = struct{}{}
}

// OutputDestroyed sends leave to every object still on output and drops
// the pairs.
func (t *ResourceOutputTracker) OutputDestroyed(output string) {
	for sender, set := range t.entries {
		if _, present := set[output]; present {
			delete(set, output)
			sender.SendOutputLeave(output)
			t.touched[sender] = struct{}{}
		}
	}
}

// ObjectDestroyed drops every pair for sender without emitting leave
// (the object's resource is gone; nothing to send to).
func (t *ResourceOutputTracker) ObjectDestroyed(sender OutputSender) {
	delete(t.entries, sender)
	delete(t.touched, sender)
}

// Flush sends one done to each object touched since the last flush.
func (t *ResourceOutputTracker) Flush() {
	for sender := range t.touched {
		sender.SendDone()
	}
	t.touched = make(map[OutputSender]struct{})
}
