package input

// PopupPosition is the recomputed screen position the IME popup tracker
// reports back to a popup's owning node.
type PopupPosition struct {
	X, Y int
}

// IMEPopupTracker coalesces IME popup position recompute requests: a
// text-input commit or enable/disable transition marks a popup dirty,
// but the actual repositioning (projecting the cursor rect into screen
// space) only needs to run once per event-loop burst, not once per
// marking call, even when several text-input events fire back to back
// for the same popup.
type IMEPopupTracker struct {
	dirty map[string]struct{}
}

func NewIMEPopupTracker() *IMEPopupTracker {
	return &IMEPopupTracker{dirty: make(map[string]struct{})}
}

// MarkDirty records that popupID needs its position recomputed on the
// next Flush. Calling it more than once before a Flush is a no-op past
// the first call, the coalescing this type exists for.
func (t *IMEPopupTracker) MarkDirty(popupID string) {
	t.dirty[popupID] = struct{}{}
}

// Pending reports whether any popup is awaiting a flush.
func (t *IMEPopupTracker) Pending() bool {
	return len(t.dirty) > 0
}

// Flush drains the dirty set, calling reposition once per popup id that
// was marked since the last Flush, then clears it — the single
// "idle source fires, do the deferred work once" step.
func (t *IMEPopupTracker) Flush(reposition func(popupID string)) {
	for id := range t.dirty {
		reposition(id)
	}
	t.dirty = make(map[string]struct{})
}
