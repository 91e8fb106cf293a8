package buffer

// SharedList groups every ScaledBuffer that might be visually identical
// (e.g. all title-text buffers in the theme, or all close-button icons),
// so that a cache miss can first try to borrow a peer's buffer instead of
// rendering a fresh one.
type SharedList struct {
	members []*ScaledBuffer
}

// Register adds sb to the list it will search for a borrowable peer.
func (l *SharedList) Register(sb *ScaledBuffer) {
	sb.shared = l
	l.members = append(l.members, sb)
}

// Unregister removes sb, called from ScaledBuffer.Destroy.
func (l *SharedList) Unregister(sb *ScaledBuffer) {
	for i, m := range l.members {
		if m == sb {
			l.members = append(l.members[:i], l.members[i+1:]...)
			return
		}
	}
}

// ScaledBuffer is a drawable primitive bound to a scene-graph buffer node of
// fixed logical size: it renders (or borrows) a Handle for whatever output
// scale the node currently needs.
type ScaledBuffer struct {
	impl        Impl
	cache       Cache
	shared      *SharedList
	activeScale float64
	current     Handle
}

// NewScaledBuffer constructs a ScaledBuffer around impl. dropBuffer is
// stored as the cache's DropBuffer flag; eviction handles both settings
// the same way (see Cache.DropBuffer).
func NewScaledBuffer(impl Impl, dropBuffer bool) *ScaledBuffer {
	sb := &ScaledBuffer{impl: impl}
	sb.cache.DropBuffer = dropBuffer
	return sb
}

// EnterScale is called when the node's buffer enters an output rendering at
// the given scale. It returns the handle to paint, rendering or borrowing
// one on a cache miss. activeScale starts at 0, so the very first call
// always misses; the first output-enter triggers a render.
func (sb *ScaledBuffer) EnterScale(scale float64) (Handle, error) {
	if sb.activeScale == scale && sb.current != nil {
		return sb.current, nil
	}
	if h, ok := sb.cache.Lookup(scale); ok {
		sb.activeScale = scale
		sb.current = h
		return h, nil
	}
	if sb.shared != nil {
		for _, peer := range sb.shared.members {
			if peer == sb || peer.impl == nil {
				continue
			}
			if !sb.impl.Equal(peer.impl) {
				continue
			}
			if h, ok := peer.cache.Lookup(scale); ok {
				sb.cache.Insert(scale, h)
				sb.activeScale = scale
				sb.current = h
				return h, nil
			}
		}
	}
	h, err := sb.impl.CreateBuffer(scale)
	if err != nil {
		// A failed render is not fatal: the
		// caller gets a zero node and the view renders with client
		// content only.
		return nil, err
	}
	sb.cache.Insert(scale, h)
	sb.activeScale = scale
	sb.current = h
	return h, nil
}

// Invalidate drops every cached entry. If visible (activeScale != 0) an
// immediate re-render at the current scale is forced.
func (sb *ScaledBuffer) Invalidate() error {
	scale := sb.activeScale
	sb.cache.Invalidate()
	sb.current = nil
	sb.activeScale = 0
	if scale == 0 {
		return nil
	}
	_, err := sb.EnterScale(scale)
	return err
}

// Destroy tears down the ScaledBuffer: scene-buffer destroy (handled by the
// caller before this runs) -> cache entries unlocked/dropped -> per-impl
// destroy -> record freed, in that order.
func (sb *ScaledBuffer) Destroy() {
	sb.cache.Invalidate()
	if sb.shared != nil {
		sb.shared.Unregister(sb)
	}
	if sb.impl != nil {
		sb.impl.Destroy()
	}
	sb.impl = nil
	sb.current = nil
}

// ActiveScale returns the scale of the currently displayed buffer, or 0 if
// none has been rendered yet.
func (sb *ScaledBuffer) ActiveScale() float64 { return sb.activeScale }
