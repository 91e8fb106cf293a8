package ssd

// HoverTracker enforces exactly one button hovered at a time per seat,
// across every SSD instance a seat's cursor can move between.
type HoverTracker struct {
	current *Button
}

// Set marks b as hovered, clearing the previous hover if any. Passing nil
// clears the current hover with no replacement (cursor left all SSDs).
func (h *HoverTracker) Set(b *Button) {
	if h.current == b {
		return
	}
	if h.current != nil {
		h.current.SetHovered(false)
		if h.current.ssd != nil {
			h.current.ssd.RefreshTextures()
		}
	}
	h.current = b
	if b != nil {
		b.SetHovered(true)
		if b.ssd != nil {
			b.ssd.RefreshTextures()
		}
	}
}

func (h *HoverTracker) Current() *Button { return h.current }
