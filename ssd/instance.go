package ssd

import (
	"github.com/labwc/labwc-core/scene"
	"github.com/labwc/labwc-core/wm"
)

// SSD is the per-view decoration instance: its resolved state, the
// titlebar/border/shadow/extents node graph, button set and hover
// tracking. Rendering the nodes' pixels is the renderer's job; SSD owns
// the structure and its enable/disable state.
type SSD struct {
	View    View
	Theme   Theme
	State   State
	Buttons []*Button
	Hover   HoverTracker

	// Parts is the titlebar/border/shadow/extents node graph; Cache is
	// the last-applied input state Reconfigure diffs against to skip
	// node churn when nothing visible changed.
	Parts *Subtrees
	Cache StateCache

	// Textures holds the scaled pixel buffers behind the buttons and
	// title text; nil until AttachTextures binds the SSD to a theme's
	// shared buffer list.
	Textures *Textures

	active      bool
	initialized bool

	// Root is the decoration tree's scene node (a root tree node, plus
	// subtrees for titlebar/border/shadow/extents); each Button's own
	// Node attaches under it so a single Root.Destroy() cascades to
	// every button node and clears its descriptor — no dangling
	// descriptor ever survives its node.
	Root *scene.Node

	destroyed bool
}

// NewSSD builds the default titlebar button set for v under theme and
// resolves its initial state.
func NewSSD(v View, theme Theme) *SSD {
	root := scene.NewNode()
	root.SetDescriptor(scene.Descriptor{Type: scene.TypeTree, Data: v})

	s := &SSD{
		View:  v,
		Theme: theme,
		Root:  root,
		Parts: NewSubtrees(root),
		Buttons: []*Button{
			NewButton(ButtonWindowIcon, wm.PartButtonWindowIcon),
			NewButton(ButtonWindowMenu, wm.PartButtonWindowMenu),
			NewButton(ButtonIconify, wm.PartButtonIconify),
			NewButton(ButtonMaximize, wm.PartButtonMaximize),
			NewButton(ButtonClose, wm.PartButtonClose),
		},
	}
	for _, b := range s.Buttons {
		b.ssd = s
		b.Node.Attach(root, 0, 0)
	}
	s.Reconfigure()
	return s
}

// Reconfigure re-resolves the state machine and button toggle bits; call
// after any view state change that can affect SSD appearance (maximize,
// tile, shade, fullscreen, omnipresent). Skips node work when the
// state cache says nothing visible changed.
func (s *SSD) Reconfigure() {
	state := Resolve(s.View, s.Theme)
	if s.initialized && state == s.State && !s.Cache.Stale(s.View, state.Squared) {
		return
	}
	s.initialized = true
	s.State = state
	for _, b := range s.Buttons {
		b.SetToggled(ToggleFor(b.Kind, s.View))
		b.SetRounded(!s.State.Squared)
	}
	s.Parts.UpdateVisibility(s.State, s.active)
	s.Cache.Refresh(s.View, state.Squared)
	s.RefreshTextures()
}

// SetActive swaps between the active and inactive decoration variants;
// exactly one of each pair is enabled at a time.
func (s *SSD) SetActive(active bool) {
	if s.active == active {
		return
	}
	s.active = active
	s.Parts.UpdateVisibility(s.State, active)
	s.RefreshTextures()
}

// PartAt resolves the hit-test part under the cursor, delegating to the
// package-level PartAt with this instance's view/theme.
func (s *SSD) PartAt(x, y int, explicit wm.Part) wm.Part {
	return PartAt(s.View, s.Theme, x, y, explicit)
}

// Destroy releases the SSD instance, tearing down the scene node tree
// so every button node is destroyed exactly once and its descriptor
// cleared. Safe to call more than once.
func (s *SSD) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	s.Root.Destroy()
	if s.Textures != nil {
		s.Textures.destroy()
		s.Textures = nil
	}
	s.Buttons = nil
}

func (s *SSD) Destroyed() bool { return s.destroyed }
