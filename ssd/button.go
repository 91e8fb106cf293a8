package ssd

import (
	"github.com/labwc/labwc-core/scene"
	"github.com/labwc/labwc-core/wm"
)

// ButtonKind enumerates the fixed titlebar button roles.
type ButtonKind int

const (
	ButtonWindowIcon ButtonKind = iota
	ButtonWindowMenu
	ButtonIconify
	ButtonMaximize
	ButtonClose
	ButtonShade
	ButtonOmnipresent
)

// StateFlag is a bit in a Button's state set; the icon variant rendered is
// the highest-priority flag currently set.
type StateFlag uint8

const (
	StateNone     StateFlag = 0
	StateHovered  StateFlag = 1 << iota
	StateToggled
	StateRounded
)

// Button is one titlebar button: its hover/toggle/rounded bits and which
// half (left/right group) it belongs to.
type Button struct {
	Kind  ButtonKind
	Part  wm.Part
	state StateFlag

	// ssd is the owning decoration instance (non-owning back-reference),
	// so a hover flip can refresh just that instance's textures.
	ssd *SSD

	// Node is the scene-graph node this button's icon buffer attaches
	// to, tagged TypeSSDButton with Data pointing back at the Button;
	// cleared automatically when Node.Destroy runs.
	Node *scene.Node
}

// NewButton creates a button and its backing scene node, pre-tagged
// with the closed-set TypeSSDButton descriptor.
func NewButton(kind ButtonKind, part wm.Part) *Button {
	b := &Button{Kind: kind, Part: part, Node: scene.NewNode()}
	b.Node.SetDescriptor(scene.Descriptor{Type: scene.TypeSSDButton, Data: b})
	return b
}

// SetHovered flips the hover bit, the only state a pointer-move can change;
// exactly one button is hovered at a time per seat.
func (b *Button) SetHovered(hovered bool) {
	if hovered {
		b.state |= StateHovered
	} else {
		b.state &^= StateHovered
	}
}

func (b *Button) Hovered() bool { return b.state&StateHovered != 0 }

// SetToggled flips the toggled bit: the main button icon swaps to its
// toggled variant when the corresponding view state is active, e.g. the
// maximize button shows a restore icon once maximized.
func (b *Button) SetToggled(toggled bool) {
	if toggled {
		b.state |= StateToggled
	} else {
		b.state &^= StateToggled
	}
}

func (b *Button) Toggled() bool { return b.state&StateToggled != 0 }

// SetRounded controls whether an outer-corner button renders its rounded
// variant; Resolve's Squared result clears this on every button at the
// titlebar ends.
func (b *Button) SetRounded(rounded bool) {
	if rounded {
		b.state |= StateRounded
	} else {
		b.state &^= StateRounded
	}
}

func (b *Button) Rounded() bool { return b.state&StateRounded != 0 }

// ToggleFor reports whether kind's toggled variant should show for v: each
// button kind maps to one view boolean (maximize <-> restore, shade <->
// unshade, pin <-> unpin).
func ToggleFor(kind ButtonKind, v View) bool {
	switch kind {
	case ButtonMaximize:
		return v.Maximized() == wm.MaximizeBoth
	case ButtonShade:
		return v.Shaded()
	case ButtonOmnipresent:
		return v.Omnipresent()
	default:
		return false
	}
}
