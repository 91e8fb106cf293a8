// Package wm holds the small, shared window-state vocabulary (maximize
// axis, input modes, part tags, …) that both the view model and its
// consumers (ssd, edges, input, rules) need to agree on without importing
// one another — it is the leaf of that dependency graph.
package wm

// Maximized is the maximize axis a view currently occupies.
type Maximized int

const (
	MaximizeNone Maximized = iota
	MaximizeHorizontal
	MaximizeVertical
	MaximizeBoth
)

func (m Maximized) String() string {
	switch m {
	case MaximizeNone:
		return "none"
	case MaximizeHorizontal:
		return "horizontal"
	case MaximizeVertical:
		return "vertical"
	case MaximizeBoth:
		return "both"
	default:
		return "invalid"
	}
}

// Kind distinguishes the two view variants the core supports: xdg-shell
// clients adopt pending geometry only on acked commit, xwayland clients
// apply changes synchronously.
type Kind int

const (
	KindXDG Kind = iota
	KindXWayland
)

// Part is the closed set of SSD hit-test results.
type Part int

const (
	PartNone Part = iota
	PartTitlebar
	PartTitle
	PartButtonClose
	PartButtonIconify
	PartButtonMaximize
	PartButtonShade
	PartButtonOmnipresent
	PartButtonWindowMenu
	PartButtonWindowIcon
	PartTop
	PartLeft
	PartRight
	PartBottom
	PartCornerTL
	PartCornerTR
	PartCornerBL
	PartCornerBR
	PartClient
)

// InputMode is the input router's mutually-exclusive mode.
type InputMode int

const (
	ModePassthrough InputMode = iota
	ModeMove
	ModeResize
	ModeMenu
)

func (m InputMode) String() string {
	switch m {
	case ModePassthrough:
		return "passthrough"
	case ModeMove:
		return "move"
	case ModeResize:
		return "resize"
	case ModeMenu:
		return "menu"
	default:
		return "invalid"
	}
}

// Property is the closed set of window-rule-resolvable properties, kept
// as an enum so lookups never dispatch on strings.
type Property int

const (
	PropServerDecoration Property = iota
	PropSkipTaskbar
	PropSkipWindowSwitcher
	PropIgnoreFocusRequest
	PropIgnoreConfigureRequest
	PropFixedPosition
	PropWantAbsorbedModifierReleaseEvents
	PropIconPreferClient
)

// Tristate is a rule-resolved property value: unspecified, unset, false or
// true — mirroring enum property in window-rules.h exactly (LAB_PROP_*).
type Tristate int

const (
	Unspecified Tristate = iota
	Unset
	False
	True
)
