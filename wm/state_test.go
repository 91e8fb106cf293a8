package wm

import "testing"

func TestMaximizedString(t *testing.T) {
	cases := map[Maximized]string{
		MaximizeNone:       "none",
		MaximizeHorizontal: "horizontal",
		MaximizeVertical:   "vertical",
		MaximizeBoth:       "both",
		Maximized(99):      "invalid",
	}
	for m, want := range cases {
		if got := m.String(); got != want {
			t.Errorf("Maximized(%d).String() = %q, want %q", m, got, want)
		}
	}
}

func TestInputModeString(t *testing.T) {
	cases := map[InputMode]string{
		ModePassthrough: "passthrough",
		ModeMove:        "move",
		ModeResize:      "resize",
		ModeMenu:        "menu",
		InputMode(99):   "invalid",
	}
	for m, want := range cases {
		if got := m.String(); got != want {
			t.Errorf("InputMode(%d).String() = %q, want %q", m, got, want)
		}
	}
}

func TestPropertyValuesAreDistinct(t *testing.T) {
	props := []Property{
		PropServerDecoration,
		PropSkipTaskbar,
		PropSkipWindowSwitcher,
		PropIgnoreFocusRequest,
		PropIgnoreConfigureRequest,
		PropFixedPosition,
		PropWantAbsorbedModifierReleaseEvents,
		PropIconPreferClient,
	}
	seen := make(map[Property]bool)
	for _, p := range props {
		if seen[p] {
			t.Fatalf("duplicate Property value %d", p)
		}
		seen[p] = true
	}
}

func TestTristateOrdering(t *testing.T) {
	// Rule resolution treats Unspecified as "no rule matched yet" and
	// must sort before the three concrete outcomes.
	if !(Unspecified < Unset && Unset < False && False < True) {
		t.Fatalf("expected Unspecified < Unset < False < True, got %d %d %d %d",
			Unspecified, Unset, False, True)
	}
}

func TestKindValuesAreDistinct(t *testing.T) {
	if KindXDG == KindXWayland {
		t.Fatal("expected KindXDG and KindXWayland to be distinct")
	}
}

func TestPartValuesAreDistinct(t *testing.T) {
	parts := []Part{
		PartNone, PartTitlebar, PartTitle, PartButtonClose, PartButtonIconify,
		PartButtonMaximize, PartButtonShade, PartButtonOmnipresent,
		PartButtonWindowMenu, PartButtonWindowIcon, PartTop, PartLeft,
		PartRight, PartBottom, PartCornerTL, PartCornerTR, PartCornerBL,
		PartCornerBR, PartClient,
	}
	seen := make(map[Part]bool)
	for _, p := range parts {
		if seen[p] {
			t.Fatalf("duplicate Part value %d", p)
		}
		seen[p] = true
	}
}
