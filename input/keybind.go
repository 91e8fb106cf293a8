// Package input implements the input router and seat: keybind chord
// matching with longest-prefix semantics, modifier-token parsing,
// per-binding key-repeat, and the IME keyboard-grab forwarding decision.
package input

import (
	"sort"
	"strings"
)

// Modifier is a bitset of the modifier keys a binding can require, over
// the six-modifier vocabulary the keybind config format names.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt  // A / Mod1
	ModLogo // W / Mod4
	ModMod5 // M / Mod5
	ModMod3 // H / Mod3
)

var modifierTokens = map[string]Modifier{
	"S": ModShift,
	"C": ModCtrl,
	"A": ModAlt, "Mod1": ModAlt,
	"W": ModLogo, "Mod4": ModLogo,
	"M": ModMod5, "Mod5": ModMod5,
	"H": ModMod3, "Mod3": ModMod3,
}

// Binding is one configured keybind: a chord of modifier+keysym tokens,
// e.g. "A-Tab" or "W-S-Return".
type Binding struct {
	Chord  []string // parsed tokens, modifiers normalized, key last
	Action string
}

// ParseChord splits a binding string like "A-Tab" on '-' into its token
// sequence, normalizing known modifier aliases (Mod1..Mod5) to their
// single-letter form so two spellings of the same chord compare equal.
func ParseChord(spec string) []string {
	parts := strings.Split(spec, "-")
	out := make([]string, len(parts))
	for i, p := range parts {
		if _, ok := modifierTokens[p]; ok {
			out[i] = normalizeModifierToken(p)
		} else {
			out[i] = p
		}
	}
	return out
}

func normalizeModifierToken(tok string) string {
	switch tok {
	case "Mod1":
		return "A"
	case "Mod4":
		return "W"
	case "Mod5":
		return "M"
	case "Mod3":
		return "H"
	default:
		return tok
	}
}

// IsModifierOnly reports whether every token in chord is a modifier name,
// i.e. the binding has no terminal keysym; such bindings fire on release
// instead of press.
func IsModifierOnly(chord []string) bool {
	for _, tok := range chord {
		if _, ok := modifierTokens[tok]; !ok {
			return false
		}
	}
	return len(chord) > 0
}

// Matcher resolves an accumulating chord against a configured binding set
// with longest-prefix semantics: as keys accumulate, Match returns the
// configured binding whose chord equals the keys so far (nil if none)
// together with isPrefix=true when a longer binding could still match, so
// the caller knows whether to keep accumulating.
type Matcher struct {
	bindings []Binding
}

func NewMatcher(bindings []Binding) *Matcher {
	m := &Matcher{bindings: append([]Binding(nil), bindings...)}
	sort.SliceStable(m.bindings, func(i, j int) bool {
		return len(m.bindings[i].Chord) > len(m.bindings[j].Chord)
	})
	return m
}

// Match compares the accumulated chord against every binding. best is the
// longest exact match (nil if none); isPrefix reports whether some longer
// binding still has chord as a strict prefix, meaning the caller should
// keep waiting for more keys rather than giving up immediately.
func (m *Matcher) Match(chord []string) (best *Binding, isPrefix bool) {
	for i := range m.bindings {
		b := &m.bindings[i]
		if chordEqual(b.Chord, chord) {
			if best == nil || len(b.Chord) > len(best.Chord) {
				best = b
			}
			continue
		}
		if len(b.Chord) > len(chord) && chordHasPrefix(b.Chord, chord) {
			isPrefix = true
		}
	}
	return best, isPrefix
}

func chordEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func chordHasPrefix(chord, prefix []string) bool {
	if len(prefix) > len(chord) {
		return false
	}
	for i := range prefix {
		if chord[i] != prefix[i] {
			return false
		}
	}
	return true
}
