package input

import "unicode/utf8"

// legacyKeysyms is the subset of the XKB legacy name table the keybind
// parser consults before the Unicode fallback: the named non-printable
// keys a binding can reasonably refer to. Printable single characters
// never need an entry; KeysymFromName takes their codepoint directly.
var legacyKeysyms = map[string]uint32{
	"Return":    0xff0d,
	"Escape":    0xff1b,
	"Tab":       0xff09,
	"BackSpace": 0xff08,
	"Delete":    0xffff,
	"Home":      0xff50,
	"End":       0xff57,
	"Left":      0xff51,
	"Up":        0xff52,
	"Right":     0xff53,
	"Down":      0xff54,
	"Prior":     0xff55,
	"Next":      0xff56,
	"Insert":    0xff63,
	"space":     0x0020,
	"F1":        0xffbe, "F2": 0xffbf, "F3": 0xffc0, "F4": 0xffc1,
	"F5": 0xffc2, "F6": 0xffc3, "F7": 0xffc4, "F8": 0xffc5,
	"F9": 0xffc6, "F10": 0xffc7, "F11": 0xffc8, "F12": 0xffc9,
}

// KeysymFromName resolves a key token from a binding spec to a keysym
// value: the legacy table first, then — for a single-character token
// the table does not know — the character's Unicode codepoint, per the
// xkb_keysym_from_name fallback the config format documents. Unknown
// multi-character names resolve to 0 (the config-error path: logged
// and ignored by the caller).
func KeysymFromName(name string) uint32 {
	if sym, ok := legacyKeysyms[name]; ok {
		return sym
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return uint32(r)
	}
	return 0
}

// ChordTracker accumulates pressed chord tokens and resolves them
// against a Matcher with longest-prefix semantics: each Press either
// fires a binding, keeps waiting (some longer binding still has the
// accumulated chord as a prefix), or resets after a dead end.
type ChordTracker struct {
	matcher *Matcher
	chord   []string
}

func NewChordTracker(m *Matcher) *ChordTracker {
	return &ChordTracker{matcher: m}
}

// Press appends token to the accumulating chord. fired is the binding
// that matched, if any; waiting reports that the tracker kept the
// chord because a longer binding could still complete. When neither, a
// dead end was reached and the chord resets so the key falls through
// to the client.
func (c *ChordTracker) Press(token string) (fired *Binding, waiting bool) {
	c.chord = append(c.chord, token)
	best, isPrefix := c.matcher.Match(c.chord)
	if isPrefix {
		// A longer binding can still match; hold even if a shorter
		// one already does — longest-prefix semantics.
		return nil, true
	}
	c.chord = nil
	return best, false
}

// Reset abandons the accumulated chord (focus change, ESC, timeout).
func (c *ChordTracker) Reset() {
	c.chord = nil
}

// Depth reports how many tokens are currently accumulated, for tests.
func (c *ChordTracker) Depth() int { return len(c.chord) }
