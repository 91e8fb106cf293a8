// Package rules implements window rules: glob matching a view's
// identifier/title/window-type/sandbox tags against a configured rule
// list, reverse-priority property resolution, and first-map action
// firing. Property lookups are keyed by the closed enum wm.Property/
// wm.Tristate rather than a property-name string, keeping the dispatch
// set closed and switch-exhaustive.
package rules

import (
	"path/filepath"
	"strings"

	"github.com/labwc/labwc-core/wm"
)

// Event is the closed set of moments a rule can fire on. Only
// on-first-map exists today; kept as an enum of one for symmetry with
// wm's other closed sets.
type Event int

const (
	EventOnFirstMap Event = iota
)

// Query is the subset of a view's identity a rule matches against.
type Query struct {
	Identifier   string // app_id (xdg) or WM_CLASS (xwayland)
	Title        string
	WindowType   int
	SandboxEngine string
	SandboxAppID  string
}

// View is the consumer-declared interface rules needs from a view,
// broken out rather than importing the view package directly to avoid
// a rules <-> view import cycle (the same seam used between view and
// ssd, and between view and edges/interactive).
type View interface {
	Query() Query
}

// Rule is one configured <windowRule>: glob patterns for
// Identifier/Title (case-insensitive, glob-or-exact semantics) and an
// enum-keyed property set rather than a property-name string argument.
type Rule struct {
	IdentifierGlob string
	TitleGlob      string
	WindowType     int // -1 means "any"
	SandboxEngine  string
	SandboxAppID   string
	MatchOnce      bool

	Event   Event
	Actions []Action

	Properties map[wm.Property]wm.Tristate
}

// Action is a fired-on-event side effect; the concrete action
// vocabulary (menu actions, exec, etc.) is an external collaborator's
// job, so Action is left as an opaque named command plus argument
// string for the caller (server) to interpret.
type Action struct {
	Name string
	Arg  string
}

// globMatch reports whether pattern matches s, case-insensitively, using
// shell-glob semantics (filepath.Match) with an empty pattern always
// matching — an unset field matches everything.
func globMatch(pattern, s string) bool {
	if pattern == "" {
		return true
	}
	ok, err := filepath.Match(strings.ToLower(pattern), strings.ToLower(s))
	return err == nil && ok
}

func matchesQuery(r *Rule, q Query) bool {
	if !globMatch(r.IdentifierGlob, q.Identifier) {
		return false
	}
	if !globMatch(r.TitleGlob, q.Title) {
		return false
	}
	if r.WindowType >= 0 && r.WindowType != q.WindowType {
		return false
	}
	if r.SandboxEngine != "" && r.SandboxEngine != q.SandboxEngine {
		return false
	}
	if r.SandboxAppID != "" && r.SandboxAppID != q.SandboxAppID {
		return false
	}
	return true
}

// Set is the configured, ordered rule list (rc.window_rules), later
// entries having higher property-resolution priority.
type Set struct {
	Rules []Rule
}

// otherInstancesExist reports whether some view other than self in views
// also matches the same query.
func otherInstancesExist(self View, views []View, q Query) bool {
	for _, v := range views {
		if v == self {
			continue
		}
		if matchesQuery(&Rule{
			IdentifierGlob: q.Identifier,
			TitleGlob:      q.Title,
			WindowType:     q.WindowType,
			SandboxEngine:  q.SandboxEngine,
			SandboxAppID:   q.SandboxAppID,
		}, v.Query()) {
			return true
		}
	}
	return false
}

// matchesCriteria matches the rule's own query fields against the view,
// with the match-once "skip if any other view already matches this
// rule's query" guard.
func matchesCriteria(r *Rule, self View, views []View) bool {
	q := Query{
		Identifier:    r.IdentifierGlob,
		Title:         r.TitleGlob,
		WindowType:    r.WindowType,
		SandboxEngine: r.SandboxEngine,
		SandboxAppID:  r.SandboxAppID,
	}
	if r.MatchOnce && otherInstancesExist(self, views, q) {
		return false
	}
	return matchesQuery(r, self.Query())
}

// Apply returns every action from every rule in s whose event matches
// event and whose criteria match self, in configured (forward) order.
// The caller (server) is responsible for actually running the actions.
func (s *Set) Apply(self View, views []View, event Event) []Action {
	var actions []Action
	for i := range s.Rules {
		r := &s.Rules[i]
		if r.Event != event {
			continue
		}
		if matchesCriteria(r, self, views) {
			actions = append(actions, r.Actions...)
		}
	}
	return actions
}

// GetProperty resolves prop for self by walking s.Rules in reverse
// (later-defined rules take priority: a wildcard rule sets a default, a
// later specific rule overrides it for the views it matches) and
// returning the first non-Unspecified value, or Unspecified if no
// matching rule sets it.
func (s *Set) GetProperty(self View, views []View, prop wm.Property) wm.Tristate {
	for i := len(s.Rules) - 1; i >= 0; i-- {
		r := &s.Rules[i]
		if !matchesCriteria(r, self, views) {
			continue
		}
		if v, ok := r.Properties[prop]; ok && v != wm.Unspecified {
			return v
		}
	}
	return wm.Unspecified
}
