package rules

import (
	"testing"

	"github.com/labwc/labwc-core/wm"
)

type fakeView struct {
	id    string
	query Query
}

func (f *fakeView) Query() Query { return f.query }

func TestGetPropertyLaterRuleOverridesEarlier(t *testing.T) {
	// A wildcard rule sets serverDecoration=no, a later specific rule
	// for "foot" restores the default; the later rule wins.
	s := &Set{Rules: []Rule{
		{
			IdentifierGlob: "*",
			WindowType:     -1,
			Properties:     map[wm.Property]wm.Tristate{wm.PropServerDecoration: wm.False},
		},
		{
			IdentifierGlob: "foot",
			WindowType:     -1,
			Properties:     map[wm.Property]wm.Tristate{wm.PropServerDecoration: wm.True},
		},
	}}

	foot := &fakeView{id: "foot", query: Query{Identifier: "foot", WindowType: 0}}
	other := &fakeView{id: "other", query: Query{Identifier: "xterm", WindowType: 0}}
	views := []View{foot, other}

	if got := s.GetProperty(foot, views, wm.PropServerDecoration); got != wm.True {
		t.Fatalf("expected foot's serverDecoration to be overridden to True, got %v", got)
	}
	if got := s.GetProperty(other, views, wm.PropServerDecoration); got != wm.False {
		t.Fatalf("expected xterm to fall through to the wildcard rule (False), got %v", got)
	}
}

func TestGetPropertyUnmatchedReturnsUnspecified(t *testing.T) {
	s := &Set{Rules: []Rule{
		{IdentifierGlob: "foot", WindowType: -1, Properties: map[wm.Property]wm.Tristate{wm.PropSkipTaskbar: wm.True}},
	}}
	v := &fakeView{query: Query{Identifier: "xterm"}}
	if got := s.GetProperty(v, []View{v}, wm.PropSkipTaskbar); got != wm.Unspecified {
		t.Fatalf("expected Unspecified for non-matching view, got %v", got)
	}
}

func TestMatchOnceSkipsWhenAnotherInstanceMatches(t *testing.T) {
	s := &Set{Rules: []Rule{
		{
			IdentifierGlob: "firefox",
			WindowType:     -1,
			MatchOnce:      true,
			Event:          EventOnFirstMap,
			Actions:        []Action{{Name: "Maximize"}},
		},
	}}

	first := &fakeView{id: "a", query: Query{Identifier: "firefox"}}
	second := &fakeView{id: "b", query: Query{Identifier: "firefox"}}

	// Only "first" is known when it maps: the rule fires.
	if actions := s.Apply(first, []View{first}, EventOnFirstMap); len(actions) != 1 {
		t.Fatalf("expected rule to fire for the first firefox instance, got %d actions", len(actions))
	}

	// Now a second instance exists: match_once means the rule must not
	// fire again for a *new* view while another instance is present.
	if actions := s.Apply(second, []View{first, second}, EventOnFirstMap); len(actions) != 0 {
		t.Fatalf("expected match_once to suppress the rule with another instance present, got %d actions", len(actions))
	}
}

func TestTitleGlobMatch(t *testing.T) {
	s := &Set{Rules: []Rule{
		{IdentifierGlob: "*", TitleGlob: "*Private Browsing*", WindowType: -1,
			Properties: map[wm.Property]wm.Tristate{wm.PropSkipTaskbar: wm.True}},
	}}
	v := &fakeView{query: Query{Identifier: "firefox", Title: "Mozilla Firefox Private Browsing"}}
	if got := s.GetProperty(v, []View{v}, wm.PropSkipTaskbar); got != wm.True {
		t.Fatalf("expected title glob to match, got %v", got)
	}
}
