package safety

import (
	"strings"
	"testing"
)

func TestNormalizeKeyToken(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"enter", "Return"},
		{"Enter", "Return"},
		{"esc", "Escape"},
		{"pgup", "Page_Up"},
		{"pgdn", "Page_Down"},
		{"backspace", "BackSpace"},
		{"tab", "Tab"},
		{"TAB", "Tab"},
		{"page_up", "Page_Up"},
		{"f5", "F5"},
		{"a", "a"},
		{"7", "7"},
		{"zorp", "zorp"},
		{" ", ""},
	}
	for _, tc := range cases {
		if got := normalizeKeyToken(tc.in); got != tc.want {
			t.Errorf("normalizeKeyToken(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsModifier(t *testing.T) {
	for _, tok := range []string{"ctrl", "Control", "alt", "shift", "super", "win", "meta", "cmd", "Command"} {
		if !isModifier(tok) {
			t.Errorf("isModifier(%q) = false, want true", tok)
		}
	}
	for _, tok := range []string{"c", "Return", "hyper", ""} {
		if isModifier(tok) {
			t.Errorf("isModifier(%q) = true, want false", tok)
		}
	}
}

func TestIsKnownKey(t *testing.T) {
	for _, tok := range []string{"Return", "enter", "F12", "a", "A", "7", "/", "space", "Page_Down"} {
		if !isKnownKey(tok) {
			t.Errorf("isKnownKey(%q) = false, want true", tok)
		}
	}
	for _, tok := range []string{"retur", "Fn", "launch", ""} {
		if isKnownKey(tok) {
			t.Errorf("isKnownKey(%q) = true, want false", tok)
		}
	}
}

func TestSuggestKeys(t *testing.T) {
	got := suggestKeys("retur", 3)
	found := false
	for _, s := range got {
		if s == "Return" {
			found = true
		}
	}
	if !found {
		t.Fatalf("suggestKeys(\"retur\") = %v, want it to include Return", got)
	}
	if len(got) > 3 {
		t.Fatalf("suggestKeys returned %d suggestions, max 3", len(got))
	}
	if got := suggestKeys("qqqqqqqq", 3); len(got) != 0 {
		t.Fatalf("suggestKeys(\"qqqqqqqq\") = %v, want none", got)
	}
}

func TestValidateKeyCombos(t *testing.T) {
	a := newTestActionValidator()
	cases := []struct {
		combo string
		safe  bool
	}{
		{"ctrl+c", true},
		{"shift+Tab", true},
		{"ctrl+shift+t", true},
		{"enter", true},
		{"F5", true},
		{"alt+f4", false},
		{"Alt+F4", false},
		{"ctrl+alt+delete", false},
		{"ctrl+shift+esc", false},
		{"cmd+q", false},
		{"alt+tab", false},
		{"ctrl+", false},
		{"ctrl+ ", false},
		{"ctrl+zorp", false},
	}
	for _, tc := range cases {
		verdict, err := a.ValidateAction("key", map[string]any{"combo": tc.combo})
		if err != nil {
			t.Fatalf("ValidateAction(key, %q) error: %v", tc.combo, err)
		}
		if verdict.Safe != tc.safe {
			t.Errorf("combo %q: Safe = %v, want %v (reason: %s)", tc.combo, verdict.Safe, tc.safe, verdict.Reason)
		}
	}
}

func TestValidateKeySuggestionInReason(t *testing.T) {
	a := newTestActionValidator()
	verdict, err := a.ValidateAction("key", map[string]any{"combo": "ctrl+retur"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verdict.Safe {
		t.Fatal("expected unknown key to be unsafe")
	}
	if !strings.Contains(verdict.Reason, "Return") {
		t.Fatalf("Reason = %q, want a Return suggestion", verdict.Reason)
	}
}
