package safety

import (
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// keyAliases normalizes common spellings to the canonical key names used by
// platform input providers.
var keyAliases = map[string]string{
	"enter":     "Return",
	"return":    "Return",
	"esc":       "Escape",
	"escape":    "Escape",
	"backspace": "BackSpace",
	"del":       "Delete",
	"delete":    "Delete",
	"ins":       "Insert",
	"insert":    "Insert",
	"pageup":    "Page_Up",
	"pagedown":  "Page_Down",
	"pgup":      "Page_Up",
	"pgdn":      "Page_Down",
	"tab":       "Tab",
	"space":     "space",
	"up":        "Up",
	"down":      "Down",
	"left":      "Left",
	"right":     "Right",
	"home":      "Home",
	"end":       "End",
}

// modifierAliases maps modifier spellings to their canonical form.
var modifierAliases = map[string]string{
	"ctrl":    "ctrl",
	"control": "ctrl",
	"alt":     "alt",
	"shift":   "shift",
	"super":   "super",
	"win":     "super",
	"windows": "super",
	"meta":    "super",
	"cmd":     "super",
	"command": "super",
}

// blockedCombos are system key combinations that would close windows, lock
// the session or switch focus away from the automation target.
var blockedCombos = map[string]string{
	"alt+f4":            "closes the active window",
	"ctrl+alt+delete":   "interrupts the session",
	"ctrl+alt+del":      "interrupts the session",
	"ctrl+shift+escape": "opens the task manager",
	"ctrl+shift+esc":    "opens the task manager",
	"cmd+q":             "quits the active application",
	"alt+tab":           "switches window focus",
	"cmd+tab":           "switches window focus",
}

var knownKeys = buildKnownKeys()

func buildKnownKeys() map[string]struct{} {
	names := []string{
		"Return", "Tab", "Escape", "BackSpace", "Delete", "Insert",
		"Up", "Down", "Left", "Right", "Home", "End",
		"Page_Up", "Page_Down", "space",
		"F1", "F2", "F3", "F4", "F5", "F6",
		"F7", "F8", "F9", "F10", "F11", "F12",
		"plus", "minus", "equal", "underscore", "period", "comma",
		"slash", "backslash", "semicolon", "apostrophe",
		"bracketleft", "bracketright",
	}
	out := make(map[string]struct{}, len(names))
	for _, name := range names {
		out[name] = struct{}{}
	}
	return out
}

// normalizeKeyToken maps a combo token to its canonical key name, leaving
// unknown tokens untouched.
func normalizeKeyToken(tok string) string {
	trimmed := strings.TrimSpace(tok)
	if alias, ok := keyAliases[strings.ToLower(trimmed)]; ok {
		return alias
	}
	if len([]rune(trimmed)) == 1 {
		return trimmed
	}
	// Case-insensitive match against the known key set.
	for name := range knownKeys {
		if strings.EqualFold(name, trimmed) {
			return name
		}
	}
	return trimmed
}

func isModifier(tok string) bool {
	_, ok := modifierAliases[strings.ToLower(strings.TrimSpace(tok))]
	return ok
}

func isKnownKey(tok string) bool {
	norm := normalizeKeyToken(tok)
	if _, ok := knownKeys[norm]; ok {
		return true
	}
	runes := []rune(norm)
	return len(runes) == 1 && unicode.IsPrint(runes[0]) && !unicode.IsSpace(runes[0])
}

// suggestKeys proposes up to max known key names resembling the unrecognized
// token, by substring containment or small edit distance.
func suggestKeys(tok string, max int) []string {
	lower := strings.ToLower(strings.TrimSpace(tok))
	if lower == "" || max <= 0 {
		return nil
	}
	names := make([]string, 0, len(knownKeys))
	for name := range knownKeys {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []string
	for _, name := range names {
		nameLower := strings.ToLower(name)
		similar := strings.Contains(nameLower, lower) ||
			strings.Contains(lower, nameLower) ||
			levenshtein.ComputeDistance(lower, nameLower) <= 2
		if similar {
			out = append(out, name)
			if len(out) == max {
				break
			}
		}
	}
	return out
}
