package safety

import "regexp"

// Pattern is one compiled threat matcher. Immutable once registered.
type Pattern struct {
	Category    Category
	Expr        string
	Description string

	re *regexp.Regexp
}

func (p Pattern) matches(s string) bool {
	return p.re.MatchString(s)
}

// Registry holds the built-in threat patterns, grouped by category and
// exposed in a fixed priority order. It is built once at validator
// construction and never mutated afterwards.
type Registry struct {
	byCategory map[Category][]Pattern
	ordered    []Pattern
}

// NewRegistry compiles the built-in pattern set. A built-in pattern that
// fails to compile is a packaging bug and panics here rather than being
// deferred to request time.
func NewRegistry() *Registry {
	r := &Registry{byCategory: make(map[Category][]Pattern)}
	for _, def := range builtinPatterns() {
		r.register(def)
	}
	for _, cat := range builtinOrder {
		r.ordered = append(r.ordered, r.byCategory[cat]...)
	}
	return r
}

func (r *Registry) register(def Pattern) {
	def.re = regexp.MustCompile(def.Expr)
	r.byCategory[def.Category] = append(r.byCategory[def.Category], def)
}

// InOrder returns every (category, pattern) pair in the fixed evaluation
// order. The returned slice is shared; callers must not modify it.
func (r *Registry) InOrder() []Pattern {
	return r.ordered
}

// Counts reports the number of patterns registered per category.
func (r *Registry) Counts() map[Category]int {
	out := make(map[Category]int, len(r.byCategory))
	for cat, patterns := range r.byCategory {
		out[cat] = len(patterns)
	}
	return out
}
