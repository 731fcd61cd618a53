package safety

import "testing"

func TestRegistryOrder(t *testing.T) {
	r := NewRegistry()
	ordered := r.InOrder()
	if len(ordered) == 0 {
		t.Fatal("registry is empty")
	}

	rank := make(map[Category]int, len(builtinOrder))
	for i, cat := range builtinOrder {
		rank[cat] = i
	}
	prev := -1
	for _, p := range ordered {
		idx, ok := rank[p.Category]
		if !ok {
			t.Fatalf("pattern %q has unregistered category %s", p.Expr, p.Category)
		}
		if idx < prev {
			t.Fatalf("category %s out of order", p.Category)
		}
		prev = idx
	}
}

func TestRegistryCounts(t *testing.T) {
	r := NewRegistry()
	counts := r.Counts()
	total := 0
	for _, cat := range builtinOrder {
		n := counts[cat]
		if n == 0 {
			t.Errorf("category %s has no patterns", cat)
		}
		total += n
	}
	if total != len(r.InOrder()) {
		t.Fatalf("Counts sum %d != InOrder length %d", total, len(r.InOrder()))
	}
}

func TestBuiltinPatternsHaveDescriptions(t *testing.T) {
	for _, p := range NewRegistry().InOrder() {
		if p.Description == "" {
			t.Errorf("pattern %q lacks a description", p.Expr)
		}
	}
}
