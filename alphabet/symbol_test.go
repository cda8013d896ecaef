package alphabet

import "testing"

func TestSymbolAlphabet(t *testing.T) {
	a := NewSymbolAlphabet('a', 'b', 'c')
	if !a.Contains('a') || a.Contains('z') {
		t.Fatal("containment mismatch")
	}
	if l, ok := a.Label('b'); !ok || l != 'b' {
		t.Fatalf("Label('b') = %v, %v", l, ok)
	}
	if a.IsEquivalent('a', 'b') {
		t.Fatal("distinct symbols must not be equivalent in a singleton alphabet")
	}
	if !a.IsEquivalent('a', 'a') {
		t.Fatal("a symbol must be equivalent to itself")
	}

	b := NewSymbolAlphabet('c', 'd')
	conj := a.Conjunction(b)
	if conj.NumClasses() != 4 {
		t.Fatalf("got %d classes, want 4", conj.NumClasses())
	}
}
