package alphabet

import "testing"

func TestSetAlphabetInsertRefines(t *testing.T) {
	a := NewSetAlphabet[string]([]string{"a", "b", "c", "d"})
	a.Insert([]string{"b", "c", "e"})

	if a.NumClasses() != 3 {
		t.Fatalf("got %d classes, want 3", a.NumClasses())
	}
	if !a.IsEquivalent("b", "c") {
		t.Fatal("'b' and 'c' should be equivalent after split")
	}
	if a.IsEquivalent("a", "b") {
		t.Fatal("'a' and 'b' should not be equivalent after split")
	}
	if !a.Contains("e") {
		t.Fatal("'e' should now be covered as its own class")
	}
}

func TestSetAlphabetConjunction(t *testing.T) {
	a := NewSetAlphabet[int]([]int{1, 2, 3}, []int{4, 5})
	b := NewSetAlphabet[int]([]int{1, 4}, []int{2, 3, 5})

	out := a.Conjunction(b)
	if !out.IsEquivalent(2, 3) {
		t.Fatal("2 and 3 should merge under conjunction (same in both)")
	}
	if out.IsEquivalent(1, 2) {
		t.Fatal("1 and 2 should not merge under conjunction")
	}
	if out.IsEquivalent(4, 5) {
		t.Fatal("4 and 5 should not merge under conjunction")
	}
}
