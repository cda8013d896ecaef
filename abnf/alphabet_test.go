package abnf

import "testing"

func TestAlphabetFromCharValIsCaseFolded(t *testing.T) {
	cv := &CharVal{Value: "Ab"}
	a := cv.Alphabet(nil)
	for _, r := range []rune{'A', 'a', 'B', 'b'} {
		if !a.Contains(r) {
			t.Fatalf("case-insensitive char-val alphabet should contain %q", r)
		}
	}
}

func TestAlphabetFromCaseSensitiveCharVal(t *testing.T) {
	cv := &CharVal{Value: "Ab", CaseSensitive: true}
	a := cv.Alphabet(nil)
	if !a.Contains('A') || a.Contains('a') {
		t.Fatal("case-sensitive char-val alphabet should contain only the literal case")
	}
}

func TestAlphabetFromNumValRange(t *testing.T) {
	nv := &NumVal{Base: 'x', Range: &NumRange{Lo: 0x30, Hi: 0x39}}
	a := nv.Alphabet(nil)
	if !a.Contains('0') || !a.Contains('9') || a.Contains('a') {
		t.Fatal("num-val range alphabet should cover exactly its range")
	}
}

func TestAlphabetCollectsThroughGroupAndAlternation(t *testing.T) {
	n, err := Parse(`("a" / %x62)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := n.Alphabet(nil)
	// "a" is case-insensitive by default, so both 'a' and 'A' are covered.
	for _, r := range []rune{'a', 'A', 'b'} {
		if !a.Contains(r) {
			t.Fatalf("collected alphabet should contain %q", r)
		}
	}
	if a.Contains('z') {
		t.Fatal("collected alphabet should not contain an unrelated symbol")
	}
}

func TestAlphabetRulenameWithResolve(t *testing.T) {
	l, err := ParseRulelist("digit = %x30-39\r\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ref := &Rulename{Name: "digit"}
	a := ref.Alphabet(l.Resolve)
	if !a.Contains('0') || !a.Contains('9') || a.Contains('a') {
		t.Fatal("resolved rulename alphabet should match its definition's alphabet")
	}
}

func TestAlphabetRulenameWithoutResolveIsEmpty(t *testing.T) {
	ref := &Rulename{Name: "digit"}
	a := ref.Alphabet(nil)
	if a.NumClasses() != 0 {
		t.Fatal("an unresolved rulename should contribute nothing to the alphabet")
	}
}
