package nfa

import "testing"

func acceptsNFA[S comparable](n *NFA[S], w []S) bool {
	cur := n.EpsilonClosure(n.Initial())
	for _, s := range w {
		var next []StateID
		for _, id := range cur {
			next = append(next, n.Transitions(id, s)...)
		}
		cur = n.EpsilonClosure(next)
	}
	for _, id := range cur {
		if n.IsFinal(id) {
			return true
		}
	}
	return false
}

func TestNFAPrimitives(t *testing.T) {
	e := NewEmpty[rune]()
	if acceptsNFA(e, nil) || acceptsNFA(e, []rune("a")) {
		t.Fatal("empty language must accept nothing")
	}

	eps := NewEpsilon[rune]()
	if !acceptsNFA(eps, nil) || acceptsNFA(eps, []rune("a")) {
		t.Fatal("epsilon language must accept only the empty string")
	}

	a := NewSymbol('a')
	if !acceptsNFA(a, []rune("a")) || acceptsNFA(a, nil) || acceptsNFA(a, []rune("aa")) {
		t.Fatal("symbol('a') must accept exactly \"a\"")
	}

	v := NewVerbatim([]rune("abc"))
	if !acceptsNFA(v, []rune("abc")) || acceptsNFA(v, []rune("ab")) {
		t.Fatal("verbatim must accept exactly its sequence")
	}
}

func TestNFAUnion(t *testing.T) {
	a := NewSymbol('a')
	b := NewSymbol('b')
	u := a.Union(b)
	for _, w := range []string{"a", "b"} {
		if !acceptsNFA(u, []rune(w)) {
			t.Errorf("union(a,b) should accept %q", w)
		}
	}
	if acceptsNFA(u, []rune("c")) {
		t.Fatal("union(a,b) should not accept \"c\"")
	}
}

func TestNFAConcatenate(t *testing.T) {
	a := NewSymbol('a')
	b := NewSymbol('b')
	c := a.Concatenate(b)
	if !acceptsNFA(c, []rune("ab")) {
		t.Fatal("concatenate(a,b) should accept \"ab\"")
	}
	if acceptsNFA(c, []rune("a")) || acceptsNFA(c, []rune("ba")) {
		t.Fatal("concatenate(a,b) should not accept \"a\" or \"ba\"")
	}
}

func TestNFAStarAndPlus(t *testing.T) {
	a := NewSymbol('a')
	star := a.Star()
	for _, w := range []string{"", "a", "aaaa"} {
		if !acceptsNFA(star, []rune(w)) {
			t.Errorf("star(a) should accept %q", w)
		}
	}

	plus := a.Plus()
	if acceptsNFA(plus, nil) {
		t.Fatal("plus(a) should not accept empty string")
	}
	if !acceptsNFA(plus, []rune("aaa")) {
		t.Fatal("plus(a) should accept \"aaa\"")
	}
}

func TestNFARepeating(t *testing.T) {
	a := NewSymbol('a')
	r := a.Repeating(3)
	if !acceptsNFA(r, []rune("aaa")) || acceptsNFA(r, []rune("aa")) || acceptsNFA(r, []rune("aaaa")) {
		t.Fatal("repeating(a,3) should accept exactly \"aaa\"")
	}

	rr := a.RepeatingRange(2, 4)
	for _, w := range []string{"aa", "aaa", "aaaa"} {
		if !acceptsNFA(rr, []rune(w)) {
			t.Errorf("repeating(a,2..4) should accept %q", w)
		}
	}
	if acceptsNFA(rr, []rune("a")) || acceptsNFA(rr, []rune("aaaaa")) {
		t.Fatal("repeating(a,2..4) should reject outside [2,4]")
	}

	ra := a.RepeatingAtLeast(2)
	if acceptsNFA(ra, []rune("a")) {
		t.Fatal("repeating(a,2..) should reject \"a\"")
	}
	if !acceptsNFA(ra, []rune("aaaaaa")) {
		t.Fatal("repeating(a,2..) should accept long runs")
	}
}

func TestHomomorphism(t *testing.T) {
	// h maps 'a' -> "xy", 'b' -> "z".
	n := NewSymbol('a').Concatenate(NewSymbol('b'))
	h := map[rune][]rune{'a': []rune("xy"), 'b': []rune("z")}
	img := Homomorphism[rune, rune](n, h)
	if !acceptsNFA(img, []rune("xyz")) {
		t.Fatal("homomorphic image should accept \"xyz\"")
	}
	if acceptsNFA(img, []rune("ab")) {
		t.Fatal("homomorphic image should not accept the original string")
	}
}

func TestBuilderInvalidAutomaton(t *testing.T) {
	b := NewBuilder[byte]()
	s0 := b.AddState()
	b.SetInitial(s0)
	b.SetFinal(99) // out of range
	if _, err := b.Build(); err == nil {
		t.Fatal("expected InvalidAutomatonError for out-of-range final state")
	}
}
