package regexast

import "testing"

func TestSimpleRegexAlgebraLaws(t *testing.T) {
	x := Symbol('a')

	if Union(Empty[rune](), x).String() != x.String() {
		t.Error("empty.union(x) should equal x")
	}
	if Union(x, Empty[rune]()).String() != x.String() {
		t.Error("x.union(empty) should equal x")
	}
	if !Union(Epsilon[rune](), Epsilon[rune]()).IsEpsilon() {
		t.Error("epsilon.union(epsilon) should be epsilon")
	}
	if Concatenate(Epsilon[rune](), x).String() != x.String() {
		t.Error("epsilon.concatenate(x) should equal x")
	}
	if Concatenate(x, Epsilon[rune]()).String() != x.String() {
		t.Error("x.concatenate(epsilon) should equal x")
	}
	if !Concatenate(Empty[rune](), x).IsEmpty() {
		t.Error("empty.concatenate(x) should be empty")
	}
	if !Star(Empty[rune]()).IsEpsilon() {
		t.Error("empty.star should be epsilon")
	}
	if !Star(Epsilon[rune]()).IsEpsilon() {
		t.Error("epsilon.star should be epsilon")
	}
}

func TestSimpleRegexPrecedencePrinting(t *testing.T) {
	a, b, c := Symbol('a'), Symbol('b'), Symbol('c')
	r := Concatenate(Union(a, b), Star(c))
	got := r.String()
	want := "(a|b)c*"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestREPatternCoalesceAdjacent(t *testing.T) {
	r := Union(Symbol(rune(0x20)), Symbol(rune(0x21)))
	re := FromSimple(r)
	coalesced := CoalesceAdjacent(re)
	if coalesced.kind != reClass {
		t.Fatalf("expected a coalesced class node, got kind %v", coalesced.kind)
	}
	if len(coalesced.ranges) != 1 || coalesced.ranges[0].Lo != 0x20 || coalesced.ranges[0].Hi != 0x21 {
		t.Fatalf("got ranges %v, want single [0x20,0x21]", coalesced.ranges)
	}
}

func TestDialectEncode(t *testing.T) {
	re := REConcat(RELiteral('a'), REStar(RELiteral('b')), REClass(RERange[rune]{'0', '9'}))
	got := ECMAScriptSource.EncodeWhole(re)
	want := "^ab*[0-9]$"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
