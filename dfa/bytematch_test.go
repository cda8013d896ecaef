package dfa

import (
	"strings"
	"testing"

	"github.com/coregx/langcore/nfa"
)

func lettersDFA() *DFA[byte] {
	var u *nfa.NFA[byte]
	for b := byte('a'); b <= 'z'; b++ {
		sym := nfa.NewSymbol(b)
		if u == nil {
			u = sym
		} else {
			u = u.Union(sym)
		}
	}
	return FromNFA(u.Plus())
}

func TestMatchBytesAccelerationAgreesWithMatch(t *testing.T) {
	d := lettersDFA()
	input := []byte(strings.Repeat("abcxyz", 20) + "123")

	wantPrefix, wantRest, wantOK := d.Match(input)
	gotPrefix, gotRest, gotOK := MatchBytes(d, input)

	if gotOK != wantOK || string(gotPrefix) != string(wantPrefix) || string(gotRest) != string(wantRest) {
		t.Fatalf("MatchBytes disagreed with Match: got (%q,%q,%v), want (%q,%q,%v)",
			gotPrefix, gotRest, gotOK, wantPrefix, wantRest, wantOK)
	}
}

func TestMatchBytesRejectsImmediateNonMember(t *testing.T) {
	d := lettersDFA()
	_, _, ok := MatchBytes(d, []byte("123"))
	if ok {
		t.Fatal("expected no accepted prefix")
	}
}

func TestContainsBytes(t *testing.T) {
	d := lettersDFA()
	if !ContainsBytes(d, []byte(strings.Repeat("a", 50))) {
		t.Fatal("expected a long run of letters to be fully contained")
	}
	if ContainsBytes(d, []byte("abc123")) {
		t.Fatal("trailing digits should not be fully contained")
	}
}
