package dfa

import (
	"sort"

	"github.com/coregx/langcore/alphabet"
)

// NaturalPartition returns the singleton-class alphabet.SymbolAlphabet
// containing exactly the symbols d transitions on. A DFA built directly
// from transitions (rather than from an alphabet-reduced NFA) carries no
// record of which symbols a compiler considered equivalent, so the best
// this can reconstruct is one class per distinct symbol; callers that
// built d via an alphabet partition should keep that partition alongside
// d themselves if they need the coarser classes back.
func (d *DFA[S]) NaturalPartition() *alphabet.SymbolAlphabet[S] {
	return alphabet.NewSymbolAlphabet(d.Alphabet()...)
}

// PathIterator wraps Iterator with a filter predicate: Next only ever
// returns strings for which keep returns true, transparently skipping
// the rest, so a caller enumerating e.g. only strings of even length
// does not have to re-implement the DFS.
type PathIterator[S comparable] struct {
	inner *Iterator[S]
	keep  func([]S) bool
}

// NewPathIterator builds a PathIterator over d's language bounded by
// maxLen, yielding only the strings for which keep returns true.
func NewPathIterator[S comparable](d *DFA[S], maxLen int, less func(a, b S) bool, keep func([]S) bool) *PathIterator[S] {
	return &PathIterator[S]{inner: NewIterator(d, maxLen, less), keep: keep}
}

// Next returns the next string accepted by the wrapped DFA and
// satisfying keep, or ok=false once exhausted.
func (p *PathIterator[S]) Next() ([]S, bool) {
	for {
		s, ok := p.inner.Next()
		if !ok {
			return nil, false
		}
		if p.keep == nil || p.keep(s) {
			return s, true
		}
	}
}

// NextStates returns the set of source states reachable, from some state
// in initial, by following any string that pattern accepts: the
// cross-product of pattern states and source states, walking until
// pattern reaches a final state. A source state is included as soon as
// some walk lands pattern on a final, and the walk continues past that
// point too (pattern's language may contain longer strings built on the
// same prefix), so the result can include states reached by several
// different accepted-string lengths.
func NextStates[S comparable](source *DFA[S], initial []StateID, pattern *DFA[S]) []StateID {
	type pair struct {
		pat StateID
		src StateID
	}

	result := make(map[StateID]bool)
	seen := make(map[pair]bool)
	var worklist []pair

	for _, s := range initial {
		p := pair{pattern.Initial(), s}
		if pattern.IsFinal(p.pat) {
			result[s] = true
		}
		if !seen[p] {
			seen[p] = true
			worklist = append(worklist, p)
		}
	}

	for len(worklist) > 0 {
		cur := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		for _, sym := range pattern.OutgoingSymbols(cur.pat) {
			nextPat, ok := pattern.Step(cur.pat, sym)
			if !ok {
				continue
			}
			nextSrc, ok := source.Step(cur.src, sym)
			if !ok {
				continue
			}
			if pattern.IsFinal(nextPat) {
				result[nextSrc] = true
			}
			p := pair{nextPat, nextSrc}
			if !seen[p] {
				seen[p] = true
				worklist = append(worklist, p)
			}
		}
	}

	out := make([]StateID, 0, len(result))
	for id := range result {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Alphabet returns the set of symbols appearing on some reachable
// transition, in unspecified order.
func (d *DFA[S]) Alphabet() []S {
	seen := make(map[S]bool)
	var out []S
	for id := range d.reachable() {
		for s := range d.states[id].trans {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

// EquivalentInputs returns a DFA recognizing every string equivalent to
// w under d: every string that drives d to the same state w does. w is
// assumed accepted by d (w ∈ L(d)), so that shared state is final; if
// following w instead falls into the oracle sink partway through, the
// returned DFA recognizes nothing. Reusing d's own transition table and
// just narrowing the final set to that one state is exact, since d is
// already deterministic and total (missing transitions all denote the
// same oracle sink).
func (d *DFA[S]) EquivalentInputs(w []S) *DFA[S] {
	cur := d.initial
	for _, s := range w {
		next, ok := d.Step(cur, s)
		if !ok {
			return NewEmpty[S]()
		}
		cur = next
	}
	return &DFA[S]{
		states:  d.states,
		initial: d.initial,
		final:   map[StateID]bool{cur: true},
	}
}
