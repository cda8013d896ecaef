package dfa

import (
	"sort"

	"github.com/coregx/langcore/nfa"
)

// subsetKey canonicalizes an NFA state set into a comparable map key:
// the sorted, deduplicated IDs joined as a string of fixed-width
// integers. Sorting guarantees two equal sets produce the same key
// regardless of discovery order.
func subsetKey(ids []nfa.StateID) string {
	sorted := append([]nfa.StateID(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	b := make([]byte, 0, len(sorted)*5)
	for _, id := range sorted {
		b = append(b, byte(id>>24), byte(id>>16), byte(id>>8), byte(id), '|')
	}
	return string(b)
}

func dedupeIDs(ids []nfa.StateID) []nfa.StateID {
	seen := make(map[nfa.StateID]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// FromNFA determinizes n via the subset construction: each DFA state is
// the ε-closure of a set of NFA states, reached by grouping, for every
// symbol seen on an outgoing transition from the current set, all
// direct targets over that exact symbol. This is the flat-alphabet
// variant — it groups by literal symbol equality rather than computing
// the coarsest common refinement of per-transition partitions first, a
// simplification documented as an accepted tradeoff for symbol types
// with a naturally small alphabet (byte, rune, enum-like token types);
// callers working over wide closed ranges should pre-coalesce their NFA
// transitions with an alphabet partition before calling FromNFA so the
// symbol set explored here stays proportional to the partition, not the
// raw range width.
func FromNFA[S comparable](n *nfa.NFA[S]) *DFA[S] {
	startSet := dedupeIDs(n.EpsilonClosure(n.Initial()))
	startKey := subsetKey(startSet)

	type pending struct {
		key string
		set []nfa.StateID
	}

	keyToID := map[string]StateID{startKey: 0}
	var states []dfaState[S]
	final := make(map[StateID]bool)

	order := []pending{{startKey, startSet}}
	for i := 0; i < len(order); i++ {
		cur := order[i]
		st := newDFAState[S]()

		bySymbol := make(map[S][]nfa.StateID)
		for _, nid := range cur.set {
			for _, sym := range outgoingSymbols(n, nid) {
				bySymbol[sym] = append(bySymbol[sym], n.Transitions(nid, sym)...)
			}
			if n.IsFinal(nid) {
				final[StateID(i)] = true
			}
		}

		for sym, targets := range bySymbol {
			closure := dedupeIDs(n.EpsilonClosure(dedupeIDs(targets)))
			key := subsetKey(closure)
			id, ok := keyToID[key]
			if !ok {
				id = StateID(len(order))
				keyToID[key] = id
				order = append(order, pending{key, closure})
			}
			st.trans[sym] = id
		}
		states = append(states, st)
	}

	return &DFA[S]{states: states, initial: 0, final: final}
}

// outgoingSymbols lists the distinct symbols with a non-ε transition out
// of nid, queried via n.Transitions per symbol of n.Alphabet() filtered
// to those actually present on nid; exposed here rather than on NFA
// itself since only subset construction needs a per-state view.
func outgoingSymbols[S comparable](n *nfa.NFA[S], nid nfa.StateID) []S {
	var out []S
	for _, sym := range n.Alphabet() {
		if len(n.Transitions(nid, sym)) > 0 {
			out = append(out, sym)
		}
	}
	return out
}
