// Package pdfa implements PartitionedDFA, a canonicalized list of
// languages that jointly partition the set of strings accepted by any
// member, and DFAE, the labeled variant that maps each partition element
// to an arbitrary value the way a token classifier maps lexemes to
// token kinds.
package pdfa

import "github.com/coregx/langcore/dfa"

// PartitionedDFA holds k DFAs over the same symbol type whose languages
// are pairwise disjoint by construction: element i accepts exactly the
// strings of the i-th input language not already claimed by an earlier
// one.
type PartitionedDFA[S comparable] struct {
	parts []*dfa.DFA[S]
}

// New builds a PartitionedDFA from languages in priority order: the
// i-th partition element is languages[i] minus the union of every
// earlier partition element, the greedy construction P_1 = L_1,
// P_i = L_i \ (P_1 ∪ ... ∪ P_{i-1}).
func New[S comparable](languages []*dfa.DFA[S]) *PartitionedDFA[S] {
	p := &PartitionedDFA[S]{parts: make([]*dfa.DFA[S], len(languages))}
	var claimed *dfa.DFA[S]
	for i, lang := range languages {
		if claimed == nil {
			p.parts[i] = lang
		} else {
			p.parts[i] = lang.Difference(claimed)
		}
		if claimed == nil {
			claimed = p.parts[i]
		} else {
			claimed = claimed.Union(p.parts[i])
		}
	}
	return p
}

// Len returns the number of partition elements.
func (p *PartitionedDFA[S]) Len() int { return len(p.parts) }

// Part returns the i-th partition element's DFA.
func (p *PartitionedDFA[S]) Part(i int) *dfa.DFA[S] { return p.parts[i] }

// Lookup returns the index of the partition element containing w, or
// ok=false if w belongs to none of them.
func (p *PartitionedDFA[S]) Lookup(w []S) (index int, ok bool) {
	for i, part := range p.parts {
		if part.Contains(w) {
			return i, true
		}
	}
	return 0, false
}

// Siblings returns the partition element containing w, or nil if none
// does.
func (p *PartitionedDFA[S]) Siblings(w []S) *dfa.DFA[S] {
	if i, ok := p.Lookup(w); ok {
		return p.parts[i]
	}
	return nil
}

// Conjunction refines p and other: the result's partition elements are
// the non-empty pairwise intersections P_i ∩ Q_j, matching how
// the alphabet variants' Conjunction methods refine two symbol-class partitions at
// the level of whole languages instead of single symbols.
func (p *PartitionedDFA[S]) Conjunction(other *PartitionedDFA[S]) *PartitionedDFA[S] {
	var parts []*dfa.DFA[S]
	for _, pi := range p.parts {
		for _, qj := range other.parts {
			inter := pi.Intersect(qj)
			if !inter.IsEmpty() {
				parts = append(parts, inter)
			}
		}
	}
	return &PartitionedDFA[S]{parts: parts}
}
