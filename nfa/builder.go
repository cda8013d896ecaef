package nfa

import "github.com/coregx/langcore/langerr"

// Builder assembles an NFA state-by-state, mirroring the teacher's
// Builder API shape (explicit state/transition/epsilon calls followed by
// a validating Build()) rather than the algebraic constructors above,
// for callers translating an existing graph (e.g. an ABNF rule graph or
// an Aho-Corasick trie) directly into NFA states.
type Builder[S comparable] struct {
	states  []nfaState[S]
	initial []StateID
	final   map[StateID]bool
}

// NewBuilder creates an empty Builder.
func NewBuilder[S comparable]() *Builder[S] {
	return &Builder[S]{final: make(map[StateID]bool)}
}

// AddState appends a new state and returns its ID.
func (b *Builder[S]) AddState() StateID {
	b.states = append(b.states, newState[S]())
	return StateID(len(b.states) - 1)
}

// AddTransition adds a transition from -s-> to. Both states must already
// exist.
func (b *Builder[S]) AddTransition(from StateID, s S, to StateID) {
	b.states[from].trans[s] = append(b.states[from].trans[s], to)
}

// AddEpsilon adds an ε-transition from -> to.
func (b *Builder[S]) AddEpsilon(from, to StateID) {
	b.states[from].eps = append(b.states[from].eps, to)
}

// SetInitial marks id as an initial state.
func (b *Builder[S]) SetInitial(id StateID) {
	b.initial = append(b.initial, id)
}

// SetFinal marks id as a final state.
func (b *Builder[S]) SetFinal(id StateID) {
	b.final[id] = true
}

// Build validates and returns the assembled NFA. It rejects an
// out-of-range initial or final state index with InvalidAutomatonError,
// since all automaton operations here are otherwise total.
func (b *Builder[S]) Build() (*NFA[S], error) {
	n := len(b.states)
	for _, id := range b.initial {
		if int(id) >= n {
			return nil, &langerr.InvalidAutomatonError{Reason: "initial state out of range"}
		}
	}
	for id := range b.final {
		if int(id) >= n {
			return nil, &langerr.InvalidAutomatonError{Reason: "final state out of range"}
		}
	}
	for _, st := range b.states {
		for _, targets := range st.trans {
			for _, t := range targets {
				if int(t) >= n {
					return nil, &langerr.InvalidAutomatonError{Reason: "transition target out of range"}
				}
			}
		}
		for _, t := range st.eps {
			if int(t) >= n {
				return nil, &langerr.InvalidAutomatonError{Reason: "epsilon target out of range"}
			}
		}
	}
	return &NFA[S]{states: b.states, initial: b.initial, final: b.final}, nil
}
