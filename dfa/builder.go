package dfa

import "github.com/coregx/langcore/langerr"

// Builder assembles a DFA state-by-state, mirroring nfa.Builder's shape
// for callers translating an existing deterministic graph (e.g. a
// lockstep product over several component DFAs, as pdfa.CombinedDFA
// does) directly into DFA states without going through an NFA and
// subset construction.
type Builder[S comparable] struct {
	states     []dfaState[S]
	hasInitial bool
	initial    StateID
	final      map[StateID]bool
}

// NewBuilder creates an empty Builder.
func NewBuilder[S comparable]() *Builder[S] {
	return &Builder[S]{final: make(map[StateID]bool)}
}

// AddState appends a new state and returns its ID.
func (b *Builder[S]) AddState() StateID {
	b.states = append(b.states, newDFAState[S]())
	return StateID(len(b.states) - 1)
}

// AddTransition adds a transition from -s-> to, overwriting any
// existing transition from the same state over the same symbol (a DFA's
// transition function is single-valued per symbol, never a set of targets).
func (b *Builder[S]) AddTransition(from StateID, s S, to StateID) {
	b.states[from].trans[s] = to
}

// SetInitial marks id as the initial state. A DFA has exactly one.
func (b *Builder[S]) SetInitial(id StateID) {
	b.initial = id
	b.hasInitial = true
}

// SetFinal marks id as a final state.
func (b *Builder[S]) SetFinal(id StateID) {
	b.final[id] = true
}

// Build validates and returns the assembled DFA.
func (b *Builder[S]) Build() (*DFA[S], error) {
	n := len(b.states)
	if !b.hasInitial {
		return nil, &langerr.InvalidAutomatonError{Reason: "no initial state set"}
	}
	if int(b.initial) >= n {
		return nil, &langerr.InvalidAutomatonError{Reason: "initial state out of range"}
	}
	for id := range b.final {
		if int(id) >= n {
			return nil, &langerr.InvalidAutomatonError{Reason: "final state out of range"}
		}
	}
	for _, st := range b.states {
		for _, t := range st.trans {
			if int(t) >= n {
				return nil, &langerr.InvalidAutomatonError{Reason: "transition target out of range"}
			}
		}
	}
	return &DFA[S]{states: b.states, initial: b.initial, final: b.final}, nil
}
