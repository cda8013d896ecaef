// Package nfa implements a nondeterministic finite automaton generic over
// an arbitrary hashable symbol type, with ε-transitions and the pattern
// algebra (union, concatenation, star, bounded repetition) that builds
// regular languages compositionally.
//
// The state model follows the teacher's StateID/StateKind shape (a flat
// state slice indexed by a compact integer ID) but generalizes the
// transition table from a fixed byte range to an arbitrary map[S][]StateID,
// since this package has no fixed alphabet to special-case.
package nfa

import "github.com/coregx/langcore/internal/sparseset"

// StateID uniquely identifies an NFA state within one NFA value.
type StateID = sparseset.ID

type nfaState[S comparable] struct {
	trans map[S][]StateID
	eps   []StateID
}

// NFA is an immutable nondeterministic finite automaton over symbol type S.
// Every algebraic operation (Union, Concatenate, Star, ...) returns a fresh
// value; existing NFAs are never mutated.
type NFA[S comparable] struct {
	states  []nfaState[S]
	initial []StateID
	final   map[StateID]bool
}

// States returns the number of states in the NFA.
func (n *NFA[S]) States() int { return len(n.states) }

// Initial returns the set of initial states.
func (n *NFA[S]) Initial() []StateID { return n.initial }

// IsFinal reports whether id is a final (accepting) state.
func (n *NFA[S]) IsFinal(id StateID) bool { return n.final[id] }

// Transitions returns the non-ε targets from id over symbol s.
func (n *NFA[S]) Transitions(id StateID, s S) []StateID {
	if int(id) >= len(n.states) {
		return nil
	}
	return n.states[id].trans[s]
}

// Alphabet returns the set of symbols appearing on some transition,
// the union of alphabets across all NFA transitions, as used to seed
// subset construction.
func (n *NFA[S]) Alphabet() []S {
	seen := make(map[S]bool)
	var out []S
	for _, st := range n.states {
		for s := range st.trans {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

// EpsilonTargets returns the direct ε-successors of id.
func (n *NFA[S]) EpsilonTargets(id StateID) []StateID {
	if int(id) >= len(n.states) {
		return nil
	}
	return n.states[id].eps
}

func newState[S comparable]() nfaState[S] {
	return nfaState[S]{trans: make(map[S][]StateID)}
}

// NewEmpty builds the NFA for the empty language: one state, not final,
// with no transitions. It accepts nothing.
func NewEmpty[S comparable]() *NFA[S] {
	return &NFA[S]{
		states:  []nfaState[S]{newState[S]()},
		initial: []StateID{0},
		final:   map[StateID]bool{},
	}
}

// NewEpsilon builds the NFA for the language containing only the empty
// string: one state that is both initial and final.
func NewEpsilon[S comparable]() *NFA[S] {
	return &NFA[S]{
		states:  []nfaState[S]{newState[S]()},
		initial: []StateID{0},
		final:   map[StateID]bool{0: true},
	}
}

// NewSymbol builds the NFA accepting exactly the one-symbol string "s":
// two states with a single transition 0 --s--> 1.
func NewSymbol[S comparable](s S) *NFA[S] {
	st0 := newState[S]()
	st0.trans[s] = []StateID{1}
	st1 := newState[S]()
	return &NFA[S]{
		states:  []nfaState[S]{st0, st1},
		initial: []StateID{0},
		final:   map[StateID]bool{1: true},
	}
}

// NewVerbatim builds the NFA accepting exactly the sequence seq, as a
// chain of len(seq)+1 states.
func NewVerbatim[S comparable](seq []S) *NFA[S] {
	if len(seq) == 0 {
		return NewEpsilon[S]()
	}
	states := make([]nfaState[S], len(seq)+1)
	for i := range states {
		states[i] = newState[S]()
	}
	for i, s := range seq {
		states[i].trans[s] = []StateID{StateID(i + 1)}
	}
	return &NFA[S]{
		states:  states,
		initial: []StateID{0},
		final:   map[StateID]bool{StateID(len(seq)): true},
	}
}

// cloneShifted copies an NFA's states into a fresh slice with states
// renumbered starting at offset, returning only the renumbered states;
// callers shift the initial and final sets themselves.
func cloneShifted[S comparable](n *NFA[S], offset StateID) []nfaState[S] {
	out := make([]nfaState[S], len(n.states))
	for i, st := range n.states {
		ns := newState[S]()
		for sym, targets := range st.trans {
			shifted := make([]StateID, len(targets))
			for j, t := range targets {
				shifted[j] = t + offset
			}
			ns.trans[sym] = shifted
		}
		if len(st.eps) > 0 {
			shifted := make([]StateID, len(st.eps))
			for j, t := range st.eps {
				shifted[j] = t + offset
			}
			ns.eps = shifted
		}
		out[i] = ns
	}
	return out
}

func shiftIDs(ids []StateID, offset StateID) []StateID {
	out := make([]StateID, len(ids))
	for i, id := range ids {
		out[i] = id + offset
	}
	return out
}
