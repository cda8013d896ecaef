// Package dfa implements a deterministic finite automaton generic over an
// arbitrary hashable symbol type. Transitions are a partial function per
// state (a missing entry denotes a transition to an implicit oracle sink,
// never final — equivalently, rejection), matching the teacher's
// "missing transition means dead state" DFA semantics generalized away
// from a fixed byte alphabet.
package dfa

import "github.com/coregx/langcore/nfa"

// StateID uniquely identifies a DFA state within one DFA value.
type StateID = nfa.StateID

type dfaState[S comparable] struct {
	trans map[S]StateID
}

// DFA is an immutable deterministic finite automaton over symbol type S.
// Every transformation (Minimize, Union, Concatenate, ...) returns a fresh
// value.
type DFA[S comparable] struct {
	states  []dfaState[S]
	initial StateID
	final   map[StateID]bool
}

// States returns the number of states.
func (d *DFA[S]) States() int { return len(d.states) }

// Initial returns the initial state.
func (d *DFA[S]) Initial() StateID { return d.initial }

// IsFinal reports whether id is an accepting state.
func (d *DFA[S]) IsFinal(id StateID) bool { return d.final[id] }

// Step returns the target state for (id, s), or (0, false) if no
// transition exists (the oracle sink).
func (d *DFA[S]) Step(id StateID, s S) (StateID, bool) {
	if int(id) >= len(d.states) {
		return 0, false
	}
	t, ok := d.states[id].trans[s]
	return t, ok
}

// OutgoingSymbols returns the symbols id has an explicit transition for,
// in unspecified order.
func (d *DFA[S]) OutgoingSymbols(id StateID) []S {
	out := make([]S, 0, len(d.states[id].trans))
	for s := range d.states[id].trans {
		out = append(out, s)
	}
	return out
}

func newDFAState[S comparable]() dfaState[S] {
	return dfaState[S]{trans: make(map[S]StateID)}
}

// NewEmpty builds the DFA for the empty language.
func NewEmpty[S comparable]() *DFA[S] {
	return &DFA[S]{states: []dfaState[S]{newDFAState[S]()}, initial: 0, final: map[StateID]bool{}}
}

// NewEpsilon builds the DFA for the language containing only the empty
// string.
func NewEpsilon[S comparable]() *DFA[S] {
	return &DFA[S]{states: []dfaState[S]{newDFAState[S]()}, initial: 0, final: map[StateID]bool{0: true}}
}

// NewVerbatim builds the DFA accepting exactly the sequence seq.
func NewVerbatim[S comparable](seq []S) *DFA[S] {
	states := make([]dfaState[S], len(seq)+1)
	for i := range states {
		states[i] = newDFAState[S]()
	}
	for i, s := range seq {
		states[i].trans[s] = StateID(i + 1)
	}
	return &DFA[S]{states: states, initial: 0, final: map[StateID]bool{StateID(len(seq)): true}}
}

// Contains reports whether the DFA accepts input, i.e. whether following
// transitions from the initial state consumes all of input and ends in a
// final state.
func (d *DFA[S]) Contains(input []S) bool {
	cur := d.initial
	for _, s := range input {
		next, ok := d.Step(cur, s)
		if !ok {
			return false
		}
		cur = next
	}
	return d.final[cur]
}

// Match finds the longest prefix of input that ends in a final state,
// consuming symbols until either input is exhausted or no transition
// exists. Returns ok=false if no prefix (including the empty one) is
// accepted.
func (d *DFA[S]) Match(input []S) (prefix, rest []S, ok bool) {
	cur := d.initial
	lastAccept := -1
	if d.final[cur] {
		lastAccept = 0
	}
	for i, s := range input {
		next, exists := d.Step(cur, s)
		if !exists {
			break
		}
		cur = next
		if d.final[cur] {
			lastAccept = i + 1
		}
	}
	if lastAccept < 0 {
		return nil, nil, false
	}
	return input[:lastAccept], input[lastAccept:], true
}

// toNFA embeds d as a trivial NFA (no nondeterminism, no ε-edges), used
// to mediate DFA-level Concatenate and Star through the NFA algebra
// rather than risking the exponential blowup of a direct DFA
// construction.
func (d *DFA[S]) toNFA() *nfa.NFA[S] {
	b := nfa.NewBuilder[S]()
	for range d.states {
		b.AddState()
	}
	for id, st := range d.states {
		for s, t := range st.trans {
			b.AddTransition(nfa.StateID(id), s, t)
		}
	}
	b.SetInitial(d.initial)
	for f := range d.final {
		b.SetFinal(f)
	}
	n, err := b.Build()
	if err != nil {
		// d's own invariants guarantee in-range indices; a failure here
		// would mean d itself was built from an invalid builder.
		panic(err)
	}
	return n
}

// Concatenate returns the DFA accepting d's language followed by other's,
// via NFA concatenation and re-determinization.
func (d *DFA[S]) Concatenate(other *DFA[S]) *DFA[S] {
	return FromNFA(d.toNFA().Concatenate(other.toNFA()))
}

// Star returns the DFA accepting zero or more repetitions of d's
// language, via NFA star and re-determinization. Note the resulting DFA
// may not be in canonical (minimal) shape; call Minimize if that matters.
func (d *DFA[S]) Star() *DFA[S] {
	return FromNFA(d.toNFA().Star())
}

// Optional returns the DFA accepting d's language zero or one times.
func (d *DFA[S]) Optional() *DFA[S] {
	return FromNFA(d.toNFA().Optional())
}

// Plus returns the DFA accepting d's language one or more times.
func (d *DFA[S]) Plus() *DFA[S] {
	return FromNFA(d.toNFA().Plus())
}

// Repeating returns the DFA accepting d's language exactly n times.
func (d *DFA[S]) Repeating(n int) *DFA[S] {
	return FromNFA(d.toNFA().Repeating(n))
}

// RepeatingRange returns the DFA accepting d's language between lo and hi
// times inclusive.
func (d *DFA[S]) RepeatingRange(lo, hi int) *DFA[S] {
	return FromNFA(d.toNFA().RepeatingRange(lo, hi))
}

// RepeatingAtLeast returns the DFA accepting d's language at least lo
// times.
func (d *DFA[S]) RepeatingAtLeast(lo int) *DFA[S] {
	return FromNFA(d.toNFA().RepeatingAtLeast(lo))
}

// Ops is a zero-value handle implementing pattern.Builder[*DFA[S]] and
// pattern.SymbolBuilder[S, *DFA[S]]. Star eagerly minimizes, the way the
// design notes recommend when canonical form matters (the NFA-mediated
// star construction on an already-deterministic language can leave extra
// states, e.g. c+ built as c.c* before minimization). Union goes through
// the product construction directly and needs no such cleanup pass.
type Ops[S comparable] struct{}

func (Ops[S]) Empty() *DFA[S]   { return NewEmpty[S]() }
func (Ops[S]) Epsilon() *DFA[S] { return NewEpsilon[S]() }
func (Ops[S]) Symbol(s S) *DFA[S] {
	return NewVerbatim([]S{s})
}
func (Ops[S]) Union(xs ...*DFA[S]) *DFA[S] {
	if len(xs) == 0 {
		return NewEmpty[S]()
	}
	out := xs[0]
	for _, x := range xs[1:] {
		out = out.Union(x)
	}
	return out
}
func (Ops[S]) Concatenate(xs ...*DFA[S]) *DFA[S] {
	if len(xs) == 0 {
		return NewEpsilon[S]()
	}
	out := xs[0]
	for _, x := range xs[1:] {
		out = out.Concatenate(x)
	}
	return out
}
func (Ops[S]) Star(x *DFA[S]) *DFA[S] { return x.Star().Minimize() }
