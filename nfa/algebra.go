package nfa

import "github.com/coregx/langcore/internal/sparseset"

// Union returns the NFA accepting the union of the languages of n and
// others: a disjoint-state sum with a fresh initial state ε-linked to
// every operand's initials, and finals the union of every operand's
// shifted finals.
func (n *NFA[S]) Union(others ...*NFA[S]) *NFA[S] {
	operands := append([]*NFA[S]{n}, others...)
	return unionAll(operands)
}

func unionAll[S comparable](operands []*NFA[S]) *NFA[S] {
	if len(operands) == 0 {
		return NewEmpty[S]()
	}
	if len(operands) == 1 {
		return operands[0]
	}

	newInitial := StateID(0)
	states := []nfaState[S]{newState[S]()}
	final := make(map[StateID]bool)

	offset := StateID(1)
	var rootEps []StateID
	for _, op := range operands {
		shifted := cloneShifted(op, offset)
		states = append(states, shifted...)
		rootEps = append(rootEps, shiftIDs(op.initial, offset)...)
		for f := range op.final {
			final[f+offset] = true
		}
		offset += StateID(len(op.states))
	}
	states[newInitial].eps = rootEps

	return &NFA[S]{states: states, initial: []StateID{newInitial}, final: final}
}

// Concatenate returns the NFA accepting the concatenation of the languages
// of n and others, in order: a disjoint-state sum with ε-edges from each
// operand's finals to the next operand's initials. An empty argument list
// concatenated with nothing is epsilon.
func (n *NFA[S]) Concatenate(others ...*NFA[S]) *NFA[S] {
	operands := append([]*NFA[S]{n}, others...)
	return concatAll(operands)
}

func concatAll[S comparable](operands []*NFA[S]) *NFA[S] {
	if len(operands) == 0 {
		return NewEpsilon[S]()
	}
	if len(operands) == 1 {
		return operands[0]
	}

	var states []nfaState[S]
	offsets := make([]StateID, len(operands))
	offset := StateID(0)
	for i, op := range operands {
		offsets[i] = offset
		states = append(states, cloneShifted(op, offset)...)
		offset += StateID(len(op.states))
	}

	for i := 0; i < len(operands)-1; i++ {
		cur, next := operands[i], operands[i+1]
		nextInitials := shiftIDs(next.initial, offsets[i+1])
		for f := range cur.final {
			id := f + offsets[i]
			states[id].eps = append(states[id].eps, nextInitials...)
		}
	}

	initial := shiftIDs(operands[0].initial, offsets[0])
	final := make(map[StateID]bool)
	last := operands[len(operands)-1]
	for f := range last.final {
		final[f+offsets[len(operands)-1]] = true
	}

	return &NFA[S]{states: states, initial: initial, final: final}
}

// Star returns the NFA accepting zero or more repetitions of n's language:
// a fresh state that is both initial and final, ε-linked to n's initials,
// with ε-edges from n's finals back to the fresh state.
func (n *NFA[S]) Star() *NFA[S] {
	offset := StateID(1)
	states := append([]nfaState[S]{newState[S]()}, cloneShifted(n, offset)...)

	root := StateID(0)
	states[root].eps = shiftIDs(n.initial, offset)
	for f := range n.final {
		id := f + offset
		states[id].eps = append(states[id].eps, root)
	}

	return &NFA[S]{
		states:  states,
		initial: []StateID{root},
		final:   map[StateID]bool{root: true},
	}
}

// Optional returns the NFA accepting n's language zero or one times:
// union(epsilon, n).
func (n *NFA[S]) Optional() *NFA[S] {
	return unionAll([]*NFA[S]{NewEpsilon[S](), n})
}

// Plus returns the NFA accepting n's language one or more times:
// concatenate(n, star(n)).
func (n *NFA[S]) Plus() *NFA[S] {
	return concatAll([]*NFA[S]{n, n.Star()})
}

// Repeating returns the NFA accepting n's language exactly count times.
func (n *NFA[S]) Repeating(count int) *NFA[S] {
	if count <= 0 {
		return NewEpsilon[S]()
	}
	operands := make([]*NFA[S], count)
	for i := range operands {
		operands[i] = n
	}
	return concatAll(operands)
}

// RepeatingRange returns the NFA accepting n's language between lo and hi
// times inclusive: lo mandatory copies followed by (hi-lo) optional ones.
func (n *NFA[S]) RepeatingRange(lo, hi int) *NFA[S] {
	if hi < lo {
		hi = lo
	}
	var operands []*NFA[S]
	for i := 0; i < lo; i++ {
		operands = append(operands, n)
	}
	for i := lo; i < hi; i++ {
		operands = append(operands, n.Optional())
	}
	if len(operands) == 0 {
		return NewEpsilon[S]()
	}
	return concatAll(operands)
}

// RepeatingAtLeast returns the NFA accepting n's language at least lo
// times: lo mandatory copies followed by star(n).
func (n *NFA[S]) RepeatingAtLeast(lo int) *NFA[S] {
	if lo <= 0 {
		return n.Star()
	}
	operands := make([]*NFA[S], 0, lo+1)
	for i := 0; i < lo; i++ {
		operands = append(operands, n)
	}
	operands = append(operands, n.Star())
	return concatAll(operands)
}

// Ops is a zero-value handle implementing pattern.Builder[*NFA[S]] and
// pattern.SymbolBuilder[S, *NFA[S]]. Unlike the instance methods above
// (where the receiver is itself one of the operands, for ergonomic
// a.Union(b, c) call sites), Ops.Union/Concatenate treat xs as the
// complete operand list, matching the builder contract used by
// representation-generic code and cross-type property tests.
type Ops[S comparable] struct{}

func (Ops[S]) Empty() *NFA[S]                     { return NewEmpty[S]() }
func (Ops[S]) Epsilon() *NFA[S]                   { return NewEpsilon[S]() }
func (Ops[S]) Symbol(s S) *NFA[S]                 { return NewSymbol(s) }
func (Ops[S]) Union(xs ...*NFA[S]) *NFA[S]        { return unionAll(xs) }
func (Ops[S]) Concatenate(xs ...*NFA[S]) *NFA[S]  { return concatAll(xs) }
func (Ops[S]) Star(x *NFA[S]) *NFA[S]             { return x.Star() }

// EpsilonClosure returns the least set of states reachable from the given
// seed set by zero or more ε-transitions. Implementation runs in
// O(|seed| + |E_ε|) using a worklist and a sparse visited set, and
// terminates on ε-cycles since each state is enqueued at most once.
func (n *NFA[S]) EpsilonClosure(seed []StateID) []StateID {
	visited := sparseset.New(len(n.states))
	var worklist []StateID
	for _, s := range seed {
		if !visited.Contains(s) {
			visited.Insert(s)
			worklist = append(worklist, s)
		}
	}
	for len(worklist) > 0 {
		s := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		for _, t := range n.EpsilonTargets(s) {
			if !visited.Contains(t) {
				visited.Insert(t)
				worklist = append(worklist, t)
			}
		}
	}
	out := append([]StateID(nil), visited.Values()...)
	return out
}
