package dfa

import (
	"fmt"
	"sort"
)

// Minimize returns the minimal DFA equivalent to d: unreachable and dead
// (reachable-but-can-never-accept) states are dropped, then the remaining
// equivalent states are merged by Hopcroft-style partition refinement
// starting from the two-block {finals, non-finals} partition.
func (d *DFA[S]) Minimize() *DFA[S] {
	return d.minimizeFrom(d.finalNonFinalPartition())
}

// MinimizeWithPartition minimizes d like Minimize, but starting
// refinement from a caller-supplied initial partition instead of the
// default two-block split. This is how a labeled classifier (a DFAE)
// minimizes without merging states whose labels differ even though both
// are "final": the caller passes one block per label plus one for
// non-final states, and refinement never coarsens across those
// boundaries.
func (d *DFA[S]) MinimizeWithPartition(initial [][]StateID) *DFA[S] {
	return d.minimizeFrom(initial)
}

func (d *DFA[S]) finalNonFinalPartition() [][]StateID {
	var finals, nonFinals []StateID
	for id := range d.liveStates() {
		if d.final[id] {
			finals = append(finals, id)
		} else {
			nonFinals = append(nonFinals, id)
		}
	}
	var parts [][]StateID
	if len(finals) > 0 {
		parts = append(parts, finals)
	}
	if len(nonFinals) > 0 {
		parts = append(parts, nonFinals)
	}
	return parts
}

// minimizeFrom refines live states only (states both reachable from the
// initial state and able to reach some final state). Dead states —
// reachable states that can never accept — are never assigned a block
// and so are dropped from the result entirely; any transition into one
// is omitted, collapsing it into the implicit oracle sink along with
// every other dead state, exactly as a genuinely unreachable state
// would be. If no state is live at all, d accepts nothing and the
// minimal equivalent is the single-state empty DFA.
func (d *DFA[S]) minimizeFrom(partition [][]StateID) *DFA[S] {
	live := d.liveStates()
	if len(live) == 0 {
		return NewEmpty[S]()
	}

	blockOf := make(map[StateID]int)
	for bi, block := range partition {
		for _, id := range block {
			if live[id] {
				blockOf[id] = bi
			}
		}
	}

	alphabet := make(map[S]bool)
	for id := range live {
		for _, s := range d.OutgoingSymbols(id) {
			if t, ok := d.Step(id, s); ok && live[t] {
				alphabet[s] = true
			}
		}
	}

	// Refinement only ever splits blocks, never merges them, so the block
	// count is non-decreasing; it stops changing exactly when the
	// partition has reached its fixpoint. Comparing the count (rather
	// than comparing block numbers id-for-id across rounds) sidesteps
	// the fact that block numbers are reassigned from scratch each round
	// in map-iteration order and so carry no meaning across rounds.
	prevCount := -1
	for {
		next := make(map[string]int)
		newBlockOf := make(map[StateID]int)

		for id := range live {
			sig := signature(d, id, blockOf, alphabet, live)
			bi, ok := next[sig]
			if !ok {
				bi = len(next)
				next[sig] = bi
			}
			newBlockOf[id] = bi
		}
		blockOf = newBlockOf
		if len(next) == prevCount {
			break
		}
		prevCount = len(next)
	}

	// Collect final block membership in a stable order (lowest original
	// state id per block first) so output state numbering is
	// deterministic across calls.
	blockIDs := make(map[int][]StateID)
	for id := range live {
		blockIDs[blockOf[id]] = append(blockIDs[blockOf[id]], id)
	}
	var blockKeys []int
	for b := range blockIDs {
		blockKeys = append(blockKeys, b)
	}
	sort.Slice(blockKeys, func(i, j int) bool {
		return minOf(blockIDs[blockKeys[i]]) < minOf(blockIDs[blockKeys[j]])
	})

	remap := make(map[int]StateID, len(blockKeys))
	for newID, old := range blockKeys {
		remap[old] = StateID(newID)
	}

	states := make([]dfaState[S], len(blockKeys))
	final := make(map[StateID]bool)
	for newID, old := range blockKeys {
		states[newID] = newDFAState[S]()
		rep := blockIDs[old][0]
		for _, s := range d.OutgoingSymbols(rep) {
			t, ok := d.Step(rep, s)
			if !ok || !live[t] {
				continue
			}
			states[newID].trans[s] = remap[blockOf[t]]
		}
		if d.final[rep] {
			final[StateID(newID)] = true
		}
	}

	return &DFA[S]{
		states:  states,
		initial: remap[blockOf[d.initial]],
		final:   final,
	}
}

func minOf(ids []StateID) StateID {
	m := ids[0]
	for _, id := range ids[1:] {
		if id < m {
			m = id
		}
	}
	return m
}

// signature computes a state's refinement key: its current block plus,
// for every alphabet symbol in a fixed order, the block of its
// transition target. A transition that is missing, or that lands on a
// dead (non-live) state, gets the same sentinel — dead states are
// indistinguishable from the oracle sink for refinement purposes, so
// they never survive into the output. Two states refine to the same
// next-round block iff their signatures match.
func signature[S comparable](d *DFA[S], id StateID, blockOf map[StateID]int, alphabet map[S]bool, live map[StateID]bool) string {
	syms := make([]S, 0, len(alphabet))
	for s := range alphabet {
		syms = append(syms, s)
	}
	sortSymbols(syms)

	b := make([]byte, 0, 8+len(syms)*8)
	b = appendInt(b, blockOf[id])
	b = append(b, ';')
	for _, s := range syms {
		t, ok := d.Step(id, s)
		if !ok || !live[t] {
			b = append(b, '!')
			continue
		}
		b = appendInt(b, blockOf[t])
		b = append(b, ',')
	}
	return string(b)
}

func appendInt(b []byte, n int) []byte {
	if n < 0 {
		b = append(b, '-')
		n = -n
	}
	if n == 0 {
		return append(b, '0')
	}
	var tmp [20]byte
	i := len(tmp)
	for n > 0 {
		i--
		tmp[i] = byte('0' + n%10)
		n /= 10
	}
	return append(b, tmp[i:]...)
}

// sortSymbols provides a stable traversal order for signature
// computation. Symbols need only a consistent order within one call,
// not a meaningful one, so this falls back to formatting when S has no
// natural ordering, matching how the teacher's generic helpers avoid
// requiring cmp.Ordered where a plain consistent tiebreak will do.
func sortSymbols[S comparable](syms []S) {
	sort.Slice(syms, func(i, j int) bool {
		return formatSymbol(syms[i]) < formatSymbol(syms[j])
	})
}

func formatSymbol[S comparable](s S) string {
	return fmt.Sprintf("%v", s)
}
