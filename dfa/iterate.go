package dfa

import "sort"

// frame is one level of the enumeration's explicit DFS stack: the state
// reached, the path of symbols taken to reach it, and the index into
// that state's sorted outgoing symbols to resume from.
type frame[S comparable] struct {
	state   StateID
	path    []S
	next    int
	syms    []S
	emitted bool
}

// Iterator lazily enumerates strings accepted by a DFA in depth-first
// order, with each state's symbols taken in the order given by the less
// function passed to NewIterator, via an explicit stack rather than recursion so Next
// can suspend and resume one string at a time. Cycles in the DFA are
// safe to iterate since depth is bounded externally by maxLen, not by
// detecting revisits.
type Iterator[S comparable] struct {
	d      *DFA[S]
	less   func(a, b S) bool
	stack  []frame[S]
	maxLen int
	done   bool
}

// NewIterator builds an Iterator over d's language, bounding any single
// produced string to at most maxLen symbols (required since a DFA with a
// cycle reachable from a final state accepts infinitely many strings).
// less orders symbols within one state's transition set; with nil, the
// symbols are taken in map iteration order, which may differ between
// calls.
func NewIterator[S comparable](d *DFA[S], maxLen int, less func(a, b S) bool) *Iterator[S] {
	it := &Iterator[S]{d: d, less: less, maxLen: maxLen}
	it.stack = []frame[S]{{state: d.initial, path: nil}}
	it.stack[0].syms = it.sortedSymbols(d.initial)
	return it
}

func (it *Iterator[S]) sortedSymbols(id StateID) []S {
	syms := it.d.OutgoingSymbols(id)
	if it.less != nil {
		sort.Slice(syms, func(i, j int) bool { return it.less(syms[i], syms[j]) })
	}
	return syms
}

// Next advances the iterator and returns the next accepted string in
// order, or ok=false once the language (bounded by maxLen) is
// exhausted.
func (it *Iterator[S]) Next() (result []S, ok bool) {
	if it.done {
		return nil, false
	}
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]

		if !top.emitted {
			top.emitted = true
			if it.d.IsFinal(top.state) {
				return append([]S(nil), top.path...), true
			}
		}

		if len(top.path) >= it.maxLen || top.next >= len(top.syms) {
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}

		s := top.syms[top.next]
		top.next++
		next, exists := it.d.Step(top.state, s)
		if !exists {
			continue
		}
		path := append(append([]S(nil), top.path...), s)
		it.stack = append(it.stack, frame[S]{state: next, path: path, syms: it.sortedSymbols(next)})
	}
	it.done = true
	return nil, false
}
