package pdfa

import "github.com/coregx/langcore/dfa"

// deadComponent marks a per-language slot as having fallen into that
// language's oracle sink, distinct from any real state ID so it never
// collides with a live state when used as part of a lockstep-state key.
const deadComponent = ^dfa.StateID(0)

// CombinedDFA walks every language's component DFA in lockstep and
// builds a single DFA over the same symbol type, where a state is final
// iff some still-alive language is accepting there. This is
// the single-automaton shape a lexer actually runs: one step function
// instead of k, with priority (languages[0] wins ties) baked into which
// component's acceptance is consulted first.
//
// CombinedDFA also returns, for each resulting state, the label index
// (into languages) responsible for any acceptance there, or -1 if the
// state is not final for any language. A caller can then call
// (*dfa.DFA).MinimizeWithPartition grouping states by that label so
// minimization never merges two classes that should emit different
// labels, even though both look equally "final" to the plain DFA
// algebra.
func CombinedDFA[S comparable](languages []*dfa.DFA[S]) (combined *dfa.DFA[S], labelOf map[dfa.StateID]int) {
	key := func(ids []dfa.StateID) string {
		b := make([]byte, 0, len(ids)*5)
		for _, id := range ids {
			b = append(b, byte(id>>24), byte(id>>16), byte(id>>8), byte(id), '|')
		}
		return string(b)
	}

	start := make([]dfa.StateID, len(languages))
	for i, l := range languages {
		start[i] = l.Initial()
	}
	idOf := map[string]dfa.StateID{key(start): 0}
	order := [][]dfa.StateID{start}
	labelOf = make(map[dfa.StateID]int)

	b := dfa.NewBuilder[S]()

	for i := 0; i < len(order); i++ {
		cur := order[i]
		b.AddState()

		label := -1
		for li, l := range languages {
			if cur[li] != deadComponent && l.IsFinal(cur[li]) {
				label = li
				break
			}
		}
		labelOf[dfa.StateID(i)] = label
		if label >= 0 {
			b.SetFinal(dfa.StateID(i))
		}

		alphabet := make(map[S]bool)
		for li, l := range languages {
			if cur[li] == deadComponent {
				continue
			}
			for _, s := range l.OutgoingSymbols(cur[li]) {
				alphabet[s] = true
			}
		}

		for sym := range alphabet {
			next := make([]dfa.StateID, len(languages))
			anyAlive := false
			for li, l := range languages {
				if cur[li] == deadComponent {
					next[li] = deadComponent
					continue
				}
				t, ok := l.Step(cur[li], sym)
				if !ok {
					next[li] = deadComponent
					continue
				}
				next[li] = t
				anyAlive = true
			}
			if !anyAlive {
				continue
			}
			k := key(next)
			id, ok := idOf[k]
			if !ok {
				id = dfa.StateID(len(order))
				idOf[k] = id
				order = append(order, next)
			}
			b.AddTransition(dfa.StateID(i), sym, id)
		}
	}

	b.SetInitial(0)
	combined, err := b.Build()
	if err != nil {
		panic(err)
	}
	return combined, labelOf
}
