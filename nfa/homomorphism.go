package nfa

// Homomorphism rewrites n over a new symbol type T, producing the NFA
// accepting { h(w) | w ∈ L(n) } for the symbol-to-sequence mapping h.
// Each transition is replaced by a small chain of states realizing h's
// image sequence for that transition's symbol; unmapped symbols are
// dropped (their transitions vanish, since their image is undefined).
//
// This implements the common single-symbol-key case described in the
// design (h maps one source symbol to a target sequence). Overlapping
// multi-symbol source keys are not supported; a mapping is applied per
// transition, which is exact whenever h's domain is single symbols.
func Homomorphism[S comparable, T comparable](n *NFA[S], h map[S][]T) *NFA[T] {
	// Every original state survives with the same id; new intermediate
	// states are appended after them to realize multi-symbol images.
	out := make([]nfaState[T], len(n.states))
	for i := range out {
		out[i] = newState[T]()
	}

	for id, st := range n.states {
		for sym, targets := range st.trans {
			image, ok := h[sym]
			for _, tgt := range targets {
				if !ok || len(image) == 0 {
					// Unmapped symbol or empty image: no surviving edge.
					continue
				}
				if len(image) == 1 {
					out[id].trans[image[0]] = append(out[id].trans[image[0]], tgt)
					continue
				}
				// Chain of fresh states realizing image[0..n-1] -> tgt.
				cur := StateID(id)
				for k := 0; k < len(image)-1; k++ {
					next := StateID(len(out))
					out = append(out, newState[T]())
					out[cur].trans[image[k]] = append(out[cur].trans[image[k]], next)
					cur = next
				}
				out[cur].trans[image[len(image)-1]] = append(out[cur].trans[image[len(image)-1]], tgt)
			}
		}
		out[id].eps = append(out[id].eps, st.eps...)
	}

	final := make(map[StateID]bool, len(n.final))
	for f := range n.final {
		final[f] = true
	}

	return &NFA[T]{
		states:  out,
		initial: append([]StateID(nil), n.initial...),
		final:   final,
	}
}
