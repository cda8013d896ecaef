package dfa

import "github.com/coregx/langcore/regexast"

// edge is one (from, to) arc in the generalized transition graph used by
// state elimination; label is expressed as a SimpleRegex so that after a
// few rounds of elimination an edge's label is no longer a single
// symbol but a whole sub-expression.
type edge[S comparable] struct {
	from, to int
	label    *regexast.SimpleRegex[S]
}

// ToRegex converts d to an equivalent SimpleRegex via Brzozowski-style
// state elimination: add a fresh start and single accept state bridged
// to d's initial/finals by ε (epsilon-labeled) edges, then repeatedly
// remove an interior state, folding its incoming/outgoing/self-loop
// edges into direct edges between its neighbors, until only start and
// accept remain; the edge connecting them is the answer. Disconnected
// states (unreachable, or unable to reach a final) are dropped first so
// elimination never has to fold a dead end.
func (d *DFA[S]) ToRegex() *regexast.SimpleRegex[S] {
	live := d.liveStates()
	if !live[d.initial] {
		return regexast.Empty[S]()
	}

	// Local numbering: 0 = start, 1 = accept, 2.. = live DFA states in
	// stable order.
	var order []StateID
	idx := make(map[StateID]int)
	for id := range d.states {
		sid := StateID(id)
		if live[sid] {
			idx[sid] = len(order) + 2
			order = append(order, sid)
		}
	}
	start, accept := 0, 1
	n := len(order) + 2

	// adjacency[from][to] = combined label, merged via Union on insert.
	adjacency := make([]map[int]*regexast.SimpleRegex[S], n)
	for i := range adjacency {
		adjacency[i] = make(map[int]*regexast.SimpleRegex[S])
	}
	addEdge := func(from, to int, label *regexast.SimpleRegex[S]) {
		if existing, ok := adjacency[from][to]; ok {
			adjacency[from][to] = regexast.Union(existing, label)
		} else {
			adjacency[from][to] = label
		}
	}

	addEdge(start, idx[d.initial], regexast.Epsilon[S]())
	for _, sid := range order {
		if d.final[sid] {
			addEdge(idx[sid], accept, regexast.Epsilon[S]())
		}
		for _, s := range d.OutgoingSymbols(sid) {
			t, _ := d.Step(sid, s)
			if !live[t] {
				continue
			}
			addEdge(idx[sid], idx[t], regexast.Symbol(s))
		}
	}

	// Eliminate every interior state (everything except start/accept) in
	// numbering order; order does not affect correctness, only the shape
	// of the resulting expression.
	for elim := 2; elim < n; elim++ {
		self, hasSelf := adjacency[elim][elim]
		var loop *regexast.SimpleRegex[S]
		if hasSelf {
			loop = regexast.Star(self)
		}
		for from, viaLabel := range inEdges(adjacency, elim) {
			if from == elim {
				continue
			}
			for to, outLabel := range adjacency[elim] {
				if to == elim {
					continue
				}
				var through *regexast.SimpleRegex[S]
				if loop != nil {
					through = regexast.Concatenate(viaLabel, loop, outLabel)
				} else {
					through = regexast.Concatenate(viaLabel, outLabel)
				}
				addEdge(from, to, through)
			}
		}
		for from := range adjacency {
			delete(adjacency[from], elim)
		}
		adjacency[elim] = map[int]*regexast.SimpleRegex[S]{}
	}

	if result, ok := adjacency[start][accept]; ok {
		return result
	}
	return regexast.Empty[S]()
}

func inEdges[S comparable](adjacency []map[int]*regexast.SimpleRegex[S], to int) map[int]*regexast.SimpleRegex[S] {
	out := make(map[int]*regexast.SimpleRegex[S])
	for from, targets := range adjacency {
		if label, ok := targets[to]; ok {
			out[from] = label
		}
	}
	return out
}

// liveStates returns the set of states both reachable from the initial
// state and able to reach some final state.
func (d *DFA[S]) liveStates() map[StateID]bool {
	reachable := d.reachable()

	canReachFinal := make(map[StateID]bool)
	changed := true
	for changed {
		changed = false
		for id := range reachable {
			if canReachFinal[id] {
				continue
			}
			if d.final[id] {
				canReachFinal[id] = true
				changed = true
				continue
			}
			for _, t := range d.states[id].trans {
				if canReachFinal[t] {
					canReachFinal[id] = true
					changed = true
					break
				}
			}
		}
	}
	live := make(map[StateID]bool)
	for id := range reachable {
		if canReachFinal[id] {
			live[id] = true
		}
	}
	return live
}
