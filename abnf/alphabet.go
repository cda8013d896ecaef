package abnf

import "github.com/coregx/langcore/alphabet"

// Alphabet collects the closed-range partition induced by every char-val
// and num-val reachable from a, across all of its alternatives.
func (a *Alternation) Alphabet(resolve func(string) Node) *alphabet.ClosedRangeAlphabet[rune] {
	out := &alphabet.ClosedRangeAlphabet[rune]{}
	for _, c := range a.Concats {
		mergeAlphabet(out, c.Alphabet(resolve))
	}
	return out
}

// Alphabet collects the partition induced by every repetition in the
// concatenation.
func (c *Concatenation) Alphabet(resolve func(string) Node) *alphabet.ClosedRangeAlphabet[rune] {
	out := &alphabet.ClosedRangeAlphabet[rune]{}
	for _, r := range c.Reps {
		mergeAlphabet(out, r.Alphabet(resolve))
	}
	return out
}

// Alphabet delegates to the repeated element; the repeat count itself
// constrains string length, not symbol membership.
func (r *Repetition) Alphabet(resolve func(string) Node) *alphabet.ClosedRangeAlphabet[rune] {
	return r.Elem.Alphabet(resolve)
}

// Alphabet delegates to the parenthesized alternation.
func (g *Group) Alphabet(resolve func(string) Node) *alphabet.ClosedRangeAlphabet[rune] {
	return g.Inner.Alphabet(resolve)
}

// Alphabet delegates to the bracketed alternation.
func (o *Option) Alphabet(resolve func(string) Node) *alphabet.ClosedRangeAlphabet[rune] {
	return o.Inner.Alphabet(resolve)
}

// mergeAlphabet folds src's classes into dst by re-inserting each one;
// Insert's boundary-splitting behavior means repeated folding converges
// to the coarsest common refinement of everything inserted so far.
func mergeAlphabet(dst, src *alphabet.ClosedRangeAlphabet[rune]) {
	for _, class := range src.Classes() {
		dst.Insert(class)
	}
}
