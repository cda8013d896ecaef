// Package abnf implements an RFC 5234 ABNF parser and AST, extended with
// RFC 7405 case-sensitive/insensitive char-val and an HTTP-style
// `n#m element` list notation. The AST is fixed to rune as its symbol
// type: ABNF grammars describe textual protocols over Unicode scalar
// values, so a generic Symbol parameter would only add ceremony no
// caller of this package needs.
package abnf

import "github.com/coregx/langcore/alphabet"

// Node is the capability every AST node exposes: a canonical textual
// form that round-trips through Parse, the alphabet of symbols it
// constrains, and the five upcast views that let algebra written
// against one syntactic level (e.g. "operate on an Alternation") accept
// any node at all, per the data model's upcast-view requirement.
type Node interface {
	String() string

	// Alphabet returns the partition of symbols this node's char-val and
	// num-val leaves induce, collecting through groups/options/
	// alternations/concatenations/repetitions. A Rulename contributes
	// nothing unless resolve is non-nil, in which case it is followed to
	// its definition (resolve should detect cycles itself; Alphabet does
	// not).
	Alphabet(resolve func(name string) Node) *alphabet.ClosedRangeAlphabet[rune]

	AsAlternation() *Alternation
	AsConcatenation() *Concatenation
	AsRepetition() *Repetition
	AsElement() Element
	AsGroup() *Group
}

// Element is the marker interface for element-level nodes: rulename,
// group, option, char-val, num-val, prose-val. Every Element is also a
// Node (and so already has AsAlternation/AsConcatenation/etc.).
type Element interface {
	Node
	isElement()
}

// Alternation is an ordered list of concatenations joined by "/".
type Alternation struct {
	Concats []*Concatenation
}

// Concatenation is an ordered list of repetitions joined by whitespace.
type Concatenation struct {
	Reps []*Repetition
}

// Repetition is an element repeated Min..Max times (Max < 0 means
// unbounded), optionally using list notation: when List is true, the
// repeated copies of Elem are joined by a comma surrounded by optional
// whitespace instead of being adjacent.
type Repetition struct {
	Min, Max int
	List     bool
	Elem     Element
}

// Group is a parenthesized alternation: "(" alternation ")". Printed
// inline in the position it appears in a concatenation.
type Group struct {
	Inner *Alternation
}

func (*Group) isElement() {}

// Option is a bracketed alternation: "[" alternation "]", equivalent to
// Repetition{Min: 0, Max: 1, Elem: group.AsElement()} but kept as its
// own node so it prints as "[...]" rather than "*1(...)".
type Option struct {
	Inner *Alternation
}

func (*Option) isElement() {}

// --- Upcast views ---

func (a *Alternation) AsAlternation() *Alternation { return a }

func (a *Alternation) AsConcatenation() *Concatenation {
	if len(a.Concats) == 1 {
		return a.Concats[0]
	}
	return &Concatenation{Reps: []*Repetition{a.AsRepetition()}}
}

func (a *Alternation) AsRepetition() *Repetition {
	return &Repetition{Min: 1, Max: 1, Elem: a.AsElement()}
}

func (a *Alternation) AsElement() Element {
	if len(a.Concats) == 1 {
		return a.Concats[0].AsElement()
	}
	return &Group{Inner: a}
}

func (a *Alternation) AsGroup() *Group { return &Group{Inner: a} }

func (c *Concatenation) AsAlternation() *Alternation {
	return &Alternation{Concats: []*Concatenation{c}}
}

func (c *Concatenation) AsConcatenation() *Concatenation { return c }

func (c *Concatenation) AsRepetition() *Repetition {
	if len(c.Reps) == 1 {
		return c.Reps[0]
	}
	return &Repetition{Min: 1, Max: 1, Elem: c.AsElement()}
}

func (c *Concatenation) AsElement() Element {
	if len(c.Reps) == 1 {
		return c.Reps[0].AsElement()
	}
	return &Group{Inner: c.AsAlternation()}
}

func (c *Concatenation) AsGroup() *Group { return &Group{Inner: c.AsAlternation()} }

func (r *Repetition) AsAlternation() *Alternation { return r.AsConcatenation().AsAlternation() }

func (r *Repetition) AsConcatenation() *Concatenation {
	return &Concatenation{Reps: []*Repetition{r}}
}

func (r *Repetition) AsRepetition() *Repetition { return r }

func (r *Repetition) AsElement() Element {
	if r.Min == 1 && r.Max == 1 && !r.List {
		return r.Elem
	}
	return &Group{Inner: r.AsAlternation()}
}

func (r *Repetition) AsGroup() *Group { return &Group{Inner: r.AsAlternation()} }

func (g *Group) AsAlternation() *Alternation { return g.Inner }
func (g *Group) AsConcatenation() *Concatenation { return g.Inner.AsConcatenation() }
func (g *Group) AsRepetition() *Repetition       { return g.Inner.AsRepetition() }
func (g *Group) AsElement() Element              { return g }
func (g *Group) AsGroup() *Group                 { return g }

func (o *Option) AsAlternation() *Alternation { return o.Inner }
func (o *Option) AsConcatenation() *Concatenation {
	return &Concatenation{Reps: []*Repetition{o.AsRepetition()}}
}
func (o *Option) AsRepetition() *Repetition {
	return &Repetition{Min: 0, Max: 1, Elem: o.Inner.AsElement()}
}
func (o *Option) AsElement() Element { return o }
func (o *Option) AsGroup() *Group    { return &Group{Inner: o.Inner} }
