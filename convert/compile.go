// Package convert compiles ABNF grammars into automata and regex forms:
// ABNF node → NFA/DFA (resolving rulenames against a rule table and the
// sixteen core builtins, rejecting a recursive rule graph as not
// regular), DFA → SimpleRegex (state elimination), and SimpleRegex →
// REPattern → dialect string.
package convert

import (
	"strings"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/langcore/abnf"
	"github.com/coregx/langcore/dfa"
	"github.com/coregx/langcore/langerr"
	"github.com/coregx/langcore/nfa"
)

// Compiled is the result of compiling a grammar rule to a DFA. Literals
// is non-nil only when some alternation reached during compilation
// reduced to a flat set of case-sensitive literal branches — a fast
// byte-oriented matcher over that literal set, built alongside (not
// instead of) the DFA, see DESIGN.md for why the DFA itself cannot be
// built directly from ahocorasick's opaque Automaton.
type Compiled struct {
	DFA      *dfa.DFA[rune]
	Literals []*LiteralIndex
}

// CompileRulelist compiles the rule named start (a rulelist entry or one
// of the sixteen core builtins) to a DFA, resolving every rulename it
// transitively references. A cycle in the rule graph is reported as
// langerr.NotRegularError; an undefined rulename as
// langerr.UndefinedRuleError.
func CompileRulelist(rules *abnf.Rulelist, start string) (*Compiled, error) {
	c := newCompiler(rules)
	n, err := c.compileRule(start)
	if err != nil {
		return nil, err
	}
	return &Compiled{DFA: dfa.FromNFA(n), Literals: c.literals}, nil
}

// CompileNode compiles a standalone ABNF node (not looked up from a rule
// table) to a DFA; rulenames within it resolve to the core builtins and,
// if rules is non-nil, to rules; any other name is reported as undefined.
func CompileNode(node abnf.Node, rules *abnf.Rulelist) (*Compiled, error) {
	c := newCompiler(rules)
	n, err := c.compileAny(node)
	if err != nil {
		return nil, err
	}
	return &Compiled{DFA: dfa.FromNFA(n), Literals: c.literals}, nil
}

type compiler struct {
	rules    *abnf.Rulelist
	cache    map[string]*nfa.NFA[rune]
	stack    map[string]bool
	order    []string
	literals []*LiteralIndex
}

func newCompiler(rules *abnf.Rulelist) *compiler {
	return &compiler{
		rules: rules,
		cache: make(map[string]*nfa.NFA[rune]),
		stack: make(map[string]bool),
	}
}

func (c *compiler) compileRule(name string) (*nfa.NFA[rune], error) {
	key := strings.ToLower(name)
	if n, ok := c.cache[key]; ok {
		return n, nil
	}
	if c.stack[key] {
		return nil, &langerr.NotRegularError{Rule: name, Cycle: append(append([]string(nil), c.order...), name)}
	}
	if d, ok := abnf.BuiltinDFA(name); ok {
		n := dfaToNFA(d)
		c.cache[key] = n
		return n, nil
	}
	var def *abnf.Rule
	if c.rules != nil {
		def = c.rules.Lookup(name)
	}
	if def == nil {
		return nil, &langerr.UndefinedRuleError{Rule: name}
	}

	c.stack[key] = true
	c.order = append(c.order, name)
	n, err := c.compileAlternation(def.Def)
	c.order = c.order[:len(c.order)-1]
	delete(c.stack, key)
	if err != nil {
		return nil, err
	}
	c.cache[key] = n
	return n, nil
}

func (c *compiler) compileAny(node abnf.Node) (*nfa.NFA[rune], error) {
	switch v := node.(type) {
	case *abnf.Alternation:
		return c.compileAlternation(v)
	case *abnf.Concatenation:
		return c.compileAlternation(v.AsAlternation())
	case *abnf.Repetition:
		return c.compileRepetition(v)
	case *abnf.Group:
		return c.compileAlternation(v.Inner)
	case *abnf.Option:
		n, err := c.compileAlternation(v.Inner)
		if err != nil {
			return nil, err
		}
		return n.Optional(), nil
	case *abnf.Rulename:
		return c.compileRule(v.Name)
	case *abnf.CharVal:
		return c.compileCharVal(v), nil
	case *abnf.NumVal:
		return c.compileNumVal(v), nil
	case *abnf.ProseVal:
		// A prose-val has no formal definition; it matches nothing, the
		// same stance RFC 5234 takes ("the matching process... is
		// implementation-defined" — here that means unmatchable).
		return nfa.NewEmpty[rune](), nil
	default:
		return nil, &langerr.InvalidAutomatonError{Reason: "unrecognized ABNF node type"}
	}
}

func (c *compiler) compileAlternation(a *abnf.Alternation) (*nfa.NFA[rune], error) {
	if lits, ok := flatLiterals(a); ok {
		if idx, err := newLiteralIndex(lits); err == nil {
			c.literals = append(c.literals, idx)
		}
	}

	parts := make([]*nfa.NFA[rune], 0, len(a.Concats))
	for _, concat := range a.Concats {
		n, err := c.compileConcatenation(concat)
		if err != nil {
			return nil, err
		}
		parts = append(parts, n)
	}
	if len(parts) == 0 {
		return nfa.NewEmpty[rune](), nil
	}
	return parts[0].Union(parts[1:]...), nil
}

func (c *compiler) compileConcatenation(concat *abnf.Concatenation) (*nfa.NFA[rune], error) {
	parts := make([]*nfa.NFA[rune], 0, len(concat.Reps))
	for _, rep := range concat.Reps {
		n, err := c.compileRepetition(rep)
		if err != nil {
			return nil, err
		}
		parts = append(parts, n)
	}
	if len(parts) == 0 {
		return nfa.NewEpsilon[rune](), nil
	}
	return parts[0].Concatenate(parts[1:]...), nil
}

func (c *compiler) compileRepetition(rep *abnf.Repetition) (*nfa.NFA[rune], error) {
	elem, err := c.compileAny(rep.Elem)
	if err != nil {
		return nil, err
	}
	if rep.List {
		return repeatWithSeparator(elem, listSeparator(), rep.Min, rep.Max), nil
	}
	switch {
	case rep.Min == 1 && rep.Max == 1:
		return elem, nil
	case rep.Min == 0 && rep.Max == 1:
		return elem.Optional(), nil
	case rep.Max < 0:
		return elem.RepeatingAtLeast(rep.Min), nil
	case rep.Min == rep.Max:
		return elem.Repeating(rep.Min), nil
	default:
		return elem.RepeatingRange(rep.Min, rep.Max), nil
	}
}

func (c *compiler) compileCharVal(cv *abnf.CharVal) *nfa.NFA[rune] {
	if cv.Value == "" {
		return nfa.NewEpsilon[rune]()
	}
	runes := []rune(cv.Value)
	if cv.CaseSensitive {
		return nfa.NewVerbatim(runes)
	}
	parts := make([]*nfa.NFA[rune], len(runes))
	for i, r := range runes {
		lo, up := caseFoldRune(r)
		if lo == up {
			parts[i] = nfa.NewSymbol(r)
		} else {
			parts[i] = nfa.NewSymbol(lo).Union(nfa.NewSymbol(up))
		}
	}
	return parts[0].Concatenate(parts[1:]...)
}

func caseFoldRune(r rune) (lower, upper rune) {
	switch {
	case r >= 'A' && r <= 'Z':
		return r + ('a' - 'A'), r
	case r >= 'a' && r <= 'z':
		return r, r - ('a' - 'A')
	default:
		return r, r
	}
}

func (c *compiler) compileNumVal(nv *abnf.NumVal) *nfa.NFA[rune] {
	if nv.Range != nil {
		if nv.Range.Lo == nv.Range.Hi {
			return nfa.NewSymbol(nv.Range.Lo)
		}
		parts := make([]*nfa.NFA[rune], 0, int(nv.Range.Hi-nv.Range.Lo)+1)
		for r := nv.Range.Lo; r <= nv.Range.Hi; r++ {
			parts = append(parts, nfa.NewSymbol(r))
		}
		return parts[0].Union(parts[1:]...)
	}
	return nfa.NewVerbatim(nv.Seq)
}

// listSeparator is the HTTP list-extension's separator: a comma
// surrounded by optional whitespace.
func listSeparator() *nfa.NFA[rune] {
	ws := nfa.NewSymbol(' ').Union(nfa.NewSymbol('\t')).Star()
	return ws.Concatenate(nfa.NewSymbol(','), ws)
}

// repeatWithSeparator builds the NFA for "min#max elem", min..max copies
// of elem joined by sep.
func repeatWithSeparator(elem, sep *nfa.NFA[rune], min, max int) *nfa.NFA[rune] {
	exactly := func(v int) *nfa.NFA[rune] {
		n := elem
		for i := 1; i < v; i++ {
			n = n.Concatenate(sep, elem)
		}
		return n
	}
	if max < 0 {
		unbounded := elem.Concatenate(sep.Concatenate(elem).Star())
		if min == 0 {
			return unbounded.Optional()
		}
		if min == 1 {
			return unbounded
		}
		return exactly(min - 1).Concatenate(sep, unbounded)
	}
	alts := make([]*nfa.NFA[rune], 0, max-min+1)
	for v := min; v <= max; v++ {
		if v == 0 {
			alts = append(alts, nfa.NewEpsilon[rune]())
			continue
		}
		alts = append(alts, exactly(v))
	}
	if len(alts) == 0 {
		return nfa.NewEmpty[rune]()
	}
	return alts[0].Union(alts[1:]...)
}

// dfaToNFA rebuilds a DFA as an NFA using only the DFA's public API, so a
// compiled builtin can be spliced into the surrounding NFA algebra
// (concatenated, repeated, unioned with sibling alternatives).
func dfaToNFA(d *dfa.DFA[rune]) *nfa.NFA[rune] {
	b := nfa.NewBuilder[rune]()
	for i := 0; i < d.States(); i++ {
		b.AddState()
	}
	b.SetInitial(d.Initial())
	for i := 0; i < d.States(); i++ {
		id := nfa.StateID(i)
		if d.IsFinal(id) {
			b.SetFinal(id)
		}
		for _, s := range d.OutgoingSymbols(id) {
			t, _ := d.Step(id, s)
			b.AddTransition(id, s, t)
		}
	}
	n, err := b.Build()
	if err != nil {
		// d is a structurally valid DFA by its own invariants, so a
		// rebuild from its own public API cannot fail.
		panic(err)
	}
	return n
}

// flatLiterals reports the set of literal strings an alternation reduces
// to, when every branch is a chain of case-sensitive char-vals (so the
// literal bytes are unambiguous); returns ok=false otherwise, or when
// there are fewer than two branches (nothing to index).
func flatLiterals(a *abnf.Alternation) ([]string, bool) {
	lits := make([]string, 0, len(a.Concats))
	for _, concat := range a.Concats {
		s, ok := literalOf(concat)
		if !ok {
			return nil, false
		}
		lits = append(lits, s)
	}
	return lits, len(lits) >= 2
}

func literalOf(concat *abnf.Concatenation) (string, bool) {
	var b strings.Builder
	for _, rep := range concat.Reps {
		if rep.List || rep.Min != 1 || rep.Max != 1 {
			return "", false
		}
		cv, ok := rep.Elem.(*abnf.CharVal)
		if !ok || !cv.CaseSensitive {
			return "", false
		}
		b.WriteString(cv.Value)
	}
	return b.String(), true
}

// LiteralIndex wraps an ahocorasick.Automaton over one flat literal set
// found during compilation, for a caller who wants fast byte-oriented
// substring matching against that literal set directly rather than
// walking the (rune-keyed) compiled DFA.
type LiteralIndex struct {
	Literals  []string
	automaton *ahocorasick.Automaton
}

func newLiteralIndex(lits []string) (*LiteralIndex, error) {
	builder := ahocorasick.NewBuilder()
	for _, lit := range lits {
		builder.AddPattern([]byte(lit))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &LiteralIndex{Literals: lits, automaton: auto}, nil
}

// IsMatch reports whether any literal in the index occurs in haystack.
func (idx *LiteralIndex) IsMatch(haystack []byte) bool {
	return idx.automaton.IsMatch(haystack)
}
