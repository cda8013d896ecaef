package convert

import "github.com/coregx/langcore/regexast"

// ToSimpleRegex converts c's DFA to a SimpleRegex via Brzozowski-style
// state elimination (delegating to dfa.DFA.ToRegex).
func (c *Compiled) ToSimpleRegex() *regexast.SimpleRegex[rune] {
	return c.DFA.ToRegex()
}

// ToDialect renders c's DFA as a dialect-specific regex source string:
// DFA → SimpleRegex (state elimination) → REPattern (range/class
// coalescing) → dialect encoding.
func (c *Compiled) ToDialect(d regexast.Dialect) string {
	simple := c.ToSimpleRegex()
	pattern := regexast.CoalesceAdjacent(regexast.FromSimple(simple))
	return d.Encode(pattern)
}

// ToDialectWhole is ToDialect, anchored for a whole-input match test.
func (c *Compiled) ToDialectWhole(d regexast.Dialect) string {
	simple := c.ToSimpleRegex()
	pattern := regexast.CoalesceAdjacent(regexast.FromSimple(simple))
	return d.EncodeWhole(pattern)
}
