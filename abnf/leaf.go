package abnf

import (
	"fmt"
	"strings"

	"github.com/coregx/langcore/alphabet"
)

// CharVal is a quoted string literal: %s"..." is case-sensitive,
// %i"..." or a bare "..." is case-insensitive (ABNF's default).
type CharVal struct {
	Value         string
	CaseSensitive bool
}

func (*CharVal) isElement() {}

func (c *CharVal) String() string {
	if c.CaseSensitive {
		return `%s"` + c.Value + `"`
	}
	return `"` + c.Value + `"`
}

// NumRange is a single %x/%d/%b range or sequence element: either a
// [Lo,Hi] closed range (Hi==Lo for a single value) given as Unicode
// scalar values regardless of Base, which only controls how the
// literal prints.
type NumRange struct{ Lo, Hi rune }

// NumVal is a numeric terminal: either a concatenated sequence of
// single values (%d13.10) or a single range (%x41-5A); RFC 5234 does
// not allow mixing the two forms in one num-val.
type NumVal struct {
	Base  byte // 'b', 'd', or 'x'
	Seq   []rune
	Range *NumRange // nil when Seq is used
}

func (*NumVal) isElement() {}

func (n *NumVal) String() string {
	var b strings.Builder
	b.WriteByte('%')
	b.WriteByte(n.Base)
	digit := func(r rune) string { return formatNumDigit(n.Base, r) }
	if n.Range != nil {
		if n.Range.Lo == n.Range.Hi {
			b.WriteString(digit(n.Range.Lo))
		} else {
			fmt.Fprintf(&b, "%s-%s", digit(n.Range.Lo), digit(n.Range.Hi))
		}
		return b.String()
	}
	for i, r := range n.Seq {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digit(r))
	}
	return b.String()
}

func formatNumDigit(base byte, r rune) string {
	switch base {
	case 'b':
		return fmt.Sprintf("%b", r)
	case 'd':
		return fmt.Sprintf("%d", r)
	default:
		return fmt.Sprintf("%X", r)
	}
}

// ProseVal is a "<...>" free-text description, used for rules defined
// informally rather than formally; it contributes nothing to Alphabet
// since it has no formal symbol content.
type ProseVal struct {
	Text string
}

func (*ProseVal) isElement() {}

func (p *ProseVal) String() string { return "<" + p.Text + ">" }

// Rulename references another rule by name, resolved against a
// Rulelist (or the builtin table) at compile time.
type Rulename struct {
	Name string
}

func (*Rulename) isElement() {}

func (r *Rulename) String() string { return r.Name }

// --- Alphabet ---

func (c *CharVal) Alphabet(func(string) Node) *alphabet.ClosedRangeAlphabet[rune] {
	out := &alphabet.ClosedRangeAlphabet[rune]{}
	for _, r := range c.Value {
		if c.CaseSensitive {
			out.Insert([]alphabet.Range[rune]{{Lo: r, Hi: r}})
			continue
		}
		lo, hi := caseFold(r)
		out.Insert([]alphabet.Range[rune]{{Lo: lo, Hi: lo}})
		if hi != lo {
			out.Insert([]alphabet.Range[rune]{{Lo: hi, Hi: hi}})
		}
	}
	return out
}

// caseFold returns the lowercase and uppercase forms of an ASCII
// letter; for any other rune both returned values equal r, so callers
// can always insert both without a branch if they don't need to.
func caseFold(r rune) (lower, upper rune) {
	switch {
	case r >= 'A' && r <= 'Z':
		return r + ('a' - 'A'), r
	case r >= 'a' && r <= 'z':
		return r, r-('a'-'A')
	default:
		return r, r
	}
}

func (n *NumVal) Alphabet(func(string) Node) *alphabet.ClosedRangeAlphabet[rune] {
	out := &alphabet.ClosedRangeAlphabet[rune]{}
	if n.Range != nil {
		out.Insert([]alphabet.Range[rune]{{Lo: n.Range.Lo, Hi: n.Range.Hi}})
		return out
	}
	for _, r := range n.Seq {
		out.Insert([]alphabet.Range[rune]{{Lo: r, Hi: r}})
	}
	return out
}

func (p *ProseVal) Alphabet(func(string) Node) *alphabet.ClosedRangeAlphabet[rune] {
	return &alphabet.ClosedRangeAlphabet[rune]{}
}

func (r *Rulename) Alphabet(resolve func(string) Node) *alphabet.ClosedRangeAlphabet[rune] {
	if resolve == nil {
		return &alphabet.ClosedRangeAlphabet[rune]{}
	}
	if def := resolve(r.Name); def != nil {
		return def.Alphabet(resolve)
	}
	return &alphabet.ClosedRangeAlphabet[rune]{}
}

// --- Upcast views for leaves (identical shape for all four; written out
// per type since Go has no shared base to hang them on) ---

func (c *CharVal) AsAlternation() *Alternation { return c.AsRepetition().AsAlternation() }
func (c *CharVal) AsConcatenation() *Concatenation { return c.AsRepetition().AsConcatenation() }
func (c *CharVal) AsRepetition() *Repetition   { return &Repetition{Min: 1, Max: 1, Elem: c} }
func (c *CharVal) AsElement() Element          { return c }
func (c *CharVal) AsGroup() *Group             { return &Group{Inner: c.AsAlternation()} }

func (n *NumVal) AsAlternation() *Alternation { return n.AsRepetition().AsAlternation() }
func (n *NumVal) AsConcatenation() *Concatenation { return n.AsRepetition().AsConcatenation() }
func (n *NumVal) AsRepetition() *Repetition   { return &Repetition{Min: 1, Max: 1, Elem: n} }
func (n *NumVal) AsElement() Element          { return n }
func (n *NumVal) AsGroup() *Group             { return &Group{Inner: n.AsAlternation()} }

func (p *ProseVal) AsAlternation() *Alternation { return p.AsRepetition().AsAlternation() }
func (p *ProseVal) AsConcatenation() *Concatenation { return p.AsRepetition().AsConcatenation() }
func (p *ProseVal) AsRepetition() *Repetition   { return &Repetition{Min: 1, Max: 1, Elem: p} }
func (p *ProseVal) AsElement() Element          { return p }
func (p *ProseVal) AsGroup() *Group             { return &Group{Inner: p.AsAlternation()} }

func (r *Rulename) AsAlternation() *Alternation { return r.AsRepetition().AsAlternation() }
func (r *Rulename) AsConcatenation() *Concatenation { return r.AsRepetition().AsConcatenation() }
func (r *Rulename) AsRepetition() *Repetition   { return &Repetition{Min: 1, Max: 1, Elem: r} }
func (r *Rulename) AsElement() Element          { return r }
func (r *Rulename) AsGroup() *Group             { return &Group{Inner: r.AsAlternation()} }
