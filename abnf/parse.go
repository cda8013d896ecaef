package abnf

import (
	"strconv"
	"strings"

	"github.com/coregx/langcore/langerr"
)

// parser is a backtracking recursive-descent parser over a rune slice.
// Each matchX method attempts to consume its grammar production starting
// at p.pos, restoring p.pos on failure; p.fail tracks the farthest
// offset reached and what was expected there, for error reporting.
type parser struct {
	s        []rune
	pos      int
	farthest int
	expected map[string]bool
}

func newParser(input string) *parser {
	return &parser{s: []rune(input), expected: make(map[string]bool)}
}

func (p *parser) fail(kind string) {
	if p.pos > p.farthest {
		p.farthest = p.pos
		p.expected = map[string]bool{kind: true}
	} else if p.pos == p.farthest {
		p.expected[kind] = true
	}
}

func (p *parser) eof() bool { return p.pos >= len(p.s) }

func (p *parser) peek() (rune, bool) {
	if p.eof() {
		return 0, false
	}
	return p.s[p.pos], true
}

func (p *parser) lit(s string) bool {
	rs := []rune(s)
	if p.pos+len(rs) > len(p.s) {
		p.fail(s)
		return false
	}
	for i, r := range rs {
		if p.s[p.pos+i] != r {
			p.fail(s)
			return false
		}
	}
	p.pos += len(rs)
	return true
}

// litFold matches s case-insensitively (used for the num-val base letters
// b, d and x, which ABNF accepts in either case).
func (p *parser) litFold(s string) bool {
	rs := []rune(s)
	if p.pos+len(rs) > len(p.s) {
		p.fail(s)
		return false
	}
	for i, r := range rs {
		lo, up := caseFold(r)
		c := p.s[p.pos+i]
		if c != lo && c != up {
			p.fail(s)
			return false
		}
	}
	p.pos += len(rs)
	return true
}

func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isAlpha(r rune) bool  { return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') }
func isHexDig(r rune) bool { return isDigit(r) || (r >= 'A' && r <= 'F') || (r >= 'a' && r <= 'f') }
func isBit(r rune) bool    { return r == '0' || r == '1' }
func isWSP(r rune) bool    { return r == ' ' || r == '\t' }
func isVChar(r rune) bool  { return r >= 0x21 && r <= 0x7E }

func (p *parser) matchWhile(pred func(rune) bool) string {
	start := p.pos
	for {
		r, ok := p.peek()
		if !ok || !pred(r) {
			break
		}
		p.pos++
	}
	return string(p.s[start:p.pos])
}

func (p *parser) matchWhile1(pred func(rune) bool, kind string) (string, bool) {
	start := p.pos
	s := p.matchWhile(pred)
	if s == "" {
		p.pos = start
		p.fail(kind)
		return "", false
	}
	return s, true
}

// cNL consumes a comment or CRLF. A bare LF is also always accepted; there
// is no CRLF-only mode.
func (p *parser) cNL() bool {
	save := p.pos
	if p.matchComment() {
		return true
	}
	p.pos = save
	if p.lit("\r\n") {
		return true
	}
	p.pos = save
	if p.lit("\n") { // bare LF
		return true
	}
	p.pos = save
	p.fail("CRLF")
	return false
}

func (p *parser) matchComment() bool {
	save := p.pos
	if !p.lit(";") {
		return false
	}
	p.matchWhile(func(r rune) bool { return isWSP(r) || isVChar(r) })
	if !p.cNL() {
		p.pos = save
		return false
	}
	return true
}

// cWSP consumes one "c-wsp": WSP, or a folded line (c-nl WSP).
func (p *parser) cWSP() bool {
	if r, ok := p.peek(); ok && isWSP(r) {
		p.pos++
		return true
	}
	save := p.pos
	if p.cNL() {
		if r, ok := p.peek(); ok && isWSP(r) {
			p.pos++
			return true
		}
	}
	p.pos = save
	return false
}

func (p *parser) skipCWSP() {
	for p.cWSP() {
	}
}

// --- Rulelist / Rule ---

// ParseRulelist parses a complete rulelist, folding "=/" extensions and
// rejecting any trailing unparsed input.
func ParseRulelist(input string) (*Rulelist, error) {
	p := newParser(input)
	l := NewRulelist()
	matchedAny := false
	for {
		save := p.pos
		if name, def, incremental, ok := p.matchRule(); ok {
			if incremental {
				l.Extend(name, def)
			} else {
				l.Define(name, def)
			}
			matchedAny = true
			continue
		}
		p.pos = save
		if p.skipBlankLine() {
			continue
		}
		break
	}
	p.skipCWSP()
	if !p.eof() || !matchedAny {
		return nil, p.parseError()
	}
	return l, nil
}

func (p *parser) skipBlankLine() bool {
	save := p.pos
	p.matchWhile(isWSP)
	if p.cNL() {
		return true
	}
	p.pos = save
	return false
}

func (p *parser) parseError() *langerr.ParseError {
	expected := make([]string, 0, len(p.expected))
	for k := range p.expected {
		expected = append(expected, k)
	}
	return &langerr.ParseError{
		Offset:    p.farthest,
		Expected:  expected,
		Remainder: string(p.s[p.farthest:]),
	}
}

// matchRule parses "rulename defined-as elements c-nl" and reports
// whether the defined-as was "=/" (incremental).
func (p *parser) matchRule() (name string, def *Alternation, incremental bool, ok bool) {
	save := p.pos
	rn, rnOK := p.matchRulename()
	if !rnOK {
		p.pos = save
		return "", nil, false, false
	}
	p.skipCWSP()
	incr := false
	if p.lit("=/") {
		incr = true
	} else if p.lit("=") {
		incr = false
	} else {
		p.pos = save
		p.fail("defined-as")
		return "", nil, false, false
	}
	p.skipCWSP()
	alt, altOK := p.matchAlternation()
	if !altOK {
		p.pos = save
		return "", nil, false, false
	}
	p.skipCWSP()
	if !p.cNL() {
		p.pos = save
		return "", nil, false, false
	}
	return rn, alt, incr, true
}

func (p *parser) matchRulename() (string, bool) {
	save := p.pos
	r, ok := p.peek()
	if !ok || !isAlpha(r) {
		p.fail("rulename")
		return "", false
	}
	p.pos++
	p.matchWhile(func(r rune) bool { return isAlpha(r) || isDigit(r) || r == '-' })
	return string(p.s[save:p.pos]), true
}

// --- Alternation / Concatenation / Repetition ---

func (p *parser) matchAlternation() (*Alternation, bool) {
	first, ok := p.matchConcatenation()
	if !ok {
		return nil, false
	}
	concats := []*Concatenation{first}
	for {
		save := p.pos
		p.skipCWSP()
		if !p.lit("/") {
			p.pos = save
			break
		}
		p.skipCWSP()
		c, ok := p.matchConcatenation()
		if !ok {
			p.pos = save
			break
		}
		concats = append(concats, c)
	}
	return &Alternation{Concats: concats}, true
}

func (p *parser) matchConcatenation() (*Concatenation, bool) {
	first, ok := p.matchRepetition()
	if !ok {
		return nil, false
	}
	reps := []*Repetition{first}
	for {
		save := p.pos
		n := 0
		for p.cWSP() {
			n++
		}
		if n == 0 {
			p.pos = save
			break
		}
		r, ok := p.matchRepetition()
		if !ok {
			p.pos = save
			break
		}
		reps = append(reps, r)
	}
	return &Concatenation{Reps: reps}, true
}

func (p *parser) matchRepetition() (*Repetition, bool) {
	save := p.pos
	min, max, list, hasRepeat := p.matchRepeat()
	elem, ok := p.matchElement()
	if !ok {
		p.pos = save
		return nil, false
	}
	if !hasRepeat {
		min, max = 1, 1
	}
	return &Repetition{Min: min, Max: max, List: list, Elem: elem}, true
}

// matchRepeat parses an optional repeat count: "n", "n*m", "*m", "n*",
// "*", or the list-extension forms "n#m", "#m", "n#", "#".
func (p *parser) matchRepeat() (min, max int, list, ok bool) {
	save := p.pos
	nStr := p.matchWhile(isDigit)

	if p.lit("#") {
		mStr := p.matchWhile(isDigit)
		min = 0
		if nStr != "" {
			min, _ = strconv.Atoi(nStr)
		}
		max = -1
		if mStr != "" {
			max, _ = strconv.Atoi(mStr)
		}
		return min, max, true, true
	}

	if p.lit("*") {
		mStr := p.matchWhile(isDigit)
		min = 0
		if nStr != "" {
			min, _ = strconv.Atoi(nStr)
		}
		max = -1
		if mStr != "" {
			max, _ = strconv.Atoi(mStr)
		}
		return min, max, false, true
	}

	if nStr != "" {
		n, _ := strconv.Atoi(nStr)
		return n, n, false, true
	}

	p.pos = save
	return 0, 0, false, false
}

func (p *parser) matchElement() (Element, bool) {
	if rn, ok := p.matchRulename(); ok {
		return &Rulename{Name: rn}, true
	}
	if g, ok := p.matchGroup(); ok {
		return g, true
	}
	if o, ok := p.matchOption(); ok {
		return o, true
	}
	if c, ok := p.matchCharVal(); ok {
		return c, true
	}
	if n, ok := p.matchNumVal(); ok {
		return n, true
	}
	if pv, ok := p.matchProseVal(); ok {
		return pv, true
	}
	p.fail("element")
	return nil, false
}

func (p *parser) matchGroup() (*Group, bool) {
	save := p.pos
	if !p.lit("(") {
		p.pos = save
		return nil, false
	}
	p.skipCWSP()
	alt, ok := p.matchAlternation()
	if !ok {
		p.pos = save
		return nil, false
	}
	p.skipCWSP()
	if !p.lit(")") {
		p.pos = save
		return nil, false
	}
	return &Group{Inner: alt}, true
}

func (p *parser) matchOption() (*Option, bool) {
	save := p.pos
	if !p.lit("[") {
		p.pos = save
		return nil, false
	}
	p.skipCWSP()
	alt, ok := p.matchAlternation()
	if !ok {
		p.pos = save
		return nil, false
	}
	p.skipCWSP()
	if !p.lit("]") {
		p.pos = save
		return nil, false
	}
	return &Option{Inner: alt}, true
}

// --- char-val / num-val / prose-val ---

func (p *parser) matchCharVal() (*CharVal, bool) {
	save := p.pos
	caseSensitive := false
	if p.lit("%s") {
		caseSensitive = true
	} else {
		p.pos = save
		p.lit("%i") // optional; absence means case-insensitive default
	}
	s, ok := p.matchQuotedString()
	if !ok {
		p.pos = save
		return nil, false
	}
	return &CharVal{Value: s, CaseSensitive: caseSensitive}, true
}

func (p *parser) matchQuotedString() (string, bool) {
	save := p.pos
	if !p.lit(`"`) {
		p.fail("quoted-string")
		return "", false
	}
	s := p.matchWhile(func(r rune) bool { return (r >= 0x20 && r <= 0x21) || (r >= 0x23 && r <= 0x7E) })
	if !p.lit(`"`) {
		p.pos = save
		p.fail("quoted-string")
		return "", false
	}
	return s, true
}

func (p *parser) matchNumVal() (*NumVal, bool) {
	save := p.pos
	if !p.lit("%") {
		return nil, false
	}
	var base byte
	var digitPred func(rune) bool
	var parseDigits func(string) (rune, bool)
	switch {
	case p.litFold("b"):
		base = 'b'
		digitPred = isBit
		parseDigits = func(s string) (rune, bool) {
			n, err := strconv.ParseInt(s, 2, 32)
			return rune(n), err == nil
		}
	case p.litFold("d"):
		base = 'd'
		digitPred = isDigit
		parseDigits = func(s string) (rune, bool) {
			n, err := strconv.ParseInt(s, 10, 32)
			return rune(n), err == nil
		}
	case p.litFold("x"):
		base = 'x'
		digitPred = isHexDig
		parseDigits = func(s string) (rune, bool) {
			n, err := strconv.ParseInt(s, 16, 32)
			return rune(n), err == nil
		}
	default:
		p.pos = save
		return nil, false
	}

	first, ok := p.matchWhile1(digitPred, "num-digit")
	if !ok {
		p.pos = save
		return nil, false
	}
	firstVal, ok := parseDigits(first)
	if !ok {
		p.pos = save
		return nil, false
	}

	if p.lit("-") {
		last, ok := p.matchWhile1(digitPred, "num-digit")
		if !ok {
			p.pos = save
			return nil, false
		}
		lastVal, ok := parseDigits(last)
		if !ok {
			p.pos = save
			return nil, false
		}
		return &NumVal{Base: base, Range: &NumRange{Lo: firstVal, Hi: lastVal}}, true
	}

	seq := []rune{firstVal}
	for {
		dot := p.pos
		if !p.lit(".") {
			break
		}
		s, ok := p.matchWhile1(digitPred, "num-digit")
		if !ok {
			p.pos = dot
			break
		}
		v, ok := parseDigits(s)
		if !ok {
			p.pos = dot
			break
		}
		seq = append(seq, v)
	}
	if len(seq) == 1 {
		return &NumVal{Base: base, Range: &NumRange{Lo: seq[0], Hi: seq[0]}}, true
	}
	return &NumVal{Base: base, Seq: seq}, true
}

func (p *parser) matchProseVal() (*ProseVal, bool) {
	save := p.pos
	if !p.lit("<") {
		return nil, false
	}
	text := p.matchWhile(func(r rune) bool { return (r >= 0x20 && r <= 0x3D) || (r >= 0x3F && r <= 0x7E) })
	if !p.lit(">") {
		p.pos = save
		p.fail("prose-val")
		return nil, false
	}
	return &ProseVal{Text: text}, true
}

// Parse parses a single standalone element (alternation), consuming all
// of input; used to parse a rule's right-hand side in isolation, e.g. for
// testing, rather than a whole rulelist.
func Parse(input string) (Node, error) {
	p := newParser(strings.TrimSpace(input))
	alt, ok := p.matchAlternation()
	if !ok || !p.eof() {
		return nil, p.parseError()
	}
	return alt, nil
}
