package abnf

import (
	"github.com/coregx/langcore/dfa"
	"github.com/coregx/langcore/nfa"
)

// rangeNFA builds the NFA accepting any single rune in [lo, hi],
// inclusive, as a union of single-symbol NFAs — builtins only ever span
// single-byte values (at most 0x00-0xFF), so this stays small.
func rangeNFA(lo, hi rune) *nfa.NFA[rune] {
	first := nfa.NewSymbol(lo)
	if lo == hi {
		return first
	}
	rest := make([]*nfa.NFA[rune], 0, int(hi-lo))
	for r := lo + 1; r <= hi; r++ {
		rest = append(rest, nfa.NewSymbol(r))
	}
	return first.Union(rest...)
}

func rangeDFA(lo, hi rune) *dfa.DFA[rune] {
	return dfa.FromNFA(rangeNFA(lo, hi))
}

func literalDFA(r rune) *dfa.DFA[rune] { return rangeDFA(r, r) }

// Builtins returns the sixteen RFC 5234 Appendix B.1 core rules, reduced
// to DFAs that are byte-for-byte equivalent to the RFC's own grammar —
// including the detail that HEXDIG's "A"-"F" literals are, like every
// ABNF quoted string, case-insensitive by default, so both cases are
// accepted.
func Builtins() map[string]*dfa.DFA[rune] {
	alpha := rangeDFA('A', 'Z').Union(rangeDFA('a', 'z'))
	bit := literalDFA('0').Union(literalDFA('1'))
	char := rangeDFA(0x01, 0x7F)
	cr := literalDFA(0x0D)
	lf := literalDFA(0x0A)
	crlf := cr.Concatenate(lf)
	ctl := rangeDFA(0x00, 0x1F).Union(literalDFA(0x7F))
	digit := rangeDFA('0', '9')
	dquote := literalDFA(0x22)
	hexdig := digit.
		Union(rangeDFA('A', 'F')).
		Union(rangeDFA('a', 'f'))
	htab := literalDFA(0x09)
	octet := rangeDFA(0x00, 0xFF)
	sp := literalDFA(0x20)
	vchar := rangeDFA(0x21, 0x7E)
	wsp := sp.Union(htab)
	lwsp := wsp.Union(crlf.Concatenate(wsp)).Star()

	return map[string]*dfa.DFA[rune]{
		"ALPHA":  alpha,
		"BIT":    bit,
		"CHAR":   char,
		"CR":     cr,
		"CRLF":   crlf,
		"CTL":    ctl,
		"DIGIT":  digit,
		"DQUOTE": dquote,
		"HEXDIG": hexdig,
		"HTAB":   htab,
		"LF":     lf,
		"LWSP":   lwsp,
		"OCTET":  octet,
		"SP":     sp,
		"VCHAR":  vchar,
		"WSP":    wsp,
	}
}

// coreRuleNames lists the sixteen builtin rule names, used by the
// compiler to recognize a rulename that resolves to a builtin rather
// than a rulelist entry.
var coreRuleNames = map[string]bool{
	"alpha": true, "bit": true, "char": true, "cr": true, "crlf": true,
	"ctl": true, "digit": true, "dquote": true, "hexdig": true, "htab": true,
	"lf": true, "lwsp": true, "octet": true, "sp": true, "vchar": true, "wsp": true,
}

// IsCoreRule reports whether name is one of the sixteen builtins.
func IsCoreRule(name string) bool { return coreRuleNames[ruleKey(name)] }

// BuiltinDFA looks up a core rule case-insensitively, as a convenience
// for a resolver that accepts whatever case a grammar author wrote a
// rulename in.
func BuiltinDFA(name string) (*dfa.DFA[rune], bool) {
	if !IsCoreRule(name) {
		return nil, false
	}
	for k, v := range Builtins() {
		if ruleKey(k) == ruleKey(name) {
			return v, true
		}
	}
	return nil, false
}
