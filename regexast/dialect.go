package regexast

import (
	"fmt"
	"strings"
)

// Dialect describes a target regex flavor: which characters need escaping
// outside and inside a character class, and whether the flavor supports
// ^/$ anchoring and inline case modifiers. Dialect declarations are the
// external collaborator surface named in the design: the core ships
// these, concrete escaping beyond them is left to callers.
type Dialect struct {
	Name               string
	MetaOutsideClass   string // characters to backslash-escape outside a class
	MetaInsideClass    string // characters to backslash-escape inside a class
	SupportsAnchors    bool
	SupportsCaseInline bool // e.g. (?i)
}

// ECMAScriptSource is the dialect for an ECMAScript RegExp constructed
// from a string, e.g. new RegExp("...").
var ECMAScriptSource = Dialect{
	Name:               "ecmascript-source",
	MetaOutsideClass:   `.*+?()[]{}|^$\`,
	MetaInsideClass:    `]\^-`,
	SupportsAnchors:    true,
	SupportsCaseInline: true,
}

// ECMAScriptLiteral is the dialect for an ECMAScript regex literal,
// e.g. /.../ , which additionally must escape the forward slash.
var ECMAScriptLiteral = Dialect{
	Name:               "ecmascript-literal",
	MetaOutsideClass:   `.*+?()[]{}|^$\/`,
	MetaInsideClass:    `]\^-/`,
	SupportsAnchors:    true,
	SupportsCaseInline: true,
}

// SwiftRegexSource is the dialect for a Swift Regex built from a string
// literal passed to Regex(_:).
var SwiftRegexSource = Dialect{
	Name:               "swift-regex-source",
	MetaOutsideClass:   `.*+?()[]{}|^$\`,
	MetaInsideClass:    `]\^-`,
	SupportsAnchors:    true,
	SupportsCaseInline: false,
}

func escape(r rune, metas string) string {
	if strings.ContainsRune(metas, r) {
		return "\\" + string(r)
	}
	return string(r)
}

// Encode renders p as a dialect source string, unanchored.
func (d Dialect) Encode(p *REPattern[rune]) string {
	var b strings.Builder
	d.write(&b, p)
	return b.String()
}

// EncodeWhole renders p anchored for a whole-string match, when the
// dialect supports anchoring; otherwise it is identical to Encode.
func (d Dialect) EncodeWhole(p *REPattern[rune]) string {
	body := d.Encode(p)
	if !d.SupportsAnchors {
		return body
	}
	return "^" + body + "$"
}

func (d Dialect) write(b *strings.Builder, p *REPattern[rune]) {
	switch p.kind {
	case reEmpty:
		// No ECMAScript/Swift construct matches nothing without side
		// effects; emit a class that can never match instead.
		b.WriteString("[^\\s\\S]")
	case reEpsilon:
		// Matches only the empty string.
		b.WriteString("(?:)")
	case reLiteral:
		b.WriteString(escape(p.lit, d.MetaOutsideClass))
	case reClass:
		b.WriteByte('[')
		for _, r := range p.ranges {
			if r.Lo == r.Hi {
				b.WriteString(escape(r.Lo, d.MetaInsideClass))
				continue
			}
			fmt.Fprintf(b, "%s-%s", escape(r.Lo, d.MetaInsideClass), escape(r.Hi, d.MetaInsideClass))
		}
		b.WriteByte(']')
	case reAlt:
		b.WriteString("(?:")
		for i, c := range p.children {
			if i > 0 {
				b.WriteByte('|')
			}
			d.write(b, c)
		}
		b.WriteByte(')')
	case reConcat:
		for _, c := range p.children {
			d.write(b, c)
		}
	case reStar:
		if c := p.children[0]; c.kind == reLiteral || c.kind == reClass {
			d.write(b, c)
		} else {
			b.WriteString("(?:")
			d.write(b, c)
			b.WriteByte(')')
		}
		b.WriteByte('*')
	}
}
