package abnf

import (
	"fmt"
	"strings"
)

// String renders the canonical textual form of the alternation, merging
// adjacent single-value num-val alternatives that form a contiguous run
// into one range (the pretty-printer's inverse of a hand-written
// "%x20 / %x21" that a parser would otherwise leave un-simplified).
func (a *Alternation) String() string {
	concats := collapseNumAlternatives(a.Concats)
	parts := make([]string, len(concats))
	for i, c := range concats {
		parts[i] = c.String()
	}
	return strings.Join(parts, " / ")
}

// String renders the canonical textual form of the concatenation, merging
// adjacent plain char-val repetitions of matching case-sensitivity into a
// single literal.
func (c *Concatenation) String() string {
	reps := collapseCharVals(c.Reps)
	parts := make([]string, len(reps))
	for i, r := range reps {
		parts[i] = r.String()
	}
	return strings.Join(parts, " ")
}

// String renders the repetition's canonical form: "1*1 X" prints bare as
// "X", "0*1 X" prints as "[X]", list-notation reps print with "#", and
// every other bound prints the ABNF repeat-prefix form ("n*m", "n*",
// "*m", or "n").
func (r *Repetition) String() string {
	if r.List {
		return listPrefix(r.Min, r.Max) + elementString(r.Elem)
	}
	if r.Min == 1 && r.Max == 1 {
		return elementString(r.Elem)
	}
	if r.Min == 0 && r.Max == 1 {
		return "[" + elementString(r.Elem) + "]"
	}
	return repeatPrefix(r.Min, r.Max) + elementString(r.Elem)
}

// elementString renders an element in the position following a repeat
// count: groups and options already carry their own delimiters, so only
// bare leaves need no extra wrapping.
func elementString(e Element) string { return e.String() }

func repeatPrefix(min, max int) string {
	switch {
	case min == max:
		return fmt.Sprintf("%d", min)
	case max < 0:
		if min == 0 {
			return "*"
		}
		return fmt.Sprintf("%d*", min)
	case min == 0:
		return fmt.Sprintf("*%d", max)
	default:
		return fmt.Sprintf("%d*%d", min, max)
	}
}

func listPrefix(min, max int) string {
	switch {
	case min == 0 && max < 0:
		return "#"
	case max < 0:
		return fmt.Sprintf("%d#", min)
	case min == max:
		return fmt.Sprintf("%d#%d", min, max)
	case min == 0:
		return fmt.Sprintf("#%d", max)
	default:
		return fmt.Sprintf("%d#%d", min, max)
	}
}

func (g *Group) String() string { return "(" + g.Inner.String() + ")" }

func (o *Option) String() string { return "[" + o.Inner.String() + "]" }

// --- canonical-form collapsing helpers ---

func singleCharVal(r *Repetition) (*CharVal, bool) {
	if r.List || r.Min != 1 || r.Max != 1 {
		return nil, false
	}
	cv, ok := r.Elem.(*CharVal)
	return cv, ok
}

func collapseCharVals(reps []*Repetition) []*Repetition {
	out := make([]*Repetition, 0, len(reps))
	i := 0
	for i < len(reps) {
		cv, ok := singleCharVal(reps[i])
		if !ok {
			out = append(out, reps[i])
			i++
			continue
		}
		j := i + 1
		merged := cv.Value
		for j < len(reps) {
			cv2, ok2 := singleCharVal(reps[j])
			if !ok2 || cv2.CaseSensitive != cv.CaseSensitive {
				break
			}
			merged += cv2.Value
			j++
		}
		if j == i+1 {
			out = append(out, reps[i])
			i++
			continue
		}
		mc := &CharVal{Value: merged, CaseSensitive: cv.CaseSensitive}
		out = append(out, mc.AsRepetition())
		i = j
	}
	return out
}

func singleNumVal(c *Concatenation) (*NumVal, bool) {
	if len(c.Reps) != 1 {
		return nil, false
	}
	r := c.Reps[0]
	if r.List || r.Min != 1 || r.Max != 1 {
		return nil, false
	}
	nv, ok := r.Elem.(*NumVal)
	if !ok || nv.Range == nil || nv.Range.Lo != nv.Range.Hi {
		return nil, false
	}
	return nv, true
}

func collapseNumAlternatives(concats []*Concatenation) []*Concatenation {
	out := make([]*Concatenation, 0, len(concats))
	i := 0
	for i < len(concats) {
		nv, ok := singleNumVal(concats[i])
		if !ok {
			out = append(out, concats[i])
			i++
			continue
		}
		j := i + 1
		lastHi := nv.Range.Hi
		for j < len(concats) {
			nv2, ok2 := singleNumVal(concats[j])
			if !ok2 || nv2.Base != nv.Base || nv2.Range.Lo != lastHi+1 {
				break
			}
			lastHi = nv2.Range.Hi
			j++
		}
		if j == i+1 {
			out = append(out, concats[i])
			i++
			continue
		}
		merged := &NumVal{Base: nv.Base, Range: &NumRange{Lo: nv.Range.Lo, Hi: lastHi}}
		out = append(out, merged.AsConcatenation())
		i = j
	}
	return out
}
