package abnf

import "testing"

func TestPrintDefaultRepetitionOmitted(t *testing.T) {
	r := &Repetition{Min: 1, Max: 1, Elem: &Rulename{Name: "X"}}
	if got := r.String(); got != "X" {
		t.Fatalf("got %q, want %q", got, "X")
	}
}

func TestPrintOptionalRepetitionAsBrackets(t *testing.T) {
	r := &Repetition{Min: 0, Max: 1, Elem: &Rulename{Name: "X"}}
	if got := r.String(); got != "[X]" {
		t.Fatalf("got %q, want %q", got, "[X]")
	}
}

func TestPrintBoundedRepetition(t *testing.T) {
	r := &Repetition{Min: 3, Max: 5, Elem: &Rulename{Name: "DIGIT"}}
	if got := r.String(); got != "3*5DIGIT" {
		t.Fatalf("got %q, want %q", got, "3*5DIGIT")
	}
}

func TestPrintListNotation(t *testing.T) {
	r := &Repetition{Min: 1, Max: 3, List: true, Elem: &Rulename{Name: "element"}}
	if got := r.String(); got != "1#3element" {
		t.Fatalf("got %q, want %q", got, "1#3element")
	}
}

func TestPrintConcatenationCollapsesCharVals(t *testing.T) {
	c := &Concatenation{Reps: []*Repetition{
		{Min: 1, Max: 1, Elem: &CharVal{Value: "ab"}},
		{Min: 1, Max: 1, Elem: &CharVal{Value: "cd"}},
	}}
	if got := c.String(); got != `"abcd"` {
		t.Fatalf("got %q, want %q", got, `"abcd"`)
	}
}

func TestPrintAlternationCollapsesAdjacentNumVals(t *testing.T) {
	a := &Alternation{Concats: []*Concatenation{
		(&NumVal{Base: 'x', Range: &NumRange{Lo: 0x20, Hi: 0x20}}).AsConcatenation(),
		(&NumVal{Base: 'x', Range: &NumRange{Lo: 0x21, Hi: 0x21}}).AsConcatenation(),
	}}
	if got := a.String(); got != "%x20-21" {
		t.Fatalf("got %q, want %q", got, "%x20-21")
	}
}

func TestPrintGroupAndOption(t *testing.T) {
	g := &Group{Inner: &Alternation{Concats: []*Concatenation{
		{Reps: []*Repetition{{Min: 1, Max: 1, Elem: &Rulename{Name: "A"}}}},
		{Reps: []*Repetition{{Min: 1, Max: 1, Elem: &Rulename{Name: "B"}}}},
	}}}
	if got := g.String(); got != "(A / B)" {
		t.Fatalf("got %q, want %q", got, "(A / B)")
	}

	o := &Option{Inner: g.Inner}
	if got := o.String(); got != "[A / B]" {
		t.Fatalf("got %q, want %q", got, "[A / B]")
	}
}

func TestPrintParseRoundTrip(t *testing.T) {
	for _, src := range []string{
		`"a" / "b"`,
		`3*5DIGIT`,
		`[A]`,
		`%x41-5A`,
	} {
		n, err := Parse(src)
		if err != nil {
			t.Fatalf("parse(%q): %v", src, err)
		}
		if got := n.String(); got != src {
			t.Fatalf("round-trip mismatch: parse(%q).String() = %q", src, got)
		}
	}
}
