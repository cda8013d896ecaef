package abnf

import (
	"errors"
	"testing"

	"github.com/coregx/langcore/langerr"
)

func TestParseAlternation(t *testing.T) {
	n, err := Parse(`"a" / "b"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	alt := n.AsAlternation()
	if len(alt.Concats) != 2 {
		t.Fatalf("expected 2 alternatives, got %d", len(alt.Concats))
	}
}

func TestParseConcatenationAndRepetition(t *testing.T) {
	n, err := Parse(`3*5DIGIT "."`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	alt := n.AsAlternation()
	conc := alt.Concats[0]
	if len(conc.Reps) != 2 {
		t.Fatalf("expected 2 repetitions, got %d", len(conc.Reps))
	}
	rep := conc.Reps[0]
	if rep.Min != 3 || rep.Max != 5 {
		t.Fatalf("got Min=%d Max=%d, want 3,5", rep.Min, rep.Max)
	}
	if _, ok := rep.Elem.(*Rulename); !ok {
		t.Fatalf("expected a Rulename element, got %T", rep.Elem)
	}
}

func TestParseGroupAndOption(t *testing.T) {
	n, err := Parse(`("a" / "b") ["c"]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	conc := n.AsAlternation().Concats[0]
	if len(conc.Reps) != 2 {
		t.Fatalf("expected 2 repetitions, got %d", len(conc.Reps))
	}
	if _, ok := conc.Reps[0].Elem.(*Group); !ok {
		t.Fatalf("expected a Group, got %T", conc.Reps[0].Elem)
	}
	if _, ok := conc.Reps[1].Elem.(*Option); !ok {
		t.Fatalf("expected an Option, got %T", conc.Reps[1].Elem)
	}
}

func TestParseCharValCaseModifiers(t *testing.T) {
	n, err := Parse(`%s"Abc" %i"Def" "Ghi"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	conc := n.AsAlternation().Concats[0]
	cases := []bool{true, false, false}
	for i, rep := range conc.Reps {
		cv, ok := rep.Elem.(*CharVal)
		if !ok {
			t.Fatalf("rep %d: expected CharVal, got %T", i, rep.Elem)
		}
		if cv.CaseSensitive != cases[i] {
			t.Fatalf("rep %d: CaseSensitive=%v, want %v", i, cv.CaseSensitive, cases[i])
		}
	}
}

func TestParseNumValRangeAndSequence(t *testing.T) {
	n, err := Parse(`%x41-5A %d13.10`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	conc := n.AsAlternation().Concats[0]
	r, ok := conc.Reps[0].Elem.(*NumVal)
	if !ok || r.Range == nil || r.Range.Lo != 0x41 || r.Range.Hi != 0x5A {
		t.Fatalf("got %#v, want range 0x41-0x5A", r)
	}
	seq, ok := conc.Reps[1].Elem.(*NumVal)
	if !ok || len(seq.Seq) != 2 || seq.Seq[0] != 13 || seq.Seq[1] != 10 {
		t.Fatalf("got %#v, want sequence [13,10]", seq)
	}
}

func TestParseProseVal(t *testing.T) {
	n, err := Parse(`<any UTF-8 character>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pv, ok := n.AsAlternation().Concats[0].Reps[0].Elem.(*ProseVal)
	if !ok || pv.Text != "any UTF-8 character" {
		t.Fatalf("got %#v", pv)
	}
}

func TestParseListNotation(t *testing.T) {
	n, err := Parse(`1#3element`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rep := n.AsAlternation().Concats[0].Reps[0]
	if !rep.List || rep.Min != 1 || rep.Max != 3 {
		t.Fatalf("got List=%v Min=%d Max=%d, want List=true Min=1 Max=3", rep.List, rep.Min, rep.Max)
	}
}

func TestParseRulelistWithIncrementalRule(t *testing.T) {
	input := "start = \"a\"\r\nstart =/ \"b\"\r\n"
	l, err := ParseRulelist(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := l.Lookup("start")
	if r == nil {
		t.Fatal("expected rule \"start\" to be defined")
	}
	if len(r.Def.Concats) != 2 {
		t.Fatalf("expected the incremental rule to add a second branch, got %d", len(r.Def.Concats))
	}
}

func TestParseRulelistCaseInsensitiveLookup(t *testing.T) {
	l, err := ParseRulelist("Foo = \"x\"\r\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Lookup("FOO") == nil || l.Lookup("foo") == nil {
		t.Fatal("rule lookup should be case-insensitive")
	}
}

func TestParseErrorReportsFarthestOffset(t *testing.T) {
	_, err := Parse(`"a" / `)
	if err == nil {
		t.Fatal("expected a parse error on a dangling alternation")
	}
	var pe *langerr.ParseError
	if !errors.As(err, &pe) || pe.Offset != 5 {
		t.Fatalf("got %v, want a ParseError at offset 5", err)
	}
}
