package alphabet

import (
	"reflect"
	"testing"
)

func TestClosedRangeInsertRefines(t *testing.T) {
	a := NewClosedRangeAlphabet[int]([]Range[int]{{0, 9}})
	a.Insert([]Range[int]{{0, 0}})
	a.Insert([]Range[int]{{0, 1}})

	want := [][]Range[int]{{{0, 0}}, {{1, 1}}, {{2, 9}}}
	if !reflect.DeepEqual(a.Classes(), want) {
		t.Fatalf("got %v, want %v", a.Classes(), want)
	}
}

func TestClosedRangeConjunction(t *testing.T) {
	a := NewClosedRangeAlphabet[int]([]Range[int]{{10, 13}}, []Range[int]{{20, 23}})
	b := NewClosedRangeAlphabet[int]([]Range[int]{{10, 21}}, []Range[int]{{12, 23}})

	got := a.Conjunction(b)

	wantMembers := [][2]int{{10, 11}, {12, 13}, {14, 19}, {20, 21}, {22, 23}}
	var flat []Range[int]
	for _, c := range got.Classes() {
		flat = append(flat, c...)
	}
	if len(flat) != len(wantMembers) {
		t.Fatalf("got %d classes %v, want %d", len(flat), flat, len(wantMembers))
	}
	for i, w := range wantMembers {
		if flat[i].Lo != w[0] || flat[i].Hi != w[1] {
			t.Errorf("range %d: got [%d,%d], want [%d,%d]", i, flat[i].Lo, flat[i].Hi, w[0], w[1])
		}
	}
}

func TestClosedRangeContainsAndLabel(t *testing.T) {
	a := NewClosedRangeAlphabet[byte]([]Range[byte]{{'a', 'z'}}, []Range[byte]{{'0', '9'}})
	if !a.Contains('m') || !a.Contains('5') {
		t.Fatal("expected containment for 'm' and '5'")
	}
	if a.Contains('!') {
		t.Fatal("did not expect containment for '!'")
	}
	l1, ok := a.Label('a')
	if !ok || l1 != 'a' {
		t.Fatalf("Label('a') = %v, %v", l1, ok)
	}
	if !a.IsEquivalent('a', 'z') {
		t.Fatal("'a' and 'z' should be equivalent (same class)")
	}
	if a.IsEquivalent('a', '5') {
		t.Fatal("'a' and '5' should not be equivalent")
	}
}

func TestClosedRangeIntegerSaturation(t *testing.T) {
	const max = 255
	a := NewClosedRangeAlphabet[byte]([]Range[byte]{{0, max}})
	a.Insert([]Range[byte]{{0, 0}})

	want := [][]Range[byte]{{{0, 0}}, {{1, max}}}
	if !reflect.DeepEqual(a.Classes(), want) {
		t.Fatalf("got %v, want %v", a.Classes(), want)
	}
}

func TestClosedRangeEmptyInsertIsNoOp(t *testing.T) {
	a := NewClosedRangeAlphabet[int]([]Range[int]{{0, 9}})
	a.Insert(nil)
	if len(a.Classes()) != 1 {
		t.Fatalf("expected 1 class, got %d", len(a.Classes()))
	}
}

func TestMergeRangesAdjacency(t *testing.T) {
	got := mergeRanges([]Range[int]{{0, 3}, {4, 5}, {10, 12}, {6, 9}})
	want := []Range[int]{{0, 12}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
