package alphabet

import "sort"

// Range is a closed interval [Lo, Hi] over a Strideable symbol type.
type Range[S Strideable] struct {
	Lo, Hi S
}

// ClosedRangeAlphabet is the ordered-closed-range alphabet variant: each
// class is a disjoint union of closed ranges. The canonical form lists
// classes in ascending Lo order, with ranges inside a class sorted and
// merged whenever adjacent or overlapping.
type ClosedRangeAlphabet[S Strideable] struct {
	// classes[i] is the canonical, merged, sorted range list of class i.
	// Classes themselves are kept sorted by their first range's Lo.
	classes [][]Range[S]
}

// NewClosedRangeAlphabet builds a ClosedRangeAlphabet with one initial
// class per argument, each given as a list of ranges.
func NewClosedRangeAlphabet[S Strideable](classes ...[]Range[S]) *ClosedRangeAlphabet[S] {
	a := &ClosedRangeAlphabet[S]{}
	for _, c := range classes {
		a.Insert(c)
	}
	return a
}

func succOf[S Strideable](x S) (S, bool) {
	succ := x + 1
	return succ, succ > x
}

func predOf[S Strideable](x S) (S, bool) {
	pred := x - 1
	return pred, pred < x
}

func sortRanges[S Strideable](rs []Range[S]) {
	sort.Slice(rs, func(i, j int) bool { return rs[i].Lo < rs[j].Lo })
}

// mergeRanges sorts and coalesces overlapping or adjacent ranges.
func mergeRanges[S Strideable](rs []Range[S]) []Range[S] {
	if len(rs) == 0 {
		return nil
	}
	cp := append([]Range[S](nil), rs...)
	sortRanges(cp)
	out := []Range[S]{cp[0]}
	for _, r := range cp[1:] {
		last := &out[len(out)-1]
		if r.Lo <= last.Hi {
			if r.Hi > last.Hi {
				last.Hi = r.Hi
			}
			continue
		}
		if succ, ok := succOf(last.Hi); ok && r.Lo == succ {
			if r.Hi > last.Hi {
				last.Hi = r.Hi
			}
			continue
		}
		out = append(out, r)
	}
	return out
}

func rangeIntersect[S Strideable](a, b Range[S]) (Range[S], bool) {
	lo := a.Lo
	if b.Lo > lo {
		lo = b.Lo
	}
	hi := a.Hi
	if b.Hi < hi {
		hi = b.Hi
	}
	if lo > hi {
		var zero Range[S]
		return zero, false
	}
	return Range[S]{lo, hi}, true
}

// rangeSubtract returns a \ b, as zero, one, or two ranges.
func rangeSubtract[S Strideable](a, b Range[S]) []Range[S] {
	inter, ok := rangeIntersect(a, b)
	if !ok {
		return []Range[S]{a}
	}
	var out []Range[S]
	if a.Lo < inter.Lo {
		if pred, ok := predOf(inter.Lo); ok {
			out = append(out, Range[S]{a.Lo, pred})
		}
	}
	if inter.Hi < a.Hi {
		if succ, ok := succOf(inter.Hi); ok {
			out = append(out, Range[S]{succ, a.Hi})
		}
	}
	return out
}

// classIntersect/classSubtract operate a whole class (list of ranges)
// against a single range.
func classIntersect[S Strideable](class []Range[S], r Range[S]) []Range[S] {
	var out []Range[S]
	for _, c := range class {
		if inter, ok := rangeIntersect(c, r); ok {
			out = append(out, inter)
		}
	}
	return out
}

func classSubtract[S Strideable](class []Range[S], r Range[S]) []Range[S] {
	var out []Range[S]
	for _, c := range class {
		out = append(out, rangeSubtract(c, r)...)
	}
	return out
}

// Contains reports whether s falls inside any range of any class.
func (a *ClosedRangeAlphabet[S]) Contains(s S) bool {
	for _, c := range a.classes {
		for _, r := range c {
			if s >= r.Lo && s <= r.Hi {
				return true
			}
		}
	}
	return false
}

// Label returns the Lo bound of the first range in s's class as its
// canonical representative.
func (a *ClosedRangeAlphabet[S]) Label(s S) (S, bool) {
	for _, c := range a.classes {
		for _, r := range c {
			if s >= r.Lo && s <= r.Hi {
				return c[0].Lo, true
			}
		}
	}
	var zero S
	return zero, false
}

// IsEquivalent reports whether x and y fall in the same class.
func (a *ClosedRangeAlphabet[S]) IsEquivalent(x, y S) bool {
	lx, okx := a.Label(x)
	ly, oky := a.Label(y)
	return okx && oky && lx == ly
}

// NumClasses returns the number of disjoint classes.
func (a *ClosedRangeAlphabet[S]) NumClasses() int {
	return len(a.classes)
}

// Classes returns the canonical classes, each as an ascending merged range
// list. The returned slices must not be mutated.
func (a *ClosedRangeAlphabet[S]) Classes() [][]Range[S] {
	return a.classes
}

// Insert adds a class made of the given ranges, refining the partition so
// pre-existing classes split at the inserted class's boundaries. The
// inserted ranges are merged into a canonical single class first, so
// e.g. inserting [[10,13],[20,23]] treats it as one class with two pieces.
// An empty class is a no-op.
func (a *ClosedRangeAlphabet[S]) Insert(ranges []Range[S]) {
	toInsert := mergeRanges(ranges)
	if len(toInsert) == 0 {
		return
	}

	var newClasses [][]Range[S]
	remaining := toInsert

	for _, c := range a.classes {
		var inter []Range[S]
		for _, r := range toInsert {
			inter = append(inter, classIntersect(c, r)...)
		}
		inter = mergeRanges(inter)

		if len(inter) == 0 {
			newClasses = append(newClasses, c)
			continue
		}

		var diff []Range[S]
		rest := c
		for _, r := range toInsert {
			var next []Range[S]
			for _, cr := range rest {
				next = append(next, rangeSubtract(cr, r)...)
			}
			rest = next
		}
		diff = mergeRanges(rest)

		if len(diff) == 0 {
			// c is entirely inside the inserted class: keep it unchanged.
			newClasses = append(newClasses, c)
		} else {
			newClasses = append(newClasses, diff, inter)
		}

		for _, r := range inter {
			var next []Range[S]
			for _, rr := range remaining {
				next = append(next, rangeSubtract(rr, r)...)
			}
			remaining = mergeRanges(next)
		}
	}

	if len(remaining) > 0 {
		newClasses = append(newClasses, remaining)
	}

	sort.Slice(newClasses, func(i, j int) bool { return newClasses[i][0].Lo < newClasses[j][0].Lo })
	a.classes = newClasses
}

func subtractMany[S Strideable](target, subtrahends []Range[S]) []Range[S] {
	rest := append([]Range[S](nil), target...)
	for _, s := range subtrahends {
		var next []Range[S]
		for _, r := range rest {
			next = append(next, rangeSubtract(r, s)...)
		}
		rest = next
	}
	return mergeRanges(rest)
}

// Conjunction returns the coarsest common refinement of a and other. Two
// partitions may cover only part of the symbol universe, so the result
// includes three kinds of fragments: the overlap of an a-class with a
// b-class, the part of an a-class that other does not cover at all, and
// the part of a b-class that a does not cover at all. A symbol covered by
// neither partition does not appear in the result.
func (a *ClosedRangeAlphabet[S]) Conjunction(other *ClosedRangeAlphabet[S]) *ClosedRangeAlphabet[S] {
	out := &ClosedRangeAlphabet[S]{}

	var allA, allB []Range[S]
	for _, c := range a.classes {
		allA = append(allA, c...)
	}
	for _, c := range other.classes {
		allB = append(allB, c...)
	}

	for _, ca := range a.classes {
		for _, cb := range other.classes {
			var inter []Range[S]
			for _, ra := range ca {
				inter = append(inter, classIntersect(cb, ra)...)
			}
			inter = mergeRanges(inter)
			if len(inter) > 0 {
				out.Insert(inter)
			}
		}
		if onlyA := subtractMany(ca, allB); len(onlyA) > 0 {
			out.Insert(onlyA)
		}
	}
	for _, cb := range other.classes {
		if onlyB := subtractMany(cb, allA); len(onlyB) > 0 {
			out.Insert(onlyB)
		}
	}
	return out
}
