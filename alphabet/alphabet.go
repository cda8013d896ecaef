// Package alphabet represents partitions of a symbol universe into disjoint
// equivalence classes, used as compact transition keys by the automata
// packages. Three variants are provided over the same shared operations:
// single-symbol classes (SymbolAlphabet), finite-set classes (SetAlphabet),
// and ordered closed-range classes (ClosedRangeAlphabet).
//
// This is a sealed family in spirit: every variant implements Partition, and
// generic automaton code is written against that interface rather than
// against a concrete type, the way the teacher's ByteClasses is the single
// alphabet-reduction mechanism every NFA/DFA consults.
package alphabet

// Strideable is the constraint satisfied by symbol types that admit a
// total order and a successor/predecessor operation, required for
// ClosedRangeAlphabet. Built-in integer types all satisfy it; a domain
// character type can too as long as it is defined as one of these kinds.
type Strideable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Partition is the capability set every alphabet variant exposes: query
// whether a symbol is covered, and find the canonical representative of the
// class a symbol belongs to (used as a DFA transition key).
type Partition[S comparable] interface {
	// Contains reports whether s falls in some class of the partition.
	Contains(s S) bool

	// Label returns the canonical representative of the class containing
	// s, or the zero value and false if s is not covered.
	Label(s S) (S, bool)

	// IsEquivalent reports whether a and b belong to the same class.
	IsEquivalent(a, b S) bool

	// NumClasses returns the number of disjoint classes in the partition.
	NumClasses() int
}
