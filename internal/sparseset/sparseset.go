// Package sparseset provides a sparse set of uint32 IDs with O(1) insert,
// remove, membership test, and clear.
//
// The automata packages use it for the state-set bookkeeping that recurs
// throughout ε-closure computation and subset construction: tracking which
// NFA states have already been visited while walking a worklist, without
// reallocating a map on every clear.
package sparseset

// ID is the integer type used for automaton state identifiers throughout
// this module.
type ID = uint32

// Set is a set of ID values backed by the classic sparse/dense array pair:
// membership testing, insertion, and removal are all O(1), and Clear is
// O(1) regardless of how many elements were present.
type Set struct {
	sparse []ID
	dense  []ID
	size   ID
}

// New creates a Set whose capacity is the largest ID it will ever need to
// hold, exclusive.
func New(capacity int) *Set {
	return &Set{
		sparse: make([]ID, capacity),
		dense:  make([]ID, 0, capacity),
	}
}

// Insert adds value to the set. A no-op if already present.
func (s *Set) Insert(value ID) {
	if s.Contains(value) {
		return
	}
	s.dense = append(s.dense, value)
	s.sparse[value] = s.size
	s.size++
}

// Contains reports whether value is in the set.
func (s *Set) Contains(value ID) bool {
	if int(value) >= len(s.sparse) {
		return false
	}
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}

// Remove removes value from the set. A no-op if not present.
func (s *Set) Remove(value ID) {
	if !s.Contains(value) {
		return
	}
	idx := s.sparse[value]
	last := s.dense[s.size-1]
	s.dense[idx] = last
	s.sparse[last] = idx
	s.size--
	s.dense = s.dense[:s.size]
}

// Clear empties the set in O(1) time.
func (s *Set) Clear() {
	s.size = 0
	s.dense = s.dense[:0]
}

// Len returns the number of elements currently in the set.
func (s *Set) Len() int { return int(s.size) }

// Values returns the set's members in unspecified order. The returned
// slice is valid until the next mutation.
func (s *Set) Values() []ID { return s.dense[:s.size] }
