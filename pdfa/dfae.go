package pdfa

import "github.com/coregx/langcore/dfa"

// DFAE is a labeled classifier: a PartitionedDFA where each partition
// element additionally carries a value of type V (its "label"), the
// shape of a lexer's token-kind table. The name mirrors the spec's own
// DFAE<S,V> notation: a DFA extended with an emission value per
// accepting class.
type DFAE[S comparable, V any] struct {
	part   *PartitionedDFA[S]
	labels []V
}

// NewDFAE builds a DFAE from parallel languages and labels: languages[i]
// is compiled into the i-th partition element the same way New does,
// and labels[i] is the value returned for strings landing in it.
func NewDFAE[S comparable, V any](languages []*dfa.DFA[S], labels []V) *DFAE[S, V] {
	if len(languages) != len(labels) {
		panic("pdfa: NewDFAE requires one label per language")
	}
	return &DFAE[S, V]{part: New(languages), labels: append([]V(nil), labels...)}
}

// Lookup returns the label for the partition element containing w, or
// the zero value and ok=false if w matches none of them.
func (d *DFAE[S, V]) Lookup(w []S) (label V, ok bool) {
	i, found := d.part.Lookup(w)
	if !found {
		var zero V
		return zero, false
	}
	return d.labels[i], true
}

// Partition exposes the underlying PartitionedDFA, e.g. for Conjunction.
func (d *DFAE[S, V]) Partition() *PartitionedDFA[S] { return d.part }
