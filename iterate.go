package rngmap

import "iter"

// Iter returns an iterator over the sections of the map, in increasing key
// order.
//
// Sections partition the key space: the first section starts unbounded, the
// last one ends unbounded, and consecutive sections meet without gap or
// overlap. Each call produces a fresh iterator. The iterator reads the
// boundary store directly, so the map must not be mutated while a traversal
// is in progress.
//
//	m := rngmap.New[int]("outer")
//	m.Insert(rngmap.Between(-1, 1), "inner")
//	for r, v := range m.Iter() {
//		fmt.Printf("%s holds %q\n", r, v)
//	}
//	// (-∞, -1) holds "outer"
//	// [-1, 1) holds "inner"
//	// [1, +∞) holds "outer"
func (m *RangeMap[K, V]) Iter() iter.Seq2[Range[K], V] {
	return func(yield func(Range[K], V) bool) {
		start := Bound[K]{}
		val := m.val
		if m.tree != nil {
			for p, v := range m.tree.All() {
				if !yield(Range[K]{Start: start, End: p.endBound()}, val) {
					return
				}
				start, val = p.startBound(), v
			}
		}
		yield(Range[K]{Start: start}, val)
	}
}
