package rngmap

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/npillmayer/rngmap/obtree"
)

// RangeMap is a total mapping from keys to values, represented canonically
// as a default value plus the sparse, ordered set of boundary points where
// the mapped value changes.
//
// A map created by
//
//	RangeMap[int, rune]{}
//
// is a valid object and maps every key to the zero value of V. Use New to
// start from a different default.
//
// Insert keeps the representation canonical: boundary points are strictly
// increasing and no two adjacent segments carry equal values. Lookup and
// insertion cost O(log n); an insertion additionally touches the boundary
// points it overwrites.
//
// A RangeMap must not be mutated concurrently with any other access.
// Clients needing shared access have to synchronize externally, e.g. with a
// read-write lock around the whole map.
type RangeMap[K cmp.Ordered, V comparable] struct {
	val  V
	tree *obtree.Tree[point[K], V]
}

// New creates a range map that maps every key to val.
func New[K cmp.Ordered, V comparable](val V) *RangeMap[K, V] {
	return &RangeMap[K, V]{val: val}
}

// store returns the boundary tree, creating it on first mutation.
func (m *RangeMap[K, V]) store() *obtree.Tree[point[K], V] {
	if m.tree == nil {
		m.tree = obtree.New[point[K], V](comparePoints[K])
	}
	return m.tree
}

// Len returns the number of sections, i.e. maximal intervals of constant
// value. An untouched map has a single section.
func (m *RangeMap[K, V]) Len() int {
	return m.tree.Len() + 1
}

// Insert overwrites every key in r with value and re-canonicalizes the
// boundary store around the edit.
//
// Boundary points covered by r are discarded wholesale; afterwards at most
// two points are spliced back in: one restoring the previous value just
// past the end of r, and one establishing value at its start. Either
// splice is skipped when the neighboring segment already carries the same
// value, so no redundant boundary is ever created.
//
// An empty or inverted range is silently ignored.
func (m *RangeMap[K, V]) Insert(r Range[K], value V) {
	if !r.Valid() {
		T().Debugf("range map ignores insert over invalid range %s", r)
		return
	}
	tree := m.store()

	var from *point[K]
	if p, ok := r.Start.asPoint(); ok {
		from = &p
	}
	var until *point[K]
	if p, ok := r.End.asPoint(); ok {
		// The post-range segment starts at the swapped end point; it is the
		// last position the overwrite may consume.
		p = p.swapBound()
		until = &p
	}

	// Clear the run of boundary points covered by r. The last value removed
	// is the value in effect just past the end of r; if the run was empty,
	// that value has been in effect since before the start of r.
	endVal, removed := tree.RemoveUntil(from, until)
	if !removed {
		endVal = m.valueBefore(from)
	}

	if until != nil {
		// Restore endVal past the end of r, unless the overwrite itself or
		// the following segment already provides it.
		restore := value != endVal
		if _, nextVal, ok := tree.Ceiling(*until); ok {
			restore = restore && endVal != nextVal
		}
		if restore {
			tree.Insert(*until, endVal)
		}
	}

	if from == nil {
		// A left-unbounded overwrite replaces the default value.
		m.val = value
		return
	}
	// Establish value at the start of r, unless the preceding segment
	// already carries it.
	if value != m.valueBefore(from) {
		tree.Insert(*from, value)
	}
}

// valueBefore returns the value in effect just before boundary point p, or
// the default when no boundary precedes p. A nil p denotes the very front
// of the store.
func (m *RangeMap[K, V]) valueBefore(p *point[K]) V {
	if p == nil || m.tree == nil {
		return m.val
	}
	if _, v, ok := m.tree.Lower(*p); ok {
		return v
	}
	return m.val
}

// Index returns the value in effect at key. It never fails; keys outside
// every inserted range yield the default value.
func (m *RangeMap[K, V]) Index(key K) V {
	if m.tree == nil {
		return m.val
	}
	if _, v, ok := m.tree.Floor(point[K]{key: key}); ok {
		return v
	}
	return m.val
}

// String renders the map as its list of sections (for debugging purposes).
func (m *RangeMap[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for r, v := range m.Iter() {
		if !first {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", r, v)
		first = false
	}
	b.WriteByte('}')
	return b.String()
}
