package obtree

import "iter"

// Ascend walks entries in ascending key order.
//
// Iteration stops early if fn returns false. The tree must not be mutated
// during the walk.
func (t *Tree[K, V]) Ascend(fn func(K, V) bool) {
	if t == nil || t.root == nilRef || fn == nil {
		return
	}
	t.ascendAt(t.root, fn)
}

func (t *Tree[K, V]) ascendAt(r ref, fn func(K, V) bool) bool {
	if r == nilRef {
		return true
	}
	if !t.ascendAt(t.nodes[r].left, fn) {
		return false
	}
	if !fn(t.nodes[r].key, t.nodes[r].val) {
		return false
	}
	return t.ascendAt(t.nodes[r].right, fn)
}

// AscendFrom walks entries in ascending key order, starting at the first
// entry with key ≥ from.
func (t *Tree[K, V]) AscendFrom(from K, fn func(K, V) bool) {
	if t == nil || t.root == nilRef || fn == nil {
		return
	}
	t.ascendFromAt(t.root, from, fn)
}

func (t *Tree[K, V]) ascendFromAt(r ref, from K, fn func(K, V) bool) bool {
	if r == nilRef {
		return true
	}
	if t.cmp(t.nodes[r].key, from) < 0 {
		// Node and its left subtree lie below from.
		return t.ascendFromAt(t.nodes[r].right, from, fn)
	}
	if !t.ascendFromAt(t.nodes[r].left, from, fn) {
		return false
	}
	if !fn(t.nodes[r].key, t.nodes[r].val) {
		return false
	}
	return t.ascendAt(t.nodes[r].right, fn)
}

// All returns an in-order iterator over all entries.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.Ascend(yield)
	}
}
