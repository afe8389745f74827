package obtree

// ref is an arena index; nilRef marks a missing child or an empty root.
type ref = int32

const nilRef ref = -1

// node is an arena slot. Child links are arena indices, not pointers.
type node[K, V any] struct {
	key    K
	val    V
	left   ref
	right  ref
	height int32
}

// Tree is an ordered map backed by an arena-indexed AVL tree.
//
// K is ordered by the comparison function given to New. A nil *Tree behaves
// like an empty tree for read access; mutation requires a tree created by
// New.
type Tree[K, V any] struct {
	cmp   func(K, K) int
	nodes []node[K, V]
	free  []ref
	root  ref
	count int
}

// New creates an empty tree ordered by cmp.
func New[K, V any](cmp func(K, K) int) *Tree[K, V] {
	assert(cmp != nil, "ordered tree needs a comparison function")
	return &Tree[K, V]{cmp: cmp, root: nilRef}
}

// Len returns the number of entries.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.Len() == 0
}

func (t *Tree[K, V]) alloc(key K, val V) ref {
	n := node[K, V]{key: key, val: val, left: nilRef, right: nilRef, height: 1}
	if l := len(t.free); l > 0 {
		r := t.free[l-1]
		t.free = t.free[:l-1]
		t.nodes[r] = n
		return r
	}
	t.nodes = append(t.nodes, n)
	return ref(len(t.nodes) - 1)
}

func (t *Tree[K, V]) release(r ref) {
	// Clear key and value so the arena holds no stale references.
	var zero node[K, V]
	zero.left, zero.right = nilRef, nilRef
	t.nodes[r] = zero
	t.free = append(t.free, r)
}

func (t *Tree[K, V]) heightOf(r ref) int32 {
	if r == nilRef {
		return 0
	}
	return t.nodes[r].height
}

func (t *Tree[K, V]) reheight(r ref) {
	h := max(t.heightOf(t.nodes[r].left), t.heightOf(t.nodes[r].right))
	t.nodes[r].height = h + 1
}

func (t *Tree[K, V]) balanceOf(r ref) int32 {
	return t.heightOf(t.nodes[r].left) - t.heightOf(t.nodes[r].right)
}

func (t *Tree[K, V]) rotateLeft(r ref) ref {
	pivot := t.nodes[r].right
	assert(pivot != nilRef, "rotateLeft without right child")
	t.nodes[r].right = t.nodes[pivot].left
	t.nodes[pivot].left = r
	t.reheight(r)
	t.reheight(pivot)
	return pivot
}

func (t *Tree[K, V]) rotateRight(r ref) ref {
	pivot := t.nodes[r].left
	assert(pivot != nilRef, "rotateRight without left child")
	t.nodes[r].left = t.nodes[pivot].right
	t.nodes[pivot].right = r
	t.reheight(r)
	t.reheight(pivot)
	return pivot
}

func (t *Tree[K, V]) rebalance(r ref) ref {
	t.reheight(r)
	switch b := t.balanceOf(r); {
	case b > 1:
		if t.balanceOf(t.nodes[r].left) < 0 {
			t.nodes[r].left = t.rotateLeft(t.nodes[r].left)
		}
		return t.rotateRight(r)
	case b < -1:
		if t.balanceOf(t.nodes[r].right) > 0 {
			t.nodes[r].right = t.rotateRight(t.nodes[r].right)
		}
		return t.rotateLeft(r)
	}
	return r
}

// Insert stores val under key, replacing the value of an existing entry.
// It reports whether a new entry was created.
func (t *Tree[K, V]) Insert(key K, val V) bool {
	added := false
	t.root = t.insertAt(t.root, key, val, &added)
	if added {
		t.count++
	}
	return added
}

func (t *Tree[K, V]) insertAt(r ref, key K, val V, added *bool) ref {
	if r == nilRef {
		*added = true
		return t.alloc(key, val)
	}
	// Child links are re-assigned through a local variable: the recursive
	// call may grow the arena and invalidate any address taken before it.
	switch c := t.cmp(key, t.nodes[r].key); {
	case c < 0:
		left := t.insertAt(t.nodes[r].left, key, val, added)
		t.nodes[r].left = left
	case c > 0:
		right := t.insertAt(t.nodes[r].right, key, val, added)
		t.nodes[r].right = right
	default:
		t.nodes[r].val = val
		return r
	}
	return t.rebalance(r)
}

// Delete removes the entry under key and returns its value.
func (t *Tree[K, V]) Delete(key K) (V, bool) {
	var removed V
	ok := false
	if t == nil || t.root == nilRef {
		return removed, false
	}
	t.root = t.deleteAt(t.root, key, &removed, &ok)
	if ok {
		t.count--
	}
	return removed, ok
}

func (t *Tree[K, V]) deleteAt(r ref, key K, removed *V, ok *bool) ref {
	if r == nilRef {
		return nilRef
	}
	switch c := t.cmp(key, t.nodes[r].key); {
	case c < 0:
		t.nodes[r].left = t.deleteAt(t.nodes[r].left, key, removed, ok)
	case c > 0:
		t.nodes[r].right = t.deleteAt(t.nodes[r].right, key, removed, ok)
	default:
		*removed, *ok = t.nodes[r].val, true
		left, right := t.nodes[r].left, t.nodes[r].right
		if left == nilRef || right == nilRef {
			child := left
			if child == nilRef {
				child = right
			}
			t.release(r)
			return child
		}
		// Two children: pull up the in-order successor, then remove its
		// original slot from the right subtree.
		succ := right
		for t.nodes[succ].left != nilRef {
			succ = t.nodes[succ].left
		}
		t.nodes[r].key, t.nodes[r].val = t.nodes[succ].key, t.nodes[succ].val
		var droppedVal V
		dropped := false
		t.nodes[r].right = t.deleteAt(right, t.nodes[r].key, &droppedVal, &dropped)
		assert(dropped, "in-order successor vanished during delete")
	}
	return t.rebalance(r)
}
