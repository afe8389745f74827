package obtree

func (t *Tree[K, V]) entryAt(r ref) (K, V, bool) {
	if r == nilRef {
		var zk K
		var zv V
		return zk, zv, false
	}
	return t.nodes[r].key, t.nodes[r].val, true
}

// Get returns the value stored under key.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	var zero V
	if t == nil {
		return zero, false
	}
	r := t.root
	for r != nilRef {
		switch c := t.cmp(key, t.nodes[r].key); {
		case c < 0:
			r = t.nodes[r].left
		case c > 0:
			r = t.nodes[r].right
		default:
			return t.nodes[r].val, true
		}
	}
	return zero, false
}

// First returns the entry with the smallest key.
func (t *Tree[K, V]) First() (K, V, bool) {
	if t == nil || t.root == nilRef {
		return t.entryAt(nilRef)
	}
	r := t.root
	for t.nodes[r].left != nilRef {
		r = t.nodes[r].left
	}
	return t.entryAt(r)
}

// Last returns the entry with the largest key.
func (t *Tree[K, V]) Last() (K, V, bool) {
	if t == nil || t.root == nilRef {
		return t.entryAt(nilRef)
	}
	r := t.root
	for t.nodes[r].right != nilRef {
		r = t.nodes[r].right
	}
	return t.entryAt(r)
}

// Ceiling returns the entry with the least key not smaller than key.
func (t *Tree[K, V]) Ceiling(key K) (K, V, bool) {
	best := nilRef
	if t == nil {
		return t.entryAt(best)
	}
	r := t.root
	for r != nilRef {
		if t.cmp(t.nodes[r].key, key) >= 0 {
			best = r
			r = t.nodes[r].left
		} else {
			r = t.nodes[r].right
		}
	}
	return t.entryAt(best)
}

// Floor returns the entry with the greatest key not larger than key.
func (t *Tree[K, V]) Floor(key K) (K, V, bool) {
	best := nilRef
	if t == nil {
		return t.entryAt(best)
	}
	r := t.root
	for r != nilRef {
		if t.cmp(t.nodes[r].key, key) <= 0 {
			best = r
			r = t.nodes[r].right
		} else {
			r = t.nodes[r].left
		}
	}
	return t.entryAt(best)
}

// Lower returns the entry with the greatest key strictly smaller than key.
func (t *Tree[K, V]) Lower(key K) (K, V, bool) {
	best := nilRef
	if t == nil {
		return t.entryAt(best)
	}
	r := t.root
	for r != nilRef {
		if t.cmp(t.nodes[r].key, key) < 0 {
			best = r
			r = t.nodes[r].right
		} else {
			r = t.nodes[r].left
		}
	}
	return t.entryAt(best)
}
