package obtree

import "fmt"

// Check validates structural tree invariants.
//
// This checker is intentionally strict and meant for tests: it verifies key
// ordering, AVL balance, stored heights, the entry count, and that reachable
// nodes and free-list slots exactly partition the arena.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return nil
	}
	seen := make([]bool, len(t.nodes))
	count, _, err := t.checkNode(t.root, seen)
	if err != nil {
		return err
	}
	if count != t.count {
		return fmt.Errorf("%w: entry count mismatch (%d != %d)", ErrInvariant, count, t.count)
	}
	for _, f := range t.free {
		if f < 0 || int(f) >= len(t.nodes) {
			return fmt.Errorf("%w: free slot %d outside arena", ErrInvariant, f)
		}
		if seen[f] {
			return fmt.Errorf("%w: free slot %d still reachable", ErrInvariant, f)
		}
		seen[f] = true
	}
	for r, s := range seen {
		if !s {
			return fmt.Errorf("%w: arena slot %d leaked", ErrInvariant, r)
		}
	}
	var prev K
	first := true
	ordered := true
	t.Ascend(func(key K, _ V) bool {
		if !first && t.cmp(prev, key) >= 0 {
			ordered = false
			return false
		}
		prev, first = key, false
		return true
	})
	if !ordered {
		return fmt.Errorf("%w: keys not strictly increasing", ErrInvariant)
	}
	return nil
}

func (t *Tree[K, V]) checkNode(r ref, seen []bool) (count int, height int32, err error) {
	if r == nilRef {
		return 0, 0, nil
	}
	if r < 0 || int(r) >= len(t.nodes) {
		return 0, 0, fmt.Errorf("%w: node ref %d outside arena", ErrInvariant, r)
	}
	if seen[r] {
		return 0, 0, fmt.Errorf("%w: node %d reachable twice", ErrInvariant, r)
	}
	seen[r] = true
	lc, lh, err := t.checkNode(t.nodes[r].left, seen)
	if err != nil {
		return 0, 0, err
	}
	rc, rh, err := t.checkNode(t.nodes[r].right, seen)
	if err != nil {
		return 0, 0, err
	}
	h := max(lh, rh) + 1
	if t.nodes[r].height != h {
		return 0, 0, fmt.Errorf("%w: stored height %d != computed %d at node %d",
			ErrInvariant, t.nodes[r].height, h, r)
	}
	if b := lh - rh; b < -1 || b > 1 {
		return 0, 0, fmt.Errorf("%w: node %d out of balance (%d)", ErrInvariant, r, b)
	}
	return lc + rc + 1, h, nil
}
