package obtree

// RemoveUntil deletes a contiguous run of entries and returns the value of
// the last entry deleted.
//
// The run starts at the first key ≥ from, or at the smallest key when from
// is nil, and extends as long as key ≤ limit; a nil limit removes everything
// from the run start onward. The run is collected first and spliced out
// afterwards, so the walk never observes its own deletions.
func (t *Tree[K, V]) RemoveUntil(from, limit *K) (last V, removed bool) {
	if t.IsEmpty() {
		return last, false
	}
	var doomed []K
	collect := func(key K, val V) bool {
		if limit != nil && t.cmp(key, *limit) > 0 {
			return false
		}
		doomed = append(doomed, key)
		last = val
		return true
	}
	if from != nil {
		t.AscendFrom(*from, collect)
	} else {
		t.Ascend(collect)
	}
	for _, key := range doomed {
		_, ok := t.Delete(key)
		assert(ok, "collected key vanished before splice")
	}
	return last, len(doomed) > 0
}
