package rngmap

import "fmt"

// CheckCanonical verifies that the boundary store is in canonical form:
// boundary points strictly increase, and no two adjacent segments carry
// equal values, the pair of default value and first boundary included.
//
// A violation indicates a bug in Insert, never bad input, so production
// callers have no reason to call this. It backs the property tests and the
// fuzz targets, which run it after every mutation.
func (m *RangeMap[K, V]) CheckCanonical() error {
	if m.tree == nil {
		return nil
	}
	if err := m.tree.Check(); err != nil {
		return err
	}
	prevVal := m.val
	var prevPt point[K]
	first := true
	for p, v := range m.tree.All() {
		if !first && comparePoints(prevPt, p) >= 0 {
			return fmt.Errorf("%w: boundary %s not after %s", ErrNotCanonical, p, prevPt)
		}
		if v == prevVal {
			return fmt.Errorf("%w: boundary %s repeats value %v", ErrNotCanonical, p, v)
		}
		prevPt, prevVal, first = p, v, false
	}
	return nil
}
