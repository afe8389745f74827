package rngmap

import (
	"cmp"
	"fmt"
)

// BoundKind distinguishes the three kinds of interval endpoints.
type BoundKind uint8

const (
	// Unbounded marks a missing endpoint; the interval extends indefinitely
	// on that side.
	Unbounded BoundKind = iota
	// Included marks an endpoint that is part of the interval.
	Included
	// Excluded marks an endpoint that is not part of the interval.
	Excluded
)

// Bound is a one-sided interval endpoint. The zero Bound is unbounded.
type Bound[K cmp.Ordered] struct {
	Kind BoundKind
	Key  K
}

// Incl returns an inclusive bound at key.
func Incl[K cmp.Ordered](key K) Bound[K] {
	return Bound[K]{Kind: Included, Key: key}
}

// Excl returns an exclusive bound at key.
func Excl[K cmp.Ordered](key K) Bound[K] {
	return Bound[K]{Kind: Excluded, Key: key}
}

// Range is an interval over K, described by two bounds. The zero Range
// covers the whole key space.
type Range[K cmp.Ordered] struct {
	Start Bound[K]
	End   Bound[K]
}

// All returns the unbounded range.
func All[K cmp.Ordered]() Range[K] {
	return Range[K]{}
}

// Below returns the range of all keys smaller than end.
func Below[K cmp.Ordered](end K) Range[K] {
	return Range[K]{End: Excl(end)}
}

// AtMost returns the range of all keys not greater than end.
func AtMost[K cmp.Ordered](end K) Range[K] {
	return Range[K]{End: Incl(end)}
}

// From returns the range of all keys not smaller than start.
func From[K cmp.Ordered](start K) Range[K] {
	return Range[K]{Start: Incl(start)}
}

// Above returns the range of all keys greater than start.
func Above[K cmp.Ordered](start K) Range[K] {
	return Range[K]{Start: Excl(start)}
}

// Between returns the half-open range [start, end).
func Between[K cmp.Ordered](start, end K) Range[K] {
	return Range[K]{Start: Incl(start), End: Excl(end)}
}

// Span returns the range between two explicit bounds.
func Span[K cmp.Ordered](start, end Bound[K]) Range[K] {
	return Range[K]{Start: start, End: end}
}

// Valid reports whether the range denotes a non-empty interval. Comparing
// start and end as plain keys, start must be strictly smaller whenever an
// exclusive endpoint is involved; equal keys are allowed only between two
// inclusive bounds, denoting a single-key range. Unbounded sides are always
// valid.
func (r Range[K]) Valid() bool {
	if r.Start.Kind == Unbounded || r.End.Kind == Unbounded {
		return true
	}
	if r.Start.Kind == Included && r.End.Kind == Included {
		return r.Start.Key <= r.End.Key
	}
	return r.Start.Key < r.End.Key
}

// Contains reports whether key lies within the range.
func (r Range[K]) Contains(key K) bool {
	switch r.Start.Kind {
	case Included:
		if key < r.Start.Key {
			return false
		}
	case Excluded:
		if key <= r.Start.Key {
			return false
		}
	}
	switch r.End.Kind {
	case Included:
		if key > r.End.Key {
			return false
		}
	case Excluded:
		if key >= r.End.Key {
			return false
		}
	}
	return true
}

// String renders the range in interval notation, e.g. "[5, 10)" or
// "(-∞, 3]".
func (r Range[K]) String() string {
	var s string
	switch r.Start.Kind {
	case Included:
		s = fmt.Sprintf("[%v", r.Start.Key)
	case Excluded:
		s = fmt.Sprintf("(%v", r.Start.Key)
	default:
		s = "(-∞"
	}
	switch r.End.Kind {
	case Included:
		return s + fmt.Sprintf(", %v]", r.End.Key)
	case Excluded:
		return s + fmt.Sprintf(", %v)", r.End.Key)
	default:
		return s + ", +∞)"
	}
}

// point is a boundary point: a key tagged inclusive or exclusive, marking a
// position where the mapped value changes. An inclusive point governs its
// key and everything after it, an exclusive point only what comes after.
type point[K cmp.Ordered] struct {
	key  K
	excl bool
}

// comparePoints orders boundary points by key; on equal keys the inclusive
// point sorts first, so a segment starting at k precedes one starting just
// after k.
func comparePoints[K cmp.Ordered](a, b point[K]) int {
	if c := cmp.Compare(a.key, b.key); c != 0 {
		return c
	}
	switch {
	case a.excl == b.excl:
		return 0
	case b.excl:
		return -1
	default:
		return 1
	}
}

// swapBound flips inclusive and exclusive on the same key. It converts a
// range-end point into the start point of the following segment and back;
// applied twice it restores the original point.
func (p point[K]) swapBound() point[K] {
	p.excl = !p.excl
	return p
}

// asPoint converts a bound into a boundary point; an unbounded bound has
// none.
func (b Bound[K]) asPoint() (point[K], bool) {
	switch b.Kind {
	case Included:
		return point[K]{key: b.Key}, true
	case Excluded:
		return point[K]{key: b.Key, excl: true}, true
	}
	return point[K]{}, false
}

// startBound renders the point as the start bound of the segment it opens.
func (p point[K]) startBound() Bound[K] {
	if p.excl {
		return Excl(p.key)
	}
	return Incl(p.key)
}

// endBound renders the point as the end bound of the preceding segment: a
// segment starting at k closes the previous one just before k, a segment
// starting just after k closes the previous one at k.
func (p point[K]) endBound() Bound[K] {
	if p.excl {
		return Incl(p.key)
	}
	return Excl(p.key)
}

func (p point[K]) String() string {
	if p.excl {
		return fmt.Sprintf("(%v", p.key)
	}
	return fmt.Sprintf("[%v", p.key)
}
