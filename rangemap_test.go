package rngmap

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func testTracer(t *testing.T) func() {
	gtrace.CoreTracer = gotestingadapter.New(t)
	return gotestingadapter.RedirectTracing(t)
}

func assertValues(t *testing.T, m *RangeMap[int, rune], want map[int]rune) {
	t.Helper()
	if err := m.CheckCanonical(); err != nil {
		t.Fatalf("map %s: %v", m, err)
	}
	for k, v := range want {
		if got := m.Index(k); got != v {
			t.Errorf("Index(%d) = %c, want %c (map %s)", k, got, v, m)
		}
	}
}

func TestIndexScenario(t *testing.T) {
	teardown := testTracer(t)
	defer teardown()
	//
	m := New[int]('A')
	assertValues(t, m, map[int]rune{-10: 'A', 10: 'A'})

	m.Insert(Below(10), 'B')
	assertValues(t, m, map[int]rune{-10: 'B', 0: 'B', 10: 'A', 20: 'A'})

	m.Insert(AtMost(-10), 'Z')
	assertValues(t, m, map[int]rune{-10: 'Z', 0: 'B', 10: 'A', 20: 'A'})

	m.Insert(Above(10), 'C')
	assertValues(t, m, map[int]rune{-10: 'Z', 0: 'B', 10: 'A', 20: 'C', 30: 'C'})

	sections := m.Len()
	m.Insert(Above(20), 'C') // already 'C' there, must not add a boundary
	assertValues(t, m, map[int]rune{-10: 'Z', 0: 'B', 10: 'A', 20: 'C', 30: 'C'})
	if m.Len() != sections {
		t.Errorf("redundant insert changed section count %d -> %d", sections, m.Len())
	}

	m.Insert(Between(-15, -5), 'B') // merges with the adjacent 'B' section
	assertValues(t, m, map[int]rune{-16: 'Z', -15: 'B', -12: 'B', -5: 'B', 0: 'B', 10: 'A', 20: 'C'})
}

func TestSingleKeyRange(t *testing.T) {
	teardown := testTracer(t)
	defer teardown()
	//
	m := New[int]('A')
	m.Insert(Span(Incl(5), Incl(5)), 'B')
	assertValues(t, m, map[int]rune{4: 'A', 5: 'B', 6: 'A'})
	if m.Len() != 3 {
		t.Errorf("single-key insert produced %d sections, want 3", m.Len())
	}
}

func TestExclusiveGapKeepsDefault(t *testing.T) {
	teardown := testTracer(t)
	defer teardown()
	//
	m := New[int]('A')
	m.Insert(Above(5), 'B')
	m.Insert(Between(0, 5), 'C') // both ranges exclude 5 itself
	assertValues(t, m, map[int]rune{-1: 'A', 0: 'C', 4: 'C', 5: 'A', 6: 'B'})
	if m.Len() != 4 {
		t.Errorf("map has %d sections, want 4", m.Len())
	}
}

func TestInvalidRangesAreNoOps(t *testing.T) {
	teardown := testTracer(t)
	defer teardown()
	//
	m := New[int]('A')
	m.Insert(Between(0, 100), 'B')
	before := m.String()
	for _, r := range []Range[int]{
		Between(5, 5),
		Span(Excl(5), Incl(5)),
		Span(Excl(5), Excl(5)),
		Between(7, 3),
		Span(Incl(9), Incl(2)),
	} {
		m.Insert(r, 'X')
		if got := m.String(); got != before {
			t.Errorf("insert over invalid range %s changed the map: %s", r, got)
		}
	}
	assertValues(t, m, map[int]rune{-1: 'A', 0: 'B', 99: 'B', 100: 'A'})
}

func TestIdempotentInsert(t *testing.T) {
	teardown := testTracer(t)
	defer teardown()
	//
	m := New[int]('A')
	m.Insert(Between(0, 10), 'B')
	once := m.String()
	m.Insert(Between(0, 10), 'B')
	if got := m.String(); got != once {
		t.Errorf("repeated insert changed the map: %s -> %s", once, got)
	}
	assertValues(t, m, map[int]rune{-1: 'A', 0: 'B', 9: 'B', 10: 'A'})
}

func TestRedundantInsertAddsNoBoundary(t *testing.T) {
	teardown := testTracer(t)
	defer teardown()
	//
	m := New[int]('A')
	m.Insert(Between(0, 100), 'B')
	sections := m.Len()
	m.Insert(Between(10, 20), 'B') // uniformly 'B' there already
	if m.Len() != sections {
		t.Errorf("redundant insert changed section count %d -> %d", sections, m.Len())
	}
	assertValues(t, m, map[int]rune{5: 'B', 15: 'B', 50: 'B'})
}

func TestFullOverwrite(t *testing.T) {
	teardown := testTracer(t)
	defer teardown()
	//
	m := New[int]('A')
	m.Insert(Between(0, 10), 'B')
	m.Insert(Above(50), 'C')
	m.Insert(All[int](), 'Q')
	if m.Len() != 1 {
		t.Errorf("unbounded overwrite left %d sections", m.Len())
	}
	assertValues(t, m, map[int]rune{-100: 'Q', 0: 'Q', 5: 'Q', 1000: 'Q'})
}

func TestZeroValueMap(t *testing.T) {
	teardown := testTracer(t)
	defer teardown()
	//
	var m RangeMap[int, rune]
	if got := m.Index(42); got != 0 {
		t.Errorf("zero map Index(42) = %d, want 0", got)
	}
	if m.Len() != 1 {
		t.Errorf("zero map has %d sections", m.Len())
	}
	m.Insert(Between(0, 10), 'x')
	assertValues(t, &m, map[int]rune{-1: 0, 0: 'x', 9: 'x', 10: 0})
}

// Randomized property run: arbitrary bounded/unbounded inserts over a small
// domain, checked against a brute-force model after every step.

const domainLo, domainHi = -40, 40

func randomBound(r *rand.Rand) Bound[int] {
	switch r.Intn(3) {
	case 0:
		return Incl(r.Intn(domainHi-domainLo+1) + domainLo)
	case 1:
		return Excl(r.Intn(domainHi-domainLo+1) + domainLo)
	}
	return Bound[int]{}
}

func runRandomInsertSequence(t *testing.T, seed uint64, steps int) {
	t.Helper()
	teardown := testTracer(t)
	defer teardown()
	//
	r := rand.New(rand.NewSource(int64(seed)))
	values := []rune{'a', 'b', 'c', 'd', 'e'}
	def := values[r.Intn(len(values))]
	m := New[int](def)
	var model [domainHi - domainLo + 1]rune
	for i := range model {
		model[i] = def
	}
	if err := m.CheckCanonical(); err != nil {
		t.Fatal(err)
	}
	for step := 0; step < steps; step++ {
		rg := Span(randomBound(r), randomBound(r))
		val := values[r.Intn(len(values))]
		m.Insert(rg, val)
		if rg.Valid() {
			for k := domainLo; k <= domainHi; k++ {
				if rg.Contains(k) {
					model[k-domainLo] = val
				}
			}
		}
		if err := m.CheckCanonical(); err != nil {
			t.Fatalf("step %d, %c over %s: %v", step, val, rg, err)
		}
		for k := domainLo; k <= domainHi; k++ {
			if got := m.Index(k); got != model[k-domainLo] {
				t.Fatalf("step %d, %c over %s: Index(%d) = %c, want %c",
					step, val, rg, k, got, model[k-domainLo])
			}
		}
	}
	assertSectionCoverage(t, m)
}

// assertSectionCoverage verifies that Iter partitions the key space: the
// first start and last end are unbounded, consecutive sections touch with
// flipped inclusion, and every section agrees with Index.
func assertSectionCoverage(t *testing.T, m *RangeMap[int, rune]) {
	t.Helper()
	first := true
	var prevEnd Bound[int]
	count := 0
	for r, v := range m.Iter() {
		count++
		if first {
			if r.Start.Kind != Unbounded {
				t.Fatalf("first section %s does not start unbounded", r)
			}
		} else {
			if prevEnd.Kind == Unbounded {
				t.Fatalf("section %s follows an unbounded end", r)
			}
			if r.Start.Kind == Unbounded || r.Start.Key != prevEnd.Key ||
				(r.Start.Kind == Included) == (prevEnd.Kind == Included) {
				t.Fatalf("section %s does not touch previous end %v", r, prevEnd)
			}
		}
		for k := domainLo; k <= domainHi; k++ {
			if r.Contains(k) && m.Index(k) != v {
				t.Fatalf("Index(%d) = %c, but section %s holds %c", k, m.Index(k), r, v)
			}
		}
		prevEnd = r.End
		first = false
	}
	if prevEnd.Kind != Unbounded {
		t.Fatalf("last section ends bounded at %v", prevEnd)
	}
	if count != m.Len() {
		t.Fatalf("Iter produced %d sections, Len reports %d", count, m.Len())
	}
}

func TestLastWriteWinsRandomized(t *testing.T) {
	for seed := uint64(1); seed <= 25; seed++ {
		runRandomInsertSequence(t, seed, 60)
	}
}

func FuzzInsertCanonical(f *testing.F) {
	f.Add(uint64(1), uint8(16))
	f.Add(uint64(7), uint8(48))
	f.Add(uint64(42), uint8(96))
	f.Fuzz(func(t *testing.T, seed uint64, steps uint8) {
		runRandomInsertSequence(t, seed, int(steps%96)+1)
	})
}
