/*
Package rngmap implements a canonical range map: a total mapping from an
ordered key space to values, stored compactly as a default value plus the
sparse, sorted set of boundary points where the mapped value changes.

Clients create a map with a default value and then overwrite arbitrary
ranges:

	m := rngmap.New[int]('A')
	m.Insert(rngmap.Below(10), 'B')
	m.Insert(rngmap.From(100), 'C')
	v := m.Index(3)              // 'B'
	for r, v := range m.Iter() { // sections in key order
		…
	}

Insert keeps the representation canonical under any sequence of
overlapping, touching, contained or unbounded range writes: boundary points
stay strictly increasing and adjacent segments never carry equal values, so
the store holds the unique minimal description of the step function it
represents.

The map performs no internal locking. Reads (Index, Iter) may run
concurrently with each other, but a mutation requires exclusive access to
the whole structure.

# Tracing

This package may trace its operation to a tracing adapter of the client's
choosing (see package schuko/tracing):

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rngmap

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// MapError is an error type for the rngmap module.
type MapError string

func (e MapError) Error() string {
	return string(e)
}

// ErrNotCanonical is flagged by CheckCanonical whenever the boundary store
// holds an out-of-order or redundant entry. It signals a bug in the editing
// algorithm, never a consequence of client input.
const ErrNotCanonical = MapError("range map not in canonical form")
