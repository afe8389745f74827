package obtree

import "errors"

var (
	// ErrInvariant signals a corrupted tree structure.
	ErrInvariant = errors.New("obtree: tree invariant violated")
)
