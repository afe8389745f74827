/*
Package obtree provides an arena-indexed AVL tree ordered by a caller
supplied comparison function.

The package is intentionally not a general-purpose collection library: it is
the ordered boundary store behind package rngmap. Nodes live in a flat arena
slice and reference their children by index, so the tree needs no intrusive
linking and no per-node heap object; freed slots are recycled through a free
list.

Editing follows a locate/compute/splice discipline: bulk mutation
(RemoveUntil) first collects the affected run of entries, then splices the
container in a separate step, so a walk never observes its own deletions.
Positioning queries (Ceiling, Floor, Lower) run in O(log n).

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package obtree

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
