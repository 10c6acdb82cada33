// Package heap provides a growable, array-backed binary heap generic over
// both its element type and its comparator, for use as an open-set /
// priority-frontier container by search algorithms such as gridgraph.
//
// What:
//
//   - BinaryHeap[T, C] stores elements of type T, ordered by a caller-supplied
//     comparator C satisfying Comparator[T].
//   - The comparator is held by value inside the heap (not boxed behind an
//     interface call per comparison), so stateful comparators — e.g. one
//     carrying a search target that changes between runs — can be mutated
//     externally between Clear calls without re-parameterizing the heap.
//   - Duplicate keys are permitted; Push never rejects or merges entries.
//
// Why:
//
//   - Best-first search (A*-flavored grid pathfinding, Dijkstra-style
//     relaxation) needs a priority queue that tolerates "stale" entries —
//     pushing a second, better record for an already-queued element instead
//     of performing a decrease-key. BinaryHeap makes no attempt to locate or
//     update existing entries; callers drop stale pops themselves.
//
// Complexity:
//
//   - Push, PopHead: O(log n) amortized (growth doubles capacity).
//   - Head, IsEmpty, Len: O(1).
//   - Clear: O(1) (retains backing capacity).
//   - ValidateIntegrity: O(n), for tests only.
//
// Errors:
//
//   - None. Calling Head or PopHead on an empty heap is a caller contract
//     violation (spec: "undefined if empty — callers must check IsEmpty
//     first") and panics rather than returning a zero value silently.
package heap
