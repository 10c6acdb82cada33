// Package gridgraph defines the core types for the gridgraph subpackage
// of github.com/katalvlaran/gridpath.
package gridgraph

import "math"

// Point is an (X, Y) cell coordinate within a grid, in the caller's
// coordinate space (post-border, if the caller adds one).
type Point struct {
	X, Y int
}

// PathfinderOptions tunes construction-time behavior of a Pathfinder.
type PathfinderOptions struct {
	// HeapCapacity seeds the backing array of the reusable open-set heap.
	// It is a hint, not a limit — the heap grows by doubling on demand.
	// Zero (or a negative value) selects a fixed default of 64 entries,
	// whatever the grid size.
	HeapCapacity int
}

// DefaultPathfinderOptions returns a PathfinderOptions with HeapCapacity
// left at 0, letting NewPathfinder use its fixed default capacity.
func DefaultPathfinderOptions() PathfinderOptions {
	return PathfinderOptions{}
}

// Pathfinder holds the three parallel cell-indexed arrays (the borrowed
// cost buffer and its own predecessor and distance arrays) and the
// reusable open-set heap for one W×H grid.
// It is not safe for concurrent use; one Pathfinder serves one search at
// a time, and a search mutates Predecessor/Distance in place.
type Pathfinder struct {
	width, height int
	cost          []float32 // borrowed or owned flat buffer, length width*height
	predecessor   []int32   // -1 = unvisited; idx == self = root; otherwise a flat cell index
	distance      []float32 // meaningful only where predecessor != -1

	openSet *openHeap
}

// frontierNode is a tentative visit record sitting in the open-set heap:
// a candidate cell, the cell it was reached from, and the cumulative cost
// to reach it. Coordinates are stored compactly per spec (16-bit each);
// W and H are assumed to fit in a uint16 grid.
type frontierNode struct {
	x, y   uint16
	parent int32
	dist   float32
}

// searchComparator ranks frontierNode entries by node.dist plus the
// squared Euclidean distance from the node to Target — a deliberately
// cheap, non-admissible heuristic that biases the search toward Target
// (see doc.go). It is held by value inside the heap and retargeted
// in place between searches via BinaryHeap.Comparator().
type searchComparator struct {
	TargetX, TargetY int32
}

// Compare implements heap.Comparator[frontierNode]: it returns positive
// when a's priority (dist + squared distance to target) is strictly
// lower than b's, so the heap's Head is always the minimum-priority node.
func (c searchComparator) Compare(a, b frontierNode) int {
	pa := priority(a, c.TargetX, c.TargetY)
	pb := priority(b, c.TargetX, c.TargetY)
	switch {
	case pa < pb:
		return 1
	case pa > pb:
		return -1
	default:
		return 0
	}
}

func priority(n frontierNode, targetX, targetY int32) float64 {
	dx := float64(int32(n.x) - targetX)
	dy := float64(int32(n.y) - targetY)

	return float64(n.dist) + dx*dx + dy*dy
}

const sqrt2 = math.Sqrt2
