package gridgraph

import "math"

// neighborOffset is one of the eight fixed expansion directions. The
// expansion order (N,S,E,W,NE,NW,SE,SW) is part of the contract — it
// decides which of several equal-cost paths wins ties, and reimplementations
// must preserve it to reproduce the reference fixtures.
type neighborOffset struct {
	dx, dy     int
	isCardinal bool
}

var neighborOffsets = [8]neighborOffset{
	{0, -1, true},   // N
	{0, 1, true},    // S
	{1, 0, true},    // E
	{-1, 0, true},   // W
	{1, -1, false},  // NE
	{-1, -1, false}, // NW
	{1, 1, false},   // SE
	{-1, 1, false},  // SW
}

// FloodFill relaxes every cell reachable from sources, populating the
// predecessor and distance fields over the whole connected region. There
// is no target: the search drains the open-set heap completely.
//
// Returns false, without mutating predecessor in any caller-visible way,
// if any source lies on (or outside) the impassable border.
//
// Complexity: O(W*H*log(W*H)) worst case.
func (pf *Pathfinder) FloodFill(sources []Point) bool {
	_, ok := pf.search(sources, nil)

	return ok
}

// FindPath searches for a route from any of sources to target, biased
// toward target by a squared-Euclidean heuristic (see doc.go). The
// heuristic is not admissible, so on maps with expensive terrain the
// route found is not necessarily the minimum-cost one. On success, Predecessor/Distance are populated along the
// winning chain back to its root and GetPath(target) can reconstruct it.
//
// Returns false if any source or target lies on the border, or if the
// open-set heap drains without reaching target.
//
// Complexity: O(W*H*log(W*H)) worst case; typically far less since the
// heuristic directs expansion toward target.
func (pf *Pathfinder) FindPath(sources []Point, target Point) bool {
	valid, ok := pf.search(sources, &target)

	return ok && valid
}

// search is the shared engine behind FloodFill and FindPath. When target
// is nil it behaves as flood fill (drains the whole heap, never
// short-circuits). The first return value reports whether validation
// passed (at least one source, every source and the target interior).
// The second reports success: when target is non-nil, whether target
// was actually reached; when target is nil, it is true whenever
// validation passed.
func (pf *Pathfinder) search(sources []Point, target *Point) (valid, ok bool) {
	if len(sources) == 0 {
		return false, false
	}
	for _, s := range sources {
		if !pf.isInterior(s.X, s.Y) {
			return false, false
		}
	}
	if target != nil && !pf.isInterior(target.X, target.Y) {
		return false, false
	}

	pf.openSet.Clear()
	var targetX, targetY int32
	if target != nil {
		targetX, targetY = int32(target.X), int32(target.Y)
	}
	*pf.openSet.Comparator() = searchComparator{TargetX: targetX, TargetY: targetY}

	resetPredecessor(pf.predecessor)

	// Sources are pushed with a self-referential parent: once committed,
	// predecessor[idx] == idx marks a root. This is deliberate — using -1
	// for both "unvisited" and "root" would let a later, worse-distance
	// frontier entry for the same cell sail past the stale-entry check
	// below (predecessor[idx] != -1 would read as "never visited" for a
	// committed root) and overwrite it.
	for _, s := range sources {
		idx := int32(pf.index(s.X, s.Y))
		pf.openSet.Push(frontierNode{x: uint16(s.X), y: uint16(s.Y), parent: idx, dist: 0})
	}

	// Degenerate case: target coincides with one of the sources. The
	// main loop only ever short-circuits on a *neighbor* equalling
	// target, so a source that *is* the target needs this separate,
	// explicit check (spec §4.2, "Degenerate case").
	if target != nil {
		for _, s := range sources {
			if s == *target {
				idx := pf.index(target.X, target.Y)
				pf.predecessor[idx] = int32(idx)
				pf.distance[idx] = 0

				return true, true
			}
		}
	}

	for !pf.openSet.IsEmpty() {
		node := pf.openSet.PopHead()
		idx := pf.index(int(node.x), int(node.y))

		// Stale-entry skip: a better record for this cell was already
		// committed, so this popped entry is outdated. Dropping it here
		// is what lets the heap carry multiple records per cell without
		// a decrease-key operation.
		if pf.predecessor[idx] != -1 && pf.distance[idx] < node.dist {
			continue
		}

		pf.predecessor[idx] = node.parent
		pf.distance[idx] = node.dist

		for _, off := range neighborOffsets {
			nx, ny := int(node.x)+off.dx, int(node.y)+off.dy
			nIdx := pf.index(nx, ny)

			var preConst, moveCost float32
			if off.isCardinal {
				preConst = pf.cost[nIdx]
				moveCost = preConst + 1.0
			} else {
				horizIdx := pf.index(int(node.x)+off.dx, int(node.y))
				vertIdx := pf.index(int(node.x), int(node.y)+off.dy)
				preConst = pf.cost[nIdx] + pf.cost[horizIdx]/3 + pf.cost[vertIdx]/3
				moveCost = preConst + float32(sqrt2)
			}

			if target != nil && nx == target.X && ny == target.Y {
				if off.isCardinal || !isInf32(preConst) {
					pf.predecessor[target.Y*pf.width+target.X] = int32(idx)
					pf.distance[target.Y*pf.width+target.X] = node.dist + moveCost

					return true, true
				}
				continue
			}

			if isInf32(preConst) {
				continue // impassable neighbor
			}

			pf.openSet.Push(frontierNode{
				x:      uint16(nx),
				y:      uint16(ny),
				parent: int32(idx),
				dist:   node.dist + moveCost,
			})
		}
	}

	if target == nil {
		return true, true
	}

	return true, false
}

func isInf32(f float32) bool {
	return math.IsInf(float64(f), 1)
}
