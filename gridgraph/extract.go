package gridgraph

// GetPath reconstructs the turn-compressed waypoint list from target back
// to whichever source rooted its predecessor chain, appending to out.
// Waypoints are emitted target-first, source-last: the target, the
// source, and every cell where the direction of travel changes — a
// straight corridor yields exactly two waypoints; each bend adds one.
//
// Returns false, leaving out unmodified, if target was never reached by
// the last search (Predecessor[target] == -1).
//
// Complexity: O(k) where k is the number of cells on the raw (uncompressed)
// path.
func (pf *Pathfinder) GetPath(out []Point, target Point) ([]Point, bool) {
	idx := pf.index(target.X, target.Y)
	if pf.predecessor[idx] == -1 {
		return out, false
	}

	out = append(out, target)

	curX, curY := target.X, target.Y
	curIdx := idx
	prevDX, prevDY := 0, 0
	haveDelta := false

	// A root's predecessor points at itself (see search.go); walking
	// stops there. If target was itself a root (the degenerate source ==
	// target case), the loop body never runs and the single waypoint
	// already pushed above is the whole path.
	for pf.predecessor[curIdx] != int32(curIdx) {
		parent := pf.predecessor[curIdx]
		px, py := pf.Coordinate(int(parent))
		dx, dy := curX-px, curY-py
		if haveDelta && (dx != prevDX || dy != prevDY) {
			out = append(out, Point{X: curX, Y: curY})
		}
		prevDX, prevDY = dx, dy
		haveDelta = true

		curX, curY = px, py
		curIdx = int(parent)
	}
	if haveDelta {
		out = append(out, Point{X: curX, Y: curY})
	}

	return out, true
}
