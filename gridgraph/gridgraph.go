// Package gridgraph provides a 2D grid pathfinder over a flat cost
// field: multi-source flood fill and single-target search biased by a
// squared-Euclidean heuristic, plus turn-compressed path extraction.
//
// Cells carry a non-negative float32 cost; +Inf marks an impassable
// cell. The outer ring of the grid must be all +Inf (the border
// invariant — see doc.go) so interior neighbor indexing never needs
// bounds checks.
package gridgraph

import "github.com/katalvlaran/gridpath/heap"

// openHeap is the reusable open-set container: a generic BinaryHeap
// specialized to frontierNode elements under a by-value searchComparator.
type openHeap = heap.BinaryHeap[frontierNode, searchComparator]

// defaultHeapCapacity is used when PathfinderOptions.HeapCapacity is 0;
// it is sized to comfortably hold one entry per cell for small-to-medium
// grids without triggering the heap's first few doublings.
const defaultHeapCapacity = 64

// NewPathfinder constructs a Pathfinder over a flat, row-major cost
// buffer of length width*height (index = y*width + x). The buffer is
// borrowed: the Pathfinder never mutates it, and the caller must keep it
// alive and frozen for the Pathfinder's lifetime.
//
// Returns ErrDimensionMismatch if len(cost) != width*height.
//
// Complexity: O(width*height) to allocate the predecessor/distance
// arrays and the heap's initial backing array.
func NewPathfinder(width, height int, cost []float32, opts PathfinderOptions) (*Pathfinder, error) {
	if len(cost) != width*height {
		return nil, ErrDimensionMismatch
	}

	capacity := opts.HeapCapacity
	if capacity <= 0 {
		capacity = defaultHeapCapacity
	}

	total := width * height
	pf := &Pathfinder{
		width:       width,
		height:      height,
		cost:        cost,
		predecessor: make([]int32, total),
		distance:    make([]float32, total),
		openSet:     heap.NewBinaryHeap[frontierNode, searchComparator](capacity, searchComparator{}),
	}
	resetPredecessor(pf.predecessor)

	return pf, nil
}

// NewPathfinderFromGrid constructs a Pathfinder from a non-empty,
// rectangular [][]float32 grid, flattening it row-major. This is a
// convenience over NewPathfinder for callers that already built a 2D
// cost grid (the donor package's own NewGridGraph validation shape,
// adapted to float costs).
//
// Returns ErrEmptyGrid if grid has no rows or no columns, ErrNonRectangular
// if any row length differs.
//
// Complexity: O(width*height).
func NewPathfinderFromGrid(grid [][]float32, opts PathfinderOptions) (*Pathfinder, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	height, width := len(grid), len(grid[0])
	for _, row := range grid {
		if len(row) != width {
			return nil, ErrNonRectangular
		}
	}

	flat := make([]float32, width*height)
	for y, row := range grid {
		copy(flat[y*width:(y+1)*width], row)
	}

	return NewPathfinder(width, height, flat, opts)
}

// resetPredecessor fills p with the sentinel -1 ("unvisited / no predecessor").
// A committed root gets predecessor[idx] == idx instead (see search.go).
func resetPredecessor(p []int32) {
	for i := range p {
		p[i] = -1
	}
}

// InBounds reports whether (x,y) lies within the grid boundaries.
//
// Complexity: O(1).
func (pf *Pathfinder) InBounds(x, y int) bool {
	return x >= 0 && x < pf.width && y >= 0 && y < pf.height
}

// Width returns the grid's column count.
func (pf *Pathfinder) Width() int { return pf.width }

// Height returns the grid's row count.
func (pf *Pathfinder) Height() int { return pf.height }

// index maps (x,y) to a row-major flat index: y*Width + x.
//
// Complexity: O(1).
func (pf *Pathfinder) index(x, y int) int {
	return y*pf.width + x
}

// Coordinate converts a row-major flat index back to (x,y).
//
// Complexity: O(1).
func (pf *Pathfinder) Coordinate(idx int) (x, y int) {
	return idx % pf.width, idx / pf.width
}

// isInterior reports whether (x,y) satisfies the strict interior bound
// 1 ≤ x ≤ Width-2 and 1 ≤ y ≤ Height-2 required of every source and
// target — the symmetric form of the border check (see §9 of the
// design notes: the donor's asymmetric `y < H` check is a documented
// off-by-one and is not reproduced here).
func (pf *Pathfinder) isInterior(x, y int) bool {
	return x >= 1 && x <= pf.width-2 && y >= 1 && y <= pf.height-2
}

// Dispose releases the Pathfinder's predecessor, distance, and heap
// buffers and drops its reference to the borrowed cost buffer; the
// contents of the cost buffer itself are left unchanged.
// After Dispose, the Pathfinder must not be reused.
func (pf *Pathfinder) Dispose() {
	pf.predecessor = nil
	pf.distance = nil
	pf.openSet = nil
	pf.cost = nil
}
