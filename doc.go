// Package gridpath is a small toolkit for pathfinding over 2D cost
// grids: a generic binary heap and a weighted best-first grid
// pathfinder built on it.
//
// What it provides:
//
//	heap/     — BinaryHeap[T, Comparator[T]], a generic priority queue
//	            parameterized over both its element type and its
//	            comparator, so the comparator's own state (e.g. a search
//	            target) can be retargeted between searches without
//	            reallocating the heap.
//	gridgraph/ — Pathfinder, built on heap.BinaryHeap: multi-source flood
//	            fill, single-target search biased by a squared-Euclidean
//	            heuristic, a diagonal corner-cutting cost penalty, and
//	            turn-compressed path extraction.
//
// cmd/gridwalk is a small demonstration binary: it reads an ASCII map,
// runs FindPath between an 'S' and a 'T' marker, and either prints the
// waypoint list or opens a terminal view of the result.
//
// Grids are a flat, row-major []float32 cost buffer with a mandatory
// 1-cell impassable (+Inf) border; see gridgraph's package doc for the
// border invariant and the diagonal cost rule.
package gridpath
