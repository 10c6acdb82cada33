// Package gridgraph implements weighted best-first search over a
// rectangular grid: multi-source flood fill, single-target path search
// biased by a squared-Euclidean heuristic, and turn-compressed path
// extraction.
//
// What:
//
//   - Pathfinder wraps a flat, row-major float32 cost field of length
//     width*height, plus the predecessor and distance fields a search
//     populates.
//   - FloodFill relaxes every cell reachable from one or more sources.
//   - FindPath searches from sources toward one target, short-circuiting
//     the moment target is reached.
//   - GetPath walks a completed search's predecessor chain backward from
//     a target, emitting only the target, the source, and turn points.
//
// Why:
//
//   - Game maps and simulations: route an agent across uneven terrain,
//     where diagonal corner-cutting through expensive cells should be
//     discouraged rather than simply forbidden.
//   - Reachability analysis: flood fill answers "what can this source
//     reach, and at what cost" without naming a destination.
//
// Border invariant:
//
//   - Every cell with x=0, x=Width-1, y=0, or y=Height-1 must carry cost
//     +Inf. Interior neighbor expansion assumes this and performs no
//     per-step bounds checks; every source and target must lie strictly
//     inside it (1 ≤ x ≤ Width-2, 1 ≤ y ≤ Height-2).
//
// Diagonal cost rule:
//
//   - A cardinal move costs Cost[neighbor] + 1. A diagonal move costs
//     Cost[neighbor] + Cost[horizontal adjacent]/3 + Cost[vertical
//     adjacent]/3 + √2, which becomes infinite (and so impassable) the
//     moment either adjacent cardinal cell is impassable — this is what
//     discourages cutting corners through expensive terrain without an
//     explicit "can't cut corners" flag.
//
// Complexity:
//
//   - FloodFill, FindPath: O(W×H×log(W×H)) worst case; FindPath is
//     typically far cheaper since the heuristic biases expansion toward
//     target.
//   - GetPath: O(k), k = raw (uncompressed) path length.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: construction-time input validation
//     (NewPathfinderFromGrid only).
//   - ErrDimensionMismatch: flat cost buffer length != width*height.
//
// Search-time outcomes (a source or target on the border, an
// unreachable target, a missing predecessor at extraction time) are
// never Go errors — they are ordinary, expected results and are
// reported as plain booleans, matching the spec's three-kind error
// taxonomy: boundary violation, unreachable target, missing predecessor.
package gridgraph
