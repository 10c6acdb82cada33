package gridgraph

import "errors"

// Sentinel errors for gridgraph construction. Search-time outcomes (a
// source or target on the border, an unreachable target, a missing
// predecessor) are never Go errors — they are expected results of a
// search and are reported as plain booleans, per the package's error
// taxonomy (see doc.go).
var (
	// ErrEmptyGrid indicates the input 2D slice has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrDimensionMismatch indicates a flat cost buffer whose length does not equal width*height.
	ErrDimensionMismatch = errors.New("gridgraph: cost buffer length does not match width*height")
)
