package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// gridMap is a parsed ASCII map: a flat, bordered cost buffer plus the
// source and target markers found while scanning it.
type gridMap struct {
	width, height int
	cost          []float32
	source        gridgraph.Point
	target        gridgraph.Point
}

// parseMap reads a rectangular ASCII map and adds a 1-cell impassable
// border around it, the same convention as gridgraph's own test harness.
//
// Character meanings: '.' = cost 0, '0'..'9' = that integer cost,
// '#' = impassable, 'S' = source (cost 0), 'T' = target (cost 0); any
// other rune, including ' ', is rejected. Empty lines are skipped.
// Exactly one 'S' and one 'T' are required.
func parseMap(r io.Reader) (*gridMap, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("gridwalk: reading map: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("gridwalk: map is empty")
	}

	innerW := len(rows[0])
	for i, row := range rows {
		if len(row) != innerW {
			return nil, fmt.Errorf("gridwalk: row %d has length %d, want %d", i, len(row), innerW)
		}
	}

	width, height := innerW+2, len(rows)+2
	cost := make([]float32, width*height)
	inf := float32(math.Inf(1))
	for i := range cost {
		cost[i] = inf
	}

	var source, target gridgraph.Point
	var sawSource, sawTarget bool

	for y, row := range rows {
		for x, ch := range row {
			gx, gy := x+1, y+1
			idx := gy*width + gx
			switch {
			case ch == '.':
				cost[idx] = 0
			case ch >= '0' && ch <= '9':
				cost[idx] = float32(ch - '0')
			case ch == '#':
				cost[idx] = inf
			case ch == 'S':
				if sawSource {
					return nil, fmt.Errorf("gridwalk: map has more than one 'S' source marker")
				}
				cost[idx] = 0
				source = gridgraph.Point{X: gx, Y: gy}
				sawSource = true
			case ch == 'T':
				if sawTarget {
					return nil, fmt.Errorf("gridwalk: map has more than one 'T' target marker")
				}
				cost[idx] = 0
				target = gridgraph.Point{X: gx, Y: gy}
				sawTarget = true
			default:
				return nil, fmt.Errorf("gridwalk: unrecognized map rune %q at row %d col %d", ch, y, x)
			}
		}
	}
	if !sawSource {
		return nil, fmt.Errorf("gridwalk: map has no 'S' source marker")
	}
	if !sawTarget {
		return nil, fmt.Errorf("gridwalk: map has no 'T' target marker")
	}

	return &gridMap{width: width, height: height, cost: cost, source: source, target: target}, nil
}
