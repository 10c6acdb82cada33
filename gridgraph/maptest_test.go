package gridgraph

import "math"

// parseMap is test-harness scaffolding, not part of the core (spec §1,
// §6): it turns a rectangular character grid into a flat cost buffer
// with a 1-cell impassable border added around it, mirroring the
// donor's habit of building small literal grids inline in each test.
//
// Character meanings: ' ' = cost 0, '0'..'9' = that integer cost, any
// other rune = impassable (+Inf).
func parseMap(rows []string) (width, height int, cost []float32) {
	innerH := len(rows)
	innerW := 0
	if innerH > 0 {
		innerW = len(rows[0])
	}
	for _, r := range rows {
		if len(r) != innerW {
			panic("parseMap: ragged rows")
		}
	}

	width, height = innerW+2, innerH+2
	cost = make([]float32, width*height)
	inf := float32(math.Inf(1))
	for i := range cost {
		cost[i] = inf
	}

	for y, row := range rows {
		for x, ch := range row {
			var c float32
			switch {
			case ch == ' ':
				c = 0
			case ch >= '0' && ch <= '9':
				c = float32(ch - '0')
			default:
				c = inf
			}
			cost[(y+1)*width+(x+1)] = c
		}
	}

	return width, height, cost
}
